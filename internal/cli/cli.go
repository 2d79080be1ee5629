// Package cli implements the stepview command-line interface.
//
// # Commands
//
//   - draw: render the static view of an input file
//   - run: submit an input to the solver and play the result back
//   - tree: render a BFS or DFS traversal tree with Graphviz
//   - serve: run the single-session web viewer
//   - config: show the effective configuration
//   - completion: shell completion scripts
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger
// is carried in the command context and also receives solver, session and
// playback events through the observability hooks.
package cli

import (
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/stepview/internal/config"
	"github.com/matzehuels/stepview/pkg/buildinfo"
	"github.com/matzehuels/stepview/pkg/playback"
	"github.com/matzehuels/stepview/pkg/session"
	"github.com/matzehuels/stepview/pkg/solver"
)

// =============================================================================
// Constants
// =============================================================================

const appName = config.AppName

// Log levels accepted by [New].
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	solverURL  string
	interval   time.Duration
	verbose    bool
	cfg        *config.Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		cfg:    config.Default(),
	}
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Stepview animates solver traces over their input",
		Long: `Stepview sends a skyline, graph or point-set problem to a solver service
and replays the returned trace step by step as a diagram.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error { return c.setup(cmd) },
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (TOML or YAML)")
	root.PersistentFlags().StringVar(&c.solverURL, "solver", "", "solver base URL")
	root.PersistentFlags().DurationVar(&c.interval, "interval", 0, "time between playback frames")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.drawCommand())
	root.AddCommand(c.runCommand())
	root.AddCommand(c.treeCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup loads the config, applies flag overrides and installs the logging
// hooks before any command runs.
func (c *CLI) setup(cmd *cobra.Command) error {
	if c.verbose {
		c.Logger.SetLevel(LogDebug)
	}
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	if c.solverURL != "" {
		cfg.SolverURL = c.solverURL
	}
	if c.interval > 0 {
		cfg.Interval = config.Duration(c.interval)
	}
	c.cfg = cfg

	installHooks(c.Logger)
	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	return nil
}

// =============================================================================
// Factories
// =============================================================================

func (c *CLI) newClient() (*solver.Client, error) {
	return solver.NewClient(c.cfg.SolverURL, solver.WithTimeout(c.cfg.SolverTimeout()))
}

func (c *CLI) newSession(opts ...session.Option) *session.Session {
	base := []session.Option{
		session.WithViewport(c.cfg.Viewport),
		session.WithPlayer(playback.New(playback.WithInterval(c.cfg.TickInterval()))),
	}
	return session.New(append(base, opts...)...)
}

// =============================================================================
// Paths
// =============================================================================

// outputPath derives an output file name from the input when none is given.
func outputPath(output, input, suffix, format string) string {
	if output != "" {
		return output
	}
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return base + suffix + "." + format
}
