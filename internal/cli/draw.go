package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/matzehuels/stepview/pkg/session"
	"github.com/matzehuels/stepview/pkg/solver"
)

// drawOpts holds the command-line flags for the draw command.
type drawOpts struct {
	output string // output file path
	format string // svg, png or pdf
	scale  int    // supersampling factor for png
}

// drawCommand renders the static view of an input without calling a solver.
func (c *CLI) drawCommand() *cobra.Command {
	opts := drawOpts{format: session.FormatSVG, scale: 2}

	cmd := &cobra.Command{
		Use:   "draw <algorithm> <file>",
		Short: "Render the input view of a problem file",
		Long: `Render the buildings, graph or point set in a problem file the way it is
shown before the solver runs. The algorithm decides how the file is read:
skyline reads buildings, bfs and dfs read an adjacency matrix, hull reads points.`,
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: completeAlgorithm,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDraw(cmd.Context(), args[0], args[1], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: <input>.<format>)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg, png, pdf")
	cmd.Flags().IntVar(&opts.scale, "scale", opts.scale, "png supersampling factor")

	return cmd
}

func (c *CLI) runDraw(ctx context.Context, algorithm, path string, opts drawOpts) error {
	logger := loggerFromContext(ctx)

	in, err := readInput(algorithm, path)
	if err != nil {
		return err
	}
	logger.Debugf("Read %s (%d bytes)", in.Path, len(in.Data))

	sess := c.newSession()
	if err := sess.Select(ctx, in.Algorithm, in.Name, in.Text()); err != nil {
		return err
	}
	data, err := sess.Export(ctx, opts.format, opts.scale)
	if err != nil {
		return err
	}

	out := outputPath(opts.output, in.Path, "", opts.format)
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}

	printBlock("Input", sess.Snapshot().Input)
	printNewline()
	printSuccess("Rendered %s (%s)", in.Name, humanize.Bytes(uint64(len(data))))
	printFile(out)
	printNextStep("Solve it", fmt.Sprintf("%s run %s %s", appName, strings.ToLower(in.Algorithm.String()), in.Path))
	return nil
}

// completeAlgorithm offers algorithm names for the first argument and files
// after that.
func completeAlgorithm(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveDefault
	}
	names := make([]string, len(solver.Algorithms))
	for i, a := range solver.Algorithms {
		names[i] = strings.ToLower(a.String())
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
