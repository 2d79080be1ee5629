package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/cobra"

	"github.com/matzehuels/stepview/pkg/errors"
	"github.com/matzehuels/stepview/pkg/playback"
	"github.com/matzehuels/stepview/pkg/render"
	"github.com/matzehuels/stepview/pkg/session"
	"github.com/matzehuels/stepview/pkg/solver"
)

// runOpts holds the command-line flags for the run command.
type runOpts struct {
	result string // solver response to replay instead of calling the solver
	output string // SVG file rewritten on every frame
	frames string // directory receiving one numbered SVG per frame
	tui    bool   // interactive playback view
}

// runCommand submits an input to the solver and plays back the result.
func (c *CLI) runCommand() *cobra.Command {
	var opts runOpts

	cmd := &cobra.Command{
		Use:   "run <algorithm> <file>",
		Short: "Solve a problem file and play back the trace",
		Long: `Send a problem file to the solver and replay the returned trace one step
per tick. The current frame is written to --output on every tick; --frames
keeps every frame as a numbered file. Use --result to replay a saved solver
response without contacting the solver.`,
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: completeAlgorithm,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRun(cmd.Context(), args[0], args[1], opts)
		},
	}

	cmd.Flags().StringVar(&opts.result, "result", "", "replay a saved solver response (JSON)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "SVG file updated on every frame")
	cmd.Flags().StringVar(&opts.frames, "frames", "", "directory to write every frame to")
	cmd.Flags().BoolVar(&opts.tui, "tui", false, "show an interactive playback view")

	return cmd
}

func (c *CLI) runRun(ctx context.Context, algorithm, path string, opts runOpts) error {
	in, err := readInput(algorithm, path)
	if err != nil {
		return err
	}
	if opts.frames != "" {
		if err := os.MkdirAll(opts.frames, 0o755); err != nil {
			return fmt.Errorf("create frames dir: %w", err)
		}
	}

	var events chan session.FrameEvent
	w := &frameWriter{output: opts.output, frames: opts.frames, quiet: opts.tui}
	sess := c.newSession(session.WithOnFrame(func(ev session.FrameEvent) {
		w.write(ev)
		if events != nil {
			events <- ev
		}
	}))
	if err := sess.Select(ctx, in.Algorithm, in.Name, in.Text()); err != nil {
		return err
	}
	if !opts.tui {
		printBlock("Input", sess.Snapshot().Input)
		printNewline()
	}

	res, err := c.solve(ctx, in, opts.result)
	if err != nil {
		return err
	}

	if opts.tui {
		// Every run draws exactly Len()+1 frames, so sends never block.
		events = make(chan session.FrameEvent, res.Len()+1)
	} else {
		printBlock("Output", render.Report(res))
		printNewline()
		if res.Skyline != nil {
			printPlot("Profile", render.Profile(res.Skyline, plotWidth))
		}
	}

	ctrl, err := sess.Apply(ctx, res)
	if err != nil {
		return err
	}

	if opts.tui {
		if err := runPlaybackTUI(ctx, ctrl, events, in); err != nil {
			return err
		}
	} else if _, err := ctrl.Wait(ctx); err != nil {
		return err
	}

	if err := w.err(); err != nil {
		return err
	}
	if ctrl.State() == playback.StateDone && !opts.tui {
		printSuccess("Played %d steps", ctrl.Len())
	}
	if opts.output != "" {
		printFile(opts.output)
	}
	if opts.frames != "" {
		printFile(opts.frames)
	}
	return nil
}

// solve returns the solver result for in, either from a saved response or
// from the solver service.
func (c *CLI) solve(ctx context.Context, in *inputFile, resultPath string) (*solver.Result, error) {
	logger := loggerFromContext(ctx)

	if resultPath != "" {
		data, err := os.ReadFile(resultPath)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "read result %s", resultPath)
		}
		res, err := solver.Decode(in.Algorithm, data)
		if err != nil {
			return nil, err
		}
		logger.Infof("Loaded %s result from %s", in.Algorithm, resultPath)
		return res, nil
	}

	client, err := c.newClient()
	if err != nil {
		return nil, err
	}
	stop := startSpinner(ctx, fmt.Sprintf("Solving %s with %s...", in.Algorithm, client.URL()))
	prog := newProgress(logger)

	res, err := client.Run(ctx, in.Algorithm, in.Name, in.Data)
	stop()
	if err != nil {
		return nil, err
	}
	prog.done(fmt.Sprintf("Solved %s: %d steps", in.Algorithm, res.Len()))
	return res, nil
}

// frameWriter persists playback frames. It runs on the playback goroutine.
type frameWriter struct {
	output string
	frames string
	quiet  bool

	mu    sync.Mutex
	first error
}

func (w *frameWriter) write(ev session.FrameEvent) {
	if !w.quiet {
		printStatus(ev.Index, ev.Length, ev.Status)
	}
	if w.output != "" {
		w.record(os.WriteFile(w.output, ev.SVG, 0o644))
	}
	if w.frames != "" {
		name := filepath.Join(w.frames, fmt.Sprintf("frame-%04d.svg", ev.Index))
		w.record(os.WriteFile(name, ev.SVG, 0o644))
	}
}

func (w *frameWriter) record(err error) {
	if err == nil {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.first == nil {
		w.first = err
	}
}

func (w *frameWriter) err() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.first
}
