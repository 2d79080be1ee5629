package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/stepview/pkg/errors"
	"github.com/matzehuels/stepview/pkg/problem"
	"github.com/matzehuels/stepview/pkg/render/nodelink"
	"github.com/matzehuels/stepview/pkg/session"
)

// treeOpts holds the command-line flags for the tree command.
type treeOpts struct {
	algorithm string // bfs or dfs
	result    string // saved solver response
	output    string // output file path
	format    string // svg, png, pdf or dot
	hideEdges bool   // leave out non-tree graph edges
}

const formatDOT = "dot"

// treeCommand renders a traversal as a Graphviz tree.
func (c *CLI) treeCommand() *cobra.Command {
	opts := treeOpts{algorithm: "bfs", format: session.FormatSVG}

	cmd := &cobra.Command{
		Use:   "tree <file>",
		Short: "Render a BFS or DFS traversal tree with Graphviz",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTree(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.algorithm, "algorithm", "a", opts.algorithm, "traversal: bfs, dfs")
	cmd.Flags().StringVar(&opts.result, "result", "", "use a saved solver response (JSON)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: <input>_tree.<format>)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg, png, pdf, dot")
	cmd.Flags().BoolVar(&opts.hideEdges, "hide-edges", false, "omit graph edges the traversal did not use")

	return cmd
}

func (c *CLI) runTree(ctx context.Context, path string, opts treeOpts) error {
	in, err := readInput(opts.algorithm, path)
	if err != nil {
		return err
	}
	if !in.Algorithm.Traversal() {
		return errors.New(errors.ErrCodeInvalidAlgorithm, "tree needs bfs or dfs, got %s", opts.algorithm)
	}

	res, err := c.solve(ctx, in, opts.result)
	if err != nil {
		return err
	}
	if res.Traversal == nil {
		return errors.New(errors.ErrCodeInvalidResponse, "%s result has no traversal", in.Algorithm)
	}

	g := problem.ParseGraph(in.Text())
	dot := nodelink.ToDOT(g, res.Traversal, nodelink.Options{HideGraphEdges: opts.hideEdges})

	var data []byte
	switch opts.format {
	case formatDOT:
		data = []byte(dot)
	case session.FormatSVG:
		data, err = nodelink.RenderSVG(ctx, dot)
	case session.FormatPNG:
		data, err = nodelink.RenderPNG(ctx, dot, 2.0)
	case session.FormatPDF:
		data, err = nodelink.RenderPDF(ctx, dot)
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %s (must be 'svg', 'png', 'pdf' or 'dot')", opts.format)
	}
	if err != nil {
		return err
	}

	out := outputPath(opts.output, in.Path, "_tree", opts.format)
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	printSuccess("%s tree: %d nodes, %d tree edges", in.Algorithm, g.N, len(res.Traversal.Edges))
	printFile(out)
	return nil
}
