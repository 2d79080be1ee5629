package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/stepview/pkg/canvas"
	"github.com/matzehuels/stepview/pkg/errors"
	"github.com/matzehuels/stepview/pkg/problem"
	"github.com/matzehuels/stepview/pkg/solver"
)

// Options configures traversal tree rendering.
type Options struct {
	// HideGraphEdges leaves out the graph edges the traversal did not use.
	HideGraphEdges bool
}

// ToDOT converts the traversal of g to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG], [RenderPDF], or [RenderPNG].
//
// Tree edges are emitted in trace order as solid arrows. Nodes are labelled
// "i (#rank)" with their discovery rank; nodes the traversal never reached
// keep the plain index and a dashed outline. Graph edges that are not tree
// edges are drawn dashed grey without arrowheads and do not affect ranking.
func ToDOT(g problem.Graph, t *solver.TraversalResult, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=14];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	rank := t.Rank()
	for i := range g.N {
		fmt.Fprintf(&buf, "  n%d [%s];\n", i, fmtAttrs(i, rank))
	}

	buf.WriteString("\n")
	tree := make(map[[2]int]bool, len(t.Edges))
	for _, e := range t.Edges {
		if !g.Has(e.U()) || !g.Has(e.V()) {
			continue
		}
		tree[undirected(e.U(), e.V())] = true
		fmt.Fprintf(&buf, "  n%d -> n%d [penwidth=2];\n", e.U(), e.V())
	}

	if !opts.HideGraphEdges {
		for _, e := range g.Edges() {
			if tree[undirected(e[0], e[1])] {
				continue
			}
			fmt.Fprintf(&buf, "  n%d -> n%d [style=dashed, color=grey, dir=none, constraint=false];\n", e[0], e[1])
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtAttrs(i int, rank map[int]int) string {
	r, ok := rank[i]
	if !ok {
		return fmt.Sprintf("label=%q, style=\"filled,dashed\"", strconv.Itoa(i))
	}
	return fmt.Sprintf("label=%q", fmt.Sprintf("%d (#%d)", i, r))
}

func undirected(u, v int) [2]int {
	if u > v {
		u, v = v, u
	}
	return [2]int{u, v}
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with [canvas.ToPDF] or [canvas.ToPNG].
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render")
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's point-based svg header with one whose
// width and height equal the viewBox, so the image scales like our own SVGs.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	header := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(header))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(ctx context.Context, dot string) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return canvas.ToPDF(ctx, svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
// A scale of 2.0 produces a 2x resolution image.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(ctx context.Context, dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return canvas.ToPNG(ctx, svg, scale)
}
