// Package nodelink renders a BFS or DFS traversal as a Graphviz tree.
//
// The animated view in package render shows a traversal on a fixed circle
// layout. This package gives the same result a layered layout instead: the
// traversal tree flows top to bottom from the source, each node carries its
// discovery rank, and the graph edges the traversal skipped are drawn as
// faint dashed lines.
//
// # Usage
//
//	dot := nodelink.ToDOT(graph, res.Traversal, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// For PDF or PNG output:
//
//	pdf, err := nodelink.RenderPDF(ctx, dot)
//	png, err := nodelink.RenderPNG(ctx, dot, 2.0)
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
package nodelink
