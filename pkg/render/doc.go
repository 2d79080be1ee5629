// Package render draws problem instances and solver traces onto a
// [canvas.Surface].
//
// # Overview
//
// [Static] draws the input alone: building outlines, a graph on a circle,
// or a scatter of points. It needs no solver result, so it runs as soon as
// input is selected.
//
// A [Scene] binds an input to a solver result and draws any frame of its
// playback. Frame k shows the first k steps of the trace on top of the
// static layer; frame Len() is the terminal frame:
//
//	scene, err := render.NewScene(viewport, graph, result)
//	svg := canvas.NewSVG(viewport)
//	for k := 0; k <= scene.Len(); k++ {
//	    scene.Draw(svg, k)
//	    write(svg.Bytes())
//	}
//
// Every Draw starts with a Clear and redraws everything, so drawing frame k
// twice yields identical output and frames can be drawn in any order.
//
// # Reports
//
// Alongside the picture, each scene produces the text shown next to it:
// [Report] for the solver result as a whole and [Scene.Output] for a single
// frame (hull playback reports the current step there).
//
// # Node-Link Diagrams
//
// The [nodelink] subpackage exports a traversal tree through Graphviz.
package render
