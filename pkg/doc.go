// Package pkg provides the core libraries for Stepview, a step-by-step
// playback viewer for algorithm traces.
//
// # Overview
//
// Stepview draws a problem input (a skyline of buildings, an adjacency
// matrix, a point cloud), sends it to a remote solver and replays the
// returned trace one step per tick. The pkg directory is organized leaves
// first:
//
//  1. [problem] - Tolerant input parsing into buildings, graphs and points
//  2. [geom] - Viewport mapping and the radial graph layout
//  3. [canvas] - Drawing surfaces (SVG, raster PNG, recorder, PDF conversion)
//  4. [render] - Static views, per-algorithm animated scenes and text reports
//  5. [playback] - Cancellable, timer-driven trace stepping
//  6. [solver] - HTTP client and response decoding for the solver service
//  7. [session] - Selection, solve and playback orchestration
//
// # Architecture
//
// The typical data flow:
//
//	Problem text
//	     ↓
//	[problem] parse → [render] static view
//	     ↓
//	[solver] POST /run → Result
//	     ↓
//	[render] scene → [playback] one frame per tick
//	     ↓
//	SVG/PNG/PDF frames
//
// # Quick Start
//
// Draw an input, solve it and play the trace back:
//
//	import (
//	    "context"
//	    "github.com/matzehuels/stepview/pkg/session"
//	    "github.com/matzehuels/stepview/pkg/solver"
//	)
//
//	client, _ := solver.NewClient("http://localhost:8080")
//	sess := session.New(session.WithOnFrame(func(ev session.FrameEvent) {
//	    fmt.Println(ev.Status)
//	}))
//
//	// 1. Select an input; the static view is drawn immediately
//	_ = sess.Select(ctx, solver.BFS, "graph.txt", "3\n0,1,0\n1,0,1\n0,1,0")
//
//	// 2. Solve and start playback
//	ctrl, _ := sess.Run(ctx, client)
//
//	// 3. Wait for the last frame
//	ctrl.Wait(ctx)
//
// [render/nodelink] exports a finished traversal as a Graphviz tree.
//
// # Testing
//
// Playback takes a [playback.Clock]; tests drive it with
// [playback.ManualClock] instead of sleeping:
//
//	go test ./pkg/...
//	go test -run Example ./pkg/...
//
// [problem]: https://pkg.go.dev/github.com/matzehuels/stepview/pkg/problem
// [geom]: https://pkg.go.dev/github.com/matzehuels/stepview/pkg/geom
// [canvas]: https://pkg.go.dev/github.com/matzehuels/stepview/pkg/canvas
// [render]: https://pkg.go.dev/github.com/matzehuels/stepview/pkg/render
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/stepview/pkg/render/nodelink
// [playback]: https://pkg.go.dev/github.com/matzehuels/stepview/pkg/playback
// [playback.Clock]: https://pkg.go.dev/github.com/matzehuels/stepview/pkg/playback#Clock
// [playback.ManualClock]: https://pkg.go.dev/github.com/matzehuels/stepview/pkg/playback#ManualClock
// [solver]: https://pkg.go.dev/github.com/matzehuels/stepview/pkg/solver
// [session]: https://pkg.go.dev/github.com/matzehuels/stepview/pkg/session
package pkg
