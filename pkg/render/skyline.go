package render

import (
	"github.com/matzehuels/stepview/pkg/canvas"
	"github.com/matzehuels/stepview/pkg/geom"
	"github.com/matzehuels/stepview/pkg/solver"
)

// skylineScene has no intermediate steps; every frame is the finished
// skyline.
type skylineScene struct {
	v   geom.Viewport
	res *solver.SkylineResult
}

func (sk *skylineScene) Algorithm() solver.Algorithm { return solver.Skyline }
func (sk *skylineScene) Len() int                    { return 0 }

// Draw strokes the skyline as a staircase: up from the bottom edge under the
// first key point, then across to each next x at the current height and up
// or down to that point's height.
func (sk *skylineScene) Draw(s canvas.Surface, _ int) {
	s.Clear()
	pts := sk.res.Points
	if len(pts) == 0 {
		return
	}
	first := sk.v.Baseline(pts[0])
	path := []geom.Point{{X: first.X, Y: sk.v.Height}, first}
	cur := first
	for _, p := range pts[1:] {
		next := sk.v.Baseline(p)
		path = append(path, geom.Point{X: next.X, Y: cur.Y}, next)
		cur = next
	}
	s.Polyline(path, false, skylineStyle)
}

func (sk *skylineScene) Status(int) string { return "Skyline complete" }
func (sk *skylineScene) Output(int) string { return formatPoints(sk.res.Raw()) }
