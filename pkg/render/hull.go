package render

import (
	"fmt"
	"strings"

	"github.com/matzehuels/stepview/pkg/canvas"
	"github.com/matzehuels/stepview/pkg/geom"
	"github.com/matzehuels/stepview/pkg/solver"
)

type hullScene struct {
	v   geom.Viewport
	res *solver.HullResult
}

func (h *hullScene) Algorithm() solver.Algorithm { return solver.Hull }

// Len is zero when the result has no input points: there is nothing to step
// over, so playback goes straight to the terminal frame.
func (h *hullScene) Len() int {
	if len(h.res.InputPoints) == 0 {
		return 0
	}
	return h.res.Len()
}

// Draw shows step k as the current stack and candidate over all input
// points. The terminal frame shows the closed hull instead.
func (h *hullScene) Draw(s canvas.Surface, k int) {
	s.Clear()
	for _, p := range h.res.InputPoints {
		s.Dot(h.v.Plot(p), pointRadius, pointStyle)
	}

	if k >= h.Len() {
		if len(h.res.HullPoints) >= 2 {
			s.Polyline(h.plot(h.res.HullPoints), true, hullStyle)
		}
	} else {
		step := h.res.Steps[max(0, k)]
		if len(step.Stack) >= 2 {
			s.Polyline(h.plot(step.Stack), false, stackStyle)
		}
		if step.Candidate != nil {
			s.Circle(h.v.Plot(*step.Candidate), candidateRadius, candidateStyle)
		}
	}
	s.Text(geom.Point{X: 6, Y: 14}, h.Status(k), statusStyle)
}

func (h *hullScene) plot(pts []geom.NormPoint) []geom.Point {
	out := make([]geom.Point, len(pts))
	for i, p := range pts {
		out[i] = h.v.Plot(p)
	}
	return out
}

func (h *hullScene) Status(k int) string {
	if k >= h.Len() {
		return "Hull complete"
	}
	return HullStepLine(h.res, max(0, k))
}

// Output is the step header followed by the hull in problem units.
func (h *hullScene) Output(k int) string {
	raw := formatPoints(h.res.HullRaw)
	if k >= h.Len() {
		return "Hull complete\n" + raw
	}
	k = max(0, k)
	s := h.res.Steps[k]
	return fmt.Sprintf("Step %d/%d\n%s | %s | cross=%d\n\n%s",
		k+1, h.Len(), strings.ToUpper(string(s.Phase)), strings.ToUpper(string(s.Action)), s.Cross, raw)
}

// HullStepLine renders step k of h on a single line.
func HullStepLine(h *solver.HullResult, k int) string {
	s := h.Steps[k]
	return fmt.Sprintf("Step %d/%d  %s | %s | cross=%d",
		k+1, h.Len(), strings.ToUpper(string(s.Phase)), strings.ToUpper(string(s.Action)), s.Cross)
}
