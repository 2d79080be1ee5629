package render

import (
	"strconv"
	"strings"

	"github.com/matzehuels/stepview/pkg/problem"
	"github.com/matzehuels/stepview/pkg/solver"
)

// Report is the text summary of a solver result:
//
//   - skyline: one "x y" line per key point, in problem units
//   - BFS/DFS: "Order: ..." then one "u, v" line per tree edge
//   - hull: one "x y" line per hull vertex, in problem units
func Report(res *solver.Result) string {
	switch {
	case res == nil:
		return ""
	case res.Skyline != nil:
		return formatPoints(res.Skyline.Raw())
	case res.Traversal != nil:
		return traversalReport(res.Traversal)
	case res.Hull != nil:
		return formatPoints(res.Hull.HullRaw)
	default:
		return ""
	}
}

// Profile samples the skyline height at n evenly spaced x positions across
// its frame, in problem units. Each key point holds its height until the next
// one. It returns nil for an empty skyline or n < 2.
func Profile(s *solver.SkylineResult, n int) []float64 {
	if s == nil || len(s.Points) == 0 || n < 2 {
		return nil
	}
	raw := s.Raw()
	f := s.Meta.Frame()
	step := f.DX() / float64(n-1)

	out := make([]float64, n)
	k := -1
	for i := range out {
		x := f.MinX + float64(i)*step
		for k+1 < len(raw) && raw[k+1].X <= x {
			k++
		}
		if k >= 0 {
			out[i] = raw[k].Y
		}
	}
	return out
}

func traversalReport(t *solver.TraversalResult) string {
	var b strings.Builder
	b.WriteString("Order: ")
	b.WriteString(joinInts(t.Order))
	b.WriteString("\n\n")
	for i, e := range t.Edges {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(strconv.Itoa(e.U()) + ", " + strconv.Itoa(e.V()))
	}
	return b.String()
}

func formatPoints(pts []problem.Point) string {
	lines := make([]string, len(pts))
	for i, p := range pts {
		lines[i] = formatNum(p.X) + " " + formatNum(p.Y)
	}
	return strings.Join(lines, "\n")
}

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}
	return strings.Join(parts, " ")
}

// formatNum prints whole numbers without a fraction and others in their
// shortest form.
func formatNum(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
