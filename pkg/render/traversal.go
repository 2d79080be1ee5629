package render

import (
	"fmt"

	"github.com/matzehuels/stepview/pkg/canvas"
	"github.com/matzehuels/stepview/pkg/geom"
	"github.com/matzehuels/stepview/pkg/problem"
	"github.com/matzehuels/stepview/pkg/solver"
)

type traversalScene struct {
	v     geom.Viewport
	algo  solver.Algorithm
	graph problem.Graph
	res   *solver.TraversalResult
}

func (t *traversalScene) Algorithm() solver.Algorithm { return t.algo }
func (t *traversalScene) Len() int                    { return t.res.Len() }

// Draw reveals the first k tree edges and the ranks of the first k+1
// discovered nodes. Edges or order entries naming nodes outside the graph
// are skipped.
func (t *traversalScene) Draw(s canvas.Surface, k int) {
	s.Clear()
	pos := t.v.Circle(t.graph.N)
	drawEdges(s, t.graph, pos)

	for _, e := range t.res.Edges[:clamp(k, len(t.res.Edges))] {
		if t.graph.Has(e.U()) && t.graph.Has(e.V()) {
			s.Line(pos[e.U()], pos[e.V()], treeEdgeStyle)
		}
	}

	drawNodes(s, pos)

	for idx, node := range t.res.Order[:clamp(k+1, len(t.res.Order))] {
		if !t.graph.Has(node) {
			continue
		}
		p := pos[node]
		s.Text(geom.Point{X: p.X + 14, Y: p.Y - 10}, fmt.Sprintf("#%d", idx), rankStyle)
	}
}

func (t *traversalScene) Status(k int) string {
	n := t.Len()
	if k >= n {
		return fmt.Sprintf("%s complete: %d edges, order %s", t.algo, n, joinInts(t.res.Order))
	}
	return fmt.Sprintf("Step %d/%d", max(0, k)+1, n)
}

func (t *traversalScene) Output(int) string { return traversalReport(t.res) }

// clamp limits k to [0, n].
func clamp(k, n int) int { return max(0, min(k, n)) }
