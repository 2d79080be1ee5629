package render

import (
	"strconv"

	"github.com/matzehuels/stepview/pkg/canvas"
	"github.com/matzehuels/stepview/pkg/geom"
	"github.com/matzehuels/stepview/pkg/problem"
)

// Static clears s and draws the input-only view of st. Empty structures
// leave a cleared surface.
func Static(s canvas.Surface, v geom.Viewport, st problem.Structure) {
	s.Clear()
	switch st := st.(type) {
	case problem.BuildingList:
		drawBuildings(s, v, st)
	case problem.Graph:
		pos := v.Circle(st.N)
		drawEdges(s, st, pos)
		drawNodes(s, pos)
	case problem.PointSet:
		drawPoints(s, v, st)
	}
}

func drawBuildings(s canvas.Surface, v geom.Viewport, bs problem.BuildingList) {
	f := geom.BuildingFrame(bs)
	for _, b := range bs {
		s.Rect(v.BuildingRect(b, f), buildingStyle)
	}
}

// drawEdges strokes every undirected edge of g lightly.
func drawEdges(s canvas.Surface, g problem.Graph, pos []geom.Point) {
	for _, e := range g.Edges() {
		s.Line(pos[e[0]], pos[e[1]], edgeStyle)
	}
}

// drawNodes draws numbered node circles at pos.
func drawNodes(s canvas.Surface, pos []geom.Point) {
	for i, p := range pos {
		s.Circle(p, nodeRadius, nodeStyle)
		s.Text(geom.Point{X: p.X - 4, Y: p.Y + 5}, strconv.Itoa(i), nodeLabelStyle)
	}
}

func drawPoints(s canvas.Surface, v geom.Viewport, ps problem.PointSet) {
	f := geom.PointFrame(ps)
	for _, p := range ps {
		s.Dot(v.Plot(f.Normalize(p.X, p.Y)), pointRadius, pointStyle)
	}
}
