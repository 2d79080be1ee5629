package problem

import "strings"

// Kind identifies one of the three supported input formats.
type Kind int

const (
	KindBuildings Kind = iota + 1
	KindGraph
	KindPoints
)

func (k Kind) String() string {
	switch k {
	case KindBuildings:
		return "buildings"
	case KindGraph:
		return "graph"
	case KindPoints:
		return "points"
	default:
		return "unknown"
	}
}

// KindFor returns the input format an algorithm name consumes.
// Matching is case-insensitive; unknown names report ok=false.
func KindFor(algorithm string) (kind Kind, ok bool) {
	switch strings.ToUpper(strings.TrimSpace(algorithm)) {
	case "SKYLINE":
		return KindBuildings, true
	case "BFS", "DFS":
		return KindGraph, true
	case "HULL":
		return KindPoints, true
	default:
		return 0, false
	}
}

// Structure is the typed result of parsing raw input text.
// It is implemented by [BuildingList], [Graph] and [PointSet].
type Structure interface {
	Kind() Kind
	// Len reports the number of drawable entities (buildings, nodes or points).
	Len() int
}

// Building is a single skyline building with left edge L, height H and right edge R.
type Building struct {
	L float64 `json:"l"`
	H float64 `json:"h"`
	R float64 `json:"r"`
}

// BuildingList is an ordered list of buildings, each satisfying L < R and H > 0.
type BuildingList []Building

func (BuildingList) Kind() Kind   { return KindBuildings }
func (b BuildingList) Len() int   { return len(b) }
func (b Building) Width() float64 { return b.R - b.L }

// Graph is an adjacency-matrix graph with N nodes. Adj is always N×N.
type Graph struct {
	N   int         `json:"n"`
	Adj [][]float64 `json:"adj"`
}

func (Graph) Kind() Kind { return KindGraph }
func (g Graph) Len() int { return g.N }

// Connected reports whether nodes i and j share an edge in either direction.
// Indices outside [0, N) are never connected.
func (g Graph) Connected(i, j int) bool {
	if !g.Has(i) || !g.Has(j) {
		return false
	}
	return g.cell(i, j) != 0 || g.cell(j, i) != 0
}

// Has reports whether i is a valid node index.
func (g Graph) Has(i int) bool { return i >= 0 && i < g.N }

func (g Graph) cell(i, j int) float64 {
	if i >= len(g.Adj) || j >= len(g.Adj[i]) {
		return 0
	}
	return g.Adj[i][j]
}

// Edges returns every undirected edge {i, j} with i < j, in row-major order.
func (g Graph) Edges() [][2]int {
	var edges [][2]int
	for i := 0; i < g.N; i++ {
		for j := i + 1; j < g.N; j++ {
			if g.Connected(i, j) {
				edges = append(edges, [2]int{i, j})
			}
		}
	}
	return edges
}

// Point is a 2D point in problem units.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// PointSet is an ordered set of points.
type PointSet []Point

func (PointSet) Kind() Kind { return KindPoints }
func (p PointSet) Len() int { return len(p) }
