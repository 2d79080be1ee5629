package solver

import (
	"github.com/matzehuels/stepview/pkg/geom"
	"github.com/matzehuels/stepview/pkg/problem"
)

// Result is a decoded solver response. Exactly one of Skyline, Traversal
// and Hull is set, matching Algorithm.
type Result struct {
	Algorithm Algorithm
	Skyline   *SkylineResult
	Traversal *TraversalResult
	Hull      *HullResult
}

// Len is the trace length to play back: edges for a traversal, steps for a
// hull, and 0 for a skyline, which has no intermediate frames.
func (r *Result) Len() int {
	switch {
	case r == nil:
		return 0
	case r.Traversal != nil:
		return r.Traversal.Len()
	case r.Hull != nil:
		return r.Hull.Len()
	default:
		return 0
	}
}

// SkylineMeta is the normalization frame the solver used for a skyline.
type SkylineMeta struct {
	MinX float64 `json:"minX"`
	MaxX float64 `json:"maxX"`
	MaxY float64 `json:"maxY"`
}

// Frame returns the meta as a frame standing on y=0.
func (m SkylineMeta) Frame() geom.Frame {
	return geom.Frame{MinX: m.MinX, MaxX: m.MaxX, MaxY: m.MaxY}
}

// SkylineResult holds the skyline key points in unit space.
type SkylineResult struct {
	Points []geom.NormPoint `json:"points"`
	Meta   SkylineMeta      `json:"meta"`
}

// Raw returns the key points in problem units.
func (s *SkylineResult) Raw() []problem.Point {
	return geom.Denormalize(s.Points, s.Meta.Frame())
}

// Edge is a traversal tree edge from U to V, encoded as [u, v].
type Edge [2]int

func (e Edge) U() int { return e[0] }
func (e Edge) V() int { return e[1] }

// TraversalResult is a BFS or DFS run. Edges are revealed in order; Order is
// the discovery order of nodes.
type TraversalResult struct {
	Algo   string `json:"algo,omitempty"`
	N      int    `json:"n,omitempty"`
	Source int    `json:"source"`
	Order  []int  `json:"order"`
	Edges  []Edge `json:"edges"`
}

func (t *TraversalResult) Len() int { return len(t.Edges) }

// Rank returns the discovery rank of every node in Order. A node listed
// twice keeps its first rank.
func (t *TraversalResult) Rank() map[int]int {
	rank := make(map[int]int, len(t.Order))
	for i, node := range t.Order {
		if _, seen := rank[node]; !seen {
			rank[node] = i
		}
	}
	return rank
}

// Phase is the half of the monotone chain a hull step belongs to.
type Phase string

const (
	PhaseLower Phase = "lower"
	PhaseUpper Phase = "upper"
)

// Action is what a hull step did to the stack.
type Action string

const (
	ActionPush Action = "push"
	ActionPop  Action = "pop"
)

// HullStep is one snapshot of the hull construction.
type HullStep struct {
	Phase     Phase            `json:"phase"`
	Action    Action           `json:"action"`
	Candidate *geom.NormPoint  `json:"candidate"`
	Removed   *geom.NormPoint  `json:"removed,omitempty"`
	Stack     []geom.NormPoint `json:"stack"`
	// Cross is the cross product behind a pop decision, 0 otherwise.
	Cross int64 `json:"cross"`
}

// HullResult is a convex hull run. Points are in unit space except the Raw
// variants, which are in problem units.
type HullResult struct {
	Meta        geom.Frame       `json:"meta"`
	InputPoints []geom.NormPoint `json:"inputPoints"`
	HullPoints  []geom.NormPoint `json:"hullPoints"`
	InputRaw    []problem.Point  `json:"inputRaw,omitempty"`
	HullRaw     []problem.Point  `json:"hullRaw"`
	Steps       []HullStep       `json:"steps"`
}

func (h *HullResult) Len() int { return len(h.Steps) }
