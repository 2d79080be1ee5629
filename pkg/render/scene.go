package render

import (
	"github.com/matzehuels/stepview/pkg/canvas"
	"github.com/matzehuels/stepview/pkg/errors"
	"github.com/matzehuels/stepview/pkg/geom"
	"github.com/matzehuels/stepview/pkg/problem"
	"github.com/matzehuels/stepview/pkg/solver"
)

// Scene draws the frames of one solver result over its input.
type Scene interface {
	Algorithm() solver.Algorithm
	// Len is the trace length; frames run from 0 to Len inclusive.
	Len() int
	// Draw clears s and draws frame k. Any k >= Len draws the terminal frame.
	Draw(s canvas.Surface, k int)
	// Status is a one-line summary of frame k.
	Status(k int) string
	// Output is the text shown next to frame k.
	Output(k int) string
}

// NewScene builds the scene for res. Traversal results need the parsed
// [problem.Graph] they were computed from; other results carry everything
// they draw.
func NewScene(v geom.Viewport, st problem.Structure, res *solver.Result) (Scene, error) {
	if res == nil {
		return nil, errors.New(errors.ErrCodeInvalidResponse, "no solver result")
	}
	switch res.Algorithm {
	case solver.Skyline:
		if res.Skyline == nil {
			break
		}
		return &skylineScene{v: v, res: res.Skyline}, nil
	case solver.BFS, solver.DFS:
		if res.Traversal == nil {
			break
		}
		g, ok := st.(problem.Graph)
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidInput, "%s needs a graph input", res.Algorithm)
		}
		return &traversalScene{v: v, algo: res.Algorithm, graph: g, res: res.Traversal}, nil
	case solver.Hull:
		if res.Hull == nil {
			break
		}
		return &hullScene{v: v, res: res.Hull}, nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidAlgorithm, "unknown algorithm %q", res.Algorithm)
	}
	return nil, errors.New(errors.ErrCodeInvalidResponse, "%s result is missing", res.Algorithm)
}
