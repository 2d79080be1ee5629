package solver

import (
	"strings"

	"github.com/matzehuels/stepview/pkg/errors"
	"github.com/matzehuels/stepview/pkg/problem"
)

// Algorithm selects what the solver computes.
type Algorithm string

const (
	Skyline Algorithm = "SKYLINE"
	BFS     Algorithm = "BFS"
	DFS     Algorithm = "DFS"
	Hull    Algorithm = "HULL"
)

// Algorithms lists every supported algorithm in display order.
var Algorithms = []Algorithm{Skyline, BFS, DFS, Hull}

// ParseAlgorithm resolves a case-insensitive algorithm name.
func ParseAlgorithm(name string) (Algorithm, error) {
	a := Algorithm(strings.ToUpper(strings.TrimSpace(name)))
	for _, known := range Algorithms {
		if a == known {
			return a, nil
		}
	}
	return "", errors.New(errors.ErrCodeInvalidAlgorithm,
		"unknown algorithm %q (want one of skyline, bfs, dfs, hull)", name)
}

func (a Algorithm) String() string { return string(a) }

// Kind is the input format the algorithm consumes.
func (a Algorithm) Kind() problem.Kind {
	k, _ := problem.KindFor(string(a))
	return k
}

// Traversal reports whether a is a graph traversal.
func (a Algorithm) Traversal() bool { return a == BFS || a == DFS }
