package problem

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// MaxNodes bounds the node count read from a graph header.
// Larger counts are clamped so a typo cannot allocate a huge matrix.
const MaxNodes = 2048

var (
	lineBreakRe   = regexp.MustCompile(`\r?\n`)
	separatorRe   = regexp.MustCompile(`[,\s]+`)
	intPrefixRe   = regexp.MustCompile(`^[+-]?\d+`)
	floatPrefixRe = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
)

// Parse converts raw text into the structure for kind.
// It never fails; unknown kinds yield an empty PointSet.
func Parse(kind Kind, text string) Structure {
	switch kind {
	case KindBuildings:
		return ParseBuildings(text)
	case KindGraph:
		return ParseGraph(text)
	default:
		return ParsePoints(text)
	}
}

// ParseBuildings reads one "L, H, R" building per line.
// Count lines, short lines and buildings with L >= R or H <= 0 are dropped.
func ParseBuildings(text string) BuildingList {
	buildings := BuildingList{}
	for _, line := range Lines(text) {
		// A lone token is the optional count line.
		parts := tokens(line)
		if len(parts) < 3 {
			continue
		}
		l, okL := parseInt(parts[0])
		h, okH := parseInt(parts[1])
		r, okR := parseInt(parts[2])
		if okL && okH && okR && l < r && h > 0 {
			buildings = append(buildings, Building{L: l, H: h, R: r})
		}
	}
	return buildings
}

// ParseGraph reads a node count followed by that many adjacency rows.
// Missing rows and cells, and cells that are not numbers, read as 0.
func ParseGraph(text string) Graph {
	lines := Lines(text)
	if len(lines) == 0 {
		return Graph{Adj: [][]float64{}}
	}
	count, ok := parseInt(lines[0])
	if !ok || count <= 0 {
		return Graph{Adj: [][]float64{}}
	}
	n := int(min(count, MaxNodes))

	adj := make([][]float64, n)
	for i := range adj {
		row := make([]float64, n)
		if i+1 < len(lines) {
			for j, tok := range tokens(lines[i+1]) {
				if j >= n {
					break
				}
				row[j] = parseCell(tok)
			}
		}
		adj[i] = row
	}
	return Graph{N: n, Adj: adj}
}

// ParsePoints reads one "x, y" pair per line.
// Count lines, short lines and non-finite coordinates are dropped.
func ParsePoints(text string) PointSet {
	points := PointSet{}
	for _, line := range Lines(text) {
		parts := tokens(line)
		if len(parts) < 2 {
			continue
		}
		x, okX := parseFloat(parts[0])
		y, okY := parseFloat(parts[1])
		if okX && okY {
			points = append(points, Point{X: x, Y: y})
		}
	}
	return points
}

// Lines splits text into trimmed lines, dropping blank lines and '#' comments.
func Lines(text string) []string {
	var out []string
	for _, raw := range lineBreakRe.Split(text, -1) {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	return out
}

// Echo returns the trimmed, non-blank lines of text joined by newlines.
// Comment lines are kept; this is what the user sees as the input listing.
func Echo(text string) string {
	var out []string
	for _, raw := range lineBreakRe.Split(text, -1) {
		if line := strings.TrimSpace(raw); line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}

// tokens splits a line on commas and whitespace, dropping empty tokens.
func tokens(line string) []string {
	var parts []string
	for _, p := range separatorRe.Split(line, -1) {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

// parseInt reads the leading decimal integer of s ("12abc" is 12, "1.9" is 1).
func parseInt(s string) (float64, bool) {
	m := intPrefixRe.FindString(s)
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// parseFloat reads the leading decimal number of s ("2.5e1x" is 25).
func parseFloat(s string) (float64, bool) {
	m := floatPrefixRe.FindString(s)
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// parseCell reads a whole adjacency cell; anything that is not a finite number is 0.
func parseCell(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0
	}
	return v
}
