// Package problem holds the typed problem instances stepview draws and the
// best-effort parser that produces them from raw text.
//
// # Formats
//
// Three input formats are understood, one per [Kind]:
//
//   - [KindBuildings]: one building per line as "L, H, R" (left edge, height,
//     right edge). A leading count line is ignored.
//   - [KindGraph]: a node count n on the first line followed by n rows of an
//     n×n adjacency matrix.
//   - [KindPoints]: one "x, y" pair per line. A leading count line is ignored.
//
// Tokens may be separated by commas, spaces or tabs. Blank lines and lines
// starting with '#' are skipped in every format.
//
// # Error Handling
//
// Parsing never fails. Lines that are too short, hold non-numeric values or
// violate a format invariant (L < R and H > 0 for buildings) are dropped
// silently, so a partially broken file still draws whatever it can:
//
//	s := problem.Parse(problem.KindBuildings, "2\n0 10 5\n0 10 -5\n")
//	// s is a BuildingList with a single building {L:0 H:10 R:5}
//
// Adjacency rows shorter than n are padded with zeros so that
// [Graph.Connected] is total over [0,n)×[0,n).
package problem
