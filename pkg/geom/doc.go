// Package geom maps problem coordinates onto a fixed drawing surface and back.
//
// A [Frame] is the bounding box of a problem instance. Normalizing against it
// yields unit-space [NormPoint] values, which a [Viewport] then places inside
// its padded drawing area. Two placements exist because the input formats
// differ in orientation:
//
//   - [Viewport.Baseline] anchors y=0 to the bottom edge of the surface, as
//     for buildings and the skyline result.
//   - [Viewport.Plot] anchors y=0 to the bottom padding line, as for point
//     sets and hulls.
//
// The frame must be kept next to any normalized data so that solver output
// can be shown in original units again with [Denormalize].
//
// Graph nodes do not depend on data at all: [Viewport.Circle] places n nodes
// evenly on a circle starting at the top.
package geom
