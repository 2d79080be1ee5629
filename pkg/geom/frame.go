package geom

import (
	"math"

	"github.com/matzehuels/stepview/pkg/problem"
)

// NormPoint is a point in unit space, nominally [0,1]×[0,1].
type NormPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Frame is the normalization frame of a problem instance.
type Frame struct {
	MinX float64 `json:"minX"`
	MaxX float64 `json:"maxX"`
	MinY float64 `json:"minY"`
	MaxY float64 `json:"maxY"`
}

// DX is the horizontal extent, floored at 1.
func (f Frame) DX() float64 { return math.Max(1, f.MaxX-f.MinX) }

// DY is the vertical extent, floored at 1.
func (f Frame) DY() float64 { return math.Max(1, f.MaxY-f.MinY) }

// Normalize maps (x, y) from problem units into unit space.
func (f Frame) Normalize(x, y float64) NormPoint {
	return NormPoint{X: (x - f.MinX) / f.DX(), Y: (y - f.MinY) / f.DY()}
}

// BuildingFrame spans L and R horizontally and 0 to the tallest H vertically.
// An empty list yields the zero frame.
func BuildingFrame(bs problem.BuildingList) Frame {
	if len(bs) == 0 {
		return Frame{}
	}
	f := Frame{MinX: bs[0].L, MaxX: bs[0].R, MaxY: bs[0].H}
	for _, b := range bs[1:] {
		f.MinX = math.Min(f.MinX, b.L)
		f.MaxX = math.Max(f.MaxX, b.R)
		f.MaxY = math.Max(f.MaxY, b.H)
	}
	return f
}

// PointFrame is the tight bounding box of ps. An empty set yields the zero frame.
func PointFrame(ps problem.PointSet) Frame {
	if len(ps) == 0 {
		return Frame{}
	}
	f := Frame{MinX: ps[0].X, MaxX: ps[0].X, MinY: ps[0].Y, MaxY: ps[0].Y}
	for _, p := range ps[1:] {
		f.MinX = math.Min(f.MinX, p.X)
		f.MaxX = math.Max(f.MaxX, p.X)
		f.MinY = math.Min(f.MinY, p.Y)
		f.MaxY = math.Max(f.MaxY, p.Y)
	}
	return f
}

// Denormalize maps skyline key points back into problem units, rounding to
// the nearest integer. X is scaled by the frame width and offset by MinX; Y
// is scaled by MaxY alone since skylines always start from the ground.
func Denormalize(points []NormPoint, f Frame) []problem.Point {
	out := make([]problem.Point, len(points))
	dx := f.DX()
	for i, p := range points {
		out[i] = problem.Point{
			X: round(f.MinX + p.X*dx),
			Y: round(p.Y * f.MaxY),
		}
	}
	return out
}

// round matches the half-up rounding used when the solver output was first
// displayed: -2.5 rounds to -2, not -3.
func round(v float64) float64 { return math.Floor(v + 0.5) }
