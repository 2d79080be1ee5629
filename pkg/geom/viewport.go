package geom

import (
	"math"

	"github.com/matzehuels/stepview/pkg/problem"
)

const (
	DefaultWidth   = 500
	DefaultHeight  = 500
	DefaultPadding = 20

	// circleScale is the node-circle radius as a fraction of the smaller
	// usable dimension.
	circleScale = 0.38
)

// Point is a position on the drawing surface, in surface units.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle on the drawing surface.
type Rect struct {
	X, Y, W, H float64
}

// Viewport describes the drawing surface: its size and the padding kept
// clear on every side.
type Viewport struct {
	Width  float64 `json:"width" toml:"width" yaml:"width"`
	Height float64 `json:"height" toml:"height" yaml:"height"`
	Pad    float64 `json:"padding" toml:"padding" yaml:"padding"`
}

// DefaultViewport returns the 500×500 surface with 20 units of padding.
func DefaultViewport() Viewport {
	return Viewport{Width: DefaultWidth, Height: DefaultHeight, Pad: DefaultPadding}
}

// InnerWidth is the usable width between the left and right padding.
func (v Viewport) InnerWidth() float64 { return v.Width - 2*v.Pad }

// InnerHeight is the usable height between the top and bottom padding.
func (v Viewport) InnerHeight() float64 { return v.Height - 2*v.Pad }

// Baseline places n with y=0 on the bottom edge of the surface.
func (v Viewport) Baseline(n NormPoint) Point {
	return Point{
		X: v.Pad + n.X*v.InnerWidth(),
		Y: v.Height - n.Y*v.InnerHeight(),
	}
}

// Plot places n with y=0 on the bottom padding line, Y growing upward.
func (v Viewport) Plot(n NormPoint) Point {
	return Point{
		X: v.Pad + n.X*v.InnerWidth(),
		Y: (v.Height - v.Pad) - n.Y*v.InnerHeight(),
	}
}

// BuildingRect returns the outline of b within frame f, standing on the
// bottom edge. All four values are rounded to whole surface units.
func (v Viewport) BuildingRect(b problem.Building, f Frame) Rect {
	x := v.Pad + (b.L-f.MinX)/f.DX()*v.InnerWidth()
	w := b.Width() / f.DX() * v.InnerWidth()
	h := b.H / f.DY() * v.InnerHeight()
	y := v.Height - h
	return Rect{X: round(x), Y: round(y), W: round(w), H: round(h)}
}

// Circle lays out n nodes evenly on a circle, node 0 at the top and the rest
// clockwise. The result depends only on n and the viewport.
func (v Viewport) Circle(n int) []Point {
	if n <= 0 {
		return nil
	}
	cx := v.Width / 2
	cy := (v.Pad + v.Height) / 2
	r := circleScale * math.Min(v.Width-2*v.Pad, v.Height-v.Pad)

	pos := make([]Point, n)
	for i := range pos {
		ang := 2*math.Pi*float64(i)/float64(n) - math.Pi/2
		pos[i] = Point{X: cx + r*math.Cos(ang), Y: cy + r*math.Sin(ang)}
	}
	return pos
}
