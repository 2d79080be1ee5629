package canvas

import (
	"image"
	"image/png"
	"io"

	"github.com/fogleman/gg"
	"golang.org/x/image/draw"

	"github.com/matzehuels/stepview/pkg/fonts"
	"github.com/matzehuels/stepview/pkg/geom"
)

// Raster is a [Surface] backed by a gg context. Primitives are drawn at
// Scale times the surface size and downsampled on encode.
type Raster struct {
	w, h  float64
	scale float64
	dc    *gg.Context
	err   error
}

// NewRaster returns a cleared raster surface of the viewport's size.
// A scale below 1 is treated as 1.
func NewRaster(v geom.Viewport, scale int) *Raster {
	scale = max(1, scale)
	r := &Raster{
		w:     v.Width,
		h:     v.Height,
		scale: float64(scale),
		dc:    gg.NewContext(int(v.Width)*scale, int(v.Height)*scale),
	}
	r.Clear()
	return r
}

func (r *Raster) Size() (float64, float64) { return r.w, r.h }

func (r *Raster) Clear() {
	r.dc.SetHexColor(White)
	r.dc.Clear()
	r.Rect(geom.Rect{X: 0.5, Y: 0.5, W: r.w - 1, H: r.h - 1}, Style{Stroke: Black, Width: 1})
}

func (r *Raster) Rect(rc geom.Rect, s Style) {
	r.dc.DrawRectangle(rc.X*r.scale, rc.Y*r.scale, rc.W*r.scale, rc.H*r.scale)
	r.paint(s)
}

func (r *Raster) Line(a, b geom.Point, s Style) {
	r.dc.DrawLine(a.X*r.scale, a.Y*r.scale, b.X*r.scale, b.Y*r.scale)
	r.paint(Style{Stroke: s.Stroke, Width: s.Width})
}

func (r *Raster) Polyline(pts []geom.Point, closed bool, s Style) {
	for i, p := range pts {
		if i == 0 {
			r.dc.MoveTo(p.X*r.scale, p.Y*r.scale)
		} else {
			r.dc.LineTo(p.X*r.scale, p.Y*r.scale)
		}
	}
	if closed && len(pts) > 2 {
		r.dc.ClosePath()
	}
	r.paint(Style{Stroke: s.Stroke, Width: s.Width})
}

func (r *Raster) Circle(c geom.Point, rad float64, s Style) {
	r.dc.DrawCircle(c.X*r.scale, c.Y*r.scale, rad*r.scale)
	r.paint(s)
}

func (r *Raster) Dot(c geom.Point, rad float64, s Style) {
	fill := s.Fill
	if fill == "" {
		fill = Black
	}
	r.dc.DrawCircle(c.X*r.scale, c.Y*r.scale, rad*r.scale)
	r.paint(Style{Fill: fill})
}

func (r *Raster) Text(at geom.Point, text string, s Style) {
	size := s.FontSize
	if size <= 0 {
		size = 12
	}
	face, err := fonts.Face(size * r.scale)
	if err != nil {
		if r.err == nil {
			r.err = err
		}
		return
	}
	fill := s.Fill
	if fill == "" {
		fill = Black
	}
	r.dc.SetFontFace(face)
	r.dc.SetHexColor(fill)
	r.dc.DrawString(text, at.X*r.scale, at.Y*r.scale)
}

// paint fills and then strokes the current path as s asks, and clears it.
func (r *Raster) paint(s Style) {
	if s.Fill != "" {
		r.dc.SetHexColor(s.Fill)
		r.dc.FillPreserve()
	}
	if s.Stroke != "" {
		r.dc.SetHexColor(s.Stroke)
		r.dc.SetLineWidth(strokeWidth(s.Width) * r.scale)
		r.dc.StrokePreserve()
	}
	r.dc.ClearPath()
}

// Image returns the surface downsampled to its nominal size.
func (r *Raster) Image() image.Image {
	src := r.dc.Image()
	if r.scale == 1 {
		return src
	}
	out := image.NewRGBA(image.Rect(0, 0, int(r.w), int(r.h)))
	draw.CatmullRom.Scale(out, out.Bounds(), src, src.Bounds(), draw.Over, nil)
	return out
}

// EncodePNG writes the surface as PNG. It reports the first error met while
// drawing text, if any.
func (r *Raster) EncodePNG(w io.Writer) error {
	if r.err != nil {
		return r.err
	}
	return png.Encode(w, r.Image())
}

func strokeWidth(w float64) float64 {
	if w <= 0 {
		return 1
	}
	return w
}
