package canvas

import "github.com/matzehuels/stepview/pkg/geom"

// Colors used across stepview frames.
const (
	Black = "#000"
	Light = "#bbb"
	White = "#fff"
)

// Style describes how a primitive is painted. Empty Stroke or Fill means
// none. Class is a semantic tag ("edge", "tree-edge", "node", ...) that
// SVG output carries as a class attribute.
type Style struct {
	Stroke   string
	Width    float64
	Fill     string
	FontSize float64
	Class    string
}

// Surface is a 2D drawing target.
type Surface interface {
	// Size reports the surface width and height.
	Size() (w, h float64)
	// Clear paints the white background and the black border, discarding
	// anything drawn before.
	Clear()
	Rect(r geom.Rect, s Style)
	Line(a, b geom.Point, s Style)
	// Polyline strokes pts in order; closed joins the last point to the first.
	Polyline(pts []geom.Point, closed bool, s Style)
	// Circle strokes a circle outline.
	Circle(c geom.Point, r float64, s Style)
	// Dot fills a circle with s.Fill, falling back to black.
	Dot(c geom.Point, r float64, s Style)
	// Text draws text with its baseline starting at at.
	Text(at geom.Point, text string, s Style)
}
