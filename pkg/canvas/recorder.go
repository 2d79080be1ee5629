package canvas

import (
	"slices"

	"github.com/matzehuels/stepview/pkg/geom"
)

// OpKind names a recorded primitive.
type OpKind string

const (
	OpClear    OpKind = "clear"
	OpRect     OpKind = "rect"
	OpLine     OpKind = "line"
	OpPolyline OpKind = "polyline"
	OpPolygon  OpKind = "polygon"
	OpCircle   OpKind = "circle"
	OpDot      OpKind = "dot"
	OpText     OpKind = "text"
)

// Op is one recorded primitive. Only the fields relevant to Kind are set.
type Op struct {
	Kind   OpKind
	Points []geom.Point
	Rect   geom.Rect
	Radius float64
	Text   string
	Style  Style
}

// Recorder is a [Surface] that keeps primitives as [Op] values.
type Recorder struct {
	W, H float64
	Ops  []Op
}

// NewRecorder returns an empty recorder of the viewport's size.
func NewRecorder(v geom.Viewport) *Recorder {
	return &Recorder{W: v.Width, H: v.Height}
}

func (r *Recorder) Size() (float64, float64) { return r.W, r.H }

// Clear drops everything recorded so far and records a single clear op.
func (r *Recorder) Clear() { r.Ops = []Op{{Kind: OpClear}} }

func (r *Recorder) Rect(rc geom.Rect, s Style) {
	r.Ops = append(r.Ops, Op{Kind: OpRect, Rect: rc, Style: s})
}

func (r *Recorder) Line(a, b geom.Point, s Style) {
	r.Ops = append(r.Ops, Op{Kind: OpLine, Points: []geom.Point{a, b}, Style: s})
}

func (r *Recorder) Polyline(pts []geom.Point, closed bool, s Style) {
	kind := OpPolyline
	if closed {
		kind = OpPolygon
	}
	r.Ops = append(r.Ops, Op{Kind: kind, Points: slices.Clone(pts), Style: s})
}

func (r *Recorder) Circle(c geom.Point, rad float64, s Style) {
	r.Ops = append(r.Ops, Op{Kind: OpCircle, Points: []geom.Point{c}, Radius: rad, Style: s})
}

func (r *Recorder) Dot(c geom.Point, rad float64, s Style) {
	r.Ops = append(r.Ops, Op{Kind: OpDot, Points: []geom.Point{c}, Radius: rad, Style: s})
}

func (r *Recorder) Text(at geom.Point, text string, s Style) {
	r.Ops = append(r.Ops, Op{Kind: OpText, Points: []geom.Point{at}, Text: text, Style: s})
}

// Find returns the recorded ops whose kind is k and whose class is class.
// An empty class matches any class.
func (r *Recorder) Find(k OpKind, class string) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == k && (class == "" || op.Style.Class == class) {
			out = append(out, op)
		}
	}
	return out
}
