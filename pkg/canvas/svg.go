package canvas

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"math"
	"strconv"

	"github.com/matzehuels/stepview/pkg/fonts"
	"github.com/matzehuels/stepview/pkg/geom"
)

// SVG is a [Surface] that records primitives as SVG elements.
// It is not safe for concurrent use.
type SVG struct {
	w, h float64
	buf  bytes.Buffer
}

// NewSVG returns an SVG surface of the viewport's size, already cleared.
func NewSVG(v geom.Viewport) *SVG {
	s := &SVG{w: v.Width, h: v.Height}
	s.Clear()
	return s
}

func (s *SVG) Size() (float64, float64) { return s.w, s.h }

func (s *SVG) Clear() {
	s.buf.Reset()
	fmt.Fprintf(&s.buf, `  <rect class="background" x="0" y="0" width="%s" height="%s" fill="%s" stroke="%s" stroke-width="1"/>`+"\n",
		num(s.w), num(s.h), White, Black)
}

func (s *SVG) Rect(r geom.Rect, st Style) {
	fmt.Fprintf(&s.buf, `  <rect%s x="%s" y="%s" width="%s" height="%s"%s/>`+"\n",
		class(st), num(r.X), num(r.Y), num(r.W), num(r.H), paint(st))
}

func (s *SVG) Line(a, b geom.Point, st Style) {
	fmt.Fprintf(&s.buf, `  <line%s x1="%s" y1="%s" x2="%s" y2="%s"%s/>`+"\n",
		class(st), num(a.X), num(a.Y), num(b.X), num(b.Y), paint(st))
}

func (s *SVG) Polyline(pts []geom.Point, closed bool, st Style) {
	if len(pts) == 0 {
		return
	}
	tag := "polyline"
	if closed {
		tag = "polygon"
	}
	var coords bytes.Buffer
	for i, p := range pts {
		if i > 0 {
			coords.WriteByte(' ')
		}
		coords.WriteString(num(p.X) + "," + num(p.Y))
	}
	fmt.Fprintf(&s.buf, `  <%s%s points="%s"%s stroke-linejoin="round"/>`+"\n",
		tag, class(st), coords.String(), paint(st))
}

func (s *SVG) Circle(c geom.Point, r float64, st Style) {
	fmt.Fprintf(&s.buf, `  <circle%s cx="%s" cy="%s" r="%s"%s/>`+"\n",
		class(st), num(c.X), num(c.Y), num(r), paint(st))
}

func (s *SVG) Dot(c geom.Point, r float64, st Style) {
	if st.Fill == "" {
		st.Fill = Black
	}
	st.Stroke = ""
	s.Circle(c, r, st)
}

func (s *SVG) Text(at geom.Point, text string, st Style) {
	fill := st.Fill
	if fill == "" {
		fill = Black
	}
	size := st.FontSize
	if size <= 0 {
		size = 12
	}
	fmt.Fprintf(&s.buf, `  <text%s x="%s" y="%s" font-family="%s" font-size="%s" fill="%s">%s</text>`+"\n",
		class(st), num(at.X), num(at.Y), escapeXML(fonts.FontFamily), num(size), fill, escapeXML(text))
}

// Bytes returns the standalone SVG document for everything drawn since the
// last Clear.
func (s *SVG) Bytes() []byte {
	var out bytes.Buffer
	fmt.Fprintf(&out, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" width="%s" height="%s">`+"\n",
		num(s.w), num(s.h), num(s.w), num(s.h))
	out.Write(s.buf.Bytes())
	out.WriteString("</svg>\n")
	return out.Bytes()
}

func class(st Style) string {
	if st.Class == "" {
		return ""
	}
	return ` class="` + escapeXML(st.Class) + `"`
}

func paint(st Style) string {
	fill := st.Fill
	if fill == "" {
		fill = "none"
	}
	if st.Stroke == "" {
		return ` fill="` + fill + `"`
	}
	w := st.Width
	if w <= 0 {
		w = 1
	}
	return fmt.Sprintf(` fill="%s" stroke="%s" stroke-width="%s"`, fill, st.Stroke, num(w))
}

// num formats v with at most two decimals and no trailing zeros.
func num(v float64) string {
	r := math.Round(v*100) / 100
	if r == 0 {
		r = 0 // drop negative zero
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
