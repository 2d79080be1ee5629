// Package fonts provides the font used for text on stepview frames.
//
// SVG output names [FontFamily] and lets the viewer pick a system face.
// Raster output has no such luxury, so the Go Regular font shipped with
// golang.org/x/image is embedded and parsed once on first use.
package fonts

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// FontFamily is the CSS font-family used for SVG text.
const FontFamily = `system-ui, 'Go', sans-serif`

var (
	regular     *opentype.Font
	regularErr  error
	regularOnce sync.Once

	facesMu sync.Mutex
	faces   = map[float64]font.Face{}
)

// Regular returns the parsed Go Regular font.
func Regular() (*opentype.Font, error) {
	regularOnce.Do(func() {
		regular, regularErr = opentype.Parse(goregular.TTF)
	})
	return regular, regularErr
}

// Face returns a Go Regular face at size points (72 DPI, so points equal
// pixels). Faces are cached per size and shared; callers must not Close them.
func Face(size float64) (font.Face, error) {
	facesMu.Lock()
	defer facesMu.Unlock()

	if f, ok := faces[size]; ok {
		return f, nil
	}
	fnt, err := Regular()
	if err != nil {
		return nil, fmt.Errorf("parse go regular: %w", err)
	}
	f, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("face %.1fpt: %w", size, err)
	}
	faces[size] = f
	return f, nil
}
