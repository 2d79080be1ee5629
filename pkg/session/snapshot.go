package session

import (
	"bytes"
	"context"
	"time"

	"github.com/matzehuels/stepview/pkg/canvas"
	"github.com/matzehuels/stepview/pkg/errors"
	"github.com/matzehuels/stepview/pkg/observability"
	"github.com/matzehuels/stepview/pkg/problem"
)

// Snapshot is a consistent view of the session at one instant.
type Snapshot struct {
	SVG []byte `json:"-"`

	Algorithm  string `json:"algorithm,omitempty"`
	Filename   string `json:"filename,omitempty"`
	PlaybackID string `json:"playbackId,omitempty"`
	State      string `json:"state"`
	Index      int    `json:"index"`
	Length     int    `json:"length"`
	Status     string `json:"status"`
	Input      string `json:"input"`
	Output     string `json:"output"`
}

// Snapshot returns the current surface and status.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Algorithm: string(s.algorithm),
		Filename:  s.filename,
		State:     "idle",
		Input:     problem.Echo(s.text),
	}
	if c := s.player.Current(); c != nil && s.scene != nil {
		snap.PlaybackID = c.ID()
		snap.State = c.State().String()
		snap.Length = c.Len()
	}

	s.surfMu.Lock()
	defer s.surfMu.Unlock()
	snap.SVG = s.surface.Bytes()
	snap.Index = s.index
	snap.Status = s.status
	snap.Output = s.output
	return snap
}

// Export formats.
const (
	FormatSVG = "svg"
	FormatPNG = "png"
	FormatPDF = "pdf"
)

// Export renders the current frame as svg, png or pdf. PNG output is drawn
// natively at the given scale; PDF goes through rsvg-convert.
func (s *Session) Export(ctx context.Context, format string, scale int) ([]byte, error) {
	start := time.Now()
	data, err := s.export(ctx, format, scale)
	observability.Session().OnExport(ctx, format, len(data), time.Since(start), err)
	return data, err
}

func (s *Session) export(ctx context.Context, format string, scale int) ([]byte, error) {
	s.surfMu.Lock()
	svg := s.surface.Bytes()
	redraw := s.redraw
	s.surfMu.Unlock()

	switch format {
	case FormatSVG:
		return svg, nil
	case FormatPNG:
		r := canvas.NewRaster(s.viewport, scale)
		redraw(r)
		var buf bytes.Buffer
		if err := r.EncodePNG(&buf); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode png")
		}
		return buf.Bytes(), nil
	case FormatPDF:
		return canvas.ToPDF(ctx, svg)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q (use svg, png or pdf)", format)
	}
}
