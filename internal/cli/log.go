package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"

	"github.com/matzehuels/stepview/pkg/observability"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time, e.g. "Solved 12 steps (1.234s)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, or log.Default() if none
// is attached.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// =============================================================================
// Observability hooks
// =============================================================================

// logHooks reports session, playback and solver HTTP events at debug level.
type logHooks struct {
	logger *log.Logger
}

func installHooks(l *log.Logger) {
	h := logHooks{logger: l}
	observability.SetSessionHooks(h)
	observability.SetPlaybackHooks(h)
	observability.SetHTTPHooks(h)
}

func (h logHooks) OnSelect(_ context.Context, algorithm string, entities int) {
	h.logger.Debug("input selected", "algorithm", algorithm, "entities", entities)
}

func (h logHooks) OnApply(_ context.Context, algorithm string, steps int) {
	h.logger.Debug("result applied", "algorithm", algorithm, "steps", steps)
}

func (h logHooks) OnExport(_ context.Context, format string, size int, d time.Duration, err error) {
	if err != nil {
		h.logger.Warn("export failed", "format", format, "err", err)
		return
	}
	h.logger.Debug("frame exported", "format", format, "size", humanize.Bytes(uint64(size)), "took", d.Round(time.Millisecond))
}

func (h logHooks) OnStart(_ context.Context, id string, length int) {
	h.logger.Debug("playback started", "id", id, "steps", length)
}

func (h logHooks) OnFrame(_ context.Context, id string, index int, final bool) {
	h.logger.Debug("frame", "id", id, "index", index, "final", final)
}

func (h logHooks) OnDone(_ context.Context, id string, frames int, d time.Duration) {
	h.logger.Debug("playback done", "id", id, "frames", frames, "took", d.Round(time.Millisecond))
}

func (h logHooks) OnCancel(_ context.Context, id string, index int) {
	h.logger.Debug("playback cancelled", "id", id, "index", index)
}

func (h logHooks) OnRequest(_ context.Context, method, host, path string) {
	h.logger.Debug("solver request", "method", method, "host", host, "path", path)
}

func (h logHooks) OnResponse(_ context.Context, method, host, path string, status int, d time.Duration) {
	h.logger.Debug("solver response", "method", method, "path", path, "status", status, "took", d.Round(time.Millisecond))
}

func (h logHooks) OnError(_ context.Context, method, host, path string, err error) {
	h.logger.Warn("solver request failed", "method", method, "host", host, "path", path, "err", err)
}
