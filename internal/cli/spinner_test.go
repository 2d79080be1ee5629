package cli

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// syncBuffer is a bytes.Buffer safe for the spinner goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestSpinnerDrawsAndClears(t *testing.T) {
	var out syncBuffer
	s := newSpinner(context.Background(), &out, "Solving BFS")
	s.Start()
	time.Sleep(3 * spinnerTick)
	s.Stop()

	got := out.String()
	if !strings.Contains(got, "Solving BFS") {
		t.Fatalf("spinner never drew its message: %q", got)
	}
	if !strings.HasSuffix(got, "\r") {
		t.Errorf("line not cleared after Stop: %q", got)
	}
}

func TestSpinnerStopsOnContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s := newSpinner(ctx, &syncBuffer{}, "waiting")
	s.Start()
	cancel()

	select {
	case <-s.stopped:
	case <-time.After(time.Second):
		t.Fatal("spinner still running after context cancel")
	}
	if !s.Cancelled() {
		t.Error("Cancelled() = false after context cancel")
	}
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	s := newSpinner(context.Background(), &syncBuffer{}, "waiting")
	s.Start()
	s.Stop()
	s.Stop()
}

func TestSpinnerStopBeforeFirstTick(t *testing.T) {
	var out syncBuffer
	s := newSpinner(context.Background(), &out, "waiting")
	s.Start()
	s.Stop()
	if got := out.String(); got != "" && !strings.Contains(got, "waiting") {
		t.Errorf("unexpected output %q", got)
	}
}

func TestSpinnerLine(t *testing.T) {
	tests := []struct {
		i       int
		elapsed time.Duration
		frame   string
		clock   string
	}{
		{0, 0, "⠋", "0s"},
		{1, 1234 * time.Millisecond, "⠙", "1.2s"},
		{len(spinnerFrames), 50 * time.Millisecond, "⠋", "100ms"},
	}
	for _, tt := range tests {
		line := spinnerLine(tt.i, "Solving", tt.elapsed)
		if !strings.Contains(line, tt.frame) || !strings.Contains(line, tt.clock) {
			t.Errorf("spinnerLine(%d, %v) = %q, want frame %s and %s", tt.i, tt.elapsed, line, tt.frame, tt.clock)
		}
		if w := lipgloss.Width(line); w != lipgloss.Width(tt.frame+" Solving "+tt.clock) {
			t.Errorf("spinnerLine(%d) width = %d", tt.i, w)
		}
	}
}
