package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/stepview/pkg/session"
)

func TestPlaybackModelFrames(t *testing.T) {
	frames := make(chan session.FrameEvent, 3)
	m := NewPlaybackModel("BFS · g.txt", frames, nil)

	frames <- session.FrameEvent{Index: 0, Length: 2, Status: "Step 1/2"}
	msg := m.Init()()
	updated, cmd := m.Update(msg)
	m = updated.(PlaybackModel)
	if m.Frame.Index != 0 || m.Finished || cmd == nil {
		t.Fatalf("after frame 0: %+v", m)
	}

	updated, cmd = m.Update(frameMsg{Index: 2, Length: 2, Final: true, Status: "BFS complete"})
	m = updated.(PlaybackModel)
	if !m.Finished || cmd == nil {
		t.Errorf("final frame should finish the model")
	}
	if view := m.View(); !strings.Contains(view, "2/2") || !strings.Contains(view, "Done") {
		t.Errorf("View() = %q", view)
	}
}

func TestPlaybackModelCancel(t *testing.T) {
	cancelled := 0
	m := NewPlaybackModel("HULL", nil, func() { cancelled++ })
	m.Frame = session.FrameEvent{Index: 1, Length: 4}

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	m = updated.(PlaybackModel)
	if cancelled != 1 || !m.Cancelled || cmd == nil {
		t.Errorf("q should cancel once and quit, cancelled=%d model=%+v", cancelled, m)
	}
	if !strings.Contains(m.View(), "Cancelled") {
		t.Errorf("View() = %q", m.View())
	}
}

func TestPlaybackModelQuitAfterFinish(t *testing.T) {
	cancelled := 0
	m := NewPlaybackModel("DFS", nil, func() { cancelled++ })
	m.Finished = true

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cancelled != 0 || updated.(PlaybackModel).Cancelled {
		t.Error("quitting a finished playback should not cancel it")
	}
}

func TestProgressBar(t *testing.T) {
	tests := []struct {
		index, length, full int
	}{
		{0, 4, 0},
		{2, 4, barWidth / 2},
		{4, 4, barWidth},
		{9, 4, barWidth},
		{0, 0, barWidth},
	}
	for _, tt := range tests {
		bar := progressBar(tt.index, tt.length)
		if got := strings.Count(bar, "█"); got != tt.full {
			t.Errorf("progressBar(%d, %d) has %d full cells, want %d", tt.index, tt.length, got, tt.full)
		}
		if got := strings.Count(bar, "░"); got != barWidth-tt.full {
			t.Errorf("progressBar(%d, %d) has %d empty cells", tt.index, tt.length, got)
		}
	}
}
