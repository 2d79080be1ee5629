package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/stepview/pkg/playback"
	"github.com/matzehuels/stepview/pkg/session"
)

// Playback view styles
var (
	barFullStyle  = lipgloss.NewStyle().Foreground(colorCyan)
	barEmptyStyle = lipgloss.NewStyle().Foreground(colorDim)
	outputStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 1)
)

const barWidth = 30

// =============================================================================
// PlaybackModel - live view of a running playback
// =============================================================================

// frameMsg delivers a drawn frame to the model.
type frameMsg session.FrameEvent

// PlaybackModel is the bubbletea model for following a playback run.
type PlaybackModel struct {
	Title     string
	Frame     session.FrameEvent
	Finished  bool
	Cancelled bool

	frames <-chan session.FrameEvent
	cancel func()
}

// NewPlaybackModel creates a model that reads frames from frames and calls
// cancel when the user quits early.
func NewPlaybackModel(title string, frames <-chan session.FrameEvent, cancel func()) PlaybackModel {
	return PlaybackModel{Title: title, frames: frames, cancel: cancel}
}

func (m PlaybackModel) Init() tea.Cmd {
	return waitForFrame(m.frames)
}

func waitForFrame(frames <-chan session.FrameEvent) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-frames
		if !ok {
			return tea.Quit()
		}
		return frameMsg(ev)
	}
}

func (m PlaybackModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			if !m.Finished {
				m.Cancelled = true
				if m.cancel != nil {
					m.cancel()
				}
			}
			return m, tea.Quit
		}
	case frameMsg:
		m.Frame = session.FrameEvent(msg)
		if m.Frame.Final {
			m.Finished = true
			return m, tea.Quit
		}
		return m, waitForFrame(m.frames)
	}
	return m, nil
}

func (m PlaybackModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.Title))
	b.WriteString("\n\n")
	b.WriteString(progressBar(m.Frame.Index, m.Frame.Length))
	b.WriteString(" ")
	b.WriteString(StyleNumber.Render(fmt.Sprintf("%d/%d", m.Frame.Index, m.Frame.Length)))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render(m.Frame.Status))
	b.WriteString("\n\n")
	if m.Frame.Output != "" {
		b.WriteString(outputStyle.Render(m.Frame.Output))
		b.WriteString("\n\n")
	}

	switch {
	case m.Cancelled:
		b.WriteString(StyleWarning.Render("Cancelled"))
	case m.Finished:
		b.WriteString(StyleSuccess.Render("Done"))
	default:
		b.WriteString(StyleDim.Render("q cancel"))
	}
	b.WriteString("\n")
	return b.String()
}

// progressBar draws index out of length as a fixed-width bar. An empty trace
// is complete.
func progressBar(index, length int) string {
	filled := barWidth
	if length > 0 {
		filled = min(barWidth, max(0, index*barWidth/length))
	}
	return barFullStyle.Render(strings.Repeat("█", filled)) +
		barEmptyStyle.Render(strings.Repeat("░", barWidth-filled))
}

// runPlaybackTUI follows ctrl until it finishes or the user quits.
func runPlaybackTUI(ctx context.Context, ctrl *playback.Controller, frames <-chan session.FrameEvent, in *inputFile) error {
	title := fmt.Sprintf("%s · %s", in.Algorithm, in.Name)
	model := NewPlaybackModel(title, frames, ctrl.Cancel)

	final, err := tea.NewProgram(model, tea.WithContext(ctx)).Run()
	if err != nil {
		if ctx.Err() != nil {
			ctrl.Cancel()
			return ctx.Err()
		}
		return err
	}
	if m, ok := final.(PlaybackModel); ok && m.Cancelled {
		printWarning("Playback cancelled at step %d/%d", m.Frame.Index, m.Frame.Length)
	}
	return nil
}
