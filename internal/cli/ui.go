package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/matzehuels/stepview/pkg/errors"
)

// =============================================================================
// Palette & Styles
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - titles, counters
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - cancelled playback
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorBlue   = lipgloss.Color("75")  // Light blue - links, commands
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - labels
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

var (
	// StyleTitle for block and TUI headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleLink for URLs.
	StyleLink = lipgloss.NewStyle().Foreground(colorBlue).Underline(true)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for input and output listings.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for step counters.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleSuccess for finished playback.
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)

	// StyleWarning for cancelled playback.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconStep    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)
	styleKey         = lipgloss.NewStyle().Foreground(colorGray).Width(12)
	styleCommand     = lipgloss.NewStyle().Foreground(colorBlue)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconStep    = "›"
	iconArrow   = "→"
)

// =============================================================================
// Messages
// =============================================================================

func printSuccess(format string, args ...any) {
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + fmt.Sprintf(format, args...))
}

func printWarning(format string, args ...any) {
	fmt.Println(styleIconWarning.Render(iconWarning) + " " + StyleWarning.Render(fmt.Sprintf(format, args...)))
}

// PrintError prints err to stderr with the error icon. Structured errors
// show their user message only.
func PrintError(err error) {
	fmt.Fprintln(os.Stderr, styleIconError.Render(iconError)+" "+errors.UserMessage(err))
}

func printDetail(format string, args ...any) {
	fmt.Println("  " + StyleDim.Render(fmt.Sprintf(format, args...)))
}

func printFile(path string) {
	fmt.Println("  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(path))
}

func printKeyValue(key, value string) {
	fmt.Println(styleKey.Render(key) + " " + StyleValue.Render(value))
}

func printNextStep(description, cmd string) {
	fmt.Println(StyleDim.Render(description+":") + " " + styleCommand.Render(cmd))
}

func printNewline() {
	fmt.Println()
}

// =============================================================================
// Playback
// =============================================================================

// printBlock prints a titled listing, one indented line per text line.
// Input and output panes both go through here.
func printBlock(title, text string) {
	fmt.Println(StyleTitle.Render(title))
	if text == "" {
		fmt.Println("  " + StyleDim.Render("(empty)"))
		return
	}
	for _, line := range strings.Split(text, "\n") {
		fmt.Println("  " + StyleValue.Render(line))
	}
}

// printStatus prints one line per rendered frame.
func printStatus(index, length int, status string) {
	counter := StyleNumber.Render(fmt.Sprintf("%d/%d", index, length))
	fmt.Println(styleIconStep.Render(iconStep) + " " + counter + " " + StyleDim.Render(status))
}

// plotWidth is the number of samples in a terminal chart.
const plotWidth = 60

// printPlot prints series as a small line chart. Series shorter than two
// samples are skipped.
func printPlot(title string, series []float64) {
	if len(series) < 2 {
		return
	}
	chart := asciigraph.Plot(series, asciigraph.Height(8), asciigraph.Width(plotWidth))
	fmt.Println(StyleTitle.Render(title))
	fmt.Println(StyleDim.Render(chart))
	printNewline()
}
