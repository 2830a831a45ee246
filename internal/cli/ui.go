package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan  = lipgloss.Color("36")  // Teal - primary values
	colorGreen = lipgloss.Color("35")  // Green - success
	colorRed   = lipgloss.Color("167") // Soft red - errors
	colorDim   = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleError   = lipgloss.NewStyle().Foreground(colorRed)
	styleNumber  = lipgloss.NewStyle().Foreground(colorCyan)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
)

// printSuccess writes a styled success line to stderr.
func printSuccess(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "%s %s\n", styleSuccess.Render(iconSuccess), fmt.Sprintf(format, args...))
}

// printSummary writes the connect command's result summary to stderr:
// reach count, table width, and output destination.
func printSummary(reaches, width int, dest string) {
	fmt.Fprintf(os.Stderr, "%s Wrote %s rows (%s upstream columns) %s\n",
		styleSuccess.Render(iconSuccess),
		styleNumber.Render(fmt.Sprintf("%d", reaches)),
		styleNumber.Render(fmt.Sprintf("%d", width)),
		styleDim.Render("→ "+dest))
}
