package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/classtower/pkg/pipeline"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)

	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconArrow   = "→"
)

// =============================================================================
// Status Output
// =============================================================================

func printSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconSuccess.Render(iconSuccess)+" "+fmt.Sprintf(format, args...))
}

func printError(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconError.Render(iconError)+" "+fmt.Sprintf(format, args...))
}

func printWarning(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconWarning.Render(iconWarning)+" "+StyleWarning.Render(fmt.Sprintf(format, args...)))
}

// printFile prints a file output line.
func printFile(w io.Writer, backend, path string) {
	fmt.Fprintln(w, "  "+StyleDim.Render(iconArrow)+" "+StyleValue.Render(path)+" "+StyleDim.Render("("+backend+")"))
}

// =============================================================================
// Summaries
// =============================================================================

// printStats prints the extraction statistics on a single line.
func printStats(w io.Writer, s pipeline.Stats) {
	parts := []string{
		fmt.Sprintf("%d classes", s.NodeCount),
		fmt.Sprintf("%d edges", s.EdgeCount),
	}
	if s.ExternalBases > 0 {
		parts = append(parts, fmt.Sprintf("%d external bases", s.ExternalBases))
	}
	if s.Unresolved > 0 {
		parts = append(parts, fmt.Sprintf("%d unresolved", s.Unresolved))
	}
	parts = append(parts, s.ExtractTime.Round(time.Millisecond).String())

	styled := make([]string, len(parts))
	for i, p := range parts {
		styled[i] = StyleDim.Render(p)
	}
	fmt.Fprintln(w, "  "+strings.Join(styled, StyleDim.Render(" · ")))
}

// printSummary reports the written diagrams and the backends that failed.
func printSummary(w io.Writer, res *pipeline.Result, targets []pipeline.Target) {
	written := len(res.Outputs)
	switch {
	case written == len(targets):
		printSuccess(w, "Drew %d diagram(s)", written)
	case written == 0:
		printError(w, "No diagram written")
	default:
		printWarning(w, "Drew %d of %d diagrams", written, len(targets))
	}
	printStats(w, res.Stats)

	for _, t := range targets {
		name := t.Backend.Name()
		if path, ok := res.Outputs[name]; ok {
			printFile(w, name, path)
			continue
		}
		printError(w, "%s failed", name)
	}
	if res.Stats.DanglingEdges > 0 {
		printWarning(w, "%d inheritance edge(s) referenced unknown classes and were dropped", res.Stats.DanglingEdges)
	}
}
