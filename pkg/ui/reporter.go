package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"

	"github.com/angusrush/remotex/pkg/compile"
	"github.com/angusrush/remotex/pkg/ui/styles"
)

// Status classifies a reported pipeline event
type Status string

const (
	StatusRunning Status = "running"
	StatusSuccess Status = "success"
	StatusSkipped Status = "skipped"
	StatusFailed  Status = "failed"
	StatusWarning Status = "warning"
)

// StatusStyle returns the appropriate pterm style for a status
func StatusStyle(status Status) *pterm.Style {
	switch status {
	case StatusSuccess:
		return pterm.NewStyle(pterm.FgGreen, pterm.Bold)
	case StatusFailed:
		return pterm.NewStyle(pterm.FgRed, pterm.Bold)
	case StatusWarning:
		return pterm.NewStyle(pterm.FgYellow, pterm.Bold)
	case StatusSkipped:
		return pterm.NewStyle(pterm.FgGray)
	default:
		return pterm.NewStyle(pterm.FgCyan)
	}
}

// statusGlyph returns the single-character indicator for a status
func statusGlyph(status Status) string {
	switch status {
	case StatusSuccess:
		return "✓"
	case StatusFailed:
		return "✗"
	case StatusWarning:
		return "!"
	case StatusSkipped:
		return "-"
	default:
		return "→"
	}
}

// phaseLabels maps pipeline phases to their display names
var phaseLabels = map[compile.Phase]string{
	compile.PhasePush:   "push",
	compile.PhaseBuild:  "build",
	compile.PhasePull:   "pull",
	compile.PhaseRepair: "synctex",
}

// NewReporter returns a progress reporter for the requested format,
// resolving FormatAuto against the writer
func NewReporter(format Format, out io.Writer) compile.Reporter {
	if format == FormatAuto {
		format = DetectFormat(out)
	}
	if format == FormatTerminal {
		return NewTerminalReporter(out)
	}
	return NewPlainReporter(out)
}

// TerminalReporter renders phase progress with colors and styling
type TerminalReporter struct {
	out io.Writer
}

// NewTerminalReporter creates a reporter with rich terminal output
func NewTerminalReporter(out io.Writer) *TerminalReporter {
	return &TerminalReporter{out: out}
}

func (r *TerminalReporter) PhaseStart(phase compile.Phase, message string) {
	fmt.Fprintf(r.out, "%s %s\n", badge(StatusRunning), message)
	if phase == compile.PhaseBuild {
		banner(r.out, "build output begins here", true)
	}
}

func (r *TerminalReporter) PhaseSuccess(phase compile.Phase, message string) {
	if phase == compile.PhaseBuild {
		banner(r.out, "build output ends here", true)
	}
	fmt.Fprintf(r.out, "%s %s\n", badge(StatusSuccess), message)
}

func (r *TerminalReporter) PhaseSkipped(phase compile.Phase, reason string) {
	fmt.Fprintf(r.out, "%s %s skipped (%s)\n",
		badge(StatusSkipped), phaseLabels[phase], reason)
}

func (r *TerminalReporter) PhaseFailure(phase compile.Phase, err error) {
	if phase == compile.PhaseBuild {
		banner(r.out, "build output ends here", true)
	}
	fmt.Fprintf(r.out, "%s %s failed: %s\n",
		badge(StatusFailed), phaseLabels[phase], err)
}

func (r *TerminalReporter) Warning(message string) {
	fmt.Fprintf(r.out, "%s %s\n", badge(StatusWarning), message)
}

// PlainReporter renders phase progress as unstyled text
type PlainReporter struct {
	out io.Writer
}

// NewPlainReporter creates a reporter with plain text output
func NewPlainReporter(out io.Writer) *PlainReporter {
	return &PlainReporter{out: out}
}

func (r *PlainReporter) PhaseStart(phase compile.Phase, message string) {
	fmt.Fprintf(r.out, "%s...\n", message)
	if phase == compile.PhaseBuild {
		banner(r.out, "build output begins here", false)
	}
}

func (r *PlainReporter) PhaseSuccess(phase compile.Phase, message string) {
	if phase == compile.PhaseBuild {
		banner(r.out, "build output ends here", false)
	}
	fmt.Fprintln(r.out, message)
}

func (r *PlainReporter) PhaseSkipped(phase compile.Phase, reason string) {
	fmt.Fprintf(r.out, "%s skipped (%s)\n", phaseLabels[phase], reason)
}

func (r *PlainReporter) PhaseFailure(phase compile.Phase, err error) {
	if phase == compile.PhaseBuild {
		banner(r.out, "build output ends here", false)
	}
	fmt.Fprintf(r.out, "%s failed: %s\n", phaseLabels[phase], err)
}

func (r *PlainReporter) Warning(message string) {
	fmt.Fprintf(r.out, "warning: %s\n", message)
}

func badge(status Status) string {
	return StatusStyle(status).Sprint(statusGlyph(status))
}

// banner prints a horizontal marker so the remote build output, which
// streams straight to the terminal between the two markers, reads apart
// from remotex's own progress lines
func banner(out io.Writer, caption string, styled bool) {
	bar := strings.Repeat("-", len(caption)+12)
	line := "----- " + caption + " -----"
	if styled {
		rule := styles.GetStyle("Rule")
		bar = rule.Render(bar)
		line = rule.Render(line)
	}
	fmt.Fprintf(out, "\n%s\n%s\n%s\n\n", bar, line, bar)
}
