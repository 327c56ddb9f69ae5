package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/angusrush/remotex/pkg/compile"
	"github.com/angusrush/remotex/pkg/errors"
	"github.com/angusrush/remotex/pkg/synctex"
	"github.com/angusrush/remotex/pkg/ui/styles"
)

// RenderSummary renders the closing lines for a finished build run
func RenderSummary(result *compile.Result, dryRun bool) string {
	var sb strings.Builder

	if dryRun {
		sb.WriteString(styles.GetStyle("DryRunBanner").Render("DRY RUN - no commands were executed"))
		sb.WriteString("\n")
	}

	var total time.Duration
	for _, p := range result.Phases {
		total += p.Duration
	}

	sb.WriteString(styles.GetStyle("Success").Render("Done."))
	sb.WriteString(" ")
	sb.WriteString(fmt.Sprintf("%s compiled on %s in %s",
		styles.GetStyle("FilePath").Render(result.Document.Filename),
		styles.GetStyle("Server").Render(result.Server),
		total.Round(time.Millisecond)))
	sb.WriteString("\n")

	if result.Repair != nil {
		mapping := result.Document.Stem + synctex.Suffix
		sb.WriteString(styles.GetStyle("Muted").Render(fmt.Sprintf(
			"%s: %d path references rewritten across %d lines",
			mapping, result.Repair.Substitutions, result.Repair.Lines)))
		sb.WriteString("\n")
	}

	if result.RepairDegraded {
		sb.WriteString(styles.GetStyle("Warning").Render(
			"jump-to-source may point at stale paths until the next successful run"))
		sb.WriteString("\n")
	}

	return strings.TrimRight(sb.String(), "\n")
}

// RenderRepairSummary renders the result of a standalone mapping repair
func RenderRepairSummary(path string, result *synctex.Result) string {
	return fmt.Sprintf("%s %s: %d path references rewritten across %d lines",
		StatusStyle(StatusSuccess).Sprint(statusGlyph(StatusSuccess)),
		styles.GetStyle("FilePath").Render(path),
		result.Substitutions, result.Lines)
}

// RenderError renders a fatal error for the terminal
func RenderError(err error) string {
	if err == nil {
		return ""
	}

	glyph := StatusStyle(StatusFailed).Sprint(statusGlyph(StatusFailed))
	if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
		return fmt.Sprintf("%s %s: %s", glyph,
			styles.GetStyle("Error").Render(string(code)), err.Error())
	}
	return fmt.Sprintf("%s %s", glyph, err.Error())
}
