package ui_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/angusrush/remotex/pkg/compile"
	"github.com/angusrush/remotex/pkg/errors"
	"github.com/angusrush/remotex/pkg/synctex"
	"github.com/angusrush/remotex/pkg/texpath"
	"github.com/angusrush/remotex/pkg/ui"
)

func buildResult() *compile.Result {
	return &compile.Result{
		Document: texpath.Decompose("/home/user/latex/notes-public/topic/notes.tex"),
		Server:   "host1",
		Phases: []compile.PhaseResult{
			{Phase: compile.PhasePush, Success: true, Duration: 2 * time.Second},
			{Phase: compile.PhaseBuild, Success: true, Duration: 30 * time.Second},
			{Phase: compile.PhasePull, Success: true, Duration: time.Second},
			{Phase: compile.PhaseRepair, Success: true, Duration: 100 * time.Millisecond},
		},
		Repair: &synctex.Result{Lines: 2117, Substitutions: 27},
	}
}

func TestRenderSummary(t *testing.T) {
	out := ui.RenderSummary(buildResult(), false)

	assert.Contains(t, out, "Done.")
	assert.Contains(t, out, "notes.tex")
	assert.Contains(t, out, "host1")
	assert.Contains(t, out, "33.1s")
	assert.Contains(t, out, "notes.synctex.gz: 27 path references rewritten across 2117 lines")
	assert.NotContains(t, out, "DRY RUN")
	assert.NotContains(t, out, "stale paths")
}

func TestRenderSummaryDryRun(t *testing.T) {
	result := buildResult()
	result.Repair = nil
	result.Phases[3] = compile.PhaseResult{
		Phase:   compile.PhaseRepair,
		Skipped: true,
		Message: "dry run",
	}

	out := ui.RenderSummary(result, true)
	assert.Contains(t, out, "DRY RUN - no commands were executed")
	assert.NotContains(t, out, "rewritten")
}

func TestRenderSummaryDegraded(t *testing.T) {
	result := buildResult()
	result.Repair = nil
	result.RepairDegraded = true

	out := ui.RenderSummary(result, false)
	assert.Contains(t, out, "Done.")
	assert.Contains(t, out, "jump-to-source may point at stale paths")
}

func TestRenderRepairSummary(t *testing.T) {
	out := ui.RenderRepairSummary("/home/user/latex/topic/notes.synctex.gz",
		&synctex.Result{Lines: 500, Substitutions: 3})

	assert.Contains(t, out, "notes.synctex.gz")
	assert.Contains(t, out, "3 path references rewritten across 500 lines")
}

func TestRenderError(t *testing.T) {
	assert.Empty(t, ui.RenderError(nil))

	coded := errors.New(errors.ErrRemoteBuild, "build command exited with status 12")
	out := ui.RenderError(coded)
	assert.Contains(t, out, "REMOTE_BUILD")
	assert.Contains(t, out, "build command exited with status 12")

	plain := assert.AnError
	out = ui.RenderError(plain)
	assert.Contains(t, out, plain.Error())
	assert.NotContains(t, out, "UNKNOWN")
}
