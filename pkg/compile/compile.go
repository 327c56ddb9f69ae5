// Package compile orchestrates a full remote build: push the project
// folder to the build host, run the build command there, pull the
// results back, and repair the synctex mapping file. Phases run
// strictly in order; a failed phase stops the run and the remaining
// phases are skipped.
package compile

import (
	"context"
	"os"
	"time"

	"github.com/angusrush/remotex/pkg/config"
	"github.com/angusrush/remotex/pkg/errors"
	"github.com/angusrush/remotex/pkg/executor"
	"github.com/angusrush/remotex/pkg/logging"
	"github.com/angusrush/remotex/pkg/remote"
	"github.com/angusrush/remotex/pkg/synctex"
	"github.com/angusrush/remotex/pkg/texpath"
	"github.com/angusrush/remotex/pkg/transfer"
)

// Phase names a pipeline step
type Phase string

const (
	PhasePush   Phase = "push"
	PhaseBuild  Phase = "build"
	PhasePull   Phase = "pull"
	PhaseRepair Phase = "repair"
)

// Reporter receives phase-boundary events for display. The
// orchestrator itself never writes to the terminal.
type Reporter interface {
	PhaseStart(phase Phase, message string)
	PhaseSuccess(phase Phase, message string)
	PhaseSkipped(phase Phase, reason string)
	PhaseFailure(phase Phase, err error)
	Warning(message string)
}

type nopReporter struct{}

func (nopReporter) PhaseStart(Phase, string)   {}
func (nopReporter) PhaseSuccess(Phase, string) {}
func (nopReporter) PhaseSkipped(Phase, string) {}
func (nopReporter) PhaseFailure(Phase, error)  {}
func (nopReporter) Warning(string)             {}

// Options configures a run
type Options struct {
	// DocumentPath is the document to build, absolute or relative
	DocumentPath string

	// Server overrides the configured remote host
	Server string

	// DryRun previews the run: commands are logged but not executed
	// and the mapping file is left untouched
	DryRun bool

	Config   config.Config
	Runner   executor.Runner
	Reporter Reporter
}

// PhaseResult records the outcome of one phase
type PhaseResult struct {
	Phase    Phase
	Success  bool
	Skipped  bool
	Message  string
	Error    error
	Duration time.Duration
}

// Result describes a finished run
type Result struct {
	Document texpath.Info
	Server   string
	Phases   []PhaseResult

	// Repair holds the rewrite counts when the repair phase ran
	Repair *synctex.Result

	// RepairDegraded is set when everything up to the pull succeeded
	// but the mapping file could not be repaired
	RepairDegraded bool
}

// Run executes the pipeline and returns the per-phase record. The
// returned error is nil on full success and on degraded success
// (repair failed after the document already synced back).
func Run(ctx context.Context, opts Options) (*Result, error) {
	logger := logging.GetLogger("compile")
	reporter := opts.Reporter
	if reporter == nil {
		reporter = nopReporter{}
	}

	server := opts.Server
	if server == "" {
		server = opts.Config.Server
	}
	if server == "" {
		return nil, errors.New(errors.ErrInvalidInput,
			"no server given: pass --server or set it in the configuration")
	}

	docPath, err := texpath.Normalize(opts.DocumentPath)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, "cannot resolve document path")
	}

	if _, err := os.Stat(docPath); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Newf(errors.ErrFileNotFound, "document %s does not exist", docPath)
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot access document %s", docPath)
	}

	info := texpath.Decompose(docPath)
	logger.Debug().
		Str("document", docPath).
		Str("folder", info.Folder).
		Str("top_folder", info.TopFolder).
		Str("bottom_folder", info.BottomFolder).
		Str("server", server).
		Bool("dry_run", opts.DryRun).
		Msg("Starting build run")

	result := &Result{Document: info, Server: server}

	syncer := transfer.New(opts.Config, opts.Runner)
	builder := remote.New(opts.Config, opts.Runner)

	// phase runs one step, records its outcome, and reports it.
	// Returns false when the run must stop.
	phase := func(p Phase, startMsg, doneMsg string, fn func() error) bool {
		reporter.PhaseStart(p, startMsg)
		start := time.Now()

		if err := fn(); err != nil {
			result.Phases = append(result.Phases, PhaseResult{
				Phase:    p,
				Error:    err,
				Duration: time.Since(start),
			})
			reporter.PhaseFailure(p, err)
			return false
		}

		result.Phases = append(result.Phases, PhaseResult{
			Phase:    p,
			Success:  true,
			Duration: time.Since(start),
		})
		reporter.PhaseSuccess(p, doneMsg)
		return true
	}

	skip := func(reason string, phases ...Phase) {
		for _, p := range phases {
			result.Phases = append(result.Phases, PhaseResult{
				Phase:   p,
				Skipped: true,
				Message: reason,
			})
			reporter.PhaseSkipped(p, reason)
		}
	}

	if ok := phase(PhasePush,
		"Pushing "+info.Folder+" to "+server,
		"Project uploaded",
		func() error { return syncer.Push(ctx, server, info.Folder) },
	); !ok {
		skip("push failed", PhaseBuild, PhasePull, PhaseRepair)
		return result, result.Phases[0].Error
	}

	if ok := phase(PhaseBuild,
		"Running build on "+server,
		"Remote build finished",
		func() error { return builder.Build(ctx, server, info.TopFolder, info.Filename) },
	); !ok {
		// Syncing back a broken build would be worse than leaving
		// the local tree untouched
		skip("build failed", PhasePull, PhaseRepair)
		return result, result.Phases[1].Error
	}

	if ok := phase(PhasePull,
		"Pulling results into "+info.BottomFolder,
		"Results downloaded",
		func() error { return syncer.Pull(ctx, server, info.TopFolder, info.BottomFolder) },
	); !ok {
		skip("pull failed", PhaseRepair)
		return result, result.Phases[2].Error
	}

	mapping := synctex.FileFor(info.Folder, info.Stem)

	if opts.DryRun {
		skip("dry run", PhaseRepair)
		return result, nil
	}

	reporter.PhaseStart(PhaseRepair, "Repairing "+mapping)
	start := time.Now()
	repair, err := synctex.Repair(mapping, info.BottomFolder, opts.Config.RemoteRoot)
	if err != nil {
		// The document already synced back; losing jump-to-source is
		// a degraded success, not a failure
		result.Phases = append(result.Phases, PhaseResult{
			Phase:    PhaseRepair,
			Error:    err,
			Duration: time.Since(start),
		})
		result.RepairDegraded = true
		reporter.Warning("synctex repair failed; jump-to-source will point at stale paths")
		logger.Warn().Err(err).Str("file", mapping).Msg("Mapping file could not be repaired")
		return result, nil
	}

	result.Phases = append(result.Phases, PhaseResult{
		Phase:    PhaseRepair,
		Success:  true,
		Duration: time.Since(start),
	})
	result.Repair = repair
	reporter.PhaseSuccess(PhaseRepair, "Mapping file repaired")

	logger.Info().
		Str("document", info.Filename).
		Str("server", server).
		Int("substitutions", repair.Substitutions).
		Msg("Build run complete")

	return result, nil
}
