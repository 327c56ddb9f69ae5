// Package executor runs the external tools the build pipeline leans
// on (rsync, ssh). Commands are argument vectors handed to os/exec,
// never strings interpolated through a shell, so path components with
// spaces or metacharacters cannot change what gets executed.
package executor

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/rs/zerolog"

	"github.com/angusrush/remotex/pkg/errors"
	"github.com/angusrush/remotex/pkg/logging"
)

// Command describes one child process invocation
type Command struct {
	// Name is the binary to run, resolved via PATH
	Name string

	// Args is the argument vector, exec-style
	Args []string

	// Dir is the working directory; empty inherits the caller's
	Dir string

	// Stdout and Stderr receive the child's streams; nil wires the
	// caller's own streams through so tool output stays visible
	Stdout io.Writer
	Stderr io.Writer
}

// String renders the command for display, not for execution
func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// Runner runs child processes. The production implementation is
// Executor; tests substitute a recording fake.
type Runner interface {
	Run(ctx context.Context, cmd Command) error
}

// Options contains configuration for the executor
type Options struct {
	DryRun bool
	Logger zerolog.Logger
}

// Executor runs commands through os/exec
type Executor struct {
	dryRun bool
	logger zerolog.Logger
}

// New creates a new executor instance
func New(opts Options) *Executor {
	logger := opts.Logger
	if logger.GetLevel() == zerolog.Disabled {
		logger = logging.GetLogger("executor")
	}

	return &Executor{
		dryRun: opts.DryRun,
		logger: logger,
	}
}

// Run executes cmd and waits for it to finish. A nonzero exit status
// comes back as an ErrCommandExit error carrying the code; a command
// that could not be started at all comes back as ErrCommandStart.
// In dry-run mode the command is logged and printed, not executed.
func (e *Executor) Run(ctx context.Context, cmd Command) error {
	logging.LogCommand(cmd.Name, cmd.Args)

	if e.dryRun {
		e.logger.Info().
			Str("command", cmd.String()).
			Msg("Dry run - command not executed")

		out := cmd.Stdout
		if out == nil {
			out = os.Stdout
		}
		fmt.Fprintf(out, "would run: %s\n", cmd.String())
		return nil
	}

	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Dir = cmd.Dir
	c.Stdin = os.Stdin

	c.Stdout = cmd.Stdout
	if c.Stdout == nil {
		c.Stdout = os.Stdout
	}
	c.Stderr = cmd.Stderr
	if c.Stderr == nil {
		c.Stderr = os.Stderr
	}

	if err := c.Run(); err != nil {
		var exitErr *exec.ExitError
		if stderrors.As(err, &exitErr) {
			e.logger.Debug().
				Str("command", cmd.Name).
				Int("exit_code", exitErr.ExitCode()).
				Msg("Command exited nonzero")

			return errors.Newf(errors.ErrCommandExit, "%s exited with status %d", cmd.Name, exitErr.ExitCode()).
				WithDetail("exit_code", exitErr.ExitCode()).
				WithDetail("args", cmd.Args)
		}
		return errors.Wrapf(err, errors.ErrCommandStart, "cannot start %s", cmd.Name)
	}

	return nil
}

// ExitCode extracts the child's exit status from a Run error.
// Returns -1 when the error carries no exit status (start failures,
// foreign errors, nil).
func ExitCode(err error) int {
	details := errors.GetErrorDetails(err)
	if details == nil {
		return -1
	}
	if code, ok := details["exit_code"].(int); ok {
		return code
	}
	return -1
}
