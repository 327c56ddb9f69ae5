// Package remote invokes the build command on the build host over
// ssh. The local invocation is a plain argument vector; only the
// remote command line is assembled as a shell string, and its
// variable parts (working directory, filename) are single-quoted so
// the remote shell cannot reinterpret them.
package remote

import (
	"context"
	"path"
	"strings"

	"github.com/angusrush/remotex/pkg/config"
	"github.com/angusrush/remotex/pkg/errors"
	"github.com/angusrush/remotex/pkg/executor"
	"github.com/angusrush/remotex/pkg/logging"
)

// Builder runs the build command on the build host
type Builder struct {
	cfg    config.Config
	runner executor.Runner
}

// New creates a Builder over the given runner
func New(cfg config.Config, runner executor.Runner) *Builder {
	return &Builder{cfg: cfg, runner: runner}
}

// Script returns the remote command line for compiling filename
// inside <remote-root>/<top-folder>
func (b *Builder) Script(topFolder, filename string) string {
	workdir := path.Join(b.cfg.RemoteRoot, topFolder)
	return "cd " + shellQuote(workdir) + " && " + b.cfg.BuildCommand + " " + shellQuote(filename)
}

// Build compiles filename on host and returns nil only when the
// remote build exits zero. A nonzero remote status comes back as an
// ErrRemoteBuild error carrying the exit code; so does a failure to
// reach the host at all.
func (b *Builder) Build(ctx context.Context, host, topFolder, filename string) error {
	logger := logging.GetLogger("remote")
	script := b.Script(topFolder, filename)

	logger.Info().
		Str("host", host).
		Str("folder", topFolder).
		Str("file", filename).
		Msg("Starting remote build")
	logger.Debug().Str("script", script).Msg("Remote command assembled")

	cmd := executor.Command{
		Name: b.cfg.SSHBinary,
		Args: []string{host, script},
	}

	if err := b.runner.Run(ctx, cmd); err != nil {
		if code := executor.ExitCode(err); code >= 0 {
			return errors.Wrapf(err, errors.ErrRemoteBuild, "remote build failed with status %d", code).
				WithDetail("exit_code", code)
		}
		return errors.Wrapf(err, errors.ErrRemoteBuild, "cannot run %s", b.cfg.SSHBinary)
	}

	return nil
}

// shellQuote wraps s in single quotes for the remote shell
func shellQuote(s string) string {
	if s == "" {
		return "''"
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
