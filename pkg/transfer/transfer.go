// Package transfer moves the project tree between the local machine
// and the build host with rsync, archive mode both ways. The push
// excludes hidden entries; the pull additionally excludes document
// sources so locally edited files are never clobbered by the host's
// copies.
package transfer

import (
	"context"
	"path"

	"github.com/angusrush/remotex/pkg/config"
	"github.com/angusrush/remotex/pkg/errors"
	"github.com/angusrush/remotex/pkg/executor"
	"github.com/angusrush/remotex/pkg/logging"
)

// Syncer runs rsync for both transfer directions
type Syncer struct {
	cfg    config.Config
	runner executor.Runner
}

// New creates a Syncer over the given runner
func New(cfg config.Config, runner executor.Runner) *Syncer {
	return &Syncer{cfg: cfg, runner: runner}
}

// Push copies the local project folder into the staging root on host.
// The folder is given without a trailing separator, so rsync places
// the directory itself (not its contents) under the root.
func (s *Syncer) Push(ctx context.Context, host, folder string) error {
	logger := logging.GetLogger("transfer")
	logger.Info().Str("host", host).Str("folder", folder).Msg("Pushing project to build host")

	cmd := executor.Command{
		Name: s.cfg.RsyncBinary,
		Args: []string{
			"-a",
			"-h",
			"--exclude=" + s.cfg.HiddenExclude,
			"--info=progress2",
			folder,
			host + ":" + s.cfg.RemoteRoot,
		},
	}

	if err := s.runner.Run(ctx, cmd); err != nil {
		return errors.Wrapf(err, errors.ErrTransfer, "push to %s failed", host)
	}
	return nil
}

// Pull copies the staged project folder back from host into the local
// bottom folder, leaving hidden entries and document sources behind
func (s *Syncer) Pull(ctx context.Context, host, topFolder, bottomFolder string) error {
	logger := logging.GetLogger("transfer")
	logger.Info().Str("host", host).Str("folder", topFolder).Msg("Pulling results from build host")

	cmd := executor.Command{
		Name: s.cfg.RsyncBinary,
		Args: []string{
			"-a",
			"-h",
			"--exclude=" + s.cfg.HiddenExclude,
			"--exclude=" + s.cfg.SourceExclude,
			"--info=progress2",
			host + ":" + path.Join(s.cfg.RemoteRoot, topFolder),
			bottomFolder,
		},
	}

	if err := s.runner.Run(ctx, cmd); err != nil {
		return errors.Wrapf(err, errors.ErrTransfer, "pull from %s failed", host)
	}
	return nil
}
