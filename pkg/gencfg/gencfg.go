// Package gencfg renders the default configuration as documented TOML
package gencfg

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/angusrush/remotex/pkg/config"
	"github.com/angusrush/remotex/pkg/errors"
	"github.com/angusrush/remotex/pkg/logging"
)

const header = `# remotex configuration.
#
# Every key is optional; unset keys keep their built-in defaults.
# Environment variables (REMOTEX_SERVER, REMOTEX_REMOTE_ROOT, ...)
# and a .env file in the working directory override this file.

`

// Options holds options for the genconfig command
type Options struct {
	// Write saves the rendered config to the user config path
	// instead of only returning it
	Write bool
}

// Result holds the rendered configuration
type Result struct {
	// ConfigContent is the rendered TOML
	ConfigContent string

	// Path is where Write mode saves the file
	Path string

	// Written is set when a file was actually created
	Written bool
}

// GenConfig renders the default configuration and optionally writes
// it to the user config path. An existing config file is never
// overwritten.
func GenConfig(opts Options) (*Result, error) {
	logger := logging.GetLogger("gencfg")

	defaults := config.Default()
	data, err := toml.Marshal(defaults)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "cannot render default configuration")
	}

	result := &Result{
		ConfigContent: header + string(data),
		Path:          config.FilePath(),
	}

	if !opts.Write {
		logger.Debug().Msg("Outputting config to stdout")
		return result, nil
	}

	if _, err := os.Stat(result.Path); err == nil {
		logger.Warn().Str("path", result.Path).Msg("Config file already exists, skipping")
		return result, nil
	}

	dir := filepath.Dir(result.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return result, errors.Wrapf(err, errors.ErrFileWrite, "failed to create directory %s", dir)
	}

	if err := os.WriteFile(result.Path, []byte(result.ConfigContent), 0644); err != nil {
		return result, errors.Wrapf(err, errors.ErrFileWrite, "failed to write config to %s", result.Path)
	}

	logger.Info().Str("path", result.Path).Msg("Written config file")
	result.Written = true

	return result, nil
}
