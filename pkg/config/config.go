// Package config resolves the settings a build run needs. Values are
// layered, lowest precedence first: built-in defaults, the user's
// config file under the XDG config directory, a .env file in the
// working directory, and REMOTEX_* environment variables. Real
// environment variables win over .env entries, which win over the
// config file. The loaded Config is passed down explicitly; nothing
// reads configuration from package state.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/angusrush/remotex/pkg/errors"
	"github.com/angusrush/remotex/pkg/logging"
)

// Fixed defaults. The remote root and build command must match what
// the build host expects; everything else is tool plumbing.
const (
	DefaultRemoteRoot    = "/tmp"
	DefaultBuildCommand  = "latexmk -pdf -interaction=nonstopmode -synctex=1 -verbose -f"
	DefaultRsyncBinary   = "rsync"
	DefaultSSHBinary     = "ssh"
	DefaultHiddenExclude = ".[!.]*"
	DefaultSourceExclude = "*.tex"
)

// envPrefix namespaces the environment variables the loader reads
const envPrefix = "REMOTEX_"

// Config holds the resolved settings for a run
type Config struct {
	// Server is the remote host used when --server is not given
	Server string `koanf:"server" toml:"server"`

	// RemoteRoot is the staging directory on the build host under
	// which project folders are placed
	RemoteRoot string `koanf:"remote_root" toml:"remote_root"`

	// BuildCommand is the command line run on the build host; the
	// document filename is appended, quoted, at invocation time
	BuildCommand string `koanf:"build_command" toml:"build_command"`

	// RsyncBinary and SSHBinary name the local transfer tools
	RsyncBinary string `koanf:"rsync_binary" toml:"rsync_binary"`
	SSHBinary   string `koanf:"ssh_binary" toml:"ssh_binary"`

	// HiddenExclude filters hidden entries out of both transfers
	HiddenExclude string `koanf:"hidden_exclude" toml:"hidden_exclude"`

	// SourceExclude keeps document sources from being pulled back
	// over locally edited copies
	SourceExclude string `koanf:"source_exclude" toml:"source_exclude"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		RemoteRoot:    DefaultRemoteRoot,
		BuildCommand:  DefaultBuildCommand,
		RsyncBinary:   DefaultRsyncBinary,
		SSHBinary:     DefaultSSHBinary,
		HiddenExclude: DefaultHiddenExclude,
		SourceExclude: DefaultSourceExclude,
	}
}

func defaultMap() map[string]interface{} {
	return map[string]interface{}{
		"server":         "",
		"remote_root":    DefaultRemoteRoot,
		"build_command":  DefaultBuildCommand,
		"rsync_binary":   DefaultRsyncBinary,
		"ssh_binary":     DefaultSSHBinary,
		"hidden_exclude": DefaultHiddenExclude,
		"source_exclude": DefaultSourceExclude,
	}
}

// FilePath returns the config file location, respecting an
// XDG_CONFIG_HOME override before the xdg defaults
func FilePath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		configHome = xdg.ConfigHome
	}
	return filepath.Join(configHome, "remotex", "config.toml")
}

// Load resolves the configuration from all layers
func Load() (*Config, error) {
	logger := logging.GetLogger("config")

	// Fill the environment from .env before the env layer snapshots
	// it; existing variables are never overwritten
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg("No .env file found")
	}

	k := koanf.New(".")

	// 1. Built-in defaults
	if err := k.Load(confmap.Provider(defaultMap(), "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. User config file if it exists
	path := FilePath()
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse config file %s", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded config file")
	}

	// 3. Environment variables
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment variables")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	logger.Debug().
		Str("server", cfg.Server).
		Str("remote_root", cfg.RemoteRoot).
		Msg("Configuration resolved")

	return &cfg, nil
}
