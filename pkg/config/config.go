// Package config loads the optional streamnet TOML configuration file.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/hydrokit/streamnet/pkg/errors"
	"github.com/hydrokit/streamnet/pkg/source"
)

// appName is used for the XDG config directory and file names.
const appName = "streamnet"

// Config holds project-level defaults. Command-line flags override it.
//
// Example streamnet.toml:
//
//	max_upstreams = 8
//	scratch_dir = "/data/scratch"
//
//	[fields]
//	id = "HydroID"
//	downstream = "NextDownID"
type Config struct {
	// MaxUpstreams is the default upstream column bound (0 = use the
	// observed maximum fan-in).
	MaxUpstreams int `toml:"max_upstreams"`

	// ScratchDir is where default output files land when no output path
	// is given. Empty means the OS temp directory.
	ScratchDir string `toml:"scratch_dir"`

	Fields struct {
		ID         string `toml:"id"`
		Downstream string `toml:"downstream"`
	} `toml:"fields"`
}

// Default returns the built-in configuration.
func Default() Config {
	var c Config
	c.Fields.ID = source.DefaultIDField
	c.Fields.Downstream = source.DefaultDownstreamField
	return c
}

// Load reads a config file at path, applying defaults for unset fields.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}

	c := Default()
	if err := toml.Unmarshal(data, &c); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if c.Fields.ID == "" {
		c.Fields.ID = source.DefaultIDField
	}
	if c.Fields.Downstream == "" {
		c.Fields.Downstream = source.DefaultDownstreamField
	}
	return c, nil
}

// Locate returns the path of the user config file, following the XDG
// convention ($XDG_CONFIG_HOME/streamnet/streamnet.toml, falling back to
// ~/.config/streamnet/streamnet.toml). The second return is false when the
// file does not exist.
func Locate() (string, bool) {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", false
		}
		dir = filepath.Join(home, ".config")
	}
	path := filepath.Join(dir, appName, appName+".toml")
	if _, err := os.Stat(path); err != nil {
		return path, false
	}
	return path, true
}

// LoadDefault loads the user config file if one exists, otherwise the
// built-in defaults. An unreadable or malformed file is an error; a missing
// one is not.
func LoadDefault() (Config, error) {
	path, ok := Locate()
	if !ok {
		return Default(), nil
	}
	return Load(path)
}

// SourceFields converts the configured column names to source.Fields.
func (c Config) SourceFields() source.Fields {
	return source.Fields{ID: c.Fields.ID, Downstream: c.Fields.Downstream}
}
