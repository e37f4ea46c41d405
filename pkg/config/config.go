// Package config loads the optional treeviz configuration file.
//
// The file lives at ~/.config/treeviz/config.toml (honoring
// $XDG_CONFIG_HOME) and tunes output defaults and the node color table:
//
//	format = "svg"      # default output format
//	direction = "TB"    # graphviz rankdir
//
//	[colors]
//	Program = "#e1f5ff"
//	IfStmt  = "#d1c4e9"
//
// A missing file is not an error; every field is optional.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/treeviz/pkg/errors"
	"github.com/matzehuels/treeviz/pkg/render"
)

// appName is the directory name under the user config root.
const appName = "treeviz"

// Config holds user-tunable defaults. The zero value applies the built-in
// behavior everywhere.
type Config struct {
	// Format is the default output format when neither a format token nor
	// an output extension is given ("png", "svg", "pdf", "dot").
	Format string `toml:"format"`

	// Direction is the graphviz rankdir attribute ("TB", "LR", ...).
	Direction string `toml:"direction"`

	// Colors overrides entries of the built-in kind→color table.
	Colors map[string]string `toml:"colors"`
}

// Load reads the config file from the default location. A missing file
// yields the zero Config.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Config{}, nil
	}
	return LoadFile(path)
}

// LoadFile reads and validates the config file at path. A missing file is
// not an error; a file that fails to decode or names an unknown format is
// reported with ErrCodeInvalidConfig.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode config %s", path)
	}

	if cfg.Format != "" {
		if _, err := render.ParseFormat(cfg.Format); err != nil {
			return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "config %s", path)
		}
	}
	return cfg, nil
}

// Path returns the config file location, honoring $XDG_CONFIG_HOME.
func Path() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// Palette returns the built-in palette with the config's color overrides
// applied.
func (c Config) Palette() render.Palette {
	if len(c.Colors) == 0 {
		return render.DefaultPalette()
	}
	return render.DefaultPalette().Merge(c.Colors)
}

// DefaultFormat returns the configured default format, or
// [render.DefaultFormat] when unset.
func (c Config) DefaultFormat() render.Format {
	if c.Format == "" {
		return render.DefaultFormat
	}
	f, err := render.ParseFormat(c.Format)
	if err != nil {
		return render.DefaultFormat
	}
	return f
}
