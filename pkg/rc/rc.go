// Package rc loads the optional YAML configuration file of edpp.
package rc

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
	"src.edpp.dev/pkg/env"
	"src.edpp.dev/pkg/fsutil"
)

// Config keeps the settings read from the rc file. Command-line flags take
// precedence over them.
type Config struct {
	// Prompt shown before reading a command, used when -p is not given.
	Prompt string `yaml:"prompt"`
	// Whether to show full error messages, used when -v is not given.
	Verbose bool    `yaml:"verbose"`
	History History `yaml:"history"`
	Log     Log     `yaml:"log"`
}

// History configures the persistent command history.
type History struct {
	// Pointer so that an absent key can be told apart from false.
	Enabled *bool `yaml:"enabled"`
	// Path of the database; empty means the default path.
	DB string `yaml:"db"`
	// Maximum number of commands kept.
	Size int `yaml:"size"`
}

// Log configures the debug log.
type Log struct {
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max-size-mb"`
	MaxBackups int    `yaml:"max-backups"`
}

// DefaultHistorySize is the number of commands kept when history.size is not
// set.
const DefaultHistorySize = 100

// Default returns the configuration used when there is no rc file.
func Default() *Config {
	return &Config{History: History{Size: DefaultHistorySize}}
}

// HistoryEnabled reports whether commands should be recorded persistently.
// History is enabled unless explicitly disabled.
func (c *Config) HistoryEnabled() bool {
	return c.History.Enabled == nil || *c.History.Enabled
}

// Path returns the default path of the rc file: rc.yaml in $XDG_CONFIG_HOME/edpp,
// or ~/.config/edpp if $XDG_CONFIG_HOME is not set.
func Path() (string, error) {
	return xdgPath(env.XDG_CONFIG_HOME, ".config", "rc.yaml")
}

// DBPath returns the default path of the history database: history.db in
// $XDG_STATE_HOME/edpp, or ~/.local/state/edpp if $XDG_STATE_HOME is not set.
func DBPath() (string, error) {
	return xdgPath(env.XDG_STATE_HOME, filepath.Join(".local", "state"), "history.db")
}

func xdgPath(envName, homeRel, name string) (string, error) {
	if dir := os.Getenv(envName); dir != "" {
		return filepath.Join(dir, "edpp", name), nil
	}
	home, err := fsutil.GetHome("")
	if err != nil {
		return "", fmt.Errorf("find %s: %w", name, err)
	}
	return filepath.Join(home, homeRel, "edpp", name), nil
}

// Load reads the rc file at path. A nonexistent file is not an error; the
// default configuration is returned for it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Default(), err
	}
	cfg, err := Parse(bytes.NewReader(data))
	if err != nil {
		return Default(), fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse parses an rc file. Unknown keys are errors, so that typos are not
// silently ignored.
func Parse(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, err
	}
	if cfg.History.Size <= 0 {
		cfg.History.Size = DefaultHistorySize
	}
	return cfg, nil
}
