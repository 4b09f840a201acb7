// Package config loads driver settings from a TOML or YAML file and
// fills in defaults for everything the file leaves out.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format identifies a configuration file format.
type Format int

const (
	// FormatTOML is the default format.
	FormatTOML Format = iota

	// FormatYAML is selected for .yaml and .yml files.
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// Config holds the driver settings. Every field has a working default,
// so an absent or partial file is fine.
type Config struct {
	// Prompt is printed before each interactive line.
	Prompt string `toml:"prompt" yaml:"prompt"`

	// HistoryFile stores interactive history between sessions. An empty
	// value disables history.
	HistoryFile string `toml:"history_file" yaml:"history_file"`

	// Color selects styled output: auto, always or never.
	Color string `toml:"color" yaml:"color"`

	// LogFile, when set, receives a debug-level copy of the log stream.
	LogFile string `toml:"log_file" yaml:"log_file"`
}

// Default returns the built-in settings. The history file lives in the
// user's home directory; when the home directory cannot be resolved,
// history is disabled.
func Default() Config {
	cfg := Config{
		Prompt: "golox> ",
		Color:  "auto",
	}
	if home, err := os.UserHomeDir(); err == nil {
		cfg.HistoryFile = filepath.Join(home, ".golox_history")
	}
	return cfg
}

// DetectFormat picks the format from the file extension. Anything that
// is not YAML decodes as TOML.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatTOML
}

// Load reads the file at path and merges it over the defaults, so keys
// the file omits keep their built-in values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	switch DetectFormat(path) {
	case FormatYAML:
		err = yaml.Unmarshal(data, &cfg)
	default:
		err = toml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", filepath.Base(path), err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", filepath.Base(path), err)
	}
	return cfg, nil
}

// LoadDefault loads the first config file found at a well-known path,
// or returns the defaults when there is none.
func LoadDefault() (Config, error) {
	path, ok := DefaultPath()
	if !ok {
		return Default(), nil
	}
	return Load(path)
}

// DefaultPath returns the first existing well-known config file,
// probing .golox.toml then .golox.yaml in the home directory.
func DefaultPath() (string, bool) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", false
	}
	for _, name := range []string{".golox.toml", ".golox.yaml"} {
		path := filepath.Join(home, name)
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}
	return "", false
}

func (c Config) validate() error {
	switch c.Color {
	case "auto", "always", "never":
		return nil
	}
	return fmt.Errorf("invalid color mode %q (want auto, always or never)", c.Color)
}
