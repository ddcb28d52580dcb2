// Package config loads the editor's TOML configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Front-ends selectable with the frontend key.
const (
	FrontendTea   = "tea"
	FrontendTcell = "tcell"
)

const (
	MinTabWidth = 1
	MaxTabWidth = 16
)

var logLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Config is the decoded configuration file.
type Config struct {
	TabWidth    int    `toml:"tab_width"`
	LineNumbers bool   `toml:"line_numbers"`
	Frontend    string `toml:"frontend"`
	LogFile     string `toml:"log_file"`
	LogLevel    string `toml:"log_level"`
	// Color false forces an ASCII color profile.
	Color bool  `toml:"color"`
	Theme Theme `toml:"theme"`
}

// Theme holds lipgloss color strings (ANSI numbers or hex).
type Theme struct {
	Gutter           string `toml:"gutter"`
	LineNumberActive string `toml:"line_number_active"`
	StatusBar        string `toml:"status_bar"`
	StatusError      string `toml:"status_error"`
}

// Defaults returns the configuration used when no file is present.
func Defaults() Config {
	return Config{
		TabWidth:    4,
		LineNumbers: true,
		Frontend:    FrontendTea,
		LogLevel:    "info",
		Color:       true,
		Theme: Theme{
			Gutter:           "240",
			LineNumberActive: "250",
			StatusBar:        "236",
			StatusError:      "196",
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/modus/config.toml or the platform
// equivalent.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, "modus", "config.toml"), nil
}

// Load reads path over Defaults. A missing file is only an error when the
// path was given explicitly.
func Load(path string, explicit bool) (Config, error) {
	cfg := Defaults()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	cfg, err = Parse(string(data))
	if err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML text over Defaults and validates the result.
func Parse(text string) (Config, error) {
	cfg := Defaults()
	md, err := toml.Decode(text, &cfg)
	if err != nil {
		return Defaults(), err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Defaults(), fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Defaults(), err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.TabWidth < MinTabWidth || c.TabWidth > MaxTabWidth {
		return fmt.Errorf("tab_width %d out of range %d..%d", c.TabWidth, MinTabWidth, MaxTabWidth)
	}
	switch c.Frontend {
	case FrontendTea, FrontendTcell:
	default:
		return fmt.Errorf("unknown frontend %q", c.Frontend)
	}
	if !logLevels[c.LogLevel] {
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	return nil
}
