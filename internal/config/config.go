// Package config handles configuration loading and defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/ttakeda/daybook/internal/calendar"
)

// Default values.
const (
	DefaultDirName    = ".daybook"
	DefaultDBFileName = "daybook.db"
)

// Config holds the full configuration for daybook.
type Config struct {
	// DBPath is where the SQLite file lives. Supports a leading "~".
	DBPath string `toml:"db_path"`

	// Calendar appearance.
	MarkColor        string `toml:"mark_color"`
	SelectedColor    string `toml:"selected_color"`
	WeekStartsMonday bool   `toml:"week_starts_monday"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		DBPath:        filepath.Join("~", DefaultDirName, DefaultDBFileName),
		MarkColor:     calendar.DefaultMarkColor,
		SelectedColor: calendar.DefaultSelectedColor,
	}
}

// DefaultPath returns the standard config file location,
// ~/.daybook/config.toml.
func DefaultPath() string {
	return filepath.Join("~", DefaultDirName, "config.toml")
}

// Load reads the TOML config at path, filling in defaults for anything not
// set. A missing file is not an error: defaults apply. The DAYBOOK_DB
// environment variable overrides db_path when set.
func Load(path string) (Config, error) {
	cfg := Default()

	resolved, err := ExpandHome(path)
	if err != nil {
		return cfg, err
	}

	if _, err := os.Stat(resolved); err == nil {
		if _, err := toml.DecodeFile(resolved, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", resolved, err)
		}
	} else if !os.IsNotExist(err) {
		return cfg, fmt.Errorf("reading config %s: %w", resolved, err)
	}

	if env := os.Getenv("DAYBOOK_DB"); env != "" {
		cfg.DBPath = env
	}

	if cfg.MarkColor == "" {
		cfg.MarkColor = calendar.DefaultMarkColor
	}
	if cfg.SelectedColor == "" {
		cfg.SelectedColor = calendar.DefaultSelectedColor
	}

	cfg.DBPath, err = ExpandHome(cfg.DBPath)
	if err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ExpandHome resolves a leading "~" to the current user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~"+string(os.PathSeparator)) {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	if path == "~" {
		return home, nil
	}
	return filepath.Join(home, path[2:]), nil
}
