package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ttakeda/daybook/internal/calendar"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("DAYBOOK_DB", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, calendar.DefaultMarkColor, cfg.MarkColor)
	assert.Equal(t, calendar.DefaultSelectedColor, cfg.SelectedColor)
	assert.Contains(t, cfg.DBPath, DefaultDBFileName)
}

func TestLoad_ReadsFile(t *testing.T) {
	t.Setenv("DAYBOOK_DB", "")

	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
db_path = "/tmp/custom.db"
mark_color = "#112233"
week_starts_monday = true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.db", cfg.DBPath)
	assert.Equal(t, "#112233", cfg.MarkColor)
	assert.True(t, cfg.WeekStartsMonday)
	// Unset fields keep defaults.
	assert.Equal(t, calendar.DefaultSelectedColor, cfg.SelectedColor)
}

func TestLoad_EnvOverridesDBPath(t *testing.T) {
	t.Setenv("DAYBOOK_DB", "/tmp/env.db")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, "/tmp/env.db", cfg.DBPath)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("db_path = [broken"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := ExpandHome(filepath.Join("~", "x"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "x"), got)

	// Paths without a leading ~ pass through untouched.
	got, err = ExpandHome("/abs/path")
	require.NoError(t, err)
	assert.Equal(t, "/abs/path", got)
}
