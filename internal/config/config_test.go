package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsAreValid(t *testing.T) {
	require.NoError(t, Defaults().Validate())
}

func TestParse_OverridesDefaults(t *testing.T) {
	cfg, err := Parse(`
tab_width = 8
frontend = "tcell"
log_level = "debug"

[theme]
gutter = "#444444"
`)
	require.NoError(t, err)

	want := Defaults()
	want.TabWidth = 8
	want.Frontend = FrontendTcell
	want.LogLevel = "debug"
	want.Theme.Gutter = "#444444"
	assert.Equal(t, want, cfg)
}

func TestParse_FalseBooleans(t *testing.T) {
	cfg, err := Parse("line_numbers = false\ncolor = false\n")
	require.NoError(t, err)
	assert.False(t, cfg.LineNumbers)
	assert.False(t, cfg.Color)
}

func TestParse_Rejects(t *testing.T) {
	cases := []struct {
		name string
		text string
		msg  string
	}{
		{name: "tab too small", text: "tab_width = 0", msg: "tab_width 0 out of range"},
		{name: "tab too large", text: "tab_width = 17", msg: "tab_width 17 out of range"},
		{name: "frontend", text: `frontend = "gtk"`, msg: `unknown frontend "gtk"`},
		{name: "log level", text: `log_level = "trace"`, msg: `unknown log_level "trace"`},
		{name: "unknown key", text: "wrap = true", msg: "unknown keys: wrap"},
		{name: "unknown theme key", text: "[theme]\ncursor = \"1\"", msg: "unknown keys: theme.cursor"},
		{name: "syntax", text: "tab_width = ", msg: ""},
		{name: "type", text: `tab_width = "four"`, msg: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := Parse(tc.text)
			require.Error(t, err)
			if tc.msg != "" {
				assert.Contains(t, err.Error(), tc.msg)
			}
			assert.Equal(t, Defaults(), cfg)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg, err := Load(path, false)
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)

	_, err = Load(path, true)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("", true)
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("tab_width = 2\nlog_file = \"/tmp/modus.log\"\n"), 0o600))

	cfg, err := Load(path, false)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.TabWidth)
	assert.Equal(t, "/tmp/modus.log", cfg.LogFile)
}

func TestLoad_InvalidFileNamesPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("tab_width = 99\n"), 0o600))

	_, err := Load(path, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	t.Setenv("HOME", "/home/u")

	path, err := DefaultPath()
	require.NoError(t, err)
	if filepath.Separator == '/' && path != "/cfg/modus/config.toml" {
		// macOS ignores XDG_CONFIG_HOME.
		assert.Equal(t, filepath.Join("/home/u", "Library", "Application Support", "modus", "config.toml"), path)
	}
}
