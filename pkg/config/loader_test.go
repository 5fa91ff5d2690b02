package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/termout/pkg/errors"
	"github.com/arthur-debert/termout/pkg/render"
	"github.com/arthur-debert/termout/pkg/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the config directory at an empty temp dir
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_CONFIG_HOME", dir)
	xdg.Reload()
	return dir
}

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, 0, cfg.Verbosity)
	assert.Equal(t, "auto", cfg.Color)
	assert.Equal(t, render.ColorAuto, cfg.ColorMode())
	assert.True(t, cfg.Interactive)
	assert.Equal(t, "simpleDotsScrolling", cfg.Spinner)
	assert.Empty(t, cfg.Theme)
	assert.Empty(t, cfg.Styles)
}

func TestLoad_UserFiles(t *testing.T) {
	t.Run("toml in config dir", func(t *testing.T) {
		dir := isolate(t)
		writeFile(t, filepath.Join(dir, AppName, "config.toml"), `
verbosity = 2
color = "never"

[styles]
success = "bold green"
`)

		cfg, err := Load(LoadOptions{})
		require.NoError(t, err)
		assert.Equal(t, 2, cfg.Verbosity)
		assert.Equal(t, render.ColorNever, cfg.ColorMode())
		assert.Equal(t, map[string]string{"success": "bold green"}, cfg.Styles)
	})

	t.Run("yaml in config dir", func(t *testing.T) {
		dir := isolate(t)
		writeFile(t, filepath.Join(dir, AppName, "config.yaml"), `
interactive: false
spinner: dots
styles:
  highlight: italic magenta
`)

		cfg, err := Load(LoadOptions{})
		require.NoError(t, err)
		assert.False(t, cfg.Interactive)
		assert.Equal(t, "dots", cfg.Spinner)
		assert.Equal(t, "italic magenta", cfg.Styles["highlight"])
	})

	t.Run("explicit path", func(t *testing.T) {
		isolate(t)
		path := writeFile(t, filepath.Join(t.TempDir(), "custom.toml"), `verbosity = -1`)

		cfg, err := Load(LoadOptions{Path: path})
		require.NoError(t, err)
		assert.Equal(t, -1, cfg.Verbosity)
	})
}

func TestLoad_Precedence(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, AppName, "config.toml"), `
verbosity = 1
color = "always"
`)
	t.Setenv("TERMOUT_VERBOSITY", "2")
	t.Setenv("TERMOUT_STYLES_ERROR", "  underline red  ")

	cfg, err := Load(LoadOptions{Overrides: map[string]interface{}{"verbosity": 3}})
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Verbosity)
	assert.Equal(t, "always", cfg.Color)
	assert.Equal(t, "underline red", cfg.Styles["error"])
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		content  string
		wantCode errors.ErrorCode
	}{
		{name: "missing explicit file", wantCode: errors.ErrConfigLoad},
		{name: "unsupported extension", file: "config.ini", content: "x=1", wantCode: errors.ErrConfigLoad},
		{name: "malformed toml", file: "config.toml", content: "verbosity = [", wantCode: errors.ErrConfigParse},
		{name: "wrong type", file: "config.toml", content: `verbosity = "loud"`, wantCode: errors.ErrConfigParse},
		{name: "invalid color", file: "config.toml", content: `color = "sometimes"`, wantCode: errors.ErrConfigValid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			path := filepath.Join(t.TempDir(), "missing.toml")
			if tt.file != "" {
				path = writeFile(t, filepath.Join(t.TempDir(), tt.file), tt.content)
			}

			_, err := Load(LoadOptions{Path: path})
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, errors.GetErrorCode(err))
		})
	}
}

func TestConfig_StyleOverrides(t *testing.T) {
	theme := writeFile(t, filepath.Join(t.TempDir(), "theme.yaml"), `
colors:
  accent: "#ff8800"
styles:
  success: bold accent
  banner: italic accent
`)

	cfg := &Config{
		Spinner: "pulse",
		Theme:   theme,
		Styles:  map[string]string{"banner": "bold blue"},
	}

	overrides, err := cfg.StyleOverrides()
	require.NoError(t, err)
	assert.Equal(t, "bold #ff8800", overrides["success"])
	assert.Equal(t, "bold blue", overrides["banner"])
	assert.Equal(t, "pulse", overrides[style.SpinnerKey])
}

func TestConfig_StyleOverridesMissingTheme(t *testing.T) {
	cfg := &Config{Theme: filepath.Join(t.TempDir(), "nope.yaml")}

	_, err := cfg.StyleOverrides()
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrThemeLoad))
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "themes/dark.yaml"), expandHome("~/themes/dark.yaml"))
	assert.Equal(t, "/abs/theme.yaml", expandHome("/abs/theme.yaml"))
	assert.Equal(t, "", expandHome(""))
}
