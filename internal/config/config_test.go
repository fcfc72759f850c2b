package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/nestchart/internal/chart"
	"github.com/jmylchreest/nestchart/internal/theme"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "dot", cfg.Chart.Indicator)
	assert.Empty(t, cfg.Chart.Locale)
	assert.Empty(t, cfg.Themes)
	assert.Equal(t, "900px", cfg.Render.Width)
	assert.Equal(t, "500px", cfg.Render.Height)
	assert.False(t, cfg.Render.Dark)
	assert.NotEmpty(t, cfg.Render.AssetsHost)
	assert.NotEmpty(t, cfg.Templates.Plain)
}

func TestLoadConfig_DefaultsWhenNoFile(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.toml")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Render.Width, cfg.Render.Width)
}

func TestLoadConfig_ParsesTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := `
[chart]
indicator = "dashed"
locale = "de-DE"
name_key = "browser"
label_key = "month"

[[themes]]
name = "contrast"
selector = ".hc"

[render]
width = "1200px"
height = "600px"
dark = true
title = "Traffic"
stylesheet = "/tmp/extra.css"

[templates]
plain = "{{.Label}}"

[templates.custom]
short = "{{.Series}}"

[clipboard]
command = "xclip"
`
	err := os.WriteFile(path, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "dashed", cfg.Chart.Indicator)
	assert.Equal(t, chart.IndicatorDashed, cfg.Indicator())
	assert.Equal(t, "de-DE", cfg.Chart.Locale)
	assert.Equal(t, "browser", cfg.Chart.NameKey)
	assert.Equal(t, "month", cfg.Chart.LabelKey)
	require.Len(t, cfg.Themes, 1)
	assert.Equal(t, ".hc", cfg.Themes[0].Selector)
	assert.Equal(t, "1200px", cfg.Render.Width)
	assert.Equal(t, "600px", cfg.Render.Height)
	assert.True(t, cfg.Render.Dark)
	assert.Equal(t, "Traffic", cfg.Render.Title)
	assert.Equal(t, "/tmp/extra.css", cfg.Render.Stylesheet)
	assert.Equal(t, "{{.Label}}", cfg.Templates.Plain)
	assert.Equal(t, "{{.Series}}", cfg.Templates.Custom["short"])
	assert.Equal(t, "xclip", cfg.Clipboard.Command)
}

func TestLoadConfig_PartialConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := `
[chart]
locale = "en-GB"
`
	err := os.WriteFile(path, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "en-GB", cfg.Chart.Locale)

	// Unchanged fields keep their defaults
	assert.Equal(t, "dot", cfg.Chart.Indicator)
	assert.Equal(t, "900px", cfg.Render.Width)
	assert.NotEmpty(t, cfg.Templates.Plain)
}

func TestLoadConfig_InvalidTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	err := os.WriteFile(path, []byte(`this is not valid toml [`), 0644)
	require.NoError(t, err)

	_, err = LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfig_InvalidIndicator(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	err := os.WriteFile(path, []byte("[chart]\nindicator = \"square\"\n"), 0644)
	require.NoError(t, err)

	_, err = LoadConfig(path)
	assert.Error(t, err)
}

func TestConfig_Save(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "subdir", "config.toml")

	cfg := DefaultConfig()
	cfg.Chart.Locale = "fr-FR"
	cfg.Templates.Custom["test"] = "custom template"

	err := cfg.Save(path)
	require.NoError(t, err)

	_, err = os.Stat(path)
	require.NoError(t, err)

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "fr-FR", loaded.Chart.Locale)
	assert.Equal(t, "custom template", loaded.Templates.Custom["test"])
}

func TestConfig_Registry(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Themes = append(cfg.Themes,
		theme.Theme{Name: "contrast", Selector: ".hc"},
		theme.Theme{Name: "dark", Selector: ".night"},
	)

	reg, err := cfg.Registry()
	require.NoError(t, err)
	assert.Equal(t, []string{"light", "dark", "contrast"}, reg.Names())

	dark, ok := reg.Lookup("dark")
	require.True(t, ok)
	assert.Equal(t, ".night", dark.Selector)
}

func TestConfig_RegistryInvalid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Themes = append(cfg.Themes, theme.Theme{Name: "", Selector: ".x"})

	_, err := cfg.Registry()
	assert.Error(t, err)
}

func TestConfig_NumberFormatter(t *testing.T) {
	cfg := DefaultConfig()
	f, err := cfg.NumberFormatter()
	require.NoError(t, err)
	assert.Equal(t, "1,234", f.FormatNumber(1234))

	cfg.Chart.Locale = "not a locale!"
	_, err = cfg.NumberFormatter()
	assert.Error(t, err)
}

func TestConfig_GetTemplate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Templates.Custom["mytemplate"] = "custom: {{.Label}}"

	tests := []struct {
		name     string
		expected string
	}{
		{"plain", cfg.Templates.Plain},
		{"mytemplate", "custom: {{.Label}}"},
		{"nonexistent", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, cfg.GetTemplate(tt.name))
		})
	}
}

func TestConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")
	assert.Equal(t, "/custom/config/nestchart/config.toml", ConfigPath())
}

func TestConfigPathDefault(t *testing.T) {
	path := ConfigPath()
	assert.Contains(t, path, "nestchart/config.toml")
}
