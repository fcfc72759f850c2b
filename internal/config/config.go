// Package config handles configuration file loading and parsing.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/jmylchreest/nestchart/internal/chart"
	"github.com/jmylchreest/nestchart/internal/theme"
)

// Default configuration values.
const (
	DefaultIndicator  = "dot"
	DefaultAssetsHost = "https://go-echarts.github.io/go-echarts-assets/assets/"
	DefaultWidth      = "900px"
	DefaultHeight     = "500px"
	DefaultTitle      = "nestchart"
	DefaultPlainTmpl  = "[{{.Index}}] {{.Label}} ({{.Series | default \"unmatched\"}}) {{.Value}}"
)

// Config represents the nestchart configuration.
type Config struct {
	Chart     ChartConfig     `toml:"chart"`
	Themes    []theme.Theme   `toml:"themes"`
	Render    RenderConfig    `toml:"render"`
	Templates TemplatesConfig `toml:"templates"`
	Clipboard ClipboardConfig `toml:"clipboard"`
}

// ChartConfig holds tooltip and legend defaults.
type ChartConfig struct {
	Indicator string `toml:"indicator"` // dot, line, dashed
	Locale    string `toml:"locale"`    // BCP 47 tag, empty = comma grouping
	NameKey   string `toml:"name_key"`
	LabelKey  string `toml:"label_key"`
}

// RenderConfig holds HTML page settings.
type RenderConfig struct {
	Width      string `toml:"width"`
	Height     string `toml:"height"`
	Dark       bool   `toml:"dark"`
	Title      string `toml:"title"`
	AssetsHost string `toml:"assets_host"`
	Stylesheet string `toml:"stylesheet"` // Extra CSS file appended to the page
}

// TemplatesConfig holds output templates.
type TemplatesConfig struct {
	Plain  string            `toml:"plain"`
	Custom map[string]string `toml:"custom"`
}

// ClipboardConfig holds clipboard settings (preview only).
type ClipboardConfig struct {
	Command string `toml:"command"` // Auto-detected if empty
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Chart: ChartConfig{
			Indicator: DefaultIndicator,
		},
		Render: RenderConfig{
			Width:      DefaultWidth,
			Height:     DefaultHeight,
			Title:      DefaultTitle,
			AssetsHost: DefaultAssetsHost,
		},
		Templates: TemplatesConfig{
			Plain:  DefaultPlainTmpl,
			Custom: make(map[string]string),
		},
	}
}

// ConfigPath returns the path to the config file.
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config.
func ConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "nestchart", "config.toml")
}

// LoadConfig loads configuration from the specified path.
// If path is empty, uses the default config path.
// Returns default config if file doesn't exist.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if _, err := chart.ParseIndicator(cfg.Chart.Indicator); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// Save writes the configuration to the specified path.
// Creates parent directories if needed.
func (c *Config) Save(path string) error {
	if path == "" {
		path = ConfigPath()
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Registry returns the theme registry: the default themes plus any
// declared under [[themes]].
func (c *Config) Registry() (*theme.Registry, error) {
	return theme.NewRegistry(c.Themes...)
}

// NumberFormatter returns the formatter for the configured locale.
func (c *Config) NumberFormatter() (chart.NumberFormatter, error) {
	return chart.NewNumberFormatter(c.Chart.Locale)
}

// Indicator returns the configured default tooltip indicator.
func (c *Config) Indicator() chart.Indicator {
	ind, err := chart.ParseIndicator(c.Chart.Indicator)
	if err != nil {
		return chart.IndicatorDot
	}
	return ind
}

// GetTemplate returns the template for the given name.
// First checks custom templates, then built-in ones.
// Returns empty string if not found.
func (c *Config) GetTemplate(name string) string {
	if tmpl, ok := c.Templates.Custom[name]; ok {
		return tmpl
	}

	switch name {
	case "plain":
		return c.Templates.Plain
	default:
		return ""
	}
}
