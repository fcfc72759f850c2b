// Package main provides the CLI entrypoint for nestchart.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/nestchart/internal/chart"
	"github.com/jmylchreest/nestchart/internal/config"
	"github.com/jmylchreest/nestchart/internal/series"
	"github.com/jmylchreest/nestchart/internal/theme"
)

// Build-time variables (set via ldflags)
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// Global configuration and state
var (
	cfg        *config.Config
	registry   *theme.Registry
	globalOpts struct {
		verbose    bool
		configPath string
	}
	logger *slog.Logger
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "nestchart",
	Short: "Chart series styling and label resolution",
	Long: `nestchart turns a per-series chart configuration into theme-scoped
stylesheets and resolves the labels, colors and icons shown in chart
tooltips and legends.

Series files are TOML, YAML or JSON. Data points and datasets are read
from JSON or YAML files, or from stdin with "-".`,
	Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildTime),
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogger()

		var err error
		cfg, err = config.LoadConfig(globalOpts.configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		registry, err = cfg.Registry()
		if err != nil {
			return fmt.Errorf("invalid theme configuration: %w", err)
		}

		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&globalOpts.verbose, "verbose", "v", false,
		"Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&globalOpts.configPath, "config", "",
		"Path to config file (default: ~/.config/nestchart/config.toml)")
}

// setupLogger configures the global slog logger.
func setupLogger() {
	level := slog.LevelWarn
	if globalOpts.verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Log to stderr so stdout is clean for output
	handler := slog.NewTextHandler(os.Stderr, opts)
	logger = slog.New(handler)
	slog.SetDefault(logger)
}

// loadSeries loads and validates a series file against the configured
// themes.
func loadSeries(path string) (*series.Config, error) {
	if path == "" {
		return nil, fmt.Errorf("--series is required")
	}

	s, err := series.Load(path, registry)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded series file", "file", path, "series", s.Len())
	return s, nil
}

// newContainer wraps s in a chart container using the configured themes
// and number locale.
func newContainer(id string, s *series.Config) (*chart.Container, error) {
	if err := chart.ValidateID(id); err != nil {
		return nil, err
	}
	numbers, err := cfg.NumberFormatter()
	if err != nil {
		return nil, err
	}
	return chart.Provide(id, s,
		chart.WithRegistry(registry),
		chart.WithNumberFormatter(numbers),
	), nil
}

// themeFor returns the theme name for the dark flag.
func themeFor(dark bool) string {
	if dark {
		return theme.Dark
	}
	return theme.Light
}
