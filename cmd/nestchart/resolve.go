package main

import (
	"github.com/spf13/cobra"

	"github.com/jmylchreest/nestchart/internal/adapter/input"
	"github.com/jmylchreest/nestchart/internal/adapter/output"
	"github.com/jmylchreest/nestchart/internal/chart"
	"github.com/jmylchreest/nestchart/internal/model"
)

var resolveOpts struct {
	series   string
	points   string
	key      string
	color    string
	format   string
	template string
	noIndex  bool
}

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve data points to series labels, colors and icons",
	Long: `Resolve each data point against the series configuration.

The lookup key names a field of the data point (or of its payload) whose
value is the series key; when no such field exists the key itself is
looked up.

Examples:
  # Resolve points by their dataKey
  nestchart resolve --series sleep.toml --points hover.json

  # Resolve by a payload field, reading points from stdin
  cat hover.json | nestchart resolve --series browsers.yaml --key browser

  # Output as JSON
  nestchart resolve --series sleep.toml --points hover.json --format json

  # Custom template (or the name of a template from the config file)
  nestchart resolve --series sleep.toml --points hover.json \
    --template '{{.Label}}={{.Value}}'`,
	RunE: runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)

	resolveCmd.Flags().StringVar(&resolveOpts.series, "series", "",
		"Series file (TOML, YAML or JSON)")
	resolveCmd.Flags().StringVar(&resolveOpts.points, "points", input.StdinPath,
		"Data points file (JSON or YAML, - for stdin)")
	resolveCmd.Flags().StringVar(&resolveOpts.key, "key", model.FieldDataKey,
		"Lookup key")
	resolveCmd.Flags().StringVar(&resolveOpts.color, "color", "",
		"Color override for every point")
	resolveCmd.Flags().StringVarP(&resolveOpts.format, "format", "f", "plain",
		"Output format (plain, json, yaml)")
	resolveCmd.Flags().StringVar(&resolveOpts.template, "template", "",
		"Go template or config template name for plain output")
	resolveCmd.Flags().BoolVar(&resolveOpts.noIndex, "no-index", false,
		"Omit the index prefix in plain output")
	_ = resolveCmd.MarkFlagRequired("series")
}

func runResolve(cmd *cobra.Command, args []string) error {
	format, err := output.ParseFormat(resolveOpts.format)
	if err != nil {
		return err
	}

	s, err := loadSeries(resolveOpts.series)
	if err != nil {
		return err
	}

	points, err := input.ReadPoints(resolveOpts.points)
	if err != nil {
		return err
	}

	numbers, err := cfg.NumberFormatter()
	if err != nil {
		return err
	}

	resolutions := make([]output.Resolution, 0, len(points))
	for i := range points {
		entry, ok := chart.Resolve(s, &points[i], resolveOpts.key, resolveOpts.color)
		resolutions = append(resolutions,
			output.NewResolution(i+1, resolveOpts.key, points[i], entry, ok, numbers))
	}
	logger.Debug("resolved points", "points", len(points), "key", resolveOpts.key)

	opts := output.DefaultFormatterOptions()
	opts.ShowIndex = !resolveOpts.noIndex
	if resolveOpts.template != "" {
		opts.Template = resolveOpts.template
		if named := cfg.GetTemplate(resolveOpts.template); named != "" {
			opts.Template = named
		}
	}

	return output.NewFormatter(format, opts).Format(cmd.OutOrStdout(), resolutions)
}
