package main

import (
	"fmt"
	"html/template"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/nestchart/internal/adapter/input"
	"github.com/jmylchreest/nestchart/internal/chart"
	"github.com/jmylchreest/nestchart/internal/render"
)

var legendOpts struct {
	series   string
	points   string
	id       string
	nameKey  string
	align    string
	hideIcon bool
	html     bool
	dark     bool
}

var legendCmd = &cobra.Command{
	Use:   "legend",
	Short: "Render the legend for a set of data points",
	Long: `Render the chart legend for the given data points, one item per point,
as terminal text or as a standalone HTML page.

Examples:
  nestchart legend --series sleep.toml --points series.json
  nestchart legend --series sleep.toml --points series.json --align top --html`,
	RunE: runLegend,
}

func init() {
	rootCmd.AddCommand(legendCmd)

	legendCmd.Flags().StringVar(&legendOpts.series, "series", "",
		"Series file (TOML, YAML or JSON)")
	legendCmd.Flags().StringVar(&legendOpts.points, "points", input.StdinPath,
		"Data points file (JSON or YAML, - for stdin)")
	legendCmd.Flags().StringVar(&legendOpts.id, "id", "",
		"Chart id suffix (generated if empty)")
	legendCmd.Flags().StringVar(&legendOpts.nameKey, "name-key", "",
		"Field used to resolve item labels (default from config)")
	legendCmd.Flags().StringVar(&legendOpts.align, "align", "bottom",
		"Vertical alignment (top, bottom)")
	legendCmd.Flags().BoolVar(&legendOpts.hideIcon, "hide-icon", false,
		"Show color swatches instead of icons")
	legendCmd.Flags().BoolVar(&legendOpts.html, "html", false,
		"Write an HTML page instead of terminal text")
	legendCmd.Flags().BoolVar(&legendOpts.dark, "dark", false,
		"Use the dark theme (default from config)")
	_ = legendCmd.MarkFlagRequired("series")
}

func runLegend(cmd *cobra.Command, args []string) error {
	align := chart.VerticalAlign(legendOpts.align)
	if align != chart.AlignTop && align != chart.AlignBottom {
		return fmt.Errorf("invalid alignment %q (want top or bottom)", legendOpts.align)
	}

	s, err := loadSeries(legendOpts.series)
	if err != nil {
		return err
	}

	points, err := input.ReadPoints(legendOpts.points)
	if err != nil {
		return err
	}

	c, err := newContainer(legendOpts.id, s)
	if err != nil {
		return err
	}

	legend, err := c.Legend(chart.LegendOptions{
		HideIcon:      legendOpts.hideIcon,
		VerticalAlign: align,
		NameKey:       firstSet(legendOpts.nameKey, cfg.Chart.NameKey),
	}, points)
	if err != nil {
		return err
	}
	if legend == nil {
		logger.Info("nothing to show", "points", len(points))
		return nil
	}

	dark := legendOpts.dark || cfg.Render.Dark
	if legendOpts.html {
		return writeHTML(cmd, c, dark, func(h *render.HTML) (template.HTML, error) {
			return h.Fragment(nil, legend)
		})
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), render.NewTerminal(s, themeFor(dark)).Legend(legend))
	return err
}
