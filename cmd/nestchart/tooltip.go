package main

import (
	"fmt"
	"html/template"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/nestchart/internal/adapter/input"
	"github.com/jmylchreest/nestchart/internal/chart"
	"github.com/jmylchreest/nestchart/internal/render"
)

var tooltipOpts struct {
	series        string
	points        string
	id            string
	indicator     string
	label         string
	labelKey      string
	nameKey       string
	color         string
	hideLabel     bool
	hideIndicator bool
	html          bool
	dark          bool
}

var tooltipCmd = &cobra.Command{
	Use:   "tooltip",
	Short: "Render the tooltip for a set of hovered data points",
	Long: `Render the tooltip a chart shows while the given data points are
hovered, either as terminal text or as a standalone HTML page carrying the
chart stylesheet.

Examples:
  # Terminal tooltip with a line indicator
  nestchart tooltip --series sleep.toml --points hover.json --indicator line

  # Heading taken from a series label
  nestchart tooltip --series sleep.toml --points hover.json --label Mon

  # HTML page
  nestchart tooltip --series sleep.toml --points hover.json --html > tip.html`,
	RunE: runTooltip,
}

func init() {
	rootCmd.AddCommand(tooltipCmd)

	tooltipCmd.Flags().StringVar(&tooltipOpts.series, "series", "",
		"Series file (TOML, YAML or JSON)")
	tooltipCmd.Flags().StringVar(&tooltipOpts.points, "points", input.StdinPath,
		"Data points file (JSON or YAML, - for stdin)")
	tooltipCmd.Flags().StringVar(&tooltipOpts.id, "id", "",
		"Chart id suffix (generated if empty)")
	tooltipCmd.Flags().StringVar(&tooltipOpts.indicator, "indicator", "",
		"Indicator (dot, line, dashed; default from config)")
	tooltipCmd.Flags().StringVar(&tooltipOpts.label, "label", "",
		"Tooltip heading, looked up as a series key first")
	tooltipCmd.Flags().StringVar(&tooltipOpts.labelKey, "label-key", "",
		"Field used to resolve the heading (default from config)")
	tooltipCmd.Flags().StringVar(&tooltipOpts.nameKey, "name-key", "",
		"Field used to resolve row labels (default from config)")
	tooltipCmd.Flags().StringVar(&tooltipOpts.color, "color", "",
		"Indicator color override")
	tooltipCmd.Flags().BoolVar(&tooltipOpts.hideLabel, "hide-label", false,
		"Hide the heading")
	tooltipCmd.Flags().BoolVar(&tooltipOpts.hideIndicator, "hide-indicator", false,
		"Hide row indicators")
	tooltipCmd.Flags().BoolVar(&tooltipOpts.html, "html", false,
		"Write an HTML page instead of terminal text")
	tooltipCmd.Flags().BoolVar(&tooltipOpts.dark, "dark", false,
		"Use the dark theme (default from config)")
	_ = tooltipCmd.MarkFlagRequired("series")
}

func runTooltip(cmd *cobra.Command, args []string) error {
	indicator := cfg.Indicator()
	if tooltipOpts.indicator != "" {
		var err error
		indicator, err = chart.ParseIndicator(tooltipOpts.indicator)
		if err != nil {
			return err
		}
	}

	s, err := loadSeries(tooltipOpts.series)
	if err != nil {
		return err
	}

	points, err := input.ReadPoints(tooltipOpts.points)
	if err != nil {
		return err
	}

	c, err := newContainer(tooltipOpts.id, s)
	if err != nil {
		return err
	}

	tip, err := c.Tooltip(chart.TooltipOptions{
		Active:        true,
		Indicator:     indicator,
		HideLabel:     tooltipOpts.hideLabel,
		HideIndicator: tooltipOpts.hideIndicator,
		Label:         tooltipOpts.label,
		Color:         tooltipOpts.color,
		NameKey:       firstSet(tooltipOpts.nameKey, cfg.Chart.NameKey),
		LabelKey:      firstSet(tooltipOpts.labelKey, cfg.Chart.LabelKey),
	}, points)
	if err != nil {
		return err
	}
	if tip == nil {
		logger.Info("nothing to show", "points", len(points))
		return nil
	}

	dark := tooltipOpts.dark || cfg.Render.Dark
	if tooltipOpts.html {
		return writeHTML(cmd, c, dark, func(h *render.HTML) (template.HTML, error) {
			return h.Fragment(tip, nil)
		})
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), render.NewTerminal(s, themeFor(dark)).Tooltip(tip))
	return err
}

// writeHTML writes a standalone page for c with the fragment produced by
// body.
func writeHTML(cmd *cobra.Command, c *chart.Container, dark bool, body func(*render.HTML) (template.HTML, error)) error {
	h := render.NewHTML()

	fragment, err := body(h)
	if err != nil {
		return err
	}

	css, _, err := c.Stylesheet()
	if err != nil {
		return err
	}

	return h.Document(cmd.OutOrStdout(), render.Document{
		Title:      cfg.Render.Title,
		ChartID:    c.ID(),
		Dark:       dark,
		Stylesheet: css,
		Body:       fragment,
	})
}

func firstSet(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
