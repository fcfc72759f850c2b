package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var cssOpts struct {
	series string
	id     string
}

var cssCmd = &cobra.Command{
	Use:   "css",
	Short: "Print the theme stylesheet for a series file",
	Long: `Print the CSS custom properties for every series that declares a
color, one rule per theme, scoped to [data-chart=<id>].

Nothing is printed when no series declares a color.

Examples:
  # Generate styles for a chart with a fixed id
  nestchart css --series sleep.toml --id nursery

  # Embed in a page
  echo "<style>$(nestchart css --series sleep.toml --id nursery)</style>"`,
	RunE: runCSS,
}

func init() {
	rootCmd.AddCommand(cssCmd)

	cssCmd.Flags().StringVar(&cssOpts.series, "series", "",
		"Series file (TOML, YAML or JSON)")
	cssCmd.Flags().StringVar(&cssOpts.id, "id", "",
		"Chart id suffix (generated if empty)")
	_ = cssCmd.MarkFlagRequired("series")
}

func runCSS(cmd *cobra.Command, args []string) error {
	s, err := loadSeries(cssOpts.series)
	if err != nil {
		return err
	}

	c, err := newContainer(cssOpts.id, s)
	if err != nil {
		return err
	}

	css, ok, err := c.Stylesheet()
	if err != nil {
		return err
	}
	if !ok {
		logger.Info("no series declares a color", "file", cssOpts.series)
		return nil
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), css)
	return err
}
