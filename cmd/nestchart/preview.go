package main

import (
	"github.com/spf13/cobra"

	"github.com/jmylchreest/nestchart/internal/adapter/input"
	"github.com/jmylchreest/nestchart/internal/tui"
)

var previewOpts struct {
	series  string
	data    string
	noWatch bool
}

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview tooltips and legends interactively",
	Long: `Walk the rows of a dataset in the terminal and show the tooltip and
legend a chart displays while each row is hovered. The series file is
reloaded when it changes.

Key bindings:
  ←/→, h/l    Previous/next row
  g/G         First/last row
  i           Cycle indicator (dot, line, dashed)
  t           Toggle tooltip label
  d           Toggle dark theme
  c           Copy chart stylesheet to clipboard
  ?           Show help
  q           Quit`,
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().StringVar(&previewOpts.series, "series", "",
		"Series file (TOML, YAML or JSON)")
	previewCmd.Flags().StringVar(&previewOpts.data, "data", "",
		"Dataset file (JSON or YAML)")
	previewCmd.Flags().BoolVar(&previewOpts.noWatch, "no-watch", false,
		"Do not reload the series file on change")
	_ = previewCmd.MarkFlagRequired("series")
	_ = previewCmd.MarkFlagRequired("data")
}

func runPreview(cmd *cobra.Command, args []string) error {
	data, err := input.ReadDataset(previewOpts.data)
	if err != nil {
		return err
	}

	return tui.Run(tui.RunOptions{
		Config:     cfg,
		Registry:   registry,
		SeriesPath: previewOpts.series,
		Data:       data,
		Watch:      !previewOpts.noWatch,
		Logger:     logger,
	})
}
