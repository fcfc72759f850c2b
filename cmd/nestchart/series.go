package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/nestchart/internal/series"
)

var seriesOpts struct {
	to string
}

var seriesCmd = &cobra.Command{
	Use:   "series FILE",
	Short: "Validate a series file and print it normalized",
	Long: `Load and validate a series file, then print it in the requested format
with series in their configured order. Useful for converting between
formats.

Examples:
  nestchart series sleep.yaml --to toml > sleep.toml
  nestchart series sleep.toml`,
	Args: cobra.ExactArgs(1),
	RunE: runSeries,
}

func init() {
	rootCmd.AddCommand(seriesCmd)

	seriesCmd.Flags().StringVar(&seriesOpts.to, "to", string(series.FormatTOML),
		"Output format (toml, yaml)")
}

func runSeries(cmd *cobra.Command, args []string) error {
	s, err := loadSeries(args[0])
	if err != nil {
		return err
	}

	data, err := s.Marshal(series.Format(seriesOpts.to))
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), string(data))
	return err
}
