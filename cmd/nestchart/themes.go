package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/nestchart/internal/theme"
)

var themesOpts struct {
	base bool
}

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List themes and their selectors",
	Long: `List the registered themes in output order with the selector prefix
that scopes their rules. Extra themes are declared in the config file:

  [[themes]]
  name = "contrast"
  selector = ".high-contrast"

With --base, print the bundled base stylesheet used by HTML output.`,
	RunE: runThemes,
}

func init() {
	rootCmd.AddCommand(themesCmd)

	themesCmd.Flags().BoolVar(&themesOpts.base, "base", false,
		"Print the bundled base stylesheet")
}

func runThemes(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if themesOpts.base {
		_, err := fmt.Fprintln(out, theme.BaseStylesheet())
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSELECTOR")
	for _, t := range registry.Themes() {
		selector := t.Selector
		if selector == "" {
			selector = "(unscoped)"
		}
		fmt.Fprintf(w, "%s\t%s\n", t.Name, selector)
	}
	return w.Flush()
}
