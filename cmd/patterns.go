package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newPatternsCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "patterns",
		Short: "List therapy patterns and session durations with their indices",
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog := app.config.Catalog
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)

			fmt.Fprintln(w, "PATTERN\tID\tNAME\tSCENE")
			for i, pattern := range catalog.Patterns {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", i, pattern.ID, pattern.Name, pattern.Scene)
			}
			fmt.Fprintln(w)
			fmt.Fprintln(w, "DURATION\tLENGTH")
			for i, d := range catalog.Durations {
				fmt.Fprintf(w, "%d\t%s\n", i, d)
			}

			return w.Flush()
		},
	}
}
