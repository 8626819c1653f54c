package cmd

import (
	"fmt"

	"github.com/salmonumbrella/datemath-cli/internal/datemath"
	"github.com/salmonumbrella/datemath-cli/internal/outfmt"
	"github.com/spf13/cobra"
)

func newUnitsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "units",
		Short: "List the supported unit codes",
		Args:  cobra.NoArgs,
		RunE: runE(app, func(cmd *cobra.Command, _ []string, app *App) error {
			units := datemath.SupportedUnits()

			if app.IsJSON(cmd.Context()) {
				return app.PrintJSON(cmd, units)
			}

			w := outfmt.NewTabWriterTo(cmd.OutOrStdout())
			fmt.Fprintln(w, "CODE\tUNIT")
			for _, u := range units {
				fmt.Fprintf(w, "%s\t%s\n", u.Code, u.Name)
			}
			return w.Flush()
		}),
	}
	return cmd
}
