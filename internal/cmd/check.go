package cmd

import (
	"fmt"

	"github.com/salmonumbrella/datemath-cli/internal/datemath"
	"github.com/salmonumbrella/datemath-cli/internal/outfmt"
	"github.com/spf13/cobra"
)

type checkResult struct {
	Expression string `json:"expression"`
	Math       bool   `json:"math"`
}

func newCheckCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <expression>...",
		Short: "Check whether inputs are date math expressions",
		Long: "Report for each input whether it qualifies for date math parsing:\n" +
			"it starts with 'now' or contains the '||' separator. Plain dates are\n" +
			"reported as such. Exits non-zero when any input is not an expression.",
		Args: cobra.MinimumNArgs(1),
		RunE: runE(app, func(cmd *cobra.Command, args []string, app *App) error {
			results := make([]checkResult, 0, len(args))
			plain := 0
			for _, expr := range args {
				math := datemath.IsMathExpression(expr)
				if !math {
					plain++
				}
				results = append(results, checkResult{Expression: expr, Math: math})
			}

			if app.IsJSON(cmd.Context()) {
				if err := app.PrintJSON(cmd, results); err != nil {
					return err
				}
			} else {
				w := outfmt.NewTabWriterTo(cmd.OutOrStdout())
				for _, r := range results {
					verdict := "math"
					if !r.Math {
						verdict = "plain"
					}
					fmt.Fprintf(w, "%s\t%s\n", outfmt.SanitizeTab(r.Expression), verdict)
				}
				if err := w.Flush(); err != nil {
					return err
				}
			}

			if plain > 0 {
				return fmt.Errorf("%d of %d inputs are not date math expressions", plain, len(args))
			}
			return nil
		}),
	}
	return cmd
}
