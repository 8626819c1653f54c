package cmd

import (
	"fmt"
	"time"

	"github.com/salmonumbrella/datemath-cli/internal/datemath"
	cerrors "github.com/salmonumbrella/datemath-cli/internal/errors"
	"github.com/salmonumbrella/datemath-cli/internal/outfmt"
	"github.com/salmonumbrella/datemath-cli/internal/validation"
	"github.com/spf13/cobra"
)

type rangeResult struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Duration string `json:"duration"`
}

func newRangeCmd(app *App) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "range <from> <to>",
		Short: "Resolve a dashboard-style time range",
		Long: "Resolve two expressions as the bounds of a time range. Rounds in the\n" +
			"from expression snap down to the start of the unit and rounds in the\n" +
			"to expression snap up to its end, so 'now-7d/d now/d' covers the last\n" +
			"seven full days including all of today.",
		Args: cobra.ExactArgs(2),
		RunE: runE(app, func(cmd *cobra.Command, args []string, app *App) error {
			layout, err := validation.ParseOutputFormat(format)
			if err != nil {
				return err
			}
			downOpts, err := app.EvalOptions(false)
			if err != nil {
				return err
			}
			upOpts := downOpts
			upOpts.RoundUp = true

			// Both bounds share one clock read so "now" means the same
			// instant on each side.
			now := time.Now()

			from, err := datemath.ResolveAt(args[0], now, downOpts)
			if err != nil {
				return cerrors.WithContext(err, fmt.Sprintf("while resolving %q", args[0]))
			}
			to, err := datemath.ResolveAt(args[1], now, upOpts)
			if err != nil {
				return cerrors.WithContext(err, fmt.Sprintf("while resolving %q", args[1]))
			}
			if to.Before(from) {
				return fmt.Errorf("range end %s is before range start %s",
					validation.FormatTimestamp(to, layout), validation.FormatTimestamp(from, layout))
			}

			result := rangeResult{
				From:     validation.FormatTimestamp(from, layout),
				To:       validation.FormatTimestamp(to, layout),
				Duration: to.Sub(from).Round(time.Second).String(),
			}

			if app.IsJSON(cmd.Context()) {
				return app.PrintJSON(cmd, result)
			}

			w := outfmt.NewTabWriterTo(cmd.OutOrStdout())
			fmt.Fprintf(w, "From:\t%s\n", result.From)
			fmt.Fprintf(w, "To:\t%s\n", result.To)
			fmt.Fprintf(w, "Duration:\t%s\n", result.Duration)
			return w.Flush()
		}),
	}

	cmd.Flags().StringVar(&format, "format", envOr("DATEMATH_FORMAT", "rfc3339"), "Timestamp output: rfc3339|iso|unix|unixms")
	return cmd
}
