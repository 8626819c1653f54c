package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/salmonumbrella/datemath-cli/internal/datemath"
	cerrors "github.com/salmonumbrella/datemath-cli/internal/errors"
	"github.com/salmonumbrella/datemath-cli/internal/logging"
	"github.com/salmonumbrella/datemath-cli/internal/outfmt"
	"github.com/salmonumbrella/datemath-cli/internal/validation"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

type resolveResult struct {
	Expression string `json:"expression"`
	Resolved   string `json:"resolved"`
	Unix       int64  `json:"unix"`
}

func newResolveCmd(app *App) *cobra.Command {
	var (
		roundUp bool
		format  string
	)

	cmd := &cobra.Command{
		Use:     "resolve <expression>... | -",
		Aliases: []string{"eval"},
		Short:   "Resolve date math expressions to concrete timestamps",
		Long: strings.TrimSpace(`
Resolve one or more date math expressions against the current time.

An expression is an anchor plus optional math. The anchor is either the
keyword "now" or an ISO 8601 date/time followed by "||". The math is a
chain of steps applied left to right: +<n><unit> and -<n><unit> shift,
/<unit> rounds to the start of the unit (--round-up rounds to the end).
Prefix a round's year or quarter unit with "f" for fiscal boundaries,
offset by --fiscal-start.

Pass "-" as the only argument to read expressions line by line from
standard input.
`),
		Args: cobra.MinimumNArgs(1),
		RunE: runE(app, func(cmd *cobra.Command, args []string, app *App) error {
			layout, err := validation.ParseOutputFormat(format)
			if err != nil {
				return err
			}
			opts, err := app.EvalOptions(roundUp)
			if err != nil {
				return err
			}

			if len(args) == 1 && args[0] == "-" {
				return resolveStdin(cmd, app, opts, layout)
			}

			logging.FromContext(cmd.Context()).Debug("resolving expressions",
				"count", len(args), "roundUp", roundUp, "location", opts.Location.String())

			results := make([]resolveResult, 0, len(args))
			for _, expr := range args {
				t, err := datemath.Resolve(expr, opts)
				if err != nil {
					return cerrors.WithContext(err, fmt.Sprintf("while resolving %q", expr))
				}
				results = append(results, newResolveResult(expr, t, layout))
			}
			return printResolveResults(cmd, app, results)
		}),
	}

	cmd.Flags().BoolVar(&roundUp, "round-up", false, "Round '/' operations to the end of the unit instead of the start")
	cmd.Flags().StringVar(&format, "format", envOr("DATEMATH_FORMAT", "rfc3339"), "Timestamp output: rfc3339|iso|unix|unixms")
	return cmd
}

func newResolveResult(expr string, t time.Time, layout string) resolveResult {
	return resolveResult{
		Expression: expr,
		Resolved:   validation.FormatTimestamp(t, layout),
		Unix:       t.Unix(),
	}
}

func printResolveResults(cmd *cobra.Command, app *App, results []resolveResult) error {
	if app.IsJSON(cmd.Context()) {
		return app.PrintJSON(cmd, results)
	}

	if len(results) == 1 {
		fmt.Fprintln(cmd.OutOrStdout(), results[0].Resolved)
		return nil
	}

	w := outfmt.NewTabWriterTo(cmd.OutOrStdout())
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%s\n", outfmt.SanitizeTab(r.Expression), r.Resolved)
	}
	return w.Flush()
}

// resolveStdin evaluates one expression per input line. When stdin is
// a terminal this doubles as a small interactive loop: bad expressions
// are reported and the loop continues. Piped input fails fast instead,
// so scripts never consume partially wrong output.
func resolveStdin(cmd *cobra.Command, app *App, opts datemath.Options, layout string) error {
	interactive := term.IsTerminal(int(os.Stdin.Fd()))

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		if interactive {
			app.UI.Prompt("datemath> ")
		}
		if !scanner.Scan() {
			break
		}

		expr := strings.TrimSpace(scanner.Text())
		if expr == "" {
			continue
		}
		if interactive && (expr == "exit" || expr == "quit") {
			break
		}

		t, err := datemath.Resolve(expr, opts)
		if err != nil {
			err = mapCommandError(err)
			if !interactive {
				return cerrors.WithContext(err, fmt.Sprintf("while resolving %q", expr))
			}
			app.UI.Error(err.Error())
			if cerrors.ContainsSuggestion(err) {
				app.UI.Info(cerrors.GetSuggestion(err))
			}
			continue
		}

		result := newResolveResult(expr, t, layout)
		if app.IsJSON(cmd.Context()) {
			if err := app.PrintJSON(cmd, result); err != nil {
				return err
			}
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), result.Resolved)
		}
	}
	return scanner.Err()
}
