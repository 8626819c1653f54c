package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	cerrors "github.com/salmonumbrella/datemath-cli/internal/errors"
	"github.com/salmonumbrella/datemath-cli/internal/logging"
	"github.com/salmonumbrella/datemath-cli/internal/outfmt"
	"github.com/salmonumbrella/datemath-cli/internal/ui"
	"github.com/spf13/cobra"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

type rootFlags struct {
	Color       string
	Output      string
	Query       string
	Timezone    string
	FiscalStart string
	Debug       bool
}

type contextKey string

const (
	outputModeKey contextKey = "outputMode"
	queryKey      contextKey = "query"
)

func Execute(args []string) error {
	app := NewApp()
	root := NewRootCmd(app)
	root.SetArgs(args)

	err := root.Execute()
	if err != nil {
		if app.Flags.Output == "json" {
			payload := map[string]any{
				"error": map[string]any{
					"message": err.Error(),
				},
			}
			if cerrors.ContainsSuggestion(err) {
				payload["error"].(map[string]any)["suggestion"] = cerrors.GetSuggestion(err)
			}
			_ = outfmt.WriteJSON(os.Stderr, payload)
		} else {
			// Print the main error
			fmt.Fprintln(os.Stderr, "Error:", err)

			// Print suggestion if available
			if cerrors.ContainsSuggestion(err) {
				fmt.Fprintln(os.Stderr, "")
				fmt.Fprintln(os.Stderr, "Suggestion:", cerrors.GetSuggestion(err))
			}
		}
	}
	return err
}

func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "datemath",
		Short:         "Resolve relative date math expressions to timestamps",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: false,
		},
		Example: strings.TrimSpace(`
  # Six hours ago
  datemath resolve now-6h

  # Start of yesterday, as a unix timestamp
  datemath resolve now-1d/d --format unix

  # Absolute anchor with math applied after the || separator
  datemath resolve '2021-01-01||+1M/M'

  # Start of the current fiscal quarter (fiscal year begins in April)
  datemath resolve now/fQ --fiscal-start april

  # Dashboard-style time range: from rounds down, to rounds up
  datemath range now-7d/d now/d

  # Is this a date math expression at all?
  datemath check 'now-1h' '2021-01-01'

  # JSON output for scripting
  datemath --output=json resolve now/w | jq .
`),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// UI (must come first)
			u := ui.New(app.Flags.Color)
			ctx := ui.WithUI(cmd.Context(), u)
			app.UI = u

			// Output format
			mode := outfmt.Text
			if app.Flags.Output == "json" {
				mode = outfmt.JSON
			}
			ctx = context.WithValue(ctx, outputModeKey, mode)

			// Query filter
			ctx = context.WithValue(ctx, queryKey, app.Flags.Query)

			// Logging
			logger := logging.Setup(app.Flags.Debug)
			ctx = logging.WithLogger(ctx, logger)
			app.Logger = logger

			ctx = WithApp(ctx, app)
			cmd.SetContext(ctx)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&app.Flags.Color, "color", app.Flags.Color, "Color output: auto|always|never")
	root.PersistentFlags().StringVar(&app.Flags.Output, "output", app.Flags.Output, "Output format: text|json")
	root.PersistentFlags().StringVar(&app.Flags.Query, "query", "", "JQ filter expression for JSON output")
	root.PersistentFlags().StringVar(&app.Flags.Timezone, "tz", app.Flags.Timezone, "Time zone for 'now' and zone-less anchors: IANA name, utc, or local")
	root.PersistentFlags().StringVar(&app.Flags.FiscalStart, "fiscal-start", app.Flags.FiscalStart, "First month of the fiscal year: 1-12 or a month name")
	root.PersistentFlags().BoolVar(&app.Flags.Debug, "debug", false, "Enable debug logging")

	root.AddCommand(newResolveCmd(app))
	root.AddCommand(newCheckCmd(app))
	root.AddCommand(newRangeCmd(app))
	root.AddCommand(newUnitsCmd(app))
	root.AddCommand(newVersionCmd(app))

	return root
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
