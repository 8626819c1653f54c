package cmd

import (
	"context"

	"github.com/salmonumbrella/datemath-cli/internal/datemath"
	cerrors "github.com/salmonumbrella/datemath-cli/internal/errors"
	"github.com/salmonumbrella/datemath-cli/internal/outfmt"
	"github.com/salmonumbrella/datemath-cli/internal/ui"
	"github.com/salmonumbrella/datemath-cli/internal/validation"
	"github.com/spf13/cobra"
)

type appKey struct{}

type App struct {
	Flags  *rootFlags
	UI     *ui.UI
	Logger Logger
}

// Logger is the minimal interface we need from slog.Logger.
type Logger interface {
	Debug(msg string, args ...any)
}

func NewApp() *App {
	flags := rootFlags{
		Color:       envOr("DATEMATH_COLOR", "auto"),
		Output:      envOr("DATEMATH_OUTPUT", "text"),
		Timezone:    envOr("DATEMATH_TZ", ""),
		FiscalStart: envOr("DATEMATH_FISCAL_START", ""),
	}
	return &App{Flags: &flags}
}

func WithApp(ctx context.Context, app *App) context.Context {
	return context.WithValue(ctx, appKey{}, app)
}

func AppFromContext(ctx context.Context) *App {
	if app, ok := ctx.Value(appKey{}).(*App); ok {
		return app
	}
	return nil
}

// runE wraps a cobra RunE to inject the App and normalize errors.
func runE(app *App, fn func(cmd *cobra.Command, args []string, app *App) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if app == nil {
			app = AppFromContext(cmd.Context())
		}
		if app == nil {
			app = &App{Flags: &rootFlags{}}
		}
		return mapCommandError(fn(cmd, args, app))
	}
}

func (a *App) IsJSON(ctx context.Context) bool {
	mode, ok := ctx.Value(outputModeKey).(outfmt.Mode)
	return ok && mode == outfmt.JSON
}

func (a *App) Query(ctx context.Context) string {
	query, _ := ctx.Value(queryKey).(string)
	return query
}

func (a *App) PrintJSON(cmd *cobra.Command, v any) error {
	return outfmt.WriteJSONFiltered(cmd.OutOrStdout(), v, a.Query(cmd.Context()))
}

// EvalOptions builds the evaluator options from the persistent flags.
func (a *App) EvalOptions(roundUp bool) (datemath.Options, error) {
	loc, err := validation.ParseLocation(a.Flags.Timezone)
	if err != nil {
		return datemath.Options{}, Suggest(err, cerrors.SuggestionTimezone)
	}

	month, err := validation.ParseFiscalStartMonth(a.Flags.FiscalStart)
	if err != nil {
		return datemath.Options{}, Suggest(err, cerrors.SuggestionFiscalStart)
	}

	return datemath.Options{
		RoundUp:              roundUp,
		Location:             loc,
		FiscalYearStartMonth: month,
	}, nil
}

// Suggest wraps an error with a user-facing suggestion.
func Suggest(err error, suggestion string) error {
	return cerrors.WithSuggestion(err, suggestion)
}
