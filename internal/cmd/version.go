package cmd

import (
	"fmt"

	"github.com/salmonumbrella/datemath-cli/internal/update"
	"github.com/spf13/cobra"
)

type versionResult struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	Latest  string `json:"latest,omitempty"`
	Update  string `json:"updateUrl,omitempty"`
}

func newVersionCmd(app *App) *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: runE(app, func(cmd *cobra.Command, _ []string, app *App) error {
			result := versionResult{Version: Version, Commit: Commit, Date: Date}

			if check {
				if r := update.CheckForUpdate(cmd.Context(), Version); r != nil {
					result.Latest = r.LatestVersion
					if r.UpdateAvailable {
						result.Update = r.UpdateURL
					}
				}
			}

			if app.IsJSON(cmd.Context()) {
				return app.PrintJSON(cmd, result)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "datemath %s (commit %s, built %s)\n", result.Version, result.Commit, result.Date)
			if result.Update != "" {
				app.UI.Warning(fmt.Sprintf("Update available: %s -> %s (%s)", result.Version, result.Latest, result.Update))
			} else if check && result.Latest != "" {
				app.UI.Info("You are on the latest version")
			}
			return nil
		}),
	}

	cmd.Flags().BoolVar(&check, "check", false, "Check GitHub for a newer release (best effort)")
	return cmd
}
