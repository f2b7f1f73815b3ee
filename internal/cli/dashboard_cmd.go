package cli

import (
	"github.com/alexanderramin/taskora/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newDashboardCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show plan, task and achievement overview",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Dashboard.Dashboard(cmd.Context(), app.Config.UserID)
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(cmd, resp)
			}
			printLine(cmd, formatter.FormatDashboard(resp))
			return nil
		},
	}

	addJSONFlag(cmd.Flags(), &asJSON)
	return cmd
}
