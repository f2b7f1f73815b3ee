package cli

import (
	"github.com/alexanderramin/taskora/internal/cli/formatter"
	"github.com/alexanderramin/taskora/internal/contract"
	"github.com/spf13/cobra"
)

func newAnalyticsCmd(app *App) *cobra.Command {
	var tribeID string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "analytics",
		Short: "Summarize completion and productivity",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Analytics.GetAnalytics(cmd.Context(), contract.AnalyticsRequest{
				UserID:  app.Config.UserID,
				TribeID: tribeID,
			})
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(cmd, resp)
			}
			title := "Analytics"
			if tribeID != "" {
				title = "Tribe analytics"
			}
			printLine(cmd, formatter.FormatSummary(title, resp.Summary))
			return nil
		},
	}

	cmd.Flags().StringVar(&tribeID, "tribe", "", "Summarize a tribe's shared tasks")
	addJSONFlag(cmd.Flags(), &asJSON)
	return cmd
}
