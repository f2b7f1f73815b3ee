package cli

import (
	"github.com/alexanderramin/taskora/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newBoardCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "board",
		Short: "Show your tasks on the Eisenhower matrix",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Analytics.GetBoard(cmd.Context(), app.Config.UserID)
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(cmd, resp)
			}
			printLine(cmd, formatter.FormatBoard(resp.Stats, resp.Quadrants))
			return nil
		},
	}

	addJSONFlag(cmd.Flags(), &asJSON)
	return cmd
}
