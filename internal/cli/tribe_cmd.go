package cli

import (
	"fmt"

	"github.com/alexanderramin/taskora/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newTribeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tribe",
		Short: "Create and join tribes",
	}

	cmd.AddCommand(
		newTribeCreateCmd(app),
		newTribeListCmd(app),
		newTribeJoinCmd(app),
		newTribeMembersCmd(app),
	)

	return cmd
}

func newTribeCreateCmd(app *App) *cobra.Command {
	var desc string

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a tribe owned by you",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := app.Tribes.Create(cmd.Context(), args[0], desc, app.Config.UserID)
			if err != nil {
				return err
			}
			printLine(cmd, fmt.Sprintf("Created tribe %s (%s)", t.Name, t.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&desc, "desc", "", "Tribe description")
	return cmd
}

func newTribeListCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tribes you belong to",
		RunE: func(cmd *cobra.Command, args []string) error {
			tribes, err := app.Tribes.ListForUser(cmd.Context(), app.Config.UserID)
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(cmd, tribes)
			}
			printLine(cmd, formatter.FormatTribes(tribes, app.Config.UserID))
			return nil
		},
	}

	addJSONFlag(cmd.Flags(), &asJSON)
	return cmd
}

func newTribeJoinCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "join <tribe-id>",
		Short: "Join a tribe as a member",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := app.Tribes.Join(cmd.Context(), args[0], app.Config.UserID)
			if err != nil {
				return err
			}
			printLine(cmd, fmt.Sprintf("Joined tribe %s as %s", m.TribeID, m.Role))
			return nil
		},
	}
}

func newTribeMembersCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "members <tribe-id>",
		Short: "List a tribe's members",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			members, err := app.Tribes.Members(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printLine(cmd, formatter.FormatMembers(members))
			return nil
		},
	}
}
