package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/taskora/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newAchievementsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "achievements",
		Aliases: []string{"ach"},
		Short:   "Browse and award achievements",
	}
	cmd.AddCommand(
		newAchievementsListCmd(app),
		newAchievementsAwardCmd(app),
		newAchievementsSeedCmd(app),
	)
	return cmd
}

func newAchievementsListCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List achievements and your progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Achievements.Progress(cmd.Context(), app.Config.UserID)
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(cmd, p)
			}
			printLine(cmd, formatter.FormatAchievements(p))
			return nil
		},
	}

	addJSONFlag(cmd.Flags(), &asJSON)
	return cmd
}

func newAchievementsAwardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "award <achievement-id|title>",
		Short: "Record that you earned an achievement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Achievements.Progress(cmd.Context(), app.Config.UserID)
			if err != nil {
				return err
			}

			var id, title string
			for _, a := range p.Items {
				if a.ID == args[0] || strings.EqualFold(a.Title, args[0]) || strings.HasPrefix(a.ID, args[0]) {
					if id != "" && id != a.ID {
						return fmt.Errorf("achievement %q is ambiguous", args[0])
					}
					id, title = a.ID, a.Title
				}
			}
			if id == "" {
				return fmt.Errorf("achievement not found: %q", args[0])
			}

			if err := app.Achievements.Award(cmd.Context(), app.Config.UserID, id); err != nil {
				return err
			}
			printLine(cmd, "Unlocked "+formatter.Bold(title))
			return nil
		},
	}
}

func newAchievementsSeedCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Install the built-in achievement catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := app.Achievements.Seed(cmd.Context())
			if err != nil {
				return err
			}
			printLine(cmd, fmt.Sprintf("Seeded %d achievements", n))
			return nil
		},
	}
}
