package cli

import (
	"github.com/alexanderramin/taskora/internal/cli/formatter"
	"github.com/alexanderramin/taskora/internal/domain"
	"github.com/spf13/cobra"
)

func newPricingCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "pricing",
		Short: "Show the pricing tiers",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Pricing.Tiers(cmd.Context())
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(cmd, resp)
			}
			printLine(cmd, formatter.FormatTiers(resp.Tiers))
			return nil
		},
	}

	addJSONFlag(cmd.Flags(), &asJSON)
	return cmd
}

func newPlanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show or change your plan",
	}
	cmd.AddCommand(newPlanShowCmd(app), newPlanSetCmd(app))
	return cmd
}

func newPlanShowCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show your current plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := app.Pricing.CurrentPlan(cmd.Context(), app.Config.UserID)
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(cmd, plan)
			}
			printLine(cmd, formatter.FormatPlan(plan))
			return nil
		},
	}

	addJSONFlag(cmd.Flags(), &asJSON)
	return cmd
}

func newPlanSetCmd(app *App) *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "set <price-id>",
		Short: "Record a subscription to a catalog price",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := app.Pricing.SetPlan(cmd.Context(), app.Config.UserID, args[0], domain.SubscriptionStatus(status))
			if err != nil {
				return err
			}
			printLine(cmd, formatter.FormatPlan(plan))
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", string(domain.SubscriptionActive), "Subscription status")
	return cmd
}
