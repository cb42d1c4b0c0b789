package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/example/rounds/internal/wire"
)

// RouteCmd returns the route session command
func RouteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "route",
		Short: "Fill in the current route session",
		Long: `Start a route, pick its leader, machine, shift and route, and record one observation
per checklist item. Every change is saved immediately and survives restarts.`,
	}

	newCmd := &cobra.Command{
		Use:   "new",
		Short: "Discard the current session and start a new one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			date, _ := cmd.Flags().GetString("date")
			return withApp(cmd, func(ctx context.Context, a *wire.App) error {
				return a.RouteAdapter(cmd.OutOrStdout()).New(ctx, date)
			})
		},
	}
	newCmd.Flags().String("date", "", "route date as dd/mm/yyyy (default today)")
	cmd.AddCommand(newCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "set <field> <value>",
		Short: "Set date, leader, machine, shift or route",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *wire.App) error {
				return a.RouteAdapter(cmd.OutOrStdout()).SetField(ctx, args[0], args[1])
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "observe <item-title> <text>",
		Short: "Record the observation for a checklist item",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *wire.App) error {
				return a.RouteAdapter(cmd.OutOrStdout()).Observe(ctx, args[0], args[1])
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the session as it will be reported",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *wire.App) error {
				_, err := a.RouteAdapter(cmd.OutOrStdout()).Show(ctx)
				return err
			})
		},
	})

	return cmd
}
