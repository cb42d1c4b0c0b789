package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/example/rounds/internal/wire"
)

// DraftCmd returns the draft command for raw access to autosaved fields.
func DraftCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "draft",
		Short: "Inspect or edit raw autosaved session fields",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get <key>",
		Short: "Print a draft value (empty when unset)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *wire.App) error {
				a.RouteAdapter(cmd.OutOrStdout()).GetDraft(ctx, args[0])
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Write a draft value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *wire.App) error {
				a.RouteAdapter(cmd.OutOrStdout()).SetDraft(ctx, args[0], args[1])
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List every draft value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *wire.App) error {
				a.RouteAdapter(cmd.OutOrStdout()).ListDrafts(ctx)
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Discard every draft value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *wire.App) error {
				a.RouteAdapter(cmd.OutOrStdout()).ClearDrafts(ctx)
				return nil
			})
		},
	})

	return cmd
}
