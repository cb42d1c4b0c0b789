package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/example/rounds/internal/wire"
)

// ItemCmd returns the checklist item command
func ItemCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "item",
		Short: "Manage the ordered checklist",
		Long:  "List, add, rename, delete and reorder the checklist items inspected on every route.",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List checklist items in order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *wire.App) error {
				return a.CatalogAdapter(cmd.OutOrStdout()).ListItems(ctx)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add <title>",
		Short: "Append a checklist item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *wire.App) error {
				if _, err := a.CatalogAdapter(cmd.OutOrStdout()).AddItem(ctx, args[0]); err != nil {
					return cmdError("add checklist item", err)
				}
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "edit <id> <title>",
		Short: "Rename a checklist item",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withApp(cmd, func(ctx context.Context, a *wire.App) error {
				if err := a.CatalogAdapter(cmd.OutOrStdout()).EditItem(ctx, id, args[1]); err != nil {
					return cmdError("edit checklist item", err)
				}
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a checklist item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withApp(cmd, func(ctx context.Context, a *wire.App) error {
				if err := a.CatalogAdapter(cmd.OutOrStdout()).DeleteItem(ctx, id); err != nil {
					return cmdError("delete checklist item", err)
				}
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "move <source-id> <target-id>",
		Short: "Move an item next to another (after it when moving down, before it when moving up)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *wire.App) error {
				if _, err := a.CatalogAdapter(cmd.OutOrStdout()).MoveItem(ctx, args[0], args[1]); err != nil {
					return cmdError("move checklist item", err)
				}
				return nil
			})
		},
	})

	return cmd
}
