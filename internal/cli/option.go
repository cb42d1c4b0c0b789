package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/example/rounds/internal/wire"
)

// OptionCmd returns the option command
func OptionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "option",
		Short: "Manage leaders, machines, shifts and routes",
		Long:  "List, add, rename and delete the options offered when identifying a route session.",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list [category]",
		Short: "List options, optionally for one category",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			category := ""
			if len(args) == 1 {
				category = args[0]
			}
			return withApp(cmd, func(ctx context.Context, a *wire.App) error {
				return a.CatalogAdapter(cmd.OutOrStdout()).ListOptions(ctx, category)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add <category> <name>",
		Short: "Add an option (category: leader, machine, shift, route)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *wire.App) error {
				if _, err := a.CatalogAdapter(cmd.OutOrStdout()).AddOption(ctx, args[0], args[1]); err != nil {
					return cmdError("add option", err)
				}
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "edit <id> <name>",
		Short: "Rename an option",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withApp(cmd, func(ctx context.Context, a *wire.App) error {
				if err := a.CatalogAdapter(cmd.OutOrStdout()).EditOption(ctx, id, args[1]); err != nil {
					return cmdError("edit option", err)
				}
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an option",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withApp(cmd, func(ctx context.Context, a *wire.App) error {
				if err := a.CatalogAdapter(cmd.OutOrStdout()).DeleteOption(ctx, id); err != nil {
					return cmdError("delete option", err)
				}
				return nil
			})
		},
	})

	return cmd
}
