package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/example/rounds/internal/wire"
)

// ReportCmd returns the report command
func ReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate route reports",
	}

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Render the current session and record it in history",
		Long: `Render the current session to <dd_mm_yyyy>_<shift>_<leader>.<format> in the output
directory and append an entry to the report history once the file exists.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			outDir, _ := cmd.Flags().GetString("out")
			photos, _ := cmd.Flags().GetStringArray("photo")

			return withApp(cmd, func(ctx context.Context, a *wire.App) error {
				_, err := a.ReportAdapter(cmd.OutOrStdout()).Generate(ctx, format, outDir, photos)
				return err
			})
		},
	}
	generateCmd.Flags().StringP("format", "f", "", "report format: pdf or xlsx (default from config)")
	generateCmd.Flags().StringP("out", "o", "", "output directory (default from config)")
	generateCmd.Flags().StringArray("photo", nil, `attach a photo to an item as "<item title>=<path>" (repeatable)`)
	cmd.AddCommand(generateCmd)

	return cmd
}

// HistoryCmd returns the history command
func HistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show generated reports",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List generated reports, oldest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *wire.App) error {
				_, err := a.ReportAdapter(cmd.OutOrStdout()).History(ctx)
				return err
			})
		},
	})

	return cmd
}
