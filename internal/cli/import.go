package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/example/rounds/internal/core/catalog"
	"github.com/example/rounds/internal/db"
	"github.com/example/rounds/internal/wire"
)

// ImportCmd returns the import command for databases written by the legacy desktop app.
func ImportCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import <legacy-db>",
		Short: "Seed a new rounds database from a legacy desktop database",
		Long: `Copy the options, checklist, history and drafts of a database written by the legacy
desktop app into a new rounds database. The legacy file is left untouched, and an
existing rounds database is never overwritten.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			tables, err := db.InspectLegacy(args[0])
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "LEGACY TABLE\tTARGET\tROWS")
			fmt.Fprintln(w, "------------\t------\t----")
			for _, t := range tables {
				fmt.Fprintf(w, "%s\t%s\t%d\n", t.Name, t.Target, t.Rows)
			}
			w.Flush()

			if dryRun {
				fmt.Fprintln(out, "\n=== DRY RUN - No changes made ===")
				return nil
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			conn, err := db.ImportLegacy(args[0], cfg.DatabasePath())
			if err != nil {
				return cmdError("import legacy database", err)
			}
			conn.Close()

			return withApp(cmd, func(ctx context.Context, a *wire.App) error {
				fmt.Fprintf(out, "\n✓ Imported into %s\n", a.Config.DatabasePath())
				for _, c := range catalog.Categories() {
					options, err := a.Catalog.ListOptions(ctx, string(c))
					if err != nil {
						return err
					}
					fmt.Fprintf(out, "  %s options: %d\n", c.Label(), len(options))
				}
				items, err := a.Catalog.ListChecklistItems(ctx)
				if err != nil {
					return err
				}
				entries, err := a.History.List(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "  Checklist items: %d\n", len(items))
				fmt.Fprintf(out, "  History entries: %d\n", len(entries))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "preview the import without writing anything")
	return cmd
}
