package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/example/rounds/internal/config"
	"github.com/example/rounds/internal/wire"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the rounds home directory and database",
		Long: `Write config.yaml into the rounds home directory (default ~/.rounds) and create
the database with the required schema. An existing database is migrated in place,
including one written by the legacy desktop application.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			home, err := resolveHome(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			configPath := filepath.Join(home, "config.yaml")
			if _, err := os.Stat(configPath); err == nil && !force {
				fmt.Fprintf(out, "Config already exists at %s (use --force to overwrite)\n", configPath)
			} else {
				if err := config.SaveConfig(home, config.Default(home)); err != nil {
					return err
				}
				fmt.Fprintf(out, "✓ Config written to %s\n", configPath)
			}

			return withApp(cmd, func(ctx context.Context, a *wire.App) error {
				fmt.Fprintf(out, "✓ Database ready at %s\n", a.Config.DatabasePath())
				fmt.Fprintln(out)
				fmt.Fprintln(out, "Next steps:")
				fmt.Fprintln(out, `  rounds option add leader "Ana"`)
				fmt.Fprintln(out, `  rounds item add "Check oil"`)
				fmt.Fprintln(out, "  rounds route new")
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config.yaml")
	return cmd
}
