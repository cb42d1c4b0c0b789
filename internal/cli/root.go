// Package cli contains the cobra command tree of the rounds binary.
package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/example/rounds/internal/config"
	"github.com/example/rounds/internal/errs"
	"github.com/example/rounds/internal/version"
	"github.com/example/rounds/internal/wire"
)

const homeFlagName = "home"

// NewRootCmd returns the rounds command with every subcommand attached.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "rounds",
		Short:   "Inspection route sessions, checklists and reports",
		Version: version.String(),
		Long: `rounds keeps the catalog of leaders, machines, shifts, routes and checklist items,
autosaves the current route session and turns it into PDF or XLSX reports.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String(homeFlagName, "", "rounds home directory (default $ROUNDS_HOME or ~/.rounds)")

	rootCmd.AddCommand(InitCmd())
	rootCmd.AddCommand(OptionCmd())
	rootCmd.AddCommand(ItemCmd())
	rootCmd.AddCommand(RouteCmd())
	rootCmd.AddCommand(DraftCmd())
	rootCmd.AddCommand(ReportCmd())
	rootCmd.AddCommand(HistoryCmd())
	rootCmd.AddCommand(ImportCmd())

	return rootCmd
}

// resolveHome returns the home directory selected by the --home flag of the running command.
func resolveHome(cmd *cobra.Command) (string, error) {
	var override string
	if f := cmd.Flag(homeFlagName); f != nil {
		override = f.Value.String()
	}
	return config.ResolveHome(override)
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	home, err := resolveHome(cmd)
	if err != nil {
		return nil, err
	}
	return config.LoadConfig(home)
}

// withApp wires the application for one command and closes it afterwards.
func withApp(cmd *cobra.Command, fn func(ctx context.Context, a *wire.App) error) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	a, err := wire.New(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer a.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return fn(ctx, a)
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errs.Validation("invalid id %q", s)
	}
	return id, nil
}

func cmdError(action string, err error) error {
	return fmt.Errorf("failed to %s: %w", action, err)
}
