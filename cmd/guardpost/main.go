package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/guardpost/internal/cli"
	"github.com/example/guardpost/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "guardpost",
		Short:   "guardpost - single-shift guard roster board",
		Version: version.String(),
		Long: `guardpost manages one shift's guard roster: assignments to posts,
patrols, meals and breaks, with planned-vs-actual tracking, scoring and
staleness alerts. All state lives in a local database.`,
	}

	// Roster and board
	rootCmd.AddCommand(cli.GuardCmd())
	rootCmd.AddCommand(cli.AssignCmd())
	rootCmd.AddCommand(cli.TaskCmd())
	rootCmd.AddCommand(cli.BoardCmd())
	rootCmd.AddCommand(cli.HistoryCmd())
	rootCmd.AddCommand(cli.ScoreCmd())

	// Alerting
	rootCmd.AddCommand(cli.AlertsCmd())
	rootCmd.AddCommand(cli.WatchCmd())

	// Shift lifecycle
	rootCmd.AddCommand(cli.SettingsCmd())
	rootCmd.AddCommand(cli.ResetCmd())
	rootCmd.AddCommand(cli.ExportCmd())
	rootCmd.AddCommand(cli.ImportCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
