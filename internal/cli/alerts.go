package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/guardpost/internal/wire"
)

// AlertsCmd returns the alerts command
func AlertsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "alerts",
		Short: "Show the live alert list",
		Long: `Recompute and show the guards whose latest activity has been running
past its threshold. The list is live and never deduplicated.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			alerts, err := wire.AlertService().CurrentAlerts(ctx)
			if err != nil {
				return fmt.Errorf("failed to compute alerts: %w", err)
			}

			if len(alerts) == 0 {
				fmt.Println("No alerts.")
				return nil
			}

			for _, a := range alerts {
				fmt.Printf("%s %s on %s for %d min\n",
					color.New(color.FgRed, color.Bold).Sprint("!"),
					a.Guard, a.Label, a.Duration)
			}
			return nil
		},
	}
}

// WatchCmd returns the watch command
func WatchCmd() *cobra.Command {
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Run the alert monitor until interrupted",
		Long: `Poll the board on a fixed cadence and announce guards whose latest
activity crossed its threshold. Each alert is announced once per
5-minute bucket; a condition that clears and recurs announces again.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			monitor := wire.Monitor()
			if interval > 0 {
				monitor.Interval = interval
			}

			fmt.Printf("Watching the board every %s. Ctrl-C to stop.\n", monitor.Interval)
			monitor.Run(ctx)
			fmt.Println()
			fmt.Println("Stopped.")
			return nil
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", 0, "polling cadence (default 30s)")

	return cmd
}
