package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/guardpost/internal/models"
	"github.com/example/guardpost/internal/wire"
)

// TaskCmd returns the task command
func TaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Mark, correct and remove ledger tasks",
	}

	cmd.AddCommand(taskToggleCmd())
	cmd.AddCommand(taskSetTimeCmd())
	cmd.AddCommand(taskRemoveCmd())

	return cmd
}

func parseKindArg(s string) (models.TaskKind, error) {
	kind, ok := models.ParseTaskKind(s)
	if !ok {
		return "", fmt.Errorf("unknown task kind %q (post, patrol, meal or break)", s)
	}
	return kind, nil
}

func taskToggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle [kind] [id]",
		Short: "Flip a task's execution mark",
		Long: `Flip a task's execution mark: a pending task starts now, an executing
task reverts to pending. Toggling twice restores the original state.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			kind, err := parseKindArg(args[0])
			if err != nil {
				return err
			}

			act, err := wire.LedgerService().ToggleActual(ctx, kind, args[1])
			if err != nil {
				return fmt.Errorf("failed to toggle task: %w", err)
			}

			if act.Executed() {
				fmt.Printf("✓ %s started %s at %s\n", act.Guard, act.Label(), clock(act.Actual))
			} else {
				fmt.Printf("✓ %s %s back to pending\n", act.Guard, act.Label())
			}
			return nil
		},
	}
}

func taskSetTimeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-time [kind] [id] [HH:MM]",
		Short: "Correct an executing task's start time",
		Long: `Correct the recorded execution time of a task that is already
executing. Pending tasks are rejected: toggle them first.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			kind, err := parseKindArg(args[0])
			if err != nil {
				return err
			}

			at, err := parseClock(args[2], time.Now())
			if err != nil {
				return fmt.Errorf("invalid time %q: expected HH:MM", args[2])
			}

			act, err := wire.LedgerService().SetActualTime(ctx, kind, args[1], at)
			if err != nil {
				return fmt.Errorf("failed to set time: %w", err)
			}

			fmt.Printf("✓ %s %s corrected to %s\n", act.Guard, act.Label(), clock(act.Actual))
			return nil
		},
	}
}

func taskRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove [kind] [id]",
		Short: "Remove a task from the ledger",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			kind, err := parseKindArg(args[0])
			if err != nil {
				return err
			}

			if err := wire.LedgerService().Remove(ctx, kind, args[1]); err != nil {
				return fmt.Errorf("failed to remove task: %w", err)
			}

			fmt.Printf("✓ Removed %s task %s\n", kind, args[1])
			return nil
		},
	}
}
