package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/guardpost/internal/models"
	"github.com/example/guardpost/internal/ports/primary"
	"github.com/example/guardpost/internal/wire"
)

// AssignCmd returns the assign command
func AssignCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assign",
		Short: "Place a guard on a post, patrol, meal or break",
		Long: `Create a pending task for a guard. The task's planned time is now;
mark actual execution with "guardpost task toggle".`,
	}

	cmd.AddCommand(assignTargetCmd(models.TaskPost, "post [guard] [post]", "Assign a guard to a fixed post"))
	cmd.AddCommand(assignTargetCmd(models.TaskPatrol, "patrol [guard] [patrol]", "Assign a guard to a patrol round"))
	cmd.AddCommand(assignFixedCmd(models.TaskMeal, "meal [guard]", "Send a guard to a meal"))
	cmd.AddCommand(assignFixedCmd(models.TaskBreak, "break [guard]", "Send a guard on a break"))
	cmd.AddCommand(assignTargetsCmd())

	return cmd
}

func assignTargetCmd(kind models.TaskKind, use, short string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			act, err := wire.LedgerService().Assign(ctx, primary.AssignRequest{
				Kind:   kind,
				Guard:  args[0],
				Target: args[1],
			})
			if err != nil {
				return fmt.Errorf("failed to assign: %w", err)
			}

			fmt.Printf("✓ %s assigned to %s (task %s)\n", act.Guard, act.Label(), act.ID)
			return nil
		},
	}
}

func assignFixedCmd(kind models.TaskKind, use, short string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			act, err := wire.LedgerService().Assign(ctx, primary.AssignRequest{
				Kind:  kind,
				Guard: args[0],
			})
			if err != nil {
				return fmt.Errorf("failed to assign: %w", err)
			}

			fmt.Printf("✓ %s sent to %s (task %s)\n", act.Guard, act.Kind, act.ID)
			return nil
		},
	}
}

func assignTargetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "targets",
		Short: "List the posts and patrols of the board",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("Posts:")
			for _, p := range models.DefaultPosts {
				fmt.Printf("  %s\n", p)
			}
			fmt.Println()
			fmt.Println("Patrols:")
			for _, p := range models.DefaultPatrols {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}
}
