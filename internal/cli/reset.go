package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/guardpost/internal/wire"
)

// ResetCmd returns the reset command
func ResetCmd() *cobra.Command {
	var (
		evening bool
		yes     bool
	)

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset the shift",
		Long: `Reset the shift board.

A full reset clears the roster and all four task collections. An evening
reset (--evening) keeps only supplemental-duty guards and their tasks.
Settings are never touched.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			prompt := "This clears the whole shift. Continue? [y/N]: "
			if evening {
				prompt = "This prunes all non-supplemental guards and their tasks. Continue? [y/N]: "
			}
			if !yes && !confirm(prompt) {
				fmt.Println("Aborted.")
				return nil
			}

			if evening {
				result, err := wire.RosterService().EveningReset(ctx)
				if err != nil {
					return fmt.Errorf("failed to reset: %w", err)
				}
				fmt.Printf("✓ Evening reset: kept %d guards, pruned %d guards and %d tasks\n",
					result.GuardsKept, result.GuardsPruned, result.TasksPruned)
				return nil
			}

			if err := wire.RosterService().ResetAll(ctx); err != nil {
				return fmt.Errorf("failed to reset: %w", err)
			}
			fmt.Println("✓ Shift cleared")
			return nil
		},
	}

	cmd.Flags().BoolVar(&evening, "evening", false, "keep supplemental-duty guards and their tasks")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip confirmation")

	return cmd
}

func confirm(prompt string) bool {
	fmt.Print(prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
