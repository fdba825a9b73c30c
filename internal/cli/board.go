package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/guardpost/internal/models"
	"github.com/example/guardpost/internal/ports/primary"
	"github.com/example/guardpost/internal/wire"
)

// BoardCmd returns the board command
func BoardCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "board",
		Short: "Show the shift board",
		Long: `Show the posts and patrols board. Executing tasks show their actual
start time; a guard's live (latest) task is marked, superseded ones dim.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			board, err := wire.LedgerService().Board(ctx)
			if err != nil {
				return fmt.Errorf("failed to load board: %w", err)
			}
			guards, err := wire.RosterService().ListGuards(ctx)
			if err != nil {
				return fmt.Errorf("failed to load roster: %w", err)
			}

			fmt.Println("Posts")
			printRows(board.Posts, guards, all)
			fmt.Println()
			fmt.Println("Patrols")
			printRows(board.Patrols, guards, all)

			if len(board.Meals) > 0 || len(board.Breaks) > 0 {
				fmt.Println()
				fmt.Println("Meals and breaks")
				w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
				for _, e := range append(append([]primary.BoardEntry{}, board.Meals...), board.Breaks...) {
					fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t%s\n",
						e.Kind, guardNameFor(guards, e.Guard), clock(&e.Planned), clock(e.Actual), entryMarker(e))
				}
				w.Flush()
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "include empty posts and patrols")

	return cmd
}

func printRows(rows []primary.TargetRow, guards []models.Guard, all bool) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	empty := true
	for _, row := range rows {
		if len(row.Entries) == 0 {
			if all {
				fmt.Fprintf(w, "  %s\t\t\t\t\n", row.Target)
			}
			continue
		}
		empty = false
		for _, e := range row.Entries {
			fmt.Fprintf(w, "  %s\t%s\t planned %s\t actual %s\t%s\n",
				row.Target, guardNameFor(guards, e.Guard), clock(&e.Planned), clock(e.Actual), entryMarker(e))
		}
	}
	w.Flush()
	if empty && !all {
		fmt.Println("  (no assignments yet)")
	}
}

// entryMarker renders the latest/superseded state of a board entry.
func entryMarker(e primary.BoardEntry) string {
	switch {
	case e.Latest:
		return color.New(color.FgHiMagenta).Sprint("← live")
	case e.Executed():
		return color.New(color.Faint).Sprint("superseded")
	default:
		return ""
	}
}

// HistoryCmd returns the history command
func HistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "List every ledger entry, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			entries, err := wire.LedgerService().History(ctx)
			if err != nil {
				return fmt.Errorf("failed to load history: %w", err)
			}

			if len(entries) == 0 {
				fmt.Println("No history yet.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tKIND\tGUARD\tTARGET\tPLANNED\tACTUAL")
			for _, e := range entries {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					e.ID, e.Kind, e.Guard, e.Target, clock(&e.Planned), clock(e.Actual))
			}
			return w.Flush()
		},
	}
}

// ScoreCmd returns the score command
func ScoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score",
		Short: "Show every guard's accumulated score",
		Long: `Show the productivity score of each roster guard: the sum of their
executed post and patrol tasks under the configured score table.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			scores, err := wire.LedgerService().GuardScores(ctx)
			if err != nil {
				return fmt.Errorf("failed to compute scores: %w", err)
			}

			if len(scores) == 0 {
				fmt.Println("The roster is empty.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "GUARD\tSCORE")
			for _, s := range scores {
				fmt.Fprintf(w, "%s\t%g\n", guardName(s.Guard), s.Score)
			}
			return w.Flush()
		},
	}
}
