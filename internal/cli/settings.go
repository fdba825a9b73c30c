package cli

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/example/guardpost/internal/ports/primary"
	"github.com/example/guardpost/internal/wire"
)

// SettingsCmd returns the settings command
func SettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show and change shift settings",
		Long: `Show and change the alert thresholds and the score table. Changes
apply to the next evaluation immediately; no restart is needed.`,
	}

	cmd.AddCommand(settingsShowCmd())
	cmd.AddCommand(settingsSetCmd())
	cmd.AddCommand(settingsSetScoreCmd())

	return cmd
}

func settingsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			settings, err := wire.SettingsService().Get(ctx)
			if err != nil {
				return fmt.Errorf("failed to load settings: %w", err)
			}

			fmt.Println("Thresholds (minutes):")
			fmt.Printf("  posts/patrols: %d\n", settings.AlertThresholdMinutes)
			fmt.Printf("  break:         %d\n", settings.BreakThresholdMinutes)
			fmt.Printf("  meal:          %d\n", settings.MealThresholdMinutes)

			fmt.Println()
			fmt.Println("Score table (first match wins):")
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			printScores(w, "slot", settings.Scores.NamedSlots)
			printScores(w, "family", settings.Scores.Families)
			fmt.Fprintf(w, "  patrol\t(any other patrol)\t%g\n", settings.Scores.DefaultPatrol)
			printScores(w, "post", settings.Scores.Posts)
			return w.Flush()
		},
	}
}

func printScores(w *tabwriter.Writer, kind string, scores map[string]float64) {
	names := make([]string, 0, len(scores))
	for name := range scores {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "  %s\t%s\t%g\n", kind, name, scores[name])
	}
}

func settingsSetCmd() *cobra.Command {
	var alert, brk, meal int

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change the alert thresholds",
		Long: `Change one or more alert thresholds (in minutes).

Examples:
  guardpost settings set --alert 45
  guardpost settings set --break 20 --meal 40`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			req := primary.UpdateSettingsRequest{}
			if cmd.Flags().Changed("alert") {
				req.AlertThresholdMinutes = &alert
			}
			if cmd.Flags().Changed("break") {
				req.BreakThresholdMinutes = &brk
			}
			if cmd.Flags().Changed("meal") {
				req.MealThresholdMinutes = &meal
			}

			settings, err := wire.SettingsService().Update(ctx, req)
			if err != nil {
				return fmt.Errorf("failed to update settings: %w", err)
			}

			fmt.Printf("✓ Thresholds now %d/%d/%d (posts, break, meal)\n",
				settings.AlertThresholdMinutes, settings.BreakThresholdMinutes, settings.MealThresholdMinutes)
			return nil
		},
	}

	cmd.Flags().IntVar(&alert, "alert", 0, "posts/patrols threshold in minutes")
	cmd.Flags().IntVar(&brk, "break", 0, "break threshold in minutes")
	cmd.Flags().IntVar(&meal, "meal", 0, "meal threshold in minutes")

	return cmd
}

func settingsSetScoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-score [rule] [name] [points]",
		Short: "Change one score table entry",
		Long: `Change one score table entry. Rule is one of:

  slot     exact patrol label (highest priority)
  family   substring marker over patrol labels
  post     exact post name
  patrol   the default for any other patrol (omit name)

Examples:
  guardpost settings set-score slot RL-9 3
  guardpost settings set-score family Sharona 4
  guardpost settings set-score patrol 2`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			rule := args[0]
			req := primary.UpdateSettingsRequest{}

			if rule == "patrol" {
				if len(args) != 2 {
					return fmt.Errorf("usage: settings set-score patrol [points]")
				}
				points, err := strconv.ParseFloat(args[1], 64)
				if err != nil {
					return fmt.Errorf("invalid points %q", args[1])
				}
				req.DefaultPatrol = &points
			} else {
				if len(args) != 3 {
					return fmt.Errorf("usage: settings set-score %s [name] [points]", rule)
				}
				points, err := strconv.ParseFloat(args[2], 64)
				if err != nil {
					return fmt.Errorf("invalid points %q", args[2])
				}
				entry := map[string]float64{args[1]: points}
				switch rule {
				case "slot":
					req.NamedSlots = entry
				case "family":
					req.Families = entry
				case "post":
					req.Posts = entry
				default:
					return fmt.Errorf("unknown rule %q (slot, family, post or patrol)", rule)
				}
			}

			if _, err := wire.SettingsService().Update(ctx, req); err != nil {
				return fmt.Errorf("failed to update score table: %w", err)
			}

			fmt.Println("✓ Score table updated")
			return nil
		},
	}

	return cmd
}
