package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/example/guardpost/internal/ports/primary"
	"github.com/example/guardpost/internal/wire"
)

// GuardCmd returns the guard command
func GuardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "guard",
		Short: "Manage the shift roster",
		Long:  `Add, list, update and remove the guards of the current shift.`,
	}

	cmd.AddCommand(guardAddCmd())
	cmd.AddCommand(guardListCmd())
	cmd.AddCommand(guardUpdateCmd())
	cmd.AddCommand(guardRemoveCmd())

	return cmd
}

func guardAddCmd() *cobra.Command {
	var (
		certified    bool
		shiftLabel   string
		supplemental bool
	)

	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Add a guard to the roster",
		Long: `Add a guard to the roster. Names must be unique; the display color
is assigned automatically from the palette.

Examples:
  guardpost guard add "Dana Levi" --shift "morning 7-15"
  guardpost guard add "Gil Peretz" --shift "support 7-19" --supplemental`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			guard, err := wire.RosterService().AddGuard(ctx, primary.AddGuardRequest{
				Name:         args[0],
				Certified:    certified,
				ShiftLabel:   shiftLabel,
				Supplemental: supplemental,
			})
			if err != nil {
				return fmt.Errorf("failed to add guard: %w", err)
			}

			fmt.Printf("✓ Added %s to the roster\n", guardName(*guard))
			return nil
		},
	}

	cmd.Flags().BoolVar(&certified, "certified", true, "guard holds certification")
	cmd.Flags().StringVar(&shiftLabel, "shift", "", "free-text shift label")
	cmd.Flags().BoolVar(&supplemental, "supplemental", false, "supplemental duty: retained across evening reset")

	return cmd
}

func guardListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the roster",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			guards, err := wire.RosterService().ListGuards(ctx)
			if err != nil {
				return fmt.Errorf("failed to list guards: %w", err)
			}

			if len(guards) == 0 {
				fmt.Println("The roster is empty.")
				fmt.Println()
				fmt.Println("Add your first guard:")
				fmt.Println("  guardpost guard add \"Dana Levi\"")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tCERTIFIED\tSHIFT\tSUPPLEMENTAL")
			for _, g := range guards {
				certified := ""
				if g.Certified {
					certified = "yes"
				}
				supplemental := ""
				if g.Supplemental {
					supplemental = "yes"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", guardName(g), certified, g.ShiftLabel, supplemental)
			}
			return w.Flush()
		},
	}
}

func guardUpdateCmd() *cobra.Command {
	var (
		certified    bool
		shiftLabel   string
		supplemental bool
	)

	cmd := &cobra.Command{
		Use:   "update [name]",
		Short: "Update a guard's flags or shift label",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			req := primary.UpdateGuardRequest{}
			if cmd.Flags().Changed("certified") {
				req.Certified = &certified
			}
			if cmd.Flags().Changed("shift") {
				req.ShiftLabel = &shiftLabel
			}
			if cmd.Flags().Changed("supplemental") {
				req.Supplemental = &supplemental
			}

			guard, err := wire.RosterService().UpdateGuard(ctx, args[0], req)
			if err != nil {
				return fmt.Errorf("failed to update guard: %w", err)
			}

			fmt.Printf("✓ Updated %s\n", guardName(*guard))
			return nil
		},
	}

	cmd.Flags().BoolVar(&certified, "certified", true, "guard holds certification")
	cmd.Flags().StringVar(&shiftLabel, "shift", "", "free-text shift label")
	cmd.Flags().BoolVar(&supplemental, "supplemental", false, "supplemental duty: retained across evening reset")

	return cmd
}

func guardRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove [name]",
		Short: "Remove a guard from the roster",
		Long: `Remove a guard from the roster. The guard's tasks stay on the board
as historical entries.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if err := wire.RosterService().RemoveGuard(ctx, args[0]); err != nil {
				return fmt.Errorf("failed to remove guard: %w", err)
			}

			fmt.Printf("✓ Removed %s from the roster\n", args[0])
			return nil
		},
	}
}
