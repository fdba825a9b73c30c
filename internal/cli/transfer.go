package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/guardpost/internal/wire"
)

// ExportCmd returns the export command
func ExportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the shift record as JSON",
		Long: `Serialize the whole shift record (roster and all task collections)
for manual transfer to another shift or device.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			payload, err := wire.RosterService().Export(ctx)
			if err != nil {
				return fmt.Errorf("failed to export: %w", err)
			}

			if output == "" {
				fmt.Println(string(payload))
				return nil
			}

			if err := os.WriteFile(output, payload, 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", output, err)
			}
			fmt.Printf("✓ Exported shift record to %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")

	return cmd
}

// ImportCmd returns the import command
func ImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import [file]",
		Short: "Import a shift record from JSON",
		Long: `Replace the current shift record with an exported one. Payloads
missing any of the five collections are rejected and nothing is written.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			payload, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[0], err)
			}

			result, err := wire.RosterService().Import(ctx, payload)
			if err != nil {
				return fmt.Errorf("failed to import: %w", err)
			}

			fmt.Printf("✓ Imported %d guards and %d tasks\n", result.Guards, result.Tasks)
			return nil
		},
	}
}
