package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var conflictsAuto bool

var conflictsCmd = &cobra.Command{
	Use:   "conflicts",
	Short: "Detect scheduling conflicts and optionally auto-resolve them",
	Long: `Scan the schedule for overlapping blocks.

Each conflict names the block that should move and the proposed new
interval. With --auto, every auto-resolvable conflict is applied in one
batch; the rest stay for manual editing.

Examples:
  tempo conflicts
  tempo conflicts --auto`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("application not initialized")
		}

		conflicts := app.Rescheduler.DetectConflicts()
		if len(conflicts) == 0 {
			fmt.Println("No conflicts found.")
			return nil
		}

		fmt.Printf("Found %d conflict(s):\n", len(conflicts))
		for _, c := range conflicts {
			marker := " "
			if c.IsAutoResolvable() {
				marker = "*"
			}
			fmt.Printf("%s %s\n    %s\n", marker, c, c.Suggestion())
		}

		if !conflictsAuto {
			fmt.Println("\n* = auto-resolvable; run 'tempo conflicts --auto' to apply")
			return nil
		}

		applied := app.Rescheduler.AutoResolveConflicts()
		if err := app.Save(cmd.Context()); err != nil {
			return err
		}
		fmt.Printf("\nApplied %d reschedule(s).\n", applied)

		if remaining := app.Rescheduler.DetectConflicts(); len(remaining) > 0 {
			fmt.Printf("%d conflict(s) remain and need manual attention.\n", len(remaining))
		}
		return nil
	},
}

func init() {
	conflictsCmd.Flags().BoolVar(&conflictsAuto, "auto", false, "apply all auto-resolvable reschedules")
	AddCommand(conflictsCmd)
}
