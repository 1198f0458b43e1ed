package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/tempo/internal/scheduling/application/commands"
)

var (
	focusHours int
	focusTime  string
)

var focusCmd = &cobra.Command{
	Use:   "focus",
	Short: "Reserve daily deep-work blocks for the next five days",
	Long: `Reserve one non-flexible focus block per day for the next five days.

Focus blocks are inserted without overlap checking: any collisions show
up in 'tempo conflicts' for resolution.

Examples:
  tempo focus
  tempo focus --hours 3 --time afternoon`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("application not initialized")
		}

		result, err := app.ProtectFocusTimeHandler.Handle(cmd.Context(), commands.ProtectFocusTimeCommand{
			HoursPerDay:   focusHours,
			PreferredTime: focusTime,
		})
		if err != nil {
			return err
		}
		if err := app.Save(cmd.Context()); err != nil {
			return err
		}

		fmt.Printf("Protected %d focus blocks:\n", len(result.Blocks))
		for _, block := range result.Blocks {
			fmt.Printf("  %s\n", formatInterval(block.Start(), block.End()))
		}
		return nil
	},
}

func init() {
	focusCmd.Flags().IntVar(&focusHours, "hours", 2, "hours per day")
	focusCmd.Flags().StringVar(&focusTime, "time", "morning", "preferred time (morning|afternoon)")
	AddCommand(focusCmd)
}
