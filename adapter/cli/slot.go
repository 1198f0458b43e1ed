package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/tempo/internal/scheduling/application/queries"
)

var (
	slotDuration int
	slotPriority string
	slotEnergy   string
)

var slotCmd = &cobra.Command{
	Use:   "slot",
	Short: "Find the best free slot without scheduling anything",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("application not initialized")
		}

		result, err := app.FindOptimalSlotHandler.Handle(cmd.Context(), queries.FindOptimalSlotQuery{
			DurationMins:    slotDuration,
			Priority:        slotPriority,
			PreferredEnergy: slotEnergy,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Best slot: %s (score %d, %dm free)\n",
			formatInterval(result.Start, result.End),
			result.Score,
			int(result.End.Sub(result.Start)/time.Minute),
		)
		return nil
	},
}

func init() {
	slotCmd.Flags().IntVarP(&slotDuration, "duration", "d", 30, "duration in minutes")
	slotCmd.Flags().StringVarP(&slotPriority, "priority", "p", "medium", "priority (critical|high|medium|low)")
	slotCmd.Flags().StringVarP(&slotEnergy, "energy", "e", "medium", "preferred energy (high|medium|low)")
	AddCommand(slotCmd)
}
