package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/tempo/internal/scheduling/application/queries"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show today's schedule efficiency",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("application not initialized")
		}

		report, err := app.ScheduleEfficiencyHandler.Handle(cmd.Context(), queries.ScheduleEfficiencyQuery{})
		if err != nil {
			return err
		}

		fmt.Printf("Schedule report for %s\n", report.Date.Format("Mon Jan 2 2006"))
		fmt.Printf("  Blocks:      %d\n", report.BlockCount)
		fmt.Printf("  Scheduled:   %dm\n", report.TotalScheduled)
		fmt.Printf("  Focus time:  %dm\n", report.FocusTime)
		fmt.Printf("  Completed:   %dm\n", report.CompletedMinutes)
		fmt.Printf("  Efficiency:  %d%%\n", report.Efficiency)
		fmt.Printf("  Utilization: %d%%\n", report.Utilization)
		fmt.Printf("  Conflicts:   %d\n", report.Conflicts)
		return nil
	},
}

func init() {
	AddCommand(reportCmd)
}
