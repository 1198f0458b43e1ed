package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/tempo/internal/scheduling/application/commands"
)

var (
	taskDuration int
	taskPriority string
	taskDeadline string
)

var taskCmd = &cobra.Command{
	Use:   "task [title]",
	Short: "Auto-schedule a task into the best free slot",
	Long: `Find the highest-scoring free slot for a task and place it there.

Urgent tasks (critical, high) prefer peak-energy hours; everything else
aims for medium-energy hours.

Examples:
  tempo task "Draft report" --duration 60 --priority high
  tempo task "Review PRs" --duration 30 --deadline 2026-09-01`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("application not initialized")
		}

		var deadline *time.Time
		if taskDeadline != "" {
			d, err := time.Parse("2006-01-02", taskDeadline)
			if err != nil {
				return fmt.Errorf("invalid deadline, use YYYY-MM-DD: %w", err)
			}
			// End of day, so the whole date is searchable.
			d = d.Add(24*time.Hour - time.Second)
			deadline = &d
		}

		result, err := app.AutoScheduleTaskHandler.Handle(cmd.Context(), commands.AutoScheduleTaskCommand{
			Title:        args[0],
			DurationMins: taskDuration,
			Priority:     taskPriority,
			Deadline:     deadline,
		})
		if err != nil {
			return err
		}
		if err := app.Save(cmd.Context()); err != nil {
			return err
		}

		block := result.Block
		fmt.Printf("Scheduled %q %s (score %d)\n",
			block.Title(),
			formatInterval(block.Start(), block.End()),
			result.Score,
		)
		return nil
	},
}

func init() {
	taskCmd.Flags().IntVarP(&taskDuration, "duration", "d", 30, "duration in minutes")
	taskCmd.Flags().StringVarP(&taskPriority, "priority", "p", "medium", "priority (critical|high|medium|low)")
	taskCmd.Flags().StringVar(&taskDeadline, "deadline", "", "latest acceptable date (YYYY-MM-DD)")
	AddCommand(taskCmd)
}

func formatInterval(start, end time.Time) string {
	return fmt.Sprintf("%s %s-%s",
		start.Format("Mon Jan 2"),
		start.Format("15:04"),
		end.Format("15:04"),
	)
}
