package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/tempo/internal/scheduling/application/commands"
)

var (
	habitDuration  int
	habitFrequency string
	habitTime      string
	habitFlex      int
)

var habitCmd = &cobra.Command{
	Use:   "habit [title]",
	Short: "Plan a recurring habit over the next two weeks",
	Long: `Generate recurring blocks for a habit over the next fourteen days.

Frequency filters the days: daily, weekdays (Mon-Fri), or weekends
(Sat-Sun). Preferred time fixes the start hour: morning 07:00,
afternoon 14:00, evening 19:00.

Examples:
  tempo habit "Morning run" --duration 30 --frequency daily
  tempo habit "Review inbox" --duration 15 --frequency weekdays --time afternoon`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("application not initialized")
		}

		result, err := app.ScheduleHabitHandler.Handle(cmd.Context(), commands.ScheduleHabitCommand{
			Title:            args[0],
			DurationMins:     habitDuration,
			Frequency:        habitFrequency,
			PreferredTime:    habitTime,
			FlexibilityScore: &habitFlex,
		})
		if err != nil {
			return err
		}
		if err := app.Save(cmd.Context()); err != nil {
			return err
		}

		fmt.Printf("Planned %d occurrences of %q\n", len(result.Blocks), args[0])
		return nil
	},
}

func init() {
	habitCmd.Flags().IntVarP(&habitDuration, "duration", "d", 30, "duration in minutes")
	habitCmd.Flags().StringVarP(&habitFrequency, "frequency", "f", "daily", "frequency (daily|weekdays|weekends)")
	habitCmd.Flags().StringVar(&habitTime, "time", "morning", "preferred time (morning|afternoon|evening)")
	habitCmd.Flags().IntVar(&habitFlex, "flexibility", 60, "flexibility score (0-100)")
	AddCommand(habitCmd)
}
