package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:     "show",
	Short:   "List all scheduled blocks in start order",
	Aliases: []string{"ls", "list"},
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("application not initialized")
		}

		blocks := app.Store.List()
		if len(blocks) == 0 {
			fmt.Println("Nothing scheduled.")
			return nil
		}

		for _, block := range blocks {
			status := " "
			if block.IsCompleted() {
				status = "x"
			}
			flex := "fixed"
			if block.IsFlexible() {
				flex = fmt.Sprintf("flex %d", block.FlexibilityScore())
			}
			fmt.Printf("[%s] %s  %-8s %-8s %s (%s)\n",
				status,
				formatInterval(block.Start(), block.End()),
				block.BlockType(),
				block.Priority(),
				block.Title(),
				flex,
			)
		}
		return nil
	},
}

func init() {
	AddCommand(showCmd)
}
