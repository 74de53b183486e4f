package cmd

import (
	"fmt"

	"github.com/abhisek/attune/internal/catalog"
	"github.com/abhisek/attune/internal/journey"
	"github.com/spf13/cobra"
)

var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "List the crystal paths and their status",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openServices(cmd)
		if err != nil {
			return err
		}
		defer svc.Close()

		fmt.Println(titleStyle.Render("Crystal paths"))
		state := svc.journey.Snapshot()
		for _, p := range catalog.All() {
			slot := svc.journey.SlotState(p.ID)
			line := fmt.Sprintf("  %s %-14s %s", slotIcon(slot), p.Name, dimStyle.Render(p.Theme))
			if slot == journey.SlotActive {
				line += fmt.Sprintf("  (%d/%d)", state.StagesCompleted, catalog.StagesPerPath)
			}
			fmt.Println(line)
		}
		if svc.journey.AllPathsMastered() {
			fmt.Println()
			fmt.Println(successStyle.Render("  Every path mastered. Revisit any of them to deepen your practice."))
		}
		return nil
	},
}
