package cmd

import (
	"fmt"

	"github.com/abhisek/attune/internal/catalog"
	"github.com/abhisek/attune/internal/journey"
	"github.com/spf13/cobra"
)

var beginCmd = &cobra.Command{
	Use:   "begin <path>",
	Short: "Begin working a crystal path",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openServices(cmd)
		if err != nil {
			return err
		}
		defer svc.Close()

		id := args[0]
		if !catalog.Exists(id) {
			fmt.Println(warnStyle.Render(fmt.Sprintf("No path named %q. Run `attune paths` to see them.", id)))
			return nil
		}
		if !svc.journey.SelectPath(id) {
			switch svc.journey.SlotState(id) {
			case journey.SlotMastered:
				fmt.Println(warnStyle.Render("That path is already mastered — revisit it anytime, but it can't be reopened."))
			case journey.SlotLocked:
				fmt.Println(warnStyle.Render("Another path is active. Finish it or run `attune abandon` first."))
			default:
				fmt.Println(warnStyle.Render("That path can't be started right now."))
			}
			return nil
		}

		p, _ := catalog.Get(id)
		fmt.Println(successStyle.Render(fmt.Sprintf("%s path begun.", p.Name)))
		if task := svc.journey.CurrentTask(); task != nil {
			fmt.Printf("  Stage %d: %s\n", task.Stage, bodyStyle.Render(task.Text))
		}
		return nil
	},
}

var advanceCmd = &cobra.Command{
	Use:   "advance",
	Short: "Complete the current stage of the active path",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openServices(cmd)
		if err != nil {
			return err
		}
		defer svc.Close()

		if !svc.journey.CompleteStage() {
			fmt.Println(warnStyle.Render("No active path. Run `attune begin <path>` first."))
			return nil
		}

		state := svc.journey.Snapshot()
		if state.Mode == journey.ModeComplete {
			p, _ := catalog.Get(state.SelectedPathID)
			fmt.Println(successStyle.Render(fmt.Sprintf("✦ %s mastered!", p.Name)))
			if svc.journey.AllPathsMastered() {
				fmt.Println(successStyle.Render("✦ All eight paths mastered."))
			} else {
				fmt.Println(dimStyle.Render("Run `attune next` to choose your next path."))
			}
			return nil
		}

		fmt.Println(successStyle.Render(fmt.Sprintf("Stage %d complete.", state.StagesCompleted)))
		if task := svc.journey.CurrentTask(); task != nil {
			fmt.Printf("  Stage %d: %s\n", task.Stage, bodyStyle.Render(task.Text))
		}
		return nil
	},
}

var abandonCmd = &cobra.Command{
	Use:     "abandon",
	Aliases: []string{"next"},
	Short:   "Return to path selection (keeps mastered history)",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openServices(cmd)
		if err != nil {
			return err
		}
		defer svc.Close()

		svc.journey.ResetToSelection()
		fmt.Println(bodyStyle.Render("Back to selection. Run `attune paths` to pick a path."))
		return nil
	},
}
