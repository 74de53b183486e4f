package cmd

import (
	"fmt"

	"github.com/abhisek/attune/internal/alignment"
	"github.com/abhisek/attune/internal/catalog"
	"github.com/abhisek/attune/internal/journey"
	"github.com/spf13/cobra"
)

// runToday prints the daily overview: alignment score, streaks and the
// current journey task.
func runToday(cmd *cobra.Command) error {
	svc, err := openServices(cmd)
	if err != nil {
		return err
	}
	defer svc.Close()

	fmt.Println(titleStyle.Render("attune — today"))
	fmt.Println()
	fmt.Println("  " + renderScoreBar(svc.align.TodayScore()))
	fmt.Println()

	fmt.Println(renderStreak("Meditation", svc.align.StreakFor(alignment.StreakMeditation)))
	fmt.Println(renderStreak("Affirmation", svc.align.StreakFor(alignment.StreakAffirmation)))
	fmt.Println(renderStreak("Overall", svc.align.StreakFor(alignment.StreakOverall)))
	fmt.Println()

	state := svc.journey.Snapshot()
	switch state.Mode {
	case journey.ModeActive:
		p, err := catalog.Get(state.SelectedPathID)
		if err == nil {
			task := svc.journey.CurrentTask()
			fmt.Printf("  %s %s (%d/%d)\n", slotIcon(journey.SlotActive),
				bodyStyle.Render(p.Name), state.StagesCompleted, catalog.StagesPerPath)
			if task != nil {
				fmt.Printf("    Stage %d: %s\n", task.Stage, bodyStyle.Render(task.Text))
			}
		}
	case journey.ModeComplete:
		p, err := catalog.Get(state.SelectedPathID)
		if err == nil {
			fmt.Println("  " + successStyle.Render(fmt.Sprintf("✦ %s mastered! Run `attune next` to choose your next path.", p.Name)))
		}
	default:
		fmt.Println(dimStyle.Render("  No active path. Run `attune paths` to pick one."))
	}
	return nil
}
