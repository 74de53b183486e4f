package cmd

import (
	"fmt"
	"strconv"

	"github.com/abhisek/attune/internal/alignment"
	"github.com/abhisek/attune/internal/catalog"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show weekly stats and streaks",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openServices(cmd)
		if err != nil {
			return err
		}
		defer svc.Close()

		avg, total := svc.align.WeeklyStats()
		fmt.Println(titleStyle.Render("This week"))
		fmt.Printf("  Average score   %s\n", bodyStyle.Render(fmt.Sprintf("%d/100", avg)))
		fmt.Printf("  Practices       %s\n", bodyStyle.Render(strconv.Itoa(total)))
		fmt.Println()

		fmt.Println(titleStyle.Render("Streaks"))
		fmt.Println(renderStreak("Meditation", svc.align.StreakFor(alignment.StreakMeditation)))
		fmt.Println(renderStreak("Affirmation", svc.align.StreakFor(alignment.StreakAffirmation)))
		fmt.Println(renderStreak("Overall", svc.align.StreakFor(alignment.StreakOverall)))
		fmt.Println()

		mastered := len(svc.journey.Snapshot().MasteredPathIDs)
		fmt.Println(titleStyle.Render("Journey"))
		fmt.Printf("  Paths mastered  %s\n", bodyStyle.Render(fmt.Sprintf("%d/%d", mastered, catalog.Count())))
		return nil
	},
}

var historyCmd = &cobra.Command{
	Use:   "history [days]",
	Short: "Show the last N days of activity (default 7)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openServices(cmd)
		if err != nil {
			return err
		}
		defer svc.Close()

		days := 7
		if len(args) == 1 {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 1 {
				return fmt.Errorf("days must be a positive number, got %q", args[0])
			}
			days = n
		}

		fmt.Println(titleStyle.Render(fmt.Sprintf("Last %d days", days)))
		fmt.Println(dimStyle.Render("  date          score  med  aff  jrn  brt  mood"))
		for _, rec := range svc.align.History(days) {
			mood := "-"
			if rec.LatestMood != nil {
				mood = string(*rec.LatestMood)
			}
			fmt.Printf("  %s   %3d  %3d  %3d  %3d  %3d  %s\n",
				rec.Date, alignment.Score(&rec),
				rec.Meditations, rec.Affirmations, rec.Journals, rec.Breaths, mood)
		}
		return nil
	},
}
