package cmd

import (
	"fmt"

	"github.com/abhisek/attune/internal/alignment"
	"github.com/spf13/cobra"
)

var logRecent int

var logCmd = &cobra.Command{
	Use:       "log <kind>",
	Short:     "Log a completed practice (meditation, affirmation, journal, breath)",
	ValidArgs: []string{"meditation", "affirmation", "journal", "breath"},
	Args:      cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openServices(cmd)
		if err != nil {
			return err
		}
		defer svc.Close()

		if logRecent > 0 {
			events, err := svc.store.ActivityLog().Recent(cmd.Context(), logRecent)
			if err != nil {
				return fmt.Errorf("list recent activity: %w", err)
			}
			for _, e := range events {
				line := fmt.Sprintf("  %s  %-12s", e.Day, e.Kind)
				if e.Detail != "" {
					line += " " + dimStyle.Render(e.Detail)
				}
				fmt.Println(line)
			}
			return nil
		}

		if len(args) == 0 {
			return fmt.Errorf("expected an activity kind: one of %v", allKindNames())
		}
		kind := alignment.Kind(args[0])
		known := false
		for _, k := range alignment.AllKinds() {
			if k == kind {
				known = true
				break
			}
		}
		if !known {
			fmt.Println(warnStyle.Render(fmt.Sprintf("Unknown practice %q. Try one of %v.", args[0], allKindNames())))
			return nil
		}

		svc.align.RecordActivity(kind)
		fmt.Println(successStyle.Render(fmt.Sprintf("%s logged.", kind.DisplayName())))
		fmt.Println("  " + renderScoreBar(svc.align.TodayScore()))
		return nil
	},
}

var moodCmd = &cobra.Command{
	Use:       "mood <level>",
	Short:     "Record how you feel (radiant, bright, steady, low, heavy)",
	ValidArgs: []string{"radiant", "bright", "steady", "low", "heavy"},
	Args:      cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openServices(cmd)
		if err != nil {
			return err
		}
		defer svc.Close()

		mood := alignment.Mood(args[0])
		known := false
		for _, m := range alignment.AllMoods() {
			if m == mood {
				known = true
				break
			}
		}
		if !known {
			fmt.Println(warnStyle.Render(fmt.Sprintf("Unknown mood %q.", args[0])))
			return nil
		}

		svc.align.RecordMood(mood)
		fmt.Println(successStyle.Render("Mood recorded."))
		fmt.Println("  " + renderScoreBar(svc.align.TodayScore()))
		return nil
	},
}

var exerciseCmd = &cobra.Command{
	Use:   "exercise <id>",
	Short: "Mark a guided exercise as completed today",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openServices(cmd)
		if err != nil {
			return err
		}
		defer svc.Close()

		svc.align.CompleteExercise(args[0])
		fmt.Println(successStyle.Render("Exercise recorded."))
		fmt.Println("  " + renderScoreBar(svc.align.TodayScore()))
		return nil
	},
}

// allKindNames returns the loggable kind names for help text.
func allKindNames() []string {
	kinds := alignment.AllKinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return names
}

func init() {
	logCmd.Flags().IntVar(&logRecent, "recent", 0, "List the N most recent logged activities instead of logging one")
}
