package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetAll bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Abandon the current path; --all also wipes mastered history",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openServices(cmd)
		if err != nil {
			return err
		}
		defer svc.Close()

		if resetAll {
			svc.journey.ResetAll()
			fmt.Println(bodyStyle.Render("Journey fully reset. All mastered history cleared."))
			return nil
		}

		svc.journey.ResetToSelection()
		fmt.Println(bodyStyle.Render("Back to selection. Mastered paths are kept."))
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVar(&resetAll, "all", false, "Also clear mastered path history")
}
