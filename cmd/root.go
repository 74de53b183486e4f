package cmd

import (
	"github.com/abhisek/attune/internal/config"
	"github.com/abhisek/attune/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "attune",
	Short: "Daily alignment companion",
	Long:  "Attune — terminal companion for a daily wellness practice: crystal paths, logged practices, and your alignment score.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runToday(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides ATTUNE_DB env var)")

	rootCmd.AddCommand(pathsCmd)
	rootCmd.AddCommand(beginCmd)
	rootCmd.AddCommand(advanceCmd)
	rootCmd.AddCommand(abandonCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(moodCmd)
	rootCmd.AddCommand(exerciseCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then the ATTUNE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg *config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}
