package cmd

import (
	"github.com/abhisek/chesscoach/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "chesscoach",
	Short: "Engine-backed chess coach",
	Long:  "Chesscoach analyzes PGN games with a UCI engine, finds the mistakes, and explains them.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides CHESSCOACH_DB env var)")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(blundersCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then CHESSCOACH_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
