package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/chesscoach/internal/store"
)

var blundersCmd = &cobra.Command{
	Use:   "blunders",
	Short: "Inspect recorded mistakes",
}

var blundersListCmd = &cobra.Command{
	Use:   "list <source>",
	Short: "List recorded mistakes for a source",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source := args[0]

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		records, err := s.BlunderRepo().BySource(context.Background(), source)
		if err != nil {
			return fmt.Errorf("query blunders: %w", err)
		}

		if len(records) == 0 {
			fmt.Println("No mistakes recorded for this source.")
			return nil
		}

		fmt.Printf("%-5s  %-6s  %-8s  %-8s  %-8s  %-16s  %s\n",
			"Move", "Color", "Played", "Best", "Drop", "Severity", "Motif")
		fmt.Println(strings.Repeat("─", 72))

		for _, r := range records {
			fmt.Printf("%-5d  %-6s  %-8s  %-8s  %-8d  %-16s  %s\n",
				r.MoveNumber, r.PlayerColor, r.MoveSAN, r.BestMoveSAN, r.EvalDrop, r.Severity, r.Motif)
			if r.Explanation != "" {
				fmt.Printf("       %s\n", r.Explanation)
			}
		}
		return nil
	},
}

var blundersClearCmd = &cobra.Command{
	Use:   "clear <source>",
	Short: "Delete recorded mistakes for a source",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source := args[0]

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		n, err := s.BlunderRepo().DeleteBySource(context.Background(), source)
		if err != nil {
			return fmt.Errorf("delete blunders: %w", err)
		}

		fmt.Printf("Deleted %d record(s).\n", n)
		return nil
	},
}

func init() {
	blundersCmd.AddCommand(blundersListCmd)
	blundersCmd.AddCommand(blundersClearCmd)
}
