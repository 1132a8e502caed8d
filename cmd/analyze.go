package cmd

import (
	"fmt"
	"os"

	"github.com/corentings/chess/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/chesscoach/internal/analysis"
	"github.com/abhisek/chesscoach/internal/engine"
	"github.com/abhisek/chesscoach/internal/store"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <game.pgn>",
	Short: "Analyze a PGN game for mistakes",
	Long:  "Walks the game move by move with a UCI engine, reports every significant eval drop, asks the LLM coach to explain it, and records the result.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pgnPath := args[0]
		side, _ := cmd.Flags().GetString("side")
		output, _ := cmd.Flags().GetString("output")
		enginePath, _ := cmd.Flags().GetString("engine")
		depth, _ := cmd.Flags().GetInt("depth")
		threshold, _ := cmd.Flags().GetInt("threshold")
		abort, _ := cmd.Flags().GetBool("abort-on-explain-error")

		sideFilter := analysis.Side(side)
		if !sideFilter.Valid() {
			return fmt.Errorf("invalid --side %q: must be white, black, or both", side)
		}

		f, err := os.Open(pgnPath)
		if err != nil {
			return fmt.Errorf("open PGN file: %w", err)
		}
		opt, err := chess.PGN(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("parse PGN: %w", err)
		}
		game := chess.NewGame(opt)

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := cmd.Context()

		explainer, err := newExplainer(ctx, s)
		if err != nil {
			return err
		}

		engCfg := engine.DefaultConfig()
		engCfg.Path = enginePath
		engCfg.Depth = depth
		eval, err := engine.New(engCfg)
		if err != nil {
			return err
		}
		defer eval.Close()

		cfg := analysis.DefaultConfig()
		cfg.ThresholdCP = threshold
		cfg.Side = sideFilter
		cfg.ContinueOnExplainError = !abort

		p := analysis.NewProcessor(eval, explainer, s.BlunderRepo(), cfg, cmd.OutOrStdout())
		records, err := p.AnalyzeGame(ctx, game, pgnPath)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Recorded %d mistake(s).\n", len(records))

		if output != "" {
			if err := os.WriteFile(output, []byte(game.String()+"\n"), 0o644); err != nil {
				return fmt.Errorf("save annotated PGN: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Annotated game saved to %s\n", output)
		}

		return nil
	},
}

func init() {
	analyzeCmd.Flags().String("side", "both", "Side to analyze: white, black, or both")
	analyzeCmd.Flags().StringP("output", "o", "", "Path to save the annotated PGN file")
	analyzeCmd.Flags().String("engine", "stockfish", "Path to the UCI engine binary")
	analyzeCmd.Flags().Int("depth", 18, "Engine search depth")
	analyzeCmd.Flags().Int("threshold", 150, "Minimum eval drop in centipawns to report")
	analyzeCmd.Flags().Bool("abort-on-explain-error", false, "Abort the run when no explanation can be obtained instead of continuing")
}
