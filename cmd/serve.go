package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/corentings/chess/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/chesscoach/internal/analysis"
	"github.com/abhisek/chesscoach/internal/engine"
	"github.com/abhisek/chesscoach/internal/server"
	"github.com/abhisek/chesscoach/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP analysis API",
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")
		enginePath, _ := cmd.Flags().GetString("engine")
		depth, _ := cmd.Flags().GetInt("depth")
		threshold, _ := cmd.Flags().GetInt("threshold")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		explainer, err := newExplainer(cmd.Context(), s)
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

		analyze := func(ctx context.Context, game *chess.Game, source string) ([]store.BlunderRecord, error) {
			p := analysis.NewProcessor(eval, explainer, s.BlunderRepo(), cfg, io.Discard)
			return p.AnalyzeGame(ctx, game, source)
		}

		srv := server.New(addr, s.BlunderRepo(), analyze)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			_ = srv.Stop(shutdownCtx)
		}()

		fmt.Fprintf(cmd.OutOrStdout(), "Listening on %s\n", addr)
		return srv.Start()
	},
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "Address to listen on")
	serveCmd.Flags().String("engine", "stockfish", "Path to the UCI engine binary")
	serveCmd.Flags().Int("depth", 18, "Engine search depth")
	serveCmd.Flags().Int("threshold", 150, "Minimum eval drop in centipawns to report")
}
