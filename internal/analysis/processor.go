package analysis

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/corentings/chess/v2"

	"github.com/abhisek/chesscoach/internal/coach"
	"github.com/abhisek/chesscoach/internal/engine"
	"github.com/abhisek/chesscoach/internal/store"
)

// Explainer produces a coaching explanation for a mistake.
// *coach.Explainer satisfies it; tests substitute their own.
type Explainer interface {
	Explain(ctx context.Context, mc *coach.MistakeContext) (*coach.Explanation, error)
}

// Config holds analysis settings.
type Config struct {
	// ThresholdCP is the minimum eval drop to report a mistake.
	ThresholdCP int
	Side        Side
	// ContinueOnExplainError keeps the run going when no explanation
	// can be obtained: the record is persisted without tags and the
	// move is left unannotated.
	ContinueOnExplainError bool
}

// DefaultConfig returns the default analysis settings.
func DefaultConfig() Config {
	return Config{
		ThresholdCP:            150,
		Side:                   SideBoth,
		ContinueOnExplainError: true,
	}
}

// Processor walks a game move by move, evaluating each position,
// classifying mistakes, collecting explanations, and persisting and
// annotating what it finds.
type Processor struct {
	evaluator  engine.Evaluator
	explainer  Explainer
	repo       store.BlunderRepo
	classifier *Classifier
	cfg        Config
	out        io.Writer
}

// NewProcessor creates a processor writing its console output to out.
func NewProcessor(evaluator engine.Evaluator, explainer Explainer, repo store.BlunderRepo, cfg Config, out io.Writer) *Processor {
	return &Processor{
		evaluator:  evaluator,
		explainer:  explainer,
		repo:       repo,
		classifier: NewClassifier(cfg.ThresholdCP, cfg.Side),
		cfg:        cfg,
		out:        out,
	}
}

// AnalyzeGame runs the full pipeline over the game's main line.
// Mistakes are recorded under the given source identifier and the
// game's moves are annotated in place. Engine and storage failures
// abort the run; explanation failures follow ContinueOnExplainError.
func (p *Processor) AnalyzeGame(ctx context.Context, game *chess.Game, source string) ([]store.BlunderRecord, error) {
	fmt.Fprintf(p.out, "Analyzing game: %s vs. %s\n", tagOr(game, "White", "?"), tagOr(game, "Black", "?"))
	fmt.Fprintln(p.out, strings.Repeat("-", 40))

	var records []store.BlunderRecord

	for _, move := range game.Moves() {
		if err := ctx.Err(); err != nil {
			return records, err
		}

		parent := move.Parent()
		if parent == nil {
			continue
		}
		pos := parent.Position()
		fenBefore := pos.String()
		moverWhite := pos.Turn() == chess.White
		moveNumber := fullmoveNumber(fenBefore)
		san := chess.AlgebraicNotation{}.Encode(pos, move)

		evalBefore, err := p.evaluator.Evaluate(ctx, fenBefore)
		if err != nil {
			return records, err
		}

		// Echo the move the way a score sheet reads.
		if moverWhite {
			fmt.Fprintf(p.out, "%d. %s ", moveNumber, san)
		} else {
			fmt.Fprintf(p.out, "%s\n", san)
		}

		// Checkmate and stalemate leave nothing to evaluate.
		after := move.Position()
		if after.Status() != chess.NoMethod {
			continue
		}

		evalAfter, err := p.evaluator.Evaluate(ctx, after.String())
		if err != nil {
			return records, err
		}

		drop := evalBefore.Score.POV(moverWhite) - evalAfter.Score.POV(moverWhite)

		playedUCI := chess.UCINotation{}.Encode(pos, move)
		verdict := p.classifier.Classify(moverWhite, drop, evalBefore.Score, playedUCI, evalBefore.BestMove())
		if !verdict.Reportable {
			continue
		}

		color := colorName(moverWhite)
		fmt.Fprintf(p.out, "\n*** MISTAKE by %s on move %s! (Eval drop: %d) ***\n", color, san, drop)

		b := &Blunder{
			Source:      source,
			MoveNumber:  moveNumber,
			PlayerColor: color,
			MoveSAN:     san,
			PositionFEN: fenBefore,
			EvalDrop:    drop,
			BestMoveSAN: p.bestMoveSAN(pos, evalBefore.BestMove()),
			Severity:    string(verdict.Severity),
		}

		expl, err := p.explainer.Explain(ctx, &coach.MistakeContext{
			PositionFEN: fenBefore,
			MoveSAN:     san,
			BestMoveSAN: b.BestMoveSAN,
			CPLoss:      drop,
			MateMissed:  verdict.MissedMate,
		})
		if err != nil {
			if !p.cfg.ContinueOnExplainError {
				return records, err
			}
			// Keep the record, skip the annotation.
			fmt.Fprintf(p.out, "warning: no explanation for %s: %v\n", san, err)
			b.Severity = ""
		} else {
			b.Motif = expl.Motif
			b.Explanation = expl.Text

			fmt.Fprintln(p.out, "\n--- Coach's Corner ---")
			fmt.Fprintf(p.out, "%s\n", b.Annotation())
			fmt.Fprintln(p.out, "----------------------")

			move.SetComment(b.Annotation())
		}

		rec := b.Record()
		if err := p.repo.Save(ctx, &rec); err != nil {
			return records, fmt.Errorf("save blunder: %w", err)
		}
		records = append(records, rec)
	}

	fmt.Fprintln(p.out, "\nAnalysis complete.")
	return records, nil
}

// bestMoveSAN converts the engine's UCI best move to SAN for the given
// position. The raw UCI string is the fallback when decoding fails.
func (p *Processor) bestMoveSAN(pos *chess.Position, bestUCI string) string {
	if bestUCI == "" {
		return ""
	}
	mv, err := chess.UCINotation{}.Decode(pos, bestUCI)
	if err != nil {
		return bestUCI
	}
	return chess.AlgebraicNotation{}.Encode(pos, mv)
}

// fullmoveNumber reads the fullmove counter from a FEN string.
func fullmoveNumber(fen string) int {
	fields := strings.Fields(fen)
	if len(fields) < 6 {
		return 1
	}
	n, err := strconv.Atoi(fields[5])
	if err != nil || n < 1 {
		return 1
	}
	return n
}

func tagOr(game *chess.Game, key, fallback string) string {
	if v := game.GetTagPair(key); v != "" {
		return v
	}
	return fallback
}
