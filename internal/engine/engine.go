package engine

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/freeeve/uci"
)

// Evaluator analyzes chess positions.
type Evaluator interface {
	// Evaluate analyzes the position given as a FEN string and returns
	// its score from White's perspective with the engine's best line.
	Evaluate(ctx context.Context, fen string) (*Evaluation, error)
	Close() error
}

// Config holds UCI engine settings.
type Config struct {
	// Path is the engine binary, e.g. "stockfish" or "/usr/bin/stockfish".
	Path    string
	Depth   int
	Hash    int
	Threads int
}

// DefaultConfig returns engine settings suitable for per-move game review.
func DefaultConfig() Config {
	return Config{
		Path:    "stockfish",
		Depth:   18,
		Hash:    128,
		Threads: 1,
	}
}

// UCIEvaluator drives a UCI engine subprocess. A single engine process
// is shared across evaluations; position load and query are paired
// under one lock so concurrent callers cannot interleave them.
type UCIEvaluator struct {
	mu     sync.Mutex
	engine *uci.Engine
	depth  int
	path   string
}

// New starts the engine process and applies the configured options.
func New(cfg Config) (*UCIEvaluator, error) {
	e, err := uci.NewEngine(cfg.Path)
	if err != nil {
		return nil, &ErrEngineUnavailable{Path: cfg.Path, Err: err}
	}

	err = e.SetOptions(uci.Options{
		MultiPV: 1,
		Hash:    cfg.Hash,
		Threads: cfg.Threads,
		Ponder:  false,
		OwnBook: false,
	})
	if err != nil {
		e.Close()
		return nil, &ErrEngineUnavailable{Path: cfg.Path, Err: err}
	}

	return &UCIEvaluator{
		engine: e,
		depth:  cfg.Depth,
		path:   cfg.Path,
	}, nil
}

// WithPosition loads the given FEN into the engine and runs fn while
// holding the engine lock. Queries inside fn are guaranteed to see the
// loaded position.
func (u *UCIEvaluator) WithPosition(fen string, fn func(*uci.Engine) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if err := u.engine.SetFEN(fen); err != nil {
		return &ErrEngineUnavailable{Path: u.path, Err: fmt.Errorf("set position: %w", err)}
	}
	return fn(u.engine)
}

func (u *UCIEvaluator) Evaluate(ctx context.Context, fen string) (*Evaluation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var eval *Evaluation
	err := u.WithPosition(fen, func(e *uci.Engine) error {
		results, err := e.GoDepth(u.depth, uci.HighestDepthOnly)
		if err != nil {
			return &ErrEngineUnavailable{Path: u.path, Err: err}
		}
		if len(results.Results) == 0 {
			return fmt.Errorf("engine returned no results for %q", fen)
		}

		best := results.Results[0]
		for _, r := range results.Results {
			if r.Depth > best.Depth {
				best = r
			}
		}

		eval = &Evaluation{
			Score:    normalizeScore(best.Score, best.Mate, fen),
			BestLine: best.BestMoves,
			Depth:    best.Depth,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return eval, nil
}

func (u *UCIEvaluator) Close() error {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.engine.Close()
	return nil
}

// normalizeScore converts a UCI score, which is reported from the side
// to move, to White's perspective.
func normalizeScore(score int, mate bool, fen string) Score {
	if !whiteToMove(fen) {
		score = -score
	}
	if mate {
		return Score{MateIn: score, IsMate: true}
	}
	return Score{CP: score}
}

// whiteToMove reads the active color field of a FEN string.
func whiteToMove(fen string) bool {
	fields := strings.Fields(fen)
	return len(fields) < 2 || fields[1] != "b"
}
