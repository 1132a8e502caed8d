package analysis

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/corentings/chess/v2"

	"github.com/abhisek/chesscoach/internal/coach"
	"github.com/abhisek/chesscoach/internal/engine"
	"github.com/abhisek/chesscoach/internal/store"
)

// memRepo is an in-memory BlunderRepo.
type memRepo struct {
	saved []store.BlunderRecord
	err   error
}

func (r *memRepo) Save(_ context.Context, rec *store.BlunderRecord) error {
	if r.err != nil {
		return r.err
	}
	r.saved = append(r.saved, *rec)
	return nil
}

func (r *memRepo) BySource(_ context.Context, source string) ([]*store.BlunderRecord, error) {
	var out []*store.BlunderRecord
	for i := range r.saved {
		if r.saved[i].Source == source {
			out = append(out, &r.saved[i])
		}
	}
	return out, nil
}

func (r *memRepo) DeleteBySource(_ context.Context, _ string) (int, error) {
	return 0, nil
}

// stubExplainer returns one canned explanation or error for every call.
type stubExplainer struct {
	expl  *coach.Explanation
	err   error
	calls []*coach.MistakeContext
}

func (s *stubExplainer) Explain(_ context.Context, mc *coach.MistakeContext) (*coach.Explanation, error) {
	s.calls = append(s.calls, mc)
	if s.err != nil {
		return nil, s.err
	}
	return s.expl, nil
}

func parseGame(t *testing.T, pgn string) *chess.Game {
	t.Helper()
	opt, err := chess.PGN(strings.NewReader(pgn))
	if err != nil {
		t.Fatalf("parse PGN: %v", err)
	}
	return chess.NewGame(opt)
}

// registerEvals assigns an evaluation to each position of the game's
// main line in order. A nil entry leaves the position unregistered so
// an unexpected engine call fails the test.
func registerEvals(t *testing.T, mock *engine.MockEvaluator, game *chess.Game, evals []*engine.Evaluation) {
	t.Helper()
	positions := game.Positions()
	if len(positions) != len(evals) {
		t.Fatalf("got %d positions, test provides %d evals", len(positions), len(evals))
	}
	for i, pos := range positions {
		if evals[i] != nil {
			mock.Set(pos.String(), evals[i])
		}
	}
}

func cp(v int, line ...string) *engine.Evaluation {
	return &engine.Evaluation{Score: engine.Score{CP: v}, BestLine: line}
}

func mate(in int, line ...string) *engine.Evaluation {
	return &engine.Evaluation{Score: engine.Score{MateIn: in, IsMate: true}, BestLine: line}
}

const scholarsMate = `[White "Gary"]
[Black "Bobby"]

1. e4 e5 2. Qh5 Nc6 3. Bc4 Nf6 4. Qxf7# 1-0`

func TestAnalyzeGameFindsBlunder(t *testing.T) {
	game := parseGame(t, scholarsMate)
	eval := engine.NewMockEvaluator()
	registerEvals(t, eval, game, []*engine.Evaluation{
		cp(30, "e2e4"),  // start
		cp(30, "e7e5"),  // after e4
		cp(25, "g1f3"),  // after e5
		cp(20, "g8f6"),  // after Qh5
		cp(30, "f1c4"),  // after Nc6
		cp(30, "d7d6"),  // after Bc4, Black's last safe moment
		mate(1, "h5f7"), // after Nf6, White mates
		nil,             // checkmate, never evaluated
	})

	repo := &memRepo{}
	expl := &stubExplainer{expl: &coach.Explanation{Motif: "HangingPiece", Text: "Nf6 allows Qxf7 mate."}}
	var out bytes.Buffer

	p := NewProcessor(eval, expl, repo, DefaultConfig(), &out)
	records, err := p.AnalyzeGame(context.Background(), game, "game.pgn")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	rec := records[0]
	if rec.PlayerColor != "Black" || rec.MoveSAN != "Nf6" {
		t.Fatalf("unexpected record: %+v", rec)
	}
	if rec.MoveNumber != 3 {
		t.Fatalf("MoveNumber = %d, want 3", rec.MoveNumber)
	}
	if rec.Severity != "Blunder" {
		t.Fatalf("Severity = %q, want Blunder", rec.Severity)
	}
	if rec.BestMoveSAN != "d6" {
		t.Fatalf("BestMoveSAN = %q, want d6", rec.BestMoveSAN)
	}
	if rec.Explanation != "Nf6 allows Qxf7 mate." {
		t.Fatalf("Explanation = %q", rec.Explanation)
	}
	if len(repo.saved) != 1 {
		t.Fatalf("expected 1 saved record, got %d", len(repo.saved))
	}

	console := out.String()
	if !strings.Contains(console, "*** MISTAKE by Black on move Nf6!") {
		t.Fatalf("missing mistake line in console output:\n%s", console)
	}
	if !strings.Contains(console, "Analysis complete.") {
		t.Fatal("missing completion line")
	}
}

func TestAnalyzeGameAnnotatesMove(t *testing.T) {
	game := parseGame(t, scholarsMate)
	eval := engine.NewMockEvaluator()
	registerEvals(t, eval, game, []*engine.Evaluation{
		cp(30), cp(30), cp(25), cp(20), cp(30), cp(30, "d7d6"), mate(1, "h5f7"), nil,
	})

	expl := &stubExplainer{expl: &coach.Explanation{Motif: "HangingPiece", Text: "Nf6 allows Qxf7 mate."}}
	p := NewProcessor(eval, expl, &memRepo{}, DefaultConfig(), &bytes.Buffer{})

	if _, err := p.AnalyzeGame(context.Background(), game, "game.pgn"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	pgnOut := game.String()
	want := "[COACH] Blunder (HangingPiece): Nf6 allows Qxf7 mate."
	if !strings.Contains(pgnOut, want) {
		t.Fatalf("annotated PGN missing %q:\n%s", want, pgnOut)
	}

	// The annotation survives a round trip through the parser.
	reparsed := parseGame(t, pgnOut)
	if !strings.Contains(reparsed.String(), "[COACH]") {
		t.Fatal("annotation lost on PGN round trip")
	}
}

func TestAnalyzeGameSideFilter(t *testing.T) {
	game := parseGame(t, scholarsMate)
	eval := engine.NewMockEvaluator()
	registerEvals(t, eval, game, []*engine.Evaluation{
		cp(30), cp(30), cp(25), cp(20), cp(30), cp(30, "d7d6"), mate(1, "h5f7"), nil,
	})

	cfg := DefaultConfig()
	cfg.Side = SideWhite
	var out bytes.Buffer
	expl := &stubExplainer{expl: &coach.Explanation{Text: "x"}}

	p := NewProcessor(eval, expl, &memRepo{}, cfg, &out)
	records, err := p.AnalyzeGame(context.Background(), game, "game.pgn")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(records) != 0 {
		t.Fatalf("black's blunder should be filtered, got %d records", len(records))
	}
	if strings.Count(out.String(), "*** MISTAKE") != 0 {
		t.Fatal("no mistake lines expected with the white filter")
	}
	if len(expl.calls) != 0 {
		t.Fatal("explainer should not be called for filtered moves")
	}
}

func TestAnalyzeGameMissedMate(t *testing.T) {
	// White has mate in one and retreats the queen instead.
	game := parseGame(t, `1. e4 e5 2. Qh5 Nc6 3. Bc4 Nf6 4. Qd1 *`)
	eval := engine.NewMockEvaluator()
	registerEvals(t, eval, game, []*engine.Evaluation{
		cp(30), cp(30), cp(25), cp(20), cp(30), cp(30, "d7d6"),
		mate(1, "h5f7"), // before Qd1, White to move and mate
		cp(0, "g8e4"),   // after Qd1
	})

	expl := &stubExplainer{expl: &coach.Explanation{Motif: "None", Text: "Qxf7 was mate."}}
	p := NewProcessor(eval, expl, &memRepo{}, DefaultConfig(), &bytes.Buffer{})

	records, err := p.AnalyzeGame(context.Background(), game, "game.pgn")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Black's Nf6 and White's Qd1 are both reportable here.
	var missed *store.BlunderRecord
	for i := range records {
		if records[i].MoveSAN == "Qd1" {
			missed = &records[i]
		}
	}
	if missed == nil {
		t.Fatalf("no record for Qd1 in %+v", records)
	}
	if missed.Severity != "MissedMate" {
		t.Fatalf("Severity = %q, want MissedMate", missed.Severity)
	}
	if missed.BestMoveSAN != "Qxf7#" {
		t.Fatalf("BestMoveSAN = %q, want Qxf7#", missed.BestMoveSAN)
	}

	// The explainer saw the missed-mate flag.
	var saw bool
	for _, mc := range expl.calls {
		if mc.MoveSAN == "Qd1" && mc.MateMissed {
			saw = true
		}
	}
	if !saw {
		t.Fatal("explainer never saw MateMissed for Qd1")
	}
}

func TestAnalyzeGameExplainErrorContinues(t *testing.T) {
	game := parseGame(t, scholarsMate)
	eval := engine.NewMockEvaluator()
	registerEvals(t, eval, game, []*engine.Evaluation{
		cp(30), cp(30), cp(25), cp(20), cp(30), cp(30, "d7d6"), mate(1, "h5f7"), nil,
	})

	repo := &memRepo{}
	expl := &stubExplainer{err: &coach.ErrExplanationUnavailable{Err: errors.New("llm down")}}
	var out bytes.Buffer

	p := NewProcessor(eval, expl, repo, DefaultConfig(), &out)
	records, err := p.AnalyzeGame(context.Background(), game, "game.pgn")
	if err != nil {
		t.Fatalf("run should continue past explanation failures: %v", err)
	}

	if len(records) != 1 {
		t.Fatalf("expected 1 tag-less record, got %d", len(records))
	}
	rec := records[0]
	if rec.Severity != "" || rec.Motif != "" || rec.Explanation != "" {
		t.Fatalf("expected a tag-less record, got %+v", rec)
	}
	if strings.Contains(game.String(), "[COACH]") {
		t.Fatal("failed explanation must not annotate the move")
	}
	if !strings.Contains(out.String(), "warning:") {
		t.Fatal("expected a warning on the console")
	}
}

func TestAnalyzeGameExplainErrorAborts(t *testing.T) {
	game := parseGame(t, scholarsMate)
	eval := engine.NewMockEvaluator()
	registerEvals(t, eval, game, []*engine.Evaluation{
		cp(30), cp(30), cp(25), cp(20), cp(30), cp(30, "d7d6"), mate(1, "h5f7"), nil,
	})

	cfg := DefaultConfig()
	cfg.ContinueOnExplainError = false
	expl := &stubExplainer{err: &coach.ErrExplanationUnavailable{Err: errors.New("llm down")}}

	p := NewProcessor(eval, expl, &memRepo{}, cfg, &bytes.Buffer{})
	_, err := p.AnalyzeGame(context.Background(), game, "game.pgn")
	if err == nil {
		t.Fatal("expected the run to abort")
	}
	var unavail *coach.ErrExplanationUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrExplanationUnavailable, got %T", err)
	}
}

func TestAnalyzeGameEngineErrorAborts(t *testing.T) {
	game := parseGame(t, scholarsMate)
	eval := engine.NewMockEvaluator()
	eval.Err = &engine.ErrEngineUnavailable{Path: "stockfish", Err: errors.New("exec not found")}

	p := NewProcessor(eval, &stubExplainer{}, &memRepo{}, DefaultConfig(), &bytes.Buffer{})
	_, err := p.AnalyzeGame(context.Background(), game, "game.pgn")
	if err == nil {
		t.Fatal("expected engine failure to abort the run")
	}
	var unavail *engine.ErrEngineUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrEngineUnavailable, got %T", err)
	}
}

func TestAnalyzeGameStorageErrorAborts(t *testing.T) {
	game := parseGame(t, scholarsMate)
	eval := engine.NewMockEvaluator()
	registerEvals(t, eval, game, []*engine.Evaluation{
		cp(30), cp(30), cp(25), cp(20), cp(30), cp(30, "d7d6"), mate(1, "h5f7"), nil,
	})

	repo := &memRepo{err: errors.New("disk full")}
	expl := &stubExplainer{expl: &coach.Explanation{Text: "x"}}

	p := NewProcessor(eval, expl, repo, DefaultConfig(), &bytes.Buffer{})
	_, err := p.AnalyzeGame(context.Background(), game, "game.pgn")
	if err == nil {
		t.Fatal("expected storage failure to abort the run")
	}
	// The annotation set before the failed save stays in place.
	if !strings.Contains(game.String(), "[COACH]") {
		t.Fatal("annotation should not be rolled back")
	}
}

func TestAnalyzeGameQuietGameNoRecords(t *testing.T) {
	game := parseGame(t, `1. e4 e5 2. Nf3 Nc6 *`)
	eval := engine.NewMockEvaluator()
	registerEvals(t, eval, game, []*engine.Evaluation{
		cp(30), cp(30), cp(25), cp(30), cp(25),
	})

	expl := &stubExplainer{}
	var out bytes.Buffer
	p := NewProcessor(eval, expl, &memRepo{}, DefaultConfig(), &out)

	records, err := p.AnalyzeGame(context.Background(), game, "game.pgn")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected no records, got %d", len(records))
	}
	if len(expl.calls) != 0 {
		t.Fatal("explainer should never run on a quiet game")
	}
	if !strings.Contains(out.String(), "1. e4") {
		t.Fatal("expected the moves echoed to the console")
	}
}

func TestFullmoveNumber(t *testing.T) {
	if n := fullmoveNumber("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"); n != 1 {
		t.Fatalf("got %d, want 1", n)
	}
	if n := fullmoveNumber("8/8/8/8/8/8/8/K6k b - - 10 37"); n != 37 {
		t.Fatalf("got %d, want 37", n)
	}
	if n := fullmoveNumber("not a fen"); n != 1 {
		t.Fatalf("malformed FEN should default to 1, got %d", n)
	}
}
