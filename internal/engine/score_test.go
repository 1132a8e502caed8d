package engine

import (
	"context"
	"testing"
)

func TestScoreCentipawns(t *testing.T) {
	tests := []struct {
		name  string
		score Score
		want  int
	}{
		{"plain cp", Score{CP: 120}, 120},
		{"negative cp", Score{CP: -340}, -340},
		{"mate for white clamps high", Score{MateIn: 3, IsMate: true}, MateCP},
		{"mate for black clamps low", Score{MateIn: -2, IsMate: true}, -MateCP},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.score.Centipawns(); got != tt.want {
				t.Fatalf("Centipawns() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestScorePOV(t *testing.T) {
	s := Score{CP: 150}
	if got := s.POV(true); got != 150 {
		t.Fatalf("white POV = %d, want 150", got)
	}
	if got := s.POV(false); got != -150 {
		t.Fatalf("black POV = %d, want -150", got)
	}

	mate := Score{MateIn: -4, IsMate: true}
	if got := mate.POV(false); got != MateCP {
		t.Fatalf("black POV of mate for black = %d, want %d", got, MateCP)
	}
}

func TestScoreMateFor(t *testing.T) {
	if !(Score{MateIn: 2, IsMate: true}).MateFor(true) {
		t.Fatal("mate in +2 should favor White")
	}
	if (Score{MateIn: 2, IsMate: true}).MateFor(false) {
		t.Fatal("mate in +2 should not favor Black")
	}
	if !(Score{MateIn: -3, IsMate: true}).MateFor(false) {
		t.Fatal("mate in -3 should favor Black")
	}
	if (Score{CP: 900}).MateFor(true) {
		t.Fatal("a non-mate score is never a forced mate")
	}
}

func TestScoreString(t *testing.T) {
	if got := (Score{CP: 150}).String(); got != "+1.50" {
		t.Fatalf("String() = %q, want +1.50", got)
	}
	if got := (Score{MateIn: 3, IsMate: true}).String(); got != "#3" {
		t.Fatalf("String() = %q, want #3", got)
	}
}

func TestNormalizeScore(t *testing.T) {
	whiteFEN := "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	blackFEN := "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1"

	// Side-to-move score passes through for White.
	s := normalizeScore(35, false, whiteFEN)
	if s.CP != 35 {
		t.Fatalf("white to move: CP = %d, want 35", s.CP)
	}

	// Black's advantage is negated into White's perspective.
	s = normalizeScore(50, false, blackFEN)
	if s.CP != -50 {
		t.Fatalf("black to move: CP = %d, want -50", s.CP)
	}

	// Mate distances flip sign the same way.
	s = normalizeScore(2, true, blackFEN)
	if !s.IsMate || s.MateIn != -2 {
		t.Fatalf("black mating: got %+v, want MateIn -2", s)
	}
}

func TestEvaluationBestMove(t *testing.T) {
	e := &Evaluation{BestLine: []string{"e2e4", "e7e5"}}
	if got := e.BestMove(); got != "e2e4" {
		t.Fatalf("BestMove() = %q, want e2e4", got)
	}
	empty := &Evaluation{}
	if got := empty.BestMove(); got != "" {
		t.Fatalf("BestMove() on empty line = %q, want empty", got)
	}
}

func TestMockEvaluator(t *testing.T) {
	m := NewMockEvaluator()
	fen := "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	m.SetCP(fen, 30, "e2e4")

	eval, err := m.Evaluate(context.Background(), fen)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if eval.Score.CP != 30 {
		t.Fatalf("CP = %d, want 30", eval.Score.CP)
	}
	if eval.BestMove() != "e2e4" {
		t.Fatalf("BestMove() = %q, want e2e4", eval.BestMove())
	}

	if _, err := m.Evaluate(context.Background(), "unknown"); err == nil {
		t.Fatal("expected error for unregistered FEN")
	}

	if len(m.Calls) != 2 {
		t.Fatalf("expected 2 recorded calls, got %d", len(m.Calls))
	}
}
