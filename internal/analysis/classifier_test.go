package analysis

import (
	"testing"

	"github.com/abhisek/chesscoach/internal/engine"
)

func TestSeverityBands(t *testing.T) {
	tests := []struct {
		drop int
		want Severity
	}{
		{50, SeverityInaccuracy},
		{99, SeverityInaccuracy},
		{100, SeverityPositionalError},
		{199, SeverityPositionalError},
		{200, SeverityMissedTactic},
		{299, SeverityMissedTactic},
		{300, SeverityBlunder},
		{1200, SeverityBlunder},
		{engine.MateCP * 2, SeverityBlunder},
	}

	for _, tt := range tests {
		if got := severityForDrop(tt.drop); got != tt.want {
			t.Errorf("severityForDrop(%d) = %s, want %s", tt.drop, got, tt.want)
		}
	}
}

func TestClassifyThreshold(t *testing.T) {
	c := NewClassifier(150, SideBoth)

	if v := c.Classify(true, 149, engine.Score{}, "e2e4", "d2d4"); v.Reportable {
		t.Fatal("149 below threshold 150 should not be reportable")
	}

	v := c.Classify(true, 150, engine.Score{}, "e2e4", "d2d4")
	if !v.Reportable {
		t.Fatal("150 at threshold should be reportable")
	}
	if v.Severity != SeverityPositionalError {
		t.Fatalf("Severity = %s, want PositionalError", v.Severity)
	}
}

func TestClassifyThresholdFloor(t *testing.T) {
	// A threshold below the floor is raised to it.
	c := NewClassifier(0, SideBoth)

	if v := c.Classify(true, 49, engine.Score{}, "e2e4", "d2d4"); v.Reportable {
		t.Fatal("49 is below the reporting floor")
	}
	if v := c.Classify(true, 50, engine.Score{}, "e2e4", "d2d4"); !v.Reportable {
		t.Fatal("50 meets the reporting floor")
	}
}

func TestClassifySideFilter(t *testing.T) {
	c := NewClassifier(150, SideBlack)

	if v := c.Classify(true, 400, engine.Score{}, "e2e4", "d2d4"); v.Reportable {
		t.Fatal("white move should be filtered out")
	}
	if v := c.Classify(false, 400, engine.Score{}, "e7e5", "d7d5"); !v.Reportable {
		t.Fatal("black move should pass the filter")
	}
}

func TestClassifyMissedMate(t *testing.T) {
	mateForWhite := engine.Score{MateIn: 2, IsMate: true}

	// Deviating from the mating line is a missed mate.
	v := (&Classifier{ThresholdCP: 150, Side: SideBoth}).
		Classify(true, 800, mateForWhite, "d1d2", "h5f7")
	if !v.Reportable || !v.MissedMate {
		t.Fatalf("expected a reportable missed mate, got %+v", v)
	}
	if v.Severity != SeverityMissedMate {
		t.Fatalf("Severity = %s, want MissedMate", v.Severity)
	}

	// Playing the mating move keeps the band severity.
	v = (&Classifier{ThresholdCP: 150, Side: SideBoth}).
		Classify(true, 200, mateForWhite, "h5f7", "h5f7")
	if v.MissedMate {
		t.Fatal("following the mating line is not a missed mate")
	}
	if v.Severity != SeverityMissedTactic {
		t.Fatalf("Severity = %s, want MissedTactic", v.Severity)
	}

	// A mate for the opponent does not trigger the override.
	mateForBlack := engine.Score{MateIn: -2, IsMate: true}
	v = (&Classifier{ThresholdCP: 150, Side: SideBoth}).
		Classify(true, 400, mateForBlack, "d1d2", "h5f7")
	if v.MissedMate {
		t.Fatal("opponent's mate is not the mover's missed mate")
	}
}

func TestClassifyMissedMateStillNeedsThreshold(t *testing.T) {
	mateForWhite := engine.Score{MateIn: 1, IsMate: true}
	c := NewClassifier(150, SideBoth)

	// Below threshold nothing is reported, mate or not.
	if v := c.Classify(true, 40, mateForWhite, "d1d2", "h5f7"); v.Reportable {
		t.Fatal("below-threshold move should not be reportable")
	}
}

func TestSideAdmits(t *testing.T) {
	if !SideBoth.Admits(true) || !SideBoth.Admits(false) {
		t.Fatal("both should admit either color")
	}
	if !SideWhite.Admits(true) || SideWhite.Admits(false) {
		t.Fatal("white filter wrong")
	}
	if SideBlack.Admits(true) || !SideBlack.Admits(false) {
		t.Fatal("black filter wrong")
	}
}

func TestSideValid(t *testing.T) {
	for _, s := range []Side{SideWhite, SideBlack, SideBoth} {
		if !s.Valid() {
			t.Fatalf("%s should be valid", s)
		}
	}
	if Side("all").Valid() {
		t.Fatal("unknown side value should be invalid")
	}
}

func TestAnnotation(t *testing.T) {
	b := &Blunder{
		Severity:    "Blunder",
		Motif:       "HangingPiece",
		Explanation: "The knight is lost.",
	}
	want := "[COACH] Blunder (HangingPiece): The knight is lost."
	if got := b.Annotation(); got != want {
		t.Fatalf("Annotation() = %q, want %q", got, want)
	}

	// Empty motif renders as None.
	b.Motif = ""
	want = "[COACH] Blunder (None): The knight is lost."
	if got := b.Annotation(); got != want {
		t.Fatalf("Annotation() = %q, want %q", got, want)
	}
}
