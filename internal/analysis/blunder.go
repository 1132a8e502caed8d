package analysis

import (
	"fmt"

	"github.com/abhisek/chesscoach/internal/store"
)

// Blunder is one reportable mistake found during analysis.
type Blunder struct {
	Source      string
	MoveNumber  int
	PlayerColor string
	MoveSAN     string
	PositionFEN string
	EvalDrop    int
	BestMoveSAN string
	Motif       string
	Severity    string
	Explanation string
}

// Annotation renders the PGN comment attached to the move. An empty
// motif renders as None so the comment shape stays uniform.
func (b *Blunder) Annotation() string {
	motif := b.Motif
	if motif == "" {
		motif = "None"
	}
	return fmt.Sprintf("[COACH] %s (%s): %s", b.Severity, motif, b.Explanation)
}

// Record converts the blunder to its persisted form.
func (b *Blunder) Record() store.BlunderRecord {
	return store.BlunderRecord{
		Source:      b.Source,
		MoveNumber:  b.MoveNumber,
		PlayerColor: b.PlayerColor,
		MoveSAN:     b.MoveSAN,
		PositionFEN: b.PositionFEN,
		EvalDrop:    b.EvalDrop,
		BestMoveSAN: b.BestMoveSAN,
		Motif:       b.Motif,
		Severity:    b.Severity,
		Explanation: b.Explanation,
	}
}

func colorName(white bool) string {
	if white {
		return "White"
	}
	return "Black"
}
