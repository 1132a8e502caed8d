package engine

import "fmt"

// MateCP is the centipawn value a forced mate clamps to. Eval deltas
// involving mate scores stay finite and always land in the top
// severity band.
const MateCP = 30000

// Score is an engine evaluation normalized to White's perspective.
// Positive favors White, negative favors Black. When IsMate is set,
// MateIn holds the signed distance to mate and CP is unused.
type Score struct {
	CP     int
	MateIn int
	IsMate bool
}

// Centipawns returns the score as a finite centipawn value, clamping
// forced mates to ±MateCP.
func (s Score) Centipawns() int {
	if !s.IsMate {
		return s.CP
	}
	if s.MateIn >= 0 {
		return MateCP
	}
	return -MateCP
}

// POV returns the centipawn value from the mover's perspective:
// unchanged for White, negated for Black.
func (s Score) POV(white bool) int {
	cp := s.Centipawns()
	if white {
		return cp
	}
	return -cp
}

// MateFor reports whether the position is a forced mate in favor of
// the given side.
func (s Score) MateFor(white bool) bool {
	if !s.IsMate {
		return false
	}
	if white {
		return s.MateIn > 0
	}
	return s.MateIn < 0
}

func (s Score) String() string {
	if s.IsMate {
		return fmt.Sprintf("#%d", s.MateIn)
	}
	return fmt.Sprintf("%+.2f", float64(s.CP)/100)
}

// Evaluation is the result of analyzing a single position.
type Evaluation struct {
	Score Score
	// BestLine is the engine's principal variation in UCI move notation,
	// starting from the analyzed position.
	BestLine []string
	Depth    int
}

// BestMove returns the first move of the principal variation, or ""
// if the engine produced no line (terminal positions).
func (e *Evaluation) BestMove() string {
	if len(e.BestLine) == 0 {
		return ""
	}
	return e.BestLine[0]
}
