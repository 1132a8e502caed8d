package analysis

import "github.com/abhisek/chesscoach/internal/engine"

// Side selects which player's moves are analyzed.
type Side string

const (
	SideWhite Side = "white"
	SideBlack Side = "black"
	SideBoth  Side = "both"
)

// Admits reports whether a move by the given color passes the filter.
func (s Side) Admits(moverWhite bool) bool {
	switch s {
	case SideWhite:
		return moverWhite
	case SideBlack:
		return !moverWhite
	default:
		return true
	}
}

// Valid reports whether s is one of the recognized filter values.
func (s Side) Valid() bool {
	return s == SideWhite || s == SideBlack || s == SideBoth
}

// Severity labels a mistake by its costliness.
type Severity string

const (
	SeverityInaccuracy      Severity = "Inaccuracy"
	SeverityPositionalError Severity = "PositionalError"
	SeverityMissedTactic    Severity = "MissedTactic"
	SeverityBlunder         Severity = "Blunder"
	SeverityMissedMate      Severity = "MissedMate"
)

// MinReportableDrop is the floor below which an eval drop is never a
// mistake, regardless of the configured threshold.
const MinReportableDrop = 50

// severityForDrop maps a centipawn drop to its band. Bands have closed
// lower bounds: exactly 100 is a PositionalError, not an Inaccuracy.
func severityForDrop(drop int) Severity {
	switch {
	case drop >= 300:
		return SeverityBlunder
	case drop >= 200:
		return SeverityMissedTactic
	case drop >= 100:
		return SeverityPositionalError
	default:
		return SeverityInaccuracy
	}
}

// Classifier decides which moves are reportable mistakes and assigns
// their severity.
type Classifier struct {
	// ThresholdCP is the minimum eval drop to report. Values below
	// MinReportableDrop are raised to it.
	ThresholdCP int
	Side        Side
}

// NewClassifier creates a classifier with the given threshold and side filter.
func NewClassifier(thresholdCP int, side Side) *Classifier {
	return &Classifier{ThresholdCP: thresholdCP, Side: side}
}

// Verdict is the classification of a single move.
type Verdict struct {
	Reportable bool
	Severity   Severity
	MissedMate bool
	EvalDrop   int
}

// Classify judges one move. evalDrop is the centipawn loss from the
// mover's perspective. before is the evaluation of the position prior
// to the move; playedUCI and bestUCI are used to detect missed mates.
func (c *Classifier) Classify(moverWhite bool, evalDrop int, before engine.Score, playedUCI, bestUCI string) Verdict {
	threshold := c.ThresholdCP
	if threshold < MinReportableDrop {
		threshold = MinReportableDrop
	}

	v := Verdict{EvalDrop: evalDrop}
	if !c.Side.Admits(moverWhite) || evalDrop < threshold {
		return v
	}
	v.Reportable = true
	v.Severity = severityForDrop(evalDrop)

	// A mover who had a forced mate and deviated from the mating line
	// missed the mate, whatever the centipawn arithmetic says.
	if before.MateFor(moverWhite) && bestUCI != "" && playedUCI != bestUCI {
		v.MissedMate = true
		v.Severity = SeverityMissedMate
	}

	return v
}
