package coach

import "github.com/abhisek/chesscoach/internal/llm"

// Motifs lists the tactical themes the coach may tag a mistake with.
var Motifs = []string{
	"Pin",
	"Skewer",
	"Fork",
	"DiscoveredAttack",
	"XRay",
	"Zwischenzug",
	"Overloading",
	"Clearance",
	"Interference",
	"HangingPiece",
	"Deflection",
	"BackRankWeakness",
	"Reloader",
	"None",
}

// Severities lists the severity labels the coach may return.
var Severities = []string{
	"Inaccuracy",
	"PositionalError",
	"MissedTactic",
	"Blunder",
	"MissedMate",
}

// ExplanationSchema defines the JSON schema for coaching responses.
var ExplanationSchema = &llm.Schema{
	Name:        "move-explanation",
	Description: "Tactical classification and explanation of a chess mistake",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"motif": map[string]any{
				"type":        "string",
				"enum":        toAny(Motifs),
				"description": "The single tactical theme that best explains the mistake, or None",
			},
			"severity": map[string]any{
				"type":        "string",
				"enum":        toAny(Severities),
				"description": "Costliness of the move based on centipawn loss and missed mates",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "Concise explanation of why the played move was weak and what made the engine's move better",
			},
		},
		"required":             []any{"motif", "severity", "explanation"},
		"additionalProperties": false,
	},
}

func toAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
