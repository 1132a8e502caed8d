package coach

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"text/template"

	"github.com/abhisek/chesscoach/internal/llm"
)

// ExplainerConfig holds configuration for the LLM explainer.
type ExplainerConfig struct {
	MaxTokens   int
	Temperature float64
}

// DefaultExplainerConfig returns sensible defaults.
func DefaultExplainerConfig() ExplainerConfig {
	return ExplainerConfig{
		MaxTokens:   512,
		Temperature: 0.2,
	}
}

// Explainer produces coaching explanations for mistakes via an LLM.
type Explainer struct {
	provider llm.Provider
	cfg      ExplainerConfig
}

// NewExplainer creates an LLM-backed explainer.
func NewExplainer(provider llm.Provider, cfg ExplainerConfig) *Explainer {
	return &Explainer{provider: provider, cfg: cfg}
}

// MistakeContext is the input for a coaching explanation.
type MistakeContext struct {
	PositionFEN string // position before the mistake
	MoveSAN     string
	BestMoveSAN string
	CPLoss      int
	MateMissed  bool
}

// Explanation is the coach's verdict on a mistake. Motif and Severity
// are empty when the model returned values outside the known sets or
// the payload could not be decoded; Text is always populated.
type Explanation struct {
	Motif    string
	Severity string
	Text     string
}

// ErrExplanationUnavailable indicates no explanation could be obtained
// for a mistake. Callers decide whether to continue without one.
type ErrExplanationUnavailable struct {
	Err error
}

func (e *ErrExplanationUnavailable) Error() string {
	return fmt.Sprintf("explanation unavailable: %v", e.Err)
}

func (e *ErrExplanationUnavailable) Unwrap() error {
	return e.Err
}

// Explain asks the LLM to classify and explain a mistake.
func (e *Explainer) Explain(ctx context.Context, mc *MistakeContext) (*Explanation, error) {
	ctx = llm.WithPurpose(ctx, "explain-blunder")

	userMsg, err := buildMistakeMessage(mc)
	if err != nil {
		return nil, fmt.Errorf("build explanation prompt: %w", err)
	}

	llmReq := llm.Request{
		System: explainerSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      ExplanationSchema,
		MaxTokens:   e.cfg.MaxTokens,
		Temperature: e.cfg.Temperature,
	}

	resp, err := e.provider.Generate(ctx, llmReq)
	if err != nil {
		// Schema validation failures still carry the raw content. A model
		// that wrapped valid JSON in a code fence is recoverable.
		var invErr *llm.ErrInvalidResponse
		if errors.As(err, &invErr) && len(invErr.Content) > 0 {
			return decodePayload(string(invErr.Content)), nil
		}
		return nil, &ErrExplanationUnavailable{Err: err}
	}

	return decodePayload(string(resp.Content)), nil
}

// explanationOutput is the raw LLM response.
type explanationOutput struct {
	Motif       string `json:"motif"`
	Severity    string `json:"severity"`
	Explanation string `json:"explanation"`
}

// decodePayload tolerantly decodes model output into an Explanation.
// Unknown motif or severity values are dropped rather than propagated,
// and undecodable payloads degrade to a plain-text explanation.
func decodePayload(content string) *Explanation {
	payload := ExtractPayload(content)

	var raw explanationOutput
	if err := json.Unmarshal([]byte(payload), &raw); err != nil || raw.Explanation == "" {
		return &Explanation{Text: strings.TrimSpace(content)}
	}

	out := &Explanation{Text: raw.Explanation}
	if slices.Contains(Motifs, raw.Motif) {
		out.Motif = raw.Motif
	}
	if slices.Contains(Severities, raw.Severity) {
		out.Severity = raw.Severity
	}
	return out
}

const explainerSystemPrompt = `You are a chess coach analyzing a single move. Provide a JSON response with three keys: "motif", "severity", and "explanation".

1. motif: Choose the ONE tactical theme that best explains why the move is a mistake.
   Options: Pin, Skewer, Fork, DiscoveredAttack, XRay, Zwischenzug, Overloading, Clearance, Interference, HangingPiece, Deflection, BackRankWeakness, Reloader, None

2. severity: Classify the costliness of the move based on the centipawn loss and whether a mate was missed.
   Options: Inaccuracy (50-99cp), PositionalError (100-199cp), MissedTactic (200-299cp), Blunder (300+ cp), MissedMate

3. explanation: Provide a clear, concise explanation for a human player. Describe why the player's move was weak and what made the engine's suggested move so much better. Focus on the most critical tactical or strategic ideas. Do not ask questions.

Respond with STRICT JSON only. No introductory text, code fences, or extra keys.`

var mistakeUserTemplate = template.Must(template.New("mistake").Parse(`Position (FEN, before the move): {{.PositionFEN}}
Player's move: {{.MoveSAN}}
Engine's best move: {{.BestMoveSAN}}
Centipawn loss: {{.CPLoss}}
Was a forced mate missed? {{if .MateMissed}}Yes{{else}}No{{end}}`))

func buildMistakeMessage(mc *MistakeContext) (string, error) {
	var buf bytes.Buffer
	if err := mistakeUserTemplate.Execute(&buf, mc); err != nil {
		return "", err
	}
	return buf.String(), nil
}
