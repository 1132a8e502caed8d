package coach

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/chesscoach/internal/llm"
)

func testMistake() *MistakeContext {
	return &MistakeContext{
		PositionFEN: "r1bqkbnr/pppp1ppp/2n5/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R b KQkq - 3 3",
		MoveSAN:     "Nd4",
		BestMoveSAN: "Nf6",
		CPLoss:      320,
		MateMissed:  false,
	}
}

func TestExplain_ValidResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"motif":"HangingPiece","severity":"Blunder","explanation":"Nd4 drops the knight to Nxe5."}`),
	})
	e := NewExplainer(mock, DefaultExplainerConfig())

	got, err := e.Explain(context.Background(), testMistake())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Motif != "HangingPiece" {
		t.Fatalf("Motif = %q, want HangingPiece", got.Motif)
	}
	if got.Severity != "Blunder" {
		t.Fatalf("Severity = %q, want Blunder", got.Severity)
	}
	if got.Text != "Nd4 drops the knight to Nxe5." {
		t.Fatalf("Text = %q", got.Text)
	}
}

func TestExplain_SendsSchemaAndContext(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"motif":"None","severity":"Inaccuracy","explanation":"Slightly passive."}`),
	})
	e := NewExplainer(mock, DefaultExplainerConfig())

	if _, err := e.Explain(context.Background(), testMistake()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := mock.Calls[0]
	if req.Schema != ExplanationSchema {
		t.Fatal("expected the explanation schema on the request")
	}
	if req.System == "" {
		t.Fatal("expected a system prompt")
	}
	msg := req.Messages[0].Content
	for _, want := range []string{"Nd4", "Nf6", "320", "No"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("user message missing %q: %s", want, msg)
		}
	}
}

func TestExplain_UnknownMotifDropped(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"motif":"Windmill","severity":"Catastrophe","explanation":"Loses material."}`),
	})
	e := NewExplainer(mock, DefaultExplainerConfig())

	got, err := e.Explain(context.Background(), testMistake())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Motif != "" {
		t.Fatalf("unknown motif should be dropped, got %q", got.Motif)
	}
	if got.Severity != "" {
		t.Fatalf("unknown severity should be dropped, got %q", got.Severity)
	}
	if got.Text != "Loses material." {
		t.Fatalf("Text = %q", got.Text)
	}
}

func TestExplain_RecoversFencedPayload(t *testing.T) {
	fenced := "```json\n{\"motif\":\"Fork\",\"severity\":\"MissedTactic\",\"explanation\":\"Nxe5 wins a pawn and forks.\"}\n```"
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrInvalidResponse{
			Content: json.RawMessage(fenced),
			Err:     errors.New("schema validation failed"),
		},
	})
	e := NewExplainer(mock, DefaultExplainerConfig())

	got, err := e.Explain(context.Background(), testMistake())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Motif != "Fork" {
		t.Fatalf("Motif = %q, want Fork", got.Motif)
	}
	if got.Text != "Nxe5 wins a pawn and forks." {
		t.Fatalf("Text = %q", got.Text)
	}
}

func TestExplain_MalformedDegradesToRawText(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrInvalidResponse{
			Content: json.RawMessage(`The move simply loses a piece.`),
			Err:     errors.New("not json"),
		},
	})
	e := NewExplainer(mock, DefaultExplainerConfig())

	got, err := e.Explain(context.Background(), testMistake())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Motif != "" || got.Severity != "" {
		t.Fatalf("expected no tags on degraded payload, got %+v", got)
	}
	if got.Text != "The move simply loses a piece." {
		t.Fatalf("Text = %q", got.Text)
	}
}

func TestExplain_ProviderDownIsUnavailable(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("connection refused")},
	})
	e := NewExplainer(mock, DefaultExplainerConfig())

	_, err := e.Explain(context.Background(), testMistake())
	if err == nil {
		t.Fatal("expected error")
	}
	var unavail *ErrExplanationUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrExplanationUnavailable, got: %T", err)
	}
}
