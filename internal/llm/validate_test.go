package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func testSchema() *Schema {
	return &Schema{
		Name:        "move-annotation",
		Description: "A tagged move",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"explanation": map[string]any{"type": "string"},
				"eval_drop":   map[string]any{"type": "integer", "minimum": 0},
				"motif":       map[string]any{"type": "string", "enum": []any{"Pin", "Fork", "None"}},
			},
			"required": []any{"explanation", "eval_drop"},
		},
	}
}

func TestValidate_ValidJSON(t *testing.T) {
	raw := json.RawMessage(`{"explanation":"drops the knight","eval_drop":310,"motif":"Fork"}`)
	err := Validate(testSchema(), raw)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidate_ValidWithoutOptional(t *testing.T) {
	raw := json.RawMessage(`{"explanation":"loses tempo","eval_drop":80}`)
	err := Validate(testSchema(), raw)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidate_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"explanation":"hangs a pawn"}`)
	err := Validate(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for missing required field")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidate_WrongType(t *testing.T) {
	raw := json.RawMessage(`{"explanation":"hangs a pawn","eval_drop":"large"}`)
	err := Validate(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for wrong type")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidate_InvalidEnum(t *testing.T) {
	raw := json.RawMessage(`{"explanation":"hangs a pawn","eval_drop":120,"motif":"Windmill"}`)
	err := Validate(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for invalid enum value")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidate_MalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{not json}`)
	err := Validate(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidate_EmptyResponse(t *testing.T) {
	raw := json.RawMessage(``)
	err := Validate(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for empty response")
	}
}

func TestValidate_NilSchema(t *testing.T) {
	raw := json.RawMessage(`{"anything":"goes"}`)
	err := Validate(nil, raw)
	if err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestValidate_NestedObjects(t *testing.T) {
	schema := &Schema{
		Name:        "test-nested",
		Description: "Nested test",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"move": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"san": map[string]any{"type": "string"},
					},
					"required": []any{"san"},
				},
				"line": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
			"required": []any{"move", "line"},
		},
	}

	valid := json.RawMessage(`{"move":{"san":"Qxf7+"},"line":["Qxf7+","Kxf7","Ng5+"]}`)
	if err := Validate(schema, valid); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	invalid := json.RawMessage(`{"move":{"san":"Qxf7+"},"line":[1,2,3]}`)
	if err := Validate(schema, invalid); err == nil {
		t.Fatal("expected error for wrong array item type")
	}
}
