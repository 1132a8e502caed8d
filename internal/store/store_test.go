package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testRecord(source string, moveNumber int, color string) *BlunderRecord {
	return &BlunderRecord{
		Source:      source,
		MoveNumber:  moveNumber,
		PlayerColor: color,
		MoveSAN:     "Qxb2",
		PositionFEN: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		EvalDrop:    320,
		BestMoveSAN: "Nf3",
		Motif:       "HangingPiece",
		Severity:    "Blunder",
		Explanation: "The queen is lost after the capture.",
	}
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only checked with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestBlunderSaveAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.BlunderRepo()
	ctx := context.Background()

	// Empty source yields no records.
	recs, err := repo.BySource(ctx, "games/rapid.pgn")
	if err != nil {
		t.Fatalf("query (empty): %v", err)
	}
	if len(recs) != 0 {
		t.Fatalf("expected no records, got %d", len(recs))
	}

	// Insert out of move order; query must come back ordered.
	for _, mn := range []int{12, 4, 23} {
		if err := repo.Save(ctx, testRecord("games/rapid.pgn", mn, "Black")); err != nil {
			t.Fatalf("save move %d: %v", mn, err)
		}
	}
	if err := repo.Save(ctx, testRecord("games/other.pgn", 9, "White")); err != nil {
		t.Fatalf("save other source: %v", err)
	}

	recs, err = repo.BySource(ctx, "games/rapid.pgn")
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("expected 3 records, got %d", len(recs))
	}
	for i, want := range []int{4, 12, 23} {
		if recs[i].MoveNumber != want {
			t.Errorf("recs[%d].MoveNumber = %d, want %d", i, recs[i].MoveNumber, want)
		}
	}
	if recs[0].Motif != "HangingPiece" || recs[0].Severity != "Blunder" {
		t.Errorf("tags not round-tripped: %q %q", recs[0].Motif, recs[0].Severity)
	}
}

func TestBlunderDeleteBySource(t *testing.T) {
	s := openTestStore(t)
	repo := s.BlunderRepo()
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		if err := repo.Save(ctx, testRecord("a.pgn", i, "White")); err != nil {
			t.Fatalf("save: %v", err)
		}
	}
	if err := repo.Save(ctx, testRecord("b.pgn", 1, "White")); err != nil {
		t.Fatalf("save: %v", err)
	}

	n, err := repo.DeleteBySource(ctx, "a.pgn")
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if n != 3 {
		t.Errorf("deleted = %d, want 3", n)
	}

	left, err := repo.BySource(ctx, "b.pgn")
	if err != nil {
		t.Fatalf("query remaining: %v", err)
	}
	if len(left) != 1 {
		t.Errorf("records for b.pgn = %d, want 1", len(left))
	}
}

func TestLLMEventAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "anthropic",
			Model:        "claude-haiku-4-5-20251001",
			Purpose:      "explain-mistake",
			InputTokens:  200,
			OutputTokens: 80,
			LatencyMs:    450,
			Success:      true,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, 2)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("events = %d, want 2", len(events))
	}
	// Newest first.
	if events[0].ID < events[1].ID {
		t.Errorf("expected newest first, got IDs %d, %d", events[0].ID, events[1].ID)
	}

	got, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.Purpose != "explain-mistake" {
		t.Errorf("unexpected event: %+v", got)
	}

	missing, err := repo.GetLLMEvent(ctx, 99999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for missing event")
	}
}

func TestLLMUsageAggregation(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	data := LLMRequestEventData{
		Provider:     "openai",
		Model:        "gpt-4o-mini",
		Purpose:      "explain-mistake",
		InputTokens:  100,
		OutputTokens: 50,
		LatencyMs:    300,
		Success:      true,
	}
	for i := 0; i < 4; i++ {
		if err := repo.AppendLLMRequest(ctx, data); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 1 {
		t.Fatalf("purposes = %d, want 1", len(byPurpose))
	}
	u := byPurpose[0]
	if u.Purpose != "explain-mistake" || u.Calls != 4 || u.InputTokens != 400 || u.OutputTokens != 200 {
		t.Errorf("unexpected usage: %+v", u)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 1 || byModel[0].Model != "gpt-4o-mini" {
		t.Errorf("unexpected model usage: %+v", byModel)
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"blunders", "llm_request_events"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Fatalf("table %s missing: %v", table, err)
		}
	}
}
