package store

import (
	"context"
	"time"
)

// BlunderRecord is the persisted form of one reportable mistake.
type BlunderRecord struct {
	ID          int
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
	CreatedAt   time.Time
}

// BlunderRepo provides write and read access to blunder records.
// Records are append-only; the analysis pipeline never reads back during a run.
type BlunderRepo interface {
	// Save stores one blunder record.
	Save(ctx context.Context, rec *BlunderRecord) error

	// BySource returns all records for a source, ordered by move number.
	BySource(ctx context.Context, source string) ([]*BlunderRecord, error)

	// DeleteBySource removes all records for a source and returns the count.
	DeleteBySource(ctx context.Context, source string) (int, error)
}

// LLMRequestEventData captures one LLM API call for the audit log.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a stored audit record as read back from the database.
type LLMEvent struct {
	ID           int
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMUsage aggregates token counts for one purpose or model.
type LLMUsage struct {
	Purpose      string
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// EventRepo provides append and query access to the LLM audit log.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns the most recent events, newest first.
	QueryLLMEvents(ctx context.Context, limit int) ([]*LLMEvent, error)

	// GetLLMEvent returns one event by ID, or nil if not found.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates token usage grouped by purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error)

	// LLMUsageByModel aggregates token usage grouped by model ID.
	LLMUsageByModel(ctx context.Context) ([]LLMUsage, error)
}
