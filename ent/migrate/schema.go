// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// BlundersColumns holds the columns for the "blunders" table.
	BlundersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "source", Type: field.TypeString},
		{Name: "move_number", Type: field.TypeInt},
		{Name: "player_color", Type: field.TypeString},
		{Name: "move_san", Type: field.TypeString},
		{Name: "position_fen", Type: field.TypeString},
		{Name: "eval_drop", Type: field.TypeInt},
		{Name: "best_move_san", Type: field.TypeString},
		{Name: "motif", Type: field.TypeString, Default: ""},
		{Name: "severity", Type: field.TypeString, Default: ""},
		{Name: "explanation", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
	}
	// BlundersTable holds the schema information for the "blunders" table.
	BlundersTable = &schema.Table{
		Name:       "blunders",
		Columns:    BlundersColumns,
		PrimaryKey: []*schema.Column{BlundersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "blunder_source",
				Unique:  false,
				Columns: []*schema.Column{BlundersColumns[1]},
			},
			{
				Name:    "blunder_source_move_number",
				Unique:  false,
				Columns: []*schema.Column{BlundersColumns[1], BlundersColumns[2]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[4]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[8]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		BlundersTable,
		LlmRequestEventsTable,
	}
)

func init() {
}
