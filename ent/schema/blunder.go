package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Blunder is one reportable mistake found during game analysis.
// Rows are immutable once written.
type Blunder struct {
	ent.Schema
}

func (Blunder) Fields() []ent.Field {
	return []ent.Field{
		field.String("source").
			Immutable().
			Comment("Opaque identifier of the analyzed game (file path or upload id)"),
		field.Int("move_number").
			Immutable().
			Comment("Full-move number at which the mistake was played"),
		field.String("player_color").
			Immutable().
			Comment("White or Black"),
		field.String("move_san").
			Immutable().
			Comment("The move that was played, in SAN"),
		field.String("position_fen").
			Immutable().
			Comment("FEN of the position before the move"),
		field.Int("eval_drop").
			Immutable().
			Comment("Centipawn loss from the mover's perspective"),
		field.String("best_move_san").
			Immutable().
			Comment("Engine suggestion at the pre-move position, in SAN"),
		field.String("motif").
			Default("").
			Immutable().
			Comment("Tactical motif tag, empty when the coach could not classify"),
		field.String("severity").
			Default("").
			Immutable().
			Comment("Severity tag, empty for tag-less degraded records"),
		field.Text("explanation").
			Default("").
			Immutable().
			Comment("Free-text coaching explanation"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("When the analysis produced this record"),
	}
}

func (Blunder) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("source"),
		index.Fields("source", "move_number"),
	}
}
