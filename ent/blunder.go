// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/chesscoach/ent/blunder"
)

// Blunder is the model entity for the Blunder schema.
type Blunder struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Opaque identifier of the analyzed game (file path or upload id)
	Source string `json:"source,omitempty"`
	// Full-move number at which the mistake was played
	MoveNumber int `json:"move_number,omitempty"`
	// White or Black
	PlayerColor string `json:"player_color,omitempty"`
	// The move that was played, in SAN
	MoveSan string `json:"move_san,omitempty"`
	// FEN of the position before the move
	PositionFen string `json:"position_fen,omitempty"`
	// Centipawn loss from the mover's perspective
	EvalDrop int `json:"eval_drop,omitempty"`
	// Engine suggestion at the pre-move position, in SAN
	BestMoveSan string `json:"best_move_san,omitempty"`
	// Tactical motif tag, empty when the coach could not classify
	Motif string `json:"motif,omitempty"`
	// Severity tag, empty for tag-less degraded records
	Severity string `json:"severity,omitempty"`
	// Free-text coaching explanation
	Explanation string `json:"explanation,omitempty"`
	// When the analysis produced this record
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Blunder) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case blunder.FieldID, blunder.FieldMoveNumber, blunder.FieldEvalDrop:
			values[i] = new(sql.NullInt64)
		case blunder.FieldSource, blunder.FieldPlayerColor, blunder.FieldMoveSan, blunder.FieldPositionFen, blunder.FieldBestMoveSan, blunder.FieldMotif, blunder.FieldSeverity, blunder.FieldExplanation:
			values[i] = new(sql.NullString)
		case blunder.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Blunder fields.
func (_m *Blunder) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case blunder.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case blunder.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = value.String
			}
		case blunder.FieldMoveNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field move_number", values[i])
			} else if value.Valid {
				_m.MoveNumber = int(value.Int64)
			}
		case blunder.FieldPlayerColor:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field player_color", values[i])
			} else if value.Valid {
				_m.PlayerColor = value.String
			}
		case blunder.FieldMoveSan:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field move_san", values[i])
			} else if value.Valid {
				_m.MoveSan = value.String
			}
		case blunder.FieldPositionFen:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field position_fen", values[i])
			} else if value.Valid {
				_m.PositionFen = value.String
			}
		case blunder.FieldEvalDrop:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field eval_drop", values[i])
			} else if value.Valid {
				_m.EvalDrop = int(value.Int64)
			}
		case blunder.FieldBestMoveSan:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field best_move_san", values[i])
			} else if value.Valid {
				_m.BestMoveSan = value.String
			}
		case blunder.FieldMotif:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field motif", values[i])
			} else if value.Valid {
				_m.Motif = value.String
			}
		case blunder.FieldSeverity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field severity", values[i])
			} else if value.Valid {
				_m.Severity = value.String
			}
		case blunder.FieldExplanation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field explanation", values[i])
			} else if value.Valid {
				_m.Explanation = value.String
			}
		case blunder.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Blunder.
// This includes values selected through modifiers, order, etc.
func (_m *Blunder) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Blunder.
// Note that you need to call Blunder.Unwrap() before calling this method if this Blunder
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Blunder) Update() *BlunderUpdateOne {
	return NewBlunderClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Blunder entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Blunder) Unwrap() *Blunder {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Blunder is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Blunder) String() string {
	var builder strings.Builder
	builder.WriteString("Blunder(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("source=")
	builder.WriteString(_m.Source)
	builder.WriteString(", ")
	builder.WriteString("move_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.MoveNumber))
	builder.WriteString(", ")
	builder.WriteString("player_color=")
	builder.WriteString(_m.PlayerColor)
	builder.WriteString(", ")
	builder.WriteString("move_san=")
	builder.WriteString(_m.MoveSan)
	builder.WriteString(", ")
	builder.WriteString("position_fen=")
	builder.WriteString(_m.PositionFen)
	builder.WriteString(", ")
	builder.WriteString("eval_drop=")
	builder.WriteString(fmt.Sprintf("%v", _m.EvalDrop))
	builder.WriteString(", ")
	builder.WriteString("best_move_san=")
	builder.WriteString(_m.BestMoveSan)
	builder.WriteString(", ")
	builder.WriteString("motif=")
	builder.WriteString(_m.Motif)
	builder.WriteString(", ")
	builder.WriteString("severity=")
	builder.WriteString(_m.Severity)
	builder.WriteString(", ")
	builder.WriteString("explanation=")
	builder.WriteString(_m.Explanation)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Blunders is a parsable slice of Blunder.
type Blunders []*Blunder
