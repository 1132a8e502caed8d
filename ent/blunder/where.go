// Code generated by ent, DO NOT EDIT.

package blunder

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/chesscoach/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Blunder {
	return predicate.Blunder(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Blunder {
	return predicate.Blunder(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Blunder {
	return predicate.Blunder(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Blunder {
	return predicate.Blunder(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Blunder {
	return predicate.Blunder(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Blunder {
	return predicate.Blunder(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Blunder {
	return predicate.Blunder(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Blunder {
	return predicate.Blunder(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Blunder {
	return predicate.Blunder(sql.FieldLTE(FieldID, id))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.Blunder {
	return predicate.Blunder(sql.FieldEQ(FieldSource, v))
}

// MoveNumber applies equality check predicate on the "move_number" field. It's identical to MoveNumberEQ.
func MoveNumber(v int) predicate.Blunder {
	return predicate.Blunder(sql.FieldEQ(FieldMoveNumber, v))
}

// PlayerColor applies equality check predicate on the "player_color" field. It's identical to PlayerColorEQ.
func PlayerColor(v string) predicate.Blunder {
	return predicate.Blunder(sql.FieldEQ(FieldPlayerColor, v))
}

// MoveSan applies equality check predicate on the "move_san" field. It's identical to MoveSanEQ.
func MoveSan(v string) predicate.Blunder {
	return predicate.Blunder(sql.FieldEQ(FieldMoveSan, v))
}

// PositionFen applies equality check predicate on the "position_fen" field. It's identical to PositionFenEQ.
func PositionFen(v string) predicate.Blunder {
	return predicate.Blunder(sql.FieldEQ(FieldPositionFen, v))
}

// EvalDrop applies equality check predicate on the "eval_drop" field. It's identical to EvalDropEQ.
func EvalDrop(v int) predicate.Blunder {
	return predicate.Blunder(sql.FieldEQ(FieldEvalDrop, v))
}

// BestMoveSan applies equality check predicate on the "best_move_san" field. It's identical to BestMoveSanEQ.
func BestMoveSan(v string) predicate.Blunder {
	return predicate.Blunder(sql.FieldEQ(FieldBestMoveSan, v))
}

// Motif applies equality check predicate on the "motif" field. It's identical to MotifEQ.
func Motif(v string) predicate.Blunder {
	return predicate.Blunder(sql.FieldEQ(FieldMotif, v))
}

// Severity applies equality check predicate on the "severity" field. It's identical to SeverityEQ.
func Severity(v string) predicate.Blunder {
	return predicate.Blunder(sql.FieldEQ(FieldSeverity, v))
}

// Explanation applies equality check predicate on the "explanation" field. It's identical to ExplanationEQ.
func Explanation(v string) predicate.Blunder {
	return predicate.Blunder(sql.FieldEQ(FieldExplanation, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Blunder {
	return predicate.Blunder(sql.FieldEQ(FieldCreatedAt, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.Blunder {
	return predicate.Blunder(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.Blunder {
	return predicate.Blunder(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.Blunder {
	return predicate.Blunder(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.Blunder {
	return predicate.Blunder(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.Blunder {
	return predicate.Blunder(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.Blunder {
	return predicate.Blunder(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.Blunder {
	return predicate.Blunder(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.Blunder {
	return predicate.Blunder(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.Blunder {
	return predicate.Blunder(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.Blunder {
	return predicate.Blunder(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.Blunder {
	return predicate.Blunder(sql.FieldHasSuffix(FieldSource, v))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.Blunder {
	return predicate.Blunder(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.Blunder {
	return predicate.Blunder(sql.FieldContainsFold(FieldSource, v))
}

// MoveNumberEQ applies the EQ predicate on the "move_number" field.
func MoveNumberEQ(v int) predicate.Blunder {
	return predicate.Blunder(sql.FieldEQ(FieldMoveNumber, v))
}

// MoveNumberNEQ applies the NEQ predicate on the "move_number" field.
func MoveNumberNEQ(v int) predicate.Blunder {
	return predicate.Blunder(sql.FieldNEQ(FieldMoveNumber, v))
}

// MoveNumberIn applies the In predicate on the "move_number" field.
func MoveNumberIn(vs ...int) predicate.Blunder {
	return predicate.Blunder(sql.FieldIn(FieldMoveNumber, vs...))
}

// MoveNumberNotIn applies the NotIn predicate on the "move_number" field.
func MoveNumberNotIn(vs ...int) predicate.Blunder {
	return predicate.Blunder(sql.FieldNotIn(FieldMoveNumber, vs...))
}

// MoveNumberGT applies the GT predicate on the "move_number" field.
func MoveNumberGT(v int) predicate.Blunder {
	return predicate.Blunder(sql.FieldGT(FieldMoveNumber, v))
}

// MoveNumberGTE applies the GTE predicate on the "move_number" field.
func MoveNumberGTE(v int) predicate.Blunder {
	return predicate.Blunder(sql.FieldGTE(FieldMoveNumber, v))
}

// MoveNumberLT applies the LT predicate on the "move_number" field.
func MoveNumberLT(v int) predicate.Blunder {
	return predicate.Blunder(sql.FieldLT(FieldMoveNumber, v))
}

// MoveNumberLTE applies the LTE predicate on the "move_number" field.
func MoveNumberLTE(v int) predicate.Blunder {
	return predicate.Blunder(sql.FieldLTE(FieldMoveNumber, v))
}

// PlayerColorEQ applies the EQ predicate on the "player_color" field.
func PlayerColorEQ(v string) predicate.Blunder {
	return predicate.Blunder(sql.FieldEQ(FieldPlayerColor, v))
}

// PlayerColorNEQ applies the NEQ predicate on the "player_color" field.
func PlayerColorNEQ(v string) predicate.Blunder {
	return predicate.Blunder(sql.FieldNEQ(FieldPlayerColor, v))
}

// PlayerColorIn applies the In predicate on the "player_color" field.
func PlayerColorIn(vs ...string) predicate.Blunder {
	return predicate.Blunder(sql.FieldIn(FieldPlayerColor, vs...))
}

// PlayerColorNotIn applies the NotIn predicate on the "player_color" field.
func PlayerColorNotIn(vs ...string) predicate.Blunder {
	return predicate.Blunder(sql.FieldNotIn(FieldPlayerColor, vs...))
}

// PlayerColorGT applies the GT predicate on the "player_color" field.
func PlayerColorGT(v string) predicate.Blunder {
	return predicate.Blunder(sql.FieldGT(FieldPlayerColor, v))
}

// PlayerColorGTE applies the GTE predicate on the "player_color" field.
func PlayerColorGTE(v string) predicate.Blunder {
	return predicate.Blunder(sql.FieldGTE(FieldPlayerColor, v))
}

// PlayerColorLT applies the LT predicate on the "player_color" field.
func PlayerColorLT(v string) predicate.Blunder {
	return predicate.Blunder(sql.FieldLT(FieldPlayerColor, v))
}

// PlayerColorLTE applies the LTE predicate on the "player_color" field.
func PlayerColorLTE(v string) predicate.Blunder {
	return predicate.Blunder(sql.FieldLTE(FieldPlayerColor, v))
}

// PlayerColorContains applies the Contains predicate on the "player_color" field.
func PlayerColorContains(v string) predicate.Blunder {
	return predicate.Blunder(sql.FieldContains(FieldPlayerColor, v))
}

// PlayerColorHasPrefix applies the HasPrefix predicate on the "player_color" field.
func PlayerColorHasPrefix(v string) predicate.Blunder {
	return predicate.Blunder(sql.FieldHasPrefix(FieldPlayerColor, v))
}

// PlayerColorHasSuffix applies the HasSuffix predicate on the "player_color" field.
func PlayerColorHasSuffix(v string) predicate.Blunder {
	return predicate.Blunder(sql.FieldHasSuffix(FieldPlayerColor, v))
}

// PlayerColorEqualFold applies the EqualFold predicate on the "player_color" field.
func PlayerColorEqualFold(v string) predicate.Blunder {
	return predicate.Blunder(sql.FieldEqualFold(FieldPlayerColor, v))
}

// PlayerColorContainsFold applies the ContainsFold predicate on the "player_color" field.
func PlayerColorContainsFold(v string) predicate.Blunder {
	return predicate.Blunder(sql.FieldContainsFold(FieldPlayerColor, v))
}

// MoveSanEQ applies the EQ predicate on the "move_san" field.
func MoveSanEQ(v string) predicate.Blunder {
	return predicate.Blunder(sql.FieldEQ(FieldMoveSan, v))
}

// MoveSanNEQ applies the NEQ predicate on the "move_san" field.
func MoveSanNEQ(v string) predicate.Blunder {
	return predicate.Blunder(sql.FieldNEQ(FieldMoveSan, v))
}

// MoveSanIn applies the In predicate on the "move_san" field.
func MoveSanIn(vs ...string) predicate.Blunder {
	return predicate.Blunder(sql.FieldIn(FieldMoveSan, vs...))
}

// MoveSanNotIn applies the NotIn predicate on the "move_san" field.
func MoveSanNotIn(vs ...string) predicate.Blunder {
	return predicate.Blunder(sql.FieldNotIn(FieldMoveSan, vs...))
}

// MoveSanGT applies the GT predicate on the "move_san" field.
func MoveSanGT(v string) predicate.Blunder {
	return predicate.Blunder(sql.FieldGT(FieldMoveSan, v))
}

// MoveSanGTE applies the GTE predicate on the "move_san" field.
func MoveSanGTE(v string) predicate.Blunder {
	return predicate.Blunder(sql.FieldGTE(FieldMoveSan, v))
}

// MoveSanLT applies the LT predicate on the "move_san" field.
func MoveSanLT(v string) predicate.Blunder {
	return predicate.Blunder(sql.FieldLT(FieldMoveSan, v))
}

// MoveSanLTE applies the LTE predicate on the "move_san" field.
func MoveSanLTE(v string) predicate.Blunder {
	return predicate.Blunder(sql.FieldLTE(FieldMoveSan, v))
}

// MoveSanContains applies the Contains predicate on the "move_san" field.
func MoveSanContains(v string) predicate.Blunder {
	return predicate.Blunder(sql.FieldContains(FieldMoveSan, v))
}

// MoveSanHasPrefix applies the HasPrefix predicate on the "move_san" field.
func MoveSanHasPrefix(v string) predicate.Blunder {
	return predicate.Blunder(sql.FieldHasPrefix(FieldMoveSan, v))
}

// MoveSanHasSuffix applies the HasSuffix predicate on the "move_san" field.
func MoveSanHasSuffix(v string) predicate.Blunder {
	return predicate.Blunder(sql.FieldHasSuffix(FieldMoveSan, v))
}

// MoveSanEqualFold applies the EqualFold predicate on the "move_san" field.
func MoveSanEqualFold(v string) predicate.Blunder {
	return predicate.Blunder(sql.FieldEqualFold(FieldMoveSan, v))
}

// MoveSanContainsFold applies the ContainsFold predicate on the "move_san" field.
func MoveSanContainsFold(v string) predicate.Blunder {
	return predicate.Blunder(sql.FieldContainsFold(FieldMoveSan, v))
}

// PositionFenEQ applies the EQ predicate on the "position_fen" field.
func PositionFenEQ(v string) predicate.Blunder {
	return predicate.Blunder(sql.FieldEQ(FieldPositionFen, v))
}

// PositionFenNEQ applies the NEQ predicate on the "position_fen" field.
func PositionFenNEQ(v string) predicate.Blunder {
	return predicate.Blunder(sql.FieldNEQ(FieldPositionFen, v))
}

// PositionFenIn applies the In predicate on the "position_fen" field.
func PositionFenIn(vs ...string) predicate.Blunder {
	return predicate.Blunder(sql.FieldIn(FieldPositionFen, vs...))
}

// PositionFenNotIn applies the NotIn predicate on the "position_fen" field.
func PositionFenNotIn(vs ...string) predicate.Blunder {
	return predicate.Blunder(sql.FieldNotIn(FieldPositionFen, vs...))
}

// PositionFenGT applies the GT predicate on the "position_fen" field.
func PositionFenGT(v string) predicate.Blunder {
	return predicate.Blunder(sql.FieldGT(FieldPositionFen, v))
}

// PositionFenGTE applies the GTE predicate on the "position_fen" field.
func PositionFenGTE(v string) predicate.Blunder {
	return predicate.Blunder(sql.FieldGTE(FieldPositionFen, v))
}

// PositionFenLT applies the LT predicate on the "position_fen" field.
func PositionFenLT(v string) predicate.Blunder {
	return predicate.Blunder(sql.FieldLT(FieldPositionFen, v))
}

// PositionFenLTE applies the LTE predicate on the "position_fen" field.
func PositionFenLTE(v string) predicate.Blunder {
	return predicate.Blunder(sql.FieldLTE(FieldPositionFen, v))
}

// PositionFenContains applies the Contains predicate on the "position_fen" field.
func PositionFenContains(v string) predicate.Blunder {
	return predicate.Blunder(sql.FieldContains(FieldPositionFen, v))
}

// PositionFenHasPrefix applies the HasPrefix predicate on the "position_fen" field.
func PositionFenHasPrefix(v string) predicate.Blunder {
	return predicate.Blunder(sql.FieldHasPrefix(FieldPositionFen, v))
}

// PositionFenHasSuffix applies the HasSuffix predicate on the "position_fen" field.
func PositionFenHasSuffix(v string) predicate.Blunder {
	return predicate.Blunder(sql.FieldHasSuffix(FieldPositionFen, v))
}

// PositionFenEqualFold applies the EqualFold predicate on the "position_fen" field.
func PositionFenEqualFold(v string) predicate.Blunder {
	return predicate.Blunder(sql.FieldEqualFold(FieldPositionFen, v))
}

// PositionFenContainsFold applies the ContainsFold predicate on the "position_fen" field.
func PositionFenContainsFold(v string) predicate.Blunder {
	return predicate.Blunder(sql.FieldContainsFold(FieldPositionFen, v))
}

// EvalDropEQ applies the EQ predicate on the "eval_drop" field.
func EvalDropEQ(v int) predicate.Blunder {
	return predicate.Blunder(sql.FieldEQ(FieldEvalDrop, v))
}

// EvalDropNEQ applies the NEQ predicate on the "eval_drop" field.
func EvalDropNEQ(v int) predicate.Blunder {
	return predicate.Blunder(sql.FieldNEQ(FieldEvalDrop, v))
}

// EvalDropIn applies the In predicate on the "eval_drop" field.
func EvalDropIn(vs ...int) predicate.Blunder {
	return predicate.Blunder(sql.FieldIn(FieldEvalDrop, vs...))
}

// EvalDropNotIn applies the NotIn predicate on the "eval_drop" field.
func EvalDropNotIn(vs ...int) predicate.Blunder {
	return predicate.Blunder(sql.FieldNotIn(FieldEvalDrop, vs...))
}

// EvalDropGT applies the GT predicate on the "eval_drop" field.
func EvalDropGT(v int) predicate.Blunder {
	return predicate.Blunder(sql.FieldGT(FieldEvalDrop, v))
}

// EvalDropGTE applies the GTE predicate on the "eval_drop" field.
func EvalDropGTE(v int) predicate.Blunder {
	return predicate.Blunder(sql.FieldGTE(FieldEvalDrop, v))
}

// EvalDropLT applies the LT predicate on the "eval_drop" field.
func EvalDropLT(v int) predicate.Blunder {
	return predicate.Blunder(sql.FieldLT(FieldEvalDrop, v))
}

// EvalDropLTE applies the LTE predicate on the "eval_drop" field.
func EvalDropLTE(v int) predicate.Blunder {
	return predicate.Blunder(sql.FieldLTE(FieldEvalDrop, v))
}

// BestMoveSanEQ applies the EQ predicate on the "best_move_san" field.
func BestMoveSanEQ(v string) predicate.Blunder {
	return predicate.Blunder(sql.FieldEQ(FieldBestMoveSan, v))
}

// BestMoveSanNEQ applies the NEQ predicate on the "best_move_san" field.
func BestMoveSanNEQ(v string) predicate.Blunder {
	return predicate.Blunder(sql.FieldNEQ(FieldBestMoveSan, v))
}

// BestMoveSanIn applies the In predicate on the "best_move_san" field.
func BestMoveSanIn(vs ...string) predicate.Blunder {
	return predicate.Blunder(sql.FieldIn(FieldBestMoveSan, vs...))
}

// BestMoveSanNotIn applies the NotIn predicate on the "best_move_san" field.
func BestMoveSanNotIn(vs ...string) predicate.Blunder {
	return predicate.Blunder(sql.FieldNotIn(FieldBestMoveSan, vs...))
}

// BestMoveSanGT applies the GT predicate on the "best_move_san" field.
func BestMoveSanGT(v string) predicate.Blunder {
	return predicate.Blunder(sql.FieldGT(FieldBestMoveSan, v))
}

// BestMoveSanGTE applies the GTE predicate on the "best_move_san" field.
func BestMoveSanGTE(v string) predicate.Blunder {
	return predicate.Blunder(sql.FieldGTE(FieldBestMoveSan, v))
}

// BestMoveSanLT applies the LT predicate on the "best_move_san" field.
func BestMoveSanLT(v string) predicate.Blunder {
	return predicate.Blunder(sql.FieldLT(FieldBestMoveSan, v))
}

// BestMoveSanLTE applies the LTE predicate on the "best_move_san" field.
func BestMoveSanLTE(v string) predicate.Blunder {
	return predicate.Blunder(sql.FieldLTE(FieldBestMoveSan, v))
}

// BestMoveSanContains applies the Contains predicate on the "best_move_san" field.
func BestMoveSanContains(v string) predicate.Blunder {
	return predicate.Blunder(sql.FieldContains(FieldBestMoveSan, v))
}

// BestMoveSanHasPrefix applies the HasPrefix predicate on the "best_move_san" field.
func BestMoveSanHasPrefix(v string) predicate.Blunder {
	return predicate.Blunder(sql.FieldHasPrefix(FieldBestMoveSan, v))
}

// BestMoveSanHasSuffix applies the HasSuffix predicate on the "best_move_san" field.
func BestMoveSanHasSuffix(v string) predicate.Blunder {
	return predicate.Blunder(sql.FieldHasSuffix(FieldBestMoveSan, v))
}

// BestMoveSanEqualFold applies the EqualFold predicate on the "best_move_san" field.
func BestMoveSanEqualFold(v string) predicate.Blunder {
	return predicate.Blunder(sql.FieldEqualFold(FieldBestMoveSan, v))
}

// BestMoveSanContainsFold applies the ContainsFold predicate on the "best_move_san" field.
func BestMoveSanContainsFold(v string) predicate.Blunder {
	return predicate.Blunder(sql.FieldContainsFold(FieldBestMoveSan, v))
}

// MotifEQ applies the EQ predicate on the "motif" field.
func MotifEQ(v string) predicate.Blunder {
	return predicate.Blunder(sql.FieldEQ(FieldMotif, v))
}

// MotifNEQ applies the NEQ predicate on the "motif" field.
func MotifNEQ(v string) predicate.Blunder {
	return predicate.Blunder(sql.FieldNEQ(FieldMotif, v))
}

// MotifIn applies the In predicate on the "motif" field.
func MotifIn(vs ...string) predicate.Blunder {
	return predicate.Blunder(sql.FieldIn(FieldMotif, vs...))
}

// MotifNotIn applies the NotIn predicate on the "motif" field.
func MotifNotIn(vs ...string) predicate.Blunder {
	return predicate.Blunder(sql.FieldNotIn(FieldMotif, vs...))
}

// MotifGT applies the GT predicate on the "motif" field.
func MotifGT(v string) predicate.Blunder {
	return predicate.Blunder(sql.FieldGT(FieldMotif, v))
}

// MotifGTE applies the GTE predicate on the "motif" field.
func MotifGTE(v string) predicate.Blunder {
	return predicate.Blunder(sql.FieldGTE(FieldMotif, v))
}

// MotifLT applies the LT predicate on the "motif" field.
func MotifLT(v string) predicate.Blunder {
	return predicate.Blunder(sql.FieldLT(FieldMotif, v))
}

// MotifLTE applies the LTE predicate on the "motif" field.
func MotifLTE(v string) predicate.Blunder {
	return predicate.Blunder(sql.FieldLTE(FieldMotif, v))
}

// MotifContains applies the Contains predicate on the "motif" field.
func MotifContains(v string) predicate.Blunder {
	return predicate.Blunder(sql.FieldContains(FieldMotif, v))
}

// MotifHasPrefix applies the HasPrefix predicate on the "motif" field.
func MotifHasPrefix(v string) predicate.Blunder {
	return predicate.Blunder(sql.FieldHasPrefix(FieldMotif, v))
}

// MotifHasSuffix applies the HasSuffix predicate on the "motif" field.
func MotifHasSuffix(v string) predicate.Blunder {
	return predicate.Blunder(sql.FieldHasSuffix(FieldMotif, v))
}

// MotifEqualFold applies the EqualFold predicate on the "motif" field.
func MotifEqualFold(v string) predicate.Blunder {
	return predicate.Blunder(sql.FieldEqualFold(FieldMotif, v))
}

// MotifContainsFold applies the ContainsFold predicate on the "motif" field.
func MotifContainsFold(v string) predicate.Blunder {
	return predicate.Blunder(sql.FieldContainsFold(FieldMotif, v))
}

// SeverityEQ applies the EQ predicate on the "severity" field.
func SeverityEQ(v string) predicate.Blunder {
	return predicate.Blunder(sql.FieldEQ(FieldSeverity, v))
}

// SeverityNEQ applies the NEQ predicate on the "severity" field.
func SeverityNEQ(v string) predicate.Blunder {
	return predicate.Blunder(sql.FieldNEQ(FieldSeverity, v))
}

// SeverityIn applies the In predicate on the "severity" field.
func SeverityIn(vs ...string) predicate.Blunder {
	return predicate.Blunder(sql.FieldIn(FieldSeverity, vs...))
}

// SeverityNotIn applies the NotIn predicate on the "severity" field.
func SeverityNotIn(vs ...string) predicate.Blunder {
	return predicate.Blunder(sql.FieldNotIn(FieldSeverity, vs...))
}

// SeverityGT applies the GT predicate on the "severity" field.
func SeverityGT(v string) predicate.Blunder {
	return predicate.Blunder(sql.FieldGT(FieldSeverity, v))
}

// SeverityGTE applies the GTE predicate on the "severity" field.
func SeverityGTE(v string) predicate.Blunder {
	return predicate.Blunder(sql.FieldGTE(FieldSeverity, v))
}

// SeverityLT applies the LT predicate on the "severity" field.
func SeverityLT(v string) predicate.Blunder {
	return predicate.Blunder(sql.FieldLT(FieldSeverity, v))
}

// SeverityLTE applies the LTE predicate on the "severity" field.
func SeverityLTE(v string) predicate.Blunder {
	return predicate.Blunder(sql.FieldLTE(FieldSeverity, v))
}

// SeverityContains applies the Contains predicate on the "severity" field.
func SeverityContains(v string) predicate.Blunder {
	return predicate.Blunder(sql.FieldContains(FieldSeverity, v))
}

// SeverityHasPrefix applies the HasPrefix predicate on the "severity" field.
func SeverityHasPrefix(v string) predicate.Blunder {
	return predicate.Blunder(sql.FieldHasPrefix(FieldSeverity, v))
}

// SeverityHasSuffix applies the HasSuffix predicate on the "severity" field.
func SeverityHasSuffix(v string) predicate.Blunder {
	return predicate.Blunder(sql.FieldHasSuffix(FieldSeverity, v))
}

// SeverityEqualFold applies the EqualFold predicate on the "severity" field.
func SeverityEqualFold(v string) predicate.Blunder {
	return predicate.Blunder(sql.FieldEqualFold(FieldSeverity, v))
}

// SeverityContainsFold applies the ContainsFold predicate on the "severity" field.
func SeverityContainsFold(v string) predicate.Blunder {
	return predicate.Blunder(sql.FieldContainsFold(FieldSeverity, v))
}

// ExplanationEQ applies the EQ predicate on the "explanation" field.
func ExplanationEQ(v string) predicate.Blunder {
	return predicate.Blunder(sql.FieldEQ(FieldExplanation, v))
}

// ExplanationNEQ applies the NEQ predicate on the "explanation" field.
func ExplanationNEQ(v string) predicate.Blunder {
	return predicate.Blunder(sql.FieldNEQ(FieldExplanation, v))
}

// ExplanationIn applies the In predicate on the "explanation" field.
func ExplanationIn(vs ...string) predicate.Blunder {
	return predicate.Blunder(sql.FieldIn(FieldExplanation, vs...))
}

// ExplanationNotIn applies the NotIn predicate on the "explanation" field.
func ExplanationNotIn(vs ...string) predicate.Blunder {
	return predicate.Blunder(sql.FieldNotIn(FieldExplanation, vs...))
}

// ExplanationGT applies the GT predicate on the "explanation" field.
func ExplanationGT(v string) predicate.Blunder {
	return predicate.Blunder(sql.FieldGT(FieldExplanation, v))
}

// ExplanationGTE applies the GTE predicate on the "explanation" field.
func ExplanationGTE(v string) predicate.Blunder {
	return predicate.Blunder(sql.FieldGTE(FieldExplanation, v))
}

// ExplanationLT applies the LT predicate on the "explanation" field.
func ExplanationLT(v string) predicate.Blunder {
	return predicate.Blunder(sql.FieldLT(FieldExplanation, v))
}

// ExplanationLTE applies the LTE predicate on the "explanation" field.
func ExplanationLTE(v string) predicate.Blunder {
	return predicate.Blunder(sql.FieldLTE(FieldExplanation, v))
}

// ExplanationContains applies the Contains predicate on the "explanation" field.
func ExplanationContains(v string) predicate.Blunder {
	return predicate.Blunder(sql.FieldContains(FieldExplanation, v))
}

// ExplanationHasPrefix applies the HasPrefix predicate on the "explanation" field.
func ExplanationHasPrefix(v string) predicate.Blunder {
	return predicate.Blunder(sql.FieldHasPrefix(FieldExplanation, v))
}

// ExplanationHasSuffix applies the HasSuffix predicate on the "explanation" field.
func ExplanationHasSuffix(v string) predicate.Blunder {
	return predicate.Blunder(sql.FieldHasSuffix(FieldExplanation, v))
}

// ExplanationEqualFold applies the EqualFold predicate on the "explanation" field.
func ExplanationEqualFold(v string) predicate.Blunder {
	return predicate.Blunder(sql.FieldEqualFold(FieldExplanation, v))
}

// ExplanationContainsFold applies the ContainsFold predicate on the "explanation" field.
func ExplanationContainsFold(v string) predicate.Blunder {
	return predicate.Blunder(sql.FieldContainsFold(FieldExplanation, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Blunder {
	return predicate.Blunder(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Blunder {
	return predicate.Blunder(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Blunder {
	return predicate.Blunder(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Blunder {
	return predicate.Blunder(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Blunder {
	return predicate.Blunder(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Blunder {
	return predicate.Blunder(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Blunder {
	return predicate.Blunder(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Blunder {
	return predicate.Blunder(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Blunder) predicate.Blunder {
	return predicate.Blunder(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Blunder) predicate.Blunder {
	return predicate.Blunder(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Blunder) predicate.Blunder {
	return predicate.Blunder(sql.NotPredicates(p))
}
