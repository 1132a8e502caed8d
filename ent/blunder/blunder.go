// Code generated by ent, DO NOT EDIT.

package blunder

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the blunder type in the database.
	Label = "blunder"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldMoveNumber holds the string denoting the move_number field in the database.
	FieldMoveNumber = "move_number"
	// FieldPlayerColor holds the string denoting the player_color field in the database.
	FieldPlayerColor = "player_color"
	// FieldMoveSan holds the string denoting the move_san field in the database.
	FieldMoveSan = "move_san"
	// FieldPositionFen holds the string denoting the position_fen field in the database.
	FieldPositionFen = "position_fen"
	// FieldEvalDrop holds the string denoting the eval_drop field in the database.
	FieldEvalDrop = "eval_drop"
	// FieldBestMoveSan holds the string denoting the best_move_san field in the database.
	FieldBestMoveSan = "best_move_san"
	// FieldMotif holds the string denoting the motif field in the database.
	FieldMotif = "motif"
	// FieldSeverity holds the string denoting the severity field in the database.
	FieldSeverity = "severity"
	// FieldExplanation holds the string denoting the explanation field in the database.
	FieldExplanation = "explanation"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the blunder in the database.
	Table = "blunders"
)

// Columns holds all SQL columns for blunder fields.
var Columns = []string{
	FieldID,
	FieldSource,
	FieldMoveNumber,
	FieldPlayerColor,
	FieldMoveSan,
	FieldPositionFen,
	FieldEvalDrop,
	FieldBestMoveSan,
	FieldMotif,
	FieldSeverity,
	FieldExplanation,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultMotif holds the default value on creation for the "motif" field.
	DefaultMotif string
	// DefaultSeverity holds the default value on creation for the "severity" field.
	DefaultSeverity string
	// DefaultExplanation holds the default value on creation for the "explanation" field.
	DefaultExplanation string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the Blunder queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// ByMoveNumber orders the results by the move_number field.
func ByMoveNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMoveNumber, opts...).ToFunc()
}

// ByPlayerColor orders the results by the player_color field.
func ByPlayerColor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlayerColor, opts...).ToFunc()
}

// ByMoveSan orders the results by the move_san field.
func ByMoveSan(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMoveSan, opts...).ToFunc()
}

// ByPositionFen orders the results by the position_fen field.
func ByPositionFen(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPositionFen, opts...).ToFunc()
}

// ByEvalDrop orders the results by the eval_drop field.
func ByEvalDrop(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEvalDrop, opts...).ToFunc()
}

// ByBestMoveSan orders the results by the best_move_san field.
func ByBestMoveSan(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBestMoveSan, opts...).ToFunc()
}

// ByMotif orders the results by the motif field.
func ByMotif(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMotif, opts...).ToFunc()
}

// BySeverity orders the results by the severity field.
func BySeverity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeverity, opts...).ToFunc()
}

// ByExplanation orders the results by the explanation field.
func ByExplanation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExplanation, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
