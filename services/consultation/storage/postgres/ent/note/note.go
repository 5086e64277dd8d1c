// Code generated by ent, DO NOT EDIT.

package note

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the note type in the database.
	Label = "note"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldConsultationID holds the string denoting the consultation_id field in the database.
	FieldConsultationID = "consultation_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeConsultation holds the string denoting the consultation edge name in mutations.
	EdgeConsultation = "consultation"
	// Table holds the table name of the note in the database.
	Table = "notes"
	// ConsultationTable is the table that holds the consultation relation/edge.
	ConsultationTable = "notes"
	// ConsultationInverseTable is the table name for the Consultation entity.
	// It exists in this package in order to avoid circular dependency with the "consultation" package.
	ConsultationInverseTable = "consultations"
	// ConsultationColumn is the table column denoting the consultation relation/edge.
	ConsultationColumn = "consultation_id"
)

// Columns holds all SQL columns for note fields.
var Columns = []string{
	FieldID,
	FieldContent,
	FieldConsultationID,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// DefaultContent holds the default value on creation for the "content" field.
	DefaultContent string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the Note queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByContent orders the results by the content field.
func ByContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContent, opts...).ToFunc()
}

// ByConsultationID orders the results by the consultation_id field.
func ByConsultationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConsultationID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByConsultationField orders the results by consultation field.
func ByConsultationField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newConsultationStep(), sql.OrderByField(field, opts...))
	}
}
func newConsultationStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ConsultationInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, ConsultationTable, ConsultationColumn),
	)
}
