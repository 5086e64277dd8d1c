// Code generated by ent, DO NOT EDIT.

package recording

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the recording type in the database.
	Label = "recording"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldFilename holds the string denoting the filename field in the database.
	FieldFilename = "filename"
	// FieldFilepath holds the string denoting the filepath field in the database.
	FieldFilepath = "filepath"
	// FieldMimetype holds the string denoting the mimetype field in the database.
	FieldMimetype = "mimetype"
	// FieldSize holds the string denoting the size field in the database.
	FieldSize = "size"
	// FieldConsultationID holds the string denoting the consultation_id field in the database.
	FieldConsultationID = "consultation_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeConsultation holds the string denoting the consultation edge name in mutations.
	EdgeConsultation = "consultation"
	// EdgeTranscription holds the string denoting the transcription edge name in mutations.
	EdgeTranscription = "transcription"
	// Table holds the table name of the recording in the database.
	Table = "recordings"
	// ConsultationTable is the table that holds the consultation relation/edge.
	ConsultationTable = "recordings"
	// ConsultationInverseTable is the table name for the Consultation entity.
	// It exists in this package in order to avoid circular dependency with the "consultation" package.
	ConsultationInverseTable = "consultations"
	// ConsultationColumn is the table column denoting the consultation relation/edge.
	ConsultationColumn = "consultation_id"
	// TranscriptionTable is the table that holds the transcription relation/edge.
	TranscriptionTable = "transcriptions"
	// TranscriptionInverseTable is the table name for the Transcription entity.
	// It exists in this package in order to avoid circular dependency with the "transcription" package.
	TranscriptionInverseTable = "transcriptions"
	// TranscriptionColumn is the table column denoting the transcription relation/edge.
	TranscriptionColumn = "recording_id"
)

// Columns holds all SQL columns for recording fields.
var Columns = []string{
	FieldID,
	FieldFilename,
	FieldFilepath,
	FieldMimetype,
	FieldSize,
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
	// FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	FilenameValidator func(string) error
	// FilepathValidator is a validator for the "filepath" field. It is called by the builders before save.
	FilepathValidator func(string) error
	// MimetypeValidator is a validator for the "mimetype" field. It is called by the builders before save.
	MimetypeValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the Recording queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByFilename orders the results by the filename field.
func ByFilename(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFilename, opts...).ToFunc()
}

// ByFilepath orders the results by the filepath field.
func ByFilepath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFilepath, opts...).ToFunc()
}

// ByMimetype orders the results by the mimetype field.
func ByMimetype(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMimetype, opts...).ToFunc()
}

// BySize orders the results by the size field.
func BySize(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSize, opts...).ToFunc()
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

// ByTranscriptionField orders the results by transcription field.
func ByTranscriptionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTranscriptionStep(), sql.OrderByField(field, opts...))
	}
}
func newConsultationStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ConsultationInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ConsultationTable, ConsultationColumn),
	)
}
func newTranscriptionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TranscriptionInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, TranscriptionTable, TranscriptionColumn),
	)
}
