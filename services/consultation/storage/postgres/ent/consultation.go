// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/felixmccuaig/lyrebird-health-interview/services/consultation/storage/postgres/ent/consultation"
	"github.com/felixmccuaig/lyrebird-health-interview/services/consultation/storage/postgres/ent/note"
	"github.com/felixmccuaig/lyrebird-health-interview/services/consultation/storage/postgres/ent/summary"
)

// Consultation is the model entity for the Consultation schema.
type Consultation struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Description holds the value of the "description" field.
	Description *string `json:"description,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ConsultationQuery when eager-loading is set.
	Edges        ConsultationEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ConsultationEdges holds the relations/edges for other nodes in the graph.
type ConsultationEdges struct {
	// Note holds the value of the note edge.
	Note *Note `json:"note,omitempty"`
	// Summary holds the value of the summary edge.
	Summary *Summary `json:"summary,omitempty"`
	// Recordings holds the value of the recordings edge.
	Recordings []*Recording `json:"recordings,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// NoteOrErr returns the Note value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ConsultationEdges) NoteOrErr() (*Note, error) {
	if e.Note != nil {
		return e.Note, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: note.Label}
	}
	return nil, &NotLoadedError{edge: "note"}
}

// SummaryOrErr returns the Summary value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ConsultationEdges) SummaryOrErr() (*Summary, error) {
	if e.Summary != nil {
		return e.Summary, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: summary.Label}
	}
	return nil, &NotLoadedError{edge: "summary"}
}

// RecordingsOrErr returns the Recordings value or an error if the edge
// was not loaded in eager-loading.
func (e ConsultationEdges) RecordingsOrErr() ([]*Recording, error) {
	if e.loadedTypes[2] {
		return e.Recordings, nil
	}
	return nil, &NotLoadedError{edge: "recordings"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Consultation) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case consultation.FieldID:
			values[i] = new(sql.NullInt64)
		case consultation.FieldTitle, consultation.FieldDescription:
			values[i] = new(sql.NullString)
		case consultation.FieldCreatedAt, consultation.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Consultation fields.
func (_m *Consultation) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case consultation.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case consultation.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case consultation.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = new(string)
				*_m.Description = value.String
			}
		case consultation.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case consultation.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Consultation.
// This includes values selected through modifiers, order, etc.
func (_m *Consultation) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryNote queries the "note" edge of the Consultation entity.
func (_m *Consultation) QueryNote() *NoteQuery {
	return NewConsultationClient(_m.config).QueryNote(_m)
}

// QuerySummary queries the "summary" edge of the Consultation entity.
func (_m *Consultation) QuerySummary() *SummaryQuery {
	return NewConsultationClient(_m.config).QuerySummary(_m)
}

// QueryRecordings queries the "recordings" edge of the Consultation entity.
func (_m *Consultation) QueryRecordings() *RecordingQuery {
	return NewConsultationClient(_m.config).QueryRecordings(_m)
}

// Update returns a builder for updating this Consultation.
// Note that you need to call Consultation.Unwrap() before calling this method if this Consultation
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Consultation) Update() *ConsultationUpdateOne {
	return NewConsultationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Consultation entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Consultation) Unwrap() *Consultation {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Consultation is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Consultation) String() string {
	var builder strings.Builder
	builder.WriteString("Consultation(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	if v := _m.Description; v != nil {
		builder.WriteString("description=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Consultations is a parsable slice of Consultation.
type Consultations []*Consultation
