// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/felixmccuaig/lyrebird-health-interview/services/consultation/storage/postgres/ent/consultation"
	"github.com/felixmccuaig/lyrebird-health-interview/services/consultation/storage/postgres/ent/recording"
	"github.com/felixmccuaig/lyrebird-health-interview/services/consultation/storage/postgres/ent/transcription"
)

// Recording is the model entity for the Recording schema.
type Recording struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Filename holds the value of the "filename" field.
	Filename string `json:"filename,omitempty"`
	// Filepath holds the value of the "filepath" field.
	Filepath string `json:"filepath,omitempty"`
	// Mimetype holds the value of the "mimetype" field.
	Mimetype string `json:"mimetype,omitempty"`
	// Size holds the value of the "size" field.
	Size int64 `json:"size,omitempty"`
	// ConsultationID holds the value of the "consultation_id" field.
	ConsultationID int `json:"consultation_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RecordingQuery when eager-loading is set.
	Edges        RecordingEdges `json:"edges"`
	selectValues sql.SelectValues
}

// RecordingEdges holds the relations/edges for other nodes in the graph.
type RecordingEdges struct {
	// Consultation holds the value of the consultation edge.
	Consultation *Consultation `json:"consultation,omitempty"`
	// Transcription holds the value of the transcription edge.
	Transcription *Transcription `json:"transcription,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ConsultationOrErr returns the Consultation value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RecordingEdges) ConsultationOrErr() (*Consultation, error) {
	if e.Consultation != nil {
		return e.Consultation, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: consultation.Label}
	}
	return nil, &NotLoadedError{edge: "consultation"}
}

// TranscriptionOrErr returns the Transcription value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RecordingEdges) TranscriptionOrErr() (*Transcription, error) {
	if e.Transcription != nil {
		return e.Transcription, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: transcription.Label}
	}
	return nil, &NotLoadedError{edge: "transcription"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Recording) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case recording.FieldID, recording.FieldSize, recording.FieldConsultationID:
			values[i] = new(sql.NullInt64)
		case recording.FieldFilename, recording.FieldFilepath, recording.FieldMimetype:
			values[i] = new(sql.NullString)
		case recording.FieldCreatedAt, recording.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Recording fields.
func (_m *Recording) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case recording.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case recording.FieldFilename:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field filename", values[i])
			} else if value.Valid {
				_m.Filename = value.String
			}
		case recording.FieldFilepath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field filepath", values[i])
			} else if value.Valid {
				_m.Filepath = value.String
			}
		case recording.FieldMimetype:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mimetype", values[i])
			} else if value.Valid {
				_m.Mimetype = value.String
			}
		case recording.FieldSize:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field size", values[i])
			} else if value.Valid {
				_m.Size = value.Int64
			}
		case recording.FieldConsultationID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field consultation_id", values[i])
			} else if value.Valid {
				_m.ConsultationID = int(value.Int64)
			}
		case recording.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case recording.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Recording.
// This includes values selected through modifiers, order, etc.
func (_m *Recording) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryConsultation queries the "consultation" edge of the Recording entity.
func (_m *Recording) QueryConsultation() *ConsultationQuery {
	return NewRecordingClient(_m.config).QueryConsultation(_m)
}

// QueryTranscription queries the "transcription" edge of the Recording entity.
func (_m *Recording) QueryTranscription() *TranscriptionQuery {
	return NewRecordingClient(_m.config).QueryTranscription(_m)
}

// Update returns a builder for updating this Recording.
// Note that you need to call Recording.Unwrap() before calling this method if this Recording
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Recording) Update() *RecordingUpdateOne {
	return NewRecordingClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Recording entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Recording) Unwrap() *Recording {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Recording is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Recording) String() string {
	var builder strings.Builder
	builder.WriteString("Recording(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("filename=")
	builder.WriteString(_m.Filename)
	builder.WriteString(", ")
	builder.WriteString("filepath=")
	builder.WriteString(_m.Filepath)
	builder.WriteString(", ")
	builder.WriteString("mimetype=")
	builder.WriteString(_m.Mimetype)
	builder.WriteString(", ")
	builder.WriteString("size=")
	builder.WriteString(fmt.Sprintf("%v", _m.Size))
	builder.WriteString(", ")
	builder.WriteString("consultation_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConsultationID))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Recordings is a parsable slice of Recording.
type Recordings []*Recording
