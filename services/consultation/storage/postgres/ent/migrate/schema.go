// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ConsultationsColumns holds the columns for the "consultations" table.
	ConsultationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "title", Type: field.TypeString, Size: 255},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ConsultationsTable holds the schema information for the "consultations" table.
	ConsultationsTable = &schema.Table{
		Name:       "consultations",
		Columns:    ConsultationsColumns,
		PrimaryKey: []*schema.Column{ConsultationsColumns[0]},
	}
	// NotesColumns holds the columns for the "notes" table.
	NotesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "content", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "consultation_id", Type: field.TypeInt, Unique: true},
	}
	// NotesTable holds the schema information for the "notes" table.
	NotesTable = &schema.Table{
		Name:       "notes",
		Columns:    NotesColumns,
		PrimaryKey: []*schema.Column{NotesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "notes_consultations_note",
				Columns:    []*schema.Column{NotesColumns[4]},
				RefColumns: []*schema.Column{ConsultationsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// RecordingsColumns holds the columns for the "recordings" table.
	RecordingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "filename", Type: field.TypeString, Size: 255},
		{Name: "filepath", Type: field.TypeString, Size: 500},
		{Name: "mimetype", Type: field.TypeString, Size: 100},
		{Name: "size", Type: field.TypeInt64},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "consultation_id", Type: field.TypeInt},
	}
	// RecordingsTable holds the schema information for the "recordings" table.
	RecordingsTable = &schema.Table{
		Name:       "recordings",
		Columns:    RecordingsColumns,
		PrimaryKey: []*schema.Column{RecordingsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "recordings_consultations_recordings",
				Columns:    []*schema.Column{RecordingsColumns[7]},
				RefColumns: []*schema.Column{ConsultationsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// SummariesColumns holds the columns for the "summaries" table.
	SummariesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "consultation_id", Type: field.TypeInt, Unique: true},
	}
	// SummariesTable holds the schema information for the "summaries" table.
	SummariesTable = &schema.Table{
		Name:       "summaries",
		Columns:    SummariesColumns,
		PrimaryKey: []*schema.Column{SummariesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "summaries_consultations_summary",
				Columns:    []*schema.Column{SummariesColumns[4]},
				RefColumns: []*schema.Column{ConsultationsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// TranscriptionsColumns holds the columns for the "transcriptions" table.
	TranscriptionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "text", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "recording_id", Type: field.TypeInt, Unique: true},
	}
	// TranscriptionsTable holds the schema information for the "transcriptions" table.
	TranscriptionsTable = &schema.Table{
		Name:       "transcriptions",
		Columns:    TranscriptionsColumns,
		PrimaryKey: []*schema.Column{TranscriptionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "transcriptions_recordings_transcription",
				Columns:    []*schema.Column{TranscriptionsColumns[4]},
				RefColumns: []*schema.Column{RecordingsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ConsultationsTable,
		NotesTable,
		RecordingsTable,
		SummariesTable,
		TranscriptionsTable,
	}
)

func init() {
	NotesTable.ForeignKeys[0].RefTable = ConsultationsTable
	RecordingsTable.ForeignKeys[0].RefTable = ConsultationsTable
	SummariesTable.ForeignKeys[0].RefTable = ConsultationsTable
	TranscriptionsTable.ForeignKeys[0].RefTable = RecordingsTable
}
