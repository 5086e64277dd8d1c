package entity

import (
	"time"

	"github.com/felixmccuaig/lyrebird-health-interview/services/consultation/storage/postgres/ent"
)

type (
	// Consultation is the aggregate root. It always owns exactly one Note,
	// zero or one Summary and zero or more Recordings.
	Consultation struct {
		ID          int          `json:"id"`
		Title       string       `json:"title"`
		Description *string      `json:"description,omitempty"`
		Note        *Note        `json:"note,omitempty"`
		Summary     *Summary     `json:"summary,omitempty"`
		Recordings  []*Recording `json:"recordings"`
		CreatedAt   time.Time    `json:"created_at"`
		UpdatedAt   time.Time    `json:"updated_at"`
	}

	Note struct {
		ID             int       `json:"id"`
		ConsultationID int       `json:"consultation_id"`
		Content        string    `json:"content"`
		CreatedAt      time.Time `json:"created_at"`
		UpdatedAt      time.Time `json:"updated_at"`
	}

	// Recording metadata is immutable after creation. Transcription is nil
	// while transcription is in flight or has failed.
	Recording struct {
		ID             int            `json:"id"`
		ConsultationID int            `json:"consultation_id"`
		Filename       string         `json:"filename"`
		Filepath       string         `json:"filepath"`
		Mimetype       string         `json:"mimetype"`
		Size           int64          `json:"size"`
		Transcription  *Transcription `json:"transcription,omitempty"`
		CreatedAt      time.Time      `json:"created_at"`
		UpdatedAt      time.Time      `json:"updated_at"`
	}

	Transcription struct {
		ID          int       `json:"id"`
		RecordingID int       `json:"recording_id"`
		Text        string    `json:"text"`
		CreatedAt   time.Time `json:"created_at"`
		UpdatedAt   time.Time `json:"updated_at"`
	}

	Summary struct {
		ID             int       `json:"id"`
		ConsultationID int       `json:"consultation_id"`
		Content        string    `json:"content"`
		CreatedAt      time.Time `json:"created_at"`
		UpdatedAt      time.Time `json:"updated_at"`
	}
)

func MakeConsultationEntToEntity(consultation *ent.Consultation) *Consultation {
	var note *Note
	if consultation.Edges.Note != nil {
		note = MakeNoteEntToEntity(consultation.Edges.Note)
	}

	var summary *Summary
	if consultation.Edges.Summary != nil {
		summary = MakeSummaryEntToEntity(consultation.Edges.Summary)
	}

	return &Consultation{
		ID:          consultation.ID,
		Title:       consultation.Title,
		Description: consultation.Description,
		Note:        note,
		Summary:     summary,
		Recordings:  MakeRecordingsArrayEntToEntity(consultation.Edges.Recordings),
		CreatedAt:   consultation.CreatedAt,
		UpdatedAt:   consultation.UpdatedAt,
	}
}

func MakeConsultationsArrayEntToEntity(consultations []*ent.Consultation) []*Consultation {
	consultationsEntity := make([]*Consultation, len(consultations))
	for i, consultation := range consultations {
		consultationsEntity[i] = MakeConsultationEntToEntity(consultation)
	}

	return consultationsEntity
}

func MakeNoteEntToEntity(note *ent.Note) *Note {
	return &Note{
		ID:             note.ID,
		ConsultationID: note.ConsultationID,
		Content:        note.Content,
		CreatedAt:      note.CreatedAt,
		UpdatedAt:      note.UpdatedAt,
	}
}

func MakeRecordingEntToEntity(recording *ent.Recording) *Recording {
	var transcription *Transcription
	if recording.Edges.Transcription != nil {
		transcription = MakeTranscriptionEntToEntity(recording.Edges.Transcription)
	}

	return &Recording{
		ID:             recording.ID,
		ConsultationID: recording.ConsultationID,
		Filename:       recording.Filename,
		Filepath:       recording.Filepath,
		Mimetype:       recording.Mimetype,
		Size:           recording.Size,
		Transcription:  transcription,
		CreatedAt:      recording.CreatedAt,
		UpdatedAt:      recording.UpdatedAt,
	}
}

func MakeRecordingsArrayEntToEntity(recordings []*ent.Recording) []*Recording {
	recordingsEntity := make([]*Recording, len(recordings))
	for i, recording := range recordings {
		recordingsEntity[i] = MakeRecordingEntToEntity(recording)
	}

	return recordingsEntity
}

func MakeTranscriptionEntToEntity(transcription *ent.Transcription) *Transcription {
	return &Transcription{
		ID:          transcription.ID,
		RecordingID: transcription.RecordingID,
		Text:        transcription.Text,
		CreatedAt:   transcription.CreatedAt,
		UpdatedAt:   transcription.UpdatedAt,
	}
}

func MakeSummaryEntToEntity(summary *ent.Summary) *Summary {
	return &Summary{
		ID:             summary.ID,
		ConsultationID: summary.ConsultationID,
		Content:        summary.Content,
		CreatedAt:      summary.CreatedAt,
		UpdatedAt:      summary.UpdatedAt,
	}
}
