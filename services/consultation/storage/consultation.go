package storage

import (
	"context"
	"fmt"

	"github.com/felixmccuaig/lyrebird-health-interview/pkg/logger"
	"github.com/felixmccuaig/lyrebird-health-interview/services/consultation/entity"
	"github.com/felixmccuaig/lyrebird-health-interview/services/consultation/storage/postgres/ent"
	"github.com/felixmccuaig/lyrebird-health-interview/services/consultation/storage/postgres/ent/consultation"
	"github.com/felixmccuaig/lyrebird-health-interview/services/consultation/storage/postgres/ent/recording"
)

// CreateConsultation writes the consultation and its mandatory empty note in
// one transaction. A consultation is never observable without a note.
func (s *storage) CreateConsultation(ctx context.Context, title string, description *string) (*entity.Consultation, error) {
	log := logger.FromContext(ctx)

	tx, err := s.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	entConsultation, err := tx.Consultation.Create().
		SetTitle(title).
		SetNillableDescription(description).
		Save(ctx)
	if err != nil {
		log.Error("failed to create consultation", "error", err)
		return nil, rollback(tx, fmt.Errorf("failed to create consultation: %w", err))
	}

	entNote, err := tx.Note.Create().
		SetContent("").
		SetConsultationID(entConsultation.ID).
		Save(ctx)
	if err != nil {
		log.Error("failed to create note", "error", err)
		return nil, rollback(tx, fmt.Errorf("failed to create note: %w", err))
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	log.Debug("created consultation", "consultation_id", entConsultation.ID)

	result := entity.MakeConsultationEntToEntity(entConsultation)
	result.Note = entity.MakeNoteEntToEntity(entNote)
	return result, nil
}

func (s *storage) GetConsultation(ctx context.Context, id int) (*entity.Consultation, error) {
	entConsultation, err := s.Consultation.Query().
		Where(consultation.ID(id)).
		WithNote().
		WithSummary().
		WithRecordings(func(q *ent.RecordingQuery) {
			q.WithTranscription().Order(ent.Asc(recording.FieldID))
		}).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("consultation %d: %w", id, entity.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get consultation by id: %w", err)
	}

	return entity.MakeConsultationEntToEntity(entConsultation), nil
}

func (s *storage) ListConsultations(ctx context.Context) ([]*entity.Consultation, error) {
	entConsultations, err := s.Consultation.Query().
		WithNote().
		WithSummary().
		WithRecordings(func(q *ent.RecordingQuery) {
			q.WithTranscription().Order(ent.Asc(recording.FieldID))
		}).
		Order(ent.Asc(consultation.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list consultations: %w", err)
	}

	return entity.MakeConsultationsArrayEntToEntity(entConsultations), nil
}

func (s *storage) ConsultationExists(ctx context.Context, id int) (bool, error) {
	exists, err := s.Consultation.Query().
		Where(consultation.ID(id)).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check consultation existence: %w", err)
	}

	return exists, nil
}

// DeleteConsultation removes the aggregate root; notes, recordings,
// transcriptions and summaries go with it through ON DELETE CASCADE.
func (s *storage) DeleteConsultation(ctx context.Context, id int) error {
	err := s.Consultation.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("consultation %d: %w", id, entity.ErrNotFound)
		}
		return fmt.Errorf("failed to delete consultation: %w", err)
	}

	return nil
}
