package storage

import (
	"context"
	"fmt"

	"github.com/felixmccuaig/lyrebird-health-interview/pkg/logger"
	"github.com/felixmccuaig/lyrebird-health-interview/services/consultation/entity"
	"github.com/felixmccuaig/lyrebird-health-interview/services/consultation/storage/postgres/ent"
	"github.com/felixmccuaig/lyrebird-health-interview/services/consultation/storage/postgres/ent/note"
)

func (s *storage) GetNoteByConsultation(ctx context.Context, consultationID int) (*entity.Note, error) {
	entNote, err := s.Note.Query().
		Where(note.ConsultationID(consultationID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("note for consultation %d: %w", consultationID, entity.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get note by consultation id: %w", err)
	}

	return entity.MakeNoteEntToEntity(entNote), nil
}

// UpsertNote is a single conditional write keyed by consultation_id, so two
// concurrent upserts cannot interleave a read-then-write window. Last writer
// wins on content.
func (s *storage) UpsertNote(ctx context.Context, consultationID int, content string) (*entity.Note, error) {
	log := logger.FromContext(ctx)

	err := s.Note.Create().
		SetContent(content).
		SetConsultationID(consultationID).
		OnConflictColumns(note.FieldConsultationID).
		UpdateContent().
		UpdateUpdatedAt().
		Exec(ctx)
	if err != nil {
		log.Error("failed to upsert note", "error", err)
		return nil, fmt.Errorf("failed to upsert note: %w", err)
	}

	return s.GetNoteByConsultation(ctx, consultationID)
}
