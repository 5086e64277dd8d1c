package usecase

import (
	"context"
	"fmt"

	"github.com/felixmccuaig/lyrebird-health-interview/services/consultation/entity"
)

func (u *usecase) GetNote(ctx context.Context, consultationID int) (*entity.Note, error) {
	return u.storage.GetNoteByConsultation(ctx, consultationID)
}

// UpsertNote is idempotent: repeating the call with the same content leaves
// the same note row in the same state. Concurrent writers race last-write-wins
// on content, never on identity.
func (u *usecase) UpsertNote(ctx context.Context, req *entity.UpsertNoteRequest) (*entity.UpsertNoteResponse, error) {
	exists, err := u.storage.ConsultationExists(ctx, req.ConsultationID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("consultation %d: %w", req.ConsultationID, entity.ErrNotFound)
	}

	note, err := u.storage.UpsertNote(ctx, req.ConsultationID, req.Content)
	if err != nil {
		return nil, err
	}

	return &entity.UpsertNoteResponse{
		Note: note,
	}, nil
}
