package storage

import (
	"context"
	"fmt"

	"github.com/felixmccuaig/lyrebird-health-interview/pkg/logger"
	"github.com/felixmccuaig/lyrebird-health-interview/services/consultation/entity"
	"github.com/felixmccuaig/lyrebird-health-interview/services/consultation/storage/postgres/ent"
	"github.com/felixmccuaig/lyrebird-health-interview/services/consultation/storage/postgres/ent/summary"
)

// UpsertSummary overwrites the single summary row per consultation in place,
// or creates it on first generation. The returned bool is true when a new row
// was created. Runs in a transaction; the unique consultation_id column is the
// backstop against duplicate rows.
func (s *storage) UpsertSummary(ctx context.Context, consultationID int, content string) (*entity.Summary, bool, error) {
	log := logger.FromContext(ctx)

	tx, err := s.Tx(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to begin transaction: %w", err)
	}

	existing, err := tx.Summary.Query().
		Where(summary.ConsultationID(consultationID)).
		Only(ctx)

	switch {
	case err == nil:
		updated, uerr := tx.Summary.UpdateOne(existing).
			SetContent(content).
			Save(ctx)
		if uerr != nil {
			log.Error("failed to update summary", "error", uerr)
			return nil, false, rollback(tx, fmt.Errorf("failed to update summary: %w", uerr))
		}
		if cerr := tx.Commit(); cerr != nil {
			return nil, false, fmt.Errorf("failed to commit transaction: %w", cerr)
		}
		return entity.MakeSummaryEntToEntity(updated), false, nil

	case ent.IsNotFound(err):
		created, cerr := tx.Summary.Create().
			SetConsultationID(consultationID).
			SetContent(content).
			Save(ctx)
		if cerr != nil {
			log.Error("failed to create summary", "error", cerr)
			return nil, false, rollback(tx, fmt.Errorf("failed to create summary: %w", cerr))
		}
		if cerr := tx.Commit(); cerr != nil {
			return nil, false, fmt.Errorf("failed to commit transaction: %w", cerr)
		}
		return entity.MakeSummaryEntToEntity(created), true, nil

	default:
		return nil, false, rollback(tx, fmt.Errorf("failed to query summary: %w", err))
	}
}
