package storage

import (
	"context"
	"fmt"

	"github.com/felixmccuaig/lyrebird-health-interview/services/consultation/entity"
	"github.com/felixmccuaig/lyrebird-health-interview/services/consultation/storage/postgres/ent"
)

type storage struct {
	*ent.Client
}

type Storage interface {
	CreateConsultation(ctx context.Context, title string, description *string) (*entity.Consultation, error)
	GetConsultation(ctx context.Context, id int) (*entity.Consultation, error)
	ListConsultations(ctx context.Context) ([]*entity.Consultation, error)
	ConsultationExists(ctx context.Context, id int) (bool, error)
	DeleteConsultation(ctx context.Context, id int) error

	GetNoteByConsultation(ctx context.Context, consultationID int) (*entity.Note, error)
	UpsertNote(ctx context.Context, consultationID int, content string) (*entity.Note, error)

	CreateRecording(ctx context.Context, consultationID int, filename, filepath, mimetype string, size int64) (*entity.Recording, error)
	GetRecording(ctx context.Context, id int) (*entity.Recording, error)
	ListUntranscribedRecordings(ctx context.Context, consultationID int) ([]*entity.Recording, error)
	CreateTranscription(ctx context.Context, recordingID int, text string) (*entity.Transcription, error)

	UpsertSummary(ctx context.Context, consultationID int, content string) (*entity.Summary, bool, error)
}

func New(client *ent.Client) Storage {
	return &storage{
		Client: client,
	}
}

// rollback discards tx and keeps the original error when rollback itself fails.
func rollback(tx *ent.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		err = fmt.Errorf("%w: rolling back transaction: %v", err, rerr)
	}
	return err
}
