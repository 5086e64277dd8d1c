package storage

import (
	"context"
	"fmt"

	"github.com/felixmccuaig/lyrebird-health-interview/pkg/logger"
	"github.com/felixmccuaig/lyrebird-health-interview/services/consultation/entity"
	"github.com/felixmccuaig/lyrebird-health-interview/services/consultation/storage/postgres/ent"
	"github.com/felixmccuaig/lyrebird-health-interview/services/consultation/storage/postgres/ent/recording"
)

func (s *storage) CreateRecording(ctx context.Context, consultationID int, filename, filepath, mimetype string, size int64) (*entity.Recording, error) {
	log := logger.FromContext(ctx)

	entRecording, err := s.Recording.Create().
		SetConsultationID(consultationID).
		SetFilename(filename).
		SetFilepath(filepath).
		SetMimetype(mimetype).
		SetSize(size).
		Save(ctx)
	if err != nil {
		log.Error("failed to create recording", "error", err)
		return nil, fmt.Errorf("failed to create recording: %w", err)
	}
	log.Debug("created recording", "recording_id", entRecording.ID)

	return entity.MakeRecordingEntToEntity(entRecording), nil
}

func (s *storage) GetRecording(ctx context.Context, id int) (*entity.Recording, error) {
	entRecording, err := s.Recording.Query().
		Where(recording.ID(id)).
		WithTranscription().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("recording %d: %w", id, entity.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get recording by id: %w", err)
	}

	return entity.MakeRecordingEntToEntity(entRecording), nil
}

// ListUntranscribedRecordings backs the reconciliation pass: recordings whose
// ingestion committed metadata but never got a transcription.
func (s *storage) ListUntranscribedRecordings(ctx context.Context, consultationID int) ([]*entity.Recording, error) {
	entRecordings, err := s.Recording.Query().
		Where(
			recording.ConsultationID(consultationID),
			recording.Not(recording.HasTranscription()),
		).
		Order(ent.Asc(recording.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list untranscribed recordings: %w", err)
	}

	return entity.MakeRecordingsArrayEntToEntity(entRecordings), nil
}

func (s *storage) CreateTranscription(ctx context.Context, recordingID int, text string) (*entity.Transcription, error) {
	log := logger.FromContext(ctx)

	entTranscription, err := s.Transcription.Create().
		SetRecordingID(recordingID).
		SetText(text).
		Save(ctx)
	if err != nil {
		log.Error("failed to create transcription", "error", err)
		return nil, fmt.Errorf("failed to create transcription: %w", err)
	}

	return entity.MakeTranscriptionEntToEntity(entTranscription), nil
}
