package usecase

import (
	"context"
	"fmt"

	"github.com/felixmccuaig/lyrebird-health-interview/pkg/logger"
	"github.com/felixmccuaig/lyrebird-health-interview/services/consultation/entity"
)

// UploadRecording runs the ingestion pipeline. Recording metadata commits
// before transcription is attempted, so a failed remote call leaves a
// queryable recording with no transcription. That partial state is kept on
// purpose: the audio stays on disk and RetryTranscription can pick it up.
func (u *usecase) UploadRecording(ctx context.Context, req *entity.UploadRecordingRequest) (*entity.UploadRecordingResponse, error) {
	log := logger.FromContext(ctx)

	exists, err := u.storage.ConsultationExists(ctx, req.ConsultationID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("consultation %d: %w", req.ConsultationID, entity.ErrNotFound)
	}

	path, err := u.files.Save(ctx, req.Audio, req.Filename)
	if err != nil {
		return nil, err
	}

	recording, err := u.storage.CreateRecording(ctx, req.ConsultationID, req.Filename, path, req.Mimetype, req.Size)
	if err != nil {
		return nil, err
	}
	log.Info("recording stored",
		"recording_id", recording.ID,
		"consultation_id", req.ConsultationID,
		"size", req.Size)

	transcription, err := u.transcribeStored(ctx, recording)
	if err != nil {
		return nil, err
	}
	recording.Transcription = transcription

	return &entity.UploadRecordingResponse{
		Recording:     recording,
		Transcription: transcription,
	}, nil
}

// ListPendingTranscriptions is the reconciliation read: recordings whose
// ingestion committed but whose transcription never did.
func (u *usecase) ListPendingTranscriptions(ctx context.Context, consultationID int) ([]*entity.Recording, error) {
	exists, err := u.storage.ConsultationExists(ctx, consultationID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("consultation %d: %w", consultationID, entity.ErrNotFound)
	}

	return u.storage.ListUntranscribedRecordings(ctx, consultationID)
}

// RetryTranscription re-runs step 3 and 4 of ingestion for a recording left
// without a transcription. Already-transcribed recordings return their
// existing transcription unchanged.
func (u *usecase) RetryTranscription(ctx context.Context, recordingID int) (*entity.UploadRecordingResponse, error) {
	recording, err := u.storage.GetRecording(ctx, recordingID)
	if err != nil {
		return nil, err
	}

	if recording.Transcription != nil {
		return &entity.UploadRecordingResponse{
			Recording:     recording,
			Transcription: recording.Transcription,
		}, nil
	}

	transcription, err := u.transcribeStored(ctx, recording)
	if err != nil {
		return nil, err
	}
	recording.Transcription = transcription

	return &entity.UploadRecordingResponse{
		Recording:     recording,
		Transcription: transcription,
	}, nil
}

func (u *usecase) transcribeStored(ctx context.Context, recording *entity.Recording) (*entity.Transcription, error) {
	log := logger.FromContext(ctx)

	audio, err := u.files.Open(ctx, recording.Filepath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrTranscriptionFailed, err)
	}
	defer audio.Close()

	text, err := u.transcriber.Transcribe(ctx, audio, recording.Filename, recording.Mimetype)
	if err != nil {
		log.Error("transcription failed", "recording_id", recording.ID, "error", err)
		return nil, fmt.Errorf("%w: %w", entity.ErrTranscriptionFailed, err)
	}

	transcription, err := u.storage.CreateTranscription(ctx, recording.ID, text)
	if err != nil {
		return nil, err
	}
	log.Info("transcription stored", "recording_id", recording.ID, "text_length", len(text))

	return transcription, nil
}
