package usecase

import (
	"context"
	"io"

	"github.com/felixmccuaig/lyrebird-health-interview/services/consultation/entity"
	"github.com/felixmccuaig/lyrebird-health-interview/services/consultation/storage"
)

// TranscriptionClient is the speech-to-text boundary. Implementations wrap
// failures in entity.ErrRemote.
type TranscriptionClient interface {
	Transcribe(ctx context.Context, audio io.Reader, filename, mimetype string) (string, error)
}

// GenerationClient is the text-generation boundary. An empty candidate text
// with a nil error means the model produced no usable content.
type GenerationClient interface {
	Complete(ctx context.Context, systemPrompt, document string, maxTokens int64) (string, error)
}

type Usecase interface {
	CreateConsultation(ctx context.Context, req *entity.CreateConsultationRequest) (*entity.CreateConsultationResponse, error)
	GetConsultation(ctx context.Context, id int) (*entity.Consultation, error)
	ListConsultations(ctx context.Context) ([]*entity.Consultation, error)
	DeleteConsultation(ctx context.Context, id int) error

	GetNote(ctx context.Context, consultationID int) (*entity.Note, error)
	UpsertNote(ctx context.Context, req *entity.UpsertNoteRequest) (*entity.UpsertNoteResponse, error)

	UploadRecording(ctx context.Context, req *entity.UploadRecordingRequest) (*entity.UploadRecordingResponse, error)
	ListPendingTranscriptions(ctx context.Context, consultationID int) ([]*entity.Recording, error)
	RetryTranscription(ctx context.Context, recordingID int) (*entity.UploadRecordingResponse, error)

	GenerateSummary(ctx context.Context, req *entity.GenerateSummaryRequest) (*entity.GenerateSummaryResponse, error)
}

type usecase struct {
	storage     storage.Storage
	files       storage.FileStore
	transcriber TranscriptionClient
	generator   GenerationClient
}

func New(stg storage.Storage, files storage.FileStore, transcriber TranscriptionClient, generator GenerationClient) Usecase {
	return &usecase{
		storage:     stg,
		files:       files,
		transcriber: transcriber,
		generator:   generator,
	}
}
