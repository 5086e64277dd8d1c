package usecase

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/felixmccuaig/lyrebird-health-interview/services/consultation/entity"
)

func uploadRequest(consultationID int) *entity.UploadRecordingRequest {
	return &entity.UploadRecordingRequest{
		ConsultationID: consultationID,
		Audio:          bytes.NewReader([]byte("fake audio bytes")),
		Filename:       "visit.mp3",
		Mimetype:       "audio/mpeg",
		Size:           16,
	}
}

func TestUploadRecordingIngestsAndTranscribes(t *testing.T) {
	usc, _, _, transcriber, _ := newTestUsecase()
	ctx := context.Background()

	created, err := usc.CreateConsultation(ctx, &entity.CreateConsultationRequest{Title: "Recording test"})
	require.NoError(t, err)
	id := created.Consultation.ID

	res, err := usc.UploadRecording(ctx, uploadRequest(id))
	require.NoError(t, err)
	require.NotNil(t, res.Recording)
	require.NotNil(t, res.Transcription)
	require.Equal(t, id, res.Recording.ConsultationID)
	require.Equal(t, res.Recording.ID, res.Transcription.RecordingID)
	require.Equal(t, "transcribed text", res.Transcription.Text)
	require.Equal(t, "visit.mp3", res.Recording.Filename)
	require.Equal(t, []byte("fake audio bytes"), transcriber.audio)

	// transcription is read back from the stored blob, not the request stream
	consultation, err := usc.GetConsultation(ctx, id)
	require.NoError(t, err)
	require.Len(t, consultation.Recordings, 1)
	require.NotNil(t, consultation.Recordings[0].Transcription)
}

func TestUploadRecordingUnknownConsultationPersistsNothing(t *testing.T) {
	usc, stg, files, transcriber, _ := newTestUsecase()

	_, err := usc.UploadRecording(context.Background(), uploadRequest(1234))
	require.ErrorIs(t, err, entity.ErrNotFound)
	require.Empty(t, stg.recordings)
	require.Empty(t, files.files)
	require.Zero(t, transcriber.calls)
}

func TestUploadRecordingTranscriptionFailureKeepsRecording(t *testing.T) {
	usc, stg, _, transcriber, _ := newTestUsecase()
	ctx := context.Background()
	transcriber.err = entity.ErrRemote

	created, err := usc.CreateConsultation(ctx, &entity.CreateConsultationRequest{Title: "Failure test"})
	require.NoError(t, err)
	id := created.Consultation.ID

	_, err = usc.UploadRecording(ctx, uploadRequest(id))
	require.ErrorIs(t, err, entity.ErrTranscriptionFailed)
	require.ErrorIs(t, err, entity.ErrRemote)

	// recording survives without a transcription and is visible to reconciliation
	require.Len(t, stg.recordings, 1)
	require.Empty(t, stg.transcriptions)

	pending, err := usc.ListPendingTranscriptions(ctx, id)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	require.Nil(t, pending[0].Transcription)
}

func TestRetryTranscriptionAfterFailure(t *testing.T) {
	usc, _, _, transcriber, _ := newTestUsecase()
	ctx := context.Background()
	transcriber.err = entity.ErrRemote

	created, err := usc.CreateConsultation(ctx, &entity.CreateConsultationRequest{Title: "Retry test"})
	require.NoError(t, err)
	id := created.Consultation.ID

	_, err = usc.UploadRecording(ctx, uploadRequest(id))
	require.ErrorIs(t, err, entity.ErrTranscriptionFailed)

	pending, err := usc.ListPendingTranscriptions(ctx, id)
	require.NoError(t, err)
	require.Len(t, pending, 1)

	transcriber.err = nil
	res, err := usc.RetryTranscription(ctx, pending[0].ID)
	require.NoError(t, err)
	require.NotNil(t, res.Transcription)
	require.Equal(t, "transcribed text", res.Transcription.Text)

	pending, err = usc.ListPendingTranscriptions(ctx, id)
	require.NoError(t, err)
	require.Empty(t, pending)
}

func TestRetryTranscriptionIsIdempotentOnTranscribedRecording(t *testing.T) {
	usc, _, _, transcriber, _ := newTestUsecase()
	ctx := context.Background()

	created, err := usc.CreateConsultation(ctx, &entity.CreateConsultationRequest{Title: "Retry idempotence"})
	require.NoError(t, err)

	uploaded, err := usc.UploadRecording(ctx, uploadRequest(created.Consultation.ID))
	require.NoError(t, err)
	require.Equal(t, 1, transcriber.calls)

	res, err := usc.RetryTranscription(ctx, uploaded.Recording.ID)
	require.NoError(t, err)
	require.Equal(t, uploaded.Transcription.ID, res.Transcription.ID)
	require.Equal(t, 1, transcriber.calls)
}

func TestRetryTranscriptionUnknownRecording(t *testing.T) {
	usc, _, _, _, _ := newTestUsecase()

	_, err := usc.RetryTranscription(context.Background(), 77)
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestListPendingTranscriptionsUnknownConsultation(t *testing.T) {
	usc, _, _, _, _ := newTestUsecase()

	_, err := usc.ListPendingTranscriptions(context.Background(), 77)
	require.ErrorIs(t, err, entity.ErrNotFound)
}
