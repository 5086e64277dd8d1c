package usecase

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/felixmccuaig/lyrebird-health-interview/services/consultation/consts"
	"github.com/felixmccuaig/lyrebird-health-interview/services/consultation/entity"
)

func TestGenerateSummaryCreatedThenUpdated(t *testing.T) {
	usc, stg, _, _, generator := newTestUsecase()
	ctx := context.Background()

	created, err := usc.CreateConsultation(ctx, &entity.CreateConsultationRequest{Title: "Summary test"})
	require.NoError(t, err)
	id := created.Consultation.ID

	first, err := usc.GenerateSummary(ctx, &entity.GenerateSummaryRequest{ConsultationID: id})
	require.NoError(t, err)
	require.Equal(t, entity.SummaryCreated, first.Status)
	require.Equal(t, "generated summary", first.Summary.Content)
	require.Equal(t, consts.SummarySystemPrompt, generator.gotSystem)
	require.EqualValues(t, consts.SummaryMaxTokens, generator.gotMax)

	generator.content = "refreshed summary"
	second, err := usc.GenerateSummary(ctx, &entity.GenerateSummaryRequest{ConsultationID: id})
	require.NoError(t, err)
	require.Equal(t, entity.SummaryUpdated, second.Status)
	require.Equal(t, "refreshed summary", second.Summary.Content)

	// single identity per consultation, regeneration overwrites in place
	require.Equal(t, first.Summary.ID, second.Summary.ID)
	require.Len(t, stg.summaries, 1)
}

func TestGenerateSummaryUnknownConsultation(t *testing.T) {
	usc, _, _, _, generator := newTestUsecase()

	_, err := usc.GenerateSummary(context.Background(), &entity.GenerateSummaryRequest{ConsultationID: 500})
	require.ErrorIs(t, err, entity.ErrNotFound)
	require.Zero(t, generator.calls)
}

func TestGenerateSummaryEmptyCandidateIsSuccess(t *testing.T) {
	usc, _, _, _, generator := newTestUsecase()
	ctx := context.Background()
	generator.content = ""

	created, err := usc.CreateConsultation(ctx, &entity.CreateConsultationRequest{Title: "Empty summary"})
	require.NoError(t, err)

	res, err := usc.GenerateSummary(ctx, &entity.GenerateSummaryRequest{ConsultationID: created.Consultation.ID})
	require.NoError(t, err)
	require.Equal(t, entity.SummaryCreated, res.Status)
	require.Equal(t, "", res.Summary.Content)
}

func TestGenerateSummaryRemoteFailureWritesNothing(t *testing.T) {
	usc, stg, _, _, generator := newTestUsecase()
	ctx := context.Background()
	generator.err = entity.ErrRemote

	created, err := usc.CreateConsultation(ctx, &entity.CreateConsultationRequest{Title: "Failing summary"})
	require.NoError(t, err)

	_, err = usc.GenerateSummary(ctx, &entity.GenerateSummaryRequest{ConsultationID: created.Consultation.ID})
	require.ErrorIs(t, err, entity.ErrGenerationFailed)
	require.ErrorIs(t, err, entity.ErrRemote)
	require.Empty(t, stg.summaries)
}

func TestBuildSummaryDocumentOrderingAndSkips(t *testing.T) {
	description := "routine follow-up"
	consultation := &entity.Consultation{
		ID:          1,
		Title:       "Knee pain",
		Description: &description,
		Note:        &entity.Note{ID: 2, ConsultationID: 1, Content: "Patient walks with a limp."},
		Recordings: []*entity.Recording{
			{
				ID:            3,
				Filename:      "first.mp3",
				Transcription: &entity.Transcription{ID: 4, RecordingID: 3, Text: "First recording text."},
			},
			{
				ID: 5, Filename: "pending.mp3", // no transcription yet
			},
			{
				ID:            6,
				Filename:      "second.mp3",
				Transcription: &entity.Transcription{ID: 7, RecordingID: 6, Text: "Second recording text."},
			},
		},
	}

	document := buildSummaryDocument(consultation)

	require.Contains(t, document, "# Consultation Notes: Knee pain")
	require.Contains(t, document, "**Description:** routine follow-up")
	require.Contains(t, document, "## Doctor Consultation Notes")
	require.Contains(t, document, "Patient walks with a limp.")
	require.Contains(t, document, "### Recording: first.mp3")
	require.Contains(t, document, "### Recording: second.mp3")
	require.NotContains(t, document, "pending.mp3")

	firstIdx := bytes.Index([]byte(document), []byte("First recording text."))
	secondIdx := bytes.Index([]byte(document), []byte("Second recording text."))
	require.Less(t, firstIdx, secondIdx)
}

func TestBuildSummaryDocumentOmitsEmptySections(t *testing.T) {
	consultation := &entity.Consultation{
		ID:    1,
		Title: "Bare visit",
		Note:  &entity.Note{ID: 2, ConsultationID: 1, Content: ""},
	}

	document := buildSummaryDocument(consultation)

	require.Contains(t, document, "# Consultation Notes: Bare visit")
	require.NotContains(t, document, "**Description:**")
	require.NotContains(t, document, "## Doctor Consultation Notes")
	require.NotContains(t, document, "## Transcriptions")
}

func TestEndToEndConsultationFlow(t *testing.T) {
	usc, _, _, transcriber, generator := newTestUsecase()
	ctx := context.Background()
	transcriber.text = "Patient reports improvement."

	created, err := usc.CreateConsultation(ctx, &entity.CreateConsultationRequest{Title: "Follow-up"})
	require.NoError(t, err)
	id := created.Consultation.ID

	uploaded, err := usc.UploadRecording(ctx, &entity.UploadRecordingRequest{
		ConsultationID: id,
		Audio:          bytes.NewReader([]byte("audio")),
		Filename:       "followup.wav",
		Mimetype:       "audio/wav",
		Size:           5,
	})
	require.NoError(t, err)
	require.Equal(t, "Patient reports improvement.", uploaded.Transcription.Text)

	res, err := usc.GenerateSummary(ctx, &entity.GenerateSummaryRequest{ConsultationID: id})
	require.NoError(t, err)
	require.Equal(t, entity.SummaryCreated, res.Status)

	require.Contains(t, generator.gotDoc, "Follow-up")
	require.Contains(t, generator.gotDoc, "Patient reports improvement.")
	require.NotContains(t, generator.gotDoc, "## Doctor Consultation Notes")
}
