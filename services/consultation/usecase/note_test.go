package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/felixmccuaig/lyrebird-health-interview/services/consultation/entity"
)

func TestUpsertNoteKeepsIdentityAcrossUpdates(t *testing.T) {
	usc, _, _, _, _ := newTestUsecase()
	ctx := context.Background()

	created, err := usc.CreateConsultation(ctx, &entity.CreateConsultationRequest{Title: "Note test"})
	require.NoError(t, err)
	id := created.Consultation.ID

	first, err := usc.UpsertNote(ctx, &entity.UpsertNoteRequest{ConsultationID: id, Content: ""})
	require.NoError(t, err)
	second, err := usc.UpsertNote(ctx, &entity.UpsertNoteRequest{ConsultationID: id, Content: "hello"})
	require.NoError(t, err)
	require.Equal(t, first.Note.ID, second.Note.ID)

	note, err := usc.GetNote(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "hello", note.Content)
	require.Equal(t, first.Note.ID, note.ID)
}

func TestUpsertNoteIsIdempotent(t *testing.T) {
	usc, _, _, _, _ := newTestUsecase()
	ctx := context.Background()

	created, err := usc.CreateConsultation(ctx, &entity.CreateConsultationRequest{Title: "Note test"})
	require.NoError(t, err)
	id := created.Consultation.ID

	first, err := usc.UpsertNote(ctx, &entity.UpsertNoteRequest{ConsultationID: id, Content: "same"})
	require.NoError(t, err)
	second, err := usc.UpsertNote(ctx, &entity.UpsertNoteRequest{ConsultationID: id, Content: "same"})
	require.NoError(t, err)

	require.Equal(t, first.Note.ID, second.Note.ID)
	require.Equal(t, first.Note.Content, second.Note.Content)
}

func TestUpsertNoteUnknownConsultation(t *testing.T) {
	usc, _, _, _, _ := newTestUsecase()

	_, err := usc.UpsertNote(context.Background(), &entity.UpsertNoteRequest{ConsultationID: 99, Content: "x"})
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestGetNoteUnknownConsultation(t *testing.T) {
	usc, _, _, _, _ := newTestUsecase()

	_, err := usc.GetNote(context.Background(), 99)
	require.ErrorIs(t, err, entity.ErrNotFound)
}
