package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/felixmccuaig/lyrebird-health-interview/services/consultation/entity"
)

func TestCreateConsultationAttachesEmptyNote(t *testing.T) {
	usc, _, _, _, _ := newTestUsecase()

	description := "annual check-up"
	res, err := usc.CreateConsultation(context.Background(), &entity.CreateConsultationRequest{
		Title:       "Initial consultation",
		Description: &description,
	})
	require.NoError(t, err)
	require.NotNil(t, res.Consultation)
	require.NotZero(t, res.Consultation.ID)
	require.Equal(t, "Initial consultation", res.Consultation.Title)
	require.NotNil(t, res.Consultation.Note)
	require.Equal(t, "", res.Consultation.Note.Content)
	require.Equal(t, res.Consultation.ID, res.Consultation.Note.ConsultationID)
}

func TestCreateConsultationValidatesTitle(t *testing.T) {
	usc, _, _, _, _ := newTestUsecase()

	for _, title := range []string{"", "ab", "  a  ", strings.Repeat("x", 256)} {
		_, err := usc.CreateConsultation(context.Background(), &entity.CreateConsultationRequest{
			Title: title,
		})
		require.ErrorIs(t, err, entity.ErrValidation, "title %q", title)
	}
}

func TestGetConsultationNotFound(t *testing.T) {
	usc, _, _, _, _ := newTestUsecase()

	_, err := usc.GetConsultation(context.Background(), 42)
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestListConsultationsOrdered(t *testing.T) {
	usc, _, _, _, _ := newTestUsecase()
	ctx := context.Background()

	first, err := usc.CreateConsultation(ctx, &entity.CreateConsultationRequest{Title: "First visit"})
	require.NoError(t, err)
	second, err := usc.CreateConsultation(ctx, &entity.CreateConsultationRequest{Title: "Second visit"})
	require.NoError(t, err)

	consultations, err := usc.ListConsultations(ctx)
	require.NoError(t, err)
	require.Len(t, consultations, 2)
	require.Equal(t, first.Consultation.ID, consultations[0].ID)
	require.Equal(t, second.Consultation.ID, consultations[1].ID)
}

func TestDeleteConsultationCascades(t *testing.T) {
	usc, stg, _, _, _ := newTestUsecase()
	ctx := context.Background()

	res, err := usc.CreateConsultation(ctx, &entity.CreateConsultationRequest{Title: "To delete"})
	require.NoError(t, err)
	id := res.Consultation.ID

	require.NoError(t, usc.DeleteConsultation(ctx, id))

	_, err = usc.GetConsultation(ctx, id)
	require.ErrorIs(t, err, entity.ErrNotFound)
	_, err = usc.GetNote(ctx, id)
	require.ErrorIs(t, err, entity.ErrNotFound)
	require.Empty(t, stg.notes)

	require.ErrorIs(t, usc.DeleteConsultation(ctx, id), entity.ErrNotFound)
}
