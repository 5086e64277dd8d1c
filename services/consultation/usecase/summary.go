package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/felixmccuaig/lyrebird-health-interview/pkg/logger"
	"github.com/felixmccuaig/lyrebird-health-interview/services/consultation/consts"
	"github.com/felixmccuaig/lyrebird-health-interview/services/consultation/entity"
)

// GenerateSummary combines the consultation's textual artifacts into one
// document, sends it to the generation client and upserts the single summary
// row. A model answer with no text writes an empty summary and still counts
// as success. No partial summary is written when the remote call fails.
func (u *usecase) GenerateSummary(ctx context.Context, req *entity.GenerateSummaryRequest) (*entity.GenerateSummaryResponse, error) {
	log := logger.FromContext(ctx)

	consultation, err := u.storage.GetConsultation(ctx, req.ConsultationID)
	if err != nil {
		return nil, err
	}

	document := buildSummaryDocument(consultation)

	content, err := u.generator.Complete(ctx, consts.SummarySystemPrompt, document, consts.SummaryMaxTokens)
	if err != nil {
		log.Error("summary generation failed", "consultation_id", consultation.ID, "error", err)
		return nil, fmt.Errorf("%w: %w", entity.ErrGenerationFailed, err)
	}

	summary, created, err := u.storage.UpsertSummary(ctx, consultation.ID, content)
	if err != nil {
		return nil, err
	}

	status := entity.SummaryUpdated
	if created {
		status = entity.SummaryCreated
	}
	log.Info("summary generated",
		"consultation_id", consultation.ID,
		"status", status,
		"content_length", len(content))

	return &entity.GenerateSummaryResponse{
		Summary: summary,
		Status:  status,
	}, nil
}

// buildSummaryDocument renders the aggregate as markdown: title header,
// optional description, the doctor's note when non-empty, then one section
// per transcribed recording in insertion order. Recordings still waiting on
// a transcription are skipped.
func buildSummaryDocument(consultation *entity.Consultation) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Consultation Notes: %s\n\n", consultation.Title)
	if consultation.Description != nil && *consultation.Description != "" {
		fmt.Fprintf(&b, "**Description:** %s\n\n", *consultation.Description)
	}

	if consultation.Note != nil && consultation.Note.Content != "" {
		b.WriteString("## Doctor Consultation Notes\n\n")
		fmt.Fprintf(&b, "%s\n\n", consultation.Note.Content)
	}

	var transcribed []*entity.Recording
	for _, recording := range consultation.Recordings {
		if recording.Transcription != nil && recording.Transcription.Text != "" {
			transcribed = append(transcribed, recording)
		}
	}
	if len(transcribed) > 0 {
		b.WriteString("## Transcriptions\n\n")
		for _, recording := range transcribed {
			fmt.Fprintf(&b, "### Recording: %s\n\n", recording.Filename)
			fmt.Fprintf(&b, "%s\n\n", recording.Transcription.Text)
		}
	}

	return b.String()
}
