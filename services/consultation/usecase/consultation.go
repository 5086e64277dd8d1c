package usecase

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/felixmccuaig/lyrebird-health-interview/pkg/logger"
	"github.com/felixmccuaig/lyrebird-health-interview/services/consultation/consts"
	"github.com/felixmccuaig/lyrebird-health-interview/services/consultation/entity"
)

func (u *usecase) CreateConsultation(ctx context.Context, req *entity.CreateConsultationRequest) (*entity.CreateConsultationResponse, error) {
	log := logger.FromContext(ctx)

	title := strings.TrimSpace(req.Title)
	if length := utf8.RuneCountInString(title); length < consts.TitleMinLen || length > consts.TitleMaxLen {
		return nil, fmt.Errorf("%w: title must be between %d and %d characters", entity.ErrValidation, consts.TitleMinLen, consts.TitleMaxLen)
	}

	consultation, err := u.storage.CreateConsultation(ctx, title, req.Description)
	if err != nil {
		return nil, err
	}
	log.Info("consultation created", "consultation_id", consultation.ID)

	return &entity.CreateConsultationResponse{
		Consultation: consultation,
	}, nil
}

func (u *usecase) GetConsultation(ctx context.Context, id int) (*entity.Consultation, error) {
	return u.storage.GetConsultation(ctx, id)
}

func (u *usecase) ListConsultations(ctx context.Context) ([]*entity.Consultation, error) {
	return u.storage.ListConsultations(ctx)
}

func (u *usecase) DeleteConsultation(ctx context.Context, id int) error {
	return u.storage.DeleteConsultation(ctx, id)
}
