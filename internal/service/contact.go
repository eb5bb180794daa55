package service

import (
	"context"
	"log/slog"

	"github.com/bigkaa/agency-site/internal/domain/model"
	"github.com/bigkaa/agency-site/internal/store"
)

// ContactService — форма обратной связи на главной странице.
type ContactService struct {
	store     *store.Store
	validator *Validator
	logger    *slog.Logger
}

// NewContactService создаёт ContactService.
func NewContactService(st *store.Store, v *Validator, logger *slog.Logger) *ContactService {
	return &ContactService{
		store:     st,
		validator: v,
		logger:    logger.With(slog.String("component", "service.contact")),
	}
}

// Submit проверяет форму по схеме и при успехе сохраняет заявку.
// Если схема нарушена — хранилище не изменяется, возвращаются ошибки полей.
func (s *ContactService) Submit(ctx context.Context, in model.NewContact) (model.ContactSubmission, FieldErrors) {
	if errs := s.validator.Struct(in); errs != nil {
		formSubmissionsTotal.WithLabelValues("contact", resultRejected).Inc()
		s.logger.DebugContext(ctx, "Заявка отклонена валидацией",
			slog.Int("fields", len(errs)),
		)
		return model.ContactSubmission{}, errs
	}

	rec := s.store.AddContact(in)
	formSubmissionsTotal.WithLabelValues("contact", resultAccepted).Inc()
	s.logger.InfoContext(ctx, "Заявка сохранена",
		slog.String("id", rec.ID),
		slog.String("city", rec.City),
	)
	return rec, nil
}
