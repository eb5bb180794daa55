package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/bigkaa/agency-site/internal/domain/model"
	"github.com/bigkaa/agency-site/internal/store"
)

// NewsletterService — подписка на рассылку.
// Формат email проверяет браузер (input type=email required),
// сервер отбрасывает только пустое значение.
type NewsletterService struct {
	store  *store.Store
	logger *slog.Logger
}

// NewNewsletterService создаёт NewsletterService.
func NewNewsletterService(st *store.Store, logger *slog.Logger) *NewsletterService {
	return &NewsletterService{
		store:  st,
		logger: logger.With(slog.String("component", "service.newsletter")),
	}
}

// Subscribe добавляет подписчика. Пустой email — тихий no-op (false).
func (s *NewsletterService) Subscribe(ctx context.Context, email string) (model.Subscriber, bool) {
	email = strings.TrimSpace(email)
	if email == "" {
		formSubmissionsTotal.WithLabelValues("newsletter", resultIgnored).Inc()
		return model.Subscriber{}, false
	}

	sub := s.store.AddSubscriber(email)
	formSubmissionsTotal.WithLabelValues("newsletter", resultAccepted).Inc()
	s.logger.InfoContext(ctx, "Новый подписчик", slog.String("id", sub.ID))
	return sub, true
}
