package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/bigkaa/agency-site/internal/domain/model"
	"github.com/bigkaa/agency-site/internal/store"
)

// Изображения, подставляемые при создании записи без ссылки на картинку.
const (
	FallbackProjectImage = "https://images.unsplash.com/photo-1503387762-592deb58ef4e?auto=format&fit=crop&q=80"
	FallbackClientImage  = "https://images.unsplash.com/photo-1519085360753-af0119f7cbe7?auto=format&fit=crop&q=80"
)

// CatalogService — управление проектами и клиентами из админ-панели.
type CatalogService struct {
	store  *store.Store
	logger *slog.Logger
}

// NewCatalogService создаёт CatalogService.
func NewCatalogService(st *store.Store, logger *slog.Logger) *CatalogService {
	return &CatalogService{
		store:  st,
		logger: logger.With(slog.String("component", "service.catalog")),
	}
}

// AddProject создаёт проект. Пустое имя или описание — отправка молча
// отбрасывается (false). Пустая ссылка на изображение заменяется на
// FallbackProjectImage.
func (s *CatalogService) AddProject(ctx context.Context, in model.NewProject) (model.Project, bool) {
	if in.Name == "" || in.Description == "" {
		formSubmissionsTotal.WithLabelValues("project", resultIgnored).Inc()
		return model.Project{}, false
	}
	if in.ImageURL == "" {
		in.ImageURL = FallbackProjectImage
	}

	p := s.store.AddProject(in)
	formSubmissionsTotal.WithLabelValues("project", resultAccepted).Inc()
	s.logger.InfoContext(ctx, "Проект добавлен",
		slog.String("id", p.ID),
		slog.String("name", p.Name),
	)
	return p, true
}

// AddClient создаёт клиента. Имя и отзыв обязательны, должность — нет.
// Пустая ссылка на изображение заменяется на FallbackClientImage.
func (s *CatalogService) AddClient(ctx context.Context, in model.NewClient) (model.Client, bool) {
	if in.Name == "" || in.Description == "" {
		formSubmissionsTotal.WithLabelValues("client", resultIgnored).Inc()
		return model.Client{}, false
	}
	if in.ImageURL == "" {
		in.ImageURL = FallbackClientImage
	}

	c := s.store.AddClient(in)
	formSubmissionsTotal.WithLabelValues("client", resultAccepted).Inc()
	s.logger.InfoContext(ctx, "Клиент добавлен",
		slog.String("id", c.ID),
		slog.String("name", c.Name),
	)
	return c, true
}

// UpdateProjectImage заменяет изображение проекта по позиции.
// Пустая ссылка и индекс вне диапазона — no-op.
func (s *CatalogService) UpdateProjectImage(ctx context.Context, index int, url string) bool {
	url = strings.TrimSpace(url)
	if url == "" {
		return false
	}
	ok := s.store.UpdateProjectImage(index, url)
	if ok {
		s.logger.InfoContext(ctx, "Изображение проекта заменено", slog.Int("index", index))
	}
	return ok
}

// UpdateClientImage заменяет изображение клиента по позиции.
func (s *CatalogService) UpdateClientImage(ctx context.Context, index int, url string) bool {
	url = strings.TrimSpace(url)
	if url == "" {
		return false
	}
	ok := s.store.UpdateClientImage(index, url)
	if ok {
		s.logger.InfoContext(ctx, "Изображение клиента заменено", slog.Int("index", index))
	}
	return ok
}
