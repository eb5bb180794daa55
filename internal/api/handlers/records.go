// Пакет handlers — обработчики JSON API и служебных endpoints.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	openapi_types "github.com/oapi-codegen/runtime/types"

	apierrors "github.com/bigkaa/agency-site/internal/api/errors"
	"github.com/bigkaa/agency-site/internal/domain/model"
	"github.com/bigkaa/agency-site/internal/service"
	"github.com/bigkaa/agency-site/internal/store"
)

// RecordsHandler — чтение коллекций и позиционная замена изображений.
type RecordsHandler struct {
	store   *store.Store
	catalog *service.CatalogService
	logger  *slog.Logger
}

// NewRecordsHandler создаёт RecordsHandler.
func NewRecordsHandler(st *store.Store, catalog *service.CatalogService, logger *slog.Logger) *RecordsHandler {
	return &RecordsHandler{
		store:   st,
		catalog: catalog,
		logger:  logger.With(slog.String("component", "api.records")),
	}
}

// listResponse — ответ списка: элементы в порядке добавления и их количество.
type listResponse[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

// contactItem — заявка в ответе API. Email прошёл схему формы,
// поэтому сериализуется как openapi-формат email.
type contactItem struct {
	ID        string              `json:"id"`
	FullName  string              `json:"full_name"`
	Email     openapi_types.Email `json:"email"`
	Mobile    string              `json:"mobile"`
	City      string              `json:"city"`
	Timestamp time.Time           `json:"timestamp"`
}

func toContactItems(contacts []model.ContactSubmission) []contactItem {
	items := make([]contactItem, 0, len(contacts))
	for _, c := range contacts {
		items = append(items, contactItem{
			ID:        c.ID,
			FullName:  c.FullName,
			Email:     openapi_types.Email(c.Email),
			Mobile:    c.Mobile,
			City:      c.City,
			Timestamp: c.Timestamp,
		})
	}
	return items
}

// imageUpdateRequest — тело PUT .../{index}/image.
type imageUpdateRequest struct {
	ImageURL string `json:"image_url"`
}

// ListProjects — GET /api/v1/projects.
func (h *RecordsHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	writeList(h, w, r, h.store.Projects())
}

// ListClients — GET /api/v1/clients.
func (h *RecordsHandler) ListClients(w http.ResponseWriter, r *http.Request) {
	writeList(h, w, r, h.store.Clients())
}

// ListContacts — GET /api/v1/contacts.
// Подписчики не проходят серверную схему, поэтому email в их списке
// остаётся строкой.
func (h *RecordsHandler) ListContacts(w http.ResponseWriter, r *http.Request) {
	writeList(h, w, r, toContactItems(h.store.Contacts()))
}

// ListSubscribers — GET /api/v1/subscribers.
func (h *RecordsHandler) ListSubscribers(w http.ResponseWriter, r *http.Request) {
	writeList(h, w, r, h.store.Subscribers())
}

// UpdateProjectImage — PUT /api/v1/projects/{index}/image.
// Индекс вне диапазона — 204 без изменений.
func (h *RecordsHandler) UpdateProjectImage(w http.ResponseWriter, r *http.Request) {
	index, url, ok := parseImageUpdate(w, r)
	if !ok {
		return
	}
	if !h.catalog.UpdateProjectImage(r.Context(), index, url) {
		h.logger.DebugContext(r.Context(), "Замена изображения без изменений",
			slog.String("collection", store.CollectionProjects),
			slog.Int("index", index),
		)
	}
	w.WriteHeader(http.StatusNoContent)
}

// UpdateClientImage — PUT /api/v1/clients/{index}/image.
func (h *RecordsHandler) UpdateClientImage(w http.ResponseWriter, r *http.Request) {
	index, url, ok := parseImageUpdate(w, r)
	if !ok {
		return
	}
	if !h.catalog.UpdateClientImage(r.Context(), index, url) {
		h.logger.DebugContext(r.Context(), "Замена изображения без изменений",
			slog.String("collection", store.CollectionClients),
			slog.Int("index", index),
		)
	}
	w.WriteHeader(http.StatusNoContent)
}

// parseImageUpdate разбирает индекс из пути и ссылку из тела.
// При ошибке сам пишет 400 и возвращает ok=false.
func parseImageUpdate(w http.ResponseWriter, r *http.Request) (index int, url string, ok bool) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		apierrors.ValidationError(w, "Индекс должен быть целым числом")
		return 0, "", false
	}

	var req imageUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierrors.ValidationError(w, "Некорректное тело запроса")
		return 0, "", false
	}
	url = strings.TrimSpace(req.ImageURL)
	if url == "" {
		apierrors.ValidationError(w, "image_url обязателен")
		return 0, "", false
	}
	return index, url, true
}

// writeList сериализует список целиком до записи ответа: ошибка
// сериализации превращается в 500, а не в обрезанное тело.
func writeList[T any](h *RecordsHandler, w http.ResponseWriter, r *http.Request, items []T) {
	data, err := json.Marshal(listResponse[T]{Items: items, Total: len(items)})
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Ошибка сериализации списка",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		apierrors.InternalError(w, "Ошибка сериализации ответа")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(append(data, '\n'))
}
