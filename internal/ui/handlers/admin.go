package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/bigkaa/agency-site/internal/domain/model"
	"github.com/bigkaa/agency-site/internal/service"
	"github.com/bigkaa/agency-site/internal/store"
	"github.com/bigkaa/agency-site/internal/ui/flash"
	"github.com/bigkaa/agency-site/internal/ui/i18n"
	"github.com/bigkaa/agency-site/internal/ui/pages"
)

// LiveRefreshHeader помечает фоновое обновление списков страницей
// админ-панели. Такой запрос не забирает уведомление из cookie.
const LiveRefreshHeader = "X-Live-Refresh"

// AdminHandler — админ-панель: управление проектами и клиентами,
// просмотр заявок и подписчиков.
type AdminHandler struct {
	store   *store.Store
	catalog *service.CatalogService
	toasts  Toasts
	logger  *slog.Logger
}

// NewAdminHandler создаёт AdminHandler.
func NewAdminHandler(st *store.Store, catalog *service.CatalogService, toasts Toasts, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		store:   st,
		catalog: catalog,
		toasts:  toasts,
		logger:  logger.With(slog.String("component", "ui.admin")),
	}
}

// HandleAdmin обрабатывает GET /admin?tab=...
// Рендерятся все вкладки, tab выбирает изначально видимую.
func (h *AdminHandler) HandleAdmin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	tab := pages.ParseTab(r.URL.Query().Get("tab"))

	var toast *flash.Message
	if r.Header.Get(LiveRefreshHeader) == "" {
		toast = h.toasts.Pop(w, r)
	}

	data := pages.AdminData{
		Shell:       pages.NewShell(ctx, "/admin", "nav.admin", toast),
		Tabs:        pages.Tabs(tab),
		ActiveTab:   tab,
		Projects:    pages.ProjectCards(h.store.Projects(), pages.AdminPlaceholder),
		Clients:     pages.ClientCards(h.store.Clients(), pages.AdminPlaceholder),
		Contacts:    pages.ContactRows(h.store.Contacts()),
		Subscribers: pages.SubscriberRows(h.store.Subscribers()),
	}
	renderPage(w, r, http.StatusOK, pages.Admin(data), h.logger)
}

// HandleCreateProject обрабатывает POST /admin/projects.
// Неполная форма молча отбрасывается: redirect без уведомления.
func (h *AdminHandler) HandleCreateProject(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Некорректная форма", http.StatusBadRequest)
		return
	}

	in := model.NewProject{
		Name:        r.PostFormValue("name"),
		Description: r.PostFormValue("description"),
		ImageURL:    r.PostFormValue("imageUrl"),
	}
	if _, ok := h.catalog.AddProject(r.Context(), in); ok {
		h.notifySuccess(w, r, "toast.project_added")
	}
	redirectToTab(w, r, pages.TabProjects)
}

// HandleCreateClient обрабатывает POST /admin/clients.
func (h *AdminHandler) HandleCreateClient(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Некорректная форма", http.StatusBadRequest)
		return
	}

	in := model.NewClient{
		Name:        r.PostFormValue("name"),
		Designation: r.PostFormValue("designation"),
		Description: r.PostFormValue("description"),
		ImageURL:    r.PostFormValue("imageUrl"),
	}
	if _, ok := h.catalog.AddClient(r.Context(), in); ok {
		h.notifySuccess(w, r, "toast.client_added")
	}
	redirectToTab(w, r, pages.TabClients)
}

// HandleProjectImage обрабатывает POST /admin/projects/{index}/image.
// Некорректный или несуществующий индекс — тихий no-op.
func (h *AdminHandler) HandleProjectImage(w http.ResponseWriter, r *http.Request) {
	if index, ok := indexParam(r); ok {
		h.catalog.UpdateProjectImage(r.Context(), index, r.PostFormValue("imageUrl"))
	}
	redirectToTab(w, r, pages.TabProjects)
}

// HandleClientImage обрабатывает POST /admin/clients/{index}/image.
func (h *AdminHandler) HandleClientImage(w http.ResponseWriter, r *http.Request) {
	if index, ok := indexParam(r); ok {
		h.catalog.UpdateClientImage(r.Context(), index, r.PostFormValue("imageUrl"))
	}
	redirectToTab(w, r, pages.TabClients)
}

func (h *AdminHandler) notifySuccess(w http.ResponseWriter, r *http.Request, descriptionKey string) {
	ctx := r.Context()
	h.toasts.Notify(w, flash.Message{
		Title:       i18n.T(ctx, "toast.success"),
		Description: i18n.T(ctx, descriptionKey),
	})
}

// indexParam разбирает позицию записи из пути.
func indexParam(r *http.Request) (int, bool) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		return 0, false
	}
	return index, true
}

func redirectToTab(w http.ResponseWriter, r *http.Request, tab string) {
	http.Redirect(w, r, "/admin?tab="+tab, http.StatusSeeOther)
}
