package handlers

import (
	"log/slog"
	"net/http"

	"github.com/bigkaa/agency-site/internal/domain/model"
	"github.com/bigkaa/agency-site/internal/service"
	"github.com/bigkaa/agency-site/internal/store"
	"github.com/bigkaa/agency-site/internal/ui/flash"
	"github.com/bigkaa/agency-site/internal/ui/i18n"
	"github.com/bigkaa/agency-site/internal/ui/pages"
)

// LandingHandler — главная страница: галереи, форма обратной связи, рассылка.
type LandingHandler struct {
	store      *store.Store
	contacts   *service.ContactService
	newsletter *service.NewsletterService
	toasts     Toasts
	logger     *slog.Logger
}

// NewLandingHandler создаёт LandingHandler.
func NewLandingHandler(
	st *store.Store,
	contacts *service.ContactService,
	newsletter *service.NewsletterService,
	toasts Toasts,
	logger *slog.Logger,
) *LandingHandler {
	return &LandingHandler{
		store:      st,
		contacts:   contacts,
		newsletter: newsletter,
		toasts:     toasts,
		logger:     logger.With(slog.String("component", "ui.landing")),
	}
}

// HandleLanding обрабатывает GET /.
func (h *LandingHandler) HandleLanding(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, pages.ContactForm{})
}

// HandleContact обрабатывает POST /contact.
// Невалидная форма — страница с ошибками полей и введёнными значениями (422).
// Валидная — сохранение, уведомление и redirect с пустой формой.
func (h *LandingHandler) HandleContact(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Некорректная форма", http.StatusBadRequest)
		return
	}

	in := model.NewContact{
		FullName: r.PostFormValue("fullName"),
		Email:    r.PostFormValue("email"),
		Mobile:   r.PostFormValue("mobile"),
		City:     r.PostFormValue("city"),
	}

	ctx := r.Context()
	if _, errs := h.contacts.Submit(ctx, in); errs != nil {
		h.render(w, r, http.StatusUnprocessableEntity, pages.ContactForm{Values: in, Errors: errs})
		return
	}

	h.toasts.Notify(w, flash.Message{
		Title:       i18n.T(ctx, "toast.contact.title"),
		Description: i18n.T(ctx, "toast.contact.description"),
	})
	http.Redirect(w, r, "/#contact", http.StatusSeeOther)
}

// HandleSubscribe обрабатывает POST /subscribe.
// Пустой email — redirect без уведомления.
func (h *LandingHandler) HandleSubscribe(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Некорректная форма", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	if _, ok := h.newsletter.Subscribe(ctx, r.PostFormValue("email")); ok {
		h.toasts.Notify(w, flash.Message{
			Title:       i18n.T(ctx, "toast.subscribe.title"),
			Description: i18n.T(ctx, "toast.subscribe.description"),
		})
	}
	http.Redirect(w, r, "/#newsletter", http.StatusSeeOther)
}

func (h *LandingHandler) render(w http.ResponseWriter, r *http.Request, status int, form pages.ContactForm) {
	ctx := r.Context()
	data := pages.LandingData{
		Shell:    pages.NewShell(ctx, "/", "nav.home", h.toasts.Pop(w, r)),
		Projects: pages.ProjectCards(h.store.Projects(), pages.LandingProjectPlaceholder),
		Clients:  pages.ClientCards(h.store.Clients(), pages.LandingClientPlaceholder),
		Contact:  form,
	}
	renderPage(w, r, status, pages.Landing(data), h.logger)
}
