// Пакет handlers — HTTP-обработчики страниц сайта и админ-панели.
package handlers

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"

	"github.com/bigkaa/agency-site/internal/ui/flash"
)

// Toasts — одноразовые уведомления: ставятся перед redirect,
// забираются при рендере следующей страницы.
type Toasts interface {
	flash.Notifier
	Pop(w http.ResponseWriter, r *http.Request) *flash.Message
}

// renderPage рендерит компонент в буфер и только затем пишет ответ,
// чтобы при ошибке шаблона клиент получил 500, а не обрезанную страницу.
func renderPage(w http.ResponseWriter, r *http.Request, status int, c templ.Component, logger *slog.Logger) {
	var buf bytes.Buffer
	if err := c.Render(r.Context(), &buf); err != nil {
		logger.ErrorContext(r.Context(), "Ошибка рендеринга страницы",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		http.Error(w, "Ошибка рендеринга страницы", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
