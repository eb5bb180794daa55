// Файл events.go — SSE-поток изменений хранилища для админ-панели.
// Каждое событие хранилища пересылается клиенту как "event: store";
// страница по нему перечитывает списки.
package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/bigkaa/agency-site/internal/store"
)

// eventBuffer — сколько событий ждёт медленного клиента; лишние отбрасываются,
// следующий refresh всё равно покажет актуальное состояние.
const eventBuffer = 16

// defaultKeepalive — интервал keepalive, если он не задан.
const defaultKeepalive = 15 * time.Second

// EventsHandler — обработчик GET /admin/events.
type EventsHandler struct {
	store     *store.Store
	keepalive time.Duration
	logger    *slog.Logger
}

// NewEventsHandler создаёт EventsHandler.
// keepalive — интервал комментариев, удерживающих соединение (AS_SSE_KEEPALIVE).
func NewEventsHandler(st *store.Store, keepalive time.Duration, logger *slog.Logger) *EventsHandler {
	if keepalive <= 0 {
		keepalive = defaultKeepalive
	}
	return &EventsHandler{
		store:     st,
		keepalive: keepalive,
		logger:    logger.With(slog.String("component", "ui.events")),
	}
}

// HandleEvents обрабатывает GET /admin/events — SSE endpoint.
// Формат: event: store\ndata: {json}\n\n. Завершается при отключении клиента.
func (h *EventsHandler) HandleEvents(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	// ResponseController находит http.Flusher через Unwrap() middleware-обёрток.
	rc := http.NewResponseController(w)
	// Поток живёт дольше WriteTimeout сервера
	_ = rc.SetWriteDeadline(time.Time{})
	if err := rc.Flush(); err != nil {
		http.Error(w, "SSE не поддерживается", http.StatusInternalServerError)
		return
	}

	events := make(chan store.Event, eventBuffer)
	unsubscribe := h.store.Subscribe(func(ev store.Event) {
		select {
		case events <- ev:
		default:
		}
	})
	defer unsubscribe()

	ctx := r.Context()
	h.logger.Debug("SSE клиент подключён", slog.String("remote_addr", r.RemoteAddr))

	fmt.Fprint(w, "retry: 3000\n\n")
	_ = rc.Flush()

	ticker := time.NewTicker(h.keepalive)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			h.logger.Debug("SSE клиент отключён", slog.String("remote_addr", r.RemoteAddr))
			return
		case ev := <-events:
			data, err := json.Marshal(ev)
			if err != nil {
				h.logger.Error("Ошибка сериализации события", slog.String("error", err.Error()))
				continue
			}
			fmt.Fprintf(w, "event: store\ndata: %s\n\n", data)
			_ = rc.Flush()
		case <-ticker.C:
			fmt.Fprint(w, ": keepalive\n\n")
			_ = rc.Flush()
		}
	}
}
