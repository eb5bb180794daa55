package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
)

// TestRequestLoggerLevels проверяет уровень записи в зависимости от статуса.
func TestRequestLoggerLevels(t *testing.T) {
	tests := []struct {
		status    int
		wantLevel string
	}{
		{http.StatusOK, "INFO"},
		{http.StatusSeeOther, "INFO"},
		{http.StatusUnprocessableEntity, "WARN"},
		{http.StatusInternalServerError, "ERROR"},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		logger := slog.New(slog.NewJSONHandler(&buf, nil))

		h := RequestLogger(logger)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(tt.status)
			_, _ = w.Write([]byte("body"))
		}))
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/x", nil))

		var entry map[string]any
		if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
			t.Fatalf("Ошибка разбора записи лога: %v", err)
		}
		if entry["level"] != tt.wantLevel {
			t.Errorf("status %d: want level %s, got %v", tt.status, tt.wantLevel, entry["level"])
		}
		if entry["bytes"] != float64(4) {
			t.Errorf("status %d: want bytes 4, got %v", tt.status, entry["bytes"])
		}
	}
}

// TestRoutePattern проверяет лейбл path метрик: шаблон маршрута вместо пути.
func TestRoutePattern(t *testing.T) {
	var got string
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			next.ServeHTTP(w, req)
			got = routePattern(req)
		})
	})
	r.Post("/admin/projects/{index}/image", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusSeeOther)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/admin/projects/12/image", nil))
	if got != "/admin/projects/{index}/image" {
		t.Errorf("Шаблон: want %q, got %q", "/admin/projects/{index}/image", got)
	}

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope", nil))
	if got != unmatchedRoute {
		t.Errorf("Без маршрута: want %q, got %q", unmatchedRoute, got)
	}
}

// TestRoutePatternWithoutRouter проверяет запрос вне chi.
func TestRoutePatternWithoutRouter(t *testing.T) {
	if got := routePattern(httptest.NewRequest(http.MethodGet, "/", nil)); got != unmatchedRoute {
		t.Errorf("want %q, got %q", unmatchedRoute, got)
	}
}

// TestMetricsMiddlewareStatus проверяет перехват статус-кода.
func TestMetricsMiddlewareStatus(t *testing.T) {
	h := MetricsMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusTeapot {
		t.Errorf("Статус: want %d, got %d", http.StatusTeapot, rec.Code)
	}
}
