// Пакет server — HTTP-сервер сайта с graceful shutdown.
// Без TLS — TLS termination на внешнем прокси.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	apierrors "github.com/bigkaa/agency-site/internal/api/errors"
	apihandlers "github.com/bigkaa/agency-site/internal/api/handlers"
	"github.com/bigkaa/agency-site/internal/api/middleware"
	"github.com/bigkaa/agency-site/internal/config"
	uihandlers "github.com/bigkaa/agency-site/internal/ui/handlers"
	"github.com/bigkaa/agency-site/internal/ui/i18n"
	"github.com/bigkaa/agency-site/internal/ui/static"
)

// Handlers — обработчики, которые сервер раскладывает по маршрутам.
type Handlers struct {
	Landing *uihandlers.LandingHandler
	Admin   *uihandlers.AdminHandler
	Events  *uihandlers.EventsHandler
	Records *apihandlers.RecordsHandler
	Health  *apihandlers.HealthHandler
	// Bundle — каталоги переводов для i18n middleware
	Bundle *i18n.Bundle
}

// Server — HTTP-сервер сайта.
type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
	cfg        *config.Config
}

// New создаёт HTTP-сервер с настроенными маршрутами и middleware.
func New(cfg *config.Config, logger *slog.Logger, h Handlers) *Server {
	// Контекст запросов отменяется в начале shutdown, иначе открытые
	// SSE-потоки держали бы Shutdown до таймаута.
	baseCtx, cancelRequests := context.WithCancel(context.Background())

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      NewRouter(cfg, logger, h),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
		BaseContext:  func(net.Listener) context.Context { return baseCtx },
	}
	srv.RegisterOnShutdown(cancelRequests)

	return &Server{
		httpServer: srv,
		logger:     logger,
		cfg:        cfg,
	}
}

// NewRouter собирает chi-роутер со всеми маршрутами сайта.
func NewRouter(cfg *config.Config, logger *slog.Logger, h Handlers) http.Handler {
	router := chi.NewRouter()

	// Глобальные middleware (применяются ко ВСЕМ маршрутам)
	router.Use(chimw.RequestID)
	router.Use(chimw.Recoverer)
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.RequestLogger(logger))

	// Служебные endpoints
	router.Get("/health/live", h.Health.HealthLive)
	router.Get("/health/ready", h.Health.HealthReady)
	router.Get("/metrics", h.Health.GetMetrics)

	router.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(static.FileSystem())))

	// Страницы
	router.Group(func(r chi.Router) {
		r.Use(i18n.Middleware(h.Bundle, cfg.DefaultLang))

		r.Get("/", h.Landing.HandleLanding)
		r.Post("/contact", h.Landing.HandleContact)
		r.Post("/subscribe", h.Landing.HandleSubscribe)
		r.Post("/set-language", uihandlers.HandleSetLanguage)

		r.Route("/admin", func(r chi.Router) {
			r.Get("/", h.Admin.HandleAdmin)
			r.Get("/events", h.Events.HandleEvents)
			r.Post("/projects", h.Admin.HandleCreateProject)
			r.Post("/clients", h.Admin.HandleCreateClient)
			r.Post("/projects/{index}/image", h.Admin.HandleProjectImage)
			r.Post("/clients/{index}/image", h.Admin.HandleClientImage)
		})
	})

	// JSON API
	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/projects", h.Records.ListProjects)
		r.Get("/clients", h.Records.ListClients)
		r.Get("/contacts", h.Records.ListContacts)
		r.Get("/subscribers", h.Records.ListSubscribers)
		r.Put("/projects/{index}/image", h.Records.UpdateProjectImage)
		r.Put("/clients/{index}/image", h.Records.UpdateClientImage)
		r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
			apierrors.NotFound(w, "Маршрут не найден")
		})
	})

	return router
}

// Run запускает сервер и ожидает сигнала завершения (SIGINT, SIGTERM).
// При получении сигнала выполняется graceful shutdown.
func (s *Server) Run() error {
	errCh := make(chan error, 1)

	go func() {
		s.logger.Info("HTTP-сервер запущен",
			slog.String("addr", s.httpServer.Addr),
		)

		err := s.httpServer.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		s.logger.Info("Получен сигнал завершения", slog.String("signal", sig.String()))
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("ошибка HTTP-сервера: %w", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	s.logger.Info("Выполняется graceful shutdown...")
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("ошибка при graceful shutdown: %w", err)
	}

	s.logger.Info("HTTP-сервер остановлен")
	return nil
}
