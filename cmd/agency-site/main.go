// Точка входа сайта CreativeAgency — главная страница и админ-панель.
// Загружает конфигурацию, создаёт in-memory хранилище с seed-данными,
// сервисный слой, UI и API обработчики, запускает HTTP-сервер
// с graceful shutdown.
package main

import (
	"log/slog"
	"os"

	apihandlers "github.com/bigkaa/agency-site/internal/api/handlers"
	"github.com/bigkaa/agency-site/internal/config"
	"github.com/bigkaa/agency-site/internal/server"
	"github.com/bigkaa/agency-site/internal/service"
	"github.com/bigkaa/agency-site/internal/store"
	"github.com/bigkaa/agency-site/internal/ui/flash"
	uihandlers "github.com/bigkaa/agency-site/internal/ui/handlers"
	"github.com/bigkaa/agency-site/internal/ui/i18n"
)

func main() {
	// 1. Загрузка конфигурации из переменных окружения (.env — опционально)
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Ошибка загрузки конфигурации", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// 2. Настройка логирования
	logger := config.SetupLogger(cfg)
	logger.Info("Сайт запускается",
		slog.String("version", config.Version),
		slog.Int("port", cfg.Port),
	)

	// 3. Каталоги переводов
	bundle, err := i18n.LoadEmbedded(logger)
	if err != nil {
		logger.Error("Ошибка загрузки i18n", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// 4. Хранилище: живёт в памяти процесса, теряется при рестарте
	st := store.NewSeeded()
	stats := st.Stats()
	logger.Info("Хранилище инициализировано",
		slog.Int("projects", stats.Projects),
		slog.Int("clients", stats.Clients),
		slog.Int("contacts", stats.Contacts),
		slog.Int("subscribers", stats.Subscribers),
	)

	// 5. Уведомления (flash-cookie)
	if cfg.FlashSecret == "" {
		logger.Warn("AS_FLASH_SECRET не задан, используется случайный ключ")
	}
	toasts, err := flash.NewManager(cfg.FlashSecret, cfg.SecureCookies)
	if err != nil {
		logger.Error("Ошибка инициализации уведомлений", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// 6. Сервисный слой
	validator := service.NewValidator()
	contactSvc := service.NewContactService(st, validator, logger)
	newsletterSvc := service.NewNewsletterService(st, logger)
	catalogSvc := service.NewCatalogService(st, logger)

	// 7. Обработчики и HTTP-сервер
	srv := server.New(cfg, logger, server.Handlers{
		Landing: uihandlers.NewLandingHandler(st, contactSvc, newsletterSvc, toasts, logger),
		Admin:   uihandlers.NewAdminHandler(st, catalogSvc, toasts, logger),
		Events:  uihandlers.NewEventsHandler(st, cfg.SSEKeepalive, logger),
		Records: apihandlers.NewRecordsHandler(st, catalogSvc, logger),
		Health:  apihandlers.NewHealthHandler(apihandlers.NewStoreChecker(st)),
		Bundle:  bundle,
	})

	if err := srv.Run(); err != nil {
		logger.Error("Ошибка сервера", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
