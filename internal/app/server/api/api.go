// Тестовый бэкенд каталога картин:
//
// GET    /health                     # Проверка доступности
// GET    /api/paintings/             # Список картин
// GET    /api/paintings/{id}         # Одна картина
// POST   /api/paintings/             # Создать картину
// PUT    /api/paintings/{id}         # Обновить картину
// DELETE /api/paintings/{id}         # Удалить картину
// GET    /api/analytics/{dimension}  # Статистика: dynasty, category, artist, timeline
// POST   /api/upload-pair            # Изображение + JSON (multipart)

package api

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/exp/slog"

	analyticsAPI "gallery/internal/app/server/api/http/analytics"
	healthAPI "gallery/internal/app/server/api/http/health"
	"gallery/internal/app/server/api/http/middleware"
	"gallery/internal/app/server/api/http/middleware/logger"
	paintingAPI "gallery/internal/app/server/api/http/painting"
	uploadAPI "gallery/internal/app/server/api/http/upload"
	"gallery/internal/app/server/catalog"
)

type Handlers struct {
	Health    *healthAPI.Handler
	Painting  *paintingAPI.Handler
	Analytics *analyticsAPI.Handler
	Upload    *uploadAPI.Handler
}

// New создает *chi.Mux: JSON-операции через huma.Register, загрузка пары файлов - обычный chi-обработчик
func New(service catalog.Servicer, db healthAPI.Pinger, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()
	mux.Use(chimw.Recoverer)

	config := huma.DefaultConfig("Gallery API", "1.0.0")
	API := humachi.New(mux, config)

	h := handlers(service, db, log)
	h.Health.SetupRoutes(API)
	h.Painting.SetupRoutes(API)
	h.Analytics.SetupRoutes(API)
	h.Upload.SetupRoutes(mux)

	return mux
}

func handlers(service catalog.Servicer, db healthAPI.Pinger, log *slog.Logger) *Handlers {
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer(loggerMW.Middleware())

	healthHandler := healthAPI.NewHandler(db, log, middlewares.Build())
	paintingHandler := paintingAPI.NewHandler(service, log, middlewares.Build())
	analyticsHandler := analyticsAPI.NewHandler(service, log, middlewares.Build())

	uploadHandler := uploadAPI.NewHandler(service, log, loggerMW.Handler)

	return &Handlers{
		Health:    healthHandler,
		Painting:  paintingHandler,
		Analytics: analyticsHandler,
		Upload:    uploadHandler,
	}
}
