package health

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

const statusOK = "OK"

// Pinger - хранилище, доступность которого входит в проверку здоровья
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	db         Pinger
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(db Pinger, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		db:         db,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.healthCheckOp(), h.healthCheck)
}

func (h *Handler) healthCheck(ctx context.Context, _ *Input) (*Output, error) {
	if h.db != nil {
		if err := h.db.Ping(ctx); err != nil {
			h.log.Error("health check: storage unavailable", "error", err)
			return nil, huma.Error503ServiceUnavailable("Хранилище недоступно")
		}
	}

	return &Output{Body: Response{Status: statusOK}}, nil
}
