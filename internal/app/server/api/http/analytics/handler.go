package analytics

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"gallery/internal/app/server/catalog"
	"gallery/internal/domain/painting"
)

type Handler struct {
	service    catalog.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service catalog.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.statsOp(), h.stats)
}

func (h *Handler) stats(ctx context.Context, input *statsInput) (*statsOutput, error) {
	dim := painting.Dimension(input.Dimension)

	entries, err := h.service.Stats(ctx, dim)
	if err != nil {
		h.log.Error("stats request failed", "dimension", dim, "error", err)
		return nil, huma.Error500InternalServerError("Не удалось посчитать статистику")
	}

	body := make([]map[string]any, 0, len(entries))
	for _, e := range entries {
		body = append(body, map[string]any{
			dim.LabelKey(): e.Label,
			"count":        e.Count,
		})
	}

	return &statsOutput{Body: body}, nil
}
