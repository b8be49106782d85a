package analytics

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) statsOp() huma.Operation {
	return huma.Operation{
		OperationID: "analytics-stats",
		Method:      http.MethodGet,
		Path:        "/api/analytics/{dimension}",
		Summary:     "Количество картин по измерению",
		Description: "Группировка по династии, категории, художнику или дате добавления",
		Tags:        []string{"analytics"},
		Middlewares: h.middleware,
	}
}
