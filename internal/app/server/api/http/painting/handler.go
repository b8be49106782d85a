package painting

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"gallery/internal/app/server/catalog"
	"gallery/internal/domain/painting"
)

const (
	msgNotFound = "Картина не найдена"
	msgDeleted  = "Картина удалена"
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
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.findOp(), h.find)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	paintings, err := h.service.List(ctx)
	if err != nil {
		return nil, h.toHTTPError(err)
	}

	body := make([]PaintingResponse, 0, len(paintings))
	for _, p := range paintings {
		body = append(body, ToResponse(p))
	}

	return &listOutput{Body: body}, nil
}

func (h *Handler) find(ctx context.Context, input *findInput) (*paintingOutput, error) {
	p, err := h.service.Get(ctx, input.ID)
	if err != nil {
		return nil, h.toHTTPError(err)
	}

	return &paintingOutput{Body: ToResponse(*p)}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*paintingOutput, error) {
	payload, err := input.Body.payload()
	if err != nil {
		return nil, huma.Error422UnprocessableEntity(err.Error())
	}

	p, err := h.service.Create(ctx, payload)
	if err != nil {
		return nil, h.toHTTPError(err)
	}

	return &paintingOutput{Body: ToResponse(*p)}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*paintingOutput, error) {
	payload, err := input.Body.payload()
	if err != nil {
		return nil, huma.Error422UnprocessableEntity(err.Error())
	}

	p, err := h.service.Update(ctx, input.ID, payload)
	if err != nil {
		return nil, h.toHTTPError(err)
	}

	return &paintingOutput{Body: ToResponse(*p)}, nil
}

func (h *Handler) delete(ctx context.Context, input *findInput) (*deleteOutput, error) {
	if err := h.service.Delete(ctx, input.ID); err != nil {
		return nil, h.toHTTPError(err)
	}

	return &deleteOutput{Body: messageResponse{Message: msgDeleted}}, nil
}

func (h *Handler) toHTTPError(err error) error {
	switch {
	case errors.Is(err, painting.ErrNotFound):
		return huma.Error404NotFound(msgNotFound)
	case errors.Is(err, catalog.ErrInvalidInput):
		return huma.Error422UnprocessableEntity(err.Error())
	default:
		h.log.Error("painting request failed", "error", err)
		return huma.Error500InternalServerError("Внутренняя ошибка сервера")
	}
}
