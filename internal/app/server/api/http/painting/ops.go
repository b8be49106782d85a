package painting

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "paintings-list",
		Method:      http.MethodGet,
		Path:        "/api/paintings/",
		Summary:     "Список картин",
		Description: "Все картины каталога в порядке добавления",
		Tags:        []string{"paintings"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) findOp() huma.Operation {
	return huma.Operation{
		OperationID: "paintings-find",
		Method:      http.MethodGet,
		Path:        "/api/paintings/{id}",
		Summary:     "Получить картину",
		Tags:        []string{"paintings"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID: "paintings-create",
		Method:      http.MethodPost,
		Path:        "/api/paintings/",
		Summary:     "Добавить картину",
		Tags:        []string{"paintings"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "paintings-update",
		Method:      http.MethodPut,
		Path:        "/api/paintings/{id}",
		Summary:     "Обновить картину",
		Description: "Заменяет редактируемые поля картины целиком",
		Tags:        []string{"paintings"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "paintings-delete",
		Method:      http.MethodDelete,
		Path:        "/api/paintings/{id}",
		Summary:     "Удалить картину",
		Tags:        []string{"paintings"},
		Middlewares: h.middleware,
	}
}
