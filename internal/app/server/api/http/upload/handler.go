package upload

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"

	paintingAPI "gallery/internal/app/server/api/http/painting"
	"gallery/internal/app/server/catalog"
)

const (
	Path = "/api/upload-pair"

	fieldImage = "image"
	fieldJSON  = "json_file"

	maxMemory = 32 << 20

	msgUploaded = "Пара файлов загружена"
)

type response struct {
	Message  string                       `json:"message"`
	Painting paintingAPI.PaintingResponse `json:"painting"`
}

// Handler принимает пару файлов multipart-формой. Регистрируется в chi напрямую,
// ошибки отдаются в формате huma (application/problem+json, поле detail).
type Handler struct {
	service    catalog.Servicer
	log        *slog.Logger
	middleware []func(http.Handler) http.Handler
}

func NewHandler(service catalog.Servicer, log *slog.Logger, mws ...func(http.Handler) http.Handler) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(r chi.Router) {
	r.With(h.middleware...).Post(Path, h.uploadPair)
}

func (h *Handler) uploadPair(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMemory); err != nil {
		writeError(w, http.StatusBadRequest, "ожидается multipart/form-data с полями image и json_file")
		return
	}
	defer func() {
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}()

	image, imageHeader, err := r.FormFile(fieldImage)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "не передан файл изображения (image)")
		return
	}
	defer image.Close()

	jsonFile, jsonHeader, err := r.FormFile(fieldJSON)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "не передан JSON-файл (json_file)")
		return
	}
	defer jsonFile.Close()

	p, err := h.service.UploadPair(r.Context(),
		catalog.Upload{Name: imageHeader.Filename, Content: image},
		catalog.Upload{Name: jsonHeader.Filename, Content: jsonFile},
	)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrUnsupportedImage),
			errors.Is(err, catalog.ErrNotJSONFile),
			errors.Is(err, catalog.ErrNameMismatch),
			errors.Is(err, catalog.ErrInvalidJSON):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			h.log.Error("upload pair failed", "image", imageHeader.Filename, "error", err)
			writeError(w, http.StatusInternalServerError, "Не удалось загрузить файлы")
		}
		return
	}

	writeJSON(w, http.StatusOK, response{
		Message:  msgUploaded,
		Painting: paintingAPI.ToResponse(*p),
	})
}

func writeError(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(&huma.ErrorModel{
		Title:  http.StatusText(status),
		Status: status,
		Detail: detail,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
