package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"gallery/internal/app/client/config"
	"gallery/internal/domain/painting"
)

const (
	paintingsPath  = "/api/paintings/"
	analyticsPath  = "/api/analytics/"
	uploadPairPath = "/api/upload-pair"
	healthPath     = "/health"

	// имена полей multipart-запроса загрузки пары
	imageField = "image"
	jsonField  = "json_file"
)

// APIError - ответ бэкенда со статусом ошибки
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("ошибка сервера (%d): %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("ошибка сервера: статус %d", e.StatusCode)
}

// ErrorDetail возвращает сообщение бэкенда, если ошибка пришла от него
func ErrorDetail(err error) (string, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail, true
	}
	return "", false
}

// UploadResult - ответ на загрузку пары файлов
type UploadResult struct {
	Message  string             `json:"message"`
	Painting *painting.Painting `json:"painting,omitempty"`
}

type httpClient struct {
	client    *http.Client
	log       *slog.Logger
	baseURL   string
	userAgent string
}

func NewHTTPClient(cfg *config.Config, log *slog.Logger) (*httpClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client := &http.Client{
		Timeout: cfg.HTTPTimeout,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConnsPerHost: 10,
		},
	}

	return &httpClient{
		client:    client,
		log:       log.With("component", "http_client"),
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		userAgent: "Gallery-Client/1.0",
	}, nil
}

// HealthCheck проверяет доступность сервера
func (h *httpClient) HealthCheck(ctx context.Context) error {
	resp, err := h.doRequest(ctx, http.MethodGet, healthPath, nil)
	if err != nil {
		return fmt.Errorf("сервер недоступен: %w", err)
	}

	return h.parseResponse(resp, nil)
}

// ListPaintings получает все картины
func (h *httpClient) ListPaintings(ctx context.Context) ([]painting.Painting, error) {
	resp, err := h.doRequest(ctx, http.MethodGet, paintingsPath, nil)
	if err != nil {
		return nil, err
	}

	var paintings []painting.Painting
	if err := h.parseResponse(resp, &paintings); err != nil {
		return nil, err
	}
	if paintings == nil {
		paintings = []painting.Painting{}
	}

	return paintings, nil
}

// GetPainting получает одну картину
func (h *httpClient) GetPainting(ctx context.Context, id int) (*painting.Painting, error) {
	resp, err := h.doRequest(ctx, http.MethodGet, paintingPath(id), nil)
	if err != nil {
		return nil, err
	}

	var p painting.Painting
	if err := h.parseResponse(resp, &p); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("%w: %d", painting.ErrNotFound, id)
		}
		return nil, err
	}

	return &p, nil
}

// CreatePainting создает картину
func (h *httpClient) CreatePainting(ctx context.Context, payload painting.Payload) (*painting.Painting, error) {
	resp, err := h.doRequest(ctx, http.MethodPost, paintingsPath, payload)
	if err != nil {
		return nil, err
	}

	var created painting.Painting
	if err := h.parseResponse(resp, &created); err != nil {
		return nil, err
	}

	return &created, nil
}

// UpdatePainting обновляет картину
func (h *httpClient) UpdatePainting(ctx context.Context, id int, payload painting.Payload) (*painting.Painting, error) {
	resp, err := h.doRequest(ctx, http.MethodPut, paintingPath(id), payload)
	if err != nil {
		return nil, err
	}

	var updated painting.Painting
	if err := h.parseResponse(resp, &updated); err != nil {
		return nil, err
	}

	return &updated, nil
}

// DeletePainting удаляет картину
func (h *httpClient) DeletePainting(ctx context.Context, id int) error {
	resp, err := h.doRequest(ctx, http.MethodDelete, paintingPath(id), nil)
	if err != nil {
		return err
	}

	return h.parseResponse(resp, nil)
}

// Stats получает статистику по измерению
func (h *httpClient) Stats(ctx context.Context, dim painting.Dimension) ([]painting.StatEntry, error) {
	if !dim.Valid() {
		return nil, fmt.Errorf("неизвестное измерение статистики: %s", dim)
	}

	resp, err := h.doRequest(ctx, http.MethodGet, analyticsPath+string(dim), nil)
	if err != nil {
		return nil, err
	}

	var raw json.RawMessage
	if err := h.parseResponse(resp, &raw); err != nil {
		return nil, err
	}

	entries, err := painting.DecodeStats(dim, raw)
	if err != nil {
		return nil, fmt.Errorf("ошибка парсинга статистики: %w", err)
	}

	return entries, nil
}

// UploadPair отправляет изображение и JSON одним multipart-запросом
func (h *httpClient) UploadPair(ctx context.Context, image, jsonFile *painting.File) (*UploadResult, error) {
	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		err := writePart(mw, imageField, image)
		if err == nil {
			err = writePart(mw, jsonField, jsonFile)
		}
		if err == nil {
			err = mw.Close()
		}
		pw.CloseWithError(err)
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.baseURL+uploadPairPath, pr)
	if err != nil {
		pr.Close()
		return nil, fmt.Errorf("ошибка создания запроса: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := h.send(req)
	if err != nil {
		pr.Close()
		return nil, err
	}

	var result UploadResult
	if err := h.parseResponse(resp, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func writePart(mw *multipart.Writer, field string, f *painting.File) error {
	src, err := os.Open(f.Path)
	if err != nil {
		return fmt.Errorf("ошибка открытия файла %s: %w", f.Name, err)
	}
	defer src.Close()

	contentType := mime.TypeByExtension(strings.ToLower(filepath.Ext(f.Name)))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="%s"; filename="%s"`, field, escapeQuotes(f.Name)))
	header.Set("Content-Type", contentType)

	part, err := mw.CreatePart(header)
	if err != nil {
		return fmt.Errorf("ошибка создания части %s: %w", field, err)
	}

	if _, err := io.Copy(part, src); err != nil {
		return fmt.Errorf("ошибка чтения файла %s: %w", f.Name, err)
	}

	return nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}

func paintingPath(id int) string {
	return strings.TrimSuffix(paintingsPath, "/") + "/" + strconv.Itoa(id)
}

func (h *httpClient) doRequest(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("ошибка маршалинга тела запроса: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return h.send(req)
}

func (h *httpClient) send(req *http.Request) (*http.Response, error) {
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", h.userAgent)
	req.Header.Set("X-Request-ID", requestID)

	h.log.Debug("Отправка запроса",
		"method", req.Method,
		"url", req.URL.String(),
		"request_id", requestID,
	)

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса: %w", err)
	}

	return resp, nil
}

func (h *httpClient) parseResponse(resp *http.Response, result interface{}) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("ошибка чтения ответа: %w", err)
	}

	h.log.Debug("Получен ответ",
		"status", resp.StatusCode,
		"request_id", resp.Request.Header.Get("X-Request-ID"),
		"bytes", len(body),
	)

	if resp.StatusCode >= 400 {
		detail := errorDetail(body)
		if detail == "" {
			h.log.Debug("Ответ с ошибкой без detail",
				"status", resp.StatusCode,
				"body", truncateBody(body),
			)
		}
		return &APIError{
			StatusCode: resp.StatusCode,
			Detail:     detail,
		}
	}

	if result != nil && len(bytes.TrimSpace(body)) > 0 {
		if err := json.Unmarshal(body, result); err != nil {
			return fmt.Errorf("ошибка парсинга ответа: %w", err)
		}
	}

	return nil
}

// errorDetail достает текст ошибки из поля "detail" (FastAPI, huma).
// FastAPI для ошибок валидации присылает там список. Другие поля и
// не-JSON тела пользователю не показываются.
func errorDetail(body []byte) string {
	var errResp struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &errResp); err != nil {
		return ""
	}
	if len(errResp.Detail) == 0 || string(errResp.Detail) == "null" {
		return ""
	}

	var detail string
	if err := json.Unmarshal(errResp.Detail, &detail); err == nil {
		return detail
	}

	var items []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(errResp.Detail, &items); err == nil {
		msgs := make([]string, 0, len(items))
		for _, it := range items {
			if it.Msg != "" {
				msgs = append(msgs, it.Msg)
			}
		}
		return strings.Join(msgs, "; ")
	}

	return ""
}

const maxLoggedBody = 512

func truncateBody(body []byte) string {
	if len(body) > maxLoggedBody {
		return string(body[:maxLoggedBody]) + "..."
	}
	return string(body)
}
