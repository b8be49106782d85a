package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gallery/internal/app/server/catalog"
	"gallery/internal/infrastructure/storage/sqlite"
	"gallery/internal/utils/logger"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	dir := t.TempDir()
	storage, err := sqlite.New(context.Background(), filepath.Join(dir, "gallery.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = storage.Close() })

	uploadDir := filepath.Join(dir, "uploads")
	for _, sub := range []string{"images", "json"} {
		require.NoError(t, os.MkdirAll(filepath.Join(uploadDir, sub), 0o755))
	}

	log := logger.Discard()
	service := catalog.NewService(sqlite.NewPaintingRepository(storage, log), uploadDir, log)

	server := httptest.NewServer(New(service, storage, log))
	t.Cleanup(server.Close)
	return server
}

func doJSON(t *testing.T, method, url, body string) (int, map[string]any, []byte) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var obj map[string]any
	_ = json.Unmarshal(raw, &obj)
	return resp.StatusCode, obj, raw
}

const springMountains = `{"title":"Весенние горы","artist":"Ма Юань","dynasty":"Сун","category":"Пейзаж","description":"","painting_metadata":{"size":"50x80"}}`

func TestAPI_Health(t *testing.T) {
	server := newTestServer(t)

	status, body, _ := doJSON(t, http.MethodGet, server.URL+"/health", "")

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "OK", body["status"])
}

func TestAPI_PaintingLifecycle(t *testing.T) {
	server := newTestServer(t)
	base := server.URL + "/api/paintings/"

	status, _, raw := doJSON(t, http.MethodGet, base, "")
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[]`, string(raw))

	status, created, _ := doJSON(t, http.MethodPost, base, springMountains)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(1), created["id"])
	assert.Equal(t, map[string]any{"size": "50x80"}, created["painting_metadata"])

	status, updated, _ := doJSON(t, http.MethodPut, base+"1",
		`{"title":"Весенние горы","artist":"Ма Юань","dynasty":"Сун","category":"Пейзаж","description":"свиток","painting_metadata":null}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "свиток", updated["description"])
	assert.Nil(t, updated["painting_metadata"])

	status, found, _ := doJSON(t, http.MethodGet, base+"1", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "свиток", found["description"])

	status, deleted, _ := doJSON(t, http.MethodDelete, base+"1", "")
	require.Equal(t, http.StatusOK, status)
	assert.NotEmpty(t, deleted["message"])

	status, missing, _ := doJSON(t, http.MethodGet, base+"1", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Картина не найдена", missing["detail"])
}

func TestAPI_Errors(t *testing.T) {
	server := newTestServer(t)
	base := server.URL + "/api/paintings/"

	tests := []struct {
		name       string
		method     string
		url        string
		body       string
		wantStatus int
	}{
		{name: "update missing", method: http.MethodPut, url: base + "42", body: springMountains, wantStatus: http.StatusNotFound},
		{name: "delete missing", method: http.MethodDelete, url: base + "42", wantStatus: http.StatusNotFound},
		{name: "empty title", method: http.MethodPost, url: base,
			body: `{"title":" ","artist":"a","dynasty":"b","category":"c"}`, wantStatus: http.StatusUnprocessableEntity},
		{name: "unknown dimension", method: http.MethodGet, url: server.URL + "/api/analytics/color", wantStatus: http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body, _ := doJSON(t, tt.method, tt.url, tt.body)
			assert.Equal(t, tt.wantStatus, status)
			assert.NotEmpty(t, body["detail"])
		})
	}
}

func TestAPI_Analytics(t *testing.T) {
	server := newTestServer(t)

	for _, body := range []string{
		springMountains,
		`{"title":"Бамбук","artist":"Чжэн Се","dynasty":"Цин","category":"Цветы и птицы"}`,
		`{"title":"Ранняя весна","artist":"Го Си","dynasty":"Сун","category":"Пейзаж"}`,
	} {
		status, _, _ := doJSON(t, http.MethodPost, server.URL+"/api/paintings/", body)
		require.Equal(t, http.StatusOK, status)
	}

	_, _, raw := doJSON(t, http.MethodGet, server.URL+"/api/analytics/dynasty", "")
	assert.JSONEq(t, `[{"dynasty":"Сун","count":2},{"dynasty":"Цин","count":1}]`, string(raw))

	_, _, raw = doJSON(t, http.MethodGet, server.URL+"/api/analytics/category", "")
	assert.JSONEq(t, `[{"category":"Пейзаж","count":2},{"category":"Цветы и птицы","count":1}]`, string(raw))

	var timeline []map[string]any
	_, _, raw = doJSON(t, http.MethodGet, server.URL+"/api/analytics/timeline", "")
	require.NoError(t, json.Unmarshal(raw, &timeline))
	require.Len(t, timeline, 1)
	assert.Contains(t, timeline[0], "date")
	assert.Equal(t, float64(3), timeline[0]["count"])
}

func uploadPair(t *testing.T, url, imageName, jsonName, jsonBody string) (int, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("image", imageName)
	require.NoError(t, err)
	_, err = part.Write([]byte("image-bytes"))
	require.NoError(t, err)

	if jsonName != "" {
		part, err = mw.CreateFormFile("json_file", jsonName)
		require.NoError(t, err)
		_, err = part.Write([]byte(jsonBody))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	resp, err := http.Post(url+"/api/upload-pair", mw.FormDataContentType(), &buf)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestAPI_UploadPair(t *testing.T) {
	server := newTestServer(t)

	status, body := uploadPair(t, server.URL, "cat.png", "cat.json", `{"title":"Кот","artist":"Сюй Бэйхун"}`)
	require.Equal(t, http.StatusOK, status)
	assert.NotEmpty(t, body["message"])
	p, ok := body["painting"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Кот", p["title"])
	assert.Equal(t, catalog.Unknown, p["dynasty"])

	tests := []struct {
		name       string
		image      string
		jsonName   string
		jsonBody   string
		wantStatus int
	}{
		{name: "mismatch", image: "cat.png", jsonName: "cat2.json", jsonBody: `{}`, wantStatus: http.StatusBadRequest},
		{name: "bad image", image: "cat.tiff", jsonName: "cat.json", jsonBody: `{}`, wantStatus: http.StatusBadRequest},
		{name: "bad json", image: "cat.png", jsonName: "cat.json", jsonBody: `nope`, wantStatus: http.StatusBadRequest},
		{name: "missing json", image: "cat.png", wantStatus: http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := uploadPair(t, server.URL, tt.image, tt.jsonName, tt.jsonBody)
			assert.Equal(t, tt.wantStatus, status)
			assert.NotEmpty(t, body["detail"])
		})
	}
}
