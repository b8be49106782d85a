package catalog

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gallery/internal/domain/painting"
	"gallery/internal/infrastructure/storage/sqlite"
	"gallery/internal/utils/logger"
)

func newTestService(t *testing.T) (*Service, string) {
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
	return NewService(sqlite.NewPaintingRepository(storage, log), uploadDir, log), uploadDir
}

func validPayload() painting.Payload {
	return painting.Payload{
		Title:    "Весенние горы",
		Artist:   "Ма Юань",
		Dynasty:  "Сун",
		Category: "Пейзаж",
		Metadata: json.RawMessage(`{"size":"50x80"}`),
	}
}

func TestService_CreateValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		modify func(p *painting.Payload)
	}{
		{name: "empty title", modify: func(p *painting.Payload) { p.Title = "" }},
		{name: "blank artist", modify: func(p *painting.Payload) { p.Artist = "   " }},
		{name: "empty dynasty", modify: func(p *painting.Payload) { p.Dynasty = "" }},
		{name: "empty category", modify: func(p *painting.Payload) { p.Category = "" }},
		{name: "broken metadata", modify: func(p *painting.Payload) { p.Metadata = json.RawMessage(`{`) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPayload()
			tt.modify(&p)

			_, err := svc.Create(ctx, p)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}

	created, err := svc.Create(ctx, validPayload())
	require.NoError(t, err)
	assert.Equal(t, "Весенние горы", created.Title)
}

func TestService_DeleteRemovesFiles(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	p, err := svc.UploadPair(ctx,
		Upload{Name: "cat.png", Content: strings.NewReader("png-bytes")},
		Upload{Name: "cat.json", Content: strings.NewReader(`{"title":"Кот"}`)},
	)
	require.NoError(t, err)
	require.FileExists(t, p.ImagePath)
	require.FileExists(t, p.JSONPath)

	require.NoError(t, svc.Delete(ctx, p.ID))
	assert.NoFileExists(t, p.ImagePath)
	assert.NoFileExists(t, p.JSONPath)

	assert.ErrorIs(t, svc.Delete(ctx, p.ID), painting.ErrNotFound)
}

func TestService_UploadPair(t *testing.T) {
	tests := []struct {
		name      string
		image     string
		jsonName  string
		jsonBody  string
		wantErr   error
		wantTitle string
		wantOwner string
	}{
		{
			name:      "fields from json",
			image:     "cat.png",
			jsonName:  "cat.json",
			jsonBody:  `{"title":"Кот","artist":"Сюй Бэйхун","dynasty":"Цин","category":"Животные"}`,
			wantTitle: "Кот",
			wantOwner: "Сюй Бэйхун",
		},
		{
			name:      "fields from file name",
			image:     "Сун_Ма Юань_Весенние горы_Пейзаж.JPG",
			jsonName:  "Сун_Ма Юань_Весенние горы_Пейзаж.json",
			jsonBody:  `{}`,
			wantTitle: "Весенние горы",
			wantOwner: "Ма Юань",
		},
		{
			name:      "base name as title",
			image:     "bamboo.gif",
			jsonName:  "bamboo.json",
			jsonBody:  `{"year":1750}`,
			wantTitle: "bamboo",
			wantOwner: Unknown,
		},
		{name: "unsupported image", image: "cat.bmp", jsonName: "cat.json", jsonBody: `{}`, wantErr: ErrUnsupportedImage},
		{name: "not json", image: "cat.png", jsonName: "cat.txt", jsonBody: `{}`, wantErr: ErrNotJSONFile},
		{name: "name mismatch", image: "cat.png", jsonName: "cat2.json", jsonBody: `{}`, wantErr: ErrNameMismatch},
		{name: "invalid json", image: "cat.png", jsonName: "cat.json", jsonBody: `{broken`, wantErr: ErrInvalidJSON},
		{name: "json array", image: "cat.png", jsonName: "cat.json", jsonBody: `[1,2]`, wantErr: ErrInvalidJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, uploadDir := newTestService(t)

			p, err := svc.UploadPair(context.Background(),
				Upload{Name: tt.image, Content: strings.NewReader("image")},
				Upload{Name: tt.jsonName, Content: strings.NewReader(tt.jsonBody)},
			)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				images, _ := os.ReadDir(filepath.Join(uploadDir, "images"))
				assert.Empty(t, images)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantTitle, p.Title)
			assert.Equal(t, tt.wantOwner, p.Artist)
			assert.JSONEq(t, tt.jsonBody, string(p.Metadata))
			assert.True(t, strings.HasPrefix(p.ImagePath, filepath.Join(uploadDir, "images")))
		})
	}
}

func TestService_Stats(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, validPayload())
	require.NoError(t, err)

	entries, err := svc.Stats(ctx, painting.DimensionDynasty)
	require.NoError(t, err)
	assert.Equal(t, []painting.StatEntry{{Label: "Сун", Count: 1}}, entries)

	_, err = svc.Stats(ctx, painting.Dimension("color"))
	assert.ErrorIs(t, err, ErrInvalidInput)
}
