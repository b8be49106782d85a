// Package catalog - логика тестового бэкенда каталога картин
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"gallery/internal/domain/painting"
)

const (
	// Unknown подставляется вместо отсутствующих полей загруженной пары
	Unknown = "Неизвестно"

	maxJSONSize = 1 << 20
)

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

type Repository interface {
	List(ctx context.Context) ([]painting.Painting, error)
	Get(ctx context.Context, id int) (*painting.Painting, error)
	Create(ctx context.Context, p painting.Painting) (*painting.Painting, error)
	Update(ctx context.Context, id int, payload painting.Payload) (*painting.Painting, error)
	Delete(ctx context.Context, id int) error
	CountBy(ctx context.Context, dim painting.Dimension) ([]painting.StatEntry, error)
}

// Servicer - операции каталога, которые нужны обработчикам
type Servicer interface {
	List(ctx context.Context) ([]painting.Painting, error)
	Get(ctx context.Context, id int) (*painting.Painting, error)
	Create(ctx context.Context, payload painting.Payload) (*painting.Painting, error)
	Update(ctx context.Context, id int, payload painting.Payload) (*painting.Painting, error)
	Delete(ctx context.Context, id int) error
	Stats(ctx context.Context, dim painting.Dimension) ([]painting.StatEntry, error)
	UploadPair(ctx context.Context, image, jsonFile Upload) (*painting.Painting, error)
}

// Upload - загруженный файл: исходное имя и содержимое
type Upload struct {
	Name    string
	Content io.Reader
}

type Service struct {
	repo      Repository
	uploadDir string
	log       *slog.Logger
}

func NewService(repo Repository, uploadDir string, log *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		uploadDir: uploadDir,
		log:       log.With("component", "catalog_service"),
	}
}

func (s *Service) List(ctx context.Context) ([]painting.Painting, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int) (*painting.Painting, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, payload painting.Payload) (*painting.Painting, error) {
	if err := validatePayload(payload); err != nil {
		return nil, err
	}

	p, err := s.repo.Create(ctx, painting.Painting{
		Title:       payload.Title,
		Artist:      payload.Artist,
		Dynasty:     payload.Dynasty,
		Category:    payload.Category,
		Description: payload.Description,
		Metadata:    payload.Metadata,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("painting created", "id", p.ID, "title", p.Title)
	return p, nil
}

func (s *Service) Update(ctx context.Context, id int, payload painting.Payload) (*painting.Painting, error) {
	if err := validatePayload(payload); err != nil {
		return nil, err
	}

	p, err := s.repo.Update(ctx, id, payload)
	if err != nil {
		return nil, err
	}

	s.log.Info("painting updated", "id", id)
	return p, nil
}

// Delete удаляет запись и связанные с ней файлы
func (s *Service) Delete(ctx context.Context, id int) error {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.removeFiles(p.ImagePath, p.JSONPath)
	s.log.Info("painting deleted", "id", id)
	return nil
}

func (s *Service) Stats(ctx context.Context, dim painting.Dimension) ([]painting.StatEntry, error) {
	if !dim.Valid() {
		return nil, fmt.Errorf("%w: неизвестное измерение %s", ErrInvalidInput, dim)
	}
	return s.repo.CountBy(ctx, dim)
}

// UploadPair сохраняет изображение и JSON и создает по ним запись каталога
func (s *Service) UploadPair(ctx context.Context, image, jsonFile Upload) (*painting.Painting, error) {
	imageExt := strings.ToLower(filepath.Ext(image.Name))
	if !imageExtensions[imageExt] {
		return nil, ErrUnsupportedImage
	}
	if strings.ToLower(filepath.Ext(jsonFile.Name)) != ".json" {
		return nil, ErrNotJSONFile
	}

	base := painting.BaseName(image.Name)
	if base != painting.BaseName(jsonFile.Name) {
		return nil, ErrNameMismatch
	}

	raw, err := io.ReadAll(io.LimitReader(jsonFile.Content, maxJSONSize))
	if err != nil {
		return nil, fmt.Errorf("read json file: %w", err)
	}

	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return nil, ErrInvalidJSON
	}

	stored := uuid.NewString()
	imagePath := filepath.Join(s.uploadDir, "images", stored+imageExt)
	jsonPath := filepath.Join(s.uploadDir, "json", stored+".json")

	if err := writeFile(imagePath, image.Content); err != nil {
		return nil, fmt.Errorf("save image: %w", err)
	}
	if err := os.WriteFile(jsonPath, raw, 0o644); err != nil {
		s.removeFiles(imagePath)
		return nil, fmt.Errorf("save json: %w", err)
	}

	p := paintingFromUpload(base, fields)
	p.Metadata = json.RawMessage(raw)
	p.ImagePath = imagePath
	p.JSONPath = jsonPath

	created, err := s.repo.Create(ctx, p)
	if err != nil {
		s.removeFiles(imagePath, jsonPath)
		return nil, err
	}

	s.log.Info("file pair uploaded", "id", created.ID, "image", image.Name)
	return created, nil
}

// paintingFromUpload берет поля из JSON, затем из имени файла
// вида "династия_художник_название_категория", затем значения по умолчанию
func paintingFromUpload(base string, fields map[string]any) painting.Painting {
	fromName := map[string]string{}
	parts := strings.Split(base, "_")
	if len(parts) >= 3 {
		fromName["dynasty"] = parts[0]
		fromName["artist"] = parts[1]
		fromName["title"] = parts[2]
		if len(parts) >= 4 {
			fromName["category"] = parts[3]
		}
	} else {
		fromName["title"] = base
	}

	pick := func(key, def string) string {
		if v, ok := fields[key].(string); ok && strings.TrimSpace(v) != "" {
			return v
		}
		if v := fromName[key]; v != "" {
			return v
		}
		return def
	}

	return painting.Painting{
		Title:       pick("title", Unknown),
		Artist:      pick("artist", Unknown),
		Dynasty:     pick("dynasty", Unknown),
		Category:    pick("category", Unknown),
		Description: pick("description", ""),
	}
}

func validatePayload(payload painting.Payload) error {
	required := []struct {
		name  string
		value string
	}{
		{"title", payload.Title},
		{"artist", payload.Artist},
		{"dynasty", payload.Dynasty},
		{"category", payload.Category},
	}

	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: поле %s обязательно", ErrInvalidInput, f.name)
		}
	}

	if len(payload.Metadata) > 0 && string(payload.Metadata) != "null" {
		if !json.Valid(payload.Metadata) {
			return fmt.Errorf("%w: painting_metadata не является корректным JSON", ErrInvalidInput)
		}
	}

	return nil
}

func writeFile(path string, content io.Reader) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, content); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return err
	}
	return f.Close()
}

func (s *Service) removeFiles(paths ...string) {
	for _, p := range paths {
		if p == "" {
			continue
		}
		if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
			s.log.Warn("failed to remove file", "path", p, "error", err)
		}
	}
}
