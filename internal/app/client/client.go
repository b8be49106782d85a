package client

import (
	"context"
	"fmt"
	gosync "sync"
	"time"

	"golang.org/x/exp/slog"

	"gallery/internal/app/client/config"
	"gallery/internal/domain/painting"
)

// Сообщения, которые видит пользователь
const (
	MsgFetchPaintingsFailed = "Не удалось получить список картин"
	MsgInvalidMetadata      = "Метаданные не являются корректным JSON"
	MsgCreated              = "Картина добавлена"
	MsgUpdated              = "Картина обновлена"
	MsgSaveFailed           = "Не удалось сохранить картину"
	MsgConfirmDelete        = "Вы уверены, что хотите удалить эту картину?"
	MsgDeleted              = "Картина удалена"
	MsgDeleteFailed         = "Не удалось удалить картину"
	MsgUploaded             = "Пара файлов загружена"
	MsgUploadFailed         = "Не удалось загрузить файлы"
)

// Backend - операции бэкенда каталога, которые нужны клиенту
type Backend interface {
	HealthCheck(ctx context.Context) error
	ListPaintings(ctx context.Context) ([]painting.Painting, error)
	GetPainting(ctx context.Context, id int) (*painting.Painting, error)
	CreatePainting(ctx context.Context, payload painting.Payload) (*painting.Painting, error)
	UpdatePainting(ctx context.Context, id int, payload painting.Payload) (*painting.Painting, error)
	DeletePainting(ctx context.Context, id int) error
	Stats(ctx context.Context, dim painting.Dimension) ([]painting.StatEntry, error)
	UploadPair(ctx context.Context, image, jsonFile *painting.File) (*UploadResult, error)
}

// Notifier показывает пользователю блокирующее сообщение
type Notifier interface {
	Alert(msg string)
}

// Confirmer спрашивает у пользователя подтверждение
type Confirmer interface {
	Confirm(msg string) bool
}

// App - состояние клиента галереи. Каждое поле состояния меняется только
// методами ниже и заменяется целиком последней завершившейся операцией.
type App struct {
	log       *slog.Logger
	backend   Backend
	notifier  Notifier
	confirmer Confirmer

	mu            gosync.RWMutex
	paintings     []painting.Painting
	dynastyStats  []painting.StatEntry
	categoryStats []painting.StatEntry
	draft         painting.Draft
	edit          painting.EditSession
	files         painting.FilePair
}

func New(cfg *config.Config, log *slog.Logger, notifier Notifier, confirmer Confirmer) (*App, error) {
	httpCl, err := NewHTTPClient(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("ошибка инициализации HTTP клиента: %w", err)
	}

	return NewWithBackend(httpCl, log, notifier, confirmer), nil
}

func NewWithBackend(backend Backend, log *slog.Logger, notifier Notifier, confirmer Confirmer) *App {
	return &App{
		log:       log.With("component", "gallery"),
		backend:   backend,
		notifier:  notifier,
		confirmer: confirmer,
		paintings: []painting.Painting{},
		draft:     painting.EmptyDraft(),
	}
}

// Load загружает список и статистику, как при открытии страницы
func (a *App) Load(ctx context.Context) error {
	err := a.FetchPaintings(ctx)
	a.FetchStats(ctx)
	return err
}

// CheckConnection проверяет соединение с сервером
func (a *App) CheckConnection(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	return a.backend.HealthCheck(ctx)
}

// FetchPaintings перечитывает список картин целиком.
// При ошибке прежний список остается на месте.
func (a *App) FetchPaintings(ctx context.Context) error {
	paintings, err := a.backend.ListPaintings(ctx)
	if err != nil {
		a.log.Error(MsgFetchPaintingsFailed, "error", err)
		a.notifier.Alert(MsgFetchPaintingsFailed)
		return err
	}

	a.mu.Lock()
	a.paintings = paintings
	a.mu.Unlock()

	a.log.Debug("Список картин обновлен", "count", len(paintings))
	return nil
}

// FetchStats перечитывает статистику по династиям и категориям.
// Запросы независимы; ошибки только логируются.
func (a *App) FetchStats(ctx context.Context) {
	var wg gosync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		a.fetchStat(ctx, painting.DimensionDynasty, &a.dynastyStats, "Не удалось получить статистику по династиям")
	}()

	go func() {
		defer wg.Done()
		a.fetchStat(ctx, painting.DimensionCategory, &a.categoryStats, "Не удалось получить статистику по категориям")
	}()

	wg.Wait()
}

func (a *App) fetchStat(ctx context.Context, dim painting.Dimension, dst *[]painting.StatEntry, failMsg string) {
	entries, err := a.backend.Stats(ctx, dim)
	if err != nil {
		a.log.Error(failMsg, "error", err)
		return
	}

	a.mu.Lock()
	*dst = entries
	a.mu.Unlock()
}

// Stats запрашивает статистику по произвольному измерению без изменения состояния
func (a *App) Stats(ctx context.Context, dim painting.Dimension) ([]painting.StatEntry, error) {
	entries, err := a.backend.Stats(ctx, dim)
	if err != nil {
		a.log.Error("Не удалось получить статистику", "dimension", dim, "error", err)
		return nil, err
	}
	return entries, nil
}

// GetPainting получает одну картину с сервера
func (a *App) GetPainting(ctx context.Context, id int) (*painting.Painting, error) {
	p, err := a.backend.GetPainting(ctx, id)
	if err != nil {
		a.log.Error("Не удалось получить картину", "id", id, "error", err)
		return nil, err
	}
	return p, nil
}

// SetField меняет поле черновика
func (a *App) SetField(field painting.Field, value string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.draft.Set(field, value)
}

// SetMetadataText меняет текст метаданных черновика
func (a *App) SetMetadataText(text string) {
	a.mu.Lock()
	a.draft.Metadata = painting.TextMetadata(text)
	a.mu.Unlock()
}

// SavePainting создает или обновляет картину из черновика.
// Черновик и режим редактирования сбрасываются только при успехе.
func (a *App) SavePainting(ctx context.Context) error {
	a.mu.RLock()
	draft := a.draft
	editID, editing := a.edit.ID()
	a.mu.RUnlock()

	payload, err := draft.Payload()
	if err != nil {
		a.log.Warn("Некорректные метаданные", "error", err)
		a.notifier.Alert(MsgInvalidMetadata)
		return err
	}

	if editing {
		_, err = a.backend.UpdatePainting(ctx, editID, payload)
	} else {
		_, err = a.backend.CreatePainting(ctx, payload)
	}
	if err != nil {
		a.log.Error(MsgSaveFailed, "editing", editing, "error", err)
		a.notifier.Alert(MsgSaveFailed)
		return err
	}

	_ = a.FetchPaintings(ctx)
	a.FetchStats(ctx)
	a.ResetForm()

	if editing {
		a.log.Info("Картина обновлена", "id", editID)
		a.notifier.Alert(MsgUpdated)
	} else {
		a.log.Info("Картина добавлена", "title", payload.Title)
		a.notifier.Alert(MsgCreated)
	}

	return nil
}

// EditPainting переводит форму в режим редактирования записи p
func (a *App) EditPainting(p painting.Painting) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.edit.Begin(p.ID)
	a.draft = painting.DraftFrom(p)
}

// EditPaintingByID ищет запись в текущем списке, а если ее там нет - на сервере
func (a *App) EditPaintingByID(ctx context.Context, id int) error {
	a.mu.RLock()
	var found *painting.Painting
	for i := range a.paintings {
		if a.paintings[i].ID == id {
			p := a.paintings[i]
			found = &p
			break
		}
	}
	a.mu.RUnlock()

	if found == nil {
		p, err := a.GetPainting(ctx, id)
		if err != nil {
			return err
		}
		found = p
	}

	a.EditPainting(*found)
	return nil
}

// DeletePainting удаляет картину после подтверждения.
// Отказ от подтверждения - не ошибка: возвращается false без запроса.
func (a *App) DeletePainting(ctx context.Context, id int) (bool, error) {
	if !a.confirmer.Confirm(MsgConfirmDelete) {
		a.log.Debug("Удаление отменено", "id", id)
		return false, nil
	}

	if err := a.backend.DeletePainting(ctx, id); err != nil {
		a.log.Error(MsgDeleteFailed, "id", id, "error", err)
		a.notifier.Alert(MsgDeleteFailed)
		return false, err
	}

	_ = a.FetchPaintings(ctx)
	a.FetchStats(ctx)

	a.log.Info("Картина удалена", "id", id)
	a.notifier.Alert(MsgDeleted)
	return true, nil
}

// SelectImage запоминает выбранный файл изображения
func (a *App) SelectImage(path string) {
	a.mu.Lock()
	a.files.Image = painting.NewFile(path)
	a.mu.Unlock()
}

// SelectJSON запоминает выбранный JSON-файл
func (a *App) SelectJSON(path string) {
	a.mu.Lock()
	a.files.JSON = painting.NewFile(path)
	a.mu.Unlock()
}

// UploadFiles загружает выбранную пару файлов.
// При ошибке выбор файлов сохраняется, чтобы можно было повторить.
func (a *App) UploadFiles(ctx context.Context) error {
	a.mu.RLock()
	files := a.files
	a.mu.RUnlock()

	if err := files.Validate(); err != nil {
		a.notifier.Alert(err.Error())
		return err
	}

	result, err := a.backend.UploadPair(ctx, files.Image, files.JSON)
	if err != nil {
		a.log.Error("Ошибка загрузки файлов", "image", files.Image.Name, "json", files.JSON.Name, "error", err)

		detail, ok := ErrorDetail(err)
		if !ok {
			detail = err.Error()
		}
		a.notifier.Alert(MsgUploadFailed + ": " + detail)
		return err
	}

	a.notifier.Alert(MsgUploaded)
	_ = a.FetchPaintings(ctx)

	a.mu.Lock()
	a.files.Clear()
	a.mu.Unlock()

	attrs := []interface{}{"image", files.Image.Name}
	if result != nil && result.Painting != nil {
		attrs = append(attrs, "id", result.Painting.ID)
	}
	a.log.Info("Пара файлов загружена", attrs...)

	return nil
}

// ResetForm возвращает форму к пустому шаблону
func (a *App) ResetForm() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.draft = painting.EmptyDraft()
	a.edit.Clear()
	a.files.Clear()
}

// Paintings возвращает копию текущего списка
func (a *App) Paintings() []painting.Painting {
	a.mu.RLock()
	defer a.mu.RUnlock()

	out := make([]painting.Painting, len(a.paintings))
	copy(out, a.paintings)
	return out
}

// DynastyStats возвращает копию статистики по династиям
func (a *App) DynastyStats() []painting.StatEntry {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return append([]painting.StatEntry(nil), a.dynastyStats...)
}

// CategoryStats возвращает копию статистики по категориям
func (a *App) CategoryStats() []painting.StatEntry {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return append([]painting.StatEntry(nil), a.categoryStats...)
}

// Draft возвращает копию черновика
func (a *App) Draft() painting.Draft {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.draft
}

// EditSession возвращает текущий режим формы
func (a *App) EditSession() painting.EditSession {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.edit
}

// FilePair возвращает выбранные файлы
func (a *App) FilePair() painting.FilePair {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.files
}
