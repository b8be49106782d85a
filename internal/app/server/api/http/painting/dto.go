package painting

import (
	"encoding/json"
	"time"

	"gallery/internal/domain/painting"
)

type listOutput struct {
	Body []PaintingResponse
}

type findInput struct {
	ID int `path:"id" example:"1" doc:"ID картины"`
}

type createInput struct {
	Body request
}

type updateInput struct {
	ID   int `path:"id" example:"1" doc:"ID картины"`
	Body request
}

type paintingOutput struct {
	Body PaintingResponse
}

type deleteOutput struct {
	Body messageResponse
}

type request struct {
	Title       string `json:"title" doc:"Название"`
	Artist      string `json:"artist" doc:"Художник"`
	Dynasty     string `json:"dynasty" doc:"Династия"`
	Category    string `json:"category" doc:"Категория"`
	Description string `json:"description,omitempty" required:"false" doc:"Описание"`
	Metadata    any    `json:"painting_metadata,omitempty" required:"false" doc:"Произвольные метаданные в формате JSON"`
}

// PaintingResponse - картина в теле ответа
type PaintingResponse struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Artist      string     `json:"artist"`
	Dynasty     string     `json:"dynasty"`
	Category    string     `json:"category"`
	Description string     `json:"description"`
	Metadata    any        `json:"painting_metadata"`
	ImagePath   string     `json:"image_path"`
	JSONPath    string     `json:"json_path"`
	CreatedAt   *time.Time `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func (r request) payload() (painting.Payload, error) {
	raw, err := json.Marshal(r.Metadata)
	if err != nil {
		return painting.Payload{}, err
	}

	return painting.Payload{
		Title:       r.Title,
		Artist:      r.Artist,
		Dynasty:     r.Dynasty,
		Category:    r.Category,
		Description: r.Description,
		Metadata:    raw,
	}, nil
}

// ToResponse переводит запись в тело ответа. Используется и загрузкой пары файлов.
func ToResponse(p painting.Painting) PaintingResponse {
	var meta any
	if p.HasMetadata() {
		_ = json.Unmarshal(p.Metadata, &meta)
	}

	return PaintingResponse{
		ID:          p.ID,
		Title:       p.Title,
		Artist:      p.Artist,
		Dynasty:     p.Dynasty,
		Category:    p.Category,
		Description: p.Description,
		Metadata:    meta,
		ImagePath:   p.ImagePath,
		JSONPath:    p.JSONPath,
		CreatedAt:   p.CreatedAt.Std(),
		UpdatedAt:   p.UpdatedAt.Std(),
	}
}
