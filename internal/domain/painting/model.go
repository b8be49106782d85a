package painting

import "encoding/json"

// Painting - запись каталога в том виде, в котором ее отдает бэкенд
type Painting struct {
	ID          int             `json:"id" yaml:"id"`
	Title       string          `json:"title" yaml:"title"`
	Artist      string          `json:"artist" yaml:"artist"`
	Dynasty     string          `json:"dynasty" yaml:"dynasty"`
	Category    string          `json:"category" yaml:"category"`
	Description string          `json:"description" yaml:"description"`
	Metadata    json.RawMessage `json:"painting_metadata" yaml:"-"`
	ImagePath   string          `json:"image_path,omitempty" yaml:"image_path,omitempty"`
	JSONPath    string          `json:"json_path,omitempty" yaml:"json_path,omitempty"`
	CreatedAt   *Timestamp      `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt   *Timestamp      `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

// HasMetadata сообщает, содержит ли запись непустые метаданные
func (p Painting) HasMetadata() bool {
	return hasValue(p.Metadata)
}

// Payload - тело запросов создания и обновления. Идентификатор клиент не передает.
type Payload struct {
	Title       string          `json:"title"`
	Artist      string          `json:"artist"`
	Dynasty     string          `json:"dynasty"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Metadata    json.RawMessage `json:"painting_metadata"`
}

// StatEntry - одна строка статистики (название группы и количество картин)
type StatEntry struct {
	Label string `json:"label" yaml:"label"`
	Count int    `json:"count" yaml:"count"`
}

// Dimension - измерение, по которому бэкенд группирует статистику
type Dimension string

const (
	DimensionDynasty  Dimension = "dynasty"
	DimensionCategory Dimension = "category"
	DimensionArtist   Dimension = "artist"
	DimensionTimeline Dimension = "timeline"
)

// LabelKey возвращает ключ, под которым бэкенд может прислать название группы
func (d Dimension) LabelKey() string {
	if d == DimensionTimeline {
		return "date"
	}
	return string(d)
}

// Valid проверяет, что измерение известно
func (d Dimension) Valid() bool {
	switch d {
	case DimensionDynasty, DimensionCategory, DimensionArtist, DimensionTimeline:
		return true
	}
	return false
}

// DecodeStats разбирает ответ статистики. Название группы берется из поля
// "label", а если его нет - из поля с именем измерения ("dynasty", "category" ...).
func DecodeStats(d Dimension, data []byte) ([]StatEntry, error) {
	var raw []map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	entries := make([]StatEntry, 0, len(raw))
	for _, item := range raw {
		var entry StatEntry

		labelRaw, ok := item["label"]
		if !ok {
			labelRaw = item[d.LabelKey()]
		}
		if hasValue(labelRaw) {
			if err := json.Unmarshal(labelRaw, &entry.Label); err != nil {
				// группа может прийти числом
				entry.Label = string(labelRaw)
			}
		}

		if countRaw, ok := item["count"]; ok {
			if err := json.Unmarshal(countRaw, &entry.Count); err != nil {
				return nil, err
			}
		}

		entries = append(entries, entry)
	}

	return entries, nil
}

func hasValue(raw json.RawMessage) bool {
	return len(raw) > 0 && string(raw) != "null"
}
