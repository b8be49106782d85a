package painting

import (
	"fmt"
	"strings"
)

// Field - редактируемое поле черновика
type Field string

const (
	FieldTitle       Field = "title"
	FieldArtist      Field = "artist"
	FieldDynasty     Field = "dynasty"
	FieldCategory    Field = "category"
	FieldDescription Field = "description"
	FieldMetadata    Field = "painting_metadata"
)

// Fields перечисляет поля формы в порядке отображения
var Fields = []Field{FieldTitle, FieldArtist, FieldDynasty, FieldCategory, FieldDescription, FieldMetadata}

// ParseField разбирает имя поля. Для метаданных допускается короткое имя "metadata".
func ParseField(name string) (Field, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "metadata" || name == "meta" {
		return FieldMetadata, nil
	}
	for _, f := range Fields {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("неизвестное поле: %s", name)
}

// Draft - черновик формы, общий для создания и редактирования
type Draft struct {
	Title       string
	Artist      string
	Dynasty     string
	Category    string
	Description string
	Metadata    Metadata
}

// EmptyDraft возвращает пустой шаблон формы
func EmptyDraft() Draft {
	return Draft{Metadata: TextMetadata("")}
}

// DraftFrom копирует запись в черновик, переводя метаданные в текст с отступами
func DraftFrom(p Painting) Draft {
	return Draft{
		Title:       p.Title,
		Artist:      p.Artist,
		Dynasty:     p.Dynasty,
		Category:    p.Category,
		Description: p.Description,
		Metadata:    TextMetadata(FormatMetadata(p.Metadata)),
	}
}

// Set меняет одно поле черновика
func (d *Draft) Set(field Field, value string) error {
	switch field {
	case FieldTitle:
		d.Title = value
	case FieldArtist:
		d.Artist = value
	case FieldDynasty:
		d.Dynasty = value
	case FieldCategory:
		d.Category = value
	case FieldDescription:
		d.Description = value
	case FieldMetadata:
		d.Metadata = TextMetadata(value)
	default:
		return fmt.Errorf("неизвестное поле: %s", field)
	}
	return nil
}

// Get возвращает значение поля в текстовом виде
func (d Draft) Get(field Field) string {
	switch field {
	case FieldTitle:
		return d.Title
	case FieldArtist:
		return d.Artist
	case FieldDynasty:
		return d.Dynasty
	case FieldCategory:
		return d.Category
	case FieldDescription:
		return d.Description
	case FieldMetadata:
		return d.Metadata.String()
	}
	return ""
}

// Payload собирает тело запроса. Ошибка означает, что метаданные не разобрались,
// и запрос отправлять нельзя.
func (d Draft) Payload() (Payload, error) {
	parsed, err := d.Metadata.Parse()
	if err != nil {
		return Payload{}, err
	}

	return Payload{
		Title:       d.Title,
		Artist:      d.Artist,
		Dynasty:     d.Dynasty,
		Category:    d.Category,
		Description: d.Description,
		Metadata:    parsed.Raw(),
	}, nil
}

// EditSession - признак режима редактирования и идентификатор редактируемой записи.
// Active истинно тогда и только тогда, когда задан ID.
type EditSession struct {
	id *int
}

// Begin включает режим редактирования записи id
func (s *EditSession) Begin(id int) {
	s.id = &id
}

// Clear возвращает форму в режим создания
func (s *EditSession) Clear() {
	s.id = nil
}

// Active сообщает, идет ли редактирование
func (s EditSession) Active() bool {
	return s.id != nil
}

// ID возвращает идентификатор редактируемой записи
func (s EditSession) ID() (int, bool) {
	if s.id == nil {
		return 0, false
	}
	return *s.id, true
}
