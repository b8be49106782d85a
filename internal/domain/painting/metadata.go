package painting

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// MetadataKind - состояние поля метаданных черновика
type MetadataKind int

const (
	// MetadataText - текст, который пользователь редактирует
	MetadataText MetadataKind = iota
	// MetadataParsed - разобранный JSON, готовый к отправке
	MetadataParsed
)

// Metadata хранит метаданные картины либо как текст, либо как разобранный объект.
// Переход между состояниями происходит только в двух местах: при загрузке
// записи на редактирование (FormatMetadata) и при отправке (Parse).
type Metadata struct {
	Kind   MetadataKind
	Text   string
	Parsed json.RawMessage
}

// TextMetadata создает метаданные в текстовом состоянии
func TextMetadata(text string) Metadata {
	return Metadata{Kind: MetadataText, Text: text}
}

// ParsedMetadata создает метаданные в разобранном состоянии
func ParsedMetadata(raw json.RawMessage) Metadata {
	return Metadata{Kind: MetadataParsed, Parsed: raw}
}

// Parse переводит метаданные в разобранное состояние для отправки.
// Пустой текст дает разобранный null.
func (m Metadata) Parse() (Metadata, error) {
	if m.Kind == MetadataParsed {
		return m, nil
	}

	if m.Text == "" {
		return ParsedMetadata(nil), nil
	}

	var v interface{}
	if err := json.Unmarshal([]byte(m.Text), &v); err != nil {
		return Metadata{}, fmt.Errorf("%w: %v", ErrInvalidMetadata, err)
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, []byte(m.Text)); err != nil {
		return Metadata{}, fmt.Errorf("%w: %v", ErrInvalidMetadata, err)
	}

	return ParsedMetadata(buf.Bytes()), nil
}

// Raw возвращает JSON для тела запроса. Для текста и пустых метаданных - nil.
func (m Metadata) Raw() json.RawMessage {
	if m.Kind != MetadataParsed || !hasValue(m.Parsed) {
		return nil
	}
	return m.Parsed
}

// String возвращает текстовое представление для формы
func (m Metadata) String() string {
	if m.Kind == MetadataText {
		return m.Text
	}
	return FormatMetadata(m.Parsed)
}

// FormatMetadata форматирует JSON с отступом в два пробела.
// Отсутствующие метаданные превращаются в пустую строку.
func FormatMetadata(raw json.RawMessage) string {
	if !hasValue(raw) {
		return ""
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return string(raw)
	}

	return buf.String()
}
