package painting

import (
	"encoding/json"
	"fmt"
	"time"
)

// Бэкенд может прислать время без часового пояса ("2025-02-10T12:34:56"),
// такие значения считаются местным временем сервера.
var naiveLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

// Timestamp - время создания или изменения записи
type Timestamp struct {
	time.Time
}

// NewTimestamp оборачивает время
func NewTimestamp(t time.Time) *Timestamp {
	return &Timestamp{Time: t}
}

// UnmarshalJSON принимает RFC 3339 и время без зоны
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("некорректное время: %w", err)
	}

	parsed, err := ParseTimestamp(s)
	if err != nil {
		return err
	}

	t.Time = parsed
	return nil
}

// MarshalYAML выводит время в RFC 3339
func (t Timestamp) MarshalYAML() (interface{}, error) {
	return t.Time.Format(time.RFC3339), nil
}

// Std возвращает время из стандартной библиотеки или nil
func (t *Timestamp) Std() *time.Time {
	if t == nil {
		return nil
	}
	v := t.Time
	return &v
}

// ParseTimestamp разбирает время в любом из форматов бэкенда
func ParseTimestamp(s string) (time.Time, error) {
	if parsed, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return parsed, nil
	}

	for _, layout := range naiveLayouts {
		if parsed, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return parsed, nil
		}
	}

	return time.Time{}, fmt.Errorf("некорректное время: %q", s)
}
