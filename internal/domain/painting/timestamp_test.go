package painting

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "RFC 3339", input: "2025-02-10T12:34:56Z", want: "2025-02-10 12:34:56"},
		{name: "RFC 3339 со смещением", input: "2025-02-10T12:34:56+03:00", want: "2025-02-10 12:34:56"},
		{name: "без зоны", input: "2025-02-10T12:34:56", want: "2025-02-10 12:34:56"},
		{name: "без зоны с микросекундами", input: "2025-02-10T12:34:56.123456", want: "2025-02-10 12:34:56"},
		{name: "через пробел", input: "2025-02-10 12:34:56", want: "2025-02-10 12:34:56"},
		{name: "мусор", input: "вчера", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimestamp(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Format("2006-01-02 15:04:05"))
		})
	}
}

func TestPainting_UnmarshalBackendShape(t *testing.T) {
	data := `{"id":3,"title":"t","artist":"a","dynasty":"d","category":"c",` +
		`"description":null,"painting_metadata":{"k":1},` +
		`"created_at":"2025-02-10T12:34:56","updated_at":null}`

	var p Painting
	require.NoError(t, json.Unmarshal([]byte(data), &p))

	assert.Equal(t, 3, p.ID)
	assert.Equal(t, "", p.Description)
	assert.True(t, p.HasMetadata())
	require.NotNil(t, p.CreatedAt)
	assert.Equal(t, time.Month(2), p.CreatedAt.Month())
	assert.Equal(t, 34, p.CreatedAt.Minute())
	assert.Nil(t, p.UpdatedAt)
}

func TestPainting_UnmarshalBadTimestamp(t *testing.T) {
	var p Painting
	err := json.Unmarshal([]byte(`{"id":1,"created_at":"yesterday"}`), &p)
	assert.Error(t, err)
}

func TestTimestamp_Std(t *testing.T) {
	var nilTS *Timestamp
	assert.Nil(t, nilTS.Std())

	now := time.Date(2025, 2, 10, 12, 0, 0, 0, time.UTC)
	got := NewTimestamp(now).Std()
	require.NotNil(t, got)
	assert.True(t, now.Equal(*got))
}
