package painting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"cat.png", "cat"},
		{"cat.json", "cat"},
		{"/tmp/images/cat.png", "cat"},
		{`C:\fakepath\cat.png`, "cat"},
		{"archive.tar.gz", "archive.tar"},
		{"noext", "noext"},
		{"trailing.", "trailing."},
		{".json", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, BaseName(tt.in))
		})
	}
}

func TestFilePair_Validate(t *testing.T) {
	tests := []struct {
		name    string
		pair    FilePair
		wantErr error
	}{
		{
			name:    "ничего не выбрано",
			pair:    FilePair{},
			wantErr: ErrFilesNotSelected,
		},
		{
			name:    "только изображение",
			pair:    FilePair{Image: NewFile("cat.png")},
			wantErr: ErrJSONNotSelected,
		},
		{
			name:    "только JSON",
			pair:    FilePair{JSON: NewFile("cat.json")},
			wantErr: ErrImageNotSelected,
		},
		{
			name:    "имена различаются",
			pair:    FilePair{Image: NewFile("cat.png"), JSON: NewFile("cat2.json")},
			wantErr: ErrFileNameMismatch,
		},
		{
			name: "имена совпадают",
			pair: FilePair{Image: NewFile("/a/cat.png"), JSON: NewFile("/b/cat.json")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.pair.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFilePair_Clear(t *testing.T) {
	fp := FilePair{Image: NewFile("cat.png"), JSON: NewFile("cat.json")}
	fp.Clear()
	assert.Nil(t, fp.Image)
	assert.Nil(t, fp.JSON)
}
