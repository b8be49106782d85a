package shell

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gallery/internal/app/client"
	"gallery/internal/app/client/ui"
	"gallery/internal/domain/painting"
	"gallery/internal/utils/logger"
)

// fakeBackend хранит картины в памяти
type fakeBackend struct {
	paintings []painting.Painting
	nextID    int
	created   []painting.Payload
	updated   map[int]painting.Payload
	deleted   []int
}

func newFakeBackend(paintings ...painting.Painting) *fakeBackend {
	return &fakeBackend{paintings: paintings, nextID: len(paintings) + 1, updated: map[int]painting.Payload{}}
}

func (f *fakeBackend) HealthCheck(context.Context) error { return nil }

func (f *fakeBackend) ListPaintings(context.Context) ([]painting.Painting, error) {
	return append([]painting.Painting(nil), f.paintings...), nil
}

func (f *fakeBackend) GetPainting(_ context.Context, id int) (*painting.Painting, error) {
	for _, p := range f.paintings {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, painting.ErrNotFound
}

func (f *fakeBackend) CreatePainting(_ context.Context, payload painting.Payload) (*painting.Painting, error) {
	f.created = append(f.created, payload)
	p := painting.Painting{ID: f.nextID, Title: payload.Title, Artist: payload.Artist,
		Dynasty: payload.Dynasty, Category: payload.Category, Metadata: payload.Metadata}
	f.nextID++
	f.paintings = append(f.paintings, p)
	return &p, nil
}

func (f *fakeBackend) UpdatePainting(_ context.Context, id int, payload painting.Payload) (*painting.Painting, error) {
	f.updated[id] = payload
	for i := range f.paintings {
		if f.paintings[i].ID == id {
			f.paintings[i].Title = payload.Title
			return &f.paintings[i], nil
		}
	}
	return nil, painting.ErrNotFound
}

func (f *fakeBackend) DeletePainting(_ context.Context, id int) error {
	f.deleted = append(f.deleted, id)
	kept := f.paintings[:0]
	for _, p := range f.paintings {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	f.paintings = kept
	return nil
}

func (f *fakeBackend) Stats(_ context.Context, dim painting.Dimension) ([]painting.StatEntry, error) {
	counts := map[string]int{}
	var order []string
	for _, p := range f.paintings {
		label := p.Dynasty
		if dim == painting.DimensionCategory {
			label = p.Category
		}
		if _, ok := counts[label]; !ok {
			order = append(order, label)
		}
		counts[label]++
	}
	entries := make([]painting.StatEntry, 0, len(order))
	for _, l := range order {
		entries = append(entries, painting.StatEntry{Label: l, Count: counts[l]})
	}
	return entries, nil
}

func (f *fakeBackend) UploadPair(context.Context, *painting.File, *painting.File) (*client.UploadResult, error) {
	return &client.UploadResult{Message: "ok"}, nil
}

func runScript(t *testing.T, backend *fakeBackend, script string, assumeYes bool) string {
	t.Helper()

	color.NoColor = true

	var out bytes.Buffer
	console := ui.NewConsoleWith(strings.NewReader(script), &out, true, assumeYes)
	app := client.NewWithBackend(backend, logger.Discard(), console, console)

	require.NoError(t, NewSession(app, console, "text").Run(context.Background()))
	return out.String()
}

func TestSession_CreateWithMetadata(t *testing.T) {
	backend := newFakeBackend()

	script := strings.Join([]string{
		"set title Весенние горы",
		"set artist Ма Юань",
		"set dynasty Сун",
		"set category Пейзаж",
		"meta",
		`{"size":`,
		`  "50x80"}`,
		".",
		"save",
		"stats",
		"quit",
	}, "\n") + "\n"

	out := runScript(t, backend, script, false)

	require.Len(t, backend.created, 1)
	assert.Equal(t, "Весенние горы", backend.created[0].Title)
	assert.JSONEq(t, `{"size":"50x80"}`, string(backend.created[0].Metadata))
	assert.Contains(t, out, client.MsgCreated)
	assert.Contains(t, out, "Сун")
}

func TestSession_EditAndSave(t *testing.T) {
	backend := newFakeBackend(painting.Painting{ID: 1, Title: "Старое", Artist: "А", Dynasty: "Тан", Category: "Пейзаж",
		Metadata: json.RawMessage(`{"a":1}`)})

	out := runScript(t, backend, "edit 1\nset title Новое\nsave\n", false)

	require.Contains(t, backend.updated, 1)
	assert.Equal(t, "Новое", backend.updated[1].Title)
	assert.JSONEq(t, `{"a":1}`, string(backend.updated[1].Metadata))
	assert.Empty(t, backend.created)
	assert.Contains(t, out, client.MsgUpdated)
}

func TestSession_InvalidMetadata(t *testing.T) {
	backend := newFakeBackend()

	out := runScript(t, backend, "set title X\nset meta {broken\nsave\n", false)

	assert.Empty(t, backend.created)
	assert.Contains(t, out, client.MsgInvalidMetadata)
}

func TestSession_Delete(t *testing.T) {
	p := painting.Painting{ID: 3, Title: "Бамбук"}

	t.Run("declined", func(t *testing.T) {
		backend := newFakeBackend(p)
		runScript(t, backend, "delete 3\nn\n", false)
		assert.Empty(t, backend.deleted)
	})

	t.Run("confirmed", func(t *testing.T) {
		backend := newFakeBackend(p)
		out := runScript(t, backend, "delete 3\nда\nlist\n", false)
		assert.Equal(t, []int{3}, backend.deleted)
		assert.Contains(t, out, client.MsgDeleted)
		assert.Contains(t, out, "Картины не найдены")
	})
}

func TestSession_UploadPreconditions(t *testing.T) {
	backend := newFakeBackend()

	out := runScript(t, backend, "image /tmp/cat.png\njson /tmp/cat2.json\nupload\n", false)

	assert.Contains(t, out, painting.ErrFileNameMismatch.Error())
}

func TestSession_UnknownAndBadInput(t *testing.T) {
	backend := newFakeBackend()

	out := runScript(t, backend, "frobnicate\nshow 42\nedit abc\nset color red\n", false)

	assert.Contains(t, out, "неизвестная команда: frobnicate")
	assert.Contains(t, out, painting.ErrNotFound.Error())
	assert.Contains(t, out, "некорректный ID картины")
	assert.Contains(t, out, "неизвестное поле: color")
}

func TestSplitCommand(t *testing.T) {
	name, rest := splitCommand("  SET title  Весенние горы \n")
	assert.Equal(t, "set", name)
	assert.Equal(t, "title  Весенние горы", rest)

	name, rest = splitCommand("")
	assert.Empty(t, name)
	assert.Empty(t, rest)
}
