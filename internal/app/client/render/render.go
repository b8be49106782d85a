// Package render печатает состояние клиента в текстовом, JSON или YAML виде.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"gallery/internal/domain/painting"
)

const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// paintingView - запись для JSON/YAML вывода с разобранными метаданными
type paintingView struct {
	painting.Painting `yaml:",inline"`
	Meta              interface{} `json:"-" yaml:"painting_metadata"`
}

func viewOf(p painting.Painting) paintingView {
	v := paintingView{Painting: p}
	if p.HasMetadata() {
		_ = json.Unmarshal(p.Metadata, &v.Meta)
	}
	return v
}

// Paintings печатает список картин
func Paintings(w io.Writer, paintings []painting.Painting, format string) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, paintings)
	case FormatYAML:
		views := make([]paintingView, 0, len(paintings))
		for _, p := range paintings {
			views = append(views, viewOf(p))
		}
		return writeYAML(w, views)
	}

	if len(paintings) == 0 {
		_, err := fmt.Fprintln(w, "Картины не найдены")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID\tНазвание\tХудожник\tДинастия\tКатегория\t\n")
	fmt.Fprintf(tw, "---\t---\t---\t---\t---\t\n")
	for _, p := range paintings {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t\n",
			p.ID,
			truncate(p.Title, 30),
			truncate(p.Artist, 20),
			p.Dynasty,
			p.Category,
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "\nВсего картин: %d\n", len(paintings))
	return err
}

// Painting печатает одну картину
func Painting(w io.Writer, p painting.Painting, format string) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, p)
	case FormatYAML:
		return writeYAML(w, viewOf(p))
	}

	fmt.Fprintf(w, "ID:          %d\n", p.ID)
	fmt.Fprintf(w, "Название:    %s\n", p.Title)
	fmt.Fprintf(w, "Художник:    %s\n", p.Artist)
	fmt.Fprintf(w, "Династия:    %s\n", p.Dynasty)
	fmt.Fprintf(w, "Категория:   %s\n", p.Category)
	if p.Description != "" {
		fmt.Fprintf(w, "Описание:    %s\n", p.Description)
	}
	if p.ImagePath != "" {
		fmt.Fprintf(w, "Изображение: %s\n", p.ImagePath)
	}
	if p.CreatedAt != nil {
		fmt.Fprintf(w, "Создана:     %s\n", p.CreatedAt.Format("2006-01-02 15:04:05"))
	}
	if p.HasMetadata() {
		fmt.Fprintln(w, "Метаданные:")
		fmt.Fprintln(w, painting.FormatMetadata(p.Metadata))
	}

	return nil
}

// StatGroup - статистика по одному измерению
type StatGroup struct {
	Dimension painting.Dimension
	Entries   []painting.StatEntry
}

var dimensionTitles = map[painting.Dimension]string{
	painting.DimensionDynasty:  "Картины по династиям",
	painting.DimensionCategory: "Картины по категориям",
	painting.DimensionArtist:   "Картины по художникам",
	painting.DimensionTimeline: "Картины по датам добавления",
}

// Stats печатает таблицы статистики. В JSON и YAML группы ключуются измерением.
func Stats(w io.Writer, groups []StatGroup, format string) error {
	switch format {
	case FormatJSON, FormatYAML:
		byDim := make(map[string][]painting.StatEntry, len(groups))
		for _, g := range groups {
			entries := g.Entries
			if entries == nil {
				entries = []painting.StatEntry{}
			}
			byDim[string(g.Dimension)] = entries
		}
		if format == FormatJSON {
			return writeJSON(w, byDim)
		}
		return writeYAML(w, byDim)
	}

	for i, g := range groups {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if err := statsTable(w, g); err != nil {
			return err
		}
	}
	return nil
}

func statsTable(w io.Writer, g StatGroup) error {
	title, ok := dimensionTitles[g.Dimension]
	if !ok {
		title = string(g.Dimension)
	}

	fmt.Fprintf(w, "=== %s ===\n", title)
	if len(g.Entries) == 0 {
		_, err := fmt.Fprintln(w, "(нет данных)")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, e := range g.Entries {
		label := e.Label
		if label == "" {
			label = "(не указано)"
		}
		fmt.Fprintf(tw, "%s\t%d\t\n", label, e.Count)
	}
	return tw.Flush()
}

// Draft печатает состояние формы
func Draft(w io.Writer, d painting.Draft, session painting.EditSession, files painting.FilePair) error {
	if id, ok := session.ID(); ok {
		fmt.Fprintf(w, "Режим: редактирование картины %d\n", id)
	} else {
		fmt.Fprintln(w, "Режим: новая картина")
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, f := range painting.Fields {
		if f == painting.FieldMetadata {
			continue
		}
		fmt.Fprintf(tw, "%s:\t%s\t\n", f, d.Get(f))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	meta := d.Get(painting.FieldMetadata)
	if meta == "" {
		meta = "(пусто)"
	}
	fmt.Fprintf(w, "%s:\n%s\n", painting.FieldMetadata, meta)

	fmt.Fprintf(w, "Изображение: %s\n", fileName(files.Image))
	_, err := fmt.Fprintf(w, "JSON-файл:   %s\n", fileName(files.JSON))
	return err
}

func fileName(f *painting.File) string {
	if f == nil {
		return "(не выбран)"
	}
	return f.Path
}

func writeJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func writeYAML(w io.Writer, v interface{}) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		return err
	}
	return encoder.Close()
}

func truncate(s string, length int) string {
	r := []rune(s)
	if len(r) <= length {
		return s
	}
	return string(r[:length-3]) + "..."
}
