package painting

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gallery/internal/app/client"
	"gallery/internal/domain/painting"
)

// formFlags - поля формы, задаваемые флагами
type formFlags struct {
	title        string
	artist       string
	dynasty      string
	category     string
	description  string
	metadata     string
	metadataFile string
}

func (f *formFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.title, "title", "", "название картины")
	cmd.Flags().StringVar(&f.artist, "artist", "", "художник")
	cmd.Flags().StringVar(&f.dynasty, "dynasty", "", "династия")
	cmd.Flags().StringVar(&f.category, "category", "", "категория")
	cmd.Flags().StringVar(&f.description, "description", "", "описание")
	cmd.Flags().StringVar(&f.metadata, "metadata", "", "метаданные в формате JSON")
	cmd.Flags().StringVar(&f.metadataFile, "metadata-file", "", "файл с метаданными в формате JSON")
	cmd.MarkFlagsMutuallyExclusive("metadata", "metadata-file")
}

// apply переносит в черновик только явно заданные флаги
func (f *formFlags) apply(cmd *cobra.Command, app *client.App) error {
	fields := []struct {
		flag  string
		field painting.Field
		value string
	}{
		{"title", painting.FieldTitle, f.title},
		{"artist", painting.FieldArtist, f.artist},
		{"dynasty", painting.FieldDynasty, f.dynasty},
		{"category", painting.FieldCategory, f.category},
		{"description", painting.FieldDescription, f.description},
	}

	for _, fl := range fields {
		if !cmd.Flags().Changed(fl.flag) {
			continue
		}
		if err := app.SetField(fl.field, fl.value); err != nil {
			return err
		}
	}

	switch {
	case cmd.Flags().Changed("metadata"):
		app.SetMetadataText(f.metadata)
	case cmd.Flags().Changed("metadata-file"):
		data, err := os.ReadFile(f.metadataFile)
		if err != nil {
			return fmt.Errorf("ошибка чтения файла метаданных: %w", err)
		}
		app.SetMetadataText(string(data))
	}

	return nil
}
