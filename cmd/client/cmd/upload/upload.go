// Package upload - команда загрузки пары файлов
package upload

import (
	"github.com/spf13/cobra"

	"gallery/cmd/client/cmd/cmdutil"
)

// NewCmd возвращает команду upload
func NewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upload <image> <json>",
		Short: "Загрузить изображение и JSON с метаданными",
		Long: `Загружает пару файлов: изображение (jpg, jpeg, png, gif) и JSON с описанием.
Имена файлов без расширения должны совпадать, например cat.png и cat.json.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := cmdutil.FromCmd(cmd)
			if err != nil {
				return err
			}

			env.App.SelectImage(args[0])
			env.App.SelectJSON(args[1])

			return env.App.UploadFiles(cmd.Context())
		},
	}
}
