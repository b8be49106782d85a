package painting

import (
	"github.com/spf13/cobra"

	"gallery/cmd/client/cmd/cmdutil"
)

func newCreateCmd() *cobra.Command {
	form := &formFlags{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Добавить картину",
		Long: `Создает новую запись каталога.

Примеры:
  gallery painting create --title "Весенние горы" --artist "Ма Юань" \
      --dynasty "Сун" --category "Пейзаж" --metadata '{"size":"50x80"}'
  gallery painting create --title "..." --metadata-file meta.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := cmdutil.FromCmd(cmd)
			if err != nil {
				return err
			}

			env.App.ResetForm()
			if err := form.apply(cmd, env.App); err != nil {
				return err
			}

			return env.App.SavePainting(cmd.Context())
		},
	}

	form.register(cmd)

	return cmd
}
