package painting

import (
	"github.com/spf13/cobra"

	"gallery/cmd/client/cmd/cmdutil"
)

func newUpdateCmd() *cobra.Command {
	form := &formFlags{}

	cmd := &cobra.Command{
		Use:     "update <id>",
		Aliases: []string{"edit"},
		Short:   "Изменить картину",
		Long: `Загружает картину в форму, заменяет поля, заданные флагами,
и отправляет запись целиком. Незаданные поля остаются прежними.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := cmdutil.FromCmd(cmd)
			if err != nil {
				return err
			}

			id, err := cmdutil.ParseID(args[0])
			if err != nil {
				return err
			}

			if err := env.App.EditPaintingByID(cmd.Context(), id); err != nil {
				return err
			}
			if err := form.apply(cmd, env.App); err != nil {
				return err
			}

			return env.App.SavePainting(cmd.Context())
		},
	}

	form.register(cmd)

	return cmd
}
