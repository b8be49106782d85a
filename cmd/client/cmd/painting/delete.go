package painting

import (
	"github.com/spf13/cobra"

	"gallery/cmd/client/cmd/cmdutil"
)

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Удалить картину",
		Long: `Удаляет картину после подтверждения.
Без терминала подтверждение возможно только флагом --yes.`,
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

			// отказ от подтверждения не считается ошибкой
			_, err = env.App.DeletePainting(cmd.Context(), id)
			return err
		},
	}
}
