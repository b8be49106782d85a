package painting

import (
	"fmt"

	"github.com/spf13/cobra"

	"gallery/cmd/client/cmd/cmdutil"
	"gallery/internal/app/client/render"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "show <id>",
		Aliases: []string{"get"},
		Short:   "Показать картину",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := cmdutil.FromCmd(cmd)
			if err != nil {
				return err
			}

			id, err := cmdutil.ParseID(args[0])
			if err != nil {
				return err
			}

			p, err := env.App.GetPainting(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("не удалось получить картину %d: %w", id, err)
			}

			return render.Painting(env.Out(), *p, env.Output)
		},
	}
}
