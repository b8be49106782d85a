package painting

import (
	"github.com/spf13/cobra"

	"gallery/cmd/client/cmd/cmdutil"
	"gallery/internal/app/client/render"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Список картин",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := cmdutil.FromCmd(cmd)
			if err != nil {
				return err
			}

			if err := env.App.FetchPaintings(cmd.Context()); err != nil {
				return err
			}

			return render.Paintings(env.Out(), env.App.Paintings(), env.Output)
		},
	}
}
