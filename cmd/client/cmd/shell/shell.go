// Package shell - интерактивный режим клиента
package shell

import (
	"github.com/spf13/cobra"

	"gallery/cmd/client/cmd/cmdutil"
)

// NewCmd возвращает команду shell
func NewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Интерактивный режим",
		Long: `Интерактивный режим держит в памяти список картин, статистику,
форму редактирования и выбранные файлы, как одна открытая страница каталога.
Состояние теряется при выходе.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := cmdutil.FromCmd(cmd)
			if err != nil {
				return err
			}

			return NewSession(env.App, env.Console, env.Output).Run(cmd.Context())
		},
	}
}
