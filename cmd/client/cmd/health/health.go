// Package health - проверка доступности сервера
package health

import (
	"fmt"

	"github.com/spf13/cobra"

	"gallery/cmd/client/cmd/cmdutil"
)

// NewCmd возвращает команду health
func NewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Проверить соединение с сервером",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := cmdutil.FromCmd(cmd)
			if err != nil {
				return err
			}

			if err := env.App.CheckConnection(cmd.Context()); err != nil {
				return fmt.Errorf("сервер недоступен: %w", err)
			}

			env.Console.Success("Соединение с сервером установлено")
			return nil
		},
	}
}
