// Package painting - команды работы с записями каталога
package painting

import (
	"github.com/spf13/cobra"
)

// NewCmd возвращает группу команд painting
func NewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "painting",
		Aliases: []string{"paintings", "p"},
		Short:   "Управление картинами каталога",
		Long: `Команды для просмотра, создания, редактирования и удаления картин.

После каждого успешного изменения клиент заново запрашивает список картин
и статистику по династиям и категориям.`,
	}

	cmd.AddCommand(
		newListCmd(),
		newShowCmd(),
		newCreateCmd(),
		newUpdateCmd(),
		newDeleteCmd(),
	)

	return cmd
}
