// Package stats - команда просмотра статистики каталога
package stats

import (
	"fmt"

	"github.com/spf13/cobra"

	"gallery/cmd/client/cmd/cmdutil"
	"gallery/internal/app/client/render"
	"gallery/internal/domain/painting"
)

// NewCmd возвращает команду stats
func NewCmd() *cobra.Command {
	var by []string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Статистика каталога",
		Long: `Без флагов показывает количество картин по династиям и категориям.
Флаг --by позволяет выбрать измерения: dynasty, category, artist, timeline.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := cmdutil.FromCmd(cmd)
			if err != nil {
				return err
			}

			if len(by) == 0 {
				// ошибки каждой сводки только логируются
				env.App.FetchStats(cmd.Context())
				return render.Stats(env.Out(), []render.StatGroup{
					{Dimension: painting.DimensionDynasty, Entries: env.App.DynastyStats()},
					{Dimension: painting.DimensionCategory, Entries: env.App.CategoryStats()},
				}, env.Output)
			}

			groups := make([]render.StatGroup, 0, len(by))
			for _, name := range by {
				dim := painting.Dimension(name)
				if !dim.Valid() {
					return fmt.Errorf("неизвестное измерение статистики: %s", name)
				}

				entries, err := env.App.Stats(cmd.Context(), dim)
				if err != nil {
					return fmt.Errorf("не удалось получить статистику %s: %w", dim, err)
				}
				groups = append(groups, render.StatGroup{Dimension: dim, Entries: entries})
			}

			return render.Stats(env.Out(), groups, env.Output)
		},
	}

	cmd.Flags().StringSliceVar(&by, "by", nil, "измерения: dynasty, category, artist, timeline")

	return cmd
}
