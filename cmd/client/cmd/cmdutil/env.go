// Package cmdutil хранит общее окружение команд клиента
package cmdutil

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"

	"gallery/internal/app/client"
	"gallery/internal/app/client/ui"
)

type envKey struct{}

// Env - то, что корневая команда готовит для подкоманд
type Env struct {
	App     *client.App
	Console *ui.Console
	Log     *slog.Logger
	Output  string
}

// Out возвращает приемник вывода команды
func (e *Env) Out() io.Writer {
	return e.Console.Out()
}

// WithEnv кладет окружение в контекст команды
func WithEnv(ctx context.Context, env *Env) context.Context {
	return context.WithValue(ctx, envKey{}, env)
}

// FromCmd достает окружение из контекста команды
func FromCmd(cmd *cobra.Command) (*Env, error) {
	ctx := cmd.Context()
	if ctx == nil {
		return nil, fmt.Errorf("приложение не инициализировано")
	}
	env, ok := ctx.Value(envKey{}).(*Env)
	if !ok || env == nil {
		return nil, fmt.Errorf("приложение не инициализировано")
	}
	return env, nil
}

// ParseID разбирает идентификатор картины из аргумента
func ParseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("некорректный ID картины: %s", arg)
	}
	return id, nil
}
