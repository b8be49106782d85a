package logger

import (
	"io"
	"os"

	"golang.org/x/exp/slog"

	"gallery/internal/config"
	"gallery/internal/utils/logger/handlers/slogpretty"
)

// New создает логгер под окружение:
// local - цветной вывод для человека, dev - JSON с отладкой, prod - JSON от INFO.
func New(env string) *slog.Logger {
	return NewWithWriter(env, os.Stderr)
}

// NewWithWriter - то же, что New, но с заданным приемником
func NewWithWriter(env string, w io.Writer) *slog.Logger {
	switch env {
	case config.EnvDev:
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case config.EnvProd:
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return setupPrettySlogTo(w, slog.LevelDebug)
	}
}

// WithLevel пересоздает логгер с минимальным уровнем из конфигурации
func WithLevel(env, level string, w io.Writer) *slog.Logger {
	lvl := ParseLevel(level)
	switch env {
	case config.EnvDev, config.EnvProd:
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl}))
	default:
		return setupPrettySlogTo(w, lvl)
	}
}

// ParseLevel разбирает уровень логирования, по умолчанию INFO
func ParseLevel(level string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// Discard возвращает логгер, который ничего не пишет (для тестов)
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func setupPrettySlog() *slog.Logger {
	return setupPrettySlogTo(os.Stdout, slog.LevelDebug)
}

func setupPrettySlogTo(w io.Writer, level slog.Level) *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: level,
		},
	}

	return slog.New(opts.NewPrettyHandler(w))
}
