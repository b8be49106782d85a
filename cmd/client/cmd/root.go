package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/exp/slog"

	"gallery/cmd/client/cmd/cmdutil"
	"gallery/cmd/client/cmd/health"
	"gallery/cmd/client/cmd/painting"
	"gallery/cmd/client/cmd/shell"
	"gallery/cmd/client/cmd/stats"
	"gallery/cmd/client/cmd/upload"
	"gallery/internal/app/client"
	"gallery/internal/app/client/config"
	"gallery/internal/app/client/ui"
	"gallery/internal/utils/logger"
)

type rootOptions struct {
	cfgFile   string
	debug     bool
	output    string
	serverURL string
	assumeYes bool
}

// NewRootCmd собирает дерево команд клиента
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Gallery - клиент каталога картин",
		Long: `Gallery - консольный клиент каталога картин.

Позволяет просматривать, создавать, редактировать и удалять записи,
смотреть статистику по династиям и категориям и загружать пары файлов
(изображение + JSON с метаданными). Все данные хранятся на сервере.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setupApp(cmd, opts)
		},
		SilenceUsage: true,
	}

	// Глобальные флаги
	cmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "конфигурационный файл")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "включить отладочный режим")
	cmd.PersistentFlags().StringVarP(&opts.output, "output", "o", "", "формат вывода: text, json, yaml")
	cmd.PersistentFlags().StringVar(&opts.serverURL, "server", "", "URL сервера каталога")
	cmd.PersistentFlags().BoolVarP(&opts.assumeYes, "yes", "y", false, "отвечать \"да\" на все подтверждения")

	cmd.AddCommand(
		painting.NewCmd(),
		stats.NewCmd(),
		upload.NewCmd(),
		health.NewCmd(),
		shell.NewCmd(),
	)

	return cmd
}

func setupApp(cmd *cobra.Command, opts *rootOptions) error {
	// Загружаем конфигурацию
	cfg, err := loadConfig(opts.cfgFile)
	if err != nil {
		return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}

	// Переопределяем настройки из флагов командной строки
	if opts.serverURL != "" {
		cfg.BaseURL = strings.TrimRight(opts.serverURL, "/")
	}
	if opts.output != "" {
		cfg.Output = opts.output
	}
	if opts.debug {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := logger.WithLevel(cfg.Env, cfg.LogLevel, os.Stderr)
	console := ui.NewConsole(opts.assumeYes)

	app, err := client.New(cfg, log, console, console)
	if err != nil {
		return fmt.Errorf("ошибка инициализации приложения: %w", err)
	}

	log.Debug("клиент инициализирован", slog.String("base_url", cfg.BaseURL), slog.String("env", cfg.Env))

	cmd.SetContext(cmdutil.WithEnv(cmd.Context(), &cmdutil.Env{
		App:     app,
		Console: console,
		Log:     log,
		Output:  cfg.Output,
	}))

	return nil
}

func loadConfig(cfgFile string) (*config.Config, error) {
	v := viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		// Ищем конфиг в стандартных местах
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".gallery"))
		}
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
		// Конфиг не найден, используем значения по умолчанию
	}

	return config.Load(v)
}
