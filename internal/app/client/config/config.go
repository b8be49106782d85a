package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"

	sharedcfg "gallery/internal/config"
)

const (
	// DefaultBaseURL - адрес бэкенда каталога, вшитый в клиент
	DefaultBaseURL     = "http://127.0.0.1:8000"
	defaultLogLevel    = "info"
	defaultEnv         = sharedcfg.EnvLocal
	defaultHTTPTimeout = 0 // без таймаута
	defaultOutput      = "text"
)

type Config struct {
	Env         string        `mapstructure:"app_env"`
	BaseURL     string        `mapstructure:"gallery_base_url"`
	LogLevel    string        `mapstructure:"log_level"`
	HTTPTimeout time.Duration `mapstructure:"-"`
	Output      string        `mapstructure:"output"`
}

// Load собирает конфигурацию клиента из .env, переменных окружения и
// (если задан через v.SetConfigFile/AddConfigPath) YAML-файла.
func Load(v *viper.Viper) (*Config, error) {
	if v == nil {
		v = viper.New()
	}

	if _, err := sharedcfg.LoadEnvFile(); err != nil {
		return nil, fmt.Errorf("ошибка загрузки .env файла: %w", err)
	}

	v.AutomaticEnv()

	// Устанавливаем значения по умолчанию
	v.SetDefault("APP_ENV", defaultEnv)
	v.SetDefault("GALLERY_BASE_URL", DefaultBaseURL)
	v.SetDefault("LOG_LEVEL", defaultLogLevel)
	v.SetDefault("HTTP_TIMEOUT_SECONDS", defaultHTTPTimeout)
	v.SetDefault("OUTPUT", defaultOutput)

	cfg := &Config{
		Env:         v.GetString("APP_ENV"),
		BaseURL:     strings.TrimRight(v.GetString("GALLERY_BASE_URL"), "/"),
		LogLevel:    v.GetString("LOG_LEVEL"),
		HTTPTimeout: time.Duration(v.GetInt("HTTP_TIMEOUT_SECONDS")) * time.Second,
		Output:      v.GetString("OUTPUT"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("ошибка конфигурации: %w", err)
	}

	return cfg, nil
}

// Default возвращает конфигурацию без чтения окружения
func Default() *Config {
	return &Config{
		Env:         defaultEnv,
		BaseURL:     DefaultBaseURL,
		LogLevel:    defaultLogLevel,
		HTTPTimeout: defaultHTTPTimeout * time.Second,
		Output:      defaultOutput,
	}
}

func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("gallery_base_url не может быть пустым")
	}

	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("gallery_base_url: %w", err)
	}
	if !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("gallery_base_url должен быть абсолютным URL: %s", c.BaseURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("gallery_base_url: неподдерживаемая схема %s", u.Scheme)
	}

	if !sharedcfg.IsKnownEnv(c.Env) {
		return fmt.Errorf("неизвестное окружение: %s", c.Env)
	}

	if c.HTTPTimeout < 0 {
		return fmt.Errorf("http_timeout_seconds не может быть отрицательным")
	}

	switch c.Output {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("неподдерживаемый формат вывода: %s", c.Output)
	}

	return nil
}

// IsProd проверяет, prod ли окружение
func (c *Config) IsProd() bool {
	return c.Env == sharedcfg.EnvProd
}

// IsLocal проверяет, local ли окружение
func (c *Config) IsLocal() bool {
	return c.Env == sharedcfg.EnvLocal || c.Env == ""
}
