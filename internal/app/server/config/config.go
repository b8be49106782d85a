package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	sharedcfg "gallery/internal/config"
)

const (
	defaultAddress   = "127.0.0.1:8000"
	defaultDBPath    = "gallery.db"
	defaultUploadDir = "uploads"
	defaultLogLevel  = "info"
)

type Config struct {
	Env    string
	DB     db
	Server server
	Logger logger
}

type db struct {
	Path string `env:"STUB_DB_PATH"`
}

type server struct {
	Address   string `env:"STUB_ADDRESS"`
	UploadDir string `env:"STUB_UPLOAD_DIR"`
}

type logger struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load читает конфигурацию тестового сервера из .env и окружения
func Load() (*Config, error) {
	if _, err := sharedcfg.LoadEnvFile(); err != nil {
		return nil, fmt.Errorf("ошибка загрузки .env файла: %w", err)
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("APP_ENV", sharedcfg.EnvLocal)
	v.SetDefault("STUB_ADDRESS", defaultAddress)
	v.SetDefault("STUB_DB_PATH", defaultDBPath)
	v.SetDefault("STUB_UPLOAD_DIR", defaultUploadDir)
	v.SetDefault("LOG_LEVEL", defaultLogLevel)

	cfg := &Config{
		Env:    v.GetString("APP_ENV"),
		DB:     db{Path: v.GetString("STUB_DB_PATH")},
		Server: server{Address: v.GetString("STUB_ADDRESS"), UploadDir: v.GetString("STUB_UPLOAD_DIR")},
		Logger: logger{LogLevel: v.GetString("LOG_LEVEL")},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.Server.Address) == "" {
		return fmt.Errorf("STUB_ADDRESS не может быть пустым")
	}
	if strings.TrimSpace(c.DB.Path) == "" {
		return fmt.Errorf("STUB_DB_PATH не может быть пустым")
	}
	if strings.TrimSpace(c.Server.UploadDir) == "" {
		return fmt.Errorf("STUB_UPLOAD_DIR не может быть пустым")
	}
	if !sharedcfg.IsKnownEnv(c.Env) {
		return fmt.Errorf("неизвестное окружение: %s", c.Env)
	}
	return nil
}

// EnsureDirs создает каталоги для базы и загруженных файлов
func (c *Config) EnsureDirs() error {
	if dir := filepath.Dir(c.DB.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create db dir: %w", err)
		}
	}
	for _, sub := range []string{"images", "json"} {
		if err := os.MkdirAll(filepath.Join(c.Server.UploadDir, sub), 0o755); err != nil {
			return fmt.Errorf("create upload dir: %w", err)
		}
	}
	return nil
}
