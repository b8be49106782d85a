// Package config содержит общие для клиента и stub-сервера настройки окружения.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

// LoadEnvFile загружает первый найденный .env файл из списка путей.
// Отсутствие файла не ошибка: переменные могут прийти из окружения.
func LoadEnvFile(paths ...string) (string, error) {
	if len(paths) == 0 {
		paths = []string{".env", "../.env"}
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return path, err
		}
		return path, nil
	}

	return "", nil
}

// IsKnownEnv проверяет название окружения
func IsKnownEnv(env string) bool {
	switch env {
	case EnvLocal, EnvDev, EnvProd:
		return true
	}
	return false
}
