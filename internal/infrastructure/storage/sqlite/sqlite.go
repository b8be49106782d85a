package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	// Драйвер sqlite3 для database/sql
	_ "github.com/mattn/go-sqlite3"

	"gallery/internal/infrastructure/migration"
)

type Storage struct {
	db *sql.DB
}

// New применяет миграции и открывает базу по пути path
func New(ctx context.Context, path string) (*Storage, error) {
	mg := migration.NewMigration(path, migration.DefaultEngine)
	if err := mg.Up(); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_journal_mode=WAL&_busy_timeout=5000", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Storage{db: db}, nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}

func (s *Storage) DB() *sql.DB {
	return s.db
}

// Ping проверяет соединение с базой
func (s *Storage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
