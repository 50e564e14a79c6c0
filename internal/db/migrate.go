package db

import (
	"database/sql"
	"fmt"

	"github.com/ischultz503/Survivor/internal/db/migrations"
	"github.com/pressly/goose/v3"
)

// Migrate накатывает встроенные миграции. Повторный вызов безопасен: применённые версии пропускаются.
func Migrate(database *sql.DB) error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.Up(database, "."); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}
