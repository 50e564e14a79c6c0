// Package service — операции над лигами, счётом и пользователями поверх internal/db.
// Ошибки хранилища переводятся в ErrNotFound/ErrConflict; ошибки ввода — ErrInvalid.
package service

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/ischultz503/Survivor/internal/cache"
	"github.com/ischultz503/Survivor/internal/db"
	"go.uber.org/zap"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrInvalid            = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

const (
	MinWeek = 1
	MaxWeek = 30
)

// Selection — явный выбор лиги/сезона/команды вместо состояния сессии.
type Selection struct {
	League string `json:"league"`
	Season string `json:"season"`
	Team   string `json:"team"`
}

type Service struct {
	db    *sql.DB
	cache *cache.Loader
	log   *zap.Logger
}

// New: loader может быть nil — тогда дашборды всегда считаются из базы.
func New(database *sql.DB, loader *cache.Loader, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{db: database, cache: loader, log: log}
}

// translate переводит ошибки пакета db в ошибки сервиса; what — что именно не найдено/занято.
func translate(err error, what string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, db.ErrNotFound):
		return fmt.Errorf("%w: %s", ErrNotFound, what)
	case errors.Is(err, db.ErrConflict):
		return fmt.Errorf("%w: %s", ErrConflict, what)
	default:
		return err
	}
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}
