package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/ischultz503/Survivor/internal/auth"
	"github.com/ischultz503/Survivor/internal/db"
	"github.com/ischultz503/Survivor/internal/models"
	"github.com/ischultz503/Survivor/internal/scoring"
	"go.uber.org/zap"
)

func validWeek(week int) error {
	if week < MinWeek || week > MaxWeek {
		return invalid("week must be between %d and %d", MinWeek, MaxWeek)
	}
	return nil
}

// UpsertPlayerEvent записывает значение события игрока за неделю (замена, не накопление).
func (s *Service) UpsertPlayerEvent(ctx context.Context, season string, week int, player, event string, value float64) error {
	player, event = strings.TrimSpace(player), strings.TrimSpace(event)
	if err := validWeek(week); err != nil {
		return err
	}
	if player == "" || event == "" {
		return invalid("player and event are required")
	}

	se, err := db.GetSeasonByLabel(ctx, s.db, season)
	if err != nil {
		return translate(err, "season not found")
	}
	err = db.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		if err := db.UpsertPlayerEvent(ctx, tx, models.PlayerEventScore{
			SeasonID: se.ID, WeekNumber: week, PlayerName: player, EventName: event, Value: value,
		}); err != nil {
			return err
		}
		return db.BumpRevision(ctx, tx, se.ID)
	})
	if err != nil {
		return err
	}
	s.log.Info("player event saved",
		zap.String("season", season), zap.Int("week", week),
		zap.String("player", player), zap.String("event", event), zap.Float64("value", value))
	return nil
}

// UpsertWeeklyBonus записывает бонусные очки команды за неделю.
func (s *Service) UpsertWeeklyBonus(ctx context.Context, sel Selection, week int, points float64) error {
	if err := validWeek(week); err != nil {
		return err
	}
	team, err := db.FindTeam(ctx, s.db, sel.League, sel.Season, sel.Team)
	if err != nil {
		return translate(err, "team not found")
	}
	err = db.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		if err := db.UpsertWeeklyBonus(ctx, tx, models.WeeklyQuestionScore{TeamID: team.ID, WeekNumber: week, Points: points}); err != nil {
			return err
		}
		return db.BumpRevision(ctx, tx, team.SeasonID)
	})
	if err != nil {
		return err
	}
	s.log.Info("weekly bonus saved", zap.Int64("team_id", team.ID), zap.Int("week", week), zap.Float64("points", points))
	return nil
}

// UpsertPointValue правит рубрику сезона. Пустая категория выводится из названия события.
func (s *Service) UpsertPointValue(ctx context.Context, season, event string, points float64, category string) error {
	event = strings.TrimSpace(event)
	if event == "" {
		return invalid("event is required")
	}
	cat := scoring.ClassifyEvent(event)
	if strings.TrimSpace(category) != "" {
		c, err := models.ParseEventCategory(category)
		if err != nil {
			return invalid("%v", err)
		}
		cat = c
	}

	se, err := db.GetSeasonByLabel(ctx, s.db, season)
	if err != nil {
		return translate(err, "season not found")
	}
	return db.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		if err := db.UpsertPointValue(ctx, tx, models.PointValue{SeasonID: se.ID, EventName: event, Points: points, Category: cat}); err != nil {
			return err
		}
		return db.BumpRevision(ctx, tx, se.ID)
	})
}

// RegisterUser создаёт обычного (не админ) пользователя.
func (s *Service) RegisterUser(ctx context.Context, username, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, invalid("username and password are required")
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}
	u, err := db.CreateUser(ctx, s.db, username, hash, false)
	if err != nil {
		return nil, translate(err, "username already exists")
	}
	return u, nil
}

// AuthenticateUser не сообщает, что именно не совпало: логин или пароль.
func (s *Service) AuthenticateUser(ctx context.Context, username, password string) (*models.User, error) {
	u, err := db.GetUserByUsername(ctx, s.db, strings.TrimSpace(username))
	if errors.Is(err, db.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	ok, err := auth.VerifyPassword(password, u.PasswordHash)
	if err != nil {
		s.log.Warn("stored password hash is malformed", zap.String("username", u.Username), zap.Error(err))
		return nil, ErrInvalidCredentials
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// AssignTeam привязывает пользователя к команде; повторный вызов ничего не меняет.
func (s *Service) AssignTeam(ctx context.Context, username string, sel Selection) error {
	u, err := db.GetUserByUsername(ctx, s.db, strings.TrimSpace(username))
	if err != nil {
		return translate(err, "user not found")
	}
	team, err := db.FindTeam(ctx, s.db, sel.League, sel.Season, sel.Team)
	if err != nil {
		return translate(err, "team not found")
	}
	return db.LinkUserTeam(ctx, s.db, u.ID, team.ID)
}
