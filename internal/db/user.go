package db

import (
	"context"
	"fmt"

	"github.com/ischultz503/Survivor/internal/ctxutil"
	"github.com/ischultz503/Survivor/internal/models"
)

// CreateUser вставляет пользователя; дубликат логина — ErrConflict.
func CreateUser(ctx context.Context, q Querier, username, passwordHash string, isAdmin bool) (*models.User, error) {
	ctx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()

	u := models.User{Username: username, PasswordHash: passwordHash, IsAdmin: isAdmin}
	err := q.QueryRowContext(ctx, `
		INSERT INTO users (username, password_hash, is_admin)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`, username, passwordHash, isAdmin).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert user %q: %w", username, mapErr(err))
	}
	return &u, nil
}

// EnsureUser создаёт пользователя, если логина ещё нет; существующий не трогает.
func EnsureUser(ctx context.Context, q Querier, username, passwordHash string, isAdmin bool) error {
	ctx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()

	_, err := q.ExecContext(ctx, `
		INSERT INTO users (username, password_hash, is_admin)
		VALUES ($1, $2, $3)
		ON CONFLICT (username) DO NOTHING`, username, passwordHash, isAdmin)
	return err
}

func GetUserByUsername(ctx context.Context, q Querier, username string) (*models.User, error) {
	ctx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()

	var u models.User
	err := q.QueryRowContext(ctx, `
		SELECT id, username, password_hash, is_admin, created_at
		FROM users WHERE username = $1`, username).
		Scan(&u.ID, &u.Username, &u.PasswordHash, &u.IsAdmin, &u.CreatedAt)
	if err != nil {
		return nil, mapErr(err)
	}
	return &u, nil
}

// LinkUserTeam привязывает пользователя к команде; повторная привязка — no-op.
func LinkUserTeam(ctx context.Context, q Querier, userID, teamID int64) error {
	ctx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()

	_, err := q.ExecContext(ctx, `
		INSERT INTO user_teams (user_id, team_id) VALUES ($1, $2)
		ON CONFLICT (user_id, team_id) DO NOTHING`, userID, teamID)
	return err
}

func ListTeamsForUser(ctx context.Context, q Querier, userID int64) ([]models.UserTeam, error) {
	ctx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()

	rows, err := q.QueryContext(ctx, `
		SELECT t.id, t.name, l.name, s.label
		FROM user_teams ut
		JOIN teams t   ON ut.team_id = t.id
		JOIN leagues l ON t.league_id = l.id
		JOIN seasons s ON t.season_id = s.id
		WHERE ut.user_id = $1
		ORDER BY s.label DESC, l.name, t.name`, userID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	out := []models.UserTeam{}
	for rows.Next() {
		var ut models.UserTeam
		if err := rows.Scan(&ut.TeamID, &ut.TeamName, &ut.LeagueName, &ut.SeasonLabel); err != nil {
			return nil, err
		}
		out = append(out, ut)
	}
	return out, rows.Err()
}
