package db

import (
	"context"
	"fmt"

	"github.com/ischultz503/Survivor/internal/ctxutil"
	"github.com/ischultz503/Survivor/internal/models"
)

// EnsureLeague возвращает id лиги, создавая её при необходимости.
func EnsureLeague(ctx context.Context, q Querier, name string) (int64, error) {
	ctx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()

	if _, err := q.ExecContext(ctx, `INSERT INTO leagues (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`, name); err != nil {
		return 0, fmt.Errorf("insert league %q: %w", name, err)
	}
	// id перечитываем: RETURNING при ON CONFLICT DO NOTHING пуст
	var id int64
	if err := q.QueryRowContext(ctx, `SELECT id FROM leagues WHERE name = $1`, name).Scan(&id); err != nil {
		return 0, mapErr(err)
	}
	return id, nil
}

// EnsureSeason возвращает id сезона, создавая его при необходимости.
func EnsureSeason(ctx context.Context, q Querier, label string) (int64, error) {
	ctx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()

	if _, err := q.ExecContext(ctx, `INSERT INTO seasons (label) VALUES ($1) ON CONFLICT (label) DO NOTHING`, label); err != nil {
		return 0, fmt.Errorf("insert season %q: %w", label, err)
	}
	var id int64
	if err := q.QueryRowContext(ctx, `SELECT id FROM seasons WHERE label = $1`, label).Scan(&id); err != nil {
		return 0, mapErr(err)
	}
	return id, nil
}

func GetSeasonByLabel(ctx context.Context, q Querier, label string) (*models.Season, error) {
	ctx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()

	var s models.Season
	if err := q.QueryRowContext(ctx, `SELECT id, label FROM seasons WHERE label = $1`, label).Scan(&s.ID, &s.Label); err != nil {
		return nil, mapErr(err)
	}
	return &s, nil
}

// CreateTeam вставляет команду; дубликат (лига, сезон, имя) — ErrConflict.
func CreateTeam(ctx context.Context, q Querier, leagueID, seasonID int64, name string) (int64, error) {
	ctx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()

	var id int64
	err := q.QueryRowContext(ctx, `
		INSERT INTO teams (league_id, season_id, name) VALUES ($1, $2, $3)
		RETURNING id`, leagueID, seasonID, name).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert team %q: %w", name, mapErr(err))
	}
	return id, nil
}

func AddRosterPlayer(ctx context.Context, q Querier, teamID int64, player string) error {
	ctx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()

	_, err := q.ExecContext(ctx, `
		INSERT INTO roster_players (team_id, player_name) VALUES ($1, $2)
		ON CONFLICT (team_id, player_name) DO NOTHING`, teamID, player)
	if err != nil {
		return fmt.Errorf("insert roster player %q: %w", player, err)
	}
	return nil
}

func CountTeams(ctx context.Context, q Querier) (int, error) {
	ctx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()

	var n int
	err := q.QueryRowContext(ctx, `SELECT COUNT(*) FROM teams`).Scan(&n)
	return n, err
}

const teamSelect = `
	SELECT t.id, t.league_id, t.season_id, t.name, l.name, s.label
	FROM teams t
	JOIN leagues l ON t.league_id = l.id
	JOIN seasons s ON t.season_id = s.id`

func GetTeamByID(ctx context.Context, q Querier, id int64) (*models.Team, error) {
	ctx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()

	var t models.Team
	err := q.QueryRowContext(ctx, teamSelect+` WHERE t.id = $1`, id).
		Scan(&t.ID, &t.LeagueID, &t.SeasonID, &t.Name, &t.LeagueName, &t.SeasonLabel)
	if err != nil {
		return nil, mapErr(err)
	}
	return &t, nil
}

// FindTeam ищет команду по (лига, сезон, имя).
func FindTeam(ctx context.Context, q Querier, league, season, team string) (*models.Team, error) {
	ctx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()

	var t models.Team
	err := q.QueryRowContext(ctx, teamSelect+` WHERE l.name = $1 AND s.label = $2 AND t.name = $3`, league, season, team).
		Scan(&t.ID, &t.LeagueID, &t.SeasonID, &t.Name, &t.LeagueName, &t.SeasonLabel)
	if err != nil {
		return nil, mapErr(err)
	}
	return &t, nil
}

func ListTeams(ctx context.Context, q Querier, league, season string) ([]models.Team, error) {
	return queryTeams(ctx, q, teamSelect+` WHERE l.name = $1 AND s.label = $2 ORDER BY t.name`, league, season)
}

func ListAllTeams(ctx context.Context, q Querier) ([]models.Team, error) {
	return queryTeams(ctx, q, teamSelect+` ORDER BY s.label DESC, l.name, t.name`)
}

func queryTeams(ctx context.Context, q Querier, query string, args ...any) ([]models.Team, error) {
	ctx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	out := []models.Team{}
	for rows.Next() {
		var t models.Team
		if err := rows.Scan(&t.ID, &t.LeagueID, &t.SeasonID, &t.Name, &t.LeagueName, &t.SeasonLabel); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func ListSeasons(ctx context.Context, q Querier) ([]string, error) {
	return queryStrings(ctx, q, `SELECT label FROM seasons ORDER BY label DESC`)
}

func ListLeagues(ctx context.Context, q Querier) ([]string, error) {
	return queryStrings(ctx, q, `SELECT name FROM leagues ORDER BY name`)
}

// ListSeasonsForLeague — сезоны, в которых у лиги есть команды.
func ListSeasonsForLeague(ctx context.Context, q Querier, league string) ([]string, error) {
	return queryStrings(ctx, q, `
		SELECT DISTINCT s.label
		FROM teams t
		JOIN leagues l ON t.league_id = l.id
		JOIN seasons s ON t.season_id = s.id
		WHERE l.name = $1
		ORDER BY s.label DESC`, league)
}

func ListRoster(ctx context.Context, q Querier, teamID int64) ([]string, error) {
	return queryStrings(ctx, q, `SELECT player_name FROM roster_players WHERE team_id = $1 ORDER BY player_name`, teamID)
}

// ListPlayersForSeason — игроки сезона: из событий и из составов команд.
func ListPlayersForSeason(ctx context.Context, q Querier, seasonID int64) ([]string, error) {
	return queryStrings(ctx, q, `
		SELECT player_name FROM player_event_scores WHERE season_id = $1
		UNION
		SELECT rp.player_name FROM roster_players rp
		JOIN teams t ON t.id = rp.team_id
		WHERE t.season_id = $1
		ORDER BY player_name`, seasonID)
}

func queryStrings(ctx context.Context, q Querier, query string, args ...any) ([]string, error) {
	ctx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	out := []string{}
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
