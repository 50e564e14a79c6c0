package db

import (
	"context"
	"fmt"

	"github.com/ischultz503/Survivor/internal/ctxutil"
	"github.com/ischultz503/Survivor/internal/models"
)

// UpsertPointValue задаёт очки события в рубрике сезона (insert-or-replace).
func UpsertPointValue(ctx context.Context, q Querier, pv models.PointValue) error {
	ctx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()

	if pv.Category == "" {
		pv.Category = models.CategoryScoring
	}
	_, err := q.ExecContext(ctx, `
		INSERT INTO point_values (season_id, event_name, points, category)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (season_id, event_name)
		DO UPDATE SET points = EXCLUDED.points, category = EXCLUDED.category`,
		pv.SeasonID, pv.EventName, pv.Points, string(pv.Category))
	if err != nil {
		return fmt.Errorf("upsert point value %q: %w", pv.EventName, err)
	}
	return nil
}

// UpsertPlayerEvent перезаписывает значение ячейки (сезон, неделя, игрок, событие) — без накопления.
func UpsertPlayerEvent(ctx context.Context, q Querier, s models.PlayerEventScore) error {
	ctx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()

	_, err := q.ExecContext(ctx, `
		INSERT INTO player_event_scores (season_id, week_number, player_name, event_name, value)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (season_id, week_number, player_name, event_name)
		DO UPDATE SET value = EXCLUDED.value`,
		s.SeasonID, s.WeekNumber, s.PlayerName, s.EventName, s.Value)
	if err != nil {
		return fmt.Errorf("upsert player event: %w", err)
	}
	return nil
}

// UpsertWeeklyBonus перезаписывает бонус команды за неделю.
func UpsertWeeklyBonus(ctx context.Context, q Querier, b models.WeeklyQuestionScore) error {
	ctx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()

	_, err := q.ExecContext(ctx, `
		INSERT INTO weekly_question_scores (team_id, week_number, points)
		VALUES ($1, $2, $3)
		ON CONFLICT (team_id, week_number)
		DO UPDATE SET points = EXCLUDED.points`,
		b.TeamID, b.WeekNumber, b.Points)
	if err != nil {
		return fmt.Errorf("upsert weekly bonus: %w", err)
	}
	return nil
}

// BumpRevision увеличивает счётчик изменений сезона; вызывать в той же транзакции, что и запись.
func BumpRevision(ctx context.Context, q Querier, seasonID int64) error {
	ctx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()

	_, err := q.ExecContext(ctx, `
		INSERT INTO score_revisions (season_id, revision) VALUES ($1, 1)
		ON CONFLICT (season_id) DO UPDATE SET revision = score_revisions.revision + 1`, seasonID)
	if err != nil {
		return fmt.Errorf("bump revision: %w", err)
	}
	return nil
}

// Revision — текущий счётчик изменений сезона (0, если записей ещё не было).
func Revision(ctx context.Context, q Querier, seasonID int64) (int64, error) {
	ctx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()

	var rev int64
	err := q.QueryRowContext(ctx, `
		SELECT COALESCE((SELECT revision FROM score_revisions WHERE season_id = $1), 0)`, seasonID).Scan(&rev)
	return rev, err
}

func ListPointValues(ctx context.Context, q Querier, seasonID int64) ([]models.PointValue, error) {
	ctx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()

	rows, err := q.QueryContext(ctx, `
		SELECT season_id, event_name, points, category
		FROM point_values WHERE season_id = $1
		ORDER BY event_name`, seasonID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	out := []models.PointValue{}
	for rows.Next() {
		var pv models.PointValue
		var cat string
		if err := rows.Scan(&pv.SeasonID, &pv.EventName, &pv.Points, &cat); err != nil {
			return nil, err
		}
		pv.Category = models.EventCategory(cat)
		out = append(out, pv)
	}
	return out, rows.Err()
}

func ListEventNames(ctx context.Context, q Querier, seasonID int64) ([]string, error) {
	return queryStrings(ctx, q, `SELECT event_name FROM point_values WHERE season_id = $1 ORDER BY event_name`, seasonID)
}

// TeamScoredEvents — события игроков состава команды в её сезоне, только с записью в рубрике.
func TeamScoredEvents(ctx context.Context, q Querier, teamID int64) ([]models.ScoredEvent, error) {
	return queryScoredEvents(ctx, q, `
		SELECT pes.week_number, rp.player_name, pes.event_name, pes.value, pv.points,
		       pes.value * pv.points AS event_points, pv.category
		FROM roster_players rp
		JOIN teams t ON t.id = rp.team_id
		JOIN player_event_scores pes ON pes.player_name = rp.player_name AND pes.season_id = t.season_id
		JOIN point_values pv ON pv.season_id = pes.season_id AND pv.event_name = pes.event_name
		WHERE rp.team_id = $1
		ORDER BY pes.week_number DESC, event_points DESC, rp.player_name, pes.event_name`, teamID)
}

// SeasonScoredEvents — все оценённые события сезона (для трендов игроков).
func SeasonScoredEvents(ctx context.Context, q Querier, seasonID int64) ([]models.ScoredEvent, error) {
	return queryScoredEvents(ctx, q, `
		SELECT pes.week_number, pes.player_name, pes.event_name, pes.value, pv.points,
		       pes.value * pv.points AS event_points, pv.category
		FROM player_event_scores pes
		JOIN point_values pv ON pv.season_id = pes.season_id AND pv.event_name = pes.event_name
		WHERE pes.season_id = $1
		ORDER BY pes.player_name, pes.week_number, pes.event_name`, seasonID)
}

func queryScoredEvents(ctx context.Context, q Querier, query string, args ...any) ([]models.ScoredEvent, error) {
	ctx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	out := []models.ScoredEvent{}
	for rows.Next() {
		var e models.ScoredEvent
		var cat string
		if err := rows.Scan(&e.WeekNumber, &e.PlayerName, &e.EventName, &e.Value, &e.Points, &e.EventPoints, &cat); err != nil {
			return nil, err
		}
		e.Category = models.EventCategory(cat)
		out = append(out, e)
	}
	return out, rows.Err()
}

func TeamBonuses(ctx context.Context, q Querier, teamID int64) ([]models.WeeklyQuestionScore, error) {
	ctx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()

	rows, err := q.QueryContext(ctx, `
		SELECT team_id, week_number, points
		FROM weekly_question_scores
		WHERE team_id = $1
		ORDER BY week_number`, teamID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	out := []models.WeeklyQuestionScore{}
	for rows.Next() {
		var b models.WeeklyQuestionScore
		if err := rows.Scan(&b.TeamID, &b.WeekNumber, &b.Points); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// LeagueBonuses — бонусы всех команд лиги за сезон.
func LeagueBonuses(ctx context.Context, q Querier, league, season string) ([]models.TeamBonus, error) {
	ctx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()

	rows, err := q.QueryContext(ctx, `
		SELECT t.id, t.name, w.week_number, w.points
		FROM weekly_question_scores w
		JOIN teams t   ON t.id = w.team_id
		JOIN leagues l ON l.id = t.league_id
		JOIN seasons s ON s.id = t.season_id
		WHERE l.name = $1 AND s.label = $2
		ORDER BY t.name, w.week_number`, league, season)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	out := []models.TeamBonus{}
	for rows.Next() {
		var b models.TeamBonus
		if err := rows.Scan(&b.TeamID, &b.TeamName, &b.WeekNumber, &b.Points); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
