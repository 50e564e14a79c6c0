package db

import (
	"context"

	"github.com/ischultz503/Survivor/internal/ctxutil"
	"github.com/ischultz503/Survivor/internal/models"
)

// Standings — итог по всем командам лиги/сезона. Очки игроков и бонусы суммируются в отдельных
// подзапросах: иначе строки бонусов размножаются на строки событий. Команда без очков — 0.
func Standings(ctx context.Context, q Querier, league, season string) ([]models.Standing, error) {
	ctx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()

	rows, err := q.QueryContext(ctx, `
		WITH player_pts AS (
			SELECT rp.team_id, SUM(pes.value * pv.points) AS pts
			FROM roster_players rp
			JOIN teams t ON t.id = rp.team_id
			JOIN player_event_scores pes ON pes.player_name = rp.player_name AND pes.season_id = t.season_id
			JOIN point_values pv ON pv.season_id = pes.season_id AND pv.event_name = pes.event_name
			GROUP BY rp.team_id
		), bonus_pts AS (
			SELECT team_id, SUM(points) AS pts
			FROM weekly_question_scores
			GROUP BY team_id
		)
		SELECT t.id, t.name,
		       COALESCE(pp.pts, 0) AS player_points,
		       COALESCE(bp.pts, 0) AS bonus_points,
		       COALESCE(pp.pts, 0) + COALESCE(bp.pts, 0) AS total_points
		FROM teams t
		JOIN leagues l ON l.id = t.league_id
		JOIN seasons s ON s.id = t.season_id
		LEFT JOIN player_pts pp ON pp.team_id = t.id
		LEFT JOIN bonus_pts bp ON bp.team_id = t.id
		WHERE l.name = $1 AND s.label = $2
		ORDER BY total_points DESC, t.name`, league, season)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	out := []models.Standing{}
	for rows.Next() {
		var st models.Standing
		if err := rows.Scan(&st.TeamID, &st.TeamName, &st.PlayerPoints, &st.BonusPoints, &st.TotalPoints); err != nil {
			return nil, err
		}
		st.Rank = len(out) + 1
		out = append(out, st)
	}
	return out, rows.Err()
}
