package db

import (
	"context"
	"fmt"

	"github.com/ischultz503/Survivor/internal/ctxutil"
	"github.com/ischultz503/Survivor/internal/models"
)

// UpsertWeeklyQuestion сохраняет вопрос недели и возвращает его id.
func UpsertWeeklyQuestion(ctx context.Context, q Querier, wq models.WeeklyQuestion) (int64, error) {
	ctx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()

	var id int64
	err := q.QueryRowContext(ctx, `
		INSERT INTO weekly_questions (league_id, season_id, week_number, question, correct_answer, is_voided)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (league_id, season_id, week_number, question)
		DO UPDATE SET correct_answer = EXCLUDED.correct_answer, is_voided = EXCLUDED.is_voided
		RETURNING id`,
		wq.LeagueID, wq.SeasonID, wq.WeekNumber, wq.Question, wq.CorrectAnswer, wq.IsVoided).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("upsert weekly question: %w", err)
	}
	return id, nil
}

func UpsertQuestionAnswer(ctx context.Context, q Querier, questionID, teamID int64, answer string) error {
	ctx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()

	_, err := q.ExecContext(ctx, `
		INSERT INTO question_answers (question_id, team_id, answer) VALUES ($1, $2, $3)
		ON CONFLICT (question_id, team_id) DO UPDATE SET answer = EXCLUDED.answer`,
		questionID, teamID, answer)
	if err != nil {
		return fmt.Errorf("upsert answer: %w", err)
	}
	return nil
}

// ListWeeklyQuestions — вопросы лиги/сезона с ответами команд (team name -> answer).
func ListWeeklyQuestions(ctx context.Context, q Querier, league, season string) ([]models.WeeklyQuestion, error) {
	ctx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()

	rows, err := q.QueryContext(ctx, `
		SELECT wq.id, wq.league_id, wq.season_id, wq.week_number, wq.question, wq.correct_answer, wq.is_voided,
		       t.name, qa.answer
		FROM weekly_questions wq
		JOIN leagues l ON l.id = wq.league_id
		JOIN seasons s ON s.id = wq.season_id
		LEFT JOIN question_answers qa ON qa.question_id = wq.id
		LEFT JOIN teams t ON t.id = qa.team_id
		WHERE l.name = $1 AND s.label = $2
		ORDER BY wq.week_number, wq.question, t.name`, league, season)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	out := []models.WeeklyQuestion{}
	index := map[int64]int{}
	for rows.Next() {
		var wq models.WeeklyQuestion
		var team, answer *string
		if err := rows.Scan(&wq.ID, &wq.LeagueID, &wq.SeasonID, &wq.WeekNumber, &wq.Question, &wq.CorrectAnswer, &wq.IsVoided, &team, &answer); err != nil {
			return nil, err
		}
		i, ok := index[wq.ID]
		if !ok {
			wq.Answers = map[string]string{}
			out = append(out, wq)
			i = len(out) - 1
			index[wq.ID] = i
		}
		if team != nil && answer != nil {
			out[i].Answers[*team] = *answer
		}
	}
	return out, rows.Err()
}
