package service

import (
	"context"
	"fmt"

	"github.com/ischultz503/Survivor/internal/cache"
	"github.com/ischultz503/Survivor/internal/db"
	"github.com/ischultz503/Survivor/internal/models"
	"github.com/ischultz503/Survivor/internal/scoring"
)

// fingerprint — ревизия сезона; меняется при каждой мутации счёта или рубрики.
func (s *Service) fingerprint(ctx context.Context, seasonID int64) (int64, error) {
	return db.Revision(ctx, s.db, seasonID)
}

func (s *Service) teamRows(ctx context.Context, teamID int64) ([]models.ScoredEvent, []models.WeeklyQuestionScore, error) {
	events, err := db.TeamScoredEvents(ctx, s.db, teamID)
	if err != nil {
		return nil, nil, err
	}
	bonuses, err := db.TeamBonuses(ctx, s.db, teamID)
	if err != nil {
		return nil, nil, err
	}
	return events, bonuses, nil
}

// TeamDashboard собирает все представления команды; кэшируется по ревизии сезона.
func (s *Service) TeamDashboard(ctx context.Context, teamID int64) (scoring.Dashboard, error) {
	team, err := s.GetTeam(ctx, teamID)
	if err != nil {
		return scoring.Dashboard{}, err
	}
	rev, err := s.fingerprint(ctx, team.SeasonID)
	if err != nil {
		return scoring.Dashboard{}, err
	}
	key := cache.Key(fmt.Sprintf("dashboard:%d", teamID), rev)
	return cache.GetOrLoad(ctx, s.cache, key, func(ctx context.Context) (scoring.Dashboard, error) {
		events, bonuses, err := s.teamRows(ctx, teamID)
		if err != nil {
			return scoring.Dashboard{}, err
		}
		standings, err := db.Standings(ctx, s.db, team.LeagueName, team.SeasonLabel)
		if err != nil {
			return scoring.Dashboard{}, err
		}
		return scoring.BuildDashboard(*team, events, bonuses, standings), nil
	})
}

func (s *Service) WeeklyPoints(ctx context.Context, teamID int64) ([]scoring.WeekTotal, error) {
	if _, err := s.GetTeam(ctx, teamID); err != nil {
		return nil, err
	}
	events, bonuses, err := s.teamRows(ctx, teamID)
	if err != nil {
		return nil, err
	}
	return scoring.WeeklyPoints(events, bonuses), nil
}

func (s *Service) PlayerWeekly(ctx context.Context, teamID int64) ([]scoring.PlayerWeek, error) {
	if _, err := s.GetTeam(ctx, teamID); err != nil {
		return nil, err
	}
	events, err := db.TeamScoredEvents(ctx, s.db, teamID)
	if err != nil {
		return nil, err
	}
	return scoring.PlayerWeekly(events), nil
}

func (s *Service) PlayerTotals(ctx context.Context, teamID int64) ([]scoring.PlayerTotal, error) {
	weekly, err := s.PlayerWeekly(ctx, teamID)
	if err != nil {
		return nil, err
	}
	return scoring.PlayerTotals(weekly), nil
}

func (s *Service) EventBreakdown(ctx context.Context, teamID int64) ([]models.ScoredEvent, error) {
	if _, err := s.GetTeam(ctx, teamID); err != nil {
		return nil, err
	}
	events, err := db.TeamScoredEvents(ctx, s.db, teamID)
	if err != nil {
		return nil, err
	}
	return scoring.EventBreakdown(events), nil
}

func (s *Service) Eliminations(ctx context.Context, teamID int64) ([]models.ScoredEvent, error) {
	bd, err := s.EventBreakdown(ctx, teamID)
	if err != nil {
		return nil, err
	}
	return scoring.Eliminations(bd), nil
}

// Standings — таблица лиги за сезон; кэшируется по ревизии сезона.
func (s *Service) Standings(ctx context.Context, league, season string) ([]models.Standing, error) {
	se, err := s.season(ctx, season)
	if err != nil {
		return nil, err
	}
	rev, err := s.fingerprint(ctx, se.ID)
	if err != nil {
		return nil, err
	}
	key := cache.Key(fmt.Sprintf("standings:%s:%s", league, season), rev)
	return cache.GetOrLoad(ctx, s.cache, key, func(ctx context.Context) ([]models.Standing, error) {
		return db.Standings(ctx, s.db, league, season)
	})
}

// PlayerTrends — недельные и нарастающие очки игроков сезона; пустой players — все.
func (s *Service) PlayerTrends(ctx context.Context, season string, players []string) ([]scoring.TrendPoint, error) {
	se, err := s.season(ctx, season)
	if err != nil {
		return nil, err
	}
	events, err := db.SeasonScoredEvents(ctx, s.db, se.ID)
	if err != nil {
		return nil, err
	}
	return scoring.PlayerTrends(events, players), nil
}

func (s *Service) BonusGrid(ctx context.Context, league, season string) (scoring.BonusGrid, error) {
	if _, err := s.season(ctx, season); err != nil {
		return scoring.BonusGrid{}, err
	}
	bonuses, err := db.LeagueBonuses(ctx, s.db, league, season)
	if err != nil {
		return scoring.BonusGrid{}, err
	}
	return scoring.BuildBonusGrid(bonuses), nil
}

func (s *Service) QuestionAccuracy(ctx context.Context, league, season string) ([]scoring.TeamAccuracy, error) {
	if _, err := s.season(ctx, season); err != nil {
		return nil, err
	}
	questions, err := db.ListWeeklyQuestions(ctx, s.db, league, season)
	if err != nil {
		return nil, err
	}
	teams, err := db.ListTeams(ctx, s.db, league, season)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(teams))
	for _, t := range teams {
		names = append(names, t.Name)
	}
	return scoring.QuestionAccuracy(questions, names), nil
}
