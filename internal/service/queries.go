package service

import (
	"context"

	"github.com/ischultz503/Survivor/internal/db"
	"github.com/ischultz503/Survivor/internal/models"
)

func (s *Service) ListSeasons(ctx context.Context) ([]string, error) {
	return db.ListSeasons(ctx, s.db)
}

func (s *Service) ListLeagues(ctx context.Context) ([]string, error) {
	return db.ListLeagues(ctx, s.db)
}

func (s *Service) ListSeasonsForLeague(ctx context.Context, league string) ([]string, error) {
	return db.ListSeasonsForLeague(ctx, s.db, league)
}

func (s *Service) ListTeams(ctx context.Context, league, season string) ([]models.Team, error) {
	return db.ListTeams(ctx, s.db, league, season)
}

func (s *Service) ListAllTeams(ctx context.Context) ([]models.Team, error) {
	return db.ListAllTeams(ctx, s.db)
}

func (s *Service) ListTeamsForUser(ctx context.Context, userID int64) ([]models.UserTeam, error) {
	return db.ListTeamsForUser(ctx, s.db, userID)
}

func (s *Service) season(ctx context.Context, label string) (*models.Season, error) {
	se, err := db.GetSeasonByLabel(ctx, s.db, label)
	if err != nil {
		return nil, translate(err, "season not found")
	}
	return se, nil
}

// ListPlayers — игроки сезона: из событий и из составов.
func (s *Service) ListPlayers(ctx context.Context, season string) ([]string, error) {
	se, err := s.season(ctx, season)
	if err != nil {
		return nil, err
	}
	return db.ListPlayersForSeason(ctx, s.db, se.ID)
}

func (s *Service) ListEvents(ctx context.Context, season string) ([]string, error) {
	se, err := s.season(ctx, season)
	if err != nil {
		return nil, err
	}
	return db.ListEventNames(ctx, s.db, se.ID)
}

func (s *Service) ListPointValues(ctx context.Context, season string) ([]models.PointValue, error) {
	se, err := s.season(ctx, season)
	if err != nil {
		return nil, err
	}
	return db.ListPointValues(ctx, s.db, se.ID)
}

func (s *Service) GetTeam(ctx context.Context, teamID int64) (*models.Team, error) {
	t, err := db.GetTeamByID(ctx, s.db, teamID)
	if err != nil {
		return nil, translate(err, "team not found")
	}
	return t, nil
}

func (s *Service) FindTeam(ctx context.Context, sel Selection) (*models.Team, error) {
	t, err := db.FindTeam(ctx, s.db, sel.League, sel.Season, sel.Team)
	if err != nil {
		return nil, translate(err, "team not found")
	}
	return t, nil
}

// TeamRoster — игроки команды по имени; NotFound для неизвестной команды.
func (s *Service) TeamRoster(ctx context.Context, teamID int64) ([]string, error) {
	if _, err := s.GetTeam(ctx, teamID); err != nil {
		return nil, err
	}
	return db.ListRoster(ctx, s.db, teamID)
}
