package httpapi

import (
	"context"

	"github.com/ischultz503/Survivor/internal/models"
	"github.com/ischultz503/Survivor/internal/scoring"
	"github.com/ischultz503/Survivor/internal/service"
	"github.com/stretchr/testify/mock"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) RegisterUser(ctx context.Context, username, password string) (*models.User, error) {
	args := m.Called(ctx, username, password)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *mockService) AuthenticateUser(ctx context.Context, username, password string) (*models.User, error) {
	args := m.Called(ctx, username, password)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *mockService) AssignTeam(ctx context.Context, username string, sel service.Selection) error {
	return m.Called(ctx, username, sel).Error(0)
}

func (m *mockService) UpsertPlayerEvent(ctx context.Context, season string, week int, player, event string, value float64) error {
	return m.Called(ctx, season, week, player, event, value).Error(0)
}

func (m *mockService) UpsertWeeklyBonus(ctx context.Context, sel service.Selection, week int, points float64) error {
	return m.Called(ctx, sel, week, points).Error(0)
}

func (m *mockService) UpsertPointValue(ctx context.Context, season, event string, points float64, category string) error {
	return m.Called(ctx, season, event, points, category).Error(0)
}

func (m *mockService) ListSeasons(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]string)
	return out, args.Error(1)
}

func (m *mockService) ListLeagues(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]string)
	return out, args.Error(1)
}

func (m *mockService) ListTeams(ctx context.Context, league, season string) ([]models.Team, error) {
	args := m.Called(ctx, league, season)
	out, _ := args.Get(0).([]models.Team)
	return out, args.Error(1)
}

func (m *mockService) ListAllTeams(ctx context.Context) ([]models.Team, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]models.Team)
	return out, args.Error(1)
}

func (m *mockService) ListTeamsForUser(ctx context.Context, userID int64) ([]models.UserTeam, error) {
	args := m.Called(ctx, userID)
	out, _ := args.Get(0).([]models.UserTeam)
	return out, args.Error(1)
}

func (m *mockService) ListPlayers(ctx context.Context, season string) ([]string, error) {
	args := m.Called(ctx, season)
	out, _ := args.Get(0).([]string)
	return out, args.Error(1)
}

func (m *mockService) ListEvents(ctx context.Context, season string) ([]string, error) {
	args := m.Called(ctx, season)
	out, _ := args.Get(0).([]string)
	return out, args.Error(1)
}

func (m *mockService) ListPointValues(ctx context.Context, season string) ([]models.PointValue, error) {
	args := m.Called(ctx, season)
	out, _ := args.Get(0).([]models.PointValue)
	return out, args.Error(1)
}

func (m *mockService) Standings(ctx context.Context, league, season string) ([]models.Standing, error) {
	args := m.Called(ctx, league, season)
	out, _ := args.Get(0).([]models.Standing)
	return out, args.Error(1)
}

func (m *mockService) TeamDashboard(ctx context.Context, teamID int64) (scoring.Dashboard, error) {
	args := m.Called(ctx, teamID)
	out, _ := args.Get(0).(scoring.Dashboard)
	return out, args.Error(1)
}

func (m *mockService) PlayerTrends(ctx context.Context, season string, players []string) ([]scoring.TrendPoint, error) {
	args := m.Called(ctx, season, players)
	out, _ := args.Get(0).([]scoring.TrendPoint)
	return out, args.Error(1)
}

func (m *mockService) BonusGrid(ctx context.Context, league, season string) (scoring.BonusGrid, error) {
	args := m.Called(ctx, league, season)
	out, _ := args.Get(0).(scoring.BonusGrid)
	return out, args.Error(1)
}

func (m *mockService) QuestionAccuracy(ctx context.Context, league, season string) ([]scoring.TeamAccuracy, error) {
	args := m.Called(ctx, league, season)
	out, _ := args.Get(0).([]scoring.TeamAccuracy)
	return out, args.Error(1)
}

func (m *mockService) ListSeasonsForLeague(ctx context.Context, league string) ([]string, error) {
	args := m.Called(ctx, league)
	out, _ := args.Get(0).([]string)
	return out, args.Error(1)
}

func (m *mockService) TeamRoster(ctx context.Context, teamID int64) ([]string, error) {
	args := m.Called(ctx, teamID)
	out, _ := args.Get(0).([]string)
	return out, args.Error(1)
}
