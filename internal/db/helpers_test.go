//go:build testutil
// +build testutil

package db_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/ischultz503/Survivor/internal/db"
	"github.com/ischultz503/Survivor/internal/models"
)

type world struct {
	leagueID, seasonID int64
	teams              map[string]int64
}

// mustWorld: лига L, сезон S1, рубрика {Vote Out: 5, Idol Found: 3}, команды с составами.
func mustWorld(tb testing.TB, q db.Querier, rosters map[string][]string) world {
	tb.Helper()
	ctx := context.Background()
	w := world{teams: map[string]int64{}}
	var err error
	if w.leagueID, err = db.EnsureLeague(ctx, q, "L"); err != nil {
		tb.Fatal(err)
	}
	if w.seasonID, err = db.EnsureSeason(ctx, q, "S1"); err != nil {
		tb.Fatal(err)
	}
	for ev, pts := range map[string]float64{"Vote Out": 5, "Idol Found": 3} {
		if err := db.UpsertPointValue(ctx, q, models.PointValue{SeasonID: w.seasonID, EventName: ev, Points: pts}); err != nil {
			tb.Fatal(err)
		}
	}
	for team, players := range rosters {
		id, err := db.CreateTeam(ctx, q, w.leagueID, w.seasonID, team)
		if err != nil {
			tb.Fatal(err)
		}
		w.teams[team] = id
		for _, p := range players {
			if err := db.AddRosterPlayer(ctx, q, id, p); err != nil {
				tb.Fatal(err)
			}
		}
	}
	return w
}

func mustEvent(tb testing.TB, q db.Querier, seasonID int64, week int, player, event string, value float64) {
	tb.Helper()
	err := db.UpsertPlayerEvent(context.Background(), q, models.PlayerEventScore{
		SeasonID: seasonID, WeekNumber: week, PlayerName: player, EventName: event, Value: value,
	})
	if err != nil {
		tb.Fatal(err)
	}
}

func mustBonus(tb testing.TB, q *sql.DB, teamID int64, week int, points float64) {
	tb.Helper()
	if err := db.UpsertWeeklyBonus(context.Background(), q, models.WeeklyQuestionScore{TeamID: teamID, WeekNumber: week, Points: points}); err != nil {
		tb.Fatal(err)
	}
}
