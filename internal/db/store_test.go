//go:build testutil
// +build testutil

package db_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ischultz503/Survivor/internal/db"
	"github.com/ischultz503/Survivor/internal/testutil/testdb"
)

func TestStandings_NoFanOut(t *testing.T) {
	h, err := testdb.Start(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	defer h.Close()
	ctx := context.Background()

	w := mustWorld(t, h.DB, map[string][]string{"A": {"Alice", "Bob"}, "B": {"Carl"}, "Empty": nil})
	// у A несколько строк событий и несколько недель бонусов: бонус не должен умножаться
	mustEvent(t, h.DB, w.seasonID, 1, "Alice", "Vote Out", 1)   // 5
	mustEvent(t, h.DB, w.seasonID, 1, "Alice", "Idol Found", 2) // 6
	mustEvent(t, h.DB, w.seasonID, 2, "Bob", "Vote Out", 1)     // 5
	mustEvent(t, h.DB, w.seasonID, 2, "Bob", "Orphan", 7)       // нет в рубрике
	mustEvent(t, h.DB, w.seasonID, 1, "Carl", "Idol Found", 1)  // 3
	mustBonus(t, h.DB, w.teams["A"], 1, 4)
	mustBonus(t, h.DB, w.teams["A"], 2, 1)

	st, err := db.Standings(ctx, h.DB, "L", "S1")
	if err != nil {
		t.Fatal(err)
	}
	if len(st) != 3 {
		t.Fatalf("ожидали 3 команды (включая пустую), получили %d", len(st))
	}
	if st[0].TeamName != "A" || st[0].PlayerPoints != 16 || st[0].BonusPoints != 5 || st[0].TotalPoints != 21 {
		t.Fatalf("A: %+v", st[0])
	}
	if st[1].TeamName != "B" || st[1].TotalPoints != 3 {
		t.Fatalf("B: %+v", st[1])
	}
	if st[2].TeamName != "Empty" || st[2].TotalPoints != 0 || st[2].Rank != 3 {
		t.Fatalf("Empty: %+v", st[2])
	}
}

func TestScoredEvents_InnerJoin(t *testing.T) {
	h, err := testdb.Start(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	defer h.Close()
	ctx := context.Background()

	w := mustWorld(t, h.DB, map[string][]string{"A": {"Alice"}})
	mustEvent(t, h.DB, w.seasonID, 1, "Alice", "Vote Out", 1)
	mustEvent(t, h.DB, w.seasonID, 1, "Alice", "Orphan", 3)
	mustEvent(t, h.DB, w.seasonID, 1, "Stranger", "Vote Out", 1)

	events, err := db.TeamScoredEvents(ctx, h.DB, w.teams["A"])
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 1 || events[0].EventName != "Vote Out" || events[0].EventPoints != 5 {
		t.Fatalf("ожидали одно событие Vote Out=5, получили %+v", events)
	}

	players, err := db.ListPlayersForSeason(ctx, h.DB, w.seasonID)
	if err != nil {
		t.Fatal(err)
	}
	if len(players) != 2 {
		t.Fatalf("игроки сезона: %v", players)
	}
}

func TestUsers_Conflict(t *testing.T) {
	h, err := testdb.Start(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	defer h.Close()
	ctx := context.Background()

	if _, err := db.CreateUser(ctx, h.DB, "carol", "s:d", false); err != nil {
		t.Fatal(err)
	}
	if _, err := db.CreateUser(ctx, h.DB, "carol", "s:d", false); !errors.Is(err, db.ErrConflict) {
		t.Fatalf("ожидали ErrConflict, получили %v", err)
	}
	if _, err := db.GetUserByUsername(ctx, h.DB, "nobody"); !errors.Is(err, db.ErrNotFound) {
		t.Fatalf("ожидали ErrNotFound, получили %v", err)
	}
	// EnsureUser не трогает существующего
	if err := db.EnsureUser(ctx, h.DB, "carol", "other", true); err != nil {
		t.Fatal(err)
	}
	u, err := db.GetUserByUsername(ctx, h.DB, "carol")
	if err != nil {
		t.Fatal(err)
	}
	if u.IsAdmin || u.PasswordHash != "s:d" {
		t.Fatalf("EnsureUser перезаписал пользователя: %+v", u)
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	h, err := testdb.Start(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	defer h.Close()
	if err := db.Migrate(h.DB); err != nil {
		t.Fatalf("повторная миграция: %v", err)
	}
}
