//go:build testutil
// +build testutil

package seed

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/ischultz503/Survivor/internal/db"
	"github.com/ischultz503/Survivor/internal/testutil/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed_EmptyDatabase(t *testing.T) {
	ctx := context.Background()
	h, err := testdb.Start(ctx)
	require.NoError(t, err)
	defer h.Close()

	rubric := filepath.Join(t.TempDir(), "PointValues_Survivor.csv")
	require.NoError(t, os.WriteFile(rubric, []byte("Event,Points\nVote Out,5\nIdol Found,3\n"), 0o600))
	scores := writeBook(t, map[string][][]any{
		SheetScores: {
			{"Player", "Week", "Vote Out", "Idol Found", "Confessional"},
			{"Alice", 1, 1, 1, 4},
			{"Bob", 2, 1, nil, nil},
		},
		SheetBonus: {
			{"Week", "Schultz  & Big P", "Ghosts"},
			{1, 2, 9},
		},
	})

	lf, err := ParseLeagueFile([]byte(fmt.Sprintf(`
team_aliases:
  "Schultz  & Big P": "Schultz & Big P"
leagues:
  - name: Test League
    seasons:
      - label: Season 49
        scores: %q
        point_values: %q
        teams:
          - name: "Schultz & Big P"
            players: [Alice, Bob]
          - name: Jena
            players: [Bob]
      - label: Season 48
        scores: missing.xlsx
        point_values: missing.csv
        teams:
          - name: Jena
            players: [Carl]
`, scores, rubric)))
	require.NoError(t, err)

	s := New(h.DB, nil, Options{File: lf, DataDir: t.TempDir(), AdminUsername: "admin", AdminPassword: "pw", Enabled: true})
	rep, err := s.Seed(ctx, false)
	require.NoError(t, err)
	assert.False(t, rep.Skipped)
	assert.Equal(t, 1, rep.Leagues)
	assert.Equal(t, 2, rep.Seasons)
	assert.Equal(t, 3, rep.Teams)
	assert.Equal(t, 2, rep.PointValues)
	assert.Equal(t, 3, rep.Events)
	assert.Equal(t, 1, rep.Bonuses)
	assert.Equal(t, 1, rep.SkippedRows[SkipUnscoredEvent])
	assert.Equal(t, 1, rep.SkippedRows[SkipUnknownTeam])
	assert.Equal(t, 1, rep.SkippedRows[SkipMissingSource])

	st, err := db.Standings(ctx, h.DB, "Test League", "Season 49")
	require.NoError(t, err)
	require.Len(t, st, 2)
	// Alice 5+3, Bob 5, бонус 2
	assert.Equal(t, "Schultz & Big P", st[0].TeamName)
	assert.Equal(t, 15.0, st[0].TotalPoints)
	assert.Equal(t, 5.0, st[1].TotalPoints)

	u, err := db.GetUserByUsername(ctx, h.DB, "admin")
	require.NoError(t, err)
	assert.True(t, u.IsAdmin)

	// повторный запуск ничего не делает
	rep, err = s.Seed(ctx, true)
	require.NoError(t, err)
	assert.True(t, rep.Skipped)
}
