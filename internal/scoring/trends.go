package scoring

import (
	"cmp"
	"slices"

	"github.com/ischultz503/Survivor/internal/models"
)

type TrendPoint struct {
	PlayerName   string  `json:"player_name"`
	WeekNumber   int     `json:"week_number"`
	Total        float64 `json:"total"`
	RollingTotal float64 `json:"rolling_total"`
}

// PlayerTrends — недельные и нарастающие очки игроков сезона. Пустой players — все игроки.
func PlayerTrends(events []models.ScoredEvent, players []string) []TrendPoint {
	want := map[string]bool{}
	for _, p := range players {
		want[p] = true
	}
	type key struct {
		player string
		week   int
	}
	sums := map[key]float64{}
	for _, e := range scored(events) {
		if len(want) > 0 && !want[e.PlayerName] {
			continue
		}
		sums[key{e.PlayerName, e.WeekNumber}] += e.Value * e.Points
	}

	out := make([]TrendPoint, 0, len(sums))
	for k, v := range sums {
		out = append(out, TrendPoint{PlayerName: k.player, WeekNumber: k.week, Total: v})
	}
	slices.SortFunc(out, func(a, b TrendPoint) int {
		if c := cmp.Compare(a.PlayerName, b.PlayerName); c != 0 {
			return c
		}
		return cmp.Compare(a.WeekNumber, b.WeekNumber)
	})

	var rolling float64
	for i := range out {
		if i == 0 || out[i].PlayerName != out[i-1].PlayerName {
			rolling = 0
		}
		rolling += out[i].Total
		out[i].RollingTotal = rolling
	}
	return out
}
