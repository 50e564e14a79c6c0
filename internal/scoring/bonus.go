package scoring

import (
	"cmp"
	"slices"

	"github.com/ischultz503/Survivor/internal/models"
)

type BonusCell struct {
	TeamName   string  `json:"team_name"`
	WeekNumber int     `json:"week_number"`
	Points     float64 `json:"points"`
	Cumulative float64 `json:"cumulative"`
}

type BonusGrid struct {
	Cells  []BonusCell        `json:"cells"`
	Totals map[string]float64 `json:"totals"`
}

// BuildBonusGrid раскладывает бонусы лиги по командам и неделям с накоплением внутри команды.
func BuildBonusGrid(bonuses []models.TeamBonus) BonusGrid {
	cells := make([]BonusCell, 0, len(bonuses))
	for _, b := range bonuses {
		cells = append(cells, BonusCell{TeamName: b.TeamName, WeekNumber: b.WeekNumber, Points: b.Points})
	}
	slices.SortFunc(cells, func(a, b BonusCell) int {
		if c := cmp.Compare(a.TeamName, b.TeamName); c != 0 {
			return c
		}
		return cmp.Compare(a.WeekNumber, b.WeekNumber)
	})

	totals := map[string]float64{}
	for i := range cells {
		totals[cells[i].TeamName] += cells[i].Points
		cells[i].Cumulative = totals[cells[i].TeamName]
	}
	return BonusGrid{Cells: cells, Totals: totals}
}
