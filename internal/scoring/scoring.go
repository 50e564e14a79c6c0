// Package scoring выводит все представления дашборда из уже прочитанных строк хранилища.
// Функции чистые: без БД, без кэша, арифметика во float64 без округления.
package scoring

import (
	"cmp"
	"slices"

	"github.com/ischultz503/Survivor/internal/models"
)

type WeekTotal struct {
	WeekNumber      int     `json:"week_number"`
	PlayerPoints    float64 `json:"player_points"`
	BonusPoints     float64 `json:"bonus_points"`
	WeekTotal       float64 `json:"week_total"`
	CumulativeTotal float64 `json:"cumulative_total"`
}

type PlayerWeek struct {
	WeekNumber int     `json:"week_number"`
	PlayerName string  `json:"player_name"`
	Points     float64 `json:"points"`
}

type PlayerTotal struct {
	PlayerName  string  `json:"player_name"`
	TotalPoints float64 `json:"total_points"`
}

// scored отбрасывает нулевые значения: ноль ничего не добавляет и не должен порождать строку недели.
func scored(events []models.ScoredEvent) []models.ScoredEvent {
	out := make([]models.ScoredEvent, 0, len(events))
	for _, e := range events {
		if e.Value == 0 {
			continue
		}
		out = append(out, e)
	}
	return out
}

// WeeklyPoints — очки команды по неделям, в которых есть оценённые события игроков.
// Недели только с бонусом не выводятся; пустой результат, если событий ещё нет.
func WeeklyPoints(events []models.ScoredEvent, bonuses []models.WeeklyQuestionScore) []WeekTotal {
	byWeek := map[int]float64{}
	for _, e := range scored(events) {
		byWeek[e.WeekNumber] += e.Value * e.Points
	}
	bonusByWeek := map[int]float64{}
	for _, b := range bonuses {
		bonusByWeek[b.WeekNumber] += b.Points
	}

	weeks := make([]int, 0, len(byWeek))
	for w := range byWeek {
		weeks = append(weeks, w)
	}
	slices.Sort(weeks)

	out := make([]WeekTotal, 0, len(weeks))
	var cumulative float64
	for _, w := range weeks {
		row := WeekTotal{
			WeekNumber:   w,
			PlayerPoints: byWeek[w],
			BonusPoints:  bonusByWeek[w],
		}
		row.WeekTotal = row.PlayerPoints + row.BonusPoints
		cumulative += row.WeekTotal
		row.CumulativeTotal = cumulative
		out = append(out, row)
	}
	return out
}

// PlayerWeekly — очки каждого игрока за каждую неделю: неделя ↑, очки ↓, имя ↑.
func PlayerWeekly(events []models.ScoredEvent) []PlayerWeek {
	type key struct {
		week   int
		player string
	}
	sums := map[key]float64{}
	for _, e := range scored(events) {
		sums[key{e.WeekNumber, e.PlayerName}] += e.Value * e.Points
	}

	out := make([]PlayerWeek, 0, len(sums))
	for k, v := range sums {
		out = append(out, PlayerWeek{WeekNumber: k.week, PlayerName: k.player, Points: v})
	}
	slices.SortFunc(out, func(a, b PlayerWeek) int {
		if c := cmp.Compare(a.WeekNumber, b.WeekNumber); c != 0 {
			return c
		}
		if c := cmp.Compare(b.Points, a.Points); c != 0 {
			return c
		}
		return cmp.Compare(a.PlayerName, b.PlayerName)
	})
	return out
}

// PlayerTotals — PlayerWeekly, просуммированный по игроку, по убыванию.
func PlayerTotals(weekly []PlayerWeek) []PlayerTotal {
	sums := map[string]float64{}
	for _, pw := range weekly {
		sums[pw.PlayerName] += pw.Points
	}
	out := make([]PlayerTotal, 0, len(sums))
	for name, total := range sums {
		out = append(out, PlayerTotal{PlayerName: name, TotalPoints: total})
	}
	slices.SortFunc(out, func(a, b PlayerTotal) int {
		if c := cmp.Compare(b.TotalPoints, a.TotalPoints); c != 0 {
			return c
		}
		return cmp.Compare(a.PlayerName, b.PlayerName)
	})
	return out
}

// EventBreakdown — все оценённые события: неделя ↓, очки события ↓, игрок ↑.
func EventBreakdown(events []models.ScoredEvent) []models.ScoredEvent {
	out := scored(events)
	for i := range out {
		out[i].EventPoints = out[i].Value * out[i].Points
	}
	slices.SortStableFunc(out, func(a, b models.ScoredEvent) int {
		if c := cmp.Compare(b.WeekNumber, a.WeekNumber); c != 0 {
			return c
		}
		if c := cmp.Compare(b.EventPoints, a.EventPoints); c != 0 {
			return c
		}
		if c := cmp.Compare(a.PlayerName, b.PlayerName); c != 0 {
			return c
		}
		return cmp.Compare(a.EventName, b.EventName)
	})
	return out
}

// Eliminations — строки EventBreakdown с категорией события elimination.
func Eliminations(breakdown []models.ScoredEvent) []models.ScoredEvent {
	out := []models.ScoredEvent{}
	for _, e := range breakdown {
		if e.Category == models.CategoryElimination {
			out = append(out, e)
		}
	}
	return out
}

// SumBonuses — сумма всех бонусов команды.
func SumBonuses(bonuses []models.WeeklyQuestionScore) float64 {
	var s float64
	for _, b := range bonuses {
		s += b.Points
	}
	return s
}
