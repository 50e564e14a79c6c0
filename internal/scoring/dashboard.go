package scoring

import "github.com/ischultz503/Survivor/internal/models"

type Dashboard struct {
	Team           models.Team                  `json:"team"`
	Weekly         []WeekTotal                  `json:"weekly"`
	Standings      []models.Standing            `json:"standings"`
	PlayerWeekly   []PlayerWeek                 `json:"player_weekly"`
	PlayerTotals   []PlayerTotal                `json:"player_totals"`
	EventBreakdown []models.ScoredEvent         `json:"event_breakdown"`
	BonusWeekly    []models.WeeklyQuestionScore `json:"bonus_weekly"`
	Eliminations   []models.ScoredEvent         `json:"eliminations"`
	Total          float64                      `json:"total"`
	CurrentWeek    int                          `json:"current_week"`
}

// BuildDashboard собирает все представления команды из строк хранилища.
// Total совпадает с итогом в турнирной таблице: очки игроков плюс все бонусы команды.
func BuildDashboard(team models.Team, events []models.ScoredEvent, bonuses []models.WeeklyQuestionScore, standings []models.Standing) Dashboard {
	weekly := WeeklyPoints(events, bonuses)
	playerWeekly := PlayerWeekly(events)
	breakdown := EventBreakdown(events)

	d := Dashboard{
		Team:           team,
		Weekly:         weekly,
		Standings:      standings,
		PlayerWeekly:   playerWeekly,
		PlayerTotals:   PlayerTotals(playerWeekly),
		EventBreakdown: breakdown,
		BonusWeekly:    bonuses,
		Eliminations:   Eliminations(breakdown),
	}
	for _, pw := range playerWeekly {
		d.Total += pw.Points
	}
	d.Total += SumBonuses(bonuses)
	if n := len(weekly); n > 0 {
		d.CurrentWeek = weekly[n-1].WeekNumber
	}
	if d.BonusWeekly == nil {
		d.BonusWeekly = []models.WeeklyQuestionScore{}
	}
	return d
}
