package models

import (
	"fmt"
	"strings"
)

// EventCategory задаётся при описании рубрики, а не вычисляется по названию события при чтении.
type EventCategory string

const (
	CategoryScoring     EventCategory = "scoring"
	CategoryElimination EventCategory = "elimination"
	CategoryBonus       EventCategory = "bonus"
)

func ParseEventCategory(s string) (EventCategory, error) {
	switch c := EventCategory(strings.ToLower(strings.TrimSpace(s))); c {
	case CategoryScoring, CategoryElimination, CategoryBonus:
		return c, nil
	case "":
		return CategoryScoring, nil
	default:
		return "", fmt.Errorf("unknown event category %q", s)
	}
}

type PointValue struct {
	SeasonID  int64         `db:"season_id" json:"season_id"`
	EventName string        `db:"event_name" json:"event_name"`
	Points    float64       `db:"points" json:"points"`
	Category  EventCategory `db:"category" json:"category"`
}

type PlayerEventScore struct {
	SeasonID   int64   `db:"season_id" json:"season_id"`
	WeekNumber int     `db:"week_number" json:"week_number"`
	PlayerName string  `db:"player_name" json:"player_name"`
	EventName  string  `db:"event_name" json:"event_name"`
	Value      float64 `db:"value" json:"value"`
}

type WeeklyQuestionScore struct {
	TeamID     int64   `db:"team_id" json:"team_id"`
	WeekNumber int     `db:"week_number" json:"week_number"`
	Points     float64 `db:"points" json:"points"`
}

// ScoredEvent — событие игрока, сопоставленное с рубрикой сезона (inner join).
type ScoredEvent struct {
	WeekNumber  int           `db:"week_number" json:"week_number"`
	PlayerName  string        `db:"player_name" json:"player_name"`
	EventName   string        `db:"event_name" json:"event_name"`
	Value       float64       `db:"value" json:"value"`
	Points      float64       `db:"points" json:"points"`
	EventPoints float64       `db:"event_points" json:"event_points"`
	Category    EventCategory `db:"category" json:"category"`
}

// TeamBonus — бонус команды за неделю с названием команды (для сетки бонусов лиги).
type TeamBonus struct {
	TeamID     int64   `db:"team_id" json:"team_id"`
	TeamName   string  `db:"team_name" json:"team_name"`
	WeekNumber int     `db:"week_number" json:"week_number"`
	Points     float64 `db:"points" json:"points"`
}

type Standing struct {
	Rank         int     `json:"rank"`
	TeamID       int64   `db:"team_id" json:"team_id"`
	TeamName     string  `db:"team_name" json:"team_name"`
	PlayerPoints float64 `db:"player_points" json:"player_points"`
	BonusPoints  float64 `db:"bonus_points" json:"bonus_points"`
	TotalPoints  float64 `db:"total_points" json:"total_points"`
}
