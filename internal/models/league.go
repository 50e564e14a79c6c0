package models

type League struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

type Season struct {
	ID    int64  `db:"id" json:"id"`
	Label string `db:"label" json:"label"`
}

type Team struct {
	ID          int64  `db:"id" json:"id"`
	LeagueID    int64  `db:"league_id" json:"league_id"`
	SeasonID    int64  `db:"season_id" json:"season_id"`
	Name        string `db:"name" json:"name"`
	LeagueName  string `db:"league_name" json:"league_name"`
	SeasonLabel string `db:"season_label" json:"season_label"`
}

type RosterPlayer struct {
	TeamID     int64  `db:"team_id" json:"team_id"`
	PlayerName string `db:"player_name" json:"player_name"`
}
