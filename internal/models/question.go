package models

type WeeklyQuestion struct {
	ID            int64             `db:"id" json:"id"`
	LeagueID      int64             `db:"league_id" json:"league_id"`
	SeasonID      int64             `db:"season_id" json:"season_id"`
	WeekNumber    int               `db:"week_number" json:"week_number"`
	Question      string            `db:"question" json:"question"`
	CorrectAnswer string            `db:"correct_answer" json:"correct_answer"`
	IsVoided      bool              `db:"is_voided" json:"is_voided"`
	Answers       map[string]string `json:"answers"` // team name -> answer
}
