package models

import "time"

type User struct {
	ID           int64     `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	PasswordHash string    `db:"password_hash" json:"-"`
	IsAdmin      bool      `db:"is_admin" json:"is_admin"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// UserTeam — команда, к которой привязан пользователь, с подписями лиги и сезона.
type UserTeam struct {
	TeamID      int64  `db:"team_id" json:"team_id"`
	TeamName    string `db:"team_name" json:"team_name"`
	LeagueName  string `db:"league_name" json:"league_name"`
	SeasonLabel string `db:"season_label" json:"season_label"`
}
