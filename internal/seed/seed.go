// Package seed — однократная загрузка старых таблиц (xlsx/csv) в базу.
package seed

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/ischultz503/Survivor/internal/auth"
	"github.com/ischultz503/Survivor/internal/db"
	"github.com/ischultz503/Survivor/internal/metrics"
	"github.com/ischultz503/Survivor/internal/models"
	"go.uber.org/zap"
)

type Options struct {
	File          *LeagueFile
	DataDir       string
	AdminUsername string
	AdminPassword string
	Enabled       bool // SEED_ON_START
}

type Report struct {
	Skipped     bool           `json:"skipped"`
	Leagues     int            `json:"leagues"`
	Seasons     int            `json:"seasons"`
	Teams       int            `json:"teams"`
	Players     int            `json:"players"`
	PointValues int            `json:"point_values"`
	Events      int            `json:"events"`
	Bonuses     int            `json:"bonuses"`
	Questions   int            `json:"questions"`
	SkippedRows map[string]int `json:"skipped_rows"`
}

type Seeder struct {
	db  *sql.DB
	log *zap.Logger
	opt Options
}

func New(database *sql.DB, log *zap.Logger, opt Options) *Seeder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Seeder{db: database, log: log, opt: opt}
}

// Seed заполняет пустую базу. Если хотя бы одна команда уже есть — ничего не делает.
// force запускает загрузку даже при выключенном SEED_ON_START.
func (s *Seeder) Seed(ctx context.Context, force bool) (Report, error) {
	rep := Report{SkippedRows: map[string]int{}}
	if !s.opt.Enabled && !force {
		rep.Skipped = true
		return rep, nil
	}
	if s.opt.File == nil {
		return rep, fmt.Errorf("seed: league file is not loaded")
	}

	n, err := db.CountTeams(ctx, s.db)
	if err != nil {
		return rep, fmt.Errorf("seed: count teams: %w", err)
	}
	if n > 0 {
		s.log.Info("seed skipped: teams already exist", zap.Int("teams", n))
		rep.Skipped = true
		return rep, nil
	}

	sk := skips{}
	err = db.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		return s.seedTx(ctx, tx, &rep, sk)
	})
	if err != nil {
		return rep, fmt.Errorf("seed: %w", err)
	}

	for reason, cnt := range sk {
		rep.SkippedRows[reason] = cnt
		metrics.SeedSkippedRows.WithLabelValues(reason).Add(float64(cnt))
	}
	s.log.Info("seed done",
		zap.Int("leagues", rep.Leagues),
		zap.Int("teams", rep.Teams),
		zap.Int("events", rep.Events),
		zap.Int("bonuses", rep.Bonuses),
		zap.Int("questions", rep.Questions),
		zap.Any("skipped_rows", rep.SkippedRows),
	)
	return rep, nil
}

func (s *Seeder) seedTx(ctx context.Context, tx *sql.Tx, rep *Report, sk skips) error {
	seasonIDs := map[string]int64{}
	for _, l := range s.opt.File.Leagues {
		if _, err := db.EnsureLeague(ctx, tx, l.Name); err != nil {
			return err
		}
		rep.Leagues++
		for _, sc := range l.Seasons {
			if _, ok := seasonIDs[sc.Label]; ok {
				continue
			}
			id, err := db.EnsureSeason(ctx, tx, sc.Label)
			if err != nil {
				return err
			}
			seasonIDs[sc.Label] = id
			rep.Seasons++
		}
	}

	hash, err := auth.HashPassword(s.opt.AdminPassword)
	if err != nil {
		return err
	}
	if err := db.EnsureUser(ctx, tx, s.opt.AdminUsername, hash, true); err != nil {
		return err
	}
	s.log.Warn("default admin account ensured; rotate its password", zap.String("username", s.opt.AdminUsername))

	for _, l := range s.opt.File.Leagues {
		leagueID, err := db.EnsureLeague(ctx, tx, l.Name)
		if err != nil {
			return err
		}
		for _, sc := range l.Seasons {
			seasonID := seasonIDs[sc.Label]
			teams, err := s.seedTeams(ctx, tx, leagueID, seasonID, sc, rep)
			if err != nil {
				return fmt.Errorf("%s / %s: %w", l.Name, sc.Label, err)
			}
			if err := s.seedSources(ctx, tx, leagueID, seasonID, sc, teams, rep, sk); err != nil {
				return fmt.Errorf("%s / %s: %w", l.Name, sc.Label, err)
			}
			if err := db.BumpRevision(ctx, tx, seasonID); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Seeder) seedTeams(ctx context.Context, tx *sql.Tx, leagueID, seasonID int64, sc SeasonConfig, rep *Report) (map[string]int64, error) {
	teams := make(map[string]int64, len(sc.Teams))
	for _, t := range sc.Teams {
		id, err := db.CreateTeam(ctx, tx, leagueID, seasonID, t.Name)
		if err != nil {
			return nil, err
		}
		teams[t.Name] = id
		rep.Teams++
		for _, p := range t.Players {
			if err := db.AddRosterPlayer(ctx, tx, id, p); err != nil {
				return nil, err
			}
			rep.Players++
		}
	}
	return teams, nil
}

func (s *Seeder) seedSources(ctx context.Context, tx *sql.Tx, leagueID, seasonID int64, sc SeasonConfig, teams map[string]int64, rep *Report, sk skips) error {
	rubricPath, ok := s.source(sc.PointValues, sk)
	if !ok {
		return nil
	}
	rubric, err := LoadRubric(rubricPath, sk)
	if err != nil {
		return err
	}
	known := make(map[string]bool, len(rubric))
	for _, pv := range rubric {
		pv.SeasonID = seasonID
		if err := db.UpsertPointValue(ctx, tx, pv); err != nil {
			return err
		}
		known[pv.EventName] = true
		rep.PointValues++
	}

	scoresPath, ok := s.source(sc.Scores, sk)
	if !ok {
		return nil
	}
	cells, err := LoadEventCells(scoresPath, known, sk)
	if err != nil {
		return err
	}
	for _, c := range cells {
		err := db.UpsertPlayerEvent(ctx, tx, models.PlayerEventScore{
			SeasonID: seasonID, WeekNumber: c.Week, PlayerName: c.Player, EventName: c.Event, Value: c.Value,
		})
		if err != nil {
			return err
		}
		rep.Events++
	}

	bonuses, err := LoadBonusCells(scoresPath, sk)
	if err != nil {
		return err
	}
	unknown := map[string]bool{}
	for _, b := range bonuses {
		teamID, _, ok := s.opt.File.ResolveTeam(b.Column, teams)
		if !ok {
			if !unknown[b.Column] {
				unknown[b.Column] = true
				sk.add(SkipUnknownTeam)
				s.log.Warn("bonus column does not match any team", zap.String("column", b.Column), zap.String("season", sc.Label))
			}
			continue
		}
		if err := db.UpsertWeeklyBonus(ctx, tx, models.WeeklyQuestionScore{TeamID: teamID, WeekNumber: b.Week, Points: b.Points}); err != nil {
			return err
		}
		rep.Bonuses++
	}

	questions, err := LoadQuestions(scoresPath, sk)
	if err != nil {
		return err
	}
	for _, q := range questions {
		qid, err := db.UpsertWeeklyQuestion(ctx, tx, models.WeeklyQuestion{
			LeagueID: leagueID, SeasonID: seasonID, WeekNumber: q.Week,
			Question: q.Question, CorrectAnswer: q.CorrectAnswer, IsVoided: q.IsVoided,
		})
		if err != nil {
			return err
		}
		rep.Questions++
		cols := make([]string, 0, len(q.Answers))
		for col := range q.Answers {
			cols = append(cols, col)
		}
		sort.Strings(cols)
		for _, col := range cols {
			teamID, _, ok := s.opt.File.ResolveTeam(col, teams)
			if !ok {
				sk.add(SkipUnknownTeam)
				continue
			}
			if err := db.UpsertQuestionAnswer(ctx, tx, qid, teamID, q.Answers[col]); err != nil {
				return err
			}
		}
	}
	return nil
}

// source разрешает путь относительно DATA_DIR; отсутствующий файл считается пропуском, а не ошибкой.
func (s *Seeder) source(rel string, sk skips) (string, bool) {
	if rel == "" {
		return "", false
	}
	p := rel
	if !filepath.IsAbs(p) {
		p = filepath.Join(s.opt.DataDir, rel)
	}
	if _, err := os.Stat(p); errors.Is(err, os.ErrNotExist) {
		sk.add(SkipMissingSource)
		s.log.Warn("seed source is missing", zap.String("path", p))
		return "", false
	}
	return p, true
}
