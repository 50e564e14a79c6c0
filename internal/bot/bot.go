// Package bot — телеграм-бот только для чтения: таблица лиги, очки и выбывания команды.
package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/ischultz503/Survivor/internal/ctxutil"
	"github.com/ischultz503/Survivor/internal/metrics"
	"github.com/ischultz503/Survivor/internal/models"
	"github.com/ischultz503/Survivor/internal/observability"
	"github.com/ischultz503/Survivor/internal/scoring"
	"github.com/ischultz503/Survivor/internal/service"
	"github.com/ischultz503/Survivor/internal/tg"
	"go.uber.org/zap"
)

type Service interface {
	ListLeagues(ctx context.Context) ([]string, error)
	ListSeasons(ctx context.Context) ([]string, error)
	Standings(ctx context.Context, league, season string) ([]models.Standing, error)
	FindTeam(ctx context.Context, sel service.Selection) (*models.Team, error)
	WeeklyPoints(ctx context.Context, teamID int64) ([]scoring.WeekTotal, error)
	Eliminations(ctx context.Context, teamID int64) ([]models.ScoredEvent, error)
}

type Bot struct {
	svc     Service
	log     *zap.Logger
	limiter *chatLimiter
}

func New(svc Service, log *zap.Logger) *Bot {
	if log == nil {
		log = zap.NewNop()
	}
	return &Bot{svc: svc, log: log, limiter: newChatLimiter()}
}

const helpText = `Fantasy Survivor bot (read-only).
/leagues - list leagues
/seasons - list seasons
/standings <league> | <season>
/team <league> | <season> | <team> - weekly totals
/eliminations <league> | <season> | <team>`

// Run читает апдейты до отмены ctx. Каждая команда обрабатывается в своей горутине,
// команды одного чата — последовательно.
func (b *Bot) Run(ctx context.Context, api *tgbotapi.BotAPI) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := api.GetUpdatesChan(u)
	b.log.Info("bot started", zap.String("username", api.Self.UserName))

	for {
		select {
		case <-ctx.Done():
			api.StopReceivingUpdates()
			return
		case upd, ok := <-updates:
			if !ok {
				return
			}
			if upd.Message == nil || !upd.Message.IsCommand() {
				continue
			}
			metrics.BotUpdates.Inc()
			go b.handle(ctx, api, upd.Message)
		}
	}
}

func (b *Bot) handle(ctx context.Context, api tg.Sender, msg *tgbotapi.Message) {
	unlock := b.limiter.lock(msg.Chat.ID)
	defer unlock()

	ctx = ctxutil.WithOp(ctx, "bot /"+msg.Command())
	text := b.Answer(ctx, msg.Command(), msg.CommandArguments())
	if _, err := tg.Send(api, tgbotapi.NewMessage(msg.Chat.ID, text)); err != nil {
		b.log.Warn("send failed", zap.Int64("chat_id", msg.Chat.ID), zap.Error(err))
	}
}

// Answer формирует ответ на команду. args — аргументы через "|".
func (b *Bot) Answer(ctx context.Context, command, args string) string {
	parts := splitArgs(args)
	var (
		out string
		err error
	)
	switch command {
	case "start", "help":
		return helpText
	case "leagues":
		out, err = b.list(ctx, "Leagues", b.svc.ListLeagues)
	case "seasons":
		out, err = b.list(ctx, "Seasons", b.svc.ListSeasons)
	case "standings":
		if len(parts) != 2 {
			return "Usage: /standings <league> | <season>"
		}
		out, err = b.standings(ctx, parts[0], parts[1])
	case "team":
		if len(parts) != 3 {
			return "Usage: /team <league> | <season> | <team>"
		}
		out, err = b.team(ctx, service.Selection{League: parts[0], Season: parts[1], Team: parts[2]})
	case "eliminations":
		if len(parts) != 3 {
			return "Usage: /eliminations <league> | <season> | <team>"
		}
		out, err = b.eliminations(ctx, service.Selection{League: parts[0], Season: parts[1], Team: parts[2]})
	default:
		return "Unknown command. Use /help"
	}

	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return "Not found: " + strings.TrimPrefix(err.Error(), service.ErrNotFound.Error()+": ")
		}
		op, ok := ctxutil.Op(ctx)
		if !ok {
			op = "bot /" + command
		}
		b.log.Error("bot command failed", zap.String("op", op), zap.Error(err))
		metrics.HandlerErrors.Inc()
		observability.CaptureOp(op, err)
		return "Something went wrong, please try again later."
	}
	return out
}

func (b *Bot) list(ctx context.Context, title string, fn func(context.Context) ([]string, error)) (string, error) {
	items, err := fn(ctx)
	if err != nil {
		return "", err
	}
	if len(items) == 0 {
		return title + ": none yet", nil
	}
	return title + ":\n" + strings.Join(items, "\n"), nil
}

func (b *Bot) standings(ctx context.Context, league, season string) (string, error) {
	rows, err := b.svc.Standings(ctx, league, season)
	if err != nil {
		return "", err
	}
	if len(rows) == 0 {
		return fmt.Sprintf("%s, %s: no teams", league, season), nil
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s, %s\n", league, season)
	for _, r := range rows {
		fmt.Fprintf(&sb, "%d. %s - %s (players %s, bonus %s)\n",
			r.Rank, r.TeamName, formatPoints(r.TotalPoints), formatPoints(r.PlayerPoints), formatPoints(r.BonusPoints))
	}
	return strings.TrimRight(sb.String(), "\n"), nil
}

func (b *Bot) team(ctx context.Context, sel service.Selection) (string, error) {
	t, err := b.svc.FindTeam(ctx, sel)
	if err != nil {
		return "", err
	}
	weeks, err := b.svc.WeeklyPoints(ctx, t.ID)
	if err != nil {
		return "", err
	}
	if len(weeks) == 0 {
		return t.Name + ": no scored weeks yet", nil
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s (%s, %s)\n", t.Name, sel.League, sel.Season)
	for _, w := range weeks {
		fmt.Fprintf(&sb, "Week %d: %s (bonus %s), total %s\n",
			w.WeekNumber, formatPoints(w.WeekTotal), formatPoints(w.BonusPoints), formatPoints(w.CumulativeTotal))
	}
	return strings.TrimRight(sb.String(), "\n"), nil
}

func (b *Bot) eliminations(ctx context.Context, sel service.Selection) (string, error) {
	t, err := b.svc.FindTeam(ctx, sel)
	if err != nil {
		return "", err
	}
	rows, err := b.svc.Eliminations(ctx, t.ID)
	if err != nil {
		return "", err
	}
	if len(rows) == 0 {
		return t.Name + ": no eliminations", nil
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s eliminations\n", t.Name)
	for _, e := range rows {
		fmt.Fprintf(&sb, "Week %d: %s - %s\n", e.WeekNumber, e.PlayerName, e.EventName)
	}
	return strings.TrimRight(sb.String(), "\n"), nil
}

func splitArgs(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	raw := strings.Split(s, "|")
	out := make([]string, 0, len(raw))
	for _, p := range raw {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}
