package tg

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/ischultz503/Survivor/internal/observability"
)

var systemMarkers = []string{"429", "Too Many Requests", "502", "503", "timeout", "connection reset"}

// isSystemErr: 5xx, 429 и таймауты уходят в Sentry; ошибки валидации (400, chat not found) — нет.
func isSystemErr(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	for _, m := range systemMarkers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}

// Sender — то, что нужно от *tgbotapi.BotAPI для отправки.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

func Send(bot Sender, msg tgbotapi.Chattable) (tgbotapi.Message, error) {
	m, err := bot.Send(msg)
	if isSystemErr(err) {
		observability.CaptureOp("telegram send", err)
	}
	return m, err
}
