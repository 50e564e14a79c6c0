package scoring

import (
	"cmp"
	"regexp"
	"slices"
	"strings"

	"github.com/ischultz503/Survivor/internal/models"
)

type TeamAccuracy struct {
	TeamName string  `json:"team_name"`
	Correct  int     `json:"correct"`
	Total    int     `json:"total"`
	Accuracy float64 `json:"accuracy"`
}

var answerSep = regexp.MustCompile(`[,/;]`)

// NormalizeAnswers разбивает правильный ответ на допустимые варианты ("A, B" -> {A, B}).
func NormalizeAnswers(s string) map[string]bool {
	out := map[string]bool{}
	for _, p := range answerSep.Split(s, -1) {
		if p = strings.TrimSpace(p); p != "" {
			out[p] = true
		}
	}
	if len(out) == 0 && strings.TrimSpace(s) != "" {
		out[strings.TrimSpace(s)] = true
	}
	return out
}

// IsCorrect — ответ команды совпадает с одним из правильных вариантов.
func IsCorrect(answer, correct string) bool {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return false
	}
	return NormalizeAnswers(correct)[answer]
}

// QuestionAccuracy — доля правильных ответов каждой команды по неаннулированным вопросам.
// Вопрос без ответа команды считается неправильным.
func QuestionAccuracy(questions []models.WeeklyQuestion, teams []string) []TeamAccuracy {
	total := 0
	correct := map[string]int{}
	for _, q := range questions {
		if q.IsVoided {
			continue
		}
		total++
		for _, team := range teams {
			if IsCorrect(q.Answers[team], q.CorrectAnswer) {
				correct[team]++
			}
		}
	}

	out := make([]TeamAccuracy, 0, len(teams))
	for _, team := range teams {
		ta := TeamAccuracy{TeamName: team, Correct: correct[team], Total: total}
		if total > 0 {
			ta.Accuracy = float64(ta.Correct) / float64(total)
		}
		out = append(out, ta)
	}
	slices.SortFunc(out, func(a, b TeamAccuracy) int {
		if c := cmp.Compare(b.Accuracy, a.Accuracy); c != 0 {
			return c
		}
		return cmp.Compare(a.TeamName, b.TeamName)
	})
	return out
}
