package scoring

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ischultz503/Survivor/internal/models"
)

// eliminationStems — основы названий событий выбывания из старых таблиц.
var eliminationStems = []string{"eliminat", "exits", "kicked off", "fire making", "rocks", "voluntar", "voted out"}

// ClassifyEvent определяет категорию события по названию. Применяется один раз, при описании рубрики,
// когда в источнике нет явной колонки Category.
func ClassifyEvent(name string) models.EventCategory {
	n := strings.ToLower(name)
	for _, stem := range eliminationStems {
		if strings.Contains(n, stem) {
			return models.CategoryElimination
		}
	}
	return models.CategoryScoring
}

var weekDigits = regexp.MustCompile(`\d+`)

// ParseWeek извлекает номер недели из подписи ("3", "Week 3", "3.0"). false — подпись без числа или < 1.
func ParseWeek(label string) (int, bool) {
	label = strings.TrimSpace(label)
	if f, err := strconv.ParseFloat(label, 64); err == nil {
		if f < 1 || f != float64(int(f)) {
			return 0, false
		}
		return int(f), true
	}
	m := weekDigits.FindString(label)
	if m == "" {
		return 0, false
	}
	n, err := strconv.Atoi(m)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}
