package seed

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/ischultz503/Survivor/internal/models"
	"github.com/ischultz503/Survivor/internal/scoring"
	"github.com/xuri/excelize/v2"
)

const (
	SheetScores    = "PointsScored_Survivor"
	SheetBonus     = "Weekly_Pick_Scores"
	SheetQuestions = "Weekly_Questions"
	SheetRubric    = "PointValues_Survivor"
)

// причины пропуска строк (метка survivor_seed_skipped_rows_total{reason})
const (
	SkipUnknownTeam   = "unknown_team"
	SkipBadWeek       = "bad_week"
	SkipBadValue      = "bad_value"
	SkipUnscoredEvent = "unscored_event"
	SkipBadCategory   = "bad_category"
	SkipMissingSource = "missing_source"
)

var errNoSheet = errors.New("sheet not found")

type skips map[string]int

func (s skips) add(reason string) { s[reason]++ }

type EventCell struct {
	Week   int
	Player string
	Event  string
	Value  float64
}

type BonusCell struct {
	Week   int
	Column string
	Points float64
}

type QuestionRow struct {
	Week          int
	Question      string
	CorrectAnswer string
	IsVoided      bool
	Answers       map[string]string // заголовок колонки -> ответ
}

// readSheet возвращает строки листа; errNoSheet, если листа нет.
func readSheet(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	idx, err := f.GetSheetIndex(sheet)
	if err != nil {
		return nil, err
	}
	if idx < 0 {
		return nil, fmt.Errorf("%s in %s: %w", sheet, filepath.Base(path), errNoSheet)
	}
	return f.GetRows(sheet)
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	return r.ReadAll()
}

// headerIndex: имя колонки (без регистра и пробелов по краям) -> индекс.
func headerIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return idx
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// thousandsGrouped — "1,234" или "-12,345.5"; запятая в любом другом месте ("1,5") — плохое значение.
var thousandsGrouped = regexp.MustCompile(`^[-+]?\d{1,3}(,\d{3})+(\.\d+)?$`)

func parseNumber(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	if strings.Contains(s, ",") {
		if !thousandsGrouped.MatchString(s) {
			return 0, false
		}
		s = strings.ReplaceAll(s, ",", "")
	}
	f, err := strconv.ParseFloat(s, 64)
	return f, err == nil
}

// LoadRubric читает рубрику из CSV или листа PointValues_Survivor (Event, Points[, Category]).
// Дубликаты событий: побеждает последняя строка.
func LoadRubric(path string, sk skips) ([]models.PointValue, error) {
	var rows [][]string
	var err error
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		rows, err = readCSV(path)
	} else {
		rows, err = readSheet(path, SheetRubric)
	}
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	h := headerIndex(rows[0])
	evCol, ok1 := h["event"]
	ptCol, ok2 := h["points"]
	if !ok1 || !ok2 {
		return nil, fmt.Errorf("rubric %s: Event/Points columns required", filepath.Base(path))
	}
	catCol, hasCat := h["category"]
	if !hasCat {
		catCol = -1
	}

	var order []string
	byEvent := map[string]models.PointValue{}
	for _, row := range rows[1:] {
		event := cell(row, evCol)
		if event == "" {
			continue
		}
		points, ok := parseNumber(cell(row, ptCol))
		if !ok {
			sk.add(SkipBadValue)
			continue
		}
		category := scoring.ClassifyEvent(event)
		if raw := cell(row, catCol); raw != "" {
			c, err := models.ParseEventCategory(raw)
			if err != nil {
				sk.add(SkipBadCategory)
			} else {
				category = c
			}
		}
		if _, seen := byEvent[event]; !seen {
			order = append(order, event)
		}
		byEvent[event] = models.PointValue{EventName: event, Points: points, Category: category}
	}

	out := make([]models.PointValue, 0, len(order))
	for _, e := range order {
		out = append(out, byEvent[e])
	}
	return out, nil
}

// LoadEventCells читает лист PointsScored_Survivor (Player, Week, колонки событий).
// Берутся только события из рубрики и ненулевые значения.
func LoadEventCells(path string, rubric map[string]bool, sk skips) ([]EventCell, error) {
	rows, err := readSheet(path, SheetScores)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	header := rows[0]
	h := headerIndex(header)
	playerCol, ok1 := h["player"]
	weekCol, ok2 := h["week"]
	if !ok1 || !ok2 {
		return nil, fmt.Errorf("%s: Player/Week columns required", SheetScores)
	}

	type eventCol struct {
		idx  int
		name string
	}
	var cols []eventCol
	for i, name := range header {
		name = strings.TrimSpace(name)
		if i == playerCol || i == weekCol || name == "" {
			continue
		}
		if !rubric[name] {
			sk.add(SkipUnscoredEvent)
			continue
		}
		cols = append(cols, eventCol{idx: i, name: name})
	}

	var out []EventCell
	for _, row := range rows[1:] {
		player := cell(row, playerCol)
		if player == "" {
			continue
		}
		week, ok := scoring.ParseWeek(cell(row, weekCol))
		if !ok {
			sk.add(SkipBadWeek)
			continue
		}
		for _, c := range cols {
			raw := cell(row, c.idx)
			if raw == "" {
				continue
			}
			v, ok := parseNumber(raw)
			if !ok {
				sk.add(SkipBadValue)
				continue
			}
			if v == 0 {
				continue
			}
			out = append(out, EventCell{Week: week, Player: player, Event: c.name, Value: v})
		}
	}
	return out, nil
}

// LoadBonusCells читает Weekly_Pick_Scores (Week + колонка на команду). Пустые ячейки пропускаются.
func LoadBonusCells(path string, sk skips) ([]BonusCell, error) {
	rows, err := readSheet(path, SheetBonus)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	header := rows[0]
	weekCol, ok := headerIndex(header)["week"]
	if !ok {
		return nil, fmt.Errorf("%s: Week column required", SheetBonus)
	}

	var out []BonusCell
	for _, row := range rows[1:] {
		week, ok := scoring.ParseWeek(cell(row, weekCol))
		if !ok {
			if cell(row, weekCol) != "" {
				sk.add(SkipBadWeek)
			}
			continue
		}
		for i, col := range header {
			if i == weekCol || strings.TrimSpace(col) == "" {
				continue
			}
			raw := cell(row, i)
			if raw == "" {
				continue
			}
			v, ok := parseNumber(raw)
			if !ok {
				sk.add(SkipBadValue)
				continue
			}
			out = append(out, BonusCell{Week: week, Column: col, Points: v})
		}
	}
	return out, nil
}

var fixedQuestionCols = map[string]bool{"week": true, "question": true, "correct answer": true, "is voided": true}

// LoadQuestions читает Weekly_Questions (Week, Question, Correct Answer, Is Voided, колонки команд).
// Лист необязателен: его отсутствие — не ошибка.
func LoadQuestions(path string, sk skips) ([]QuestionRow, error) {
	rows, err := readSheet(path, SheetQuestions)
	if errors.Is(err, errNoSheet) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	header := rows[0]
	h := headerIndex(header)
	weekCol, ok1 := h["week"]
	qCol, ok2 := h["question"]
	if !ok1 || !ok2 {
		return nil, fmt.Errorf("%s: Week/Question columns required", SheetQuestions)
	}
	ansCol, hasAns := h["correct answer"]
	if !hasAns {
		ansCol = -1
	}
	voidCol, hasVoid := h["is voided"]
	if !hasVoid {
		voidCol = -1
	}

	var out []QuestionRow
	for _, row := range rows[1:] {
		question := cell(row, qCol)
		if question == "" {
			continue
		}
		week, ok := scoring.ParseWeek(cell(row, weekCol))
		if !ok {
			sk.add(SkipBadWeek)
			continue
		}
		qr := QuestionRow{
			Week:          week,
			Question:      question,
			CorrectAnswer: cell(row, ansCol),
			IsVoided:      parseFlag(cell(row, voidCol)),
			Answers:       map[string]string{},
		}
		for i, col := range header {
			if fixedQuestionCols[strings.ToLower(strings.TrimSpace(col))] || strings.TrimSpace(col) == "" {
				continue
			}
			if a := cell(row, i); a != "" {
				qr.Answers[col] = a
			}
		}
		out = append(out, qr)
	}
	return out, nil
}

func parseFlag(s string) bool {
	switch strings.ToLower(s) {
	case "1", "true", "yes", "y", "x", "void", "voided":
		return true
	}
	return false
}
