package scoring

import (
	"testing"

	"github.com/ischultz503/Survivor/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// рубрика: Vote Out=5, Idol Found=3
func ev(week int, player, event string, value float64) models.ScoredEvent {
	points := map[string]float64{"Vote Out": 5, "Idol Found": 3, "Voted Out": 0}
	cat := models.CategoryScoring
	if event == "Voted Out" {
		cat = models.CategoryElimination
	}
	return models.ScoredEvent{WeekNumber: week, PlayerName: player, EventName: event, Value: value, Points: points[event], Category: cat}
}

func TestWeeklyPoints_WithBonus(t *testing.T) {
	events := []models.ScoredEvent{
		ev(1, "Alice", "Vote Out", 1),
		ev(1, "Alice", "Idol Found", 2),
		ev(2, "Alice", "Vote Out", 0),
	}
	bonuses := []models.WeeklyQuestionScore{{TeamID: 1, WeekNumber: 1, Points: 4}}

	got := WeeklyPoints(events, bonuses)
	require.Len(t, got, 1, "неделя с нулевым значением не должна попадать в вывод")
	assert.Equal(t, 1, got[0].WeekNumber)
	assert.Equal(t, 11.0, got[0].PlayerPoints)
	assert.Equal(t, 4.0, got[0].BonusPoints)
	assert.Equal(t, 15.0, got[0].WeekTotal)
	assert.Equal(t, 15.0, got[0].CumulativeTotal)
}

func TestWeeklyPoints_Cumulative(t *testing.T) {
	events := []models.ScoredEvent{
		ev(3, "Bob", "Vote Out", 1),
		ev(1, "Alice", "Vote Out", 1),
		ev(2, "Alice", "Idol Found", 1),
	}
	got := WeeklyPoints(events, nil)
	require.Len(t, got, 3)
	for i, want := range []float64{5, 8, 13} {
		if got[i].CumulativeTotal != want {
			t.Fatalf("неделя %d: cumulative=%v, ожидали %v", got[i].WeekNumber, got[i].CumulativeTotal, want)
		}
	}
	// бонус за неделю без событий игроков строку не создаёт
	got = WeeklyPoints(events[:1], []models.WeeklyQuestionScore{{WeekNumber: 7, Points: 2}})
	require.Len(t, got, 1)
	assert.Equal(t, 3, got[0].WeekNumber)
}

func TestWeeklyPoints_Empty(t *testing.T) {
	got := WeeklyPoints(nil, []models.WeeklyQuestionScore{{WeekNumber: 1, Points: 4}})
	if len(got) != 0 {
		t.Fatalf("ожидали пустой результат, получили %+v", got)
	}
}

func TestPlayerWeeklyAndTotals(t *testing.T) {
	events := []models.ScoredEvent{
		ev(1, "Alice", "Vote Out", 1),
		ev(1, "Bob", "Idol Found", 1),
		ev(1, "Carl", "Idol Found", 1),
		ev(2, "Bob", "Vote Out", 2),
	}
	weekly := PlayerWeekly(events)
	require.Len(t, weekly, 4)
	assert.Equal(t, PlayerWeek{WeekNumber: 1, PlayerName: "Alice", Points: 5}, weekly[0])
	assert.Equal(t, "Bob", weekly[1].PlayerName, "при равных очках — по имени")
	assert.Equal(t, "Carl", weekly[2].PlayerName)
	assert.Equal(t, 2, weekly[3].WeekNumber)

	totals := PlayerTotals(weekly)
	require.Len(t, totals, 3)
	assert.Equal(t, PlayerTotal{PlayerName: "Bob", TotalPoints: 13}, totals[0])
	assert.Equal(t, PlayerTotal{PlayerName: "Alice", TotalPoints: 5}, totals[1])
	assert.Equal(t, PlayerTotal{PlayerName: "Carl", TotalPoints: 3}, totals[2])
}

func TestEventBreakdownAndEliminations(t *testing.T) {
	events := []models.ScoredEvent{
		ev(1, "Alice", "Vote Out", 1),
		ev(2, "Bob", "Idol Found", 1),
		ev(2, "Bob", "Voted Out", 1),
		ev(2, "Alice", "Vote Out", 0),
	}
	bd := EventBreakdown(events)
	require.Len(t, bd, 3)
	assert.Equal(t, 2, bd[0].WeekNumber)
	assert.Equal(t, "Idol Found", bd[0].EventName)
	assert.Equal(t, 3.0, bd[0].EventPoints)
	assert.Equal(t, "Voted Out", bd[1].EventName)
	assert.Equal(t, 1, bd[2].WeekNumber)

	elim := Eliminations(bd)
	require.Len(t, elim, 1)
	assert.Equal(t, "Bob", elim[0].PlayerName)
	assert.Equal(t, 0.0, elim[0].EventPoints)
}

func TestPlayerTrends(t *testing.T) {
	events := []models.ScoredEvent{
		ev(2, "Bob", "Vote Out", 1),
		ev(1, "Bob", "Idol Found", 1),
		ev(1, "Alice", "Vote Out", 1),
	}
	got := PlayerTrends(events, nil)
	require.Len(t, got, 3)
	assert.Equal(t, TrendPoint{PlayerName: "Alice", WeekNumber: 1, Total: 5, RollingTotal: 5}, got[0])
	assert.Equal(t, TrendPoint{PlayerName: "Bob", WeekNumber: 1, Total: 3, RollingTotal: 3}, got[1])
	assert.Equal(t, TrendPoint{PlayerName: "Bob", WeekNumber: 2, Total: 5, RollingTotal: 8}, got[2])

	only := PlayerTrends(events, []string{"Alice"})
	require.Len(t, only, 1)
	assert.Equal(t, "Alice", only[0].PlayerName)
}

func TestBuildBonusGrid(t *testing.T) {
	grid := BuildBonusGrid([]models.TeamBonus{
		{TeamName: "B", WeekNumber: 2, Points: 1},
		{TeamName: "A", WeekNumber: 2, Points: 3},
		{TeamName: "A", WeekNumber: 1, Points: 2},
	})
	require.Len(t, grid.Cells, 3)
	assert.Equal(t, BonusCell{TeamName: "A", WeekNumber: 1, Points: 2, Cumulative: 2}, grid.Cells[0])
	assert.Equal(t, BonusCell{TeamName: "A", WeekNumber: 2, Points: 3, Cumulative: 5}, grid.Cells[1])
	assert.Equal(t, map[string]float64{"A": 5, "B": 1}, grid.Totals)
}

func TestQuestionAccuracy(t *testing.T) {
	qs := []models.WeeklyQuestion{
		{WeekNumber: 1, Question: "Who wins immunity?", CorrectAnswer: "Alice, Bob", Answers: map[string]string{"T1": "Bob", "T2": "Carl"}},
		{WeekNumber: 2, Question: "Idol played?", CorrectAnswer: "Yes", Answers: map[string]string{"T1": " Yes ", "T2": "Yes"}},
		{WeekNumber: 3, Question: "Voided", CorrectAnswer: "X", IsVoided: true, Answers: map[string]string{"T2": "X"}},
	}
	got := QuestionAccuracy(qs, []string{"T2", "T1", "T3"})
	require.Len(t, got, 3)
	assert.Equal(t, TeamAccuracy{TeamName: "T1", Correct: 2, Total: 2, Accuracy: 1}, got[0])
	assert.Equal(t, TeamAccuracy{TeamName: "T2", Correct: 1, Total: 2, Accuracy: 0.5}, got[1])
	assert.Equal(t, TeamAccuracy{TeamName: "T3", Correct: 0, Total: 2, Accuracy: 0}, got[2])
}

func TestNormalizeAnswers(t *testing.T) {
	got := NormalizeAnswers(" Alice / Bob;Carl ,")
	assert.Equal(t, map[string]bool{"Alice": true, "Bob": true, "Carl": true}, got)
	assert.Empty(t, NormalizeAnswers("  "))
	assert.False(t, IsCorrect("", "Alice"))
}

func TestBuildDashboard(t *testing.T) {
	team := models.Team{ID: 1, Name: "Schultz & Big P"}
	events := []models.ScoredEvent{
		ev(1, "Alice", "Vote Out", 1),
		ev(1, "Alice", "Idol Found", 2),
		ev(2, "Alice", "Vote Out", 0),
	}
	// бонус недели без событий входит в Total, но не в Weekly
	bonuses := []models.WeeklyQuestionScore{{TeamID: 1, WeekNumber: 1, Points: 4}, {TeamID: 1, WeekNumber: 5, Points: 1}}

	d := BuildDashboard(team, events, bonuses, nil)
	assert.Equal(t, 16.0, d.Total)
	assert.Equal(t, 1, d.CurrentWeek)
	require.Len(t, d.Weekly, 1)
	assert.Equal(t, 15.0, d.Weekly[0].CumulativeTotal)
	require.Len(t, d.PlayerTotals, 1)
	assert.Equal(t, 11.0, d.PlayerTotals[0].TotalPoints)
	assert.Empty(t, d.Eliminations)

	empty := BuildDashboard(team, nil, nil, nil)
	assert.Equal(t, 0.0, empty.Total)
	assert.Equal(t, 0, empty.CurrentWeek)
	assert.NotNil(t, empty.BonusWeekly)
}

func TestParseWeek(t *testing.T) {
	cases := map[string]struct {
		n  int
		ok bool
	}{
		"3":       {3, true},
		"3.0":     {3, true},
		"Week 12": {12, true},
		" 7 ":     {7, true},
		"0":       {0, false},
		"-2":      {0, false},
		"2.5":     {0, false},
		"":        {0, false},
		"Finale":  {0, false},
	}
	for in, want := range cases {
		n, ok := ParseWeek(in)
		if n != want.n || ok != want.ok {
			t.Fatalf("ParseWeek(%q) = (%d,%v), ожидали (%d,%v)", in, n, ok, want.n, want.ok)
		}
	}
}

func TestClassifyEvent(t *testing.T) {
	for _, name := range []string{"Voted Out", "Eliminated", "Lost Fire Making", "Drew Rocks", "Voluntarily Quit", "Medically exits"} {
		if ClassifyEvent(name) != models.CategoryElimination {
			t.Fatalf("%q должно быть elimination", name)
		}
	}
	for _, name := range []string{"Vote Out", "Idol Found", "Immunity Win"} {
		if ClassifyEvent(name) != models.CategoryScoring {
			t.Fatalf("%q должно быть scoring", name)
		}
	}
}
