package export

import (
	"bytes"
	"testing"

	"github.com/ischultz503/Survivor/internal/models"
	"github.com/ischultz503/Survivor/internal/scoring"
	"github.com/xuri/excelize/v2"
)

func TestWriteDashboard(t *testing.T) {
	events := []models.ScoredEvent{
		{WeekNumber: 1, PlayerName: "Alice", EventName: "Vote Out", Value: 1, Points: 5, Category: models.CategoryScoring},
		{WeekNumber: 1, PlayerName: "Alice", EventName: "Idol Found", Value: 2, Points: 3, Category: models.CategoryScoring},
	}
	standings := []models.Standing{{Rank: 1, TeamID: 1, TeamName: "Team A", PlayerPoints: 11, BonusPoints: 4, TotalPoints: 15}}
	d := scoring.BuildDashboard(models.Team{ID: 1, Name: "Team A"}, events,
		[]models.WeeklyQuestionScore{{TeamID: 1, WeekNumber: 1, Points: 4}}, standings)

	var buf bytes.Buffer
	if err := WriteDashboard(&buf, d); err != nil {
		t.Fatal(err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = f.Close() }()

	want := []string{"Weekly", "Players", "Events", "Standings"}
	got := f.GetSheetList()
	if len(got) != len(want) {
		t.Fatalf("листы: %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("лист %d: ожидали %s, получили %s", i, want[i], got[i])
		}
	}

	v, err := f.GetCellValue("Weekly", "D2")
	if err != nil || v != "15" {
		t.Fatalf("Weekly!D2 = %q (%v), ожидали 15", v, err)
	}
	rows, err := f.GetRows("Events")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 || rows[1][2] != "Idol Found" {
		t.Fatalf("Events: %v", rows)
	}
}

func TestDashboardFilename(t *testing.T) {
	got := DashboardFilename("Schultz & Big P", "Bi-coastal Elites", "Season 49")
	if got != "Schultz & Big P - Bi-coastal Elites - Season 49.xlsx" {
		t.Fatalf("имя файла: %q", got)
	}
	if got := DashboardFilename("A/B", "", " S "); got != "A_B - - - S.xlsx" {
		t.Fatalf("имя файла: %q", got)
	}
}

func TestColumnName(t *testing.T) {
	for n, want := range map[int]string{1: "A", 26: "Z", 27: "AA", 53: "BA"} {
		if got := columnName(n); got != want {
			t.Fatalf("columnName(%d) = %s, ожидали %s", n, got, want)
		}
	}
}
