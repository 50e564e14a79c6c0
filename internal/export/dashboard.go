package export

import (
	"fmt"
	"io"

	"github.com/ischultz503/Survivor/internal/scoring"
	"github.com/xuri/excelize/v2"
)

type sheetDef struct {
	title  string
	header []any
	rows   [][]any
}

func dashboardSheets(d scoring.Dashboard) []sheetDef {
	weekly := sheetDef{title: "Weekly", header: []any{"Week", "Player Points", "Bonus Points", "Week Total", "Cumulative"}}
	for _, w := range d.Weekly {
		weekly.rows = append(weekly.rows, []any{w.WeekNumber, w.PlayerPoints, w.BonusPoints, w.WeekTotal, w.CumulativeTotal})
	}

	players := sheetDef{title: "Players", header: []any{"Player", "Total Points"}}
	for _, p := range d.PlayerTotals {
		players.rows = append(players.rows, []any{p.PlayerName, p.TotalPoints})
	}

	events := sheetDef{title: "Events", header: []any{"Week", "Player", "Event", "Value", "Points", "Event Points", "Category"}}
	for _, e := range d.EventBreakdown {
		events.rows = append(events.rows, []any{e.WeekNumber, e.PlayerName, e.EventName, e.Value, e.Points, e.EventPoints, string(e.Category)})
	}

	standings := sheetDef{title: "Standings", header: []any{"Rank", "Team", "Player Points", "Bonus Points", "Total"}}
	for _, s := range d.Standings {
		standings.rows = append(standings.rows, []any{s.Rank, s.TeamName, s.PlayerPoints, s.BonusPoints, s.TotalPoints})
	}
	return []sheetDef{weekly, players, events, standings}
}

// DashboardWorkbook собирает книгу с листами Weekly, Players, Events, Standings.
func DashboardWorkbook(d scoring.Dashboard) (*excelize.File, error) {
	f := excelize.NewFile()
	for i, s := range dashboardSheets(d) {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", s.title); err != nil {
				_ = f.Close()
				return nil, fmt.Errorf("rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(s.title); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("new sheet: %w", err)
		}

		if err := f.SetSheetRow(s.title, "A1", &s.header); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("%s header: %w", s.title, err)
		}
		for r, row := range s.rows {
			cell := fmt.Sprintf("A%d", r+2)
			if err := f.SetSheetRow(s.title, cell, &row); err != nil {
				_ = f.Close()
				return nil, fmt.Errorf("%s %s: %w", s.title, cell, err)
			}
		}
		if err := ApplyDefaultFormatting(f, s.title); err != nil {
			_ = f.Close()
			return nil, err
		}
	}
	return f, nil
}

// WriteDashboard пишет книгу в w (HTTP-ответ, файл для бота).
func WriteDashboard(w io.Writer, d scoring.Dashboard) error {
	f, err := DashboardWorkbook(d)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	return f.Write(w)
}
