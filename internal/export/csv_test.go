package export

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"workcal/internal/core"
	"workcal/internal/services"
)

func buildView(t *testing.T, holidays, notes map[string]string) *services.MonthView {
	t.Helper()
	cfg := core.Config{HoursPerDay: 8, WorkDays: []int{1, 2, 3, 4, 5}, Country: "INDIA"}
	today := core.NewDate(2024, time.February, 1)
	grid := core.GenerateGrid(2024, time.February, today, cfg, holidays, notes)
	return &services.MonthView{
		Year:  2024,
		Month: 2,
		Days:  grid,
		Stats: core.AggregateMonth(grid, cfg, today),
	}
}

func TestWriteMonthReport(t *testing.T) {
	view := buildView(t,
		map[string]string{"2024-02-14": "Founders Day"},
		map[string]string{"2024-02-02": "deploy, then standup"})

	var buf strings.Builder
	if err := WriteMonthReport(&buf, view, 8); err != nil {
		t.Fatalf("write: %v", err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, "Month Report: February 2024\n") {
		t.Fatalf("missing report title:\n%s", out)
	}
	if !strings.Contains(out, "Total Working Days: 20") {
		t.Fatalf("missing working days line:\n%s", out)
	}
	if !strings.Contains(out, "Total Working Hours: 160") {
		t.Fatalf("missing working hours line:\n%s", out)
	}

	// Parse everything after the blank line back as CSV.
	lines := strings.SplitN(out, "\n\n", 2)
	if len(lines) != 2 {
		t.Fatalf("missing blank separator line:\n%s", out)
	}
	records, err := csv.NewReader(strings.NewReader(lines[1])).ReadAll()
	if err != nil {
		t.Fatalf("reparse csv: %v", err)
	}

	// Header row plus one row per day of February 2024.
	if len(records) != 1+29 {
		t.Fatalf("rows = %d, want 30", len(records))
	}
	if got := strings.Join(records[0], ","); got != "Date,Day,Type,Holiday Name,Note,Working Hours" {
		t.Fatalf("header = %q", got)
	}

	byDate := map[string][]string{}
	for _, rec := range records[1:] {
		byDate[rec[0]] = rec
	}

	feb1 := byDate["2024-02-01"]
	if feb1[1] != "Thu" || feb1[2] != "WORKDAY" || feb1[5] != "8" {
		t.Fatalf("feb1 = %v", feb1)
	}
	feb14 := byDate["2024-02-14"]
	if feb14[2] != "HOLIDAY" || feb14[3] != "Founders Day" || feb14[5] != "0" {
		t.Fatalf("feb14 = %v", feb14)
	}
	feb2 := byDate["2024-02-02"]
	if feb2[4] != "deploy, then standup" {
		t.Fatalf("comma in note not preserved: %v", feb2)
	}
	feb3 := byDate["2024-02-03"]
	if feb3[2] != "WEEKEND" || feb3[5] != "0" {
		t.Fatalf("feb3 = %v", feb3)
	}

	if _, ok := byDate["2024-01-29"]; ok {
		t.Fatalf("padding day leaked into the report")
	}
}

func TestWriteMonthReportFractionalHours(t *testing.T) {
	view := buildView(t, nil, nil)

	var buf strings.Builder
	if err := WriteMonthReport(&buf, view, 7.5); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !strings.Contains(buf.String(), ",7.5\n") {
		t.Fatalf("fractional hours missing:\n%s", buf.String())
	}
}

func TestReportFilename(t *testing.T) {
	if got := ReportFilename(2024, time.February); got != "workcal-2024-02.csv" {
		t.Fatalf("filename = %q", got)
	}
}
