// Package export renders month reports for download.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"workcal/internal/core"
	"workcal/internal/services"
)

var reportHeader = []string{"Date", "Day", "Type", "Holiday Name", "Note", "Working Hours"}

// WriteMonthReport writes the CSV month report: a few summary lines, a blank
// line, then one row per current-month day. Padding cells are skipped. CSV
// quoting handles commas and newlines in notes.
func WriteMonthReport(w io.Writer, view *services.MonthView, hoursPerDay float64) error {
	cw := csv.NewWriter(w)

	month := time.Month(view.Month)
	summary := [][]string{
		{fmt.Sprintf("Month Report: %s %d", month.String(), view.Year)},
		{fmt.Sprintf("Total Working Days: %d", view.Stats.TotalWorkingDays)},
		{fmt.Sprintf("Total Working Hours: %s", formatHours(view.Stats.TotalWorkingHours))},
		{""},
		reportHeader,
	}
	for _, line := range summary {
		if err := cw.Write(line); err != nil {
			return fmt.Errorf("write report header: %w", err)
		}
	}

	for _, d := range view.Days {
		if !d.IsCurrentMonth {
			continue
		}

		var holiday, note string
		if d.HolidayName != nil {
			holiday = *d.HolidayName
		}
		if d.Note != nil {
			note = *d.Note
		}

		hours := 0.0
		if d.DayType == core.DayWorkday {
			hours = hoursPerDay
		}

		row := []string{
			d.Date.Key(),
			d.Date.Weekday().String()[:3],
			string(d.DayType),
			holiday,
			note,
			formatHours(hours),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write report row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush report: %w", err)
	}
	return nil
}

// ReportFilename names the downloaded report for one month.
func ReportFilename(year int, month time.Month) string {
	return fmt.Sprintf("workcal-%04d-%02d.csv", year, int(month))
}

// formatHours renders whole hours without a decimal point.
func formatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64)
}
