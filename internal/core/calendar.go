package core

import "time"

// GridSize is the fixed cell count of a month view: six full Monday-first
// weeks, padded with adjacent-month days.
const GridSize = 42

// ClassifyDay derives the full per-day record for one date. The holiday
// override dominates the weekday-based classification; notes are independent
// of it. First/last-day flags are only set on cells of the requested month
// and coexist with a holiday override on the same date.
func ClassifyDay(date, today Date, cfg Config, holidays, notes map[string]string, isCurrentMonth bool) DayStat {
	key := date.Key()

	var holidayName, note *string
	if name, ok := holidays[key]; ok {
		holidayName = &name
	}
	if body, ok := notes[key]; ok {
		note = &body
	}

	var dayType DayType
	switch {
	case holidayName != nil:
		dayType = DayHoliday
	case !cfg.IsWorkday(date.Weekday()):
		dayType = DayWeekend
	default:
		dayType = DayWorkday
	}

	return DayStat{
		Date:           date,
		DayType:        dayType,
		IsCurrentMonth: isCurrentMonth,
		IsToday:        key == today.Key(),
		IsFirstDay:     isCurrentMonth && date.Day() == 1,
		IsLastDay:      isCurrentMonth && date.Day() == DaysInMonth(date.Year(), date.Month()),
		HolidayName:    holidayName,
		Note:           note,
		Quote:          QuoteForDate(date),
	}
}

// GenerateGrid produces the 42-cell grid for a month: the tail of the
// previous month up to the first Monday column, every day of the requested
// month, then the head of the next month. Output depends only on the
// arguments, so a fixed today yields byte-identical grids.
func GenerateGrid(year int, month time.Month, today Date, cfg Config, holidays, notes map[string]string) []DayStat {
	first := NewDate(year, month, 1)

	// Monday lands in column zero regardless of locale conventions.
	startOffset := (int(first.Weekday()) + 6) % 7

	grid := make([]DayStat, 0, GridSize)

	for i := 0; i < startOffset; i++ {
		d := NewDate(year, month, 1-(startOffset-i))
		grid = append(grid, ClassifyDay(d, today, cfg, holidays, notes, false))
	}

	for day := 1; day <= DaysInMonth(year, month); day++ {
		d := NewDate(year, month, day)
		grid = append(grid, ClassifyDay(d, today, cfg, holidays, notes, true))
	}

	for day := 1; len(grid) < GridSize; day++ {
		d := NewDate(year, month+1, day)
		grid = append(grid, ClassifyDay(d, today, cfg, holidays, notes, false))
	}

	return grid
}
