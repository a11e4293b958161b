package core

import (
	"errors"
	"time"
)

const (
	DayWorkday DayType = "WORKDAY"
	DayWeekend DayType = "WEEKEND"
	DayHoliday DayType = "HOLIDAY"
)

// DateKeyLayout is the canonical YYYY-MM-DD serialization used as the join
// key between dates and the override maps.
const DateKeyLayout = "2006-01-02"

type (
	DayType string

	Date struct {
		time.Time
	}

	// Config drives classification and hour totals. WorkDays holds weekday
	// indices (0=Sunday .. 6=Saturday, matching time.Weekday). Country is
	// only consumed by the holiday suggester, never by the engine.
	Config struct {
		HoursPerDay float64 `json:"hoursPerDay"`
		WorkDays    []int   `json:"workDays"`
		Country     string  `json:"country"`
	}

	// Holiday is one suggested or user-entered holiday entry.
	Holiday struct {
		Date string `json:"date"` // date-key, YYYY-MM-DD
		Name string `json:"name"`
	}

	// DayStat is one cell of the 42-cell month grid. HolidayName and Note
	// are nil when no override exists for the date; an empty string is a
	// valid stored value and must stay distinguishable from absence.
	DayStat struct {
		Date           Date    `json:"date"`
		DayType        DayType `json:"dayType"`
		IsCurrentMonth bool    `json:"isCurrentMonth"`
		IsToday        bool    `json:"isToday"`
		IsFirstDay     bool    `json:"isFirstDay"`
		IsLastDay      bool    `json:"isLastDay"`
		HolidayName    *string `json:"holidayName,omitempty"`
		Note           *string `json:"note,omitempty"`
		Quote          string  `json:"quote"`
	}

	MonthStats struct {
		TotalDays            int     `json:"totalDays"`
		TotalWorkingDays     int     `json:"totalWorkingDays"`
		RemainingWorkingDays int     `json:"remainingWorkingDays"`
		TotalHolidays        int     `json:"totalHolidays"`
		TotalWeekendDays     int     `json:"totalWeekendDays"`
		TotalWorkingHours    float64 `json:"totalWorkingHours"`
	}
)

var ErrInvalidDateKey = errors.New("invalid date key")

// NewDate creates a Date from year, month, day. Out-of-range values are
// normalized the way time.Date normalizes them, so NewDate(2024, 2, 0) is
// the last day of January 2024.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Today truncates a wall-clock instant to its local calendar date. The
// result is the reference "today" and must be captured once per computation.
func Today(now time.Time) Date {
	return NewDate(now.Year(), now.Month(), now.Day())
}

// Key renders the canonical YYYY-MM-DD date-key.
func (d Date) Key() string {
	return d.Format(DateKeyLayout)
}

// ParseDateKey parses a canonical YYYY-MM-DD date-key.
func ParseDateKey(key string) (Date, error) {
	t, err := time.Parse(DateKeyLayout, key)
	if err != nil {
		return Date{}, ErrInvalidDateKey
	}
	return Date{Time: t}, nil
}

// AddDays returns the date shifted by n calendar days.
func (d Date) AddDays(n int) Date {
	return Date{Time: d.AddDate(0, 0, n)}
}

// DaysInMonth returns the day count of a year/month, leap years included.
func DaysInMonth(year int, month time.Month) int {
	// Day zero of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MarshalJSON renders the date as its date-key string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Key() + `"`), nil
}

// UnmarshalJSON parses a date-key string.
func (d *Date) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return ErrInvalidDateKey
	}
	parsed, err := ParseDateKey(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// IsWorkday reports whether the weekday is in the configured work-days set.
func (c Config) IsWorkday(weekday time.Weekday) bool {
	for _, wd := range c.WorkDays {
		if wd == int(weekday) {
			return true
		}
	}
	return false
}

func (t DayType) Valid() bool {
	switch t {
	case DayWorkday, DayWeekend, DayHoliday:
		return true
	}
	return false
}
