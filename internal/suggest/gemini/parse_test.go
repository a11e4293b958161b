package gemini

import (
	"strings"
	"testing"
	"time"
)

func TestParseHolidaysKeepsWellFormedEntries(t *testing.T) {
	raw := `[
		{"date": "2024-02-14", "name": "Founders Day"},
		{"date": "2024-02-19", "name": "  Shivaji Jayanti  "}
	]`
	holidays, dropped, err := parseHolidays([]byte(raw), 2024, time.February)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if dropped != 0 {
		t.Fatalf("dropped = %d", dropped)
	}
	if len(holidays) != 2 {
		t.Fatalf("len = %d", len(holidays))
	}
	if holidays[1].Name != "Shivaji Jayanti" {
		t.Fatalf("name not trimmed: %q", holidays[1].Name)
	}
}

func TestParseHolidaysFiltersUntrustedOutput(t *testing.T) {
	raw := `[
		{"date": "2024-02-14", "name": "Founders Day"},
		{"date": "2024-03-01", "name": "Wrong Month"},
		{"date": "2023-02-14", "name": "Wrong Year"},
		{"date": "14/02/2024", "name": "Bad Format"},
		{"date": "2024-02-30", "name": "No Such Day"},
		{"date": "2024-02-14", "name": "Duplicate Date"},
		{"date": "2024-02-20", "name": "   "}
	]`
	holidays, dropped, err := parseHolidays([]byte(raw), 2024, time.February)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(holidays) != 1 || holidays[0].Name != "Founders Day" {
		t.Fatalf("holidays = %v", holidays)
	}
	if dropped != 6 {
		t.Fatalf("dropped = %d, want 6", dropped)
	}
}

func TestParseHolidaysCapsNameLength(t *testing.T) {
	long := strings.Repeat("x", maxNameLen+50)
	raw := `[{"date": "2024-02-14", "name": "` + long + `"}]`
	holidays, _, err := parseHolidays([]byte(raw), 2024, time.February)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(holidays) != 1 || len(holidays[0].Name) != maxNameLen {
		t.Fatalf("name length = %d", len(holidays[0].Name))
	}
}

func TestParseHolidaysRejectsNonArray(t *testing.T) {
	for _, raw := range []string{``, `{}`, `"oops"`, `[{"date": 5}]`} {
		if _, _, err := parseHolidays([]byte(raw), 2024, time.February); err == nil {
			t.Fatalf("payload %q should fail", raw)
		}
	}
}

func TestParseHolidaysEmptyArray(t *testing.T) {
	holidays, dropped, err := parseHolidays([]byte(`[]`), 2024, time.February)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(holidays) != 0 || dropped != 0 {
		t.Fatalf("holidays=%v dropped=%d", holidays, dropped)
	}
}
