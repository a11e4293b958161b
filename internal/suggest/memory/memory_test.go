package memory

import (
	"context"
	"testing"
	"time"

	"workcal/internal/core"
)

func TestFetchHolidaysFixtures(t *testing.T) {
	f := New()
	f.Add("india", 2024, time.February,
		core.Holiday{Date: "2024-02-19", Name: "Shivaji Jayanti"})

	// Country match is case-insensitive.
	got, err := f.FetchHolidays(context.Background(), "INDIA", 2024, time.February)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Shivaji Jayanti" {
		t.Fatalf("got = %v", got)
	}

	empty, err := f.FetchHolidays(context.Background(), "INDIA", 2024, time.March)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("unknown month should be empty, got %v", empty)
	}
}
