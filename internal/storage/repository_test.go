package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"workcal/internal/core"
)

func newTestRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "workcal.db"))
	if err != nil {
		t.Fatalf("open repository: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestHolidayUpsertAndRange(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if err := repo.UpsertHoliday(ctx, "2024-02-14", "Founders Day", SourceManual); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if err := repo.UpsertHoliday(ctx, "2024-03-01", "March Fest", SourceSuggested); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	// Range covering the padded February grid picks up the March entry too.
	got, err := repo.HolidaysInRange(ctx,
		core.NewDate(2024, time.January, 29), core.NewDate(2024, time.March, 10))
	if err != nil {
		t.Fatalf("range: %v", err)
	}
	if len(got) != 2 || got["2024-02-14"] != "Founders Day" || got["2024-03-01"] != "March Fest" {
		t.Fatalf("range = %v", got)
	}

	// Upsert replaces.
	if err := repo.UpsertHoliday(ctx, "2024-02-14", "Renamed", SourceManual); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	got, err = repo.HolidaysInRange(ctx,
		core.NewDate(2024, time.February, 1), core.NewDate(2024, time.February, 29))
	if err != nil {
		t.Fatalf("range: %v", err)
	}
	if got["2024-02-14"] != "Renamed" {
		t.Fatalf("after upsert = %v", got)
	}
}

func TestInsertHolidayIfAbsentPreservesManualEdits(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if err := repo.UpsertHoliday(ctx, "2024-02-14", "Founders Day", SourceManual); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	inserted, err := repo.InsertHolidayIfAbsent(ctx, "2024-02-14", "Valentine's Day")
	if err != nil {
		t.Fatalf("insert if absent: %v", err)
	}
	if inserted {
		t.Fatalf("existing entry must not be overwritten")
	}

	inserted, err = repo.InsertHolidayIfAbsent(ctx, "2024-02-19", "Shivaji Jayanti")
	if err != nil {
		t.Fatalf("insert if absent: %v", err)
	}
	if !inserted {
		t.Fatalf("absent entry should be inserted")
	}

	got, err := repo.HolidaysInRange(ctx,
		core.NewDate(2024, time.February, 1), core.NewDate(2024, time.February, 29))
	if err != nil {
		t.Fatalf("range: %v", err)
	}
	if got["2024-02-14"] != "Founders Day" || got["2024-02-19"] != "Shivaji Jayanti" {
		t.Fatalf("holidays = %v", got)
	}
}

func TestHasHolidaysForMonth(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	has, err := repo.HasHolidaysForMonth(ctx, 2024, time.February)
	if err != nil {
		t.Fatalf("has: %v", err)
	}
	if has {
		t.Fatalf("empty store reported holidays")
	}

	if err := repo.UpsertHoliday(ctx, "2024-02-14", "Founders Day", SourceManual); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	for _, tc := range []struct {
		month time.Month
		want  bool
	}{
		{time.February, true},
		{time.March, false},
	} {
		has, err := repo.HasHolidaysForMonth(ctx, 2024, tc.month)
		if err != nil {
			t.Fatalf("has: %v", err)
		}
		if has != tc.want {
			t.Fatalf("month %v: has = %v, want %v", tc.month, has, tc.want)
		}
	}
}

func TestNotesRoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if err := repo.UpsertNote(ctx, "2024-02-02", "standup moved"); err != nil {
		t.Fatalf("upsert note: %v", err)
	}
	// Empty body is a stored note, not an absent one.
	if err := repo.UpsertNote(ctx, "2024-02-03", ""); err != nil {
		t.Fatalf("upsert empty note: %v", err)
	}

	got, err := repo.NotesInRange(ctx,
		core.NewDate(2024, time.February, 1), core.NewDate(2024, time.February, 29))
	if err != nil {
		t.Fatalf("range: %v", err)
	}
	if len(got) != 2 || got["2024-02-02"] != "standup moved" {
		t.Fatalf("notes = %v", got)
	}
	if body, ok := got["2024-02-03"]; !ok || body != "" {
		t.Fatalf("empty note lost: %v", got)
	}

	if err := repo.DeleteNote(ctx, "2024-02-02"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	got, err = repo.NotesInRange(ctx,
		core.NewDate(2024, time.February, 1), core.NewDate(2024, time.February, 29))
	if err != nil {
		t.Fatalf("range: %v", err)
	}
	if _, ok := got["2024-02-02"]; ok {
		t.Fatalf("deleted note still present")
	}
}

func TestClearOverrides(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if err := repo.UpsertHoliday(ctx, "2024-02-14", "Founders Day", SourceManual); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if err := repo.UpsertNote(ctx, "2024-02-02", "standup moved"); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	if err := repo.ClearOverrides(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}

	holidays, err := repo.HolidaysInRange(ctx,
		core.NewDate(2024, time.January, 1), core.NewDate(2024, time.December, 31))
	if err != nil {
		t.Fatalf("range: %v", err)
	}
	notes, err := repo.NotesInRange(ctx,
		core.NewDate(2024, time.January, 1), core.NewDate(2024, time.December, 31))
	if err != nil {
		t.Fatalf("range: %v", err)
	}
	if len(holidays) != 0 || len(notes) != 0 {
		t.Fatalf("clear left rows: holidays=%v notes=%v", holidays, notes)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if _, found, err := repo.LoadCalendarConfig(ctx); err != nil || found {
		t.Fatalf("fresh store: found=%v err=%v", found, err)
	}

	cfg := core.Config{HoursPerDay: 7.5, WorkDays: []int{0, 1, 2, 3, 4}, Country: "FRANCE"}
	if err := repo.SaveCalendarConfig(ctx, cfg); err != nil {
		t.Fatalf("save config: %v", err)
	}

	loaded, found, err := repo.LoadCalendarConfig(ctx)
	if err != nil || !found {
		t.Fatalf("load config: found=%v err=%v", found, err)
	}
	if loaded.HoursPerDay != 7.5 || loaded.Country != "FRANCE" || len(loaded.WorkDays) != 5 {
		t.Fatalf("loaded = %+v", loaded)
	}

	if theme, err := repo.LoadTheme(ctx); err != nil || theme != "" {
		t.Fatalf("fresh theme: %q err=%v", theme, err)
	}
	if err := repo.SaveTheme(ctx, "neon"); err != nil {
		t.Fatalf("save theme: %v", err)
	}
	if theme, err := repo.LoadTheme(ctx); err != nil || theme != "neon" {
		t.Fatalf("theme = %q err=%v", theme, err)
	}
}
