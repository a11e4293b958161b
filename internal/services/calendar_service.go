package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"workcal/internal/amqp"
	"workcal/internal/core"
	"workcal/internal/storage"
)

// ErrQueueUnavailable is returned when a holiday refresh is requested but no
// AMQP client is configured.
var ErrQueueUnavailable = errors.New("holiday fetch queue unavailable")

// MonthView bundles the padded grid and its aggregates for one month.
type MonthView struct {
	Year  int              `json:"year"`
	Month int              `json:"month"` // 1-12
	Days  []core.DayStat   `json:"days"`
	Stats core.MonthStats  `json:"stats"`
}

// Settings is the persisted user configuration: the engine config plus the
// UI theme, which the backend stores but never interprets.
type Settings struct {
	Config core.Config `json:"config"`
	Theme  string      `json:"theme"`
}

// CalendarService orchestrates the pure engine over the SQLite store and the
// fetch queue. The engine stays stateless: every call loads a fresh override
// snapshot and captures "today" exactly once.
type CalendarService struct {
	store     *storage.SQLiteRepository
	publisher *amqp.Client
	defaults  core.Config
	now       func() time.Time
}

func NewCalendarService(store *storage.SQLiteRepository, publisher *amqp.Client, defaults core.Config) *CalendarService {
	return &CalendarService{
		store:     store,
		publisher: publisher,
		defaults:  defaults,
		now:       time.Now,
	}
}

// MonthView computes the 42-cell grid and stats for one month. Overrides are
// loaded for the whole padded range so adjacent-month cells classify with
// their own holidays and notes.
func (s *CalendarService) MonthView(ctx context.Context, year int, month time.Month) (*MonthView, error) {
	cfg, err := s.CalendarConfig(ctx)
	if err != nil {
		return nil, err
	}

	today := core.Today(s.now())

	first := core.NewDate(year, month, 1)
	startOffset := (int(first.Weekday()) + 6) % 7
	from := first.AddDays(-startOffset)
	to := from.AddDays(core.GridSize - 1)

	holidays, err := s.store.HolidaysInRange(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("load holidays: %w", err)
	}
	notes, err := s.store.NotesInRange(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("load notes: %w", err)
	}

	grid := core.GenerateGrid(year, month, today, cfg, holidays, notes)
	stats := core.AggregateMonth(grid, cfg, today)

	return &MonthView{
		Year:  year,
		Month: int(month),
		Days:  grid,
		Stats: stats,
	}, nil
}

// CalendarConfig returns the saved engine config, falling back to the
// deployment defaults when the user never saved settings.
func (s *CalendarService) CalendarConfig(ctx context.Context) (core.Config, error) {
	cfg, found, err := s.store.LoadCalendarConfig(ctx)
	if err != nil {
		return core.Config{}, fmt.Errorf("load config: %w", err)
	}
	if !found {
		return s.defaults, nil
	}
	return cfg, nil
}

// Settings returns the persisted settings with defaults applied.
func (s *CalendarService) Settings(ctx context.Context) (Settings, error) {
	cfg, err := s.CalendarConfig(ctx)
	if err != nil {
		return Settings{}, err
	}
	theme, err := s.store.LoadTheme(ctx)
	if err != nil {
		return Settings{}, fmt.Errorf("load theme: %w", err)
	}
	return Settings{Config: cfg, Theme: theme}, nil
}

// SaveSettings persists the engine config and theme.
func (s *CalendarService) SaveSettings(ctx context.Context, settings Settings) error {
	if err := s.store.SaveCalendarConfig(ctx, settings.Config); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	if err := s.store.SaveTheme(ctx, settings.Theme); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	return nil
}

// SaveDayDetails applies one day's edit. A nil holiday name or note removes
// the corresponding override; a non-nil value (empty string included) stores
// it. This mirrors the edit dialog: clearing a field deletes the entry.
func (s *CalendarService) SaveDayDetails(ctx context.Context, dateKey string, holidayName, note *string) error {
	if _, err := core.ParseDateKey(dateKey); err != nil {
		return err
	}

	if holidayName != nil {
		if err := s.store.UpsertHoliday(ctx, dateKey, *holidayName, storage.SourceManual); err != nil {
			return err
		}
	} else if err := s.store.DeleteHoliday(ctx, dateKey); err != nil {
		return err
	}

	if note != nil {
		if err := s.store.UpsertNote(ctx, dateKey, *note); err != nil {
			return err
		}
	} else if err := s.store.DeleteNote(ctx, dateKey); err != nil {
		return err
	}

	slog.InfoContext(ctx, "Day details saved",
		"date_key", dateKey,
		"has_holiday", holidayName != nil,
		"has_note", note != nil)

	return nil
}

// ClearOverrides removes every holiday and note.
func (s *CalendarService) ClearOverrides(ctx context.Context) error {
	return s.store.ClearOverrides(ctx)
}

// RequestHolidayRefresh enqueues a fetch request for the configured country.
// Forced requests let suggestions replace existing entries; unforced ones
// only fill gaps.
func (s *CalendarService) RequestHolidayRefresh(ctx context.Context, year int, month time.Month, force bool) error {
	if s.publisher == nil {
		return ErrQueueUnavailable
	}

	cfg, err := s.CalendarConfig(ctx)
	if err != nil {
		return err
	}
	if cfg.Country == "" {
		return errors.New("no country configured")
	}

	if err := s.publisher.PublishHolidayFetch(ctx, cfg.Country, year, month, force); err != nil {
		return fmt.Errorf("publish fetch request: %w", err)
	}
	return nil
}
