package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"workcal/internal/core"

	_ "modernc.org/sqlite"
)

// Holiday sources. Suggested rows come from the holiday fetch worker and
// lose to manual edits on merge.
const (
	SourceManual    = "manual"
	SourceSuggested = "suggested"
)

const (
	settingCalendarConfig = "calendar_config"
	settingTheme          = "theme"
)

// SQLiteRepository stores the caller-owned state the engine reads as
// immutable snapshots: holiday overrides, notes, and persisted settings.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// UpsertHoliday writes or replaces the holiday override for a date-key.
func (r *SQLiteRepository) UpsertHoliday(ctx context.Context, dateKey, name, source string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO holidays (date_key, name, source, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(date_key) DO UPDATE
		SET name = excluded.name, source = excluded.source, updated_at = excluded.updated_at`,
		dateKey, name, source)
	if err != nil {
		return fmt.Errorf("upsert holiday: %w", err)
	}

	slog.InfoContext(ctx, "Holiday saved", "date_key", dateKey, "source", source)
	return nil
}

// InsertHolidayIfAbsent writes a suggested holiday only when the date-key has
// no entry yet, so user edits are never overwritten by a merge. It reports
// whether a row was written.
func (r *SQLiteRepository) InsertHolidayIfAbsent(ctx context.Context, dateKey, name string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO holidays (date_key, name, source, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(date_key) DO NOTHING`,
		dateKey, name, SourceSuggested)
	if err != nil {
		return false, fmt.Errorf("insert holiday if absent: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return n > 0, nil
}

func (r *SQLiteRepository) DeleteHoliday(ctx context.Context, dateKey string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM holidays WHERE date_key = ?`, dateKey); err != nil {
		return fmt.Errorf("delete holiday: %w", err)
	}
	return nil
}

// HolidaysInRange returns the holiday overrides whose date-key falls in
// [from, to]. Date-keys sort lexicographically in date order, so a plain
// range scan over the primary key serves the whole padded grid.
func (r *SQLiteRepository) HolidaysInRange(ctx context.Context, from, to core.Date) (map[string]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT date_key, name FROM holidays WHERE date_key >= ? AND date_key <= ?`,
		from.Key(), to.Key())
	if err != nil {
		return nil, fmt.Errorf("query holidays: %w", err)
	}
	defer rows.Close()

	return collectKeyed(rows)
}

// HasHolidaysForMonth reports whether any holiday override exists for the
// given month. The auto-refresh tick uses it to avoid clobbering months the
// user already curated.
func (r *SQLiteRepository) HasHolidaysForMonth(ctx context.Context, year int, month time.Month) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM holidays WHERE date_key LIKE ?`,
		monthPrefix(year, month)+"%").Scan(&count)
	if err != nil {
		return false, fmt.Errorf("count holidays for month: %w", err)
	}
	return count > 0, nil
}

func (r *SQLiteRepository) UpsertNote(ctx context.Context, dateKey, body string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO notes (date_key, body, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(date_key) DO UPDATE
		SET body = excluded.body, updated_at = excluded.updated_at`,
		dateKey, body)
	if err != nil {
		return fmt.Errorf("upsert note: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) DeleteNote(ctx context.Context, dateKey string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM notes WHERE date_key = ?`, dateKey); err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	return nil
}

// NotesInRange returns the notes whose date-key falls in [from, to].
func (r *SQLiteRepository) NotesInRange(ctx context.Context, from, to core.Date) (map[string]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT date_key, body FROM notes WHERE date_key >= ? AND date_key <= ?`,
		from.Key(), to.Key())
	if err != nil {
		return nil, fmt.Errorf("query notes: %w", err)
	}
	defer rows.Close()

	return collectKeyed(rows)
}

// ClearOverrides removes every holiday override and note in one transaction.
func (r *SQLiteRepository) ClearOverrides(ctx context.Context) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin clear overrides: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM holidays`); err != nil {
		return fmt.Errorf("clear holidays: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM notes`); err != nil {
		return fmt.Errorf("clear notes: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit clear overrides: %w", err)
	}

	slog.InfoContext(ctx, "All overrides cleared")
	return nil
}

// LoadCalendarConfig returns the persisted calendar config. The boolean is
// false when the user has never saved settings.
func (r *SQLiteRepository) LoadCalendarConfig(ctx context.Context) (core.Config, bool, error) {
	var raw string
	err := r.db.QueryRowContext(ctx,
		`SELECT value FROM settings WHERE key = ?`, settingCalendarConfig).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Config{}, false, nil
	}
	if err != nil {
		return core.Config{}, false, fmt.Errorf("load calendar config: %w", err)
	}

	var cfg core.Config
	if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
		return core.Config{}, false, fmt.Errorf("decode calendar config: %w", err)
	}
	return cfg, true, nil
}

func (r *SQLiteRepository) SaveCalendarConfig(ctx context.Context, cfg core.Config) error {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode calendar config: %w", err)
	}
	return r.saveSetting(ctx, settingCalendarConfig, string(raw))
}

// LoadTheme returns the persisted UI theme, or "" when none was saved. The
// theme is an opaque string here; rendering owns its meaning.
func (r *SQLiteRepository) LoadTheme(ctx context.Context) (string, error) {
	var theme string
	err := r.db.QueryRowContext(ctx,
		`SELECT value FROM settings WHERE key = ?`, settingTheme).Scan(&theme)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("load theme: %w", err)
	}
	return theme, nil
}

func (r *SQLiteRepository) SaveTheme(ctx context.Context, theme string) error {
	return r.saveSetting(ctx, settingTheme, theme)
}

func (r *SQLiteRepository) saveSetting(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO settings (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE
		SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value)
	if err != nil {
		return fmt.Errorf("save setting %s: %w", key, err)
	}
	return nil
}

func monthPrefix(year int, month time.Month) string {
	return fmt.Sprintf("%04d-%02d", year, int(month))
}

func collectKeyed(rows *sql.Rows) (map[string]string, error) {
	out := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		out[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return out, nil
}
