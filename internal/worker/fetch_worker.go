package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"workcal/internal/amqp"
	"workcal/internal/core"
	"workcal/internal/storage"
	"workcal/internal/suggest"
)

// FetchWorker turns queued holiday fetch requests into stored holiday
// overrides. It is the only writer of suggested holidays; manual edits
// always win on unforced merges.
type FetchWorker struct {
	store        *storage.SQLiteRepository
	fetcher      suggest.Fetcher
	publisher    *amqp.Client
	fetchTimeout time.Duration
	now          func() time.Time
}

func NewFetchWorker(store *storage.SQLiteRepository, fetcher suggest.Fetcher, publisher *amqp.Client, fetchTimeout time.Duration) *FetchWorker {
	return &FetchWorker{
		store:        store,
		fetcher:      fetcher,
		publisher:    publisher,
		fetchTimeout: fetchTimeout,
		now:          time.Now,
	}
}

// HandleFetchMessage processes one queued fetch request: call the suggester,
// then merge the results. Returning an error requeues the message.
func (w *FetchWorker) HandleFetchMessage(ctx context.Context, msg *amqp.HolidayFetchMessage) error {
	if err := msg.Validate(); err != nil {
		return fmt.Errorf("invalid fetch message: %w", err)
	}

	fetchCtx := ctx
	if w.fetchTimeout > 0 {
		var cancel context.CancelFunc
		fetchCtx, cancel = context.WithTimeout(ctx, w.fetchTimeout)
		defer cancel()
	}

	month := time.Month(msg.Month)
	holidays, err := w.fetcher.FetchHolidays(fetchCtx, msg.Country, msg.Year, month)
	if err != nil {
		return fmt.Errorf("fetch holidays: %w", err)
	}

	merged, err := w.mergeHolidays(ctx, holidays, msg.Force)
	if err != nil {
		return fmt.Errorf("merge holidays: %w", err)
	}

	slog.InfoContext(ctx, "Holiday fetch completed",
		"country", msg.Country,
		"year", msg.Year,
		"month", msg.Month,
		"force", msg.Force,
		"suggested", len(holidays),
		"merged", merged)

	return nil
}

// mergeHolidays writes suggestions into the store. Forced merges replace
// whatever is there; unforced merges only fill absent date-keys.
func (w *FetchWorker) mergeHolidays(ctx context.Context, holidays []core.Holiday, force bool) (int, error) {
	merged := 0
	for _, h := range holidays {
		if force {
			if err := w.store.UpsertHoliday(ctx, h.Date, h.Name, storage.SourceSuggested); err != nil {
				return merged, err
			}
			merged++
			continue
		}
		inserted, err := w.store.InsertHolidayIfAbsent(ctx, h.Date, h.Name)
		if err != nil {
			return merged, err
		}
		if inserted {
			merged++
		}
	}
	return merged, nil
}

// AutoRefreshTick publishes one unforced fetch request for the current month
// when the store has nothing for it yet. Months the user already touched are
// left alone, matching the launch-time auto-fetch of the dashboard. The
// saved settings country wins over the deployment default.
func (w *FetchWorker) AutoRefreshTick(ctx context.Context, country string) error {
	if w.publisher == nil {
		return fmt.Errorf("no publisher configured")
	}
	if cfg, found, err := w.store.LoadCalendarConfig(ctx); err == nil && found && cfg.Country != "" {
		country = cfg.Country
	}
	if country == "" {
		return fmt.Errorf("no country configured")
	}

	now := w.now()
	year, month := now.Year(), now.Month()

	has, err := w.store.HasHolidaysForMonth(ctx, year, month)
	if err != nil {
		return fmt.Errorf("check month holidays: %w", err)
	}
	if has {
		slog.InfoContext(ctx, "Month already has holidays, skipping auto refresh",
			"year", year, "month", int(month))
		return nil
	}

	return w.publisher.PublishHolidayFetch(ctx, country, year, month, false)
}

// RunAutoRefresh ticks until the context is done. The first tick fires
// immediately so a fresh deployment gets its current month populated.
func (w *FetchWorker) RunAutoRefresh(ctx context.Context, country string, interval time.Duration) error {
	if err := w.AutoRefreshTick(ctx, country); err != nil {
		slog.ErrorContext(ctx, "Auto refresh failed", "error", err)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := w.AutoRefreshTick(ctx, country); err != nil {
				slog.ErrorContext(ctx, "Auto refresh failed", "error", err)
			}
		}
	}
}
