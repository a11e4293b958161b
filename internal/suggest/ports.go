package suggest

import (
	"context"
	"time"

	"workcal/internal/core"
)

// Fetcher is the outbound port for public-holiday suggestions. The engine
// never calls it; results are merged into the holiday store before a grid is
// generated, and implementations are treated as untrusted sources.
type Fetcher interface {
	// FetchHolidays returns suggested holidays for one country and month.
	FetchHolidays(ctx context.Context, country string, year int, month time.Month) ([]core.Holiday, error)
}
