// Package memory provides a fixture-backed holiday fetcher for tests and
// offline development.
package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"workcal/internal/core"
	"workcal/internal/suggest"
)

type Fetcher struct {
	mu       sync.RWMutex
	fixtures map[string][]core.Holiday
}

// Ensure interface conformance
var _ suggest.Fetcher = (*Fetcher)(nil)

func New() *Fetcher {
	return &Fetcher{fixtures: make(map[string][]core.Holiday)}
}

// Add registers fixture holidays for a country/month.
func (f *Fetcher) Add(country string, year int, month time.Month, holidays ...core.Holiday) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := fixtureKey(country, year, month)
	f.fixtures[key] = append(f.fixtures[key], holidays...)
}

// FetchHolidays implements suggest.Fetcher. Unknown country/month pairs
// return an empty suggestion list, matching a model that knows nothing.
func (f *Fetcher) FetchHolidays(_ context.Context, country string, year int, month time.Month) ([]core.Holiday, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return append([]core.Holiday(nil), f.fixtures[fixtureKey(country, year, month)]...), nil
}

func fixtureKey(country string, year int, month time.Month) string {
	return fmt.Sprintf("%s|%04d-%02d", strings.ToUpper(country), year, int(month))
}
