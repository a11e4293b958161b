package gemini

import (
	"encoding/json"
	"strings"
	"time"

	"workcal/internal/core"
)

// maxNameLen caps holiday names from the model before they reach storage.
const maxNameLen = 200

// parseHolidays decodes the schema-constrained completion and filters it
// down to well-formed entries inside the requested month. It returns the
// kept entries and the count of dropped ones. Duplicate dates keep the
// first occurrence.
func parseHolidays(raw []byte, year int, month time.Month) ([]core.Holiday, int, error) {
	var entries []core.Holiday
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, 0, err
	}

	seen := make(map[string]bool, len(entries))
	kept := make([]core.Holiday, 0, len(entries))
	dropped := 0

	for _, e := range entries {
		date, err := core.ParseDateKey(e.Date)
		if err != nil {
			dropped++
			continue
		}
		if date.Year() != year || date.Month() != month {
			dropped++
			continue
		}

		name := strings.TrimSpace(e.Name)
		if name == "" {
			dropped++
			continue
		}
		if len(name) > maxNameLen {
			name = name[:maxNameLen]
		}

		if seen[e.Date] {
			dropped++
			continue
		}
		seen[e.Date] = true

		kept = append(kept, core.Holiday{Date: date.Key(), Name: name})
	}

	return kept, dropped, nil
}
