package core

// AggregateMonth computes the month totals over the current-month cells of a
// grid; padding cells never contribute. The remaining count covers workdays
// whose date is today or later, compared at day granularity only, which is
// why today must be a truncated Date captured once alongside the grid.
func AggregateMonth(grid []DayStat, cfg Config, today Date) MonthStats {
	var stats MonthStats

	for _, d := range grid {
		if !d.IsCurrentMonth {
			continue
		}
		stats.TotalDays++

		switch d.DayType {
		case DayHoliday:
			stats.TotalHolidays++
		case DayWeekend:
			stats.TotalWeekendDays++
		case DayWorkday:
			stats.TotalWorkingDays++
			if !d.Date.Before(today.Time) {
				stats.RemainingWorkingDays++
			}
		}
	}

	stats.TotalWorkingHours = float64(stats.TotalWorkingDays) * cfg.HoursPerDay
	return stats
}
