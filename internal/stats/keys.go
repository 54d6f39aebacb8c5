package stats

import (
	"fmt"
	"time"
)

// WeekKey returns the YYYY-Www bucket for an epoch-millisecond timestamp.
//
// The week number is ceil((weekdayUTC + 1 + daysSinceJan1UTC) / 7), using
// UTC fields throughout and Sunday as weekday zero. This is the dashboard's
// historical numbering rule, not ISO-8601; existing chart keys depend on it,
// so it must not be "corrected".
func WeekKey(ts int64) string {
	t := time.UnixMilli(ts).UTC()
	yearStart := time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	days := int(t.Sub(yearStart) / (24 * time.Hour))
	week := (int(t.Weekday()) + 1 + days + 6) / 7

	return fmt.Sprintf("%d-W%02d", t.Year(), week)
}

// MonthKey returns the YYYY-MM bucket (UTC) for an epoch-millisecond
// timestamp.
func MonthKey(ts int64) string {
	t := time.UnixMilli(ts).UTC()

	return fmt.Sprintf("%d-%02d", t.Year(), int(t.Month()))
}
