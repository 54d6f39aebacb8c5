package stats

import (
	"context"
	"sort"
	"time"

	"github.com/pagepulse/pagepulse/internal/tracking"
)

// KPI holds rolling page-view counts over the current calendar windows.
type KPI struct {
	Today int `json:"today"`
	Week  int `json:"week"`
	Month int `json:"month"`
	Year  int `json:"year"`
}

// Timeseries holds time-bucketed counts. Maps marshal with keys in
// ascending lexical order, which equals chronological order for the
// YYYY-Www and YYYY-MM key formats.
type Timeseries struct {
	Weekly  map[string]int `json:"weekly"`
	Monthly map[string]int `json:"monthly"`
}

// CountryCount is one country leaderboard entry. A nil country means the
// origin could not be resolved.
type CountryCount struct {
	Country *string `json:"country"`
	Count   int     `json:"count"`
}

// ReferrerCount is one referrer leaderboard entry. A nil referrer means
// direct traffic.
type ReferrerCount struct {
	Referrer *string `json:"referrer"`
	Count    int     `json:"count"`
}

// Report is the full aggregation over the event log.
type Report struct {
	KPI         KPI             `json:"kpi"`
	Timeseries  Timeseries      `json:"timeseries"`
	Countries   []CountryCount  `json:"countries"`
	Referrers   []ReferrerCount `json:"referrers"`
	TotalEvents int             `json:"totalEvents"`
	GeneratedAt string          `json:"generatedAt"`
}

// Aggregator computes dashboard statistics from the event store. Every call
// is a full rescan; there is no caching or incremental state.
type Aggregator struct {
	store tracking.Store
}

// NewAggregator creates an aggregator reading from the given store.
func NewAggregator(store tracking.Store) *Aggregator {
	return &Aggregator{store: store}
}

// Compute aggregates the whole event log relative to now. topN truncates
// both leaderboards when positive; zero or negative keeps the full lists.
func (a *Aggregator) Compute(ctx context.Context, now time.Time, topN int) (*Report, error) {
	events, err := a.store.All(ctx)
	if err != nil {
		return nil, err
	}

	// Calendar window boundaries, local time, computed once.
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	startOfWeek := startOfDay.AddDate(0, 0, -int(startOfDay.Weekday())) // weeks start Sunday
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	startOfYear := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())

	dayMs := startOfDay.UnixMilli()
	weekMs := startOfWeek.UnixMilli()
	monthMs := startOfMonth.UnixMilli()
	yearMs := startOfYear.UnixMilli()

	report := &Report{
		Timeseries: Timeseries{
			Weekly:  make(map[string]int),
			Monthly: make(map[string]int),
		},
		TotalEvents: len(events),
		GeneratedAt: now.UTC().Format(time.RFC3339),
	}

	countries := newLeaderboard()
	referrers := newLeaderboard()

	for _, event := range events {
		if event.Timestamp >= dayMs {
			report.KPI.Today++
		}

		if event.Timestamp >= weekMs {
			report.KPI.Week++
		}

		if event.Timestamp >= monthMs {
			report.KPI.Month++
		}

		if event.Timestamp >= yearMs {
			report.KPI.Year++
		}

		report.Timeseries.Weekly[WeekKey(event.Timestamp)]++
		report.Timeseries.Monthly[MonthKey(event.Timestamp)]++

		countries.add(event.Country)
		referrers.add(event.Referrer)
	}

	for _, entry := range countries.sorted(topN) {
		report.Countries = append(report.Countries, CountryCount{
			Country: nullable(entry.key),
			Count:   entry.count,
		})
	}

	for _, entry := range referrers.sorted(topN) {
		report.Referrers = append(report.Referrers, ReferrerCount{
			Referrer: nullable(entry.key),
			Count:    entry.count,
		})
	}

	return report, nil
}

type entry struct {
	key   string
	count int
}

// leaderboard counts occurrences per key while remembering first-appearance
// order, so ties sort deterministically.
type leaderboard struct {
	index   map[string]int
	entries []entry
}

func newLeaderboard() *leaderboard {
	return &leaderboard{index: make(map[string]int)}
}

func (l *leaderboard) add(key string) {
	if i, ok := l.index[key]; ok {
		l.entries[i].count++

		return
	}

	l.index[key] = len(l.entries)
	l.entries = append(l.entries, entry{key: key, count: 1})
}

func (l *leaderboard) sorted(topN int) []entry {
	out := make([]entry, len(l.entries))
	copy(out, l.entries)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].count > out[j].count
	})

	if topN > 0 && len(out) > topN {
		out = out[:topN]
	}

	return out
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}
