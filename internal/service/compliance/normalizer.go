package compliance

import (
	"log/slog"
	"sort"
	"time"

	"github.com/cronos-hq/attendance-compliance-go/internal/domain/punch"
)

const dateKeyLayout = "2006-01-02"

// DayGroups is an ordered calendar-date → punches map. Iteration order is
// guaranteed ascending by date, and each day's punches are ascending by
// timestamp, so reports built from it are deterministic.
type DayGroups struct {
	keys []string
	days map[string][]punch.Punch
}

func newDayGroups() *DayGroups {
	return &DayGroups{days: make(map[string][]punch.Punch)}
}

func (g *DayGroups) add(key string, p punch.Punch) {
	if _, ok := g.days[key]; !ok {
		g.keys = append(g.keys, key)
	}
	g.days[key] = append(g.days[key], p)
}

func (g *DayGroups) finalize() {
	sort.Strings(g.keys)
	for _, key := range g.keys {
		day := g.days[key]
		sort.Slice(day, func(i, j int) bool {
			return day[i].PunchedAt.Before(day[j].PunchedAt)
		})
	}
}

// Len returns the number of distinct attendance days.
func (g *DayGroups) Len() int {
	return len(g.keys)
}

// Dates returns the grouped calendar days ascending.
func (g *DayGroups) Dates() []time.Time {
	dates := make([]time.Time, 0, len(g.keys))
	for _, key := range g.keys {
		d, _ := time.Parse(dateKeyLayout, key)
		dates = append(dates, d)
	}
	return dates
}

// Punches returns the ascending punch sequence of one grouped day.
func (g *DayGroups) Punches(date time.Time) []punch.Punch {
	return g.days[date.Format(dateKeyLayout)]
}

// NormalizeStats counts what happened to the raw records during grouping.
// None of these conditions is fatal; they exist for diagnostics.
type NormalizeStats struct {
	TotalRecords int
	InPeriod     int
	OutOfPeriod  int
	Ignored      int
	Unparseable  int
}

// GroupByDay converts raw punches into validated, time-ordered groups per
// calendar day.
//
// Punches with the ignore flag are discarded. Timestamps are coerced to a
// single comparable type: native timestamps are used as-is, textual ones are
// parsed, and unparseable records are dropped with a logged data-quality
// skip. When start and end are non-zero the grouping is restricted to the
// calendar days of [start, end]: bounds are compared date-truncated, so a
// punch anywhere on the end date is in the period even when the bound
// carries a midnight clock. Out-of-period punches are excluded but counted.
// Day boundaries are the date portion of the timestamp, no timezone
// adjustment beyond truncation.
func GroupByDay(records []punch.Punch, start, end time.Time) (*DayGroups, NormalizeStats) {
	groups := newDayGroups()
	stats := NormalizeStats{TotalRecords: len(records)}
	filter := !start.IsZero() && !end.IsZero()

	var periodStart, periodEndExcl time.Time
	if filter {
		periodStart = truncateToDay(start)
		periodEndExcl = truncateToDay(end).AddDate(0, 0, 1)
	}

	for _, rec := range records {
		if rec.Ignored {
			stats.Ignored++
			continue
		}

		punchedAt, ok := coerceTimestamp(rec)
		if !ok {
			stats.Unparseable++
			slog.Warn("skipping punch with unparseable timestamp",
				"employee_id", rec.EmployeeID, "raw_time", rec.RawTime)
			continue
		}

		if filter {
			if punchedAt.Before(periodStart) || !punchedAt.Before(periodEndExcl) {
				stats.OutOfPeriod++
				continue
			}
			stats.InPeriod++
		}

		rec.PunchedAt = punchedAt
		groups.add(punchedAt.Format(dateKeyLayout), rec)
	}

	groups.finalize()
	return groups, stats
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// coerceTimestamp resolves the punch timestamp, falling back to the textual
// representation carried by older feeds.
func coerceTimestamp(p punch.Punch) (time.Time, bool) {
	if !p.PunchedAt.IsZero() {
		return p.PunchedAt, true
	}
	if p.RawTime == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(punch.RawTimeLayout, p.RawTime)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
