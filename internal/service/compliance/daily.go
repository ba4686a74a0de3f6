package compliance

import (
	"time"

	"github.com/cronos-hq/attendance-compliance-go/internal/domain/compliance"
	"github.com/cronos-hq/attendance-compliance-go/internal/domain/punch"
)

// DayIssueKind classifies a per-day data-quality anomaly found while
// aggregating punches. Issues are a side-channel; they never block the
// compliance computation.
type DayIssueKind string

const (
	DayIssueMissingExit      DayIssueKind = "missing_exit"
	DayIssueElevatedRecords  DayIssueKind = "elevated_record_count"
	DayIssueNegativeDuration DayIssueKind = "negative_duration"
)

type DayIssue struct {
	Date        time.Time
	Kind        DayIssueKind
	RecordCount int
}

// AggregateDay folds one date's ascending punch sequence into a daily
// summary.
//
// Exactly two punches form an entry/exit pair. A single punch is an entry
// with no exit. More than two punches are paired sequentially (1st+2nd,
// 3rd+4th, ...); an unpaired trailing punch is ignored for hour computation
// and the elevated record count is surfaced as an issue. A pair whose exit
// precedes its entry is flagged instead of contributing negative hours.
func AggregateDay(date time.Time, punches []punch.Punch, hourTarget float64) (compliance.DailyAttendance, []DayIssue) {
	day := compliance.DailyAttendance{
		Date:        date,
		RecordCount: len(punches),
	}
	var issues []DayIssue

	if len(punches) == 0 {
		return day, nil
	}

	entry := punches[0].PunchedAt
	day.EntryTime = &entry

	if len(punches) == 1 {
		issues = append(issues, DayIssue{Date: date, Kind: DayIssueMissingExit, RecordCount: 1})
		return day, issues
	}

	var totalHours float64
	pairs := 0
	negative := false
	var lastExit time.Time

	for i := 0; i+1 < len(punches); i += 2 {
		elapsed := punches[i+1].PunchedAt.Sub(punches[i].PunchedAt).Hours()
		if elapsed < 0 {
			negative = true
			continue
		}
		totalHours += elapsed
		lastExit = punches[i+1].PunchedAt
		pairs++
	}

	if negative {
		issues = append(issues, DayIssue{Date: date, Kind: DayIssueNegativeDuration, RecordCount: len(punches)})
	}
	if len(punches) > 2 {
		issues = append(issues, DayIssue{Date: date, Kind: DayIssueElevatedRecords, RecordCount: len(punches)})
	}

	if pairs > 0 {
		exit := lastExit
		hours := totalHours
		day.ExitTime = &exit
		day.HoursWorked = &hours
		day.IsComplete = true
		day.MeetsHourTarget = hours >= hourTarget
	}

	return day, issues
}

// BuildDaily aggregates every grouped day. The returned slice is ascending
// by date; the map is keyed by "2006-01-02" for week assembly.
func BuildDaily(groups *DayGroups, hourTarget float64) ([]compliance.DailyAttendance, map[string]compliance.DailyAttendance, []DayIssue) {
	ordered := make([]compliance.DailyAttendance, 0, groups.Len())
	byDate := make(map[string]compliance.DailyAttendance, groups.Len())
	var issues []DayIssue

	for _, date := range groups.Dates() {
		day, dayIssues := AggregateDay(date, groups.Punches(date), hourTarget)
		ordered = append(ordered, day)
		byDate[date.Format(dateKeyLayout)] = day
		issues = append(issues, dayIssues...)
	}

	return ordered, byDate, issues
}
