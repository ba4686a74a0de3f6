package compliance

import (
	"time"

	"github.com/cronos-hq/attendance-compliance-go/internal/domain/compliance"
)

// Two weekly-boundary strategies coexist on purpose. CalendarMonthWeeks
// follows the Monday-first calendar grid of the queried month and is used by
// monthly/trend reporting; PeriodWeekCount/PeriodWeekIndex cut the query
// period into consecutive 7-day blocks and back rule 2. They produce
// different week counts near month boundaries and must not be merged.

// CalendarMonthWeeks partitions the month into calendar weeks and collects
// each week's daily summaries. Weeks that overlap the month are truncated to
// the days belonging to it; grid weeks with no in-month day are skipped.
// days_attended counts complete days only; a week meets the pattern when it
// has between one and maxDaysPerWeek attended days.
func CalendarMonthWeeks(byDate map[string]compliance.DailyAttendance, year int, month time.Month, maxDaysPerWeek int) []compliance.WeeklyPattern {
	firstOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := firstOfMonth.AddDate(0, 1, -1).Day()

	// Offset of day 1 inside a Monday-first week row.
	offset := (int(firstOfMonth.Weekday()) + 6) % 7

	var patterns []compliance.WeeklyPattern
	for day := 1; day <= daysInMonth; {
		weekEnd := day + (6 - (offset+day-1)%7)
		if weekEnd > daysInMonth {
			weekEnd = daysInMonth
		}

		pattern := compliance.WeeklyPattern{
			WeekStart: time.Date(year, month, day, 0, 0, 0, 0, time.UTC),
			WeekEnd:   time.Date(year, month, weekEnd, 0, 0, 0, 0, time.UTC),
		}

		for d := day; d <= weekEnd; d++ {
			key := time.Date(year, month, d, 0, 0, 0, 0, time.UTC).Format(dateKeyLayout)
			attendance, ok := byDate[key]
			if !ok {
				continue
			}
			pattern.DailyDetails = append(pattern.DailyDetails, attendance)
			if attendance.IsComplete {
				pattern.DaysAttended++
				if attendance.HoursWorked != nil {
					pattern.TotalHours += *attendance.HoursWorked
				}
			}
		}

		pattern.MeetsPattern = pattern.DaysAttended >= 1 && pattern.DaysAttended <= maxDaysPerWeek
		patterns = append(patterns, pattern)
		day = weekEnd + 1
	}

	return patterns
}

// PeriodWeekCount returns how many period-relative 7-day blocks the period
// spans, at least one and capped at maxWeeks (a calendar month never needs
// more than five).
func PeriodWeekCount(start, end time.Time, maxWeeks int) int {
	days := int(end.Sub(start).Hours() / 24)
	weeks := days/7 + 1
	if weeks < 1 {
		weeks = 1
	}
	if weeks > maxWeeks {
		weeks = maxWeeks
	}
	return weeks
}

// PeriodWeekIndex returns the 1-based 7-day block a date falls in, counted
// from the period start and independent of calendar week boundaries.
func PeriodWeekIndex(start, date time.Time) int {
	days := int(date.Sub(start).Hours() / 24)
	return days/7 + 1
}
