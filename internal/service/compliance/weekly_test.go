package compliance

import (
	"testing"
	"time"

	"github.com/cronos-hq/attendance-compliance-go/internal/domain/compliance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completeDay(date string, hours float64) compliance.DailyAttendance {
	h := hours
	return compliance.DailyAttendance{
		Date:        day(date),
		HoursWorked: &h,
		IsComplete:  true,
		RecordCount: 2,
	}
}

func TestCalendarMonthWeeks_MondayFirstBoundaries(t *testing.T) {
	t.Parallel()

	// January 2025 starts on a Wednesday: the first grid row holds the
	// 1st through the 5th, then full Monday weeks follow.
	weeks := CalendarMonthWeeks(map[string]compliance.DailyAttendance{}, 2025, time.January, 2)

	require.Len(t, weeks, 5)
	assert.Equal(t, day("2025-01-01"), weeks[0].WeekStart)
	assert.Equal(t, day("2025-01-05"), weeks[0].WeekEnd)
	assert.Equal(t, day("2025-01-06"), weeks[1].WeekStart)
	assert.Equal(t, day("2025-01-12"), weeks[1].WeekEnd)
	assert.Equal(t, day("2025-01-27"), weeks[4].WeekStart)
	assert.Equal(t, day("2025-01-31"), weeks[4].WeekEnd)
}

func TestCalendarMonthWeeks_CountsCompleteDaysOnly(t *testing.T) {
	t.Parallel()

	byDate := map[string]compliance.DailyAttendance{
		"2025-01-06": completeDay("2025-01-06", 9.0),
		"2025-01-07": completeDay("2025-01-07", 8.5),
		"2025-01-08": {Date: day("2025-01-08"), RecordCount: 1}, // entry only
	}

	weeks := CalendarMonthWeeks(byDate, 2025, time.January, 2)

	require.Len(t, weeks, 5)
	second := weeks[1]
	assert.Equal(t, 2, second.DaysAttended)
	assert.InDelta(t, 17.5, second.TotalHours, 1e-9)
	assert.Len(t, second.DailyDetails, 3)
	assert.True(t, second.MeetsPattern)
}

func TestCalendarMonthWeeks_PatternBounds(t *testing.T) {
	t.Parallel()

	byDate := map[string]compliance.DailyAttendance{
		"2025-01-06": completeDay("2025-01-06", 9.0),
		"2025-01-07": completeDay("2025-01-07", 9.0),
		"2025-01-08": completeDay("2025-01-08", 9.0),
	}

	weeks := CalendarMonthWeeks(byDate, 2025, time.January, 2)

	// Three attended days exceed the two-day ceiling; empty weeks miss
	// the one-day floor.
	assert.False(t, weeks[1].MeetsPattern)
	assert.False(t, weeks[0].MeetsPattern)
}

func TestCalendarMonthWeeks_AttendedDaysPartitionAcrossWeeks(t *testing.T) {
	t.Parallel()

	byDate := map[string]compliance.DailyAttendance{
		"2025-01-02": completeDay("2025-01-02", 8.0),
		"2025-01-10": completeDay("2025-01-10", 8.0),
		"2025-01-17": completeDay("2025-01-17", 8.0),
		"2025-01-24": completeDay("2025-01-24", 8.0),
		"2025-01-31": completeDay("2025-01-31", 8.0),
	}

	weeks := CalendarMonthWeeks(byDate, 2025, time.January, 2)

	total := 0
	for _, w := range weeks {
		total += w.DaysAttended
	}
	assert.Equal(t, 5, total)
}

func TestPeriodWeekCount(t *testing.T) {
	t.Parallel()

	start := day("2025-01-01")

	assert.Equal(t, 1, PeriodWeekCount(start, day("2025-01-01"), 5))
	assert.Equal(t, 1, PeriodWeekCount(start, day("2025-01-07"), 5))
	assert.Equal(t, 2, PeriodWeekCount(start, day("2025-01-08"), 5))
	assert.Equal(t, 5, PeriodWeekCount(start, day("2025-01-31"), 5))

	// Long periods are capped.
	assert.Equal(t, 5, PeriodWeekCount(start, day("2025-04-01"), 5))
}

func TestPeriodWeekIndex(t *testing.T) {
	t.Parallel()

	start := day("2025-01-01")

	assert.Equal(t, 1, PeriodWeekIndex(start, day("2025-01-01")))
	assert.Equal(t, 1, PeriodWeekIndex(start, day("2025-01-07")))
	assert.Equal(t, 2, PeriodWeekIndex(start, day("2025-01-08")))
	assert.Equal(t, 3, PeriodWeekIndex(start, day("2025-01-15")))
}

func TestWeekStrategies_DivergeAtMonthBoundary(t *testing.T) {
	t.Parallel()

	// A period starting mid-week: the period-relative block containing
	// Jan 8 differs from its calendar grid row, which starts Jan 6.
	start := day("2025-01-03")
	assert.Equal(t, 1, PeriodWeekIndex(start, day("2025-01-08")))

	weeks := CalendarMonthWeeks(map[string]compliance.DailyAttendance{}, 2025, time.January, 2)
	assert.True(t, weeks[1].WeekStart.Before(day("2025-01-08")))
	assert.True(t, weeks[1].WeekEnd.After(day("2025-01-08")))
}
