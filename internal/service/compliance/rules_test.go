package compliance

import (
	"fmt"
	"testing"
	"time"

	"github.com/cronos-hq/attendance-compliance-go/internal/domain/compliance"
	"github.com/cronos-hq/attendance-compliance-go/internal/domain/punch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fullDays builds an entry/exit pair of the given length for each date.
func fullDays(dates []string, hours int) []punch.Punch {
	var records []punch.Punch
	for _, d := range dates {
		records = append(records,
			punchAt(1, d+" 09:00:00"),
			punchAt(1, fmt.Sprintf("%s %02d:00:00", d, 9+hours)),
		)
	}
	return records
}

func groupsOf(t *testing.T, records []punch.Punch) *DayGroups {
	t.Helper()
	groups, _ := GroupByDay(records, time.Time{}, time.Time{})
	return groups
}

func TestMinimumDays_BoundaryAtSix(t *testing.T) {
	t.Parallel()

	evaluator := NewRuleEvaluator(compliance.DefaultRulePolicy())

	six := groupsOf(t, fullDays([]string{
		"2025-01-02", "2025-01-09", "2025-01-16", "2025-01-20", "2025-01-23", "2025-01-30",
	}, 8))
	result := evaluator.MinimumDays(six, 12)
	assert.True(t, result.Compliant)
	assert.Equal(t, 6, result.DaysAttended)

	five := groupsOf(t, fullDays([]string{
		"2025-01-02", "2025-01-09", "2025-01-16", "2025-01-23", "2025-01-30",
	}, 8))
	result = evaluator.MinimumDays(five, 10)
	assert.False(t, result.Compliant)
	assert.Contains(t, result.Reason, "attended 5 day(s)")
}

func TestMinimumDays_SinglePunchStillCountsTheDay(t *testing.T) {
	t.Parallel()

	evaluator := NewRuleEvaluator(compliance.DefaultRulePolicy())

	groups := groupsOf(t, []punch.Punch{
		punchAt(1, "2025-01-02 09:00:00"),
		punchAt(1, "2025-01-03 09:00:00"),
	})

	result := evaluator.MinimumDays(groups, 2)
	assert.Equal(t, 2, result.DaysAttended)
}

func TestMinimumDays_RecordsOutsidePeriod(t *testing.T) {
	t.Parallel()

	evaluator := NewRuleEvaluator(compliance.DefaultRulePolicy())

	groups, _ := GroupByDay(nil, time.Time{}, time.Time{})
	result := evaluator.MinimumDays(groups, 40)

	assert.False(t, result.Compliant)
	assert.Contains(t, result.Reason, "40 records available, none inside the period")
}

func TestWeeklyDistribution_RequiresEveryBlock(t *testing.T) {
	t.Parallel()

	evaluator := NewRuleEvaluator(compliance.DefaultRulePolicy())
	start := day("2025-01-01")
	end := day("2025-01-30")

	// Attendance concentrated in the first three blocks of a five-block
	// period fails the distribution rule.
	sparse := groupsOf(t, fullDays([]string{
		"2025-01-02", "2025-01-03", "2025-01-09", "2025-01-10", "2025-01-16", "2025-01-17",
	}, 8))
	result := evaluator.WeeklyDistribution(sparse, start, end)
	assert.False(t, result.Compliant)
	assert.Equal(t, 3, result.WeeksWithAttendance)
	assert.Equal(t, 5, result.MinWeeksRequired)

	spread := groupsOf(t, fullDays([]string{
		"2025-01-02", "2025-01-09", "2025-01-16", "2025-01-23", "2025-01-30",
	}, 8))
	result = evaluator.WeeklyDistribution(spread, start, end)
	assert.True(t, result.Compliant)
	assert.Equal(t, 5, result.WeeksWithAttendance)
}

func TestWeeklyDistribution_SingleWeekPeriod(t *testing.T) {
	t.Parallel()

	evaluator := NewRuleEvaluator(compliance.DefaultRulePolicy())

	groups := groupsOf(t, fullDays([]string{"2025-01-02"}, 8))
	result := evaluator.WeeklyDistribution(groups, day("2025-01-01"), day("2025-01-07"))

	assert.True(t, result.Compliant)
	assert.Equal(t, 1, result.MinWeeksRequired)
}

func TestMinimumHours_EightHourBoundary(t *testing.T) {
	t.Parallel()

	evaluator := NewRuleEvaluator(compliance.DefaultRulePolicy())

	dates := []string{
		"2025-01-02", "2025-01-09", "2025-01-16", "2025-01-20", "2025-01-23", "2025-01-30",
	}

	result := evaluator.MinimumHours(groupsOf(t, fullDays(dates, 8)))
	assert.True(t, result.Compliant)
	assert.Equal(t, 6, result.DaysMeetingHours)

	result = evaluator.MinimumHours(groupsOf(t, fullDays(dates, 7)))
	assert.False(t, result.Compliant)
	assert.Equal(t, 0, result.DaysMeetingHours)
	assert.Contains(t, result.Reason, "met on 0 day(s)")
}

func TestMinimumHours_EntryOnlyDaysContributeNothing(t *testing.T) {
	t.Parallel()

	evaluator := NewRuleEvaluator(compliance.DefaultRulePolicy())

	var records []punch.Punch
	for _, d := range []string{"2025-01-02", "2025-01-03", "2025-01-06"} {
		records = append(records, punchAt(1, d+" 09:00:00"))
	}

	result := evaluator.MinimumHours(groupsOf(t, records))
	assert.Equal(t, 0, result.DaysMeetingHours)
	assert.Equal(t, 3, result.TotalDays)
}

func TestEvaluate_AllRulesMet(t *testing.T) {
	t.Parallel()

	evaluator := NewRuleEvaluator(compliance.DefaultRulePolicy())

	groups := groupsOf(t, fullDays([]string{
		"2025-01-02", "2025-01-09", "2025-01-16", "2025-01-20", "2025-01-23", "2025-01-30",
	}, 8))

	overall, reason, results := evaluator.Evaluate(groups, 12, day("2025-01-01"), day("2025-01-30"))

	assert.True(t, overall)
	assert.Equal(t, "all attendance rules met", reason)
	assert.True(t, results.MinimumDays.Compliant)
	assert.True(t, results.WeeklyDistribution.Compliant)
	assert.True(t, results.MinimumHours.Compliant)
}

func TestEvaluate_FailingRulesNamedInReason(t *testing.T) {
	t.Parallel()

	evaluator := NewRuleEvaluator(compliance.DefaultRulePolicy())

	// Three attended days inside one week: rule 2 passes for the short
	// period while rules 1 and 3 fail.
	groups := groupsOf(t, fullDays([]string{
		"2025-01-06", "2025-01-07", "2025-01-08",
	}, 7))

	overall, reason, results := evaluator.Evaluate(groups, 6, day("2025-01-06"), day("2025-01-12"))

	require.False(t, overall)
	assert.True(t, results.WeeklyDistribution.Compliant)
	assert.Contains(t, reason, "Rule 1:")
	assert.Contains(t, reason, "Rule 3:")
	assert.NotContains(t, reason, "Rule 2:")
}
