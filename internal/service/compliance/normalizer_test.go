package compliance

import (
	"testing"
	"time"

	"github.com/cronos-hq/attendance-compliance-go/internal/domain/punch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func punchAt(employeeID int64, value string) punch.Punch {
	t, err := time.Parse("2006-01-02 15:04:05", value)
	if err != nil {
		panic("bad test timestamp: " + value)
	}
	return punch.Punch{EmployeeID: employeeID, PunchedAt: t}
}

func rawPunchAt(employeeID int64, value string) punch.Punch {
	return punch.Punch{EmployeeID: employeeID, RawTime: value}
}

func day(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic("bad test date: " + value)
	}
	return t
}

func TestGroupByDay_GroupsAscendingByDate(t *testing.T) {
	t.Parallel()

	records := []punch.Punch{
		punchAt(1, "2025-03-12 17:30:00"),
		punchAt(1, "2025-03-10 09:00:00"),
		punchAt(1, "2025-03-12 08:45:00"),
		punchAt(1, "2025-03-10 18:00:00"),
		punchAt(1, "2025-03-11 09:15:00"),
	}

	groups, stats := GroupByDay(records, time.Time{}, time.Time{})

	require.Equal(t, 3, groups.Len())
	assert.Equal(t, 5, stats.TotalRecords)

	dates := groups.Dates()
	assert.Equal(t, day("2025-03-10"), dates[0])
	assert.Equal(t, day("2025-03-11"), dates[1])
	assert.Equal(t, day("2025-03-12"), dates[2])

	// Within a day punches are ascending by timestamp.
	march12 := groups.Punches(day("2025-03-12"))
	require.Len(t, march12, 2)
	assert.True(t, march12[0].PunchedAt.Before(march12[1].PunchedAt))
}

func TestGroupByDay_DiscardsIgnoredPunches(t *testing.T) {
	t.Parallel()

	flagged := punchAt(1, "2025-03-10 09:00:00")
	flagged.Ignored = true

	groups, stats := GroupByDay([]punch.Punch{
		flagged,
		punchAt(1, "2025-03-10 18:00:00"),
	}, time.Time{}, time.Time{})

	assert.Equal(t, 1, stats.Ignored)
	require.Equal(t, 1, groups.Len())
	assert.Len(t, groups.Punches(day("2025-03-10")), 1)
}

func TestGroupByDay_CoercesTextualTimestamps(t *testing.T) {
	t.Parallel()

	groups, stats := GroupByDay([]punch.Punch{
		rawPunchAt(1, "2025-03-10 09:00:00"),
		rawPunchAt(1, "not-a-timestamp"),
		rawPunchAt(1, ""),
	}, time.Time{}, time.Time{})

	assert.Equal(t, 2, stats.Unparseable)
	require.Equal(t, 1, groups.Len())

	parsed := groups.Punches(day("2025-03-10"))
	require.Len(t, parsed, 1)
	assert.Equal(t, 9, parsed[0].PunchedAt.Hour())
}

func TestGroupByDay_PeriodFilterCountsInAndOut(t *testing.T) {
	t.Parallel()

	start := day("2025-03-01")
	end := time.Date(2025, 3, 31, 23, 59, 59, 0, time.UTC)

	groups, stats := GroupByDay([]punch.Punch{
		punchAt(1, "2025-02-28 09:00:00"),
		punchAt(1, "2025-03-10 09:00:00"),
		punchAt(1, "2025-03-10 18:00:00"),
		punchAt(1, "2025-04-01 09:00:00"),
	}, start, end)

	assert.Equal(t, 2, stats.InPeriod)
	assert.Equal(t, 2, stats.OutOfPeriod)
	assert.Equal(t, 1, groups.Len())
}

func TestGroupByDay_EndDateMidnightKeepsWholeDay(t *testing.T) {
	t.Parallel()

	// Date-only bounds carry a midnight clock; punches later on the end
	// date still belong to the period.
	start := day("2025-01-01")
	end := day("2025-01-30")

	groups, stats := GroupByDay([]punch.Punch{
		punchAt(1, "2025-01-30 09:00:00"),
		punchAt(1, "2025-01-30 17:00:00"),
		punchAt(1, "2025-01-31 09:00:00"),
	}, start, end)

	assert.Equal(t, 2, stats.InPeriod)
	assert.Equal(t, 1, stats.OutOfPeriod)
	require.Equal(t, 1, groups.Len())
	assert.Len(t, groups.Punches(day("2025-01-30")), 2)
}

func TestGroupByDay_PeriodBoundsAreInclusive(t *testing.T) {
	t.Parallel()

	start, err := time.Parse("2006-01-02 15:04:05", "2025-03-01 09:00:00")
	require.NoError(t, err)
	end, err := time.Parse("2006-01-02 15:04:05", "2025-03-02 18:00:00")
	require.NoError(t, err)

	groups, stats := GroupByDay([]punch.Punch{
		punchAt(1, "2025-03-01 09:00:00"),
		punchAt(1, "2025-03-02 18:00:00"),
	}, start, end)

	assert.Equal(t, 2, stats.InPeriod)
	assert.Equal(t, 0, stats.OutOfPeriod)
	assert.Equal(t, 2, groups.Len())
}
