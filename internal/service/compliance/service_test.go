package compliance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cronos-hq/attendance-compliance-go/internal/domain/compliance"
	"github.com/cronos-hq/attendance-compliance-go/internal/domain/punch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePunchRepo struct {
	punches map[int64][]punch.Punch
	errs    map[int64]error
}

func (f *fakePunchRepo) FetchPunches(_ context.Context, employeeID int64, _, _ time.Time) ([]punch.Punch, error) {
	if err, ok := f.errs[employeeID]; ok {
		return nil, err
	}
	return f.punches[employeeID], nil
}

func (f *fakePunchRepo) FetchDailyAnomalies(_ context.Context, _, _ time.Time) ([]punch.DailyAnomaly, error) {
	return nil, nil
}

func TestEvaluate_InvalidPeriod(t *testing.T) {
	t.Parallel()

	svc := NewComplianceService(&fakePunchRepo{}, compliance.DefaultRulePolicy())

	_, err := svc.Evaluate(context.Background(), 1, day("2025-01-31"), day("2025-01-01"))
	assert.ErrorIs(t, err, compliance.ErrInvalidPeriod)
}

func TestEvaluate_NoDataIsNonCompliant(t *testing.T) {
	t.Parallel()

	svc := NewComplianceService(&fakePunchRepo{}, compliance.DefaultRulePolicy())

	verdict, err := svc.Evaluate(context.Background(), 1, day("2025-01-01"), day("2025-01-31"))
	require.NoError(t, err)

	assert.False(t, verdict.Compliant)
	assert.Equal(t, "no attendance data in the period", verdict.Reason)
	assert.Equal(t, int64(1), verdict.EmployeeID)
	assert.Empty(t, verdict.DailyAttendance)
}

func TestEvaluate_CompliantEmployee(t *testing.T) {
	t.Parallel()

	// Six full eight-hour days, one in each 7-day block of the period.
	repo := &fakePunchRepo{punches: map[int64][]punch.Punch{
		42: fullDays([]string{
			"2025-01-02", "2025-01-09", "2025-01-16", "2025-01-20", "2025-01-23", "2025-01-30",
		}, 8),
	}}
	svc := NewComplianceService(repo, compliance.DefaultRulePolicy())

	verdict, err := svc.Evaluate(context.Background(), 42, day("2025-01-01"), day("2025-01-30"))
	require.NoError(t, err)

	assert.True(t, verdict.Compliant)
	assert.Equal(t, "all attendance rules met", verdict.Reason)
	assert.True(t, verdict.Rules.MinimumDays.Compliant)
	assert.True(t, verdict.Rules.WeeklyDistribution.Compliant)
	assert.True(t, verdict.Rules.MinimumHours.Compliant)

	require.Len(t, verdict.DailyAttendance, 6)
	for _, d := range verdict.DailyAttendance {
		assert.True(t, d.IsComplete)
		assert.True(t, d.MeetsHourTarget)
	}
}

func TestEvaluate_ConcentratedAttendanceFails(t *testing.T) {
	t.Parallel()

	// Enough days and hours, but all within the first half of the period.
	repo := &fakePunchRepo{punches: map[int64][]punch.Punch{
		7: fullDays([]string{
			"2025-01-02", "2025-01-03", "2025-01-06", "2025-01-07", "2025-01-09", "2025-01-10",
		}, 8),
	}}
	svc := NewComplianceService(repo, compliance.DefaultRulePolicy())

	verdict, err := svc.Evaluate(context.Background(), 7, day("2025-01-01"), day("2025-01-30"))
	require.NoError(t, err)

	assert.False(t, verdict.Compliant)
	assert.True(t, verdict.Rules.MinimumDays.Compliant)
	assert.False(t, verdict.Rules.WeeklyDistribution.Compliant)
	assert.Contains(t, verdict.Reason, "Rule 2:")
}

func TestEvaluateBatch_EmptyInput(t *testing.T) {
	t.Parallel()

	svc := NewComplianceService(&fakePunchRepo{}, compliance.DefaultRulePolicy())

	_, err := svc.EvaluateBatch(context.Background(), nil, day("2025-01-01"), day("2025-01-31"))
	assert.ErrorIs(t, err, compliance.ErrNoEmployees)
}

func TestEvaluateBatch_FetchFailureIsolatedPerEmployee(t *testing.T) {
	t.Parallel()

	repo := &fakePunchRepo{
		punches: map[int64][]punch.Punch{
			1: fullDays([]string{
				"2025-01-02", "2025-01-09", "2025-01-16", "2025-01-20", "2025-01-23", "2025-01-30",
			}, 8),
			3: fullDays([]string{"2025-01-02"}, 8),
		},
		errs: map[int64]error{2: errors.New("connection reset")},
	}
	svc := NewComplianceService(repo, compliance.DefaultRulePolicy())

	result, err := svc.EvaluateBatch(context.Background(), []int64{1, 2, 3}, day("2025-01-01"), day("2025-01-30"))
	require.NoError(t, err)

	assert.Equal(t, 3, result.TotalEmployees)
	assert.Equal(t, 1, result.CompliantEmployees)
	assert.Equal(t, 2, result.NonCompliantEmployees)
	require.Len(t, result.Results, 3)

	assert.True(t, result.Results[0].Compliant)

	failed := result.Results[1]
	assert.Equal(t, int64(2), failed.EmployeeID)
	assert.False(t, failed.Compliant)
	assert.Contains(t, failed.Reason, "compliance check failed")
	assert.Contains(t, failed.Reason, "connection reset")

	assert.False(t, result.Results[2].Compliant)
}
