package analytics

import (
	"context"
	"time"
)

// AnalyticsService is the graduated monthly/trend evaluation path. It shares
// the daily and weekly aggregation with the rule-based checker but applies
// the three-level analyzer policy.
type AnalyticsService interface {
	// AnalyzeEmployeeMonth evaluates one employee over one calendar month.
	AnalyzeEmployeeMonth(ctx context.Context, employeeID int64, year int, month time.Month) (MonthlyStats, error)

	// MonthlyReport evaluates every employee in the directory for one month.
	// A per-employee analysis failure is counted as a warning and logged,
	// never aborting the report.
	MonthlyReport(ctx context.Context, year int, month time.Month) (MonthlyReport, error)

	// WeeklyPatternDetail renders the per-week drilldown for one employee.
	WeeklyPatternDetail(ctx context.Context, employeeID int64, year int, month time.Month) (WeeklyPatternDetail, error)

	// DataQualityIssues lists classified punch anomalies. Zero bounds
	// default to the last 30 days.
	DataQualityIssues(ctx context.Context, start, end time.Time) ([]DataQualityIssue, error)

	// DashboardStats computes the headline numbers for one month.
	DashboardStats(ctx context.Context, year int, month time.Month) (DashboardStats, error)

	// EmployeeTrends evaluates the last monthsBack months for one employee.
	EmployeeTrends(ctx context.Context, employeeID int64, monthsBack int) (EmployeeTrends, error)

	// DepartmentStats aggregates one month per department, sorted by
	// compliance rate descending.
	DepartmentStats(ctx context.Context, year int, month time.Month) ([]DepartmentStats, error)
}
