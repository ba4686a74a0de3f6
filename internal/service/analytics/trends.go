package analytics

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/cronos-hq/attendance-compliance-go/internal/domain/analytics"
)

// EmployeeTrends implements analytics.AnalyticsService. Months are walked
// from the oldest to the current one so trend data reads chronologically.
func (s *AnalyticsServiceImpl) EmployeeTrends(ctx context.Context, employeeID int64, monthsBack int) (analytics.EmployeeTrends, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return analytics.EmployeeTrends{}, err
	}

	trends := analytics.EmployeeTrends{
		Employee:  emp,
		TrendData: make([]analytics.TrendPoint, 0, monthsBack),
	}

	current := s.now()
	for i := monthsBack - 1; i >= 0; i-- {
		at := current.AddDate(0, -i, 0)
		stats, err := s.AnalyzeEmployeeMonth(ctx, employeeID, at.Year(), at.Month())
		if err != nil {
			return analytics.EmployeeTrends{}, fmt.Errorf("failed to analyze %s for employee %d: %w",
				at.Format("2006-01"), employeeID, err)
		}

		trends.TrendData = append(trends.TrendData, analytics.TrendPoint{
			Month:            at.Format("2006-01"),
			DaysAttended:     stats.TotalDaysAttended,
			TotalHours:       stats.TotalHoursWorked,
			ComplianceStatus: stats.OverallCompliance,
			HoursCompliant:   stats.HoursCompliance == analytics.StatusCompliant,
			PatternCompliant: stats.PatternCompliance,
		})
	}

	trends.OverallTrend = classifyTrend(trends.TrendData)
	return trends, nil
}

// classifyTrend compares how many of the newest three months were fully
// compliant against the compliant count of the older months. Fewer than
// three data points is stable by definition.
func classifyTrend(points []analytics.TrendPoint) string {
	if len(points) < 3 {
		return "stable"
	}

	recent, older := 0, 0
	cutoff := len(points) - 3
	for i, point := range points {
		if point.ComplianceStatus != analytics.StatusCompliant {
			continue
		}
		if i >= cutoff {
			recent++
		} else {
			older++
		}
	}

	switch {
	case recent > older:
		return "improving"
	case recent < older:
		return "declining"
	default:
		return "stable"
	}
}

// DepartmentStats implements analytics.AnalyticsService.
func (s *AnalyticsServiceImpl) DepartmentStats(ctx context.Context, year int, month time.Month) ([]analytics.DepartmentStats, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	start, end := MonthBounds(year, month)
	issues, err := s.DataQualityIssues(ctx, start, end)
	if err != nil {
		return nil, err
	}

	issuesByEmployee := make(map[int64]int)
	for _, issue := range issues {
		issuesByEmployee[issue.EmployeeID]++
	}

	type accumulator struct {
		total      int
		compliant  int
		totalHours float64
		dataIssues int
	}
	departments := make(map[string]*accumulator)

	for _, emp := range employees {
		name := emp.DepartmentOrUnknown()
		acc, ok := departments[name]
		if !ok {
			acc = &accumulator{}
			departments[name] = acc
		}
		acc.total++

		stats, err := s.AnalyzeEmployeeMonth(ctx, emp.ID, year, month)
		if err != nil {
			// The employee still counts toward the department headcount,
			// lowering its compliance rate.
			slog.Error("department analysis failed for employee", "employee_id", emp.ID, "error", err)
			continue
		}

		acc.totalHours += stats.TotalHoursWorked
		acc.dataIssues += issuesByEmployee[emp.ID]
		if stats.OverallCompliance == analytics.StatusCompliant {
			acc.compliant++
		}
	}

	result := make([]analytics.DepartmentStats, 0, len(departments))
	for name, acc := range departments {
		stat := analytics.DepartmentStats{
			DepartmentName:     name,
			TotalEmployees:     acc.total,
			CompliantEmployees: acc.compliant,
			TotalDataIssues:    acc.dataIssues,
		}
		if acc.total > 0 {
			stat.AverageComplianceRate = float64(acc.compliant) / float64(acc.total) * 100
			stat.AverageHoursPerEmployee = acc.totalHours / float64(acc.total)
		}
		result = append(result, stat)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].AverageComplianceRate != result[j].AverageComplianceRate {
			return result[i].AverageComplianceRate > result[j].AverageComplianceRate
		}
		return result[i].DepartmentName < result[j].DepartmentName
	})

	return result, nil
}
