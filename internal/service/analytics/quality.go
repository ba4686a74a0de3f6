package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/cronos-hq/attendance-compliance-go/internal/domain/analytics"
	"github.com/cronos-hq/attendance-compliance-go/internal/domain/punch"
)

// DataQualityIssues implements analytics.AnalyticsService. Anomalies come
// from the store pre-filtered to days whose record count is not exactly two;
// classification happens here.
func (s *AnalyticsServiceImpl) DataQualityIssues(ctx context.Context, start, end time.Time) ([]analytics.DataQualityIssue, error) {
	if start.IsZero() || end.IsZero() {
		end = s.now()
		start = end.AddDate(0, 0, -30)
	}

	anomalies, err := s.punchRepo.FetchDailyAnomalies(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch daily anomalies: %w", err)
	}

	names, err := s.employeeNames(ctx)
	if err != nil {
		return nil, err
	}

	issues := make([]analytics.DataQualityIssue, 0, len(anomalies))
	for _, anomaly := range anomalies {
		issueType, description := classifyAnomaly(anomaly)

		name, ok := names[anomaly.EmployeeID]
		if !ok {
			name = "Unknown"
		}

		issues = append(issues, analytics.DataQualityIssue{
			EmployeeID:   anomaly.EmployeeID,
			EmployeeName: name,
			Date:         anomaly.Day,
			Type:         issueType,
			Description:  description,
			TotalRecords: anomaly.TotalRecords,
			FirstRecord:  anomaly.FirstRecord,
			LastRecord:   anomaly.LastRecord,
		})
	}

	return issues, nil
}

func classifyAnomaly(anomaly punch.DailyAnomaly) (analytics.IssueType, string) {
	switch {
	case anomaly.TotalRecords == 1:
		return analytics.IssueMissingExit, "only one punch record for the day"
	case anomaly.TotalRecords > 2:
		return analytics.IssueMultipleEntries, fmt.Sprintf("%d punch records in one day", anomaly.TotalRecords)
	default:
		return analytics.IssueInvalidSequence, "punch records do not form an entry/exit pair"
	}
}

// DashboardStats implements analytics.AnalyticsService.
func (s *AnalyticsServiceImpl) DashboardStats(ctx context.Context, year int, month time.Month) (analytics.DashboardStats, error) {
	report, err := s.MonthlyReport(ctx, year, month)
	if err != nil {
		return analytics.DashboardStats{}, err
	}

	start, end := MonthBounds(year, month)
	issues, err := s.DataQualityIssues(ctx, start, end)
	if err != nil {
		return analytics.DashboardStats{}, err
	}

	stats := analytics.DashboardStats{
		TotalEmployees:  report.TotalEmployees,
		TotalDataIssues: len(issues),
	}

	// Average over total hours and total days so a one-day employee does
	// not weigh as much as a full-month one.
	var totalHours float64
	totalDays := 0
	for _, emp := range report.EmployeeStats {
		if emp.Stats.OverallCompliance == analytics.StatusCompliant {
			stats.CompliantEmployees++
		} else {
			stats.NonCompliantEmployees++
		}
		totalHours += emp.Stats.TotalHoursWorked
		totalDays += emp.Stats.TotalDaysAttended
	}
	if report.TotalEmployees > 0 {
		stats.ComplianceRate = float64(stats.CompliantEmployees) / float64(report.TotalEmployees) * 100
	}
	if totalDays > 0 {
		stats.AverageHoursPerDay = totalHours / float64(totalDays)
	}

	stats.MostCommonIssues = rankIssues(issues)
	return stats, nil
}

// rankIssues counts the issues per type and returns every type sorted by
// frequency descending, ties broken by type name for stable output.
func rankIssues(issues []analytics.DataQualityIssue) []analytics.IssueFrequency {
	counts := make(map[analytics.IssueType]int)
	for _, issue := range issues {
		counts[issue.Type]++
	}

	ranking := make([]analytics.IssueFrequency, 0, len(counts))
	for issueType, count := range counts {
		ranking = append(ranking, analytics.IssueFrequency{Type: issueType, Count: count})
	}
	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].Count != ranking[j].Count {
			return ranking[i].Count > ranking[j].Count
		}
		return ranking[i].Type < ranking[j].Type
	})
	return ranking
}

func (s *AnalyticsServiceImpl) employeeNames(ctx context.Context) (map[int64]string, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	names := make(map[int64]string, len(employees))
	for _, emp := range employees {
		names[emp.ID] = emp.FullName()
	}
	return names, nil
}
