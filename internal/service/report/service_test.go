package report

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/cronos-hq/attendance-compliance-go/internal/domain/analytics"
	"github.com/cronos-hq/attendance-compliance-go/internal/domain/employee"
	"github.com/cronos-hq/attendance-compliance-go/internal/domain/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type fakeAnalytics struct {
	monthly     analytics.MonthlyReport
	issues      []analytics.DataQualityIssue
	departments []analytics.DepartmentStats
}

func (f *fakeAnalytics) AnalyzeEmployeeMonth(context.Context, int64, int, time.Month) (analytics.MonthlyStats, error) {
	return analytics.MonthlyStats{}, nil
}

func (f *fakeAnalytics) MonthlyReport(context.Context, int, time.Month) (analytics.MonthlyReport, error) {
	return f.monthly, nil
}

func (f *fakeAnalytics) WeeklyPatternDetail(context.Context, int64, int, time.Month) (analytics.WeeklyPatternDetail, error) {
	return analytics.WeeklyPatternDetail{}, nil
}

func (f *fakeAnalytics) DataQualityIssues(context.Context, time.Time, time.Time) ([]analytics.DataQualityIssue, error) {
	return f.issues, nil
}

func (f *fakeAnalytics) DashboardStats(context.Context, int, time.Month) (analytics.DashboardStats, error) {
	return analytics.DashboardStats{}, nil
}

func (f *fakeAnalytics) EmployeeTrends(context.Context, int64, int) (analytics.EmployeeTrends, error) {
	return analytics.EmployeeTrends{}, nil
}

func (f *fakeAnalytics) DepartmentStats(context.Context, int, time.Month) ([]analytics.DepartmentStats, error) {
	return f.departments, nil
}

func strPtr(s string) *string { return &s }

func sampleMonthly() analytics.MonthlyReport {
	return analytics.MonthlyReport{
		Year:           2025,
		Month:          time.January,
		TotalEmployees: 2,
		Summary:        analytics.ComplianceSummary{Compliant: 1, NonCompliant: 1},
		EmployeeStats: []analytics.EmployeeMonthly{
			{
				Employee: employee.Employee{ID: 1, FirstName: "Ana", LastName: "Silva", Department: strPtr("Engineering")},
				Stats: analytics.MonthlyStats{
					EmployeeID:         1,
					TotalDaysAttended:  6,
					TotalHoursWorked:   54,
					AverageHoursPerDay: 9,
					DaysCompliance:     analytics.StatusCompliant,
					HoursCompliance:    analytics.StatusCompliant,
					PatternCompliance:  true,
					OverallCompliance:  analytics.StatusCompliant,
				},
			},
			{
				Employee: employee.Employee{ID: 2, FirstName: "Bruno", LastName: "Costa"},
				Stats: analytics.MonthlyStats{
					EmployeeID:        2,
					OverallCompliance: analytics.StatusNonCompliant,
					DaysCompliance:    analytics.StatusNonCompliant,
					HoursCompliance:   analytics.StatusNonCompliant,
				},
			},
		},
	}
}

func TestMonthlyWorkbook(t *testing.T) {
	t.Parallel()

	svc := NewReportService(&fakeAnalytics{
		monthly: sampleMonthly(),
		issues: []analytics.DataQualityIssue{
			{EmployeeID: 2, EmployeeName: "Bruno Costa", Date: time.Date(2025, 1, 7, 0, 0, 0, 0, time.UTC), Type: analytics.IssueMissingExit, Description: "only one punch record for the day", TotalRecords: 1},
		},
		departments: []analytics.DepartmentStats{
			{DepartmentName: "Engineering", TotalEmployees: 1, CompliantEmployees: 1, AverageComplianceRate: 100, AverageHoursPerEmployee: 54},
		},
	})

	result, err := svc.MonthlyWorkbook(context.Background(), 2025, time.January)
	require.NoError(t, err)

	assert.Equal(t, "compliance_report_2025_01.xlsx", result.Filename)
	assert.Equal(t, report.ContentTypeXLSX, result.ContentType)
	assert.NotEmpty(t, result.ID)

	f, err := excelize.OpenReader(bytes.NewReader(result.Data))
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t,
		[]string{"Summary", "Employee Details", "Data Quality Issues", "Department Statistics"},
		f.GetSheetList())

	name, err := f.GetCellValue("Employee Details", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Ana Silva", name)

	status, err := f.GetCellValue("Employee Details", "J3")
	require.NoError(t, err)
	assert.Equal(t, "non_compliant", status)

	issueType, err := f.GetCellValue("Data Quality Issues", "D2")
	require.NoError(t, err)
	assert.Equal(t, "missing_exit", issueType)

	dept, err := f.GetCellValue("Department Statistics", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Engineering", dept)
}

func TestMonthlyCSV(t *testing.T) {
	t.Parallel()

	svc := NewReportService(&fakeAnalytics{monthly: sampleMonthly()})

	result, err := svc.MonthlyCSV(context.Background(), 2025, time.January)
	require.NoError(t, err)

	assert.Equal(t, "compliance_report_2025_01.csv", result.Filename)
	assert.Equal(t, report.ContentTypeCSV, result.ContentType)

	lines := strings.Split(strings.TrimSpace(string(result.Data)), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "overall_compliance")
	assert.Contains(t, lines[1], "Ana Silva")
	assert.Contains(t, lines[1], "Engineering")
	assert.Contains(t, lines[2], "Unknown")
}
