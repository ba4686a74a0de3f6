package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/cronos-hq/attendance-compliance-go/internal/domain/analytics"
	"github.com/cronos-hq/attendance-compliance-go/internal/domain/report"
	"github.com/google/uuid"
)

type ReportServiceImpl struct {
	analyticsService analytics.AnalyticsService
	now              func() time.Time
}

func NewReportService(analyticsService analytics.AnalyticsService) report.ReportService {
	return &ReportServiceImpl{
		analyticsService: analyticsService,
		now:              time.Now,
	}
}

// MonthlyWorkbook implements report.ReportService.
func (s *ReportServiceImpl) MonthlyWorkbook(ctx context.Context, year int, month time.Month) (report.Report, error) {
	monthly, err := s.analyticsService.MonthlyReport(ctx, year, month)
	if err != nil {
		return report.Report{}, fmt.Errorf("failed to build monthly report: %w", err)
	}

	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).Add(-time.Second)
	issues, err := s.analyticsService.DataQualityIssues(ctx, start, end)
	if err != nil {
		return report.Report{}, fmt.Errorf("failed to collect data quality issues: %w", err)
	}

	departments, err := s.analyticsService.DepartmentStats(ctx, year, month)
	if err != nil {
		return report.Report{}, fmt.Errorf("failed to collect department statistics: %w", err)
	}

	generatedAt := s.now()
	data, err := buildWorkbook(monthly, issues, departments, generatedAt)
	if err != nil {
		return report.Report{}, fmt.Errorf("failed to render workbook: %w", err)
	}

	return report.Report{
		ID:          uuid.NewString(),
		Filename:    fmt.Sprintf("compliance_report_%04d_%02d.xlsx", year, int(month)),
		ContentType: report.ContentTypeXLSX,
		GeneratedAt: generatedAt,
		Data:        data,
	}, nil
}

// MonthlyCSV implements report.ReportService. The CSV carries the flat
// per-employee rows of the Employee Details sheet.
func (s *ReportServiceImpl) MonthlyCSV(ctx context.Context, year int, month time.Month) (report.Report, error) {
	monthly, err := s.analyticsService.MonthlyReport(ctx, year, month)
	if err != nil {
		return report.Report{}, fmt.Errorf("failed to build monthly report: %w", err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{
		"employee_id", "name", "department",
		"days_attended", "total_hours", "average_hours_per_day",
		"days_compliance", "hours_compliance", "pattern_compliance", "overall_compliance",
	}); err != nil {
		return report.Report{}, fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, emp := range monthly.EmployeeStats {
		row := []string{
			strconv.FormatInt(emp.Employee.ID, 10),
			emp.Employee.FullName(),
			emp.Employee.DepartmentOrUnknown(),
			strconv.Itoa(emp.Stats.TotalDaysAttended),
			strconv.FormatFloat(emp.Stats.TotalHoursWorked, 'f', 2, 64),
			strconv.FormatFloat(emp.Stats.AverageHoursPerDay, 'f', 2, 64),
			string(emp.Stats.DaysCompliance),
			string(emp.Stats.HoursCompliance),
			strconv.FormatBool(emp.Stats.PatternCompliance),
			string(emp.Stats.OverallCompliance),
		}
		if err := w.Write(row); err != nil {
			return report.Report{}, fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return report.Report{}, fmt.Errorf("failed to flush csv: %w", err)
	}

	return report.Report{
		ID:          uuid.NewString(),
		Filename:    fmt.Sprintf("compliance_report_%04d_%02d.csv", year, int(month)),
		ContentType: report.ContentTypeCSV,
		GeneratedAt: s.now(),
		Data:        buf.Bytes(),
	}, nil
}
