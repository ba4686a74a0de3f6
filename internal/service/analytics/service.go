package analytics

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cronos-hq/attendance-compliance-go/internal/domain/analytics"
	"github.com/cronos-hq/attendance-compliance-go/internal/domain/compliance"
	"github.com/cronos-hq/attendance-compliance-go/internal/domain/employee"
	"github.com/cronos-hq/attendance-compliance-go/internal/domain/punch"
	compliancesvc "github.com/cronos-hq/attendance-compliance-go/internal/service/compliance"
)

type AnalyticsServiceImpl struct {
	punchRepo    punch.PunchRepository
	employeeRepo employee.EmployeeRepository
	policy       compliance.AnalyzerPolicy
	now          func() time.Time
}

func NewAnalyticsService(punchRepo punch.PunchRepository, employeeRepo employee.EmployeeRepository, policy compliance.AnalyzerPolicy) analytics.AnalyticsService {
	return &AnalyticsServiceImpl{
		punchRepo:    punchRepo,
		employeeRepo: employeeRepo,
		policy:       policy,
		now:          time.Now,
	}
}

// MonthBounds returns the inclusive timestamp range of a calendar month,
// first day at midnight through the last second before the next month.
func MonthBounds(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).Add(-time.Second)
	return start, end
}

// AnalyzeEmployeeMonth implements analytics.AnalyticsService.
func (s *AnalyticsServiceImpl) AnalyzeEmployeeMonth(ctx context.Context, employeeID int64, year int, month time.Month) (analytics.MonthlyStats, error) {
	start, end := MonthBounds(year, month)

	records, err := s.punchRepo.FetchPunches(ctx, employeeID, start, end)
	if err != nil {
		return analytics.MonthlyStats{}, fmt.Errorf("failed to fetch punches for employee %d: %w", employeeID, err)
	}

	groups, _ := compliancesvc.GroupByDay(records, start, end)
	_, byDate, _ := compliancesvc.BuildDaily(groups, s.policy.DailyHourTarget)
	weeks := compliancesvc.CalendarMonthWeeks(byDate, year, month, s.policy.MaxDaysPerWeek)

	stats := analytics.MonthlyStats{
		EmployeeID:     employeeID,
		Year:           year,
		Month:          month,
		WeeklyPatterns: weeks,
	}

	daysMeetingTarget := 0
	for _, day := range byDate {
		if day.IsComplete && day.HoursWorked != nil {
			stats.TotalDaysAttended++
			stats.TotalHoursWorked += *day.HoursWorked
			if day.MeetsHourTarget {
				daysMeetingTarget++
			}
		}
	}
	if stats.TotalDaysAttended > 0 {
		stats.AverageHoursPerDay = stats.TotalHoursWorked / float64(stats.TotalDaysAttended)
	}

	stats.PatternCompliance = true
	for _, week := range weeks {
		switch week.DaysAttended {
		case 1:
			stats.WeeksWithOneDay++
		case 2:
			stats.WeeksWithTwoDays++
		}
		if week.DaysAttended > s.policy.MaxDaysPerWeek {
			stats.PatternCompliance = false
		}
	}

	stats.DaysCompliance = s.gradeDays(stats.TotalDaysAttended)
	stats.HoursCompliance = s.gradeHours(stats.TotalDaysAttended, daysMeetingTarget)
	stats.OverallCompliance = overallStatus(stats.DaysCompliance, stats.HoursCompliance, stats.PatternCompliance)

	return stats, nil
}

// gradeDays maps the attended-day count to the graduated scale.
func (s *AnalyticsServiceImpl) gradeDays(days int) analytics.Status {
	switch {
	case days >= s.policy.CompliantDays:
		return analytics.StatusCompliant
	case days >= s.policy.PartialDays:
		return analytics.StatusPartial
	default:
		return analytics.StatusNonCompliant
	}
}

// gradeHours grades on the share of valid days that individually meet the
// daily target; hours on a long day never compensate for a short one. Zero
// valid days cannot meet any target.
func (s *AnalyticsServiceImpl) gradeHours(validDays, daysMeetingTarget int) analytics.Status {
	if validDays == 0 {
		return analytics.StatusNonCompliant
	}
	switch {
	case daysMeetingTarget == validDays:
		return analytics.StatusCompliant
	case float64(daysMeetingTarget) >= float64(validDays)*s.policy.HoursPartialRatio:
		return analytics.StatusPartial
	default:
		return analytics.StatusNonCompliant
	}
}

// overallStatus folds the three dimensions into one level. Full compliance
// needs all three; a partial on either graded dimension downgrades to
// partial; a non-compliant grade on either wins.
func overallStatus(days, hours analytics.Status, pattern bool) analytics.Status {
	if days == analytics.StatusCompliant && hours == analytics.StatusCompliant && pattern {
		return analytics.StatusCompliant
	}
	if days != analytics.StatusNonCompliant && hours != analytics.StatusNonCompliant {
		return analytics.StatusPartial
	}
	return analytics.StatusNonCompliant
}

// MonthlyReport implements analytics.AnalyticsService.
func (s *AnalyticsServiceImpl) MonthlyReport(ctx context.Context, year int, month time.Month) (analytics.MonthlyReport, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return analytics.MonthlyReport{}, fmt.Errorf("failed to list employees: %w", err)
	}

	report := analytics.MonthlyReport{
		Year:           year,
		Month:          month,
		TotalEmployees: len(employees),
		EmployeeStats:  make([]analytics.EmployeeMonthly, 0, len(employees)),
	}

	for _, emp := range employees {
		stats, err := s.AnalyzeEmployeeMonth(ctx, emp.ID, year, month)
		if err != nil {
			slog.Error("monthly analysis failed for employee", "employee_id", emp.ID, "error", err)
			report.Summary.Warning++
			continue
		}

		switch stats.OverallCompliance {
		case analytics.StatusCompliant:
			report.Summary.Compliant++
		case analytics.StatusPartial:
			report.Summary.Partial++
		default:
			report.Summary.NonCompliant++
		}
		report.EmployeeStats = append(report.EmployeeStats, analytics.EmployeeMonthly{
			Employee: emp,
			Stats:    stats,
		})
	}

	return report, nil
}

// WeeklyPatternDetail implements analytics.AnalyticsService.
func (s *AnalyticsServiceImpl) WeeklyPatternDetail(ctx context.Context, employeeID int64, year int, month time.Month) (analytics.WeeklyPatternDetail, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return analytics.WeeklyPatternDetail{}, err
	}

	stats, err := s.AnalyzeEmployeeMonth(ctx, employeeID, year, month)
	if err != nil {
		return analytics.WeeklyPatternDetail{}, err
	}

	detail := analytics.WeeklyPatternDetail{
		Employee:       emp,
		WeeklyPatterns: make([]analytics.WeekDetail, 0, len(stats.WeeklyPatterns)),
		Summary: analytics.WeeklySummaryTotals{
			TotalDays:          stats.TotalDaysAttended,
			TotalHours:         stats.TotalHoursWorked,
			AverageHoursPerDay: stats.AverageHoursPerDay,
			WeeksWithOneDay:    stats.WeeksWithOneDay,
			WeeksWithTwoDays:   stats.WeeksWithTwoDays,
			DaysCompliance:     stats.DaysCompliance,
			HoursCompliance:    stats.HoursCompliance,
			PatternCompliance:  stats.PatternCompliance,
			OverallCompliance:  stats.OverallCompliance,
		},
	}

	for i, week := range stats.WeeklyPatterns {
		detail.WeeklyPatterns = append(detail.WeeklyPatterns, renderWeek(i+1, week))
	}

	return detail, nil
}

func renderWeek(number int, week compliance.WeeklyPattern) analytics.WeekDetail {
	rendered := analytics.WeekDetail{
		WeekNumber:   number,
		WeekStart:    week.WeekStart.Format("2006-01-02"),
		WeekEnd:      week.WeekEnd.Format("2006-01-02"),
		DaysAttended: week.DaysAttended,
		TotalHours:   week.TotalHours,
		MeetsPattern: week.MeetsPattern,
		DailyDetails: make([]analytics.DayDetail, 0, len(week.DailyDetails)),
	}

	for _, day := range week.DailyDetails {
		rendered.DailyDetails = append(rendered.DailyDetails, analytics.DayDetail{
			Date:            day.Date.Format("2006-01-02"),
			EntryTime:       formatClock(day.EntryTime),
			ExitTime:        formatClock(day.ExitTime),
			HoursWorked:     day.HoursWorked,
			IsComplete:      day.IsComplete,
			MeetsHourTarget: day.MeetsHourTarget,
		})
	}

	return rendered
}

func formatClock(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("15:04:05")
	return &s
}
