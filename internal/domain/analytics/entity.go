package analytics

import (
	"time"

	"github.com/cronos-hq/attendance-compliance-go/internal/domain/compliance"
	"github.com/cronos-hq/attendance-compliance-go/internal/domain/employee"
)

// Status is the graduated compliance level used by monthly and trend
// reporting.
type Status string

const (
	StatusCompliant    Status = "compliant"
	StatusPartial      Status = "partial"
	StatusNonCompliant Status = "non_compliant"
	StatusWarning      Status = "warning"
)

// IssueType classifies a data-quality anomaly.
type IssueType string

const (
	IssueMissingExit     IssueType = "missing_exit"
	IssueMissingEntry    IssueType = "missing_entry"
	IssueMultipleEntries IssueType = "multiple_entries"
	IssueInvalidSequence IssueType = "invalid_sequence"
)

// MonthlyStats is the rich per-employee monthly evaluation.
type MonthlyStats struct {
	EmployeeID         int64                      `json:"employee_id"`
	Year               int                        `json:"year"`
	Month              time.Month                 `json:"month"`
	TotalDaysAttended  int                        `json:"total_days_attended"`
	TotalHoursWorked   float64                    `json:"total_hours_worked"`
	AverageHoursPerDay float64                    `json:"average_hours_per_day"`
	WeeklyPatterns     []compliance.WeeklyPattern `json:"weekly_patterns"`
	DaysCompliance     Status                     `json:"days_compliance"`
	HoursCompliance    Status                     `json:"hours_compliance"`
	OverallCompliance  Status                     `json:"overall_compliance"`
	WeeksWithOneDay    int                        `json:"weeks_with_1_day"`
	WeeksWithTwoDays   int                        `json:"weeks_with_2_days"`
	PatternCompliance  bool                       `json:"pattern_compliance"`
}

// EmployeeMonthly pairs directory info with the monthly stats.
type EmployeeMonthly struct {
	Employee employee.Employee `json:"employee_info"`
	Stats    MonthlyStats      `json:"stats"`
}

// ComplianceSummary counts employees per status for one month. Warning
// counts employees whose analysis failed.
type ComplianceSummary struct {
	Compliant    int `json:"compliant"`
	Partial      int `json:"partial"`
	NonCompliant int `json:"non_compliant"`
	Warning      int `json:"warning"`
}

// MonthlyReport is the all-employee compliance report for one month.
type MonthlyReport struct {
	Year           int               `json:"year"`
	Month          time.Month        `json:"month"`
	TotalEmployees int               `json:"total_employees"`
	Summary        ComplianceSummary `json:"compliance_summary"`
	EmployeeStats  []EmployeeMonthly `json:"employee_stats"`
}

// DataQualityIssue is a day with a suspicious punch record count, enriched
// with the employee name ("Unknown" when the lookup misses).
type DataQualityIssue struct {
	EmployeeID   int64      `json:"employee_id"`
	EmployeeName string     `json:"employee_name"`
	Date         time.Time  `json:"date"`
	Type         IssueType  `json:"issue_type"`
	Description  string     `json:"description"`
	TotalRecords int        `json:"total_records"`
	FirstRecord  *time.Time `json:"first_record"`
	LastRecord   *time.Time `json:"last_record"`
}

// IssueFrequency is one row of the most-common-issues ranking.
type IssueFrequency struct {
	Type  IssueType `json:"type"`
	Count int       `json:"count"`
}

// DashboardStats are the headline numbers for the current month.
type DashboardStats struct {
	TotalEmployees        int              `json:"total_employees"`
	CompliantEmployees    int              `json:"compliant_employees"`
	NonCompliantEmployees int              `json:"non_compliant_employees"`
	ComplianceRate        float64          `json:"compliance_rate"`
	TotalDataIssues       int              `json:"total_data_issues"`
	AverageHoursPerDay    float64          `json:"average_hours_per_day"`
	MostCommonIssues      []IssueFrequency `json:"most_common_issues"`
}

// TrendPoint is one month of an employee's compliance trend.
type TrendPoint struct {
	Month            string  `json:"month"`
	DaysAttended     int     `json:"days_attended"`
	TotalHours       float64 `json:"total_hours"`
	ComplianceStatus Status  `json:"compliance_status"`
	HoursCompliant   bool    `json:"hours_compliance"`
	PatternCompliant bool    `json:"pattern_compliance"`
}

// EmployeeTrends is the multi-month trend for one employee. Trend points are
// ordered chronologically; OverallTrend is improving, declining or stable.
type EmployeeTrends struct {
	Employee     employee.Employee `json:"employee_info"`
	TrendData    []TrendPoint      `json:"trend_data"`
	OverallTrend string            `json:"overall_trend"`
}

// DepartmentStats aggregates one department for one month.
type DepartmentStats struct {
	DepartmentName          string  `json:"department_name"`
	TotalEmployees          int     `json:"total_employees"`
	CompliantEmployees      int     `json:"compliant_employees"`
	AverageComplianceRate   float64 `json:"average_compliance_rate"`
	AverageHoursPerEmployee float64 `json:"average_hours_per_employee"`
	TotalDataIssues         int     `json:"total_data_issues"`
}

// WeeklyPatternDetail is the per-week drilldown of one employee's month.
type WeeklyPatternDetail struct {
	Employee       employee.Employee   `json:"employee_info"`
	WeeklyPatterns []WeekDetail        `json:"weekly_patterns"`
	Summary        WeeklySummaryTotals `json:"summary"`
}

// WeekDetail is one rendered week of the drilldown.
type WeekDetail struct {
	WeekNumber   int         `json:"week_number"`
	WeekStart    string      `json:"week_start"`
	WeekEnd      string      `json:"week_end"`
	DaysAttended int         `json:"days_attended"`
	TotalHours   float64     `json:"total_hours"`
	MeetsPattern bool        `json:"meets_requirement"`
	DailyDetails []DayDetail `json:"daily_details"`
}

// DayDetail is one rendered day of the drilldown.
type DayDetail struct {
	Date            string   `json:"date"`
	EntryTime       *string  `json:"entry_time"`
	ExitTime        *string  `json:"exit_time"`
	HoursWorked     *float64 `json:"hours_worked"`
	IsComplete      bool     `json:"is_complete"`
	MeetsHourTarget bool     `json:"meets_hour_target"`
}

// WeeklySummaryTotals closes the drilldown with monthly totals.
type WeeklySummaryTotals struct {
	TotalDays          int     `json:"total_days"`
	TotalHours         float64 `json:"total_hours"`
	AverageHoursPerDay float64 `json:"average_hours_per_day"`
	WeeksWithOneDay    int     `json:"weeks_with_1_day"`
	WeeksWithTwoDays   int     `json:"weeks_with_2_days"`
	DaysCompliance     Status  `json:"days_compliance"`
	HoursCompliance    Status  `json:"hours_compliance"`
	PatternCompliance  bool    `json:"pattern_compliance"`
	OverallCompliance  Status  `json:"overall_compliance"`
}
