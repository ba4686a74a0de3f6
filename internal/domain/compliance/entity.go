package compliance

import "time"

// DailyAttendance is the summary of one calendar day derived from that day's
// punches. A day exists only if at least one punch survived normalization.
type DailyAttendance struct {
	Date            time.Time
	EntryTime       *time.Time
	ExitTime        *time.Time
	HoursWorked     *float64
	IsComplete      bool
	MeetsHourTarget bool
	RecordCount     int
}

// WeeklyPattern aggregates the daily summaries of one week of the evaluated
// period. DailyDetails is ordered ascending by date.
type WeeklyPattern struct {
	WeekStart    time.Time
	WeekEnd      time.Time
	DaysAttended int
	TotalHours   float64
	DailyDetails []DailyAttendance
	MeetsPattern bool
}

// MinimumDaysResult is the outcome of rule 1 (minimum attendance days per
// month). Days are counted from grouped dates; completeness is not required.
type MinimumDaysResult struct {
	Compliant    bool   `json:"compliant"`
	DaysAttended int    `json:"days_attended"`
	MinRequired  int    `json:"min_required"`
	TotalRecords int    `json:"total_records_available"`
	Reason       string `json:"reason"`
}

// WeeklyDistributionResult is the outcome of rule 2 (attendance spread over
// period-relative 7-day blocks).
type WeeklyDistributionResult struct {
	Compliant           bool   `json:"compliant"`
	WeeksWithAttendance int    `json:"weeks_with_attendance"`
	TotalWeeksInPeriod  int    `json:"total_weeks_in_period"`
	MinWeeksRequired    int    `json:"min_weeks_required"`
	Reason              string `json:"reason"`
}

// MinimumHoursResult is the outcome of rule 3 (minimum worked hours per
// attended day).
type MinimumHoursResult struct {
	Compliant        bool   `json:"compliant"`
	DaysMeetingHours int    `json:"days_meeting_hours"`
	TotalDays        int    `json:"total_days"`
	MinDaysRequired  int    `json:"min_days_required"`
	Reason           string `json:"reason"`
}

// RuleResults groups the three rule outcomes of one evaluation.
type RuleResults struct {
	MinimumDays        MinimumDaysResult        `json:"rule_1_minimum_days"`
	WeeklyDistribution WeeklyDistributionResult `json:"rule_2_weekly_distribution"`
	MinimumHours       MinimumHoursResult       `json:"rule_3_minimum_hours"`
}

// Verdict is the pass/fail outcome for one employee and period. It is
// produced fresh per query and never persisted.
type Verdict struct {
	EmployeeID  int64       `json:"employee_id"`
	PeriodStart time.Time   `json:"period_start"`
	PeriodEnd   time.Time   `json:"period_end"`
	Compliant   bool        `json:"compliant"`
	Reason      string      `json:"reason"`
	Rules       RuleResults `json:"rules"`
	// DailyAttendance lists the evaluated days ascending by date.
	DailyAttendance []DailyAttendance `json:"daily_attendance"`
}

// BatchResult aggregates the verdicts of a multi-employee evaluation.
// Summary counts are commutative over employees.
type BatchResult struct {
	PeriodStart           time.Time `json:"period_start"`
	PeriodEnd             time.Time `json:"period_end"`
	TotalEmployees        int       `json:"total_employees"`
	CompliantEmployees    int       `json:"compliant_employees"`
	NonCompliantEmployees int       `json:"non_compliant_employees"`
	Results               []Verdict `json:"results"`
}
