package compliance

// RulePolicy configures the boolean rule-based evaluation path (the ad-hoc
// compliance checker). Its 8-hour day threshold is intentionally different
// from the analyzer's 9-hour target; the two paths are separate policies and
// must not be unified without product confirmation.
type RulePolicy struct {
	// MinDaysPerMonth is the rule-1 minimum of distinct attended days.
	MinDaysPerMonth int
	// MinHoursPerDay is the rule-3 per-day hour threshold (inclusive).
	MinHoursPerDay float64
	// MinDaysMeetingHours is the rule-3 minimum of days at or above the
	// hour threshold.
	MinDaysMeetingHours int
	// MaxRequiredWeeks caps the rule-2 required week count for long periods.
	MaxRequiredWeeks int
}

// DefaultRulePolicy returns the production rule thresholds.
func DefaultRulePolicy() RulePolicy {
	return RulePolicy{
		MinDaysPerMonth:     6,
		MinHoursPerDay:      8.0,
		MinDaysMeetingHours: 6,
		MaxRequiredWeeks:    5,
	}
}

// AnalyzerPolicy configures the graduated three-level evaluation path used
// by monthly and trend reporting.
type AnalyzerPolicy struct {
	// DailyHourTarget is the per-day hour target for a complete day.
	DailyHourTarget float64
	// CompliantDays / PartialDays are the graduated monthly day thresholds.
	CompliantDays int
	PartialDays   int
	// HoursPartialRatio is the fraction of valid days that must meet the
	// hour target for partial hours compliance (full compliance needs all).
	HoursPartialRatio float64
	// MaxDaysPerWeek is the weekly pattern limit; a week attended more often
	// breaks pattern compliance.
	MaxDaysPerWeek int
}

// DefaultAnalyzerPolicy returns the production analyzer thresholds.
func DefaultAnalyzerPolicy() AnalyzerPolicy {
	return AnalyzerPolicy{
		DailyHourTarget:   9.0,
		CompliantDays:     6,
		PartialDays:       4,
		HoursPartialRatio: 0.8,
		MaxDaysPerWeek:    2,
	}
}
