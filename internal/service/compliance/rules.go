package compliance

import (
	"fmt"
	"strings"
	"time"

	"github.com/cronos-hq/attendance-compliance-go/internal/domain/compliance"
	"github.com/cronos-hq/attendance-compliance-go/internal/domain/punch"
)

// RuleEvaluator applies the three boolean policy rules to grouped punches.
type RuleEvaluator struct {
	policy compliance.RulePolicy
}

func NewRuleEvaluator(policy compliance.RulePolicy) RuleEvaluator {
	return RuleEvaluator{policy: policy}
}

// MinimumDays checks rule 1: at least MinDaysPerMonth distinct dates with
// any attendance. Completeness of the day is not required here; a single
// punch still marks the day as attended.
func (e RuleEvaluator) MinimumDays(groups *DayGroups, totalRecords int) compliance.MinimumDaysResult {
	days := groups.Len()
	required := e.policy.MinDaysPerMonth

	reason := fmt.Sprintf("minimum %d attendance days required, attended %d day(s)", required, days)
	if totalRecords > 0 && days == 0 {
		reason = fmt.Sprintf("minimum %d attendance days required, attended 0 days (%d records available, none inside the period)",
			required, totalRecords)
	}

	return compliance.MinimumDaysResult{
		Compliant:    days >= required,
		DaysAttended: days,
		MinRequired:  required,
		TotalRecords: totalRecords,
		Reason:       reason,
	}
}

// WeeklyDistribution checks rule 2: attendance in every period-relative
// 7-day block, with the required block count capped by policy.
func (e RuleEvaluator) WeeklyDistribution(groups *DayGroups, start, end time.Time) compliance.WeeklyDistributionResult {
	weeksAttended := make(map[int]struct{})
	for _, date := range groups.Dates() {
		weeksAttended[PeriodWeekIndex(start, date)] = struct{}{}
	}

	totalWeeks := PeriodWeekCount(start, end, e.policy.MaxRequiredWeeks)
	required := totalWeeks
	if required < 1 {
		required = 1
	}

	return compliance.WeeklyDistributionResult{
		Compliant:           len(weeksAttended) >= required,
		WeeksWithAttendance: len(weeksAttended),
		TotalWeeksInPeriod:  totalWeeks,
		MinWeeksRequired:    required,
		Reason: fmt.Sprintf("attendance required in at least %d week(s), attended in %d week(s)",
			required, len(weeksAttended)),
	}
}

// MinimumHours checks rule 3: at least MinDaysMeetingHours days whose
// sequentially paired punches sum to MinHoursPerDay or more.
func (e RuleEvaluator) MinimumHours(groups *DayGroups) compliance.MinimumHoursResult {
	meeting := 0
	for _, date := range groups.Dates() {
		if pairedHours(groups.Punches(date)) >= e.policy.MinHoursPerDay {
			meeting++
		}
	}

	required := e.policy.MinDaysMeetingHours
	return compliance.MinimumHoursResult{
		Compliant:        meeting >= required,
		DaysMeetingHours: meeting,
		TotalDays:        groups.Len(),
		MinDaysRequired:  required,
		Reason: fmt.Sprintf("minimum %d days with %.0f+ hours required, met on %d day(s)",
			required, e.policy.MinHoursPerDay, meeting),
	}
}

// Evaluate runs all three rules. The overall verdict is their logical AND;
// the reason concatenates the failing rules' texts verbatim for human
// review.
func (e RuleEvaluator) Evaluate(groups *DayGroups, totalRecords int, start, end time.Time) (bool, string, compliance.RuleResults) {
	results := compliance.RuleResults{
		MinimumDays:        e.MinimumDays(groups, totalRecords),
		WeeklyDistribution: e.WeeklyDistribution(groups, start, end),
		MinimumHours:       e.MinimumHours(groups),
	}

	overall := results.MinimumDays.Compliant &&
		results.WeeklyDistribution.Compliant &&
		results.MinimumHours.Compliant

	reason := "all attendance rules met"
	if !overall {
		var reasons []string
		if !results.MinimumDays.Compliant {
			reasons = append(reasons, "Rule 1: "+results.MinimumDays.Reason)
		}
		if !results.WeeklyDistribution.Compliant {
			reasons = append(reasons, "Rule 2: "+results.WeeklyDistribution.Reason)
		}
		if !results.MinimumHours.Compliant {
			reasons = append(reasons, "Rule 3: "+results.MinimumHours.Reason)
		}
		reason = strings.Join(reasons, "; ")
	}

	return overall, reason, results
}

// pairedHours sums the elapsed hours of a day's sequential (entry, exit)
// pairs. Days with fewer than two punches contribute nothing.
func pairedHours(punches []punch.Punch) float64 {
	if len(punches) < 2 {
		return 0
	}
	var total float64
	for i := 0; i+1 < len(punches); i += 2 {
		elapsed := punches[i+1].PunchedAt.Sub(punches[i].PunchedAt).Hours()
		if elapsed > 0 {
			total += elapsed
		}
	}
	return total
}
