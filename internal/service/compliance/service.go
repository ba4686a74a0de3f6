package compliance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cronos-hq/attendance-compliance-go/internal/domain/compliance"
	"github.com/cronos-hq/attendance-compliance-go/internal/domain/punch"
)

type ComplianceServiceImpl struct {
	punchRepo punch.PunchRepository
	policy    compliance.RulePolicy
	evaluator RuleEvaluator
}

func NewComplianceService(punchRepo punch.PunchRepository, policy compliance.RulePolicy) compliance.ComplianceService {
	return &ComplianceServiceImpl{
		punchRepo: punchRepo,
		policy:    policy,
		evaluator: NewRuleEvaluator(policy),
	}
}

// Evaluate implements compliance.ComplianceService.
func (s *ComplianceServiceImpl) Evaluate(ctx context.Context, employeeID int64, start, end time.Time) (compliance.Verdict, error) {
	if start.After(end) {
		return compliance.Verdict{}, compliance.ErrInvalidPeriod
	}

	records, err := s.punchRepo.FetchPunches(ctx, employeeID, start, end)
	if err != nil {
		return compliance.Verdict{}, fmt.Errorf("failed to fetch punches for employee %d: %w", employeeID, err)
	}

	verdict := compliance.Verdict{
		EmployeeID:  employeeID,
		PeriodStart: start,
		PeriodEnd:   end,
	}

	if len(records) == 0 {
		verdict.Reason = "no attendance data in the period"
		return verdict, nil
	}

	groups, stats := GroupByDay(records, start, end)
	if stats.Unparseable > 0 || stats.Ignored > 0 {
		slog.Info("normalized punches with skips",
			"employee_id", employeeID,
			"total", stats.TotalRecords,
			"ignored", stats.Ignored,
			"unparseable", stats.Unparseable,
			"out_of_period", stats.OutOfPeriod)
	}

	overall, reason, rules := s.evaluator.Evaluate(groups, stats.TotalRecords, start, end)
	daily, _, _ := BuildDaily(groups, s.policy.MinHoursPerDay)

	verdict.Compliant = overall
	verdict.Reason = reason
	verdict.Rules = rules
	verdict.DailyAttendance = daily
	return verdict, nil
}

// EvaluateBatch implements compliance.ComplianceService. Employees are
// evaluated independently; a failing fetch is converted into a
// non-compliant verdict so the batch always returns one verdict per
// employee.
func (s *ComplianceServiceImpl) EvaluateBatch(ctx context.Context, employeeIDs []int64, start, end time.Time) (compliance.BatchResult, error) {
	if len(employeeIDs) == 0 {
		return compliance.BatchResult{}, compliance.ErrNoEmployees
	}
	if start.After(end) {
		return compliance.BatchResult{}, compliance.ErrInvalidPeriod
	}

	result := compliance.BatchResult{
		PeriodStart:    start,
		PeriodEnd:      end,
		TotalEmployees: len(employeeIDs),
		Results:        make([]compliance.Verdict, 0, len(employeeIDs)),
	}

	for _, id := range employeeIDs {
		verdict, err := s.Evaluate(ctx, id, start, end)
		if err != nil {
			slog.Error("batch compliance check failed for employee", "employee_id", id, "error", err)
			verdict = compliance.Verdict{
				EmployeeID:  id,
				PeriodStart: start,
				PeriodEnd:   end,
				Compliant:   false,
				Reason:      "compliance check failed: " + err.Error(),
			}
		}

		if verdict.Compliant {
			result.CompliantEmployees++
		} else {
			result.NonCompliantEmployees++
		}
		result.Results = append(result.Results, verdict)
	}

	return result, nil
}
