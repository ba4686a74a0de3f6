package compliance

import (
	"context"
	"time"
)

// ComplianceService evaluates employees against the rule-based attendance
// policy.
type ComplianceService interface {
	// Evaluate checks one employee over [start, end]. An empty punch set
	// yields a non-compliant verdict with an explicit reason; fetch errors
	// are propagated.
	Evaluate(ctx context.Context, employeeID int64, start, end time.Time) (Verdict, error)

	// EvaluateBatch checks each employee independently. A per-employee
	// failure becomes a non-compliant verdict carrying the error text, so
	// one failing employee never aborts the batch.
	EvaluateBatch(ctx context.Context, employeeIDs []int64, start, end time.Time) (BatchResult, error)
}
