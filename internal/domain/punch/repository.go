package punch

import (
	"context"
	"time"
)

// PunchRepository defines read access to raw attendance punches.
//
// Implementations may fail with connectivity errors; callers decide whether
// to propagate (single-employee evaluation) or convert to a per-item failure
// (batch evaluation).
type PunchRepository interface {
	// FetchPunches returns the punches for one employee inside [start, end]
	// inclusive, ordered ascending by timestamp. Records flagged as ignored
	// at the store level are excluded.
	FetchPunches(ctx context.Context, employeeID int64, start, end time.Time) ([]Punch, error)

	// FetchDailyAnomalies returns the days whose punch count differs from
	// two, across all employees, inside [start, end] inclusive.
	FetchDailyAnomalies(ctx context.Context, start, end time.Time) ([]DailyAnomaly, error)
}
