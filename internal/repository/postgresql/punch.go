package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cronos-hq/attendance-compliance-go/internal/domain/punch"
	"github.com/cronos-hq/attendance-compliance-go/internal/pkg/database"
)

type punchRepositoryImpl struct {
	db database.Querier
}

func NewPunchRepository(db database.Querier) punch.PunchRepository {
	return &punchRepositoryImpl{db: db}
}

// FetchPunches implements punch.PunchRepository. Bounds are date-truncated so
// the whole end date is fetched regardless of its clock component. Rows
// marked ignored never leave the store; ordering by timestamp is what the
// sequential pairing downstream relies on.
func (p *punchRepositoryImpl) FetchPunches(ctx context.Context, employeeID int64, start, end time.Time) ([]punch.Punch, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT employee_id, punched_at, raw_time, priority, ignored
		FROM punches
		WHERE employee_id = $1
			AND punched_at >= date_trunc('day', $2::timestamptz)
			AND punched_at < date_trunc('day', $3::timestamptz) + interval '1 day'
			AND NOT ignored
		ORDER BY punched_at
	`

	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch punches for employee %d: %w", employeeID, err)
	}
	defer rows.Close()

	var punches []punch.Punch
	for rows.Next() {
		var rec punch.Punch
		var rawTime *string
		if err := rows.Scan(&rec.EmployeeID, &rec.PunchedAt, &rawTime, &rec.Priority, &rec.Ignored); err != nil {
			return nil, fmt.Errorf("failed to scan punch: %w", err)
		}
		if rawTime != nil {
			rec.RawTime = *rawTime
		}
		punches = append(punches, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return punches, nil
}

// FetchDailyAnomalies implements punch.PunchRepository. A clean day has
// exactly two punch records; everything else is surfaced for data-quality
// review.
func (p *punchRepositoryImpl) FetchDailyAnomalies(ctx context.Context, start, end time.Time) ([]punch.DailyAnomaly, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT employee_id, punched_at::date AS day,
			COUNT(*) AS total_records,
			MIN(punched_at) AS first_record,
			MAX(punched_at) AS last_record
		FROM punches
		WHERE punched_at BETWEEN $1 AND $2
			AND NOT ignored
		GROUP BY employee_id, punched_at::date
		HAVING COUNT(*) <> 2
		ORDER BY day, employee_id
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch daily anomalies: %w", err)
	}
	defer rows.Close()

	var anomalies []punch.DailyAnomaly
	for rows.Next() {
		var a punch.DailyAnomaly
		if err := rows.Scan(&a.EmployeeID, &a.Day, &a.TotalRecords, &a.FirstRecord, &a.LastRecord); err != nil {
			return nil, fmt.Errorf("failed to scan daily anomaly: %w", err)
		}
		anomalies = append(anomalies, a)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return anomalies, nil
}
