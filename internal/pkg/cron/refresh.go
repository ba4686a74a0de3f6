package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/cronos-hq/attendance-compliance-go/internal/domain/employee"
	"github.com/cronos-hq/attendance-compliance-go/internal/domain/punch"
	"github.com/cronos-hq/attendance-compliance-go/internal/pkg/cache"
)

// CacheRefreshJob flushes the TTL cache and prewarms it with the data the
// API serves most: the employee directory and the current month's punches.
// During the first days of a month the previous month is still being
// queried heavily, so it is prewarmed too.
type CacheRefreshJob struct {
	store        *cache.Store
	punchRepo    punch.PunchRepository
	employeeRepo employee.EmployeeRepository
	now          func() time.Time

	// Prewarm the previous month while the current one is this young.
	previousMonthGraceDays int
}

func NewCacheRefreshJob(store *cache.Store, punchRepo punch.PunchRepository, employeeRepo employee.EmployeeRepository) *CacheRefreshJob {
	return &CacheRefreshJob{
		store:                  store,
		punchRepo:              punchRepo,
		employeeRepo:           employeeRepo,
		now:                    time.Now,
		previousMonthGraceDays: 5,
	}
}

// Run executes one refresh cycle. Prewarm failures for individual employees
// are logged and skipped; the job itself only fails when the directory is
// unreachable.
func (j *CacheRefreshJob) Run(ctx context.Context) error {
	j.store.Flush()

	employees, err := j.employeeRepo.List(ctx)
	if err != nil {
		return err
	}

	now := j.now()
	months := []time.Time{time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)}
	if now.Day() <= j.previousMonthGraceDays {
		months = append(months, months[0].AddDate(0, -1, 0))
	}

	warmed, failed := 0, 0
	for _, monthStart := range months {
		monthEnd := monthStart.AddDate(0, 1, 0).Add(-time.Second)
		for _, emp := range employees {
			if _, err := j.punchRepo.FetchPunches(ctx, emp.ID, monthStart, monthEnd); err != nil {
				slog.Warn("cache prewarm failed for employee",
					"employee_id", emp.ID, "month", monthStart.Format("2006-01"), "error", err)
				failed++
				continue
			}
			warmed++
		}
	}

	slog.Info("cache refresh completed",
		"employees", len(employees), "months", len(months), "warmed", warmed, "failed", failed)
	return nil
}
