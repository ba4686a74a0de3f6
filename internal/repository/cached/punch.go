package cached

import (
	"context"
	"fmt"
	"time"

	"github.com/cronos-hq/attendance-compliance-go/internal/domain/punch"
	"github.com/cronos-hq/attendance-compliance-go/internal/pkg/cache"
)

// TTLs mirror the volatility of the underlying data: the current month keeps
// changing while closed months are effectively immutable.
type PunchCacheConfig struct {
	CurrentTTL    time.Duration
	HistoricalTTL time.Duration
	now           func() time.Time
}

func DefaultPunchCacheConfig() PunchCacheConfig {
	return PunchCacheConfig{
		CurrentTTL:    5 * time.Minute,
		HistoricalTTL: 24 * time.Hour,
	}
}

type cachedPunchRepository struct {
	inner punch.PunchRepository
	store *cache.Store
	cfg   PunchCacheConfig
}

func NewPunchRepository(inner punch.PunchRepository, store *cache.Store, cfg PunchCacheConfig) punch.PunchRepository {
	if cfg.now == nil {
		cfg.now = time.Now
	}
	return &cachedPunchRepository{inner: inner, store: store, cfg: cfg}
}

// FetchPunches implements punch.PunchRepository.
func (r *cachedPunchRepository) FetchPunches(ctx context.Context, employeeID int64, start, end time.Time) ([]punch.Punch, error) {
	key := fmt.Sprintf("punches:%d:%s:%s", employeeID, start.Format(time.RFC3339), end.Format(time.RFC3339))

	if v, ok := r.store.Get(key); ok {
		if punches, ok := v.([]punch.Punch); ok {
			return punches, nil
		}
	}

	punches, err := r.inner.FetchPunches(ctx, employeeID, start, end)
	if err != nil {
		return nil, err
	}

	r.store.Set(key, punches, r.ttlFor(end))
	return punches, nil
}

// FetchDailyAnomalies implements punch.PunchRepository.
func (r *cachedPunchRepository) FetchDailyAnomalies(ctx context.Context, start, end time.Time) ([]punch.DailyAnomaly, error) {
	key := fmt.Sprintf("anomalies:%s:%s", start.Format(time.RFC3339), end.Format(time.RFC3339))

	if v, ok := r.store.Get(key); ok {
		if anomalies, ok := v.([]punch.DailyAnomaly); ok {
			return anomalies, nil
		}
	}

	anomalies, err := r.inner.FetchDailyAnomalies(ctx, start, end)
	if err != nil {
		return nil, err
	}

	r.store.Set(key, anomalies, r.ttlFor(end))
	return anomalies, nil
}

// ttlFor picks the TTL by whether the queried range ends before the current
// month began.
func (r *cachedPunchRepository) ttlFor(end time.Time) time.Duration {
	now := r.cfg.now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	if end.Before(monthStart) {
		return r.cfg.HistoricalTTL
	}
	return r.cfg.CurrentTTL
}
