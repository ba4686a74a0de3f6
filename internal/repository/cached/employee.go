package cached

import (
	"context"
	"fmt"
	"time"

	"github.com/cronos-hq/attendance-compliance-go/internal/domain/employee"
	"github.com/cronos-hq/attendance-compliance-go/internal/pkg/cache"
)

const (
	employeeListKey   = "employees:all"
	employeeKeyFormat = "employees:%d"
)

type cachedEmployeeRepository struct {
	inner employee.EmployeeRepository
	store *cache.Store
	ttl   time.Duration
}

func NewEmployeeRepository(inner employee.EmployeeRepository, store *cache.Store, ttl time.Duration) employee.EmployeeRepository {
	return &cachedEmployeeRepository{inner: inner, store: store, ttl: ttl}
}

// List implements employee.EmployeeRepository.
func (r *cachedEmployeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	if v, ok := r.store.Get(employeeListKey); ok {
		if employees, ok := v.([]employee.Employee); ok {
			return employees, nil
		}
	}

	employees, err := r.inner.List(ctx)
	if err != nil {
		return nil, err
	}

	r.store.Set(employeeListKey, employees, r.ttl)
	for _, emp := range employees {
		r.store.Set(fmt.Sprintf(employeeKeyFormat, emp.ID), emp, r.ttl)
	}
	return employees, nil
}

// GetByID implements employee.EmployeeRepository. Lookup misses are not
// cached; ErrEmployeeNotFound keeps propagating.
func (r *cachedEmployeeRepository) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	key := fmt.Sprintf(employeeKeyFormat, id)

	if v, ok := r.store.Get(key); ok {
		if emp, ok := v.(employee.Employee); ok {
			return emp, nil
		}
	}

	emp, err := r.inner.GetByID(ctx, id)
	if err != nil {
		return employee.Employee{}, err
	}

	r.store.Set(key, emp, r.ttl)
	return emp, nil
}
