package employee

import "context"

// EmployeeRepository defines read access to the employee directory.
type EmployeeRepository interface {
	// List returns all employees ordered by last name, first name.
	List(ctx context.Context) ([]Employee, error)

	// GetByID retrieves a single employee. Returns ErrEmployeeNotFound when
	// the id does not exist.
	GetByID(ctx context.Context, id int64) (Employee, error)
}
