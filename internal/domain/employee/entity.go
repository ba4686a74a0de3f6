package employee

import "strings"

type Employee struct {
	ID         int64   `json:"id"`
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	Department *string `json:"department"`
	Email      *string `json:"email"`
}

// FullName returns "FirstName LastName" with missing parts trimmed away.
func (e Employee) FullName() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}

// DepartmentOrUnknown returns the department label used for grouping.
func (e Employee) DepartmentOrUnknown() string {
	if e.Department == nil || strings.TrimSpace(*e.Department) == "" {
		return "Unknown"
	}
	return *e.Department
}
