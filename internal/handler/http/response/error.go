package response

import (
	"errors"
	"net/http"

	"github.com/cronos-hq/attendance-compliance-go/internal/domain/compliance"
	"github.com/cronos-hq/attendance-compliance-go/internal/domain/employee"
	"github.com/cronos-hq/attendance-compliance-go/internal/domain/punch"
	"github.com/cronos-hq/attendance-compliance-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	case errors.Is(err, compliance.ErrInvalidPeriod):
		BadRequest(w, "Period start must not be after period end", nil)
	case errors.Is(err, compliance.ErrNoEmployees):
		BadRequest(w, "At least one employee id is required", nil)

	case errors.Is(err, punch.ErrStoreUnavailable):
		ServiceUnavailable(w, "Punch store is unavailable")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
