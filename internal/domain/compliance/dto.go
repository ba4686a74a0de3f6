package compliance

import (
	"time"

	"github.com/cronos-hq/attendance-compliance-go/internal/pkg/validator"
)

// CheckRequest is the query for a single-employee compliance check. When the
// explicit dates are absent the period defaults to the last Months*30 days.
type CheckRequest struct {
	EmployeeID int64
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Months     int    `json:"months"`
}

// BatchCheckRequest is the body of a multi-employee compliance check.
type BatchCheckRequest struct {
	EmployeeIDs []int64 `json:"employee_ids"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	Months      int     `json:"months"`
}

func (r *CheckRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must be a positive integer",
		})
	}
	errs = append(errs, validatePeriodFields(r.StartDate, r.EndDate, r.Months)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *BatchCheckRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.EmployeeIDs) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_ids",
			Message: "at least one employee id is required",
		})
	}
	errs = append(errs, validatePeriodFields(r.StartDate, r.EndDate, r.Months)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validatePeriodFields(startDate, endDate string, months int) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if startDate != "" {
		if _, ok := validator.IsValidDate(startDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}
	if endDate != "" {
		if _, ok := validator.IsValidDate(endDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}
	if months < 0 || months > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "months",
			Message: "months must be between 0 and 12",
		})
	}
	return errs
}

// Period resolves the request into concrete bounds. Explicit dates win; the
// months-back shortcut mirrors the predefined report periods.
func Period(startDate, endDate string, months int, now time.Time) (time.Time, time.Time, error) {
	if startDate != "" && endDate != "" {
		start, err := time.Parse("2006-01-02", startDate)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		end, err := time.Parse("2006-01-02", endDate)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		if start.After(end) {
			return time.Time{}, time.Time{}, ErrInvalidPeriod
		}
		return start, end, nil
	}

	if months <= 0 {
		months = 1
	}
	end := now
	start := end.AddDate(0, 0, -30*months)
	return start, end, nil
}
