package analytics

import (
	"fmt"
	"time"

	"github.com/cronos-hq/attendance-compliance-go/internal/pkg/validator"
)

type MonthRequest struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

func (r *MonthRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	currentYear := time.Now().Year()
	if r.Year < 2000 || r.Year > currentYear+1 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: fmt.Sprintf("year must be between 2000 and %d", currentYear+1),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TrendsRequest struct {
	EmployeeID int64 `json:"employee_id"`
	MonthsBack int   `json:"months_back"`
}

func (r *TrendsRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must be a positive integer",
		})
	}
	if r.MonthsBack < 1 || r.MonthsBack > 24 {
		errs = append(errs, validator.ValidationError{
			Field:   "months_back",
			Message: "months_back must be between 1 and 24",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
