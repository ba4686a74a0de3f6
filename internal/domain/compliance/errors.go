package compliance

import "errors"

var (
	ErrInvalidPeriod = errors.New("period start must not be after period end")
	ErrNoEmployees   = errors.New("no employees given for batch evaluation")
)
