package report

import (
	"context"
	"time"
)

// ReportService renders monthly compliance exports.
type ReportService interface {
	// MonthlyWorkbook builds the styled XLSX workbook for one month.
	MonthlyWorkbook(ctx context.Context, year int, month time.Month) (Report, error)

	// MonthlyCSV builds the flat per-employee CSV for one month.
	MonthlyCSV(ctx context.Context, year int, month time.Month) (Report, error)
}
