package http

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/cronos-hq/attendance-compliance-go/internal/domain/report"
	"github.com/cronos-hq/attendance-compliance-go/internal/handler/http/response"
)

type ReportHandler interface {
	MonthlyXLSX(w http.ResponseWriter, r *http.Request)
	MonthlyCSV(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

// MonthlyXLSX implements ReportHandler.
func (h *ReportHandlerImpl) MonthlyXLSX(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, h.reportService.MonthlyWorkbook)
}

// MonthlyCSV implements ReportHandler.
func (h *ReportHandlerImpl) MonthlyCSV(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, h.reportService.MonthlyCSV)
}

func (h *ReportHandlerImpl) serve(w http.ResponseWriter, r *http.Request, build func(ctx context.Context, year int, month time.Month) (report.Report, error)) {
	year, month, ok := yearMonthParams(w, r)
	if !ok {
		return
	}

	rendered, err := build(r.Context(), year, month)
	if err != nil {
		slog.Error("Report generation failed", "year", year, "month", month, "error", err)
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", rendered.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+rendered.Filename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(rendered.Data)))
	w.Header().Set("X-Report-ID", rendered.ID)
	if _, err := w.Write(rendered.Data); err != nil {
		slog.Error("Failed to stream report", "report_id", rendered.ID, "error", err)
	}
}
