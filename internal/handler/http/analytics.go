package http

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/cronos-hq/attendance-compliance-go/internal/domain/analytics"
	"github.com/cronos-hq/attendance-compliance-go/internal/handler/http/response"
	"github.com/cronos-hq/attendance-compliance-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type AnalyticsHandler interface {
	MonthlyReport(w http.ResponseWriter, r *http.Request)
	EmployeeMonth(w http.ResponseWriter, r *http.Request)
	WeeklyPatterns(w http.ResponseWriter, r *http.Request)
	Trends(w http.ResponseWriter, r *http.Request)
	Dashboard(w http.ResponseWriter, r *http.Request)
	Departments(w http.ResponseWriter, r *http.Request)
	DataQuality(w http.ResponseWriter, r *http.Request)
}

type AnalyticsHandlerImpl struct {
	analyticsService analytics.AnalyticsService
	now              func() time.Time
}

func NewAnalyticsHandler(analyticsService analytics.AnalyticsService) AnalyticsHandler {
	return &AnalyticsHandlerImpl{
		analyticsService: analyticsService,
		now:              time.Now,
	}
}

// MonthlyReport implements AnalyticsHandler.
func (h *AnalyticsHandlerImpl) MonthlyReport(w http.ResponseWriter, r *http.Request) {
	year, month, ok := yearMonthParams(w, r)
	if !ok {
		return
	}

	report, err := h.analyticsService.MonthlyReport(r.Context(), year, month)
	if err != nil {
		slog.Error("Monthly report failed", "year", year, "month", month, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, report)
}

// EmployeeMonth implements AnalyticsHandler.
func (h *AnalyticsHandlerImpl) EmployeeMonth(w http.ResponseWriter, r *http.Request) {
	employeeID, err := employeeIDParam(r)
	if err != nil {
		response.BadRequest(w, "Employee id must be a positive integer", nil)
		return
	}
	year, month, ok := yearMonthParams(w, r)
	if !ok {
		return
	}

	stats, err := h.analyticsService.AnalyzeEmployeeMonth(r.Context(), employeeID, year, month)
	if err != nil {
		slog.Error("Employee month analysis failed", "employee_id", employeeID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}

// WeeklyPatterns implements AnalyticsHandler.
func (h *AnalyticsHandlerImpl) WeeklyPatterns(w http.ResponseWriter, r *http.Request) {
	employeeID, err := employeeIDParam(r)
	if err != nil {
		response.BadRequest(w, "Employee id must be a positive integer", nil)
		return
	}
	year, month, ok := yearMonthParams(w, r)
	if !ok {
		return
	}

	detail, err := h.analyticsService.WeeklyPatternDetail(r.Context(), employeeID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, detail)
}

// Trends implements AnalyticsHandler.
func (h *AnalyticsHandlerImpl) Trends(w http.ResponseWriter, r *http.Request) {
	employeeID, err := employeeIDParam(r)
	if err != nil {
		response.BadRequest(w, "Employee id must be a positive integer", nil)
		return
	}

	req := analytics.TrendsRequest{
		EmployeeID: employeeID,
		MonthsBack: queryInt(r, "months_back", 6),
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	trends, err := h.analyticsService.EmployeeTrends(r.Context(), employeeID, req.MonthsBack)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, trends)
}

// Dashboard implements AnalyticsHandler. Defaults to the current month.
func (h *AnalyticsHandlerImpl) Dashboard(w http.ResponseWriter, r *http.Request) {
	now := h.now()
	req := analytics.MonthRequest{
		Year:  queryInt(r, "year", now.Year()),
		Month: queryInt(r, "month", int(now.Month())),
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	stats, err := h.analyticsService.DashboardStats(r.Context(), req.Year, time.Month(req.Month))
	if err != nil {
		slog.Error("Dashboard stats failed", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}

// Departments implements AnalyticsHandler.
func (h *AnalyticsHandlerImpl) Departments(w http.ResponseWriter, r *http.Request) {
	year, month, ok := yearMonthParams(w, r)
	if !ok {
		return
	}

	stats, err := h.analyticsService.DepartmentStats(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}

// DataQuality implements AnalyticsHandler. Without explicit bounds the
// service looks at the last 30 days.
func (h *AnalyticsHandlerImpl) DataQuality(w http.ResponseWriter, r *http.Request) {
	var start, end time.Time

	if raw := r.URL.Query().Get("start_date"); raw != "" {
		parsed, ok := validator.IsValidDate(raw)
		if !ok {
			response.BadRequest(w, "start_date must be in YYYY-MM-DD format", nil)
			return
		}
		start = parsed
	}
	if raw := r.URL.Query().Get("end_date"); raw != "" {
		parsed, ok := validator.IsValidDate(raw)
		if !ok {
			response.BadRequest(w, "end_date must be in YYYY-MM-DD format", nil)
			return
		}
		end = parsed
	}

	issues, err := h.analyticsService.DataQualityIssues(r.Context(), start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, issues)
}

// yearMonthParams parses and validates the {year}/{month} path segments,
// writing the error response itself on failure.
func yearMonthParams(w http.ResponseWriter, r *http.Request) (int, time.Month, bool) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		response.BadRequest(w, "Year must be an integer", nil)
		return 0, 0, false
	}
	month, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil {
		response.BadRequest(w, "Month must be an integer", nil)
		return 0, 0, false
	}

	req := analytics.MonthRequest{Year: year, Month: month}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return 0, 0, false
	}

	return year, time.Month(month), true
}
