package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/cronos-hq/attendance-compliance-go/internal/domain/compliance"
	"github.com/cronos-hq/attendance-compliance-go/internal/handler/http/response"
)

type ComplianceHandler interface {
	Check(w http.ResponseWriter, r *http.Request)
	BatchCheck(w http.ResponseWriter, r *http.Request)
	Rules(w http.ResponseWriter, r *http.Request)
	Periods(w http.ResponseWriter, r *http.Request)
}

type ComplianceHandlerImpl struct {
	complianceService compliance.ComplianceService
	policy            compliance.RulePolicy
	now               func() time.Time
}

func NewComplianceHandler(complianceService compliance.ComplianceService, policy compliance.RulePolicy) ComplianceHandler {
	return &ComplianceHandlerImpl{
		complianceService: complianceService,
		policy:            policy,
		now:               time.Now,
	}
}

// Check implements ComplianceHandler.
func (h *ComplianceHandlerImpl) Check(w http.ResponseWriter, r *http.Request) {
	employeeID, err := employeeIDParam(r)
	if err != nil {
		response.BadRequest(w, "Employee id must be a positive integer", nil)
		return
	}

	req := compliance.CheckRequest{
		EmployeeID: employeeID,
		StartDate:  r.URL.Query().Get("start_date"),
		EndDate:    r.URL.Query().Get("end_date"),
		Months:     queryInt(r, "months", 1),
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	start, end, err := compliance.Period(req.StartDate, req.EndDate, req.Months, h.now())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	verdict, err := h.complianceService.Evaluate(r.Context(), employeeID, start, end)
	if err != nil {
		slog.Error("Compliance check failed", "employee_id", employeeID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, verdict)
}

// BatchCheck implements ComplianceHandler.
func (h *ComplianceHandlerImpl) BatchCheck(w http.ResponseWriter, r *http.Request) {
	var req compliance.BatchCheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	start, end, err := compliance.Period(req.StartDate, req.EndDate, req.Months, h.now())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.complianceService.EvaluateBatch(r.Context(), req.EmployeeIDs, start, end)
	if err != nil {
		slog.Error("Batch compliance check failed", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Rules implements ComplianceHandler. It documents the active policy so
// clients can render the thresholds without hardcoding them.
func (h *ComplianceHandlerImpl) Rules(w http.ResponseWriter, r *http.Request) {
	response.Success(w, map[string]interface{}{
		"rule_1_minimum_days": map[string]interface{}{
			"description": "Attend on a minimum number of distinct days in the period",
			"min_days":    h.policy.MinDaysPerMonth,
		},
		"rule_2_weekly_distribution": map[string]interface{}{
			"description": "Attend in every 7-day block of the period",
			"max_weeks":   h.policy.MaxRequiredWeeks,
		},
		"rule_3_minimum_hours": map[string]interface{}{
			"description":   "Work full days on a minimum number of days",
			"min_hours":     h.policy.MinHoursPerDay,
			"min_full_days": h.policy.MinDaysMeetingHours,
		},
	})
}

// Periods implements ComplianceHandler. Predefined month-back shortcuts for
// the check endpoints.
func (h *ComplianceHandlerImpl) Periods(w http.ResponseWriter, r *http.Request) {
	now := h.now()

	type period struct {
		Label     string `json:"label"`
		Months    int    `json:"months"`
		StartDate string `json:"start_date"`
		EndDate   string `json:"end_date"`
	}

	periods := make([]period, 0, 3)
	for _, months := range []int{1, 2, 3} {
		start, end, _ := compliance.Period("", "", months, now)
		periods = append(periods, period{
			Label:     "last_" + strconv.Itoa(30*months) + "_days",
			Months:    months,
			StartDate: start.Format("2006-01-02"),
			EndDate:   end.Format("2006-01-02"),
		})
	}

	response.Success(w, periods)
}

func queryInt(r *http.Request, key string, fallback int) int {
	value := r.URL.Query().Get(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
