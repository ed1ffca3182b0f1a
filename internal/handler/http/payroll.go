package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/workforcelab/hrms-backend-go/internal/domain/payroll"
	"github.com/workforcelab/hrms-backend-go/internal/handler/http/middleware"
	"github.com/workforcelab/hrms-backend-go/internal/handler/http/response"
	payrollservice "github.com/workforcelab/hrms-backend-go/internal/service/payroll"
)

type PayrollHandler struct {
	payrollService *payrollservice.Service
	companyName    string
}

func NewPayrollHandler(payrollService *payrollservice.Service, companyName string) *PayrollHandler {
	return &PayrollHandler{payrollService: payrollService, companyName: companyName}
}

func (h *PayrollHandler) GetConfig(w http.ResponseWriter, r *http.Request) {
	organizationID := middleware.ClaimOrganizationID(r)
	if organizationID == "" {
		response.Forbidden(w, "Access denied")
		return
	}

	cfg, err := h.payrollService.GetConfig(r.Context(), organizationID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, cfg)
}

func (h *PayrollHandler) SaveConfig(w http.ResponseWriter, r *http.Request) {
	organizationID := middleware.ClaimOrganizationID(r)
	if organizationID == "" {
		response.Forbidden(w, "Access denied")
		return
	}

	var req payroll.SaveConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SaveSalaryConfig decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	cfg, err := h.payrollService.SaveConfig(r.Context(), organizationID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary configuration saved", cfg)
}

func (h *PayrollHandler) Preview(w http.ResponseWriter, r *http.Request) {
	organizationID := middleware.ClaimOrganizationID(r)
	if organizationID == "" {
		response.Forbidden(w, "Access denied")
		return
	}

	var req payroll.PreviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("PreviewSalary decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	breakdown, err := h.payrollService.Preview(r.Context(), organizationID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, breakdown)
}

func (h *PayrollHandler) sheetPeriod(r *http.Request) (int, time.Month) {
	now := time.Now().UTC()
	year, _ := strconv.Atoi(r.URL.Query().Get("year"))
	month, _ := strconv.Atoi(r.URL.Query().Get("month"))
	if year == 0 {
		year = now.Year()
	}
	if month < 1 || month > 12 {
		month = int(now.Month())
	}
	return year, time.Month(month)
}

func (h *PayrollHandler) Sheet(w http.ResponseWriter, r *http.Request) {
	organizationID := middleware.ClaimOrganizationID(r)
	if organizationID == "" {
		response.Forbidden(w, "Access denied")
		return
	}

	year, month := h.sheetPeriod(r)
	sheet, err := h.payrollService.BuildSheet(r.Context(), organizationID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, sheet)
}

// Export streams the salary sheet as an xlsx workbook.
func (h *PayrollHandler) Export(w http.ResponseWriter, r *http.Request) {
	organizationID := middleware.ClaimOrganizationID(r)
	if organizationID == "" {
		response.Forbidden(w, "Access denied")
		return
	}

	year, month := h.sheetPeriod(r)
	sheet, err := h.payrollService.BuildSheet(r.Context(), organizationID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	data, filename, err := payrollservice.ExportSheet(sheet, h.companyName)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	_, _ = w.Write(data)
}
