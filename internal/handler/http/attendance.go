package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/workforcelab/hrms-backend-go/internal/domain/attendance"
	"github.com/workforcelab/hrms-backend-go/internal/handler/http/middleware"
	"github.com/workforcelab/hrms-backend-go/internal/handler/http/response"
	"github.com/workforcelab/hrms-backend-go/internal/pkg/validator"
	attendanceservice "github.com/workforcelab/hrms-backend-go/internal/service/attendance"
)

type AttendanceHandler struct {
	attendanceService *attendanceservice.Service
}

func NewAttendanceHandler(attendanceService *attendanceservice.Service) *AttendanceHandler {
	return &AttendanceHandler{attendanceService: attendanceService}
}

func (h *AttendanceHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	organizationID := middleware.ClaimOrganizationID(r)
	if organizationID == "" {
		response.Forbidden(w, "Access denied")
		return
	}

	var req attendance.CheckInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CheckIn decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	rec, err := h.attendanceService.CheckIn(r.Context(), organizationID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Checked in", rec)
}

func (h *AttendanceHandler) CheckOut(w http.ResponseWriter, r *http.Request) {
	var req struct {
		EmployeeID string `json:"employeeId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CheckOut decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if req.EmployeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	rec, err := h.attendanceService.CheckOut(r.Context(), req.EmployeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Checked out", rec)
}

func (h *AttendanceHandler) List(w http.ResponseWriter, r *http.Request) {
	organizationID := middleware.ClaimOrganizationID(r)
	if organizationID == "" {
		response.Forbidden(w, "Access denied")
		return
	}

	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))

	filter := attendance.ListFilter{
		OrganizationID: organizationID,
		EmployeeID:     q.Get("employee"),
		ApprovalStatus: q.Get("status"),
		Page:           page,
		Limit:          limit,
	}
	if from, ok := validator.IsValidDate(q.Get("from")); ok {
		filter.From = &from
	}
	if to, ok := validator.IsValidDate(q.Get("to")); ok {
		filter.To = &to
	}

	records, total, err := h.attendanceService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if filter.Page == 0 {
		filter.Page = 1
	}
	if filter.Limit == 0 {
		filter.Limit = 20
	}
	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))

	response.SuccessWithMeta(w, records, &response.Meta{
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalItems: total,
		TotalPages: totalPages,
	})
}

func (h *AttendanceHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Record ID is required", nil)
		return
	}

	rec, err := h.attendanceService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rec)
}

func (h *AttendanceHandler) Decide(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Record ID is required", nil)
		return
	}

	var req attendance.DecisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("DecideAttendance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	rec, err := h.attendanceService.Decide(r.Context(), middleware.ClaimUserID(r), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance record processed", rec)
}

func (h *AttendanceHandler) BulkDecide(w http.ResponseWriter, r *http.Request) {
	var req attendance.BulkDecisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("BulkDecideAttendance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.BulkDecide(r.Context(), middleware.ClaimUserID(r), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// MintQR issues a fresh branch check-in token.
func (h *AttendanceHandler) MintQR(w http.ResponseWriter, r *http.Request) {
	branchID := chi.URLParam(r, "branchId")
	if branchID == "" {
		response.BadRequest(w, "Branch ID is required", nil)
		return
	}

	token, err := h.attendanceService.MintQR(r.Context(), branchID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, token)
}

// RenderQR serves the PNG for a token.
func (h *AttendanceHandler) RenderQR(w http.ResponseWriter, r *http.Request) {
	tokenID := chi.URLParam(r, "token")
	if tokenID == "" {
		response.BadRequest(w, "Token is required", nil)
		return
	}

	size, _ := strconv.Atoi(r.URL.Query().Get("size"))
	png, err := h.attendanceService.RenderQR(tokenID, size)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(png)
}
