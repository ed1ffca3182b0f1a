package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/workforcelab/hrms-backend-go/internal/domain/attendance"
	"github.com/workforcelab/hrms-backend-go/internal/domain/organization"
	"github.com/workforcelab/hrms-backend-go/internal/handler/http/middleware"
	"github.com/workforcelab/hrms-backend-go/internal/handler/http/response"
	orgservice "github.com/workforcelab/hrms-backend-go/internal/service/organization"
)

type OrganizationHandler struct {
	orgService *orgservice.Service
}

func NewOrganizationHandler(orgService *orgservice.Service) *OrganizationHandler {
	return &OrganizationHandler{orgService: orgService}
}

func (h *OrganizationHandler) Get(w http.ResponseWriter, r *http.Request) {
	organizationID := middleware.ClaimOrganizationID(r)
	if organizationID == "" {
		response.Forbidden(w, "Access denied")
		return
	}

	org, err := h.orgService.Get(r.Context(), organizationID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, org)
}

func (h *OrganizationHandler) Update(w http.ResponseWriter, r *http.Request) {
	organizationID := middleware.ClaimOrganizationID(r)
	if organizationID == "" {
		response.Forbidden(w, "Access denied")
		return
	}

	var req organization.SaveOrganizationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateOrganization decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	org, err := h.orgService.Update(r.Context(), organizationID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Organization updated successfully", org)
}

// SaveTiming replaces the attendance timing configuration. Ordering is
// validated before anything is written.
func (h *OrganizationHandler) SaveTiming(w http.ResponseWriter, r *http.Request) {
	organizationID := middleware.ClaimOrganizationID(r)
	if organizationID == "" {
		response.Forbidden(w, "Access denied")
		return
	}

	var req attendance.TimingConfig
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SaveTiming decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.orgService.SaveTiming(r.Context(), organizationID, req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Timing configuration saved", req)
}

// Branches

func (h *OrganizationHandler) CreateBranch(w http.ResponseWriter, r *http.Request) {
	organizationID := middleware.ClaimOrganizationID(r)

	var req organization.SaveBranchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateBranch decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	b, err := h.orgService.CreateBranch(r.Context(), organizationID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Branch created successfully", b)
}

func (h *OrganizationHandler) ListBranches(w http.ResponseWriter, r *http.Request) {
	branches, err := h.orgService.ListBranches(r.Context(), middleware.ClaimOrganizationID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, branches)
}

func (h *OrganizationHandler) UpdateBranch(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req organization.SaveBranchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateBranch decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	b, err := h.orgService.UpdateBranch(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Branch updated successfully", b)
}

func (h *OrganizationHandler) DeleteBranch(w http.ResponseWriter, r *http.Request) {
	if err := h.orgService.DeleteBranch(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Branch deleted successfully", nil)
}

// Departments

func (h *OrganizationHandler) CreateDepartment(w http.ResponseWriter, r *http.Request) {
	organizationID := middleware.ClaimOrganizationID(r)

	var req organization.SaveDepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateDepartment decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	d, err := h.orgService.CreateDepartment(r.Context(), organizationID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Department created successfully", d)
}

func (h *OrganizationHandler) ListDepartments(w http.ResponseWriter, r *http.Request) {
	departments, err := h.orgService.ListDepartments(r.Context(), middleware.ClaimOrganizationID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, departments)
}

func (h *OrganizationHandler) UpdateDepartment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req organization.SaveDepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateDepartment decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	d, err := h.orgService.UpdateDepartment(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Department updated successfully", d)
}

func (h *OrganizationHandler) DeleteDepartment(w http.ResponseWriter, r *http.Request) {
	if err := h.orgService.DeleteDepartment(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Department deleted successfully", nil)
}

// Shifts

func (h *OrganizationHandler) CreateShift(w http.ResponseWriter, r *http.Request) {
	organizationID := middleware.ClaimOrganizationID(r)

	var req organization.SaveShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateShift decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	s, err := h.orgService.CreateShift(r.Context(), organizationID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Shift created successfully", s)
}

func (h *OrganizationHandler) ListShifts(w http.ResponseWriter, r *http.Request) {
	shifts, err := h.orgService.ListShifts(r.Context(), middleware.ClaimOrganizationID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, shifts)
}

func (h *OrganizationHandler) UpdateShift(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req organization.SaveShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateShift decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	s, err := h.orgService.UpdateShift(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift updated successfully", s)
}

func (h *OrganizationHandler) DeleteShift(w http.ResponseWriter, r *http.Request) {
	if err := h.orgService.DeleteShift(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Shift deleted successfully", nil)
}

// Custom fields

func (h *OrganizationHandler) CreateCustomField(w http.ResponseWriter, r *http.Request) {
	organizationID := middleware.ClaimOrganizationID(r)

	var req organization.SaveCustomFieldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateCustomField decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	f, err := h.orgService.CreateCustomField(r.Context(), organizationID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Custom field created successfully", f)
}

func (h *OrganizationHandler) ListCustomFields(w http.ResponseWriter, r *http.Request) {
	fields, err := h.orgService.ListCustomFields(r.Context(), middleware.ClaimOrganizationID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, fields)
}

func (h *OrganizationHandler) UpdateCustomField(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req organization.SaveCustomFieldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateCustomField decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	f, err := h.orgService.UpdateCustomField(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Custom field updated successfully", f)
}

func (h *OrganizationHandler) DeleteCustomField(w http.ResponseWriter, r *http.Request) {
	if err := h.orgService.DeleteCustomField(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Custom field deleted successfully", nil)
}
