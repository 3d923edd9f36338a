package http

import (
	"net/http"
	"strconv"

	"fieldwork-backend/internal/domain"
	"fieldwork-backend/internal/service"
)

type ReportHandler struct {
	reports service.ReportService
}

func NewReportHandler(reports service.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

type createReportRequest struct {
	Date string `json:"date"`
}

func (h *ReportHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createReportRequest
	if !decodeBody(w, r, &req) {
		return
	}
	claims := ClaimsFromContext(r.Context())
	report := domain.DailyReport{
		OrgID:      claims.OrgID,
		EmployeeID: claims.UserID,
		Date:       req.Date,
	}
	if err := h.reports.CreateReport(r.Context(), &report); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, report)
}

type reportResponse struct {
	Report     *domain.DailyReport `json:"report"`
	Operations []domain.Operation  `json:"operations"`
	TotalHours float64             `json:"total_hours"`
}

func (h *ReportHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	orgID := ClaimsFromContext(r.Context()).OrgID
	report, ops, err := h.reports.GetReport(r.Context(), id, orgID)
	if err != nil {
		writeError(w, err)
		return
	}
	// Rendered total includes the hours adjustment when one exists.
	total, err := h.reports.ReportTotal(r.Context(), id, orgID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reportResponse{Report: report, Operations: ops, TotalHours: total})
}

func (h *ReportHandler) List(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r.Context())
	q := r.URL.Query()
	var employeeID int32
	if raw := q.Get("employee_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid employee_id"})
			return
		}
		employeeID = int32(id)
	}
	// Employees only ever see their own reports.
	if claims.Role != string(domain.RoleAdmin) {
		employeeID = claims.UserID
	}
	reports, err := h.reports.ListReports(r.Context(), claims.OrgID, employeeID, q.Get("status"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reports)
}

func (h *ReportHandler) Approve(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.reports.ApproveReport(r.Context(), id, ClaimsFromContext(r.Context()).OrgID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *ReportHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.reports.DeleteReport(r.Context(), id, ClaimsFromContext(r.Context()).OrgID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *ReportHandler) AddOperation(w http.ResponseWriter, r *http.Request) {
	reportID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var op domain.Operation
	if !decodeBody(w, r, &op) {
		return
	}
	op.ReportID = reportID
	if err := h.reports.AddOperation(r.Context(), ClaimsFromContext(r.Context()).OrgID, &op); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, op)
}

func (h *ReportHandler) UpdateOperation(w http.ResponseWriter, r *http.Request) {
	reportID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	opID, ok := pathID(w, r, "opID")
	if !ok {
		return
	}
	var op domain.Operation
	if !decodeBody(w, r, &op) {
		return
	}
	op.ID = opID
	op.ReportID = reportID
	if err := h.reports.UpdateOperation(r.Context(), ClaimsFromContext(r.Context()).OrgID, &op); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, op)
}

func (h *ReportHandler) DeleteOperation(w http.ResponseWriter, r *http.Request) {
	reportID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	opID, ok := pathID(w, r, "opID")
	if !ok {
		return
	}
	if err := h.reports.DeleteOperation(r.Context(), ClaimsFromContext(r.Context()).OrgID, reportID, opID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

type adjustmentRequest struct {
	Adjustment float64 `json:"adjustment"`
	Reason     *string `json:"reason,omitempty"`
}

func (h *ReportHandler) SetAdjustment(w http.ResponseWriter, r *http.Request) {
	reportID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req adjustmentRequest
	if !decodeBody(w, r, &req) {
		return
	}
	claims := ClaimsFromContext(r.Context())
	adj := domain.HoursAdjustment{
		ReportID:   reportID,
		Adjustment: req.Adjustment,
		Reason:     req.Reason,
		CreatedBy:  claims.UserID,
	}
	if err := h.reports.SetAdjustment(r.Context(), claims.OrgID, &adj); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, adj)
}
