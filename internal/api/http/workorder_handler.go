package http

import (
	"fmt"
	"net/http"

	"fieldwork-backend/internal/domain"
	"fieldwork-backend/internal/export"
	"fieldwork-backend/internal/service"
)

type WorkOrderHandler struct {
	workOrders service.WorkOrderService
}

func NewWorkOrderHandler(workOrders service.WorkOrderService) *WorkOrderHandler {
	return &WorkOrderHandler{workOrders: workOrders}
}

func (h *WorkOrderHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.workOrders.Stats(r.Context(), ClaimsFromContext(r.Context()).OrgID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *WorkOrderHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	detail, err := h.workOrders.Detail(r.Context(), id, ClaimsFromContext(r.Context()).OrgID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

func (h *WorkOrderHandler) Export(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	detail, err := h.workOrders.Detail(r.Context(), id, ClaimsFromContext(r.Context()).OrgID)
	if err != nil {
		writeError(w, err)
		return
	}
	file, err := export.WorkOrderDetailExcel(detail)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="work-order-%d.xlsx"`, id))
	if err := file.Write(w); err != nil {
		writeError(w, err)
	}
}

func (h *WorkOrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var wo domain.WorkOrder
	if !decodeBody(w, r, &wo) {
		return
	}
	wo.OrgID = ClaimsFromContext(r.Context()).OrgID
	if err := h.workOrders.AddWorkOrder(r.Context(), &wo); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, wo)
}

func (h *WorkOrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	wo, err := h.workOrders.GetWorkOrder(r.Context(), id, ClaimsFromContext(r.Context()).OrgID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, wo)
}

func (h *WorkOrderHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var wo domain.WorkOrder
	if !decodeBody(w, r, &wo) {
		return
	}
	wo.ID = id
	wo.OrgID = ClaimsFromContext(r.Context()).OrgID
	if err := h.workOrders.UpdateWorkOrder(r.Context(), &wo); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, wo)
}

func (h *WorkOrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.workOrders.DeleteWorkOrder(r.Context(), id, ClaimsFromContext(r.Context()).OrgID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *WorkOrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.workOrders.ListWorkOrders(r.Context(), ClaimsFromContext(r.Context()).OrgID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}
