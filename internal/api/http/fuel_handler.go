package http

import (
	"net/http"

	"fieldwork-backend/internal/domain"
	"fieldwork-backend/internal/export"
	"fieldwork-backend/internal/service"
)

type FuelHandler struct {
	fuel service.FuelService
}

func NewFuelHandler(fuel service.FuelService) *FuelHandler {
	return &FuelHandler{fuel: fuel}
}

type remainingResponse struct {
	Remaining float64 `json:"remaining"`
	// Inconsistent flags a negative balance for the admin; the value itself is
	// never clamped.
	Inconsistent bool `json:"inconsistent"`
}

func (h *FuelHandler) Remaining(w http.ResponseWriter, r *http.Request) {
	remaining, err := h.fuel.RemainingLiters(r.Context(), ClaimsFromContext(r.Context()).OrgID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, remainingResponse{Remaining: remaining, Inconsistent: remaining < 0})
}

func (h *FuelHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	year := r.URL.Query().Get("year")
	month := r.URL.Query().Get("month")
	stats, err := h.fuel.Statistics(r.Context(), ClaimsFromContext(r.Context()).OrgID, year, month)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *FuelHandler) StatisticsExport(w http.ResponseWriter, r *http.Request) {
	year := r.URL.Query().Get("year")
	month := r.URL.Query().Get("month")
	stats, err := h.fuel.Statistics(r.Context(), ClaimsFromContext(r.Context()).OrgID, year, month)
	if err != nil {
		writeError(w, err)
		return
	}
	file, err := export.FuelStatisticsExcel(stats)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="fuel-statistics.xlsx"`)
	if err := file.Write(w); err != nil {
		writeError(w, err)
	}
}

type prefillResponse struct {
	LitersBefore *float64 `json:"liters_before"`
}

func (h *FuelHandler) Prefill(w http.ResponseWriter, r *http.Request) {
	liters, err := h.fuel.ProposeLitersBefore(r.Context(), ClaimsFromContext(r.Context()).OrgID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, prefillResponse{LitersBefore: liters})
}

type dispensedResponse struct {
	Dispensed *float64 `json:"dispensed"`
}

// Dispensed previews litersAfter-litersBefore for the refill form. A null
// result means one of the inputs did not parse; the committed value is always
// recomputed server-side.
func (h *FuelHandler) Dispensed(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	value, ok := service.ComputeDispensed(q.Get("before"), q.Get("after"))
	resp := dispensedResponse{}
	if ok {
		resp.Dispensed = &value
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *FuelHandler) CreateTankLoad(w http.ResponseWriter, r *http.Request) {
	var load domain.FuelTankLoad
	if !decodeBody(w, r, &load) {
		return
	}
	load.OrgID = ClaimsFromContext(r.Context()).OrgID
	if err := h.fuel.AddTankLoad(r.Context(), &load); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, load)
}

func (h *FuelHandler) DeleteTankLoad(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.fuel.DeleteTankLoad(r.Context(), id, ClaimsFromContext(r.Context()).OrgID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *FuelHandler) ListTankLoads(w http.ResponseWriter, r *http.Request) {
	loads, err := h.fuel.ListTankLoads(r.Context(), ClaimsFromContext(r.Context()).OrgID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, loads)
}

func (h *FuelHandler) CreateRefill(w http.ResponseWriter, r *http.Request) {
	var refill domain.FuelRefill
	if !decodeBody(w, r, &refill) {
		return
	}
	refill.OrgID = ClaimsFromContext(r.Context()).OrgID
	if err := h.fuel.AddRefill(r.Context(), &refill); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, refill)
}

func (h *FuelHandler) DeleteRefill(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.fuel.DeleteRefill(r.Context(), id, ClaimsFromContext(r.Context()).OrgID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *FuelHandler) ListRefills(w http.ResponseWriter, r *http.Request) {
	refills, err := h.fuel.ListRefills(r.Context(), ClaimsFromContext(r.Context()).OrgID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, refills)
}
