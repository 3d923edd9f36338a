package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"fieldwork-backend/internal/domain"
	"fieldwork-backend/internal/service"
)

// pathID reads a numeric path variable; responds 400 and returns false when
// it is missing or not a number.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int32, bool) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid " + name})
		return 0, false
	}
	return int32(id), true
}

type VehicleHandler struct {
	vehicles service.VehicleService
}

func NewVehicleHandler(vehicles service.VehicleService) *VehicleHandler {
	return &VehicleHandler{vehicles: vehicles}
}

func (h *VehicleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var vehicle domain.Vehicle
	if !decodeBody(w, r, &vehicle) {
		return
	}
	vehicle.OrgID = ClaimsFromContext(r.Context()).OrgID
	if err := h.vehicles.AddVehicle(r.Context(), &vehicle); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, vehicle)
}

func (h *VehicleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	vehicle, err := h.vehicles.GetVehicle(r.Context(), id, ClaimsFromContext(r.Context()).OrgID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicle)
}

func (h *VehicleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var vehicle domain.Vehicle
	if !decodeBody(w, r, &vehicle) {
		return
	}
	vehicle.ID = id
	vehicle.OrgID = ClaimsFromContext(r.Context()).OrgID
	if err := h.vehicles.UpdateVehicle(r.Context(), &vehicle); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicle)
}

func (h *VehicleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.vehicles.DeleteVehicle(r.Context(), id, ClaimsFromContext(r.Context()).OrgID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *VehicleHandler) List(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.vehicles.ListVehicles(r.Context(), ClaimsFromContext(r.Context()).OrgID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicles)
}
