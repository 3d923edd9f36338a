package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"fieldwork-backend/internal/security"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth       *AuthHandler
	Vehicles   *VehicleHandler
	Fuel       *FuelHandler
	WorkOrders *WorkOrderHandler
	Reports    *ReportHandler
	Photos     *PhotoHandler
}

// NewRouter wires every endpoint behind the JWT middleware; login is the only
// open route. Admin-only routes carry the role guard.
func NewRouter(h *Handlers, tokens security.TokenManager) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/api/auth/login", h.Auth.Login).Methods(http.MethodPost)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(AuthMiddleware(tokens))

	api.HandleFunc("/auth/device", h.Auth.RegisterDevice).Methods(http.MethodPost)

	// Fleet & fuel
	api.HandleFunc("/vehicles", h.Vehicles.List).Methods(http.MethodGet)
	api.HandleFunc("/vehicles", RequireAdmin(h.Vehicles.Create)).Methods(http.MethodPost)
	api.HandleFunc("/vehicles/{id}", h.Vehicles.Get).Methods(http.MethodGet)
	api.HandleFunc("/vehicles/{id}", RequireAdmin(h.Vehicles.Update)).Methods(http.MethodPut)
	api.HandleFunc("/vehicles/{id}", RequireAdmin(h.Vehicles.Delete)).Methods(http.MethodDelete)

	api.HandleFunc("/fuel/remaining", h.Fuel.Remaining).Methods(http.MethodGet)
	api.HandleFunc("/fuel/refills/statistics", h.Fuel.Statistics).Methods(http.MethodGet)
	api.HandleFunc("/fuel/refills/statistics/export", h.Fuel.StatisticsExport).Methods(http.MethodGet)
	api.HandleFunc("/fuel/refills/prefill", h.Fuel.Prefill).Methods(http.MethodGet)
	api.HandleFunc("/fuel/refills/dispensed", h.Fuel.Dispensed).Methods(http.MethodGet)
	api.HandleFunc("/fuel/refills", h.Fuel.ListRefills).Methods(http.MethodGet)
	api.HandleFunc("/fuel/refills", h.Fuel.CreateRefill).Methods(http.MethodPost)
	api.HandleFunc("/fuel/refills/{id}", RequireAdmin(h.Fuel.DeleteRefill)).Methods(http.MethodDelete)
	api.HandleFunc("/fuel/loads", h.Fuel.ListTankLoads).Methods(http.MethodGet)
	api.HandleFunc("/fuel/loads", RequireAdmin(h.Fuel.CreateTankLoad)).Methods(http.MethodPost)
	api.HandleFunc("/fuel/loads/{id}", RequireAdmin(h.Fuel.DeleteTankLoad)).Methods(http.MethodDelete)

	// Work orders
	api.HandleFunc("/work-orders/stats", h.WorkOrders.Stats).Methods(http.MethodGet)
	api.HandleFunc("/work-orders", h.WorkOrders.List).Methods(http.MethodGet)
	api.HandleFunc("/work-orders", RequireAdmin(h.WorkOrders.Create)).Methods(http.MethodPost)
	api.HandleFunc("/work-orders/{id}", h.WorkOrders.Get).Methods(http.MethodGet)
	api.HandleFunc("/work-orders/{id}", RequireAdmin(h.WorkOrders.Update)).Methods(http.MethodPut)
	api.HandleFunc("/work-orders/{id}", RequireAdmin(h.WorkOrders.Delete)).Methods(http.MethodDelete)
	api.HandleFunc("/work-orders/{id}/report", h.WorkOrders.Detail).Methods(http.MethodGet)
	api.HandleFunc("/work-orders/{id}/export", h.WorkOrders.Export).Methods(http.MethodGet)

	// Daily reports
	api.HandleFunc("/reports", h.Reports.List).Methods(http.MethodGet)
	api.HandleFunc("/reports", h.Reports.Create).Methods(http.MethodPost)
	api.HandleFunc("/reports/{id}", h.Reports.Get).Methods(http.MethodGet)
	api.HandleFunc("/reports/{id}", h.Reports.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/reports/{id}/approve", RequireAdmin(h.Reports.Approve)).Methods(http.MethodPost)
	api.HandleFunc("/reports/{id}/adjustment", RequireAdmin(h.Reports.SetAdjustment)).Methods(http.MethodPut)
	api.HandleFunc("/reports/{id}/operations", h.Reports.AddOperation).Methods(http.MethodPost)
	api.HandleFunc("/reports/{id}/operations/{opID}", h.Reports.UpdateOperation).Methods(http.MethodPut)
	api.HandleFunc("/reports/{id}/operations/{opID}", h.Reports.DeleteOperation).Methods(http.MethodDelete)

	// Photos
	api.HandleFunc("/photos", h.Photos.Upload).Methods(http.MethodPost)
	api.HandleFunc("/photos/{key}", h.Photos.Download).Methods(http.MethodGet)

	return r
}
