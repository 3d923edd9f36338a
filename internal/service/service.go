package service

import (
	"context"

	"fieldwork-backend/internal/domain"
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	RegisterDevice(ctx context.Context, userID int32, token string) error
}

type VehicleService interface {
	AddVehicle(ctx context.Context, vehicle *domain.Vehicle) error
	GetVehicle(ctx context.Context, id, orgID int32) (*domain.Vehicle, error)
	UpdateVehicle(ctx context.Context, vehicle *domain.Vehicle) error
	DeleteVehicle(ctx context.Context, id, orgID int32) error
	ListVehicles(ctx context.Context, orgID int32) ([]domain.Vehicle, error)
}

type FuelService interface {
	// RemainingLiters is the running tank balance over the whole history:
	// sum of load liters minus sum of refilled liters. Negative values are
	// returned as-is; they signal a data-entry inconsistency.
	RemainingLiters(ctx context.Context, orgID int32) (float64, error)
	// ProposeLitersBefore suggests the litersAfter of the most recent refill
	// as the next entry's litersBefore. Nil when the org has no history.
	ProposeLitersBefore(ctx context.Context, orgID int32) (*float64, error)
	Statistics(ctx context.Context, orgID int32, year, month string) (*domain.FuelStatistics, error)

	AddTankLoad(ctx context.Context, load *domain.FuelTankLoad) error
	DeleteTankLoad(ctx context.Context, id, orgID int32) error
	ListTankLoads(ctx context.Context, orgID int32) ([]domain.FuelTankLoad, error)
	AddRefill(ctx context.Context, refill *domain.FuelRefill) error
	DeleteRefill(ctx context.Context, id, orgID int32) error
	ListRefills(ctx context.Context, orgID int32) ([]domain.FuelRefill, error)
}

type WorkOrderService interface {
	// Stats returns one entry per work order in the organization, including
	// work orders with no approved activity.
	Stats(ctx context.Context, orgID int32) ([]domain.WorkOrderStat, error)
	// Detail returns the per-commessa report: approved operations grouped by
	// date and employee, with merged hours, work types, materials and notes.
	Detail(ctx context.Context, workOrderID, orgID int32) (*domain.WorkOrderDetail, error)

	AddWorkOrder(ctx context.Context, wo *domain.WorkOrder) error
	GetWorkOrder(ctx context.Context, id, orgID int32) (*domain.WorkOrder, error)
	UpdateWorkOrder(ctx context.Context, wo *domain.WorkOrder) error
	DeleteWorkOrder(ctx context.Context, id, orgID int32) error
	ListWorkOrders(ctx context.Context, orgID int32) ([]domain.WorkOrder, error)
}

type ReportService interface {
	CreateReport(ctx context.Context, report *domain.DailyReport) error
	GetReport(ctx context.Context, id, orgID int32) (*domain.DailyReport, []domain.Operation, error)
	ListReports(ctx context.Context, orgID, employeeID int32, status string) ([]domain.DailyReport, error)
	ApproveReport(ctx context.Context, id, orgID int32) error
	DeleteReport(ctx context.Context, id, orgID int32) error

	AddOperation(ctx context.Context, orgID int32, op *domain.Operation) error
	UpdateOperation(ctx context.Context, orgID int32, op *domain.Operation) error
	DeleteOperation(ctx context.Context, orgID, reportID, operationID int32) error

	SetAdjustment(ctx context.Context, orgID int32, adj *domain.HoursAdjustment) error
	// ReportTotal is the rendered total for one report: summed operation hours
	// plus the hours adjustment when one exists. Work-order rollups do not use
	// this; they sum raw operation hours.
	ReportTotal(ctx context.Context, id, orgID int32) (float64, error)
}

type EmailService interface {
	SendReportApproved(ctx context.Context, email, name, date string) error
}
