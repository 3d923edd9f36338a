package repository

import (
	"context"
	"fieldwork-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateDeviceToken(ctx context.Context, id int32, token string) error
	ListActiveByOrg(ctx context.Context, orgID int32) ([]domain.User, error)
}

type VehicleRepository interface {
	Create(ctx context.Context, vehicle *domain.Vehicle) error
	GetByID(ctx context.Context, id, orgID int32) (*domain.Vehicle, error)
	Update(ctx context.Context, vehicle *domain.Vehicle) error
	// Delete removes the vehicle and all of its refills.
	Delete(ctx context.Context, id, orgID int32) error
	ListByOrg(ctx context.Context, orgID int32) ([]domain.Vehicle, error)
}

type FuelRepository interface {
	CreateTankLoad(ctx context.Context, load *domain.FuelTankLoad) error
	DeleteTankLoad(ctx context.Context, id, orgID int32) error
	ListTankLoads(ctx context.Context, orgID int32) ([]domain.FuelTankLoad, error)

	CreateRefill(ctx context.Context, refill *domain.FuelRefill) error
	DeleteRefill(ctx context.Context, id, orgID int32) error
	ListRefills(ctx context.Context, orgID int32) ([]domain.FuelRefill, error)
	// LastRefill returns the organization's most recent refill by refill_date,
	// across vehicles, or ErrNotFound when there is no history.
	LastRefill(ctx context.Context, orgID int32) (*domain.FuelRefill, error)
}

type ReportRepository interface {
	CreateReport(ctx context.Context, report *domain.DailyReport) error
	GetReport(ctx context.Context, id, orgID int32) (*domain.DailyReport, error)
	ListReports(ctx context.Context, orgID int32, employeeID int32, status string) ([]domain.DailyReport, error)
	UpdateStatus(ctx context.Context, id, orgID int32, status domain.ReportStatus) error
	// DeleteReport removes the report together with its operations and any
	// hours adjustment.
	DeleteReport(ctx context.Context, id, orgID int32) error
	ExistsForEmployeeOnDate(ctx context.Context, orgID, employeeID int32, date string) (bool, error)

	CreateOperation(ctx context.Context, op *domain.Operation) error
	UpdateOperation(ctx context.Context, op *domain.Operation) error
	DeleteOperation(ctx context.Context, id, reportID int32) error
	ListOperationsByReport(ctx context.Context, reportID int32) ([]domain.Operation, error)
	// ListApprovedOperations returns every operation belonging to an approved
	// report in the organization, joined with report date and employee name.
	ListApprovedOperations(ctx context.Context, orgID int32) ([]domain.ReportOperation, error)
	ListApprovedOperationsByWorkOrder(ctx context.Context, workOrderID, orgID int32) ([]domain.ReportOperation, error)

	UpsertAdjustment(ctx context.Context, adj *domain.HoursAdjustment) error
	GetAdjustment(ctx context.Context, reportID int32) (*domain.HoursAdjustment, error)
}

type WorkOrderRepository interface {
	Create(ctx context.Context, wo *domain.WorkOrder) error
	GetByID(ctx context.Context, id, orgID int32) (*domain.WorkOrder, error)
	Update(ctx context.Context, wo *domain.WorkOrder) error
	Delete(ctx context.Context, id, orgID int32) error
	ListByOrg(ctx context.Context, orgID int32) ([]domain.WorkOrder, error)
}
