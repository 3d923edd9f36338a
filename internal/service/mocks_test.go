package service

import (
	"context"

	"fieldwork-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockFuelRepo
type MockFuelRepo struct {
	mock.Mock
}

func (m *MockFuelRepo) CreateTankLoad(ctx context.Context, load *domain.FuelTankLoad) error {
	args := m.Called(ctx, load)
	return args.Error(0)
}
func (m *MockFuelRepo) DeleteTankLoad(ctx context.Context, id, orgID int32) error {
	args := m.Called(ctx, id, orgID)
	return args.Error(0)
}
func (m *MockFuelRepo) ListTankLoads(ctx context.Context, orgID int32) ([]domain.FuelTankLoad, error) {
	args := m.Called(ctx, orgID)
	return args.Get(0).([]domain.FuelTankLoad), args.Error(1)
}
func (m *MockFuelRepo) CreateRefill(ctx context.Context, refill *domain.FuelRefill) error {
	args := m.Called(ctx, refill)
	return args.Error(0)
}
func (m *MockFuelRepo) DeleteRefill(ctx context.Context, id, orgID int32) error {
	args := m.Called(ctx, id, orgID)
	return args.Error(0)
}
func (m *MockFuelRepo) ListRefills(ctx context.Context, orgID int32) ([]domain.FuelRefill, error) {
	args := m.Called(ctx, orgID)
	return args.Get(0).([]domain.FuelRefill), args.Error(1)
}
func (m *MockFuelRepo) LastRefill(ctx context.Context, orgID int32) (*domain.FuelRefill, error) {
	args := m.Called(ctx, orgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FuelRefill), args.Error(1)
}

// MockVehicleRepo
type MockVehicleRepo struct {
	mock.Mock
}

func (m *MockVehicleRepo) Create(ctx context.Context, vehicle *domain.Vehicle) error {
	args := m.Called(ctx, vehicle)
	return args.Error(0)
}
func (m *MockVehicleRepo) GetByID(ctx context.Context, id, orgID int32) (*domain.Vehicle, error) {
	args := m.Called(ctx, id, orgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}
func (m *MockVehicleRepo) Update(ctx context.Context, vehicle *domain.Vehicle) error {
	args := m.Called(ctx, vehicle)
	return args.Error(0)
}
func (m *MockVehicleRepo) Delete(ctx context.Context, id, orgID int32) error {
	args := m.Called(ctx, id, orgID)
	return args.Error(0)
}
func (m *MockVehicleRepo) ListByOrg(ctx context.Context, orgID int32) ([]domain.Vehicle, error) {
	args := m.Called(ctx, orgID)
	return args.Get(0).([]domain.Vehicle), args.Error(1)
}

// MockWorkOrderRepo
type MockWorkOrderRepo struct {
	mock.Mock
}

func (m *MockWorkOrderRepo) Create(ctx context.Context, wo *domain.WorkOrder) error {
	args := m.Called(ctx, wo)
	return args.Error(0)
}
func (m *MockWorkOrderRepo) GetByID(ctx context.Context, id, orgID int32) (*domain.WorkOrder, error) {
	args := m.Called(ctx, id, orgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkOrder), args.Error(1)
}
func (m *MockWorkOrderRepo) Update(ctx context.Context, wo *domain.WorkOrder) error {
	args := m.Called(ctx, wo)
	return args.Error(0)
}
func (m *MockWorkOrderRepo) Delete(ctx context.Context, id, orgID int32) error {
	args := m.Called(ctx, id, orgID)
	return args.Error(0)
}
func (m *MockWorkOrderRepo) ListByOrg(ctx context.Context, orgID int32) ([]domain.WorkOrder, error) {
	args := m.Called(ctx, orgID)
	return args.Get(0).([]domain.WorkOrder), args.Error(1)
}

// MockReportRepo
type MockReportRepo struct {
	mock.Mock
}

func (m *MockReportRepo) CreateReport(ctx context.Context, report *domain.DailyReport) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}
func (m *MockReportRepo) GetReport(ctx context.Context, id, orgID int32) (*domain.DailyReport, error) {
	args := m.Called(ctx, id, orgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyReport), args.Error(1)
}
func (m *MockReportRepo) ListReports(ctx context.Context, orgID int32, employeeID int32, status string) ([]domain.DailyReport, error) {
	args := m.Called(ctx, orgID, employeeID, status)
	return args.Get(0).([]domain.DailyReport), args.Error(1)
}
func (m *MockReportRepo) UpdateStatus(ctx context.Context, id, orgID int32, status domain.ReportStatus) error {
	args := m.Called(ctx, id, orgID, status)
	return args.Error(0)
}
func (m *MockReportRepo) DeleteReport(ctx context.Context, id, orgID int32) error {
	args := m.Called(ctx, id, orgID)
	return args.Error(0)
}
func (m *MockReportRepo) ExistsForEmployeeOnDate(ctx context.Context, orgID, employeeID int32, date string) (bool, error) {
	args := m.Called(ctx, orgID, employeeID, date)
	return args.Bool(0), args.Error(1)
}
func (m *MockReportRepo) CreateOperation(ctx context.Context, op *domain.Operation) error {
	args := m.Called(ctx, op)
	return args.Error(0)
}
func (m *MockReportRepo) UpdateOperation(ctx context.Context, op *domain.Operation) error {
	args := m.Called(ctx, op)
	return args.Error(0)
}
func (m *MockReportRepo) DeleteOperation(ctx context.Context, id, reportID int32) error {
	args := m.Called(ctx, id, reportID)
	return args.Error(0)
}
func (m *MockReportRepo) ListOperationsByReport(ctx context.Context, reportID int32) ([]domain.Operation, error) {
	args := m.Called(ctx, reportID)
	return args.Get(0).([]domain.Operation), args.Error(1)
}
func (m *MockReportRepo) ListApprovedOperations(ctx context.Context, orgID int32) ([]domain.ReportOperation, error) {
	args := m.Called(ctx, orgID)
	return args.Get(0).([]domain.ReportOperation), args.Error(1)
}
func (m *MockReportRepo) ListApprovedOperationsByWorkOrder(ctx context.Context, workOrderID, orgID int32) ([]domain.ReportOperation, error) {
	args := m.Called(ctx, workOrderID, orgID)
	return args.Get(0).([]domain.ReportOperation), args.Error(1)
}
func (m *MockReportRepo) UpsertAdjustment(ctx context.Context, adj *domain.HoursAdjustment) error {
	args := m.Called(ctx, adj)
	return args.Error(0)
}
func (m *MockReportRepo) GetAdjustment(ctx context.Context, reportID int32) (*domain.HoursAdjustment, error) {
	args := m.Called(ctx, reportID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HoursAdjustment), args.Error(1)
}

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) UpdateDeviceToken(ctx context.Context, id int32, token string) error {
	args := m.Called(ctx, id, token)
	return args.Error(0)
}
func (m *MockUserRepo) ListActiveByOrg(ctx context.Context, orgID int32) ([]domain.User, error) {
	args := m.Called(ctx, orgID)
	return args.Get(0).([]domain.User), args.Error(1)
}

// MockEmail
type MockEmail struct {
	mock.Mock
}

func (m *MockEmail) SendReportApproved(ctx context.Context, email, name, date string) error {
	args := m.Called(ctx, email, name, date)
	return args.Error(0)
}
