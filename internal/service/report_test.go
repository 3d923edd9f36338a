package service

import (
	"context"
	"errors"
	"testing"

	"fieldwork-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateReport(t *testing.T) {
	reportRepo := new(MockReportRepo)
	svc := NewReportService(reportRepo, new(MockUserRepo), new(MockEmail))

	report := &domain.DailyReport{OrgID: 1, EmployeeID: 7, Date: "2025-07-14"}
	reportRepo.On("CreateReport", mock.Anything, report).Return(nil)

	require.NoError(t, svc.CreateReport(context.Background(), report))
	assert.Equal(t, domain.ReportStatusPending, report.Status)
}

func TestCreateReportInvalidDate(t *testing.T) {
	svc := NewReportService(new(MockReportRepo), new(MockUserRepo), new(MockEmail))

	err := svc.CreateReport(context.Background(), &domain.DailyReport{OrgID: 1, EmployeeID: 7, Date: "14/07/2025"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCreateReportDuplicateDay(t *testing.T) {
	reportRepo := new(MockReportRepo)
	svc := NewReportService(reportRepo, new(MockUserRepo), new(MockEmail))

	report := &domain.DailyReport{OrgID: 1, EmployeeID: 7, Date: "2025-07-14"}
	reportRepo.On("CreateReport", mock.Anything, report).Return(domain.ErrDuplicate)

	err := svc.CreateReport(context.Background(), report)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestApproveReportSendsEmail(t *testing.T) {
	reportRepo := new(MockReportRepo)
	userRepo := new(MockUserRepo)
	email := new(MockEmail)
	svc := NewReportService(reportRepo, userRepo, email)

	reportRepo.On("GetReport", mock.Anything, int32(5), int32(1)).
		Return(&domain.DailyReport{ID: 5, OrgID: 1, EmployeeID: 7, Date: "2025-07-14", Status: domain.ReportStatusPending}, nil)
	reportRepo.On("UpdateStatus", mock.Anything, int32(5), int32(1), domain.ReportStatusApproved).Return(nil)
	userRepo.On("GetByID", mock.Anything, int32(7)).
		Return(&domain.User{ID: 7, Name: "Ada", Email: "ada@example.com"}, nil)
	email.On("SendReportApproved", mock.Anything, "ada@example.com", "Ada", "2025-07-14").Return(nil)

	require.NoError(t, svc.ApproveReport(context.Background(), 5, 1))
	email.AssertExpectations(t)
}

func TestApproveReportSurvivesEmailFailure(t *testing.T) {
	reportRepo := new(MockReportRepo)
	userRepo := new(MockUserRepo)
	email := new(MockEmail)
	svc := NewReportService(reportRepo, userRepo, email)

	reportRepo.On("GetReport", mock.Anything, int32(5), int32(1)).
		Return(&domain.DailyReport{ID: 5, OrgID: 1, EmployeeID: 7, Date: "2025-07-14"}, nil)
	reportRepo.On("UpdateStatus", mock.Anything, int32(5), int32(1), domain.ReportStatusApproved).Return(nil)
	userRepo.On("GetByID", mock.Anything, int32(7)).
		Return(&domain.User{ID: 7, Name: "Ada", Email: "ada@example.com"}, nil)
	email.On("SendReportApproved", mock.Anything, "ada@example.com", "Ada", "2025-07-14").
		Return(errors.New("sendgrid unavailable"))

	assert.NoError(t, svc.ApproveReport(context.Background(), 5, 1))
}

func TestAddOperationValidation(t *testing.T) {
	reportRepo := new(MockReportRepo)
	svc := NewReportService(reportRepo, new(MockUserRepo), new(MockEmail))
	ctx := context.Background()

	reportRepo.On("GetReport", mock.Anything, int32(3), int32(1)).
		Return(&domain.DailyReport{ID: 3, OrgID: 1}, nil)

	err := svc.AddOperation(ctx, 1, &domain.Operation{ReportID: 3, Hours: "lots"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	err = svc.AddOperation(ctx, 1, &domain.Operation{ReportID: 3, Hours: "-1"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	err = svc.AddOperation(ctx, 1, &domain.Operation{
		ReportID: 3,
		Hours:    "2",
		Photos:   []string{"a", "b", "c", "d", "e", "f"},
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAddOperationUnknownReport(t *testing.T) {
	reportRepo := new(MockReportRepo)
	svc := NewReportService(reportRepo, new(MockUserRepo), new(MockEmail))

	reportRepo.On("GetReport", mock.Anything, int32(3), int32(1)).Return(nil, domain.ErrNotFound)

	err := svc.AddOperation(context.Background(), 1, &domain.Operation{ReportID: 3, Hours: "2"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAddOperation(t *testing.T) {
	reportRepo := new(MockReportRepo)
	svc := NewReportService(reportRepo, new(MockUserRepo), new(MockEmail))

	op := &domain.Operation{ReportID: 3, ClientID: 2, Hours: "7.5", WorkTypes: []string{"Weld"}}
	reportRepo.On("GetReport", mock.Anything, int32(3), int32(1)).
		Return(&domain.DailyReport{ID: 3, OrgID: 1}, nil)
	reportRepo.On("CreateOperation", mock.Anything, op).Return(nil)

	require.NoError(t, svc.AddOperation(context.Background(), 1, op))
	reportRepo.AssertExpectations(t)
}

func TestReportTotal(t *testing.T) {
	reportRepo := new(MockReportRepo)
	svc := NewReportService(reportRepo, new(MockUserRepo), new(MockEmail))

	reportRepo.On("GetReport", mock.Anything, int32(9), int32(1)).
		Return(&domain.DailyReport{ID: 9, OrgID: 1}, nil)
	reportRepo.On("ListOperationsByReport", mock.Anything, int32(9)).
		Return([]domain.Operation{
			{Hours: "4"},
			{Hours: "3.5"},
			{Hours: "broken"},
		}, nil)
	reportRepo.On("GetAdjustment", mock.Anything, int32(9)).Return(nil, domain.ErrNotFound)

	total, err := svc.ReportTotal(context.Background(), 9, 1)
	require.NoError(t, err)
	assert.InDelta(t, 7.5, total, 1e-9)
}

func TestReportTotalWithAdjustment(t *testing.T) {
	reportRepo := new(MockReportRepo)
	svc := NewReportService(reportRepo, new(MockUserRepo), new(MockEmail))

	reportRepo.On("GetReport", mock.Anything, int32(9), int32(1)).
		Return(&domain.DailyReport{ID: 9, OrgID: 1}, nil)
	reportRepo.On("ListOperationsByReport", mock.Anything, int32(9)).
		Return([]domain.Operation{{Hours: "4"}, {Hours: "4"}}, nil)
	reportRepo.On("GetAdjustment", mock.Anything, int32(9)).
		Return(&domain.HoursAdjustment{ReportID: 9, Adjustment: -1.5}, nil)

	total, err := svc.ReportTotal(context.Background(), 9, 1)
	require.NoError(t, err)
	assert.InDelta(t, 6.5, total, 1e-9)
}

func TestSetAdjustment(t *testing.T) {
	reportRepo := new(MockReportRepo)
	svc := NewReportService(reportRepo, new(MockUserRepo), new(MockEmail))

	adj := &domain.HoursAdjustment{ReportID: 9, Adjustment: 2, CreatedBy: 1}
	reportRepo.On("GetReport", mock.Anything, int32(9), int32(1)).
		Return(&domain.DailyReport{ID: 9, OrgID: 1}, nil)
	reportRepo.On("UpsertAdjustment", mock.Anything, adj).Return(nil)

	require.NoError(t, svc.SetAdjustment(context.Background(), 1, adj))
	reportRepo.AssertExpectations(t)
}
