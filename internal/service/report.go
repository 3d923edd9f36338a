package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"fieldwork-backend/internal/domain"
	"fieldwork-backend/internal/logger"
	"fieldwork-backend/internal/repository"
)

type reportService struct {
	reportRepo repository.ReportRepository
	userRepo   repository.UserRepository
	email      EmailService
}

func NewReportService(reportRepo repository.ReportRepository, userRepo repository.UserRepository, email EmailService) ReportService {
	return &reportService{reportRepo: reportRepo, userRepo: userRepo, email: email}
}

func (s *reportService) CreateReport(ctx context.Context, report *domain.DailyReport) error {
	if _, err := time.Parse("2006-01-02", report.Date); err != nil {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", domain.ErrValidation)
	}
	if report.Status == "" {
		report.Status = domain.ReportStatusPending
	}
	return s.reportRepo.CreateReport(ctx, report)
}

func (s *reportService) GetReport(ctx context.Context, id, orgID int32) (*domain.DailyReport, []domain.Operation, error) {
	report, err := s.reportRepo.GetReport(ctx, id, orgID)
	if err != nil {
		return nil, nil, err
	}
	ops, err := s.reportRepo.ListOperationsByReport(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return report, ops, nil
}

func (s *reportService) ListReports(ctx context.Context, orgID, employeeID int32, status string) ([]domain.DailyReport, error) {
	return s.reportRepo.ListReports(ctx, orgID, employeeID, status)
}

func (s *reportService) ApproveReport(ctx context.Context, id, orgID int32) error {
	report, err := s.reportRepo.GetReport(ctx, id, orgID)
	if err != nil {
		return err
	}
	if err := s.reportRepo.UpdateStatus(ctx, id, orgID, domain.ReportStatusApproved); err != nil {
		return err
	}
	// Notification is best effort; the approval already happened.
	if employee, err := s.userRepo.GetByID(ctx, report.EmployeeID); err == nil {
		if err := s.email.SendReportApproved(ctx, employee.Email, employee.Name, report.Date); err != nil {
			logger.Warn("Failed to send approval email", "report_id", id, "employee_id", employee.ID, "error", err)
		}
	}
	return nil
}

func (s *reportService) DeleteReport(ctx context.Context, id, orgID int32) error {
	return s.reportRepo.DeleteReport(ctx, id, orgID)
}

func (s *reportService) AddOperation(ctx context.Context, orgID int32, op *domain.Operation) error {
	if err := s.validateOperation(ctx, orgID, op); err != nil {
		return err
	}
	return s.reportRepo.CreateOperation(ctx, op)
}

func (s *reportService) UpdateOperation(ctx context.Context, orgID int32, op *domain.Operation) error {
	if err := s.validateOperation(ctx, orgID, op); err != nil {
		return err
	}
	return s.reportRepo.UpdateOperation(ctx, op)
}

func (s *reportService) validateOperation(ctx context.Context, orgID int32, op *domain.Operation) error {
	if _, err := s.reportRepo.GetReport(ctx, op.ReportID, orgID); err != nil {
		return err
	}
	hours, err := strconv.ParseFloat(strings.TrimSpace(op.Hours), 64)
	if err != nil {
		return fmt.Errorf("%w: hours must be numeric", domain.ErrValidation)
	}
	if hours < 0 {
		return fmt.Errorf("%w: hours must not be negative", domain.ErrValidation)
	}
	if len(op.Photos) > domain.MaxOperationPhotos {
		return fmt.Errorf("%w: at most %d photos per operation", domain.ErrValidation, domain.MaxOperationPhotos)
	}
	return nil
}

func (s *reportService) DeleteOperation(ctx context.Context, orgID, reportID, operationID int32) error {
	if _, err := s.reportRepo.GetReport(ctx, reportID, orgID); err != nil {
		return err
	}
	return s.reportRepo.DeleteOperation(ctx, operationID, reportID)
}

func (s *reportService) SetAdjustment(ctx context.Context, orgID int32, adj *domain.HoursAdjustment) error {
	if _, err := s.reportRepo.GetReport(ctx, adj.ReportID, orgID); err != nil {
		return err
	}
	return s.reportRepo.UpsertAdjustment(ctx, adj)
}

func (s *reportService) ReportTotal(ctx context.Context, id, orgID int32) (float64, error) {
	if _, err := s.reportRepo.GetReport(ctx, id, orgID); err != nil {
		return 0, err
	}
	ops, err := s.reportRepo.ListOperationsByReport(ctx, id)
	if err != nil {
		return 0, err
	}
	var total float64
	for _, op := range ops {
		total += parseHours(op.Hours)
	}
	adj, err := s.reportRepo.GetAdjustment(ctx, id)
	if err == domain.ErrNotFound {
		return total, nil
	}
	if err != nil {
		return 0, err
	}
	return total + adj.Adjustment, nil
}
