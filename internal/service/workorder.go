package service

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"fieldwork-backend/internal/domain"
	"fieldwork-backend/internal/repository"
)

type workOrderService struct {
	workOrderRepo repository.WorkOrderRepository
	reportRepo    repository.ReportRepository
}

func NewWorkOrderService(workOrderRepo repository.WorkOrderRepository, reportRepo repository.ReportRepository) WorkOrderService {
	return &workOrderService{workOrderRepo: workOrderRepo, reportRepo: reportRepo}
}

// parseHours turns a submitted hours string into a number. Anything that does
// not parse counts as zero; write-time validation is the place that rejects
// bad input, aggregation just has to survive it.
func parseHours(hours string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(hours), 64)
	if err != nil {
		return 0
	}
	return v
}

func (s *workOrderService) Stats(ctx context.Context, orgID int32) ([]domain.WorkOrderStat, error) {
	orders, err := s.workOrderRepo.ListByOrg(ctx, orgID)
	if err != nil {
		return nil, err
	}
	ops, err := s.reportRepo.ListApprovedOperations(ctx, orgID)
	if err != nil {
		return nil, err
	}
	return buildWorkOrderStats(orders, ops), nil
}

// buildWorkOrderStats rolls approved operations up per work order. Every work
// order of the organization appears exactly once; ones without qualifying
// activity keep zero totals and a nil last activity.
func buildWorkOrderStats(orders []domain.WorkOrder, ops []domain.ReportOperation) []domain.WorkOrderStat {
	stats := make([]domain.WorkOrderStat, len(orders))
	index := make(map[int32]*domain.WorkOrderStat, len(orders))
	for i, wo := range orders {
		stats[i] = domain.WorkOrderStat{WorkOrderID: wo.ID, WorkOrderName: wo.Name}
		index[wo.ID] = &stats[i]
	}

	for _, op := range ops {
		if op.WorkOrderID == nil {
			continue
		}
		stat, ok := index[*op.WorkOrderID]
		if !ok {
			continue
		}
		stat.TotalOperations++
		stat.TotalHours += parseHours(op.Hours)
		if stat.LastActivity == nil || op.ReportDate > *stat.LastActivity {
			date := op.ReportDate
			stat.LastActivity = &date
		}
	}
	return stats
}

func (s *workOrderService) Detail(ctx context.Context, workOrderID, orgID int32) (*domain.WorkOrderDetail, error) {
	wo, err := s.workOrderRepo.GetByID(ctx, workOrderID, orgID)
	if err != nil {
		return nil, err
	}
	ops, err := s.reportRepo.ListApprovedOperationsByWorkOrder(ctx, workOrderID, orgID)
	if err != nil {
		return nil, err
	}
	detail := buildWorkOrderDetail(ops)
	detail.WorkOrderID = wo.ID
	detail.WorkOrderName = wo.Name
	return detail, nil
}

type detailKey struct {
	date       string
	employeeID int32
}

// buildWorkOrderDetail merges operations into one row per (date, employee):
// summed hours, deduplicated unions of work types and materials in encounter
// order, non-empty notes joined by "; ". Rows come out ascending by date with
// employees in encounter order within each date.
func buildWorkOrderDetail(ops []domain.ReportOperation) *domain.WorkOrderDetail {
	detail := &domain.WorkOrderDetail{Rows: []domain.WorkOrderDetailRow{}}

	rows := make(map[detailKey]*domain.WorkOrderDetailRow)
	var order []detailKey
	types := make(map[detailKey]map[string]bool)
	materials := make(map[detailKey]map[string]bool)
	notes := make(map[detailKey][]string)

	for _, op := range ops {
		key := detailKey{date: op.ReportDate, employeeID: op.EmployeeID}
		row, ok := rows[key]
		if !ok {
			row = &domain.WorkOrderDetailRow{
				Date:         op.ReportDate,
				EmployeeID:   op.EmployeeID,
				EmployeeName: op.EmployeeName,
				WorkTypes:    []string{},
				Materials:    []string{},
			}
			rows[key] = row
			order = append(order, key)
			types[key] = make(map[string]bool)
			materials[key] = make(map[string]bool)
		}
		row.Hours += parseHours(op.Hours)
		for _, t := range op.WorkTypes {
			if !types[key][t] {
				types[key][t] = true
				row.WorkTypes = append(row.WorkTypes, t)
			}
		}
		for _, m := range op.Materials {
			if !materials[key][m] {
				materials[key][m] = true
				row.Materials = append(row.Materials, m)
			}
		}
		if strings.TrimSpace(op.Notes) != "" {
			notes[key] = append(notes[key], op.Notes)
		}
	}

	dates := make(map[string]bool)
	employees := make(map[int32]bool)
	for _, key := range order {
		row := rows[key]
		row.Notes = strings.Join(notes[key], "; ")
		detail.Rows = append(detail.Rows, *row)
		detail.TotalHours += row.Hours
		dates[key.date] = true
		employees[key.employeeID] = true
	}
	// Stable sort keeps the encounter order of employees inside a date.
	sort.SliceStable(detail.Rows, func(i, j int) bool {
		return detail.Rows[i].Date < detail.Rows[j].Date
	})

	detail.DayCount = int32(len(dates))
	detail.EmployeeCount = int32(len(employees))
	return detail
}

func (s *workOrderService) AddWorkOrder(ctx context.Context, wo *domain.WorkOrder) error {
	return s.workOrderRepo.Create(ctx, wo)
}

func (s *workOrderService) GetWorkOrder(ctx context.Context, id, orgID int32) (*domain.WorkOrder, error) {
	return s.workOrderRepo.GetByID(ctx, id, orgID)
}

func (s *workOrderService) UpdateWorkOrder(ctx context.Context, wo *domain.WorkOrder) error {
	return s.workOrderRepo.Update(ctx, wo)
}

func (s *workOrderService) DeleteWorkOrder(ctx context.Context, id, orgID int32) error {
	return s.workOrderRepo.Delete(ctx, id, orgID)
}

func (s *workOrderService) ListWorkOrders(ctx context.Context, orgID int32) ([]domain.WorkOrder, error) {
	return s.workOrderRepo.ListByOrg(ctx, orgID)
}
