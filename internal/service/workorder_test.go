package service

import (
	"context"
	"testing"

	"fieldwork-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func int32Ptr(v int32) *int32 { return &v }

func TestParseHours(t *testing.T) {
	assert.InDelta(t, 7.5, parseHours("7.5"), 1e-9)
	assert.InDelta(t, 8, parseHours(" 8 "), 1e-9)
	assert.Equal(t, float64(0), parseHours("eight"))
	assert.Equal(t, float64(0), parseHours(""))
}

func TestBuildWorkOrderStats(t *testing.T) {
	orders := []domain.WorkOrder{
		{ID: 1, Name: "Bridge repair"},
		{ID: 2, Name: "New warehouse"},
	}
	ops := []domain.ReportOperation{
		{Operation: domain.Operation{WorkOrderID: int32Ptr(1), Hours: "4"}, ReportDate: "2025-03-10"},
		{Operation: domain.Operation{WorkOrderID: int32Ptr(1), Hours: "3.5"}, ReportDate: "2025-03-12"},
		{Operation: domain.Operation{WorkOrderID: nil, Hours: "2"}, ReportDate: "2025-03-12"},
		{Operation: domain.Operation{WorkOrderID: int32Ptr(77), Hours: "6"}, ReportDate: "2025-03-13"},
	}

	stats := buildWorkOrderStats(orders, ops)

	require.Len(t, stats, 2)
	assert.Equal(t, int32(1), stats[0].WorkOrderID)
	assert.Equal(t, int32(2), stats[0].TotalOperations)
	assert.InDelta(t, 7.5, stats[0].TotalHours, 1e-9)
	require.NotNil(t, stats[0].LastActivity)
	assert.Equal(t, "2025-03-12", *stats[0].LastActivity)

	// No activity still yields an entry, with zero totals.
	assert.Equal(t, int32(2), stats[1].WorkOrderID)
	assert.Equal(t, int32(0), stats[1].TotalOperations)
	assert.Equal(t, float64(0), stats[1].TotalHours)
	assert.Nil(t, stats[1].LastActivity)
}

func TestBuildWorkOrderStatsUnparseableHours(t *testing.T) {
	orders := []domain.WorkOrder{{ID: 1, Name: "Bridge repair"}}
	ops := []domain.ReportOperation{
		{Operation: domain.Operation{WorkOrderID: int32Ptr(1), Hours: "n/a"}, ReportDate: "2025-03-10"},
		{Operation: domain.Operation{WorkOrderID: int32Ptr(1), Hours: "2"}, ReportDate: "2025-03-11"},
	}

	stats := buildWorkOrderStats(orders, ops)

	require.Len(t, stats, 1)
	// The bad row still counts as an operation, just with zero hours.
	assert.Equal(t, int32(2), stats[0].TotalOperations)
	assert.InDelta(t, 2, stats[0].TotalHours, 1e-9)
}

func TestStatsCountsOnlyApprovedWork(t *testing.T) {
	orders := []domain.WorkOrder{{ID: 1, OrgID: 1, Name: "Bridge repair"}}

	workOrderRepo := new(MockWorkOrderRepo)
	reportRepo := new(MockReportRepo)
	svc := NewWorkOrderService(workOrderRepo, reportRepo)
	ctx := context.Background()

	workOrderRepo.On("ListByOrg", mock.Anything, int32(1)).Return(orders, nil)

	// Before approval only two operations qualify.
	reportRepo.On("ListApprovedOperations", mock.Anything, int32(1)).Return([]domain.ReportOperation{
		{Operation: domain.Operation{WorkOrderID: int32Ptr(1), Hours: "5"}, ReportDate: "2025-04-01"},
		{Operation: domain.Operation{WorkOrderID: int32Ptr(1), Hours: "3"}, ReportDate: "2025-04-02"},
	}, nil).Once()

	stats, err := svc.Stats(ctx, 1)
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, int32(2), stats[0].TotalOperations)
	assert.InDelta(t, 8, stats[0].TotalHours, 1e-9)

	// Approving a pending report brings its operation into the rollup.
	reportRepo.On("ListApprovedOperations", mock.Anything, int32(1)).Return([]domain.ReportOperation{
		{Operation: domain.Operation{WorkOrderID: int32Ptr(1), Hours: "5"}, ReportDate: "2025-04-01"},
		{Operation: domain.Operation{WorkOrderID: int32Ptr(1), Hours: "3"}, ReportDate: "2025-04-02"},
		{Operation: domain.Operation{WorkOrderID: int32Ptr(1), Hours: "2"}, ReportDate: "2025-04-03"},
	}, nil).Once()

	stats, err = svc.Stats(ctx, 1)
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, int32(3), stats[0].TotalOperations)
	assert.InDelta(t, 10, stats[0].TotalHours, 1e-9)
	assert.Equal(t, "2025-04-03", *stats[0].LastActivity)
}

func TestBuildWorkOrderDetailMergesSameDayEmployee(t *testing.T) {
	ops := []domain.ReportOperation{
		{
			Operation:  domain.Operation{Hours: "2", WorkTypes: []string{"Cut"}, Materials: []string{"Steel"}, Notes: "morning"},
			ReportDate: "2025-05-01", EmployeeID: 7, EmployeeName: "Ada",
		},
		{
			Operation:  domain.Operation{Hours: "3", WorkTypes: []string{"Cut", "Weld"}, Materials: []string{"Steel", "Wire"}, Notes: "afternoon"},
			ReportDate: "2025-05-01", EmployeeID: 7, EmployeeName: "Ada",
		},
	}

	detail := buildWorkOrderDetail(ops)

	require.Len(t, detail.Rows, 1)
	row := detail.Rows[0]
	assert.InDelta(t, 5, row.Hours, 1e-9)
	assert.Equal(t, []string{"Cut", "Weld"}, row.WorkTypes)
	assert.Equal(t, []string{"Steel", "Wire"}, row.Materials)
	assert.Equal(t, "morning; afternoon", row.Notes)
	assert.Equal(t, int32(1), detail.DayCount)
	assert.Equal(t, int32(1), detail.EmployeeCount)
	assert.InDelta(t, 5, detail.TotalHours, 1e-9)
}

func TestBuildWorkOrderDetailOrdering(t *testing.T) {
	ops := []domain.ReportOperation{
		{Operation: domain.Operation{Hours: "1"}, ReportDate: "2025-05-02", EmployeeID: 2, EmployeeName: "Bo"},
		{Operation: domain.Operation{Hours: "2"}, ReportDate: "2025-05-01", EmployeeID: 1, EmployeeName: "Ada"},
		{Operation: domain.Operation{Hours: "3"}, ReportDate: "2025-05-02", EmployeeID: 1, EmployeeName: "Ada"},
	}

	detail := buildWorkOrderDetail(ops)

	require.Len(t, detail.Rows, 3)
	assert.Equal(t, "2025-05-01", detail.Rows[0].Date)
	// Within a date, employees stay in the order they were first seen.
	assert.Equal(t, "2025-05-02", detail.Rows[1].Date)
	assert.Equal(t, int32(2), detail.Rows[1].EmployeeID)
	assert.Equal(t, int32(1), detail.Rows[2].EmployeeID)
	assert.InDelta(t, 6, detail.TotalHours, 1e-9)
	assert.Equal(t, int32(2), detail.DayCount)
	assert.Equal(t, int32(2), detail.EmployeeCount)
}

func TestBuildWorkOrderDetailDeterministic(t *testing.T) {
	ops := []domain.ReportOperation{
		{Operation: domain.Operation{Hours: "2", WorkTypes: []string{"Dig"}}, ReportDate: "2025-05-01", EmployeeID: 1, EmployeeName: "Ada"},
		{Operation: domain.Operation{Hours: "4", Notes: "rain delay"}, ReportDate: "2025-05-02", EmployeeID: 2, EmployeeName: "Bo"},
		{Operation: domain.Operation{Hours: "1", WorkTypes: []string{"Dig"}}, ReportDate: "2025-05-01", EmployeeID: 1, EmployeeName: "Ada"},
	}

	first := buildWorkOrderDetail(ops)
	second := buildWorkOrderDetail(ops)

	assert.Equal(t, first, second)

	var rowSum float64
	for _, row := range first.Rows {
		rowSum += row.Hours
	}
	assert.InDelta(t, first.TotalHours, rowSum, 1e-9)
}

func TestBuildWorkOrderDetailEmpty(t *testing.T) {
	detail := buildWorkOrderDetail(nil)

	assert.Empty(t, detail.Rows)
	assert.Equal(t, float64(0), detail.TotalHours)
	assert.Equal(t, int32(0), detail.DayCount)
	assert.Equal(t, int32(0), detail.EmployeeCount)
}

func TestDetail(t *testing.T) {
	workOrderRepo := new(MockWorkOrderRepo)
	reportRepo := new(MockReportRepo)
	svc := NewWorkOrderService(workOrderRepo, reportRepo)

	workOrderRepo.On("GetByID", mock.Anything, int32(4), int32(1)).
		Return(&domain.WorkOrder{ID: 4, OrgID: 1, Name: "Pier renovation"}, nil)
	reportRepo.On("ListApprovedOperationsByWorkOrder", mock.Anything, int32(4), int32(1)).
		Return([]domain.ReportOperation{
			{Operation: domain.Operation{WorkOrderID: int32Ptr(4), Hours: "6"}, ReportDate: "2025-06-01", EmployeeID: 3, EmployeeName: "Cy"},
		}, nil)

	detail, err := svc.Detail(context.Background(), 4, 1)
	require.NoError(t, err)
	assert.Equal(t, int32(4), detail.WorkOrderID)
	assert.Equal(t, "Pier renovation", detail.WorkOrderName)
	require.Len(t, detail.Rows, 1)
	assert.InDelta(t, 6, detail.TotalHours, 1e-9)
}

func TestDetailUnknownWorkOrder(t *testing.T) {
	workOrderRepo := new(MockWorkOrderRepo)
	svc := NewWorkOrderService(workOrderRepo, new(MockReportRepo))

	workOrderRepo.On("GetByID", mock.Anything, int32(42), int32(1)).Return(nil, domain.ErrNotFound)

	_, err := svc.Detail(context.Background(), 42, 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
