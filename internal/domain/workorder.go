package domain

// WorkOrder (commessa) is a client project against which employee time and
// materials are logged. The allowed-name lists drive form validation only;
// the aggregation engine never reads them.
type WorkOrder struct {
	ID               int32    `json:"id"`
	OrgID            int32    `json:"org_id"`
	ClientID         int32    `json:"client_id"`
	Name             string   `json:"name"`
	Active           bool     `json:"active"`
	AllowedWorkTypes []string `json:"allowed_work_types"`
	AllowedMaterials []string `json:"allowed_materials"`
}

// WorkOrderStat is the per-commessa rollup over approved operations. Work
// orders with no qualifying activity still appear, with zero totals and a
// nil LastActivity.
type WorkOrderStat struct {
	WorkOrderID     int32   `json:"work_order_id"`
	WorkOrderName   string  `json:"work_order_name"`
	TotalOperations int32   `json:"total_operations"`
	TotalHours      float64 `json:"total_hours"`
	LastActivity    *string `json:"last_activity"`
}

// WorkOrderDetailRow is one merged (date, employee) row of the per-commessa
// report: all of that employee's operations on that date folded together.
type WorkOrderDetailRow struct {
	Date         string   `json:"date"`
	EmployeeID   int32    `json:"employee_id"`
	EmployeeName string   `json:"employee_name"`
	Hours        float64  `json:"hours"`
	WorkTypes    []string `json:"work_types"`
	Materials    []string `json:"materials"`
	Notes        string   `json:"notes"`
}

// WorkOrderDetail is the full per-commessa report view.
type WorkOrderDetail struct {
	WorkOrderID   int32                `json:"work_order_id"`
	WorkOrderName string               `json:"work_order_name"`
	Rows          []WorkOrderDetailRow `json:"rows"`
	TotalHours    float64              `json:"total_hours"`
	DayCount      int32                `json:"day_count"`
	EmployeeCount int32                `json:"employee_count"`
}
