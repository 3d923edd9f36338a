package domain

type ReportStatus string

const (
	ReportStatusPending  ReportStatus = "PENDING"
	ReportStatusApproved ReportStatus = "APPROVED"
)

// DailyReport is one employee's work day. There is at most one report per
// (org, employee, date); approving it is what makes its operations count
// toward work-order statistics.
type DailyReport struct {
	ID         int32        `json:"id"`
	OrgID      int32        `json:"org_id"`
	EmployeeID int32        `json:"employee_id"`
	Date       string       `json:"date"` // YYYY-MM-DD, compared lexicographically
	Status     ReportStatus `json:"status"`
}

const MaxOperationPhotos = 5

// Operation is one logged unit of work inside a daily report. Hours is kept
// as the raw submitted string; aggregation parses it defensively and treats
// anything unparseable as zero.
type Operation struct {
	ID          int32    `json:"id"`
	ReportID    int32    `json:"report_id"`
	ClientID    int32    `json:"client_id"`
	WorkOrderID *int32   `json:"work_order_id,omitempty"`
	WorkTypes   []string `json:"work_types"`
	Materials   []string `json:"materials"`
	Hours       string   `json:"hours"`
	Notes       string   `json:"notes,omitempty"`
	Photos      []string `json:"photos,omitempty"`
}

// HoursAdjustment is a signed correction applied on top of the summed
// operation hours when rendering a single report's total. It never feeds
// work-order rollups.
type HoursAdjustment struct {
	ID         int32   `json:"id"`
	ReportID   int32   `json:"report_id"`
	Adjustment float64 `json:"adjustment"`
	Reason     *string `json:"reason,omitempty"`
	CreatedBy  int32   `json:"created_by"`
}

// ReportOperation is the flattened join row the aggregation engine consumes:
// an operation together with its owning report's date/status and the
// employee it belongs to.
type ReportOperation struct {
	Operation
	ReportDate   string       `json:"report_date"`
	ReportStatus ReportStatus `json:"report_status"`
	EmployeeID   int32        `json:"employee_id"`
	EmployeeName string       `json:"employee_name"`
}
