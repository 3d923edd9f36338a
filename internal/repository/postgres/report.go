package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"fieldwork-backend/internal/domain"
	"fieldwork-backend/internal/repository"

	"github.com/lib/pq"
)

type reportRepository struct {
	db *sql.DB
}

func NewReportRepository(db *sql.DB) repository.ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) CreateReport(ctx context.Context, report *domain.DailyReport) error {
	query := `INSERT INTO daily_reports (org_id, employee_id, report_date, status)
	          VALUES ($1, $2, $3, $4) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, report.OrgID, report.EmployeeID, report.Date, report.Status).Scan(&report.ID)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" { // unique_violation on (org, employee, date)
		return domain.ErrDuplicate
	}
	return err
}

func (r *reportRepository) GetReport(ctx context.Context, id, orgID int32) (*domain.DailyReport, error) {
	query := `SELECT id, org_id, employee_id, report_date, status
	          FROM daily_reports WHERE id = $1 AND org_id = $2`
	var rep domain.DailyReport
	var date time.Time
	err := r.db.QueryRowContext(ctx, query, id, orgID).Scan(&rep.ID, &rep.OrgID, &rep.EmployeeID, &date, &rep.Status)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	rep.Date = date.Format(dateLayout)
	return &rep, nil
}

func (r *reportRepository) ListReports(ctx context.Context, orgID int32, employeeID int32, status string) ([]domain.DailyReport, error) {
	query := `SELECT id, org_id, employee_id, report_date, status
	          FROM daily_reports
	          WHERE org_id = $1
	            AND ($2 = 0 OR employee_id = $2)
	            AND ($3 = '' OR status = $3)
	          ORDER BY report_date DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, query, orgID, employeeID, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []domain.DailyReport
	for rows.Next() {
		var rep domain.DailyReport
		var date time.Time
		if err := rows.Scan(&rep.ID, &rep.OrgID, &rep.EmployeeID, &date, &rep.Status); err != nil {
			return nil, err
		}
		rep.Date = date.Format(dateLayout)
		reports = append(reports, rep)
	}
	return reports, rows.Err()
}

func (r *reportRepository) UpdateStatus(ctx context.Context, id, orgID int32, status domain.ReportStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE daily_reports SET status = $1 WHERE id = $2 AND org_id = $3`, status, id, orgID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *reportRepository) DeleteReport(ctx context.Context, id, orgID int32) error {
	// Children first. Each statement stands alone, consistent with the
	// single-statement write model.
	if _, err := r.db.ExecContext(ctx, `DELETE FROM operations WHERE report_id = $1`, id); err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM hours_adjustments WHERE report_id = $1`, id); err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM daily_reports WHERE id = $1 AND org_id = $2`, id, orgID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *reportRepository) ExistsForEmployeeOnDate(ctx context.Context, orgID, employeeID int32, date string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM daily_reports WHERE org_id = $1 AND employee_id = $2 AND report_date = $3)`
	err := r.db.QueryRowContext(ctx, query, orgID, employeeID, date).Scan(&exists)
	return exists, err
}

func (r *reportRepository) CreateOperation(ctx context.Context, op *domain.Operation) error {
	query := `INSERT INTO operations (report_id, client_id, work_order_id, work_types, materials, hours, notes, photos)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	return r.db.QueryRowContext(ctx, query, op.ReportID, op.ClientID, op.WorkOrderID,
		pq.Array(op.WorkTypes), pq.Array(op.Materials), op.Hours, op.Notes, pq.Array(op.Photos)).Scan(&op.ID)
}

func (r *reportRepository) UpdateOperation(ctx context.Context, op *domain.Operation) error {
	query := `UPDATE operations SET client_id = $1, work_order_id = $2, work_types = $3, materials = $4, hours = $5, notes = $6, photos = $7
	          WHERE id = $8 AND report_id = $9`
	res, err := r.db.ExecContext(ctx, query, op.ClientID, op.WorkOrderID,
		pq.Array(op.WorkTypes), pq.Array(op.Materials), op.Hours, op.Notes, pq.Array(op.Photos), op.ID, op.ReportID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *reportRepository) DeleteOperation(ctx context.Context, id, reportID int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM operations WHERE id = $1 AND report_id = $2`, id, reportID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *reportRepository) ListOperationsByReport(ctx context.Context, reportID int32) ([]domain.Operation, error) {
	query := `SELECT id, report_id, client_id, work_order_id, work_types, materials, hours, COALESCE(notes, ''), photos
	          FROM operations WHERE report_id = $1 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, reportID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ops []domain.Operation
	for rows.Next() {
		var op domain.Operation
		if err := rows.Scan(&op.ID, &op.ReportID, &op.ClientID, &op.WorkOrderID,
			pq.Array(&op.WorkTypes), pq.Array(&op.Materials), &op.Hours, &op.Notes, pq.Array(&op.Photos)); err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return ops, rows.Err()
}

const approvedOperationQuery = `
	SELECT o.id, o.report_id, o.client_id, o.work_order_id, o.work_types, o.materials,
	       o.hours, COALESCE(o.notes, ''), o.photos,
	       d.report_date, d.status, d.employee_id, u.name AS employee_name
	FROM operations o
	JOIN daily_reports d ON o.report_id = d.id
	JOIN users u ON d.employee_id = u.id
	WHERE d.org_id = $1 AND d.status = 'APPROVED'`

func (r *reportRepository) ListApprovedOperations(ctx context.Context, orgID int32) ([]domain.ReportOperation, error) {
	rows, err := r.db.QueryContext(ctx, approvedOperationQuery+` ORDER BY d.report_date, o.id`, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectReportOperations(rows)
}

func (r *reportRepository) ListApprovedOperationsByWorkOrder(ctx context.Context, workOrderID, orgID int32) ([]domain.ReportOperation, error) {
	rows, err := r.db.QueryContext(ctx, approvedOperationQuery+` AND o.work_order_id = $2 ORDER BY d.report_date, o.id`, orgID, workOrderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectReportOperations(rows)
}

func collectReportOperations(rows *sql.Rows) ([]domain.ReportOperation, error) {
	var ops []domain.ReportOperation
	for rows.Next() {
		var op domain.ReportOperation
		var date time.Time
		if err := rows.Scan(&op.ID, &op.ReportID, &op.ClientID, &op.WorkOrderID,
			pq.Array(&op.WorkTypes), pq.Array(&op.Materials), &op.Hours, &op.Notes, pq.Array(&op.Photos),
			&date, &op.ReportStatus, &op.EmployeeID, &op.EmployeeName); err != nil {
			return nil, err
		}
		op.ReportDate = date.Format(dateLayout)
		ops = append(ops, op)
	}
	return ops, rows.Err()
}

func (r *reportRepository) UpsertAdjustment(ctx context.Context, adj *domain.HoursAdjustment) error {
	query := `INSERT INTO hours_adjustments (report_id, adjustment, reason, created_by)
	          VALUES ($1, $2, $3, $4)
	          ON CONFLICT (report_id) DO UPDATE SET adjustment = $2, reason = $3, created_by = $4
	          RETURNING id`
	return r.db.QueryRowContext(ctx, query, adj.ReportID, adj.Adjustment, adj.Reason, adj.CreatedBy).Scan(&adj.ID)
}

func (r *reportRepository) GetAdjustment(ctx context.Context, reportID int32) (*domain.HoursAdjustment, error) {
	query := `SELECT id, report_id, adjustment, reason, created_by FROM hours_adjustments WHERE report_id = $1`
	var adj domain.HoursAdjustment
	err := r.db.QueryRowContext(ctx, query, reportID).Scan(&adj.ID, &adj.ReportID, &adj.Adjustment, &adj.Reason, &adj.CreatedBy)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &adj, nil
}
