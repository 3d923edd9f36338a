package postgres

import (
	"context"
	"database/sql"
	"errors"

	"fieldwork-backend/internal/domain"
	"fieldwork-backend/internal/repository"

	"github.com/lib/pq"
)

type workOrderRepository struct {
	db *sql.DB
}

func NewWorkOrderRepository(db *sql.DB) repository.WorkOrderRepository {
	return &workOrderRepository{db: db}
}

func (r *workOrderRepository) Create(ctx context.Context, wo *domain.WorkOrder) error {
	query := `INSERT INTO work_orders (org_id, client_id, name, active, allowed_work_types, allowed_materials)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	return r.db.QueryRowContext(ctx, query, wo.OrgID, wo.ClientID, wo.Name, wo.Active,
		pq.Array(wo.AllowedWorkTypes), pq.Array(wo.AllowedMaterials)).Scan(&wo.ID)
}

func (r *workOrderRepository) GetByID(ctx context.Context, id, orgID int32) (*domain.WorkOrder, error) {
	query := `SELECT id, org_id, client_id, name, active, allowed_work_types, allowed_materials
	          FROM work_orders WHERE id = $1 AND org_id = $2`
	var wo domain.WorkOrder
	err := r.db.QueryRowContext(ctx, query, id, orgID).Scan(&wo.ID, &wo.OrgID, &wo.ClientID, &wo.Name, &wo.Active,
		pq.Array(&wo.AllowedWorkTypes), pq.Array(&wo.AllowedMaterials))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &wo, nil
}

func (r *workOrderRepository) Update(ctx context.Context, wo *domain.WorkOrder) error {
	query := `UPDATE work_orders SET client_id = $1, name = $2, active = $3, allowed_work_types = $4, allowed_materials = $5
	          WHERE id = $6 AND org_id = $7`
	res, err := r.db.ExecContext(ctx, query, wo.ClientID, wo.Name, wo.Active,
		pq.Array(wo.AllowedWorkTypes), pq.Array(wo.AllowedMaterials), wo.ID, wo.OrgID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *workOrderRepository) Delete(ctx context.Context, id, orgID int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM work_orders WHERE id = $1 AND org_id = $2`, id, orgID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *workOrderRepository) ListByOrg(ctx context.Context, orgID int32) ([]domain.WorkOrder, error) {
	query := `SELECT id, org_id, client_id, name, active, allowed_work_types, allowed_materials
	          FROM work_orders WHERE org_id = $1 ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.WorkOrder
	for rows.Next() {
		var wo domain.WorkOrder
		if err := rows.Scan(&wo.ID, &wo.OrgID, &wo.ClientID, &wo.Name, &wo.Active,
			pq.Array(&wo.AllowedWorkTypes), pq.Array(&wo.AllowedMaterials)); err != nil {
			return nil, err
		}
		orders = append(orders, wo)
	}
	return orders, rows.Err()
}
