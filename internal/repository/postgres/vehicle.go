package postgres

import (
	"context"
	"database/sql"
	"errors"

	"fieldwork-backend/internal/domain"
	"fieldwork-backend/internal/repository"
)

type vehicleRepository struct {
	db *sql.DB
}

func NewVehicleRepository(db *sql.DB) repository.VehicleRepository {
	return &vehicleRepository{db: db}
}

func (r *vehicleRepository) Create(ctx context.Context, v *domain.Vehicle) error {
	query := `INSERT INTO vehicles (org_id, name, plate, fuel_type, active)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	return r.db.QueryRowContext(ctx, query, v.OrgID, v.Name, v.Plate, v.Fuel, v.Active).Scan(&v.ID)
}

func (r *vehicleRepository) GetByID(ctx context.Context, id, orgID int32) (*domain.Vehicle, error) {
	query := `SELECT id, org_id, name, COALESCE(plate, ''), fuel_type, active
	          FROM vehicles WHERE id = $1 AND org_id = $2`
	var v domain.Vehicle
	err := r.db.QueryRowContext(ctx, query, id, orgID).Scan(&v.ID, &v.OrgID, &v.Name, &v.Plate, &v.Fuel, &v.Active)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *vehicleRepository) Update(ctx context.Context, v *domain.Vehicle) error {
	query := `UPDATE vehicles SET name = $1, plate = $2, fuel_type = $3, active = $4
	          WHERE id = $5 AND org_id = $6`
	res, err := r.db.ExecContext(ctx, query, v.Name, v.Plate, v.Fuel, v.Active, v.ID, v.OrgID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *vehicleRepository) Delete(ctx context.Context, id, orgID int32) error {
	// Refills go first; the pair is not wrapped in a transaction, matching the
	// single-statement write model of the rest of the store.
	if _, err := r.db.ExecContext(ctx, `DELETE FROM fuel_refills WHERE vehicle_id = $1 AND org_id = $2`, id, orgID); err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM vehicles WHERE id = $1 AND org_id = $2`, id, orgID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *vehicleRepository) ListByOrg(ctx context.Context, orgID int32) ([]domain.Vehicle, error) {
	query := `SELECT id, org_id, name, COALESCE(plate, ''), fuel_type, active
	          FROM vehicles WHERE org_id = $1 ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vehicles []domain.Vehicle
	for rows.Next() {
		var v domain.Vehicle
		if err := rows.Scan(&v.ID, &v.OrgID, &v.Name, &v.Plate, &v.Fuel, &v.Active); err != nil {
			return nil, err
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, rows.Err()
}

// requireRow maps "zero rows affected" to ErrNotFound so handlers can answer 404.
func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
