package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"fieldwork-backend/internal/domain"
	"fieldwork-backend/internal/repository"
)

const dateLayout = "2006-01-02"

type fuelRepository struct {
	db *sql.DB
}

func NewFuelRepository(db *sql.DB) repository.FuelRepository {
	return &fuelRepository{db: db}
}

func (r *fuelRepository) CreateTankLoad(ctx context.Context, load *domain.FuelTankLoad) error {
	query := `INSERT INTO fuel_tank_loads (org_id, load_date, liters, total_cost, supplier, notes)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	return r.db.QueryRowContext(ctx, query, load.OrgID, load.LoadDate, load.Liters, load.TotalCost, load.Supplier, load.Notes).Scan(&load.ID)
}

func (r *fuelRepository) DeleteTankLoad(ctx context.Context, id, orgID int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM fuel_tank_loads WHERE id = $1 AND org_id = $2`, id, orgID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *fuelRepository) ListTankLoads(ctx context.Context, orgID int32) ([]domain.FuelTankLoad, error) {
	query := `SELECT id, org_id, load_date, liters, total_cost, supplier, notes
	          FROM fuel_tank_loads WHERE org_id = $1 ORDER BY load_date DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, query, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var loads []domain.FuelTankLoad
	for rows.Next() {
		var l domain.FuelTankLoad
		var loadDate time.Time
		if err := rows.Scan(&l.ID, &l.OrgID, &loadDate, &l.Liters, &l.TotalCost, &l.Supplier, &l.Notes); err != nil {
			return nil, err
		}
		l.LoadDate = loadDate.Format(dateLayout)
		loads = append(loads, l)
	}
	return loads, rows.Err()
}

func (r *fuelRepository) CreateRefill(ctx context.Context, refill *domain.FuelRefill) error {
	query := `INSERT INTO fuel_refills (org_id, vehicle_id, refill_date, operator_id, liters_before, liters_after, liters_refilled, km, engine_hours, cost, notes)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		refill.OrgID, refill.VehicleID, refill.RefillDate, refill.OperatorID,
		refill.LitersBefore, refill.LitersAfter, refill.LitersRefilled,
		refill.Km, refill.EngineHours, refill.Cost, refill.Notes).Scan(&refill.ID)
}

func (r *fuelRepository) DeleteRefill(ctx context.Context, id, orgID int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM fuel_refills WHERE id = $1 AND org_id = $2`, id, orgID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

const refillColumns = `id, org_id, vehicle_id, refill_date, operator_id, liters_before, liters_after, liters_refilled, km, engine_hours, cost, notes`

func (r *fuelRepository) ListRefills(ctx context.Context, orgID int32) ([]domain.FuelRefill, error) {
	query := `SELECT ` + refillColumns + ` FROM fuel_refills WHERE org_id = $1 ORDER BY refill_date DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, query, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var refills []domain.FuelRefill
	for rows.Next() {
		refill, err := scanRefill(rows.Scan)
		if err != nil {
			return nil, err
		}
		refills = append(refills, *refill)
	}
	return refills, rows.Err()
}

func (r *fuelRepository) LastRefill(ctx context.Context, orgID int32) (*domain.FuelRefill, error) {
	query := `SELECT ` + refillColumns + ` FROM fuel_refills WHERE org_id = $1 ORDER BY refill_date DESC, id DESC LIMIT 1`
	refill, err := scanRefill(r.db.QueryRowContext(ctx, query, orgID).Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return refill, nil
}

func scanRefill(scan func(dest ...any) error) (*domain.FuelRefill, error) {
	var f domain.FuelRefill
	var refillDate time.Time
	err := scan(&f.ID, &f.OrgID, &f.VehicleID, &refillDate, &f.OperatorID,
		&f.LitersBefore, &f.LitersAfter, &f.LitersRefilled,
		&f.Km, &f.EngineHours, &f.Cost, &f.Notes)
	if err != nil {
		return nil, err
	}
	f.RefillDate = refillDate.Format(dateLayout)
	return &f, nil
}
