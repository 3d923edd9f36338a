package postgres

import (
	"context"
	"database/sql"
	"errors"

	"fieldwork-backend/internal/domain"
	"fieldwork-backend/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (org_id, name, email, role, password_hash, active)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	return r.db.QueryRowContext(ctx, query, user.OrgID, user.Name, user.Email, user.Role, user.PasswordHash, user.Active).Scan(&user.ID)
}

func (r *userRepository) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	query := `SELECT id, org_id, name, email, role, password_hash, device_token, active
	          FROM users WHERE id = $1`
	return r.scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT id, org_id, name, email, role, password_hash, device_token, active
	          FROM users WHERE email = $1`
	return r.scanUser(r.db.QueryRowContext(ctx, query, email))
}

func (r *userRepository) scanUser(row *sql.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.OrgID, &u.Name, &u.Email, &u.Role, &u.PasswordHash, &u.DeviceToken, &u.Active)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) UpdateDeviceToken(ctx context.Context, id int32, token string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE users SET device_token = $1 WHERE id = $2`, token, id)
	return err
}

func (r *userRepository) ListActiveByOrg(ctx context.Context, orgID int32) ([]domain.User, error) {
	query := `SELECT id, org_id, name, email, role, password_hash, device_token, active
	          FROM users WHERE org_id = $1 AND active ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.OrgID, &u.Name, &u.Email, &u.Role, &u.PasswordHash, &u.DeviceToken, &u.Active); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
