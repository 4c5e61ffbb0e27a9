package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"evrental-backend/internal/domain"
	"evrental-backend/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (name, email, phone, password_hash, role, kyc_status, station_id, is_blocked, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	return r.db.QueryRowContext(ctx, query, u.Name, u.Email, u.Phone, u.PasswordHash, u.Role, u.KYC, u.StationID, u.IsBlocked, time.Now(), time.Now()).Scan(&u.ID)
}

func (r *userRepository) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	return r.getBy(ctx, "id = $1", id)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getBy(ctx, "email = $1", email)
}

func (r *userRepository) getBy(ctx context.Context, where string, arg interface{}) (*domain.User, error) {
	u := &domain.User{}
	query := `SELECT id, name, email, phone, password_hash, role, kyc_status, station_id, is_blocked, created_on, updated_on FROM users WHERE ` + where
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.PasswordHash, &u.Role, &u.KYC, &u.StationID, &u.IsBlocked, &u.CreatedOn, &u.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *userRepository) Update(ctx context.Context, u *domain.User) error {
	query := `UPDATE users SET name=$1, email=$2, phone=$3, role=$4, station_id=$5, is_blocked=$6, updated_on=$7 WHERE id=$8`
	_, err := r.db.ExecContext(ctx, query, u.Name, u.Email, u.Phone, u.Role, u.StationID, u.IsBlocked, time.Now(), u.ID)
	return err
}

func (r *userRepository) UpdateKYC(ctx context.Context, id int32, status domain.KYCStatus) error {
	_, err := r.db.ExecContext(ctx, `UPDATE users SET kyc_status=$1, updated_on=$2 WHERE id=$3`, status, time.Now(), id)
	return err
}

func (r *userRepository) List(ctx context.Context, role string, page, pageSize int32) ([]domain.User, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT id, name, email, phone, password_hash, role, kyc_status, station_id, is_blocked, created_on, updated_on FROM users`

	var args []interface{}
	argIdx := 1
	if role != "" {
		query += " WHERE role = $1"
		args = append(args, role)
		argIdx++
	}

	var count int32
	countQuery := "SELECT count(*) FROM (" + query + ") as sub"
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	query += fmt.Sprintf(" ORDER BY name LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.PasswordHash, &u.Role, &u.KYC, &u.StationID, &u.IsBlocked, &u.CreatedOn, &u.UpdatedOn); err != nil {
			return nil, 0, err
		}
		users = append(users, u)
	}
	return users, count, rows.Err()
}
