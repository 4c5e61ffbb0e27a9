package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"evrental-backend/internal/domain"
	"evrental-backend/internal/repository"
)

type bookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO bookings (code, renter_id, vehicle_id, station_id, start_date, end_date, status, deposit_amount_cents, deposit_currency, deposit_provider, deposit_provider_ref, notes, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		b.Code, b.RenterID, b.VehicleID, b.StationID, b.StartDate, b.EndDate, b.Status,
		b.Deposit.AmountCents, b.Deposit.Currency, b.Deposit.Provider, b.Deposit.ProviderRef,
		b.Notes, time.Now(), time.Now()).Scan(&b.ID)
}

func (r *bookingRepository) GetByID(ctx context.Context, id int32) (*domain.Booking, error) {
	b := &domain.Booking{}
	var contractURL sql.NullString
	query := `SELECT id, code, renter_id, vehicle_id, station_id, start_date, end_date, status, deposit_amount_cents, deposit_currency, deposit_provider, deposit_provider_ref, contract_url, notes, created_on, updated_on FROM bookings WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&b.ID, &b.Code, &b.RenterID, &b.VehicleID, &b.StationID, &b.StartDate, &b.EndDate, &b.Status,
		&b.Deposit.AmountCents, &b.Deposit.Currency, &b.Deposit.Provider, &b.Deposit.ProviderRef,
		&contractURL, &b.Notes, &b.CreatedOn, &b.UpdatedOn)
	if err != nil {
		return nil, err
	}
	b.ContractURL = contractURL.String
	return b, nil
}

func (r *bookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	query := `UPDATE bookings SET start_date=$1, end_date=$2, status=$3, notes=$4, updated_on=$5 WHERE id=$6`
	_, err := r.db.ExecContext(ctx, query, b.StartDate, b.EndDate, b.Status, b.Notes, time.Now(), b.ID)
	return err
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id int32, status domain.BookingStatus) error {
	query := `UPDATE bookings SET status=$1, updated_on=$2 WHERE id=$3`
	_, err := r.db.ExecContext(ctx, query, status, time.Now(), id)
	return err
}

func (r *bookingRepository) SetContractURL(ctx context.Context, id int32, url string) error {
	query := `UPDATE bookings SET contract_url=$1, updated_on=$2 WHERE id=$3`
	var arg interface{}
	if url != "" {
		arg = url
	}
	_, err := r.db.ExecContext(ctx, query, arg, time.Now(), id)
	return err
}

func (r *bookingRepository) ListByStation(ctx context.Context, stationID int32, status string, page, pageSize int32) ([]domain.Booking, int32, error) {
	return r.list(ctx, "station_id", stationID, status, page, pageSize)
}

func (r *bookingRepository) ListByRenter(ctx context.Context, renterID int32, status string, page, pageSize int32) ([]domain.Booking, int32, error) {
	return r.list(ctx, "renter_id", renterID, status, page, pageSize)
}

func (r *bookingRepository) list(ctx context.Context, column string, id int32, status string, page, pageSize int32) ([]domain.Booking, int32, error) {
	offset := (page - 1) * pageSize
	query := fmt.Sprintf(`SELECT id, code, renter_id, vehicle_id, station_id, start_date, end_date, status, deposit_amount_cents, deposit_currency, deposit_provider, deposit_provider_ref, contract_url, notes, created_on, updated_on
	        FROM bookings WHERE %s = $1`, column)

	args := []interface{}{id}
	argIdx := 2
	if status != "" {
		query += " AND status = $2"
		args = append(args, status)
		argIdx++
	}

	var count int32
	countQuery := "SELECT count(*) FROM (" + query + ") as sub"
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	query += fmt.Sprintf(" ORDER BY created_on DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		var b domain.Booking
		var contractURL sql.NullString
		if err := rows.Scan(&b.ID, &b.Code, &b.RenterID, &b.VehicleID, &b.StationID, &b.StartDate, &b.EndDate, &b.Status,
			&b.Deposit.AmountCents, &b.Deposit.Currency, &b.Deposit.Provider, &b.Deposit.ProviderRef,
			&contractURL, &b.Notes, &b.CreatedOn, &b.UpdatedOn); err != nil {
			return nil, 0, err
		}
		b.ContractURL = contractURL.String
		bookings = append(bookings, b)
	}
	return bookings, count, rows.Err()
}
