package postgres

import (
	"context"
	"database/sql"
	"time"

	"evrental-backend/internal/domain"
	"evrental-backend/internal/repository"
)

type feeLedgerRepository struct {
	db *sql.DB
}

func NewFeeLedgerRepository(db *sql.DB) repository.FeeLedgerRepository {
	return &feeLedgerRepository{db: db}
}

func (r *feeLedgerRepository) Create(ctx context.Context, e *domain.FeeEntry) error {
	query := `INSERT INTO fee_entries (booking_id, type, amount_cents, description, proof_url, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	return r.db.QueryRowContext(ctx, query, e.BookingID, e.Type, e.AmountCents, e.Description, e.ProofURL, time.Now()).Scan(&e.ID)
}

// SumCharges totals the fee entries that count against the deposit at
// settlement time (late fees and damage costs, not the settlement
// entries themselves).
func (r *feeLedgerRepository) SumCharges(ctx context.Context, bookingID int32) (int64, error) {
	var total int64
	query := `SELECT COALESCE(SUM(amount_cents), 0) FROM fee_entries WHERE booking_id = $1 AND type IN ($2, $3)`
	err := r.db.QueryRowContext(ctx, query, bookingID, domain.FeeTypeLate, domain.FeeTypeDamage).Scan(&total)
	return total, err
}

func (r *feeLedgerRepository) ListByBooking(ctx context.Context, bookingID int32) ([]domain.FeeEntry, error) {
	query := `SELECT id, booking_id, type, amount_cents, description, proof_url, created_on FROM fee_entries WHERE booking_id = $1 ORDER BY created_on`
	rows, err := r.db.QueryContext(ctx, query, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.FeeEntry
	for rows.Next() {
		var e domain.FeeEntry
		if err := rows.Scan(&e.ID, &e.BookingID, &e.Type, &e.AmountCents, &e.Description, &e.ProofURL, &e.CreatedOn); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
