package postgres

import (
	"context"
	"database/sql"
	"time"

	"evrental-backend/internal/domain"
	"evrental-backend/internal/repository"

	"github.com/lib/pq"
)

type damageReportRepository struct {
	db *sql.DB
}

func NewDamageReportRepository(db *sql.DB) repository.DamageReportRepository {
	return &damageReportRepository{db: db}
}

func (r *damageReportRepository) Create(ctx context.Context, rep *domain.DamageReport) error {
	query := `INSERT INTO damage_reports (booking_id, description, estimated_cost_cents, photo_urls, reported_by, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	return r.db.QueryRowContext(ctx, query, rep.BookingID, rep.Description, rep.EstimatedCostCents, pq.Array(rep.PhotoURLs), rep.ReportedBy, time.Now()).Scan(&rep.ID)
}

func (r *damageReportRepository) ListByBooking(ctx context.Context, bookingID int32) ([]domain.DamageReport, error) {
	query := `SELECT id, booking_id, description, estimated_cost_cents, photo_urls, reported_by, created_on FROM damage_reports WHERE booking_id = $1 ORDER BY created_on`
	rows, err := r.db.QueryContext(ctx, query, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []domain.DamageReport
	for rows.Next() {
		var rep domain.DamageReport
		if err := rows.Scan(&rep.ID, &rep.BookingID, &rep.Description, &rep.EstimatedCostCents, pq.Array(&rep.PhotoURLs), &rep.ReportedBy, &rep.CreatedOn); err != nil {
			return nil, err
		}
		reports = append(reports, rep)
	}
	return reports, rows.Err()
}
