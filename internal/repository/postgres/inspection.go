package postgres

import (
	"context"
	"database/sql"
	"time"

	"evrental-backend/internal/domain"
	"evrental-backend/internal/repository"

	"github.com/lib/pq"
)

type inspectionRepository struct {
	db *sql.DB
}

func NewInspectionRepository(db *sql.DB) repository.InspectionRepository {
	return &inspectionRepository{db: db}
}

func (r *inspectionRepository) Create(ctx context.Context, ins *domain.Inspection) error {
	query := `INSERT INTO inspections (booking_id, kind, battery_level, mileage, photo_urls, inspected_by, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	return r.db.QueryRowContext(ctx, query, ins.BookingID, ins.Kind, ins.BatteryLevel, ins.Mileage, pq.Array(ins.PhotoURLs), ins.InspectedBy, time.Now()).Scan(&ins.ID)
}

func (r *inspectionRepository) GetByBooking(ctx context.Context, bookingID int32, kind domain.InspectionKind) (*domain.Inspection, error) {
	ins := &domain.Inspection{}
	query := `SELECT id, booking_id, kind, battery_level, mileage, photo_urls, inspected_by, created_on FROM inspections WHERE booking_id = $1 AND kind = $2`
	err := r.db.QueryRowContext(ctx, query, bookingID, kind).Scan(
		&ins.ID, &ins.BookingID, &ins.Kind, &ins.BatteryLevel, &ins.Mileage, pq.Array(&ins.PhotoURLs), &ins.InspectedBy, &ins.CreatedOn)
	if err != nil {
		return nil, err
	}
	return ins, nil
}

func (r *inspectionRepository) ListByBooking(ctx context.Context, bookingID int32) ([]domain.Inspection, error) {
	query := `SELECT id, booking_id, kind, battery_level, mileage, photo_urls, inspected_by, created_on FROM inspections WHERE booking_id = $1 ORDER BY created_on`
	rows, err := r.db.QueryContext(ctx, query, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var inspections []domain.Inspection
	for rows.Next() {
		var ins domain.Inspection
		if err := rows.Scan(&ins.ID, &ins.BookingID, &ins.Kind, &ins.BatteryLevel, &ins.Mileage, pq.Array(&ins.PhotoURLs), &ins.InspectedBy, &ins.CreatedOn); err != nil {
			return nil, err
		}
		inspections = append(inspections, ins)
	}
	return inspections, rows.Err()
}
