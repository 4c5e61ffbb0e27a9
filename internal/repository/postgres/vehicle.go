package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"evrental-backend/internal/domain"
	"evrental-backend/internal/repository"
)

type vehicleRepository struct {
	db *sql.DB
}

func NewVehicleRepository(db *sql.DB) repository.VehicleRepository {
	return &vehicleRepository{db: db}
}

func (r *vehicleRepository) Create(ctx context.Context, v *domain.Vehicle) error {
	query := `INSERT INTO vehicles (station_id, model, license_plate, battery_capacity, price_per_day_cents, deposit_cents, late_fee_per_day_cents, status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	return r.db.QueryRowContext(ctx, query, v.StationID, v.Model, v.LicensePlate, v.BatteryCapacity, v.PricePerDayCents, v.DepositCents, v.LateFeePerDayCents, v.Status, time.Now(), time.Now()).Scan(&v.ID)
}

func (r *vehicleRepository) GetByID(ctx context.Context, id int32) (*domain.Vehicle, error) {
	v := &domain.Vehicle{}
	query := `SELECT id, station_id, model, license_plate, battery_capacity, price_per_day_cents, deposit_cents, late_fee_per_day_cents, status, created_on, updated_on FROM vehicles WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&v.ID, &v.StationID, &v.Model, &v.LicensePlate, &v.BatteryCapacity, &v.PricePerDayCents, &v.DepositCents, &v.LateFeePerDayCents, &v.Status, &v.CreatedOn, &v.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (r *vehicleRepository) Update(ctx context.Context, v *domain.Vehicle) error {
	query := `UPDATE vehicles SET station_id=$1, model=$2, license_plate=$3, battery_capacity=$4, price_per_day_cents=$5, deposit_cents=$6, late_fee_per_day_cents=$7, status=$8, updated_on=$9 WHERE id=$10`
	_, err := r.db.ExecContext(ctx, query, v.StationID, v.Model, v.LicensePlate, v.BatteryCapacity, v.PricePerDayCents, v.DepositCents, v.LateFeePerDayCents, v.Status, time.Now(), v.ID)
	return err
}

func (r *vehicleRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM vehicles WHERE id = $1`, id)
	return err
}

func (r *vehicleRepository) ListByStation(ctx context.Context, stationID int32, status string, page, pageSize int32) ([]domain.Vehicle, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT id, station_id, model, license_plate, battery_capacity, price_per_day_cents, deposit_cents, late_fee_per_day_cents, status, created_on, updated_on
	        FROM vehicles WHERE station_id = $1`

	args := []interface{}{stationID}
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

	query += fmt.Sprintf(" ORDER BY model LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var vehicles []domain.Vehicle
	for rows.Next() {
		var v domain.Vehicle
		if err := rows.Scan(&v.ID, &v.StationID, &v.Model, &v.LicensePlate, &v.BatteryCapacity, &v.PricePerDayCents, &v.DepositCents, &v.LateFeePerDayCents, &v.Status, &v.CreatedOn, &v.UpdatedOn); err != nil {
			return nil, 0, err
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, count, rows.Err()
}
