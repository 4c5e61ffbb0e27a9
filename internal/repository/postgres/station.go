package postgres

import (
	"context"
	"database/sql"
	"time"

	"evrental-backend/internal/domain"
	"evrental-backend/internal/repository"
)

type stationRepository struct {
	db *sql.DB
}

func NewStationRepository(db *sql.DB) repository.StationRepository {
	return &stationRepository{db: db}
}

func (r *stationRepository) Create(ctx context.Context, s *domain.Station) error {
	query := `INSERT INTO stations (name, address, latitude, longitude, status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	return r.db.QueryRowContext(ctx, query, s.Name, s.Address, s.Latitude, s.Longitude, s.Status, time.Now(), time.Now()).Scan(&s.ID)
}

func (r *stationRepository) GetByID(ctx context.Context, id int32) (*domain.Station, error) {
	s := &domain.Station{}
	query := `SELECT id, name, address, latitude, longitude, status, created_on, updated_on FROM stations WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&s.ID, &s.Name, &s.Address, &s.Latitude, &s.Longitude, &s.Status, &s.CreatedOn, &s.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *stationRepository) Update(ctx context.Context, s *domain.Station) error {
	query := `UPDATE stations SET name=$1, address=$2, latitude=$3, longitude=$4, status=$5, updated_on=$6 WHERE id=$7`
	_, err := r.db.ExecContext(ctx, query, s.Name, s.Address, s.Latitude, s.Longitude, s.Status, time.Now(), s.ID)
	return err
}

func (r *stationRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM stations WHERE id = $1`, id)
	return err
}

func (r *stationRepository) List(ctx context.Context) ([]domain.Station, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, address, latitude, longitude, status, created_on, updated_on FROM stations ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stations []domain.Station
	for rows.Next() {
		var s domain.Station
		if err := rows.Scan(&s.ID, &s.Name, &s.Address, &s.Latitude, &s.Longitude, &s.Status, &s.CreatedOn, &s.UpdatedOn); err != nil {
			return nil, err
		}
		stations = append(stations, s)
	}
	return stations, rows.Err()
}
