package postgres

import (
	"database/sql"

	"evrental-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.BookingRepository
	repository.StationRepository
	repository.VehicleRepository
	repository.UserRepository
	repository.InspectionRepository
	repository.DamageReportRepository
	repository.FeeLedgerRepository
	repository.NotificationRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		BookingRepository:      NewBookingRepository(db),
		StationRepository:      NewStationRepository(db),
		VehicleRepository:      NewVehicleRepository(db),
		UserRepository:         NewUserRepository(db),
		InspectionRepository:   NewInspectionRepository(db),
		DamageReportRepository: NewDamageReportRepository(db),
		FeeLedgerRepository:    NewFeeLedgerRepository(db),
		NotificationRepository: NewNotificationRepository(db),
	}
}
