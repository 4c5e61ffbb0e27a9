package repository

import (
	"context"

	"evrental-backend/internal/domain"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id int32) (*domain.Booking, error)
	Update(ctx context.Context, booking *domain.Booking) error
	UpdateStatus(ctx context.Context, id int32, status domain.BookingStatus) error
	SetContractURL(ctx context.Context, id int32, url string) error
	ListByStation(ctx context.Context, stationID int32, status string, page, pageSize int32) ([]domain.Booking, int32, error)
	ListByRenter(ctx context.Context, renterID int32, status string, page, pageSize int32) ([]domain.Booking, int32, error)
}

type StationRepository interface {
	Create(ctx context.Context, station *domain.Station) error
	GetByID(ctx context.Context, id int32) (*domain.Station, error)
	Update(ctx context.Context, station *domain.Station) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context) ([]domain.Station, error)
}

type VehicleRepository interface {
	Create(ctx context.Context, vehicle *domain.Vehicle) error
	GetByID(ctx context.Context, id int32) (*domain.Vehicle, error)
	Update(ctx context.Context, vehicle *domain.Vehicle) error
	Delete(ctx context.Context, id int32) error
	ListByStation(ctx context.Context, stationID int32, status string, page, pageSize int32) ([]domain.Vehicle, int32, error)
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	UpdateKYC(ctx context.Context, id int32, status domain.KYCStatus) error
	List(ctx context.Context, role string, page, pageSize int32) ([]domain.User, int32, error)
}

type InspectionRepository interface {
	Create(ctx context.Context, inspection *domain.Inspection) error
	GetByBooking(ctx context.Context, bookingID int32, kind domain.InspectionKind) (*domain.Inspection, error)
	ListByBooking(ctx context.Context, bookingID int32) ([]domain.Inspection, error)
}

type DamageReportRepository interface {
	Create(ctx context.Context, report *domain.DamageReport) error
	ListByBooking(ctx context.Context, bookingID int32) ([]domain.DamageReport, error)
}

type FeeLedgerRepository interface {
	Create(ctx context.Context, entry *domain.FeeEntry) error
	SumCharges(ctx context.Context, bookingID int32) (int64, error)
	ListByBooking(ctx context.Context, bookingID int32) ([]domain.FeeEntry, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, note *domain.Notification) error
	List(ctx context.Context, userID int32, limit, offset int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, id, userID int32) error
}
