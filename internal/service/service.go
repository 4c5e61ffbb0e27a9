package service

import (
	"context"

	"evrental-backend/internal/domain"
	"evrental-backend/internal/storage"
)

// PreRentalInput is the condition log captured at vehicle handover.
type PreRentalInput struct {
	BatteryLevel int32
	Mileage      int32
	DamagePhotos []storage.FileUpload
	InspectedBy  int32
}

// PostRentalInput is the condition log captured when the vehicle comes back.
type PostRentalInput struct {
	BatteryLevel    int32
	Mileage         int32
	DashboardPhotos []storage.FileUpload
	InspectedBy     int32
}

// DamageReportInput describes damage found during the return inspection.
type DamageReportInput struct {
	Description        string
	EstimatedCostCents int64
	Photos             []storage.FileUpload
	ReportedBy         int32
}

// RefundInput carries the optional proof and note for a deposit refund.
type RefundInput struct {
	ProofImage *storage.FileUpload
	Notes      string
}

// AdditionalPaymentInput carries the mandatory fields for collecting a
// payment on top of the deposit.
type AdditionalPaymentInput struct {
	AmountCents int64
	ProofImage  *storage.FileUpload
}

type BookingService interface {
	CreateBooking(ctx context.Context, booking *domain.Booking) error
	GetBooking(ctx context.Context, id int32) (*domain.Booking, error)
	ConfirmBooking(ctx context.Context, id int32) (*domain.Booking, error)
	CancelBooking(ctx context.Context, id int32, reason string) (*domain.Booking, error)
	EvaluateSteps(ctx context.Context, id int32) (*domain.Booking, []domain.StepView, error)
	ListByStation(ctx context.Context, stationID int32, status string, page, pageSize int32) ([]domain.Booking, int32, error)
	ListByRenter(ctx context.Context, renterID int32, status string, page, pageSize int32) ([]domain.Booking, int32, error)
}

type ContractService interface {
	Upload(ctx context.Context, bookingID int32, file storage.FileUpload) (string, error)
	Delete(ctx context.Context, bookingID int32) (string, error)
}

type InspectionService interface {
	LogPreRental(ctx context.Context, bookingID int32, in PreRentalInput) (string, error)
	LogPostRental(ctx context.Context, bookingID int32, in PostRentalInput) (string, error)
}

type DamageService interface {
	Submit(ctx context.Context, bookingID int32, in DamageReportInput) (string, error)
}

type RefundService interface {
	GetSummary(ctx context.Context, bookingID int32) (domain.RefundSummary, error)
	Refund(ctx context.Context, bookingID int32, in RefundInput) (string, error)
	PayAdditional(ctx context.Context, bookingID int32, in AdditionalPaymentInput) (string, error)
}

type StationService interface {
	CreateStation(ctx context.Context, station *domain.Station) error
	GetStation(ctx context.Context, id int32) (*domain.Station, error)
	UpdateStation(ctx context.Context, station *domain.Station) error
	DeleteStation(ctx context.Context, id int32) error
	ListStations(ctx context.Context) ([]domain.Station, error)
}

type VehicleService interface {
	AddVehicle(ctx context.Context, vehicle *domain.Vehicle) error
	GetVehicle(ctx context.Context, id int32) (*domain.Vehicle, error)
	UpdateVehicle(ctx context.Context, vehicle *domain.Vehicle) error
	DeleteVehicle(ctx context.Context, id int32) error
	ListByStation(ctx context.Context, stationID int32, status string, page, pageSize int32) ([]domain.Vehicle, int32, error)
}

type UserService interface {
	Register(ctx context.Context, user *domain.User, password string) error
	Login(ctx context.Context, email, password string) (string, string, *domain.User, error) // access, refresh, user
	GetUser(ctx context.Context, id int32) (*domain.User, error)
	UpdateKYC(ctx context.Context, adminID, userID int32, status domain.KYCStatus) error
	ListUsers(ctx context.Context, role string, page, pageSize int32) ([]domain.User, int32, error)
}

type NotificationService interface {
	GetNotifications(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, userID, notificationID int32) error
}

type EmailService interface {
	SendBookingConfirmation(ctx context.Context, email, name, bookingCode string) error
	SendRefundProcessed(ctx context.Context, email, name, bookingCode string, amountCents int64) error
	SendPaymentRequest(ctx context.Context, email, name, bookingCode string, amountCents int64) error
	SendReturnReminder(ctx context.Context, email, name, bookingCode, endDate string) error
}
