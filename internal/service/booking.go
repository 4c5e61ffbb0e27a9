package service

import (
	"context"
	"errors"
	"fmt"

	"evrental-backend/internal/domain"
	"evrental-backend/internal/repository"

	"github.com/google/uuid"
)

var ErrBookingNotCancellable = errors.New("completed bookings cannot be cancelled")

type bookingService struct {
	bookingRepo repository.BookingRepository
	vehicleRepo repository.VehicleRepository
	userRepo    repository.UserRepository
	noteRepo    repository.NotificationRepository
	emailSvc    EmailService
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	vehicleRepo repository.VehicleRepository,
	userRepo repository.UserRepository,
	noteRepo repository.NotificationRepository,
	emailSvc EmailService,
) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		vehicleRepo: vehicleRepo,
		userRepo:    userRepo,
		noteRepo:    noteRepo,
		emailSvc:    emailSvc,
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, b *domain.Booking) error {
	vehicle, err := s.vehicleRepo.GetByID(ctx, b.VehicleID)
	if err != nil {
		return err
	}
	if vehicle.Status != domain.VehicleStatusAvailable {
		return errors.New("vehicle is not available")
	}

	renter, err := s.userRepo.GetByID(ctx, b.RenterID)
	if err != nil {
		return err
	}
	if renter.KYC != domain.KYCVerified {
		return errors.New("renter has not completed identity verification")
	}

	b.Code = fmt.Sprintf("EV-%s", uuid.New().String()[:8])
	b.Status = domain.BookingStatusPending
	b.StationID = vehicle.StationID
	// Deposit snapshot from the vehicle at booking time.
	if b.Deposit.AmountCents == 0 {
		b.Deposit.AmountCents = vehicle.DepositCents
	}
	if b.Deposit.Currency == "" {
		b.Deposit.Currency = "VND"
	}

	return s.bookingRepo.Create(ctx, b)
}

func (s *bookingService) GetBooking(ctx context.Context, id int32) (*domain.Booking, error) {
	return s.bookingRepo.GetByID(ctx, id)
}

func (s *bookingService) ConfirmBooking(ctx context.Context, id int32) (*domain.Booking, error) {
	b, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.Status != domain.BookingStatusPending {
		return nil, errors.New("booking is not pending")
	}

	if err := s.bookingRepo.UpdateStatus(ctx, id, domain.BookingStatusReserved); err != nil {
		return nil, err
	}
	b.Status = domain.BookingStatusReserved

	vehicle, err := s.vehicleRepo.GetByID(ctx, b.VehicleID)
	if err == nil {
		vehicle.Status = domain.VehicleStatusRented
		_ = s.vehicleRepo.Update(ctx, vehicle)
	}

	if renter, err := s.userRepo.GetByID(ctx, b.RenterID); err == nil {
		_ = s.emailSvc.SendBookingConfirmation(ctx, renter.Email, renter.Name, b.Code)
		note := &domain.Notification{
			UserID:  renter.ID,
			Title:   "Booking Confirmed",
			Message: fmt.Sprintf("Your booking %s is reserved. Deposit received.", b.Code),
			Attributes: map[string]string{
				"type":       "BOOKING_CONFIRMED",
				"booking_id": fmt.Sprintf("%d", b.ID),
			},
		}
		_ = s.noteRepo.Create(ctx, note)
	}

	return b, nil
}

func (s *bookingService) CancelBooking(ctx context.Context, id int32, reason string) (*domain.Booking, error) {
	b, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.Status == domain.BookingStatusCompleted {
		return nil, ErrBookingNotCancellable
	}

	if err := s.bookingRepo.UpdateStatus(ctx, id, domain.BookingStatusCancelled); err != nil {
		return nil, err
	}
	b.Status = domain.BookingStatusCancelled

	vehicle, err := s.vehicleRepo.GetByID(ctx, b.VehicleID)
	if err == nil && vehicle.Status == domain.VehicleStatusRented {
		vehicle.Status = domain.VehicleStatusAvailable
		_ = s.vehicleRepo.Update(ctx, vehicle)
	}

	if renter, err := s.userRepo.GetByID(ctx, b.RenterID); err == nil {
		note := &domain.Notification{
			UserID:  renter.ID,
			Title:   "Booking Cancelled",
			Message: fmt.Sprintf("Booking %s was cancelled. %s", b.Code, reason),
			Attributes: map[string]string{
				"type":       "BOOKING_CANCELLED",
				"booking_id": fmt.Sprintf("%d", b.ID),
			},
		}
		_ = s.noteRepo.Create(ctx, note)
	}

	return b, nil
}

func (s *bookingService) EvaluateSteps(ctx context.Context, id int32) (*domain.Booking, []domain.StepView, error) {
	b, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return b, domain.EvaluateSteps(b), nil
}

func (s *bookingService) ListByStation(ctx context.Context, stationID int32, status string, page, pageSize int32) ([]domain.Booking, int32, error) {
	return s.bookingRepo.ListByStation(ctx, stationID, status, page, pageSize)
}

func (s *bookingService) ListByRenter(ctx context.Context, renterID int32, status string, page, pageSize int32) ([]domain.Booking, int32, error) {
	return s.bookingRepo.ListByRenter(ctx, renterID, status, page, pageSize)
}
