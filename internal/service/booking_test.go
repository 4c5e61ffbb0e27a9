package service

import (
	"context"
	"testing"

	"evrental-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestBookingService_CreateBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("Happy path snapshots the vehicle deposit", func(t *testing.T) {
		bookingRepo := new(MockBookingRepo)
		vehicleRepo := new(MockVehicleRepo)
		userRepo := new(MockUserRepo)
		svc := NewBookingService(bookingRepo, vehicleRepo, userRepo, nil, nil)

		vehicleRepo.On("GetByID", ctx, int32(7)).Return(&domain.Vehicle{
			ID: 7, StationID: 3, Status: domain.VehicleStatusAvailable, DepositCents: 500000,
		}, nil)
		userRepo.On("GetByID", ctx, int32(2)).Return(&domain.User{
			ID: 2, KYC: domain.KYCVerified,
		}, nil)
		bookingRepo.On("Create", ctx, mock.MatchedBy(func(b *domain.Booking) bool {
			return b.Status == domain.BookingStatusPending &&
				b.Deposit.AmountCents == 500000 &&
				b.StationID == 3 &&
				b.Code != ""
		})).Return(nil)

		b := &domain.Booking{RenterID: 2, VehicleID: 7}
		err := svc.CreateBooking(ctx, b)
		assert.NoError(t, err)
		bookingRepo.AssertExpectations(t)
	})

	t.Run("Rejects unavailable vehicle", func(t *testing.T) {
		bookingRepo := new(MockBookingRepo)
		vehicleRepo := new(MockVehicleRepo)
		svc := NewBookingService(bookingRepo, vehicleRepo, nil, nil, nil)

		vehicleRepo.On("GetByID", ctx, int32(7)).Return(&domain.Vehicle{
			ID: 7, Status: domain.VehicleStatusRented,
		}, nil)

		err := svc.CreateBooking(ctx, &domain.Booking{RenterID: 2, VehicleID: 7})
		assert.Error(t, err)
		bookingRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Rejects unverified renter", func(t *testing.T) {
		bookingRepo := new(MockBookingRepo)
		vehicleRepo := new(MockVehicleRepo)
		userRepo := new(MockUserRepo)
		svc := NewBookingService(bookingRepo, vehicleRepo, userRepo, nil, nil)

		vehicleRepo.On("GetByID", ctx, int32(7)).Return(&domain.Vehicle{
			ID: 7, Status: domain.VehicleStatusAvailable,
		}, nil)
		userRepo.On("GetByID", ctx, int32(2)).Return(&domain.User{
			ID: 2, KYC: domain.KYCPending,
		}, nil)

		err := svc.CreateBooking(ctx, &domain.Booking{RenterID: 2, VehicleID: 7})
		assert.Error(t, err)
		bookingRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestBookingService_ConfirmBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("Pending booking becomes reserved and vehicle is rented", func(t *testing.T) {
		bookingRepo := new(MockBookingRepo)
		vehicleRepo := new(MockVehicleRepo)
		userRepo := new(MockUserRepo)
		noteRepo := new(MockNotificationRepo)
		emailSvc := new(MockEmailService)
		svc := NewBookingService(bookingRepo, vehicleRepo, userRepo, noteRepo, emailSvc)

		bookingRepo.On("GetByID", ctx, int32(1)).Return(&domain.Booking{
			ID: 1, Code: "EV-abc12345", RenterID: 2, VehicleID: 7, Status: domain.BookingStatusPending,
		}, nil)
		bookingRepo.On("UpdateStatus", ctx, int32(1), domain.BookingStatusReserved).Return(nil)
		vehicleRepo.On("GetByID", ctx, int32(7)).Return(&domain.Vehicle{
			ID: 7, Status: domain.VehicleStatusAvailable,
		}, nil)
		vehicleRepo.On("Update", ctx, mock.MatchedBy(func(v *domain.Vehicle) bool {
			return v.Status == domain.VehicleStatusRented
		})).Return(nil)
		userRepo.On("GetByID", ctx, int32(2)).Return(&domain.User{
			ID: 2, Name: "Renter", Email: "renter@test.com",
		}, nil)
		emailSvc.On("SendBookingConfirmation", ctx, "renter@test.com", "Renter", "EV-abc12345").Return(nil)
		noteRepo.On("Create", ctx, mock.Anything).Return(nil)

		b, err := svc.ConfirmBooking(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, domain.BookingStatusReserved, b.Status)
		vehicleRepo.AssertExpectations(t)
		emailSvc.AssertExpectations(t)
	})

	t.Run("Non-pending booking cannot be confirmed", func(t *testing.T) {
		bookingRepo := new(MockBookingRepo)
		svc := NewBookingService(bookingRepo, nil, nil, nil, nil)

		bookingRepo.On("GetByID", ctx, int32(1)).Return(&domain.Booking{
			ID: 1, Status: domain.BookingStatusActive,
		}, nil)

		_, err := svc.ConfirmBooking(ctx, 1)
		assert.Error(t, err)
		bookingRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestBookingService_CancelBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("Completed bookings stay completed", func(t *testing.T) {
		bookingRepo := new(MockBookingRepo)
		svc := NewBookingService(bookingRepo, nil, nil, nil, nil)

		bookingRepo.On("GetByID", ctx, int32(1)).Return(&domain.Booking{
			ID: 1, Status: domain.BookingStatusCompleted,
		}, nil)

		_, err := svc.CancelBooking(ctx, 1, "changed my mind")
		assert.ErrorIs(t, err, ErrBookingNotCancellable)
	})

	t.Run("Cancelling a reserved booking releases the vehicle", func(t *testing.T) {
		bookingRepo := new(MockBookingRepo)
		vehicleRepo := new(MockVehicleRepo)
		userRepo := new(MockUserRepo)
		noteRepo := new(MockNotificationRepo)
		svc := NewBookingService(bookingRepo, vehicleRepo, userRepo, noteRepo, nil)

		bookingRepo.On("GetByID", ctx, int32(1)).Return(&domain.Booking{
			ID: 1, Code: "EV-abc12345", RenterID: 2, VehicleID: 7, Status: domain.BookingStatusReserved,
		}, nil)
		bookingRepo.On("UpdateStatus", ctx, int32(1), domain.BookingStatusCancelled).Return(nil)
		vehicleRepo.On("GetByID", ctx, int32(7)).Return(&domain.Vehicle{
			ID: 7, Status: domain.VehicleStatusRented,
		}, nil)
		vehicleRepo.On("Update", ctx, mock.MatchedBy(func(v *domain.Vehicle) bool {
			return v.Status == domain.VehicleStatusAvailable
		})).Return(nil)
		userRepo.On("GetByID", ctx, int32(2)).Return(&domain.User{ID: 2}, nil)
		noteRepo.On("Create", ctx, mock.Anything).Return(nil)

		b, err := svc.CancelBooking(ctx, 1, "no show")
		assert.NoError(t, err)
		assert.Equal(t, domain.BookingStatusCancelled, b.Status)
		vehicleRepo.AssertExpectations(t)
	})
}
