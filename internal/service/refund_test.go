package service

import (
	"context"
	"strings"
	"testing"

	"evrental-backend/internal/domain"
	"evrental-backend/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRefundService_GetSummary(t *testing.T) {
	ctx := context.Background()

	t.Run("Deposit exceeds fees", func(t *testing.T) {
		bookingRepo := new(MockBookingRepo)
		ledgerRepo := new(MockFeeLedgerRepo)
		svc := NewRefundService(bookingRepo, ledgerRepo, nil, nil, nil, nil)

		bookingRepo.On("GetByID", ctx, int32(1)).Return(&domain.Booking{
			ID: 1, Deposit: domain.Deposit{AmountCents: 500000},
		}, nil)
		ledgerRepo.On("SumCharges", ctx, int32(1)).Return(int64(150000), nil)

		summary, err := svc.GetSummary(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, int64(350000), summary.RefundAmountCents)
		assert.Equal(t, domain.OutcomeRefund, summary.Outcome)
	})

	t.Run("Fees exceed deposit", func(t *testing.T) {
		bookingRepo := new(MockBookingRepo)
		ledgerRepo := new(MockFeeLedgerRepo)
		svc := NewRefundService(bookingRepo, ledgerRepo, nil, nil, nil, nil)

		bookingRepo.On("GetByID", ctx, int32(1)).Return(&domain.Booking{
			ID: 1, Deposit: domain.Deposit{AmountCents: 200000},
		}, nil)
		ledgerRepo.On("SumCharges", ctx, int32(1)).Return(int64(450000), nil)

		summary, err := svc.GetSummary(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, int64(-250000), summary.RefundAmountCents)
		assert.Equal(t, domain.OutcomeAdditionalPayment, summary.Outcome)
		assert.Equal(t, int64(250000), summary.AmountDueCents())
	})
}

func TestRefundService_Refund(t *testing.T) {
	ctx := context.Background()

	t.Run("Records the refund entry and completes the booking", func(t *testing.T) {
		bookingRepo := new(MockBookingRepo)
		ledgerRepo := new(MockFeeLedgerRepo)
		vehicleRepo := new(MockVehicleRepo)
		userRepo := new(MockUserRepo)
		emailSvc := new(MockEmailService)
		files := new(MockFileStore)
		svc := NewRefundService(bookingRepo, ledgerRepo, vehicleRepo, userRepo, emailSvc, files)

		booking := &domain.Booking{
			ID: 1, Code: "EV-abc12345", RenterID: 2, VehicleID: 7,
			Status:  domain.BookingStatusReturning,
			Deposit: domain.Deposit{AmountCents: 500000},
		}
		bookingRepo.On("GetByID", ctx, int32(1)).Return(booking, nil)
		ledgerRepo.On("SumCharges", ctx, int32(1)).Return(int64(150000), nil)
		ledgerRepo.On("Create", ctx, mock.MatchedBy(func(e *domain.FeeEntry) bool {
			return e.Type == domain.FeeTypeDepositRefund && e.AmountCents == 350000
		})).Return(nil)
		bookingRepo.On("UpdateStatus", ctx, int32(1), domain.BookingStatusCompleted).Return(nil)
		vehicleRepo.On("GetByID", ctx, int32(7)).Return(&domain.Vehicle{
			ID: 7, Status: domain.VehicleStatusRented,
		}, nil)
		vehicleRepo.On("Update", ctx, mock.MatchedBy(func(v *domain.Vehicle) bool {
			return v.Status == domain.VehicleStatusAvailable
		})).Return(nil)
		userRepo.On("GetByID", ctx, int32(2)).Return(&domain.User{
			ID: 2, Name: "Renter", Email: "renter@test.com",
		}, nil)
		emailSvc.On("SendRefundProcessed", ctx, "renter@test.com", "Renter", "EV-abc12345", int64(350000)).Return(nil)

		msg, err := svc.Refund(ctx, 1, RefundInput{Notes: "returned on time"})
		assert.NoError(t, err)
		assert.Equal(t, "Refund processed and booking completed", msg)
		ledgerRepo.AssertExpectations(t)
		emailSvc.AssertExpectations(t)
	})

	t.Run("Rejected when fees exceed the deposit", func(t *testing.T) {
		bookingRepo := new(MockBookingRepo)
		ledgerRepo := new(MockFeeLedgerRepo)
		svc := NewRefundService(bookingRepo, ledgerRepo, nil, nil, nil, nil)

		bookingRepo.On("GetByID", ctx, int32(1)).Return(&domain.Booking{
			ID: 1, Deposit: domain.Deposit{AmountCents: 200000},
		}, nil)
		ledgerRepo.On("SumCharges", ctx, int32(1)).Return(int64(450000), nil)

		_, err := svc.Refund(ctx, 1, RefundInput{})
		assert.ErrorIs(t, err, ErrRefundNotDue)
		ledgerRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Saves the proof image when provided", func(t *testing.T) {
		bookingRepo := new(MockBookingRepo)
		ledgerRepo := new(MockFeeLedgerRepo)
		vehicleRepo := new(MockVehicleRepo)
		userRepo := new(MockUserRepo)
		emailSvc := new(MockEmailService)
		files := new(MockFileStore)
		svc := NewRefundService(bookingRepo, ledgerRepo, vehicleRepo, userRepo, emailSvc, files)

		bookingRepo.On("GetByID", ctx, int32(1)).Return(&domain.Booking{
			ID: 1, RenterID: 2, VehicleID: 7,
			Deposit: domain.Deposit{AmountCents: 500000},
		}, nil)
		ledgerRepo.On("SumCharges", ctx, int32(1)).Return(int64(0), nil)
		files.On("Save", ctx, "settlements", "proof.jpg", "image/jpeg", mock.Anything).Return("http://files/proof.jpg", nil)
		ledgerRepo.On("Create", ctx, mock.MatchedBy(func(e *domain.FeeEntry) bool {
			return e.ProofURL == "http://files/proof.jpg"
		})).Return(nil)
		bookingRepo.On("UpdateStatus", ctx, int32(1), domain.BookingStatusCompleted).Return(nil)
		vehicleRepo.On("GetByID", ctx, int32(7)).Return(&domain.Vehicle{ID: 7}, nil)
		vehicleRepo.On("Update", ctx, mock.Anything).Return(nil)
		userRepo.On("GetByID", ctx, int32(2)).Return(&domain.User{ID: 2, Email: "r@test.com"}, nil)
		emailSvc.On("SendRefundProcessed", ctx, mock.Anything, mock.Anything, mock.Anything, int64(500000)).Return(nil)

		_, err := svc.Refund(ctx, 1, RefundInput{ProofImage: &storage.FileUpload{
			Filename: "proof.jpg", ContentType: "image/jpeg", Content: strings.NewReader("img"),
		}})
		assert.NoError(t, err)
		files.AssertExpectations(t)
	})
}

func TestRefundService_PayAdditional(t *testing.T) {
	ctx := context.Background()

	t.Run("Amount and proof are mandatory", func(t *testing.T) {
		bookingRepo := new(MockBookingRepo)
		svc := NewRefundService(bookingRepo, nil, nil, nil, nil, nil)

		_, err := svc.PayAdditional(ctx, 1, AdditionalPaymentInput{AmountCents: 0})
		assert.Error(t, err)

		_, err = svc.PayAdditional(ctx, 1, AdditionalPaymentInput{AmountCents: 250000})
		assert.Error(t, err)

		bookingRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("Rejected when a refund is due instead", func(t *testing.T) {
		bookingRepo := new(MockBookingRepo)
		ledgerRepo := new(MockFeeLedgerRepo)
		svc := NewRefundService(bookingRepo, ledgerRepo, nil, nil, nil, nil)

		bookingRepo.On("GetByID", ctx, int32(1)).Return(&domain.Booking{
			ID: 1, Deposit: domain.Deposit{AmountCents: 500000},
		}, nil)
		ledgerRepo.On("SumCharges", ctx, int32(1)).Return(int64(150000), nil)

		_, err := svc.PayAdditional(ctx, 1, AdditionalPaymentInput{
			AmountCents: 250000,
			ProofImage:  &storage.FileUpload{Filename: "proof.jpg", Content: strings.NewReader("img")},
		})
		assert.ErrorIs(t, err, ErrNoAdditionalOwed)
	})

	t.Run("Records the surcharge and completes the booking", func(t *testing.T) {
		bookingRepo := new(MockBookingRepo)
		ledgerRepo := new(MockFeeLedgerRepo)
		vehicleRepo := new(MockVehicleRepo)
		userRepo := new(MockUserRepo)
		emailSvc := new(MockEmailService)
		files := new(MockFileStore)
		svc := NewRefundService(bookingRepo, ledgerRepo, vehicleRepo, userRepo, emailSvc, files)

		bookingRepo.On("GetByID", ctx, int32(1)).Return(&domain.Booking{
			ID: 1, Code: "EV-abc12345", RenterID: 2, VehicleID: 7,
			Deposit: domain.Deposit{AmountCents: 200000},
		}, nil)
		ledgerRepo.On("SumCharges", ctx, int32(1)).Return(int64(450000), nil)
		files.On("Save", ctx, "settlements", "proof.jpg", "image/jpeg", mock.Anything).Return("http://files/proof.jpg", nil)
		ledgerRepo.On("Create", ctx, mock.MatchedBy(func(e *domain.FeeEntry) bool {
			return e.Type == domain.FeeTypeSurcharge && e.AmountCents == 250000
		})).Return(nil)
		bookingRepo.On("UpdateStatus", ctx, int32(1), domain.BookingStatusCompleted).Return(nil)
		vehicleRepo.On("GetByID", ctx, int32(7)).Return(&domain.Vehicle{ID: 7}, nil)
		vehicleRepo.On("Update", ctx, mock.Anything).Return(nil)
		userRepo.On("GetByID", ctx, int32(2)).Return(&domain.User{
			ID: 2, Name: "Renter", Email: "renter@test.com",
		}, nil)
		emailSvc.On("SendPaymentRequest", ctx, "renter@test.com", "Renter", "EV-abc12345", int64(250000)).Return(nil)

		msg, err := svc.PayAdditional(ctx, 1, AdditionalPaymentInput{
			AmountCents: 250000,
			ProofImage: &storage.FileUpload{
				Filename: "proof.jpg", ContentType: "image/jpeg", Content: strings.NewReader("img"),
			},
		})
		assert.NoError(t, err)
		assert.Equal(t, "Payment recorded and booking completed", msg)
		ledgerRepo.AssertExpectations(t)
	})
}
