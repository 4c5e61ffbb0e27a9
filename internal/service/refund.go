package service

import (
	"context"
	"errors"
	"fmt"

	"evrental-backend/internal/domain"
	"evrental-backend/internal/repository"
	"evrental-backend/internal/storage"
)

var (
	ErrRefundNotDue     = errors.New("fees exceed the deposit; collect an additional payment instead")
	ErrNoAdditionalOwed = errors.New("no additional payment is owed on this booking")
)

type refundService struct {
	bookingRepo repository.BookingRepository
	ledgerRepo  repository.FeeLedgerRepository
	vehicleRepo repository.VehicleRepository
	userRepo    repository.UserRepository
	emailSvc    EmailService
	files       storage.FileStore
}

func NewRefundService(
	bookingRepo repository.BookingRepository,
	ledgerRepo repository.FeeLedgerRepository,
	vehicleRepo repository.VehicleRepository,
	userRepo repository.UserRepository,
	emailSvc EmailService,
	files storage.FileStore,
) RefundService {
	return &refundService{
		bookingRepo: bookingRepo,
		ledgerRepo:  ledgerRepo,
		vehicleRepo: vehicleRepo,
		userRepo:    userRepo,
		emailSvc:    emailSvc,
		files:       files,
	}
}

// GetSummary computes the settlement from the deposit snapshot and the
// accumulated charges (late fees plus damage costs).
func (s *refundService) GetSummary(ctx context.Context, bookingID int32) (domain.RefundSummary, error) {
	b, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return domain.RefundSummary{}, err
	}

	fees, err := s.ledgerRepo.SumCharges(ctx, bookingID)
	if err != nil {
		return domain.RefundSummary{}, err
	}

	return domain.ComputeSettlement(b.Deposit.AmountCents, fees), nil
}

// Refund returns the deposit balance to the renter and closes the booking.
// Valid only when the settlement is a refund or exactly settled.
func (s *refundService) Refund(ctx context.Context, bookingID int32, in RefundInput) (string, error) {
	summary, err := s.GetSummary(ctx, bookingID)
	if err != nil {
		return "", err
	}
	if summary.RefundAmountCents < 0 {
		return "", ErrRefundNotDue
	}

	proofURL := ""
	if in.ProofImage != nil {
		proofURL, err = s.files.Save(ctx, "settlements", in.ProofImage.Filename, in.ProofImage.ContentType, in.ProofImage.Content)
		if err != nil {
			return "", err
		}
	}

	entry := &domain.FeeEntry{
		BookingID:   bookingID,
		Type:        domain.FeeTypeDepositRefund,
		AmountCents: summary.RefundAmountCents,
		Description: refundDescription(summary, in.Notes),
		ProofURL:    proofURL,
	}
	if err := s.ledgerRepo.Create(ctx, entry); err != nil {
		return "", err
	}

	if err := s.completeBooking(ctx, bookingID, summary); err != nil {
		return "", err
	}

	if summary.RefundAmountCents == 0 {
		return "Booking completed, deposit fully consumed by fees", nil
	}
	return "Refund processed and booking completed", nil
}

// PayAdditional collects the amount the renter owes beyond the deposit
// and closes the booking. Amount and proof are mandatory; the workflow
// validates that before calling, and the service enforces it again.
func (s *refundService) PayAdditional(ctx context.Context, bookingID int32, in AdditionalPaymentInput) (string, error) {
	if in.AmountCents <= 0 {
		return "", errors.New("payment amount must be greater than zero")
	}
	if in.ProofImage == nil {
		return "", errors.New("proof of payment image is required")
	}

	summary, err := s.GetSummary(ctx, bookingID)
	if err != nil {
		return "", err
	}
	if summary.RefundAmountCents >= 0 {
		return "", ErrNoAdditionalOwed
	}

	proofURL, err := s.files.Save(ctx, "settlements", in.ProofImage.Filename, in.ProofImage.ContentType, in.ProofImage.Content)
	if err != nil {
		return "", err
	}

	entry := &domain.FeeEntry{
		BookingID:   bookingID,
		Type:        domain.FeeTypeSurcharge,
		AmountCents: in.AmountCents,
		Description: fmt.Sprintf("Additional payment collected (owed %d)", summary.AmountDueCents()),
		ProofURL:    proofURL,
	}
	if err := s.ledgerRepo.Create(ctx, entry); err != nil {
		return "", err
	}

	if err := s.completeBooking(ctx, bookingID, summary); err != nil {
		return "", err
	}

	return "Payment recorded and booking completed", nil
}

func (s *refundService) completeBooking(ctx context.Context, bookingID int32, summary domain.RefundSummary) error {
	b, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return err
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, domain.BookingStatusCompleted); err != nil {
		return err
	}

	vehicle, err := s.vehicleRepo.GetByID(ctx, b.VehicleID)
	if err == nil {
		vehicle.Status = domain.VehicleStatusAvailable
		_ = s.vehicleRepo.Update(ctx, vehicle)
	}

	if renter, err := s.userRepo.GetByID(ctx, b.RenterID); err == nil {
		switch summary.Outcome {
		case domain.OutcomeRefund:
			_ = s.emailSvc.SendRefundProcessed(ctx, renter.Email, renter.Name, b.Code, summary.RefundAmountCents)
		case domain.OutcomeAdditionalPayment:
			_ = s.emailSvc.SendPaymentRequest(ctx, renter.Email, renter.Name, b.Code, summary.AmountDueCents())
		}
	}

	return nil
}

func refundDescription(summary domain.RefundSummary, notes string) string {
	desc := fmt.Sprintf("Deposit refund (deposit %d, fees %d)", summary.TotalDepositCents, summary.LateFeeCents)
	if notes != "" {
		desc += ": " + notes
	}
	return desc
}
