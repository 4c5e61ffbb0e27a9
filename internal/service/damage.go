package service

import (
	"context"
	"errors"
	"fmt"

	"evrental-backend/internal/domain"
	"evrental-backend/internal/repository"
	"evrental-backend/internal/storage"
)

type damageService struct {
	damageRepo  repository.DamageReportRepository
	ledgerRepo  repository.FeeLedgerRepository
	bookingRepo repository.BookingRepository
	files       storage.FileStore
}

func NewDamageService(
	damageRepo repository.DamageReportRepository,
	ledgerRepo repository.FeeLedgerRepository,
	bookingRepo repository.BookingRepository,
	files storage.FileStore,
) DamageService {
	return &damageService{
		damageRepo:  damageRepo,
		ledgerRepo:  ledgerRepo,
		bookingRepo: bookingRepo,
		files:       files,
	}
}

// Submit records a damage report and folds the estimated cost into the
// booking's fee ledger so the settlement summary picks it up.
func (s *damageService) Submit(ctx context.Context, bookingID int32, in DamageReportInput) (string, error) {
	if in.Description == "" {
		return "", errors.New("damage description is required")
	}
	if _, err := s.bookingRepo.GetByID(ctx, bookingID); err != nil {
		return "", err
	}

	var urls []string
	for _, p := range in.Photos {
		url, err := s.files.Save(ctx, "damage", p.Filename, p.ContentType, p.Content)
		if err != nil {
			return "", err
		}
		urls = append(urls, url)
	}

	report := &domain.DamageReport{
		BookingID:          bookingID,
		Description:        in.Description,
		EstimatedCostCents: in.EstimatedCostCents,
		PhotoURLs:          urls,
		ReportedBy:         in.ReportedBy,
	}
	if err := s.damageRepo.Create(ctx, report); err != nil {
		return "", err
	}

	if in.EstimatedCostCents > 0 {
		entry := &domain.FeeEntry{
			BookingID:   bookingID,
			Type:        domain.FeeTypeDamage,
			AmountCents: in.EstimatedCostCents,
			Description: fmt.Sprintf("Damage report #%d: %s", report.ID, in.Description),
		}
		if err := s.ledgerRepo.Create(ctx, entry); err != nil {
			return "", err
		}
	}

	return "Damage report submitted", nil
}
