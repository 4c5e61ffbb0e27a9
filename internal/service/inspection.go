package service

import (
	"context"
	"errors"

	"evrental-backend/internal/domain"
	"evrental-backend/internal/repository"
	"evrental-backend/internal/storage"
)

type inspectionService struct {
	inspectionRepo repository.InspectionRepository
	bookingRepo    repository.BookingRepository
	files          storage.FileStore
}

func NewInspectionService(
	inspectionRepo repository.InspectionRepository,
	bookingRepo repository.BookingRepository,
	files storage.FileStore,
) InspectionService {
	return &inspectionService{
		inspectionRepo: inspectionRepo,
		bookingRepo:    bookingRepo,
		files:          files,
	}
}

// LogPreRental records the handover condition and advances the booking
// to active: once the renter drives off, the rental is running.
func (s *inspectionService) LogPreRental(ctx context.Context, bookingID int32, in PreRentalInput) (string, error) {
	b, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return "", err
	}
	if !b.HasContract() {
		return "", errors.New("contract must be uploaded before handover")
	}

	urls, err := s.savePhotos(ctx, "inspections/pre", in.DamagePhotos)
	if err != nil {
		return "", err
	}

	ins := &domain.Inspection{
		BookingID:    bookingID,
		Kind:         domain.InspectionPreRental,
		BatteryLevel: in.BatteryLevel,
		Mileage:      in.Mileage,
		PhotoURLs:    urls,
		InspectedBy:  in.InspectedBy,
	}
	if err := s.inspectionRepo.Create(ctx, ins); err != nil {
		return "", err
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, domain.BookingStatusActive); err != nil {
		return "", err
	}

	return "Pre-rental condition logged, rental started", nil
}

// LogPostRental records the return condition and moves the booking into
// settlement (returning).
func (s *inspectionService) LogPostRental(ctx context.Context, bookingID int32, in PostRentalInput) (string, error) {
	if _, err := s.bookingRepo.GetByID(ctx, bookingID); err != nil {
		return "", err
	}

	urls, err := s.savePhotos(ctx, "inspections/post", in.DashboardPhotos)
	if err != nil {
		return "", err
	}

	ins := &domain.Inspection{
		BookingID:    bookingID,
		Kind:         domain.InspectionPostRental,
		BatteryLevel: in.BatteryLevel,
		Mileage:      in.Mileage,
		PhotoURLs:    urls,
		InspectedBy:  in.InspectedBy,
	}
	if err := s.inspectionRepo.Create(ctx, ins); err != nil {
		return "", err
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, domain.BookingStatusReturning); err != nil {
		return "", err
	}

	return "Return condition logged", nil
}

func (s *inspectionService) savePhotos(ctx context.Context, prefix string, photos []storage.FileUpload) ([]string, error) {
	var urls []string
	for _, p := range photos {
		url, err := s.files.Save(ctx, prefix, p.Filename, p.ContentType, p.Content)
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}
