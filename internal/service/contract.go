package service

import (
	"context"
	"errors"

	"evrental-backend/internal/repository"
	"evrental-backend/internal/storage"
)

var ErrNoContract = errors.New("booking has no contract attached")

type contractService struct {
	bookingRepo repository.BookingRepository
	files       storage.FileStore
}

func NewContractService(bookingRepo repository.BookingRepository, files storage.FileStore) ContractService {
	return &contractService{bookingRepo: bookingRepo, files: files}
}

func (s *contractService) Upload(ctx context.Context, bookingID int32, file storage.FileUpload) (string, error) {
	b, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return "", err
	}
	if b.HasContract() {
		return "", errors.New("booking already has a contract; delete it first")
	}

	url, err := s.files.Save(ctx, "contracts", file.Filename, file.ContentType, file.Content)
	if err != nil {
		return "", err
	}

	if err := s.bookingRepo.SetContractURL(ctx, bookingID, url); err != nil {
		// Keep storage consistent with the booking record.
		_ = s.files.Delete(ctx, url)
		return "", err
	}

	return "Contract uploaded successfully", nil
}

func (s *contractService) Delete(ctx context.Context, bookingID int32) (string, error) {
	b, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return "", err
	}
	if !b.HasContract() {
		return "", ErrNoContract
	}

	if err := s.files.Delete(ctx, b.ContractURL); err != nil {
		return "", err
	}
	if err := s.bookingRepo.SetContractURL(ctx, bookingID, ""); err != nil {
		return "", err
	}

	return "Contract removed", nil
}
