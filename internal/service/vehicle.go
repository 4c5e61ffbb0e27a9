package service

import (
	"context"

	"evrental-backend/internal/domain"
	"evrental-backend/internal/repository"
)

type vehicleService struct {
	vehicleRepo repository.VehicleRepository
	stationRepo repository.StationRepository
}

func NewVehicleService(vehicleRepo repository.VehicleRepository, stationRepo repository.StationRepository) VehicleService {
	return &vehicleService{vehicleRepo: vehicleRepo, stationRepo: stationRepo}
}

func (s *vehicleService) AddVehicle(ctx context.Context, v *domain.Vehicle) error {
	if _, err := s.stationRepo.GetByID(ctx, v.StationID); err != nil {
		return err
	}
	if v.Status == "" {
		v.Status = domain.VehicleStatusAvailable
	}
	return s.vehicleRepo.Create(ctx, v)
}

func (s *vehicleService) GetVehicle(ctx context.Context, id int32) (*domain.Vehicle, error) {
	return s.vehicleRepo.GetByID(ctx, id)
}

func (s *vehicleService) UpdateVehicle(ctx context.Context, v *domain.Vehicle) error {
	return s.vehicleRepo.Update(ctx, v)
}

func (s *vehicleService) DeleteVehicle(ctx context.Context, id int32) error {
	return s.vehicleRepo.Delete(ctx, id)
}

func (s *vehicleService) ListByStation(ctx context.Context, stationID int32, status string, page, pageSize int32) ([]domain.Vehicle, int32, error) {
	return s.vehicleRepo.ListByStation(ctx, stationID, status, page, pageSize)
}
