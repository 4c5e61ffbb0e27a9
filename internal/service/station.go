package service

import (
	"context"

	"evrental-backend/internal/domain"
	"evrental-backend/internal/repository"
)

type stationService struct {
	stationRepo repository.StationRepository
}

func NewStationService(stationRepo repository.StationRepository) StationService {
	return &stationService{stationRepo: stationRepo}
}

func (s *stationService) CreateStation(ctx context.Context, station *domain.Station) error {
	if station.Status == "" {
		station.Status = domain.StationStatusOpen
	}
	return s.stationRepo.Create(ctx, station)
}

func (s *stationService) GetStation(ctx context.Context, id int32) (*domain.Station, error) {
	return s.stationRepo.GetByID(ctx, id)
}

func (s *stationService) UpdateStation(ctx context.Context, station *domain.Station) error {
	return s.stationRepo.Update(ctx, station)
}

func (s *stationService) DeleteStation(ctx context.Context, id int32) error {
	return s.stationRepo.Delete(ctx, id)
}

func (s *stationService) ListStations(ctx context.Context) ([]domain.Station, error) {
	return s.stationRepo.List(ctx)
}
