package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/datatypes"

	"github.com/shs/smart-home-system/internal/core/domain"
	"github.com/shs/smart-home-system/internal/core/ports"
)

// HouseService implements ports.HouseService on top of a HouseRepository.
type HouseService struct {
	repo   ports.HouseRepository
	logger zerolog.Logger
}

func NewHouseService(repo ports.HouseRepository, logger zerolog.Logger) *HouseService {
	return &HouseService{repo: repo, logger: logger}
}

// Create validates the input and persists a new house.
func (s *HouseService) Create(ctx context.Context, in ports.HouseInput) (*domain.House, error) {
	location := domain.Location{Latitude: in.Latitude, Longitude: in.Longitude}
	house, err := domain.NewHouse(in.Name, in.Address, location, in.OwnerIDs, in.OccupantCount)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, house); err != nil {
		s.logger.Error().Err(err).Msg("failed to create house")
		return nil, err
	}
	s.logger.Info().Str("house_id", house.ID).Str("name", house.Name).Msg("house created")
	return house, nil
}

func (s *HouseService) Get(ctx context.Context, id string) (*domain.House, error) {
	return s.repo.FindByID(ctx, id)
}

// Update replaces every caller-supplied field of an existing house.
func (s *HouseService) Update(ctx context.Context, id string, in ports.HouseInput) (*domain.House, error) {
	house, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	house.Name = in.Name
	house.Address = in.Address
	house.Location = domain.Location{Latitude: in.Latitude, Longitude: in.Longitude}
	house.OwnerIDs = datatypes.NewJSONSlice(in.OwnerIDs)
	house.OccupantCount = in.OccupantCount
	if err := house.Validate(); err != nil {
		return nil, err
	}
	house.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, house); err != nil {
		s.logger.Error().Err(err).Str("house_id", id).Msg("failed to update house")
		return nil, err
	}
	s.logger.Info().Str("house_id", id).Msg("house updated")
	return house, nil
}

// Delete removes a single house row. Rooms referencing it are untouched:
// no cascade, no referential-integrity check.
func (s *HouseService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("house_id", id).Msg("house deleted")
	return nil
}
