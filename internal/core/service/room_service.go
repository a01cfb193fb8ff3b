package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/shs/smart-home-system/internal/core/domain"
	"github.com/shs/smart-home-system/internal/core/ports"
)

// RoomService implements ports.RoomService on top of a RoomRepository.
type RoomService struct {
	repo   ports.RoomRepository
	logger zerolog.Logger
}

func NewRoomService(repo ports.RoomRepository, logger zerolog.Logger) *RoomService {
	return &RoomService{repo: repo, logger: logger}
}

// Create validates the input and persists a new room. The house id is stored
// as given; it is not resolved against the house store.
func (s *RoomService) Create(ctx context.Context, in ports.RoomInput) (*domain.Room, error) {
	roomType, err := domain.ParseRoomType(in.Type)
	if err != nil {
		return nil, err
	}
	room, err := domain.NewRoom(in.Name, in.Floor, in.Size, in.HouseID, roomType)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, room); err != nil {
		s.logger.Error().Err(err).Msg("failed to create room")
		return nil, err
	}
	s.logger.Info().Str("room_id", room.ID).Str("house_id", room.HouseID).Msg("room created")
	return room, nil
}

func (s *RoomService) Get(ctx context.Context, id string) (*domain.Room, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *RoomService) ListByHouse(ctx context.Context, houseID string) ([]*domain.Room, error) {
	if houseID == "" {
		return nil, domain.NewRoomError("house id cannot be empty")
	}
	return s.repo.ListByHouse(ctx, houseID)
}

// Update replaces every caller-supplied field of an existing room.
func (s *RoomService) Update(ctx context.Context, id string, in ports.RoomInput) (*domain.Room, error) {
	room, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	roomType, err := domain.ParseRoomType(in.Type)
	if err != nil {
		return nil, err
	}
	room.Name = in.Name
	room.Floor = in.Floor
	room.Size = in.Size
	room.HouseID = in.HouseID
	room.Type = roomType
	if err := room.Validate(); err != nil {
		return nil, err
	}
	room.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, room); err != nil {
		s.logger.Error().Err(err).Str("room_id", id).Msg("failed to update room")
		return nil, err
	}
	s.logger.Info().Str("room_id", id).Msg("room updated")
	return room, nil
}

func (s *RoomService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("room_id", id).Msg("room deleted")
	return nil
}
