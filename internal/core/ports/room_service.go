package ports

import (
	"context"

	"github.com/shs/smart-home-system/internal/core/domain"
)

// RoomInput carries the full field mapping for creating or replacing a room.
type RoomInput struct {
	Name    string
	Floor   int
	Size    float64
	HouseID string
	Type    string
}

// RoomService defines use-case operations for rooms.
type RoomService interface {
	Create(ctx context.Context, in RoomInput) (*domain.Room, error)
	Get(ctx context.Context, id string) (*domain.Room, error)
	ListByHouse(ctx context.Context, houseID string) ([]*domain.Room, error)
	Update(ctx context.Context, id string, in RoomInput) (*domain.Room, error)
	Delete(ctx context.Context, id string) error
}
