package ports

import (
	"context"

	"github.com/shs/smart-home-system/internal/core/domain"
)

// RoomRepository defines persistence operations for rooms.
// Implementations map store-level absence onto domain.ErrRoomNotFound.
type RoomRepository interface {
	Create(ctx context.Context, r *domain.Room) error
	FindByID(ctx context.Context, id string) (*domain.Room, error)
	// ListByHouse returns every room whose house_id matches, newest first.
	// An unknown house id yields an empty list, not an error.
	ListByHouse(ctx context.Context, houseID string) ([]*domain.Room, error)
	Update(ctx context.Context, r *domain.Room) error
	Delete(ctx context.Context, id string) error
}
