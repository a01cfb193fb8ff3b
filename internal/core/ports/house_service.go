package ports

import (
	"context"

	"github.com/shs/smart-home-system/internal/core/domain"
)

// HouseInput carries the full field mapping for creating or replacing a house.
type HouseInput struct {
	Name          string
	Address       string
	Latitude      float64
	Longitude     float64
	OwnerIDs      []string
	OccupantCount int
}

// HouseService defines use-case operations for houses.
// Deleting a house does not cascade to its rooms or devices.
type HouseService interface {
	Create(ctx context.Context, in HouseInput) (*domain.House, error)
	Get(ctx context.Context, id string) (*domain.House, error)
	Update(ctx context.Context, id string, in HouseInput) (*domain.House, error)
	Delete(ctx context.Context, id string) error
}
