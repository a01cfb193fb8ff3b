package ports

import (
	"context"

	"github.com/shs/smart-home-system/internal/core/domain"
)

// HouseRepository defines persistence operations for houses.
// Implementations map store-level absence onto domain.ErrHouseNotFound.
type HouseRepository interface {
	Create(ctx context.Context, h *domain.House) error
	FindByID(ctx context.Context, id string) (*domain.House, error)
	Update(ctx context.Context, h *domain.House) error
	Delete(ctx context.Context, id string) error
}
