package ports

import (
	"context"

	"github.com/shs/smart-home-system/internal/core/domain"
)

// DeviceRepository defines persistence operations for devices.
// Implementations map store-level absence onto domain.ErrDeviceNotFound.
type DeviceRepository interface {
	Create(ctx context.Context, d *domain.Device) error
	FindByID(ctx context.Context, id string) (*domain.Device, error)
	// ListByRoom returns every device whose room_id matches, newest first.
	// An unknown room id yields an empty list, not an error.
	ListByRoom(ctx context.Context, roomID string) ([]*domain.Device, error)
	Update(ctx context.Context, d *domain.Device) error
	Delete(ctx context.Context, id string) error
}
