package ports

import (
	"context"

	"github.com/shs/smart-home-system/internal/core/domain"
)

// DeviceInput carries the full field mapping for creating or replacing a
// device. Settings may be nil on create, in which case an empty mapping is
// stored.
type DeviceInput struct {
	Type     string
	Name     string
	RoomID   string
	Settings map[string]any
}

// DeviceService defines use-case operations for devices.
type DeviceService interface {
	Create(ctx context.Context, in DeviceInput) (*domain.Device, error)
	Get(ctx context.Context, id string) (*domain.Device, error)
	ListByRoom(ctx context.Context, roomID string) ([]*domain.Device, error)
	Update(ctx context.Context, id string, in DeviceInput) (*domain.Device, error)
	Delete(ctx context.Context, id string) error
	// UpdateSettings replaces the stored settings document in full.
	UpdateSettings(ctx context.Context, id string, settings map[string]any) (*domain.Device, error)
	// UpdateStatus switches the device on or off.
	UpdateStatus(ctx context.Context, id string, status bool) (*domain.Device, error)
}
