package handler

import (
	"time"

	"github.com/shs/smart-home-system/internal/core/domain"
)

type deviceRequest struct {
	Type     string         `json:"type"    validate:"required"`
	Name     string         `json:"name"    validate:"required"`
	RoomID   string         `json:"room_id" validate:"required"`
	Settings map[string]any `json:"settings"`
}

type deviceSettingsRequest struct {
	Settings map[string]any `json:"settings" validate:"required"`
}

// Status is a pointer so that `false` still satisfies required: presence and
// strict boolean typing are both enforced by the schema.
type deviceStatusRequest struct {
	Status *bool `json:"status" validate:"required"`
}

type deviceResponse struct {
	ID          string         `json:"id"`
	Type        string         `json:"type"`
	Name        string         `json:"name"`
	RoomID      string         `json:"room_id"`
	Settings    map[string]any `json:"settings"`
	Status      bool           `json:"status"`
	LastData    map[string]any `json:"last_data"`
	LastUpdated time.Time      `json:"last_updated"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func toDeviceResponse(d *domain.Device) deviceResponse {
	return deviceResponse{
		ID:          d.ID,
		Type:        string(d.Type),
		Name:        d.Name,
		RoomID:      d.RoomID,
		Settings:    map[string]any(d.Settings),
		Status:      d.Status,
		LastData:    map[string]any(d.LastData),
		LastUpdated: d.LastUpdated,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}
