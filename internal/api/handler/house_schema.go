package handler

import (
	"time"

	"github.com/shs/smart-home-system/internal/core/domain"
)

type houseRequest struct {
	Name          string   `json:"name"      validate:"required"`
	Address       string   `json:"address"   validate:"required"`
	Latitude      float64  `json:"latitude"`
	Longitude     float64  `json:"longitude"`
	OwnerIDs      []string `json:"owner_ids" validate:"required"`
	OccupantCount int      `json:"occupant_count"`
}

// The location is flattened to latitude/longitude in the wire format, the
// same shape the persisted record uses.
type houseResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Address       string    `json:"address"`
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
	OwnerIDs      []string  `json:"owner_ids"`
	OccupantCount int       `json:"occupant_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func toHouseResponse(h *domain.House) houseResponse {
	return houseResponse{
		ID:            h.ID,
		Name:          h.Name,
		Address:       h.Address,
		Latitude:      h.Location.Latitude,
		Longitude:     h.Location.Longitude,
		OwnerIDs:      []string(h.OwnerIDs),
		OccupantCount: h.OccupantCount,
		CreatedAt:     h.CreatedAt,
		UpdatedAt:     h.UpdatedAt,
	}
}
