package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Location represents a geographic point.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Valid reports whether the coordinates form a real (latitude, longitude) pair.
func (l Location) Valid() bool {
	return l.Latitude >= -90 && l.Latitude <= 90 && l.Longitude >= -180 && l.Longitude <= 180
}

// House is a physical home owned by one or more users.
// Owner ids are opaque references; they are never resolved against the user
// store (referential integrity is not enforced at this layer).
type House struct {
	ID            string                      `json:"id" gorm:"primaryKey"`
	Name          string                      `json:"name" gorm:"not null"`
	Address       string                      `json:"address" gorm:"not null"`
	Location      Location                    `json:"location" gorm:"embedded"`
	OwnerIDs      datatypes.JSONSlice[string] `json:"owner_ids" gorm:"not null"`
	OccupantCount int                         `json:"occupant_count" gorm:"not null"`
	CreatedAt     time.Time                   `json:"created_at"`
	UpdatedAt     time.Time                   `json:"updated_at"`
}

// NewHouse validates the given fields and constructs a House with a fresh id
// and equal created/updated timestamps.
func NewHouse(name, address string, location Location, ownerIDs []string, occupantCount int) (*House, error) {
	h := &House{
		Name:          name,
		Address:       address,
		Location:      location,
		OwnerIDs:      datatypes.NewJSONSlice(ownerIDs),
		OccupantCount: occupantCount,
	}
	if err := h.Validate(); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	h.ID = uuid.NewString()
	h.CreatedAt = now
	h.UpdatedAt = now
	return h, nil
}

// Validate enforces the house construction invariants.
func (h *House) Validate() error {
	if h.Name == "" || h.Address == "" {
		return &HouseError{reason: "house name and address are required"}
	}
	if !h.Location.Valid() {
		return &HouseError{reason: "invalid location"}
	}
	if len(h.OwnerIDs) == 0 {
		return &HouseError{reason: "at least one owner id is required"}
	}
	for _, id := range h.OwnerIDs {
		if id == "" {
			return &HouseError{reason: "owner ids must be non-empty"}
		}
	}
	if h.OccupantCount < 1 {
		return &HouseError{reason: "occupant count must be positive"}
	}
	return nil
}
