package domain

import (
	"time"

	"github.com/google/uuid"
)

// Room is a named area inside a house. The house id is an opaque reference.
type Room struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Floor     int       `json:"floor" gorm:"not null"`
	Size      float64   `json:"size" gorm:"not null"`
	HouseID   string    `json:"house_id" gorm:"index;not null"`
	Type      RoomType  `json:"type" gorm:"type:varchar(16);not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewRoom validates the given fields and constructs a Room with a fresh id
// and equal created/updated timestamps.
func NewRoom(name string, floor int, size float64, houseID string, roomType RoomType) (*Room, error) {
	r := &Room{
		Name:    name,
		Floor:   floor,
		Size:    size,
		HouseID: houseID,
		Type:    roomType,
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	r.ID = uuid.NewString()
	r.CreatedAt = now
	r.UpdatedAt = now
	return r, nil
}

// Validate enforces the room construction invariants.
func (r *Room) Validate() error {
	if r.Name == "" || r.HouseID == "" {
		return &RoomError{reason: "room name and house id are required"}
	}
	if r.Floor < 0 {
		return &RoomError{reason: "floor number cannot be negative"}
	}
	if r.Size <= 0 {
		return &RoomError{reason: "room size must be positive"}
	}
	if _, err := ParseRoomType(string(r.Type)); err != nil {
		return err
	}
	return nil
}
