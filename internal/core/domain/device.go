package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Device is an inert record of a piece of hardware assigned to a room.
// Settings and last observed data are open key-value documents; the system
// stores them verbatim and attaches no meaning to their contents.
type Device struct {
	ID          string            `json:"id" gorm:"primaryKey"`
	Type        DeviceType        `json:"type" gorm:"type:varchar(16);not null"`
	Name        string            `json:"name" gorm:"not null"`
	RoomID      string            `json:"room_id" gorm:"index;not null"`
	Settings    datatypes.JSONMap `json:"settings"`
	Status      bool              `json:"status" gorm:"not null"`
	LastData    datatypes.JSONMap `json:"last_data"`
	LastUpdated time.Time         `json:"last_updated"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// NewDevice validates the given fields and constructs a Device with a fresh
// id, empty settings and data maps, and status off.
func NewDevice(deviceType DeviceType, name, roomID string) (*Device, error) {
	d := &Device{
		Type:   deviceType,
		Name:   name,
		RoomID: roomID,
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	d.ID = uuid.NewString()
	d.Settings = datatypes.JSONMap{}
	d.Status = false
	d.LastData = datatypes.JSONMap{}
	d.LastUpdated = now
	d.CreatedAt = now
	d.UpdatedAt = now
	return d, nil
}

// Validate enforces the device construction invariants.
func (d *Device) Validate() error {
	if d.Name == "" || d.RoomID == "" {
		return &DeviceError{reason: "device name and room id are required"}
	}
	if _, err := ParseDeviceType(string(d.Type)); err != nil {
		return err
	}
	return nil
}

// ValidateSettings enforces the invariants of a settings replacement.
func ValidateSettings(deviceID string, settings map[string]any) error {
	if deviceID == "" {
		return &DeviceError{reason: "device id cannot be empty"}
	}
	if settings == nil {
		return &DeviceError{reason: "settings must be a key-value mapping"}
	}
	return nil
}

// ValidateStatusUpdate enforces the invariants of a status change.
func ValidateStatusUpdate(deviceID string) error {
	if deviceID == "" {
		return &DeviceError{reason: "device id cannot be empty"}
	}
	return nil
}
