package domain

// Privilege represents a user's access level in the system.
type Privilege string

const (
	PrivilegeAdmin   Privilege = "admin"
	PrivilegeRegular Privilege = "regular"
	PrivilegeGuest   Privilege = "guest"
)

// RoomType classifies a room by its function.
type RoomType string

const (
	RoomBedroom    RoomType = "bedroom"
	RoomBathroom   RoomType = "bathroom"
	RoomKitchen    RoomType = "kitchen"
	RoomLivingRoom RoomType = "living_room"
	RoomHallway    RoomType = "hallway"
	RoomOther      RoomType = "other"
)

// DeviceType classifies a device by its hardware kind.
type DeviceType string

const (
	DeviceLight      DeviceType = "light"
	DeviceThermostat DeviceType = "thermostat"
	DeviceCamera     DeviceType = "camera"
	DeviceLock       DeviceType = "lock"
	DeviceSensor     DeviceType = "sensor"
	DeviceOther      DeviceType = "other"
)

// ParsePrivilege converts a raw string to a Privilege. Matching is exact and
// case-sensitive; anything outside the closed set fails with a UserError.
func ParsePrivilege(s string) (Privilege, error) {
	switch p := Privilege(s); p {
	case PrivilegeAdmin, PrivilegeRegular, PrivilegeGuest:
		return p, nil
	}
	return "", &UserError{reason: "invalid privilege: " + s}
}

// ParseRoomType converts a raw string to a RoomType, failing with a RoomError
// for values outside the closed set.
func ParseRoomType(s string) (RoomType, error) {
	switch t := RoomType(s); t {
	case RoomBedroom, RoomBathroom, RoomKitchen, RoomLivingRoom, RoomHallway, RoomOther:
		return t, nil
	}
	return "", &RoomError{reason: "invalid room type: " + s}
}

// ParseDeviceType converts a raw string to a DeviceType, failing with a
// DeviceError for values outside the closed set.
func ParseDeviceType(s string) (DeviceType, error) {
	switch t := DeviceType(s); t {
	case DeviceLight, DeviceThermostat, DeviceCamera, DeviceLock, DeviceSensor, DeviceOther:
		return t, nil
	}
	return "", &DeviceError{reason: "invalid device type: " + s}
}

// Privileges returns every accepted privilege value in canonical order.
func Privileges() []Privilege {
	return []Privilege{PrivilegeAdmin, PrivilegeRegular, PrivilegeGuest}
}

// RoomTypes returns every accepted room type in canonical order.
func RoomTypes() []RoomType {
	return []RoomType{RoomBedroom, RoomBathroom, RoomKitchen, RoomLivingRoom, RoomHallway, RoomOther}
}

// DeviceTypes returns every accepted device type in canonical order.
func DeviceTypes() []DeviceType {
	return []DeviceType{DeviceLight, DeviceThermostat, DeviceCamera, DeviceLock, DeviceSensor, DeviceOther}
}
