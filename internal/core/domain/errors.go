package domain

import "errors"

// Not-found sentinels. Absence is a distinct condition from invalid input and
// maps to 404 at the transport boundary.
var (
	ErrUserNotFound   = errors.New("user not found")
	ErrHouseNotFound  = errors.New("house not found")
	ErrRoomNotFound   = errors.New("room not found")
	ErrDeviceNotFound = errors.New("device not found")
)

// DomainError marks a validation failure caused by malformed caller input.
// These errors are non-retryable and map to 400 at the transport boundary.
type DomainError interface {
	error
	domainError()
}

// UserError reports a violated user construction invariant.
type UserError struct{ reason string }

func (e *UserError) Error() string { return "user: " + e.reason }
func (e *UserError) domainError()  {}

// HouseError reports a violated house construction invariant.
type HouseError struct{ reason string }

func (e *HouseError) Error() string { return "house: " + e.reason }
func (e *HouseError) domainError()  {}

// RoomError reports a violated room construction invariant.
type RoomError struct{ reason string }

func (e *RoomError) Error() string { return "room: " + e.reason }
func (e *RoomError) domainError()  {}

// DeviceError reports a violated device construction invariant.
type DeviceError struct{ reason string }

func (e *DeviceError) Error() string { return "device: " + e.reason }
func (e *DeviceError) domainError()  {}

// NewUserError builds a UserError with the given reason.
func NewUserError(reason string) *UserError { return &UserError{reason: reason} }

// NewHouseError builds a HouseError with the given reason.
func NewHouseError(reason string) *HouseError { return &HouseError{reason: reason} }

// NewRoomError builds a RoomError with the given reason.
func NewRoomError(reason string) *RoomError { return &RoomError{reason: reason} }

// NewDeviceError builds a DeviceError with the given reason.
func NewDeviceError(reason string) *DeviceError { return &DeviceError{reason: reason} }

// IsDomainError reports whether err (or anything it wraps) is a validation
// failure rather than an infrastructure or absence condition.
func IsDomainError(err error) bool {
	var de DomainError
	return errors.As(err, &de)
}
