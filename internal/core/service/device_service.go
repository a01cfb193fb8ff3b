package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/datatypes"

	"github.com/shs/smart-home-system/internal/core/domain"
	"github.com/shs/smart-home-system/internal/core/ports"
)

// DeviceService implements ports.DeviceService on top of a DeviceRepository.
type DeviceService struct {
	repo   ports.DeviceRepository
	logger zerolog.Logger
}

func NewDeviceService(repo ports.DeviceRepository, logger zerolog.Logger) *DeviceService {
	return &DeviceService{repo: repo, logger: logger}
}

// Create validates the input and persists a new device. Settings default to
// an empty mapping when omitted; status starts off and last_data empty.
func (s *DeviceService) Create(ctx context.Context, in ports.DeviceInput) (*domain.Device, error) {
	deviceType, err := domain.ParseDeviceType(in.Type)
	if err != nil {
		return nil, err
	}
	device, err := domain.NewDevice(deviceType, in.Name, in.RoomID)
	if err != nil {
		return nil, err
	}
	if len(in.Settings) > 0 {
		device.Settings = datatypes.JSONMap(in.Settings)
	}
	if err := s.repo.Create(ctx, device); err != nil {
		s.logger.Error().Err(err).Msg("failed to create device")
		return nil, err
	}
	s.logger.Info().Str("device_id", device.ID).Str("room_id", device.RoomID).Msg("device created")
	return device, nil
}

func (s *DeviceService) Get(ctx context.Context, id string) (*domain.Device, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *DeviceService) ListByRoom(ctx context.Context, roomID string) ([]*domain.Device, error) {
	if roomID == "" {
		return nil, domain.NewDeviceError("room id cannot be empty")
	}
	return s.repo.ListByRoom(ctx, roomID)
}

// Update replaces type, name, room id, and settings of an existing device.
// Status and last observed data are owned by their dedicated operations.
func (s *DeviceService) Update(ctx context.Context, id string, in ports.DeviceInput) (*domain.Device, error) {
	device, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	deviceType, err := domain.ParseDeviceType(in.Type)
	if err != nil {
		return nil, err
	}
	device.Type = deviceType
	device.Name = in.Name
	device.RoomID = in.RoomID
	if in.Settings != nil {
		device.Settings = datatypes.JSONMap(in.Settings)
	}
	if err := device.Validate(); err != nil {
		return nil, err
	}
	device.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, device); err != nil {
		s.logger.Error().Err(err).Str("device_id", id).Msg("failed to update device")
		return nil, err
	}
	s.logger.Info().Str("device_id", id).Msg("device updated")
	return device, nil
}

func (s *DeviceService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("device_id", id).Msg("device deleted")
	return nil
}

// UpdateSettings replaces the stored settings document in full. Merge
// semantics are deliberately not provided.
func (s *DeviceService) UpdateSettings(ctx context.Context, id string, settings map[string]any) (*domain.Device, error) {
	if err := domain.ValidateSettings(id, settings); err != nil {
		return nil, err
	}
	device, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	device.Settings = datatypes.JSONMap(settings)
	device.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, device); err != nil {
		s.logger.Error().Err(err).Str("device_id", id).Msg("failed to update device settings")
		return nil, err
	}
	s.logger.Info().Str("device_id", id).Msg("device settings replaced")
	return device, nil
}

// UpdateStatus switches the device on or off and records when the change was
// observed.
func (s *DeviceService) UpdateStatus(ctx context.Context, id string, status bool) (*domain.Device, error) {
	if err := domain.ValidateStatusUpdate(id); err != nil {
		return nil, err
	}
	device, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	device.Status = status
	device.LastUpdated = now
	device.UpdatedAt = now
	if err := s.repo.Update(ctx, device); err != nil {
		s.logger.Error().Err(err).Str("device_id", id).Msg("failed to update device status")
		return nil, err
	}
	s.logger.Info().Str("device_id", id).Bool("status", status).Msg("device status updated")
	return device, nil
}
