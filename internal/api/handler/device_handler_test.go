package handler_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/shs/smart-home-system/internal/api/handler"
	"github.com/shs/smart-home-system/internal/core/domain"
	"github.com/shs/smart-home-system/internal/core/ports"
)

type stubDeviceService struct {
	createFn         func(in ports.DeviceInput) (*domain.Device, error)
	getFn            func(id string) (*domain.Device, error)
	listFn           func(roomID string) ([]*domain.Device, error)
	updateFn         func(id string, in ports.DeviceInput) (*domain.Device, error)
	deleteFn         func(id string) error
	updateSettingsFn func(id string, settings map[string]any) (*domain.Device, error)
	updateStatusFn   func(id string, status bool) (*domain.Device, error)
}

func (s *stubDeviceService) Create(_ context.Context, in ports.DeviceInput) (*domain.Device, error) {
	return s.createFn(in)
}

func (s *stubDeviceService) Get(_ context.Context, id string) (*domain.Device, error) {
	return s.getFn(id)
}

func (s *stubDeviceService) ListByRoom(_ context.Context, roomID string) ([]*domain.Device, error) {
	return s.listFn(roomID)
}

func (s *stubDeviceService) Update(_ context.Context, id string, in ports.DeviceInput) (*domain.Device, error) {
	return s.updateFn(id, in)
}

func (s *stubDeviceService) Delete(_ context.Context, id string) error {
	return s.deleteFn(id)
}

func (s *stubDeviceService) UpdateSettings(_ context.Context, id string, settings map[string]any) (*domain.Device, error) {
	return s.updateSettingsFn(id, settings)
}

func (s *stubDeviceService) UpdateStatus(_ context.Context, id string, status bool) (*domain.Device, error) {
	return s.updateStatusFn(id, status)
}

func sampleDevice() *domain.Device {
	now := time.Now().UTC()
	return &domain.Device{
		ID:          "d-1",
		Type:        domain.DeviceThermostat,
		Name:        "Hallway thermostat",
		RoomID:      "r-1",
		Settings:    datatypes.JSONMap{"target": 19.5},
		Status:      false,
		LastData:    datatypes.JSONMap{},
		LastUpdated: now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestDeviceHandler_Create(t *testing.T) {
	svc := &stubDeviceService{
		createFn: func(in ports.DeviceInput) (*domain.Device, error) {
			assert.Equal(t, "thermostat", in.Type)
			assert.Equal(t, 19.5, in.Settings["target"])
			return sampleDevice(), nil
		},
	}
	h := handler.NewDeviceHandler(svc)

	body := `{"type":"thermostat","name":"Hallway thermostat","room_id":"r-1","settings":{"target":19.5}}`
	c, rec, errHandler := newTestContext(t, http.MethodPost, "/v1/devices", body)
	if err := h.Create(c); err != nil {
		errHandler(err, c)
	}

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"type":"thermostat"`)
	assert.Contains(t, rec.Body.String(), `"status":false`)
}

func TestDeviceHandler_CreateWithoutSettings(t *testing.T) {
	svc := &stubDeviceService{
		createFn: func(in ports.DeviceInput) (*domain.Device, error) {
			assert.Nil(t, in.Settings)
			d := sampleDevice()
			d.Settings = datatypes.JSONMap{}
			return d, nil
		},
	}
	h := handler.NewDeviceHandler(svc)

	body := `{"type":"thermostat","name":"Hallway thermostat","room_id":"r-1"}`
	c, rec, errHandler := newTestContext(t, http.MethodPost, "/v1/devices", body)
	if err := h.Create(c); err != nil {
		errHandler(err, c)
	}

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"settings":{}`)
}

func TestDeviceHandler_GetNotFound(t *testing.T) {
	h := handler.NewDeviceHandler(&stubDeviceService{
		getFn: func(string) (*domain.Device, error) { return nil, domain.ErrDeviceNotFound },
	})

	c, rec, errHandler := newTestContext(t, http.MethodGet, "/v1/devices/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")
	if err := h.Get(c); err != nil {
		errHandler(err, c)
	}

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "device not found")
}

func TestDeviceHandler_UpdateSettings(t *testing.T) {
	h := handler.NewDeviceHandler(&stubDeviceService{
		updateSettingsFn: func(id string, settings map[string]any) (*domain.Device, error) {
			assert.Equal(t, "d-1", id)
			assert.Equal(t, map[string]any{"target": 21.0}, settings)
			d := sampleDevice()
			d.Settings = datatypes.JSONMap(settings)
			return d, nil
		},
	})

	c, rec, errHandler := newTestContext(t, http.MethodPatch, "/v1/devices/d-1/settings", `{"settings":{"target":21.0}}`)
	c.SetParamNames("id")
	c.SetParamValues("d-1")
	if err := h.UpdateSettings(c); err != nil {
		errHandler(err, c)
	}

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"target":21`)
}

func TestDeviceHandler_UpdateSettingsMissingBody(t *testing.T) {
	h := handler.NewDeviceHandler(&stubDeviceService{
		updateSettingsFn: func(string, map[string]any) (*domain.Device, error) {
			t.Fatal("service reached despite invalid payload")
			return nil, nil
		},
	})

	c, rec, errHandler := newTestContext(t, http.MethodPatch, "/v1/devices/d-1/settings", `{}`)
	c.SetParamNames("id")
	c.SetParamValues("d-1")
	if err := h.UpdateSettings(c); err != nil {
		errHandler(err, c)
	}

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeviceHandler_UpdateStatus(t *testing.T) {
	h := handler.NewDeviceHandler(&stubDeviceService{
		updateStatusFn: func(id string, status bool) (*domain.Device, error) {
			assert.Equal(t, "d-1", id)
			assert.True(t, status)
			d := sampleDevice()
			d.Status = status
			return d, nil
		},
	})

	c, rec, errHandler := newTestContext(t, http.MethodPatch, "/v1/devices/d-1/status", `{"status":true}`)
	c.SetParamNames("id")
	c.SetParamValues("d-1")
	if err := h.UpdateStatus(c); err != nil {
		errHandler(err, c)
	}

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":true`)
}

func TestDeviceHandler_UpdateStatusFalseIsValid(t *testing.T) {
	h := handler.NewDeviceHandler(&stubDeviceService{
		updateStatusFn: func(id string, status bool) (*domain.Device, error) {
			assert.False(t, status)
			return sampleDevice(), nil
		},
	})

	c, rec, errHandler := newTestContext(t, http.MethodPatch, "/v1/devices/d-1/status", `{"status":false}`)
	c.SetParamNames("id")
	c.SetParamValues("d-1")
	if err := h.UpdateStatus(c); err != nil {
		errHandler(err, c)
	}

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestDeviceHandler_UpdateStatusRejectsNonBoolean(t *testing.T) {
	h := handler.NewDeviceHandler(&stubDeviceService{
		updateStatusFn: func(string, bool) (*domain.Device, error) {
			t.Fatal("service reached despite invalid payload")
			return nil, nil
		},
	})

	for _, body := range []string{`{"status":"on"}`, `{"status":1}`, `{}`} {
		c, rec, errHandler := newTestContext(t, http.MethodPatch, "/v1/devices/d-1/status", body)
		c.SetParamNames("id")
		c.SetParamValues("d-1")
		if err := h.UpdateStatus(c); err != nil {
			errHandler(err, c)
		}
		require.Equalf(t, http.StatusBadRequest, rec.Code, "body %s", body)
	}
}

func TestDeviceHandler_Delete(t *testing.T) {
	h := handler.NewDeviceHandler(&stubDeviceService{
		deleteFn: func(id string) error {
			assert.Equal(t, "d-1", id)
			return nil
		},
	})

	c, rec, errHandler := newTestContext(t, http.MethodDelete, "/v1/devices/d-1", "")
	c.SetParamNames("id")
	c.SetParamValues("d-1")
	if err := h.Delete(c); err != nil {
		errHandler(err, c)
	}

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Device deleted")
}
