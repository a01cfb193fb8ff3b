package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shs/smart-home-system/internal/api/metrics"
	"github.com/shs/smart-home-system/internal/core/ports"
)

// DeviceHandler handles HTTP requests for device operations.
type DeviceHandler struct {
	service ports.DeviceService
}

func NewDeviceHandler(service ports.DeviceService) *DeviceHandler {
	return &DeviceHandler{service: service}
}

// Create handles POST /v1/devices.
//
// @Summary      Create a new device
// @Tags         devices
// @Accept       json
// @Produce      json
// @Param        body  body      deviceRequest  true  "Device details"
// @Success      201   {object}  deviceResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /v1/devices [post]
func (h *DeviceHandler) Create(c echo.Context) error {
	var req deviceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	device, err := h.service.Create(c.Request().Context(), ports.DeviceInput{
		Type:     req.Type,
		Name:     req.Name,
		RoomID:   req.RoomID,
		Settings: req.Settings,
	})
	if err != nil {
		return err
	}

	metrics.EntitiesCreatedTotal.WithLabelValues("device").Inc()
	return c.JSON(http.StatusCreated, toDeviceResponse(device))
}

// Get handles GET /v1/devices/:id.
//
// @Summary      Get a device by id
// @Tags         devices
// @Produce      json
// @Param        id   path      string  true  "Device id"
// @Success      200  {object}  deviceResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/devices/{id} [get]
func (h *DeviceHandler) Get(c echo.Context) error {
	device, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toDeviceResponse(device))
}

// Update handles PUT /v1/devices/:id.
//
// @Summary      Replace a device
// @Tags         devices
// @Accept       json
// @Produce      json
// @Param        id    path      string         true  "Device id"
// @Param        body  body      deviceRequest  true  "Full device details"
// @Success      200   {object}  deviceResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/devices/{id} [put]
func (h *DeviceHandler) Update(c echo.Context) error {
	var req deviceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	device, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.DeviceInput{
		Type:     req.Type,
		Name:     req.Name,
		RoomID:   req.RoomID,
		Settings: req.Settings,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toDeviceResponse(device))
}

// UpdateSettings handles PATCH /v1/devices/:id/settings. The given document
// replaces the stored settings in full.
//
// @Summary      Replace a device's settings
// @Tags         devices
// @Accept       json
// @Produce      json
// @Param        id    path      string                 true  "Device id"
// @Param        body  body      deviceSettingsRequest  true  "New settings document"
// @Success      200   {object}  deviceResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/devices/{id}/settings [patch]
func (h *DeviceHandler) UpdateSettings(c echo.Context) error {
	var req deviceSettingsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "settings must be a key-value mapping")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	device, err := h.service.UpdateSettings(c.Request().Context(), c.Param("id"), req.Settings)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toDeviceResponse(device))
}

// UpdateStatus handles PATCH /v1/devices/:id/status.
//
// @Summary      Switch a device on or off
// @Tags         devices
// @Accept       json
// @Produce      json
// @Param        id    path      string               true  "Device id"
// @Param        body  body      deviceStatusRequest  true  "New status"
// @Success      200   {object}  deviceResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/devices/{id}/status [patch]
func (h *DeviceHandler) UpdateStatus(c echo.Context) error {
	var req deviceStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "status must be a boolean value")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	device, err := h.service.UpdateStatus(c.Request().Context(), c.Param("id"), *req.Status)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toDeviceResponse(device))
}

// Delete handles DELETE /v1/devices/:id.
//
// @Summary      Delete a device
// @Tags         devices
// @Produce      json
// @Param        id   path      string  true  "Device id"
// @Success      200  {object}  deleteResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/devices/{id} [delete]
func (h *DeviceHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	metrics.EntitiesDeletedTotal.WithLabelValues("device").Inc()
	return c.JSON(http.StatusOK, deleteResponse{Detail: "Device deleted"})
}
