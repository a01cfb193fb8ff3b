package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shs/smart-home-system/internal/api/metrics"
	"github.com/shs/smart-home-system/internal/core/ports"
)

// RoomHandler handles HTTP requests for room operations.
type RoomHandler struct {
	service ports.RoomService
	devices ports.DeviceService
}

func NewRoomHandler(service ports.RoomService, devices ports.DeviceService) *RoomHandler {
	return &RoomHandler{service: service, devices: devices}
}

// Create handles POST /v1/rooms.
//
// @Summary      Create a new room
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Param        body  body      roomRequest  true  "Room details"
// @Success      201   {object}  roomResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /v1/rooms [post]
func (h *RoomHandler) Create(c echo.Context) error {
	var req roomRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	room, err := h.service.Create(c.Request().Context(), ports.RoomInput{
		Name:    req.Name,
		Floor:   req.Floor,
		Size:    req.Size,
		HouseID: req.HouseID,
		Type:    req.Type,
	})
	if err != nil {
		return err
	}

	metrics.EntitiesCreatedTotal.WithLabelValues("room").Inc()
	return c.JSON(http.StatusCreated, toRoomResponse(room))
}

// Get handles GET /v1/rooms/:id.
//
// @Summary      Get a room by id
// @Tags         rooms
// @Produce      json
// @Param        id   path      string  true  "Room id"
// @Success      200  {object}  roomResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/rooms/{id} [get]
func (h *RoomHandler) Get(c echo.Context) error {
	room, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRoomResponse(room))
}

// ListDevices handles GET /v1/rooms/:id/devices.
//
// @Summary      List the devices of a room
// @Tags         rooms
// @Produce      json
// @Param        id   path      string  true  "Room id"
// @Success      200  {array}   deviceResponse
// @Router       /v1/rooms/{id}/devices [get]
func (h *RoomHandler) ListDevices(c echo.Context) error {
	devices, err := h.devices.ListByRoom(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	resp := make([]deviceResponse, 0, len(devices))
	for _, d := range devices {
		resp = append(resp, toDeviceResponse(d))
	}
	return c.JSON(http.StatusOK, resp)
}

// Update handles PUT /v1/rooms/:id.
//
// @Summary      Replace a room
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Param        id    path      string       true  "Room id"
// @Param        body  body      roomRequest  true  "Full room details"
// @Success      200   {object}  roomResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/rooms/{id} [put]
func (h *RoomHandler) Update(c echo.Context) error {
	var req roomRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	room, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.RoomInput{
		Name:    req.Name,
		Floor:   req.Floor,
		Size:    req.Size,
		HouseID: req.HouseID,
		Type:    req.Type,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRoomResponse(room))
}

// Delete handles DELETE /v1/rooms/:id.
//
// @Summary      Delete a room
// @Tags         rooms
// @Produce      json
// @Param        id   path      string  true  "Room id"
// @Success      200  {object}  deleteResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/rooms/{id} [delete]
func (h *RoomHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	metrics.EntitiesDeletedTotal.WithLabelValues("room").Inc()
	return c.JSON(http.StatusOK, deleteResponse{Detail: "Room deleted"})
}
