package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shs/smart-home-system/internal/api/metrics"
	"github.com/shs/smart-home-system/internal/core/ports"
)

// HouseHandler handles HTTP requests for house operations.
type HouseHandler struct {
	service ports.HouseService
	rooms   ports.RoomService
}

func NewHouseHandler(service ports.HouseService, rooms ports.RoomService) *HouseHandler {
	return &HouseHandler{service: service, rooms: rooms}
}

// Create handles POST /v1/houses.
//
// @Summary      Create a new house
// @Tags         houses
// @Accept       json
// @Produce      json
// @Param        body  body      houseRequest  true  "House details"
// @Success      201   {object}  houseResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /v1/houses [post]
func (h *HouseHandler) Create(c echo.Context) error {
	var req houseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	house, err := h.service.Create(c.Request().Context(), ports.HouseInput{
		Name:          req.Name,
		Address:       req.Address,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		OwnerIDs:      req.OwnerIDs,
		OccupantCount: req.OccupantCount,
	})
	if err != nil {
		return err
	}

	metrics.EntitiesCreatedTotal.WithLabelValues("house").Inc()
	return c.JSON(http.StatusCreated, toHouseResponse(house))
}

// Get handles GET /v1/houses/:id.
//
// @Summary      Get a house by id
// @Tags         houses
// @Produce      json
// @Param        id   path      string  true  "House id"
// @Success      200  {object}  houseResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/houses/{id} [get]
func (h *HouseHandler) Get(c echo.Context) error {
	house, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toHouseResponse(house))
}

// ListRooms handles GET /v1/houses/:id/rooms. The house id is not resolved:
// an unknown id yields an empty list, mirroring the lack of referential
// integrity elsewhere.
//
// @Summary      List the rooms of a house
// @Tags         houses
// @Produce      json
// @Param        id   path      string  true  "House id"
// @Success      200  {array}   roomResponse
// @Router       /v1/houses/{id}/rooms [get]
func (h *HouseHandler) ListRooms(c echo.Context) error {
	rooms, err := h.rooms.ListByHouse(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	resp := make([]roomResponse, 0, len(rooms))
	for _, r := range rooms {
		resp = append(resp, toRoomResponse(r))
	}
	return c.JSON(http.StatusOK, resp)
}

// Update handles PUT /v1/houses/:id.
//
// @Summary      Replace a house
// @Tags         houses
// @Accept       json
// @Produce      json
// @Param        id    path      string        true  "House id"
// @Param        body  body      houseRequest  true  "Full house details"
// @Success      200   {object}  houseResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/houses/{id} [put]
func (h *HouseHandler) Update(c echo.Context) error {
	var req houseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	house, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.HouseInput{
		Name:          req.Name,
		Address:       req.Address,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		OwnerIDs:      req.OwnerIDs,
		OccupantCount: req.OccupantCount,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toHouseResponse(house))
}

// Delete handles DELETE /v1/houses/:id. Rooms and devices referencing the
// house are left in place.
//
// @Summary      Delete a house
// @Tags         houses
// @Produce      json
// @Param        id   path      string  true  "House id"
// @Success      200  {object}  deleteResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/houses/{id} [delete]
func (h *HouseHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	metrics.EntitiesDeletedTotal.WithLabelValues("house").Inc()
	return c.JSON(http.StatusOK, deleteResponse{Detail: "House deleted"})
}
