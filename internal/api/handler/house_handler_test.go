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

type stubHouseService struct {
	createFn func(in ports.HouseInput) (*domain.House, error)
	getFn    func(id string) (*domain.House, error)
	updateFn func(id string, in ports.HouseInput) (*domain.House, error)
	deleteFn func(id string) error
}

func (s *stubHouseService) Create(_ context.Context, in ports.HouseInput) (*domain.House, error) {
	return s.createFn(in)
}

func (s *stubHouseService) Get(_ context.Context, id string) (*domain.House, error) {
	return s.getFn(id)
}

func (s *stubHouseService) Update(_ context.Context, id string, in ports.HouseInput) (*domain.House, error) {
	return s.updateFn(id, in)
}

func (s *stubHouseService) Delete(_ context.Context, id string) error {
	return s.deleteFn(id)
}

type stubRoomService struct {
	createFn func(in ports.RoomInput) (*domain.Room, error)
	getFn    func(id string) (*domain.Room, error)
	listFn   func(houseID string) ([]*domain.Room, error)
	updateFn func(id string, in ports.RoomInput) (*domain.Room, error)
	deleteFn func(id string) error
}

func (s *stubRoomService) Create(_ context.Context, in ports.RoomInput) (*domain.Room, error) {
	return s.createFn(in)
}

func (s *stubRoomService) Get(_ context.Context, id string) (*domain.Room, error) {
	return s.getFn(id)
}

func (s *stubRoomService) ListByHouse(_ context.Context, houseID string) ([]*domain.Room, error) {
	return s.listFn(houseID)
}

func (s *stubRoomService) Update(_ context.Context, id string, in ports.RoomInput) (*domain.Room, error) {
	return s.updateFn(id, in)
}

func (s *stubRoomService) Delete(_ context.Context, id string) error {
	return s.deleteFn(id)
}

func sampleHouse() *domain.House {
	now := time.Now().UTC()
	return &domain.House{
		ID:            "h-1",
		Name:          "Canal House",
		Address:       "12 Prinsengracht",
		Location:      domain.Location{Latitude: 52.37, Longitude: 4.89},
		OwnerIDs:      datatypes.NewJSONSlice([]string{"owner-1"}),
		OccupantCount: 3,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func TestHouseHandler_Create(t *testing.T) {
	svc := &stubHouseService{
		createFn: func(in ports.HouseInput) (*domain.House, error) {
			assert.Equal(t, 52.37, in.Latitude)
			assert.Equal(t, []string{"owner-1"}, in.OwnerIDs)
			return sampleHouse(), nil
		},
	}
	h := handler.NewHouseHandler(svc, &stubRoomService{})

	body := `{"name":"Canal House","address":"12 Prinsengracht","latitude":52.37,"longitude":4.89,"owner_ids":["owner-1"],"occupant_count":3}`
	c, rec, errHandler := newTestContext(t, http.MethodPost, "/v1/houses", body)
	if err := h.Create(c); err != nil {
		errHandler(err, c)
	}

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"latitude":52.37`)
	assert.Contains(t, rec.Body.String(), `"owner_ids":["owner-1"]`)
}

func TestHouseHandler_CreateInvalidLocation(t *testing.T) {
	svc := &stubHouseService{
		createFn: func(ports.HouseInput) (*domain.House, error) {
			return nil, domain.NewHouseError("invalid location")
		},
	}
	h := handler.NewHouseHandler(svc, &stubRoomService{})

	body := `{"name":"X","address":"Y","latitude":123.0,"longitude":4.89,"owner_ids":["o"],"occupant_count":1}`
	c, rec, errHandler := newTestContext(t, http.MethodPost, "/v1/houses", body)
	if err := h.Create(c); err != nil {
		errHandler(err, c)
	}

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid location")
}

func TestHouseHandler_GetNotFound(t *testing.T) {
	svc := &stubHouseService{
		getFn: func(string) (*domain.House, error) { return nil, domain.ErrHouseNotFound },
	}
	h := handler.NewHouseHandler(svc, &stubRoomService{})

	c, rec, errHandler := newTestContext(t, http.MethodGet, "/v1/houses/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")
	if err := h.Get(c); err != nil {
		errHandler(err, c)
	}

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "house not found")
}

func TestHouseHandler_ListRooms(t *testing.T) {
	now := time.Now().UTC()
	rooms := &stubRoomService{
		listFn: func(houseID string) ([]*domain.Room, error) {
			assert.Equal(t, "h-1", houseID)
			return []*domain.Room{
				{ID: "r-1", Name: "Kitchen", Size: 12, HouseID: "h-1", Type: domain.RoomKitchen, CreatedAt: now, UpdatedAt: now},
				{ID: "r-2", Name: "Hall", Size: 6, HouseID: "h-1", Type: domain.RoomHallway, CreatedAt: now, UpdatedAt: now},
			}, nil
		},
	}
	h := handler.NewHouseHandler(&stubHouseService{}, rooms)

	c, rec, errHandler := newTestContext(t, http.MethodGet, "/v1/houses/h-1/rooms", "")
	c.SetParamNames("id")
	c.SetParamValues("h-1")
	if err := h.ListRooms(c); err != nil {
		errHandler(err, c)
	}

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"r-1"`)
	assert.Contains(t, rec.Body.String(), `"type":"hallway"`)
}

func TestHouseHandler_ListRoomsEmpty(t *testing.T) {
	rooms := &stubRoomService{
		listFn: func(string) ([]*domain.Room, error) { return nil, nil },
	}
	h := handler.NewHouseHandler(&stubHouseService{}, rooms)

	c, rec, errHandler := newTestContext(t, http.MethodGet, "/v1/houses/h-9/rooms", "")
	c.SetParamNames("id")
	c.SetParamValues("h-9")
	if err := h.ListRooms(c); err != nil {
		errHandler(err, c)
	}

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]\n", rec.Body.String())
}

func TestHouseHandler_Delete(t *testing.T) {
	svc := &stubHouseService{
		deleteFn: func(id string) error {
			assert.Equal(t, "h-1", id)
			return nil
		},
	}
	h := handler.NewHouseHandler(svc, &stubRoomService{})

	c, rec, errHandler := newTestContext(t, http.MethodDelete, "/v1/houses/h-1", "")
	c.SetParamNames("id")
	c.SetParamValues("h-1")
	if err := h.Delete(c); err != nil {
		errHandler(err, c)
	}

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "House deleted")
}
