package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/shs/smart-home-system/internal/core/domain"
	"github.com/shs/smart-home-system/internal/core/ports"
)

type stubRoomRepo struct {
	byID map[string]*domain.Room
}

func newStubRoomRepo() *stubRoomRepo {
	return &stubRoomRepo{byID: make(map[string]*domain.Room)}
}

func (r *stubRoomRepo) Create(_ context.Context, room *domain.Room) error {
	clone := *room
	r.byID[room.ID] = &clone
	return nil
}

func (r *stubRoomRepo) FindByID(_ context.Context, id string) (*domain.Room, error) {
	room, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrRoomNotFound
	}
	clone := *room
	return &clone, nil
}

func (r *stubRoomRepo) ListByHouse(_ context.Context, houseID string) ([]*domain.Room, error) {
	var rooms []*domain.Room
	for _, room := range r.byID {
		if room.HouseID == houseID {
			clone := *room
			rooms = append(rooms, &clone)
		}
	}
	return rooms, nil
}

func (r *stubRoomRepo) Update(_ context.Context, room *domain.Room) error {
	if _, ok := r.byID[room.ID]; !ok {
		return domain.ErrRoomNotFound
	}
	clone := *room
	r.byID[room.ID] = &clone
	return nil
}

func (r *stubRoomRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrRoomNotFound
	}
	delete(r.byID, id)
	return nil
}

func validRoomInput() ports.RoomInput {
	return ports.RoomInput{
		Name:    "Master bedroom",
		Floor:   1,
		Size:    22.5,
		HouseID: "house-1",
		Type:    "bedroom",
	}
}

func TestRoomService_CreateAndGet(t *testing.T) {
	svc := NewRoomService(newStubRoomRepo(), zerolog.Nop())

	created, err := svc.Create(context.Background(), validRoomInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := svc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Type != domain.RoomBedroom || got.HouseID != "house-1" {
		t.Fatalf("unexpected room: %+v", got)
	}
}

func TestRoomService_CreateRejectsUnknownType(t *testing.T) {
	svc := NewRoomService(newStubRoomRepo(), zerolog.Nop())

	in := validRoomInput()
	in.Type = "garage"
	if _, err := svc.Create(context.Background(), in); err == nil {
		t.Fatal("unknown room type accepted")
	}
}

func TestRoomService_ListByHouse(t *testing.T) {
	svc := NewRoomService(newStubRoomRepo(), zerolog.Nop())

	for _, houseID := range []string{"house-1", "house-1", "house-2"} {
		in := validRoomInput()
		in.HouseID = houseID
		if _, err := svc.Create(context.Background(), in); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	rooms, err := svc.ListByHouse(context.Background(), "house-1")
	if err != nil {
		t.Fatalf("ListByHouse: %v", err)
	}
	if len(rooms) != 2 {
		t.Fatalf("expected 2 rooms, got %d", len(rooms))
	}

	// Listing against an unknown house is not an error, just empty.
	rooms, err = svc.ListByHouse(context.Background(), "house-99")
	if err != nil {
		t.Fatalf("ListByHouse: %v", err)
	}
	if len(rooms) != 0 {
		t.Fatalf("expected no rooms, got %d", len(rooms))
	}
}

func TestRoomService_ListByHouseRejectsEmptyID(t *testing.T) {
	svc := NewRoomService(newStubRoomRepo(), zerolog.Nop())

	_, err := svc.ListByHouse(context.Background(), "")
	if err == nil {
		t.Fatal("empty house id accepted")
	}
	if !domain.IsDomainError(err) {
		t.Fatalf("error is not a validation failure: %v", err)
	}
}

func TestRoomService_UpdateMovesRoomBetweenHouses(t *testing.T) {
	svc := NewRoomService(newStubRoomRepo(), zerolog.Nop())

	created, err := svc.Create(context.Background(), validRoomInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	in := validRoomInput()
	in.HouseID = "house-2"
	in.Type = "other"
	updated, err := svc.Update(context.Background(), created.ID, in)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.HouseID != "house-2" || updated.Type != domain.RoomOther {
		t.Fatalf("fields not replaced: %+v", updated)
	}
}

func TestRoomService_UpdateMissingRoom(t *testing.T) {
	svc := NewRoomService(newStubRoomRepo(), zerolog.Nop())

	_, err := svc.Update(context.Background(), "missing", validRoomInput())
	if !errors.Is(err, domain.ErrRoomNotFound) {
		t.Fatalf("expected not-found, got %v", err)
	}
}
