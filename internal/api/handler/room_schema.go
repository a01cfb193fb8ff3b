package handler

import (
	"time"

	"github.com/shs/smart-home-system/internal/core/domain"
)

type roomRequest struct {
	Name    string  `json:"name"     validate:"required"`
	Floor   int     `json:"floor"`
	Size    float64 `json:"size"`
	HouseID string  `json:"house_id" validate:"required"`
	Type    string  `json:"type"     validate:"required"`
}

type roomResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Floor     int       `json:"floor"`
	Size      float64   `json:"size"`
	HouseID   string    `json:"house_id"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toRoomResponse(r *domain.Room) roomResponse {
	return roomResponse{
		ID:        r.ID,
		Name:      r.Name,
		Floor:     r.Floor,
		Size:      r.Size,
		HouseID:   r.HouseID,
		Type:      string(r.Type),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
