package handler

import (
	"time"

	"github.com/shs/smart-home-system/internal/core/domain"
)

type userRequest struct {
	Name        string `json:"name"         validate:"required"`
	Username    string `json:"username"     validate:"required"`
	PhoneNumber string `json:"phone_number" validate:"required"`
	Email       string `json:"email"        validate:"required"`
	Privilege   string `json:"privilege"    validate:"required"`
}

// Response-only type owned by the transport layer; the JSON contract is not
// coupled to internal entity changes. Enum fields always carry the canonical
// string form.
type userResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Username    string    `json:"username"`
	PhoneNumber string    `json:"phone_number"`
	Email       string    `json:"email"`
	Privilege   string    `json:"privilege"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:          u.ID,
		Name:        u.Name,
		Username:    u.Username,
		PhoneNumber: u.PhoneNumber,
		Email:       u.Email,
		Privilege:   string(u.Privilege),
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
