package ports

import (
	"context"

	"github.com/shs/smart-home-system/internal/core/domain"
)

// UserInput carries the full field mapping for creating or replacing a user.
// Privilege arrives as a raw string and is parsed against the canonical
// vocabulary by the service; no normalisation is applied.
type UserInput struct {
	Name        string
	Username    string
	PhoneNumber string
	Email       string
	Privilege   string
}

// UserService defines use-case operations for users.
type UserService interface {
	Create(ctx context.Context, in UserInput) (*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, id string, in UserInput) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
