package ports

import (
	"context"

	"github.com/shs/smart-home-system/internal/core/domain"
)

// UserRepository defines persistence operations for users.
// Implementations map store-level absence onto domain.ErrUserNotFound.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, u *domain.User) error
	Delete(ctx context.Context, id string) error
}
