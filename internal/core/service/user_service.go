package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/shs/smart-home-system/internal/core/domain"
	"github.com/shs/smart-home-system/internal/core/ports"
)

// UserService implements ports.UserService on top of a UserRepository.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

// Create validates the input and persists a new user.
func (s *UserService) Create(ctx context.Context, in ports.UserInput) (*domain.User, error) {
	privilege, err := domain.ParsePrivilege(in.Privilege)
	if err != nil {
		return nil, err
	}
	user, err := domain.NewUser(in.Name, in.Username, in.PhoneNumber, in.Email, privilege)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, user); err != nil {
		s.logger.Error().Err(err).Msg("failed to create user")
		return nil, err
	}
	s.logger.Info().Str("user_id", user.ID).Str("username", user.Username).Msg("user created")
	return user, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// Update replaces every caller-supplied field of an existing user. The id and
// creation timestamp are preserved; updated_at is bumped. Nothing is persisted
// when validation fails.
func (s *UserService) Update(ctx context.Context, id string, in ports.UserInput) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	privilege, err := domain.ParsePrivilege(in.Privilege)
	if err != nil {
		return nil, err
	}
	user.Name = in.Name
	user.Username = in.Username
	user.PhoneNumber = in.PhoneNumber
	user.Email = in.Email
	user.Privilege = privilege
	if err := user.Validate(); err != nil {
		return nil, err
	}
	user.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, user); err != nil {
		s.logger.Error().Err(err).Str("user_id", id).Msg("failed to update user")
		return nil, err
	}
	s.logger.Info().Str("user_id", id).Msg("user updated")
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", id).Msg("user deleted")
	return nil
}
