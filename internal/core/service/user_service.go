package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/pizzeria-brothers/restaurant-system/internal/core/domain"
	"github.com/pizzeria-brothers/restaurant-system/internal/core/ports"
)

// UserService implements profile use cases.
type UserService struct {
	repo ports.UserRepository
	log  zerolog.Logger
}

func NewUserService(repo ports.UserRepository, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, log: log}
}

func (s *UserService) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.Public(), nil
}

// UpdateProfile changes the caller's own display fields. Username and role
// are not mutable through this path.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, update ports.UserUpdate) (*domain.User, error) {
	if update.Nombre == "" || update.Apellido == "" {
		return nil, domain.ErrInvalidInput
	}

	updated, err := s.repo.Update(ctx, userID, update)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", userID).Msg("perfil actualizado")
	return updated.Public(), nil
}

func (s *UserService) ListAll(ctx context.Context) ([]*domain.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*domain.User, len(users))
	for i, u := range users {
		out[i] = u.Public()
	}
	return out, nil
}
