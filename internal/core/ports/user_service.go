package ports

import (
	"context"

	"github.com/pizzeria-brothers/restaurant-system/internal/core/domain"
)

// UserService defines profile use cases for authenticated users.
type UserService interface {
	GetProfile(ctx context.Context, userID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID string, update UserUpdate) (*domain.User, error)
	// ListAll returns every account; restricted to administrators at the
	// API layer.
	ListAll(ctx context.Context) ([]*domain.User, error)
}
