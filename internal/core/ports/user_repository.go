package ports

import (
	"context"

	"github.com/pizzeria-brothers/restaurant-system/internal/core/domain"
)

// UserRepository is the credential store boundary. The backing service
// (originally a set of stored procedures) is opaque to the core; rows come
// back as domain.User values with the hash included — stripping it before
// exposure is the service layer's job.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, id string, update UserUpdate) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

// UserUpdate carries the mutable profile fields.
type UserUpdate struct {
	Nombre   string
	Apellido string
	Email    string
}
