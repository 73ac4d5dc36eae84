package ports

import (
	"context"

	"github.com/pizzeria-brothers/restaurant-system/internal/core/domain"
)

// RegisterInput carries all data needed to create an account. RolID zero
// means "default" (Cliente).
type RegisterInput struct {
	Username string
	Password string
	Nombre   string
	Apellido string
	Email    string
	RolID    domain.Role
}

// AuthService defines authentication use cases.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	Roles() []domain.RoleInfo
	VerifyToken(ctx context.Context, token string) (*domain.User, error)
}
