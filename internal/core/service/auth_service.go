package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/pizzeria-brothers/restaurant-system/internal/core/domain"
	"github.com/pizzeria-brothers/restaurant-system/internal/core/ports"
	"github.com/pizzeria-brothers/restaurant-system/pkg/password"
	"github.com/pizzeria-brothers/restaurant-system/pkg/token"
)

const minPasswordLength = 8

// AuthService implements registration, login and token verification.
type AuthService struct {
	repo   ports.UserRepository
	tokens *token.Manager
	audit  ports.AuditSink
	log    zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, tokens *token.Manager, audit ports.AuditSink, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, audit: audit, log: log}
}

// Register creates an account. The password is hashed exactly once, before
// the store write; the returned record never carries the hash.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	if in.Username == "" || in.Password == "" || in.Nombre == "" || in.Apellido == "" {
		return nil, domain.ErrInvalidInput
	}
	if len(in.Password) < minPasswordLength {
		return nil, domain.ErrInvalidInput
	}
	rol := in.RolID
	if rol == 0 {
		rol = domain.RoleCliente
	}
	if !rol.Valid() {
		return nil, domain.ErrInvalidInput
	}

	hash, err := password.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.User{
		Username:     in.Username,
		PasswordHash: hash,
		Nombre:       in.Nombre,
		Apellido:     in.Apellido,
		Email:        in.Email,
		Rol:          rol,
		Activo:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("username", created.Username).Int("id_rol", int(created.Rol)).Msg("usuario registrado")
	return created.Public(), nil
}

// Login authenticates by username and plaintext password. The user is
// fetched by username only and the password verified locally: the stored
// hash is salted, so hashing the candidate and matching digests in the
// store can never succeed.
func (s *AuthService) Login(ctx context.Context, username, pass string) (string, *domain.User, error) {
	if username == "" || pass == "" {
		return "", nil, domain.ErrInvalidInput
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		s.auditLogin(username, false)
		return "", nil, err
	}

	switch {
	case !user.Activo:
		s.auditLogin(username, false)
		return "", nil, domain.ErrUserInactive
	case user.PasswordHash == "":
		s.log.Error().Str("username", username).Msg("cuenta sin hash de contraseña")
		s.auditLogin(username, false)
		return "", nil, domain.ErrInvalidUserData
	case !password.Verify(pass, user.PasswordHash):
		s.auditLogin(username, false)
		return "", nil, domain.ErrInvalidCredentials
	}

	tok, err := s.tokens.Issue(user.ID, user.Username, user.Rol)
	if err != nil {
		return "", nil, err
	}

	s.auditLogin(username, true)
	return tok, user.Public(), nil
}

// Roles returns the canonical role catalog.
func (s *AuthService) Roles() []domain.RoleInfo {
	return domain.Roles()
}

// VerifyToken validates a session token and re-fetches the user by id so
// tokens for deleted or deactivated accounts stop working before expiry.
func (s *AuthService) VerifyToken(ctx context.Context, tok string) (*domain.User, error) {
	claims, err := s.tokens.Verify(tok)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.FindByID(ctx, claims.Subject)
	if err != nil {
		return nil, err
	}
	if !user.Activo {
		return nil, domain.ErrUserNotFound
	}
	return user.Public(), nil
}

func (s *AuthService) auditLogin(username string, success bool) {
	if s.audit == nil {
		return
	}
	s.audit.Enqueue(domain.AuditEvent{
		Action:    domain.AuditLoginAttempt,
		EntityKey: username,
		Username:  username,
		Success:   success,
		Timestamp: time.Now().UTC(),
	})
}
