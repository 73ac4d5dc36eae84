package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/pizzeria-brothers/restaurant-system/internal/core/domain"
	"github.com/pizzeria-brothers/restaurant-system/internal/core/ports"
	"github.com/pizzeria-brothers/restaurant-system/pkg/token"
)

type stubUserRepo struct {
	mu     sync.Mutex
	seq    int
	byUser map[string]*domain.User
	byID   map[string]*domain.User
	// failWith, when set, makes every call return this error.
	failWith error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{
		byUser: make(map[string]*domain.User),
		byID:   make(map[string]*domain.User),
	}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byUser[user.Username]; exists {
		return nil, domain.ErrUserExists
	}
	r.seq++
	clone := cloneUser(user)
	clone.ID = fmt.Sprintf("u%d", r.seq)
	r.byUser[clone.Username] = clone
	r.byID[clone.ID] = clone
	return cloneUser(clone), nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byUser[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) Update(_ context.Context, id string, update ports.UserUpdate) (*domain.User, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u.Nombre = update.Nombre
	u.Apellido = update.Apellido
	if update.Email != "" {
		u.Email = update.Email
	}
	u.UpdatedAt = time.Now().UTC()
	return cloneUser(u), nil
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.User, 0, len(r.byID))
	for _, u := range r.byID {
		out = append(out, cloneUser(u))
	}
	return out, nil
}

func newAuthService(repo *stubUserRepo) *AuthService {
	return NewAuthService(repo, token.NewManager("secret", time.Hour), nil, zerolog.Nop())
}

func registerInput() ports.RegisterInput {
	return ports.RegisterInput{
		Username: "jdoe",
		Password: "Abcd1234!",
		Nombre:   "Juan",
		Apellido: "Diaz",
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	user, err := svc.Register(context.Background(), registerInput())
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.PasswordHash != "" {
		t.Fatalf("returned user carries a password hash")
	}
	if user.Rol != domain.RoleCliente {
		t.Fatalf("expected default role Cliente, got %d", user.Rol)
	}
	if !user.Activo {
		t.Fatalf("expected new account to be active")
	}

	stored, err := repo.FindByUsername(context.Background(), "jdoe")
	if err != nil {
		t.Fatalf("stored user missing: %v", err)
	}
	if stored.PasswordHash == "" || stored.PasswordHash == "Abcd1234!" {
		t.Fatalf("stored hash invalid: %q", stored.PasswordHash)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	cases := []struct {
		name string
		mut  func(*ports.RegisterInput)
	}{
		{"missing username", func(in *ports.RegisterInput) { in.Username = "" }},
		{"missing password", func(in *ports.RegisterInput) { in.Password = "" }},
		{"short password", func(in *ports.RegisterInput) { in.Password = "Abc1!" }},
		{"missing nombre", func(in *ports.RegisterInput) { in.Nombre = "" }},
		{"missing apellido", func(in *ports.RegisterInput) { in.Apellido = "" }},
		{"unknown role", func(in *ports.RegisterInput) { in.RolID = 9 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := registerInput()
			tc.mut(&in)
			if _, err := svc.Register(context.Background(), in); !errors.Is(err, domain.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	if _, err := svc.Register(context.Background(), registerInput()); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := svc.Register(context.Background(), registerInput()); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	in := registerInput()
	in.RolID = domain.RoleMesero
	if _, err := svc.Register(context.Background(), in); err != nil {
		t.Fatalf("register: %v", err)
	}

	tok, user, err := svc.Login(context.Background(), "jdoe", "Abcd1234!")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if tok == "" {
		t.Fatalf("expected a token")
	}
	if user.PasswordHash != "" {
		t.Fatalf("logged-in user carries a password hash")
	}
	if user.Rol != domain.RoleMesero {
		t.Fatalf("unexpected role: %d", user.Rol)
	}

	// The token must round-trip back to the same subject.
	verified, err := svc.VerifyToken(context.Background(), tok)
	if err != nil {
		t.Fatalf("verify token: %v", err)
	}
	if verified.ID != user.ID {
		t.Fatalf("token subject %q does not match user id %q", verified.ID, user.ID)
	}
}

func TestAuthService_Login_UserNotFound(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	if _, _, err := svc.Login(context.Background(), "ghost", "whatever1"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_Login_Inactive(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	if _, err := svc.Register(context.Background(), registerInput()); err != nil {
		t.Fatalf("register: %v", err)
	}
	repo.byUser["jdoe"].Activo = false

	if _, _, err := svc.Login(context.Background(), "jdoe", "Abcd1234!"); !errors.Is(err, domain.ErrUserInactive) {
		t.Fatalf("expected ErrUserInactive, got %v", err)
	}
}

func TestAuthService_Login_CorruptHash(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	if _, err := svc.Register(context.Background(), registerInput()); err != nil {
		t.Fatalf("register: %v", err)
	}
	repo.byUser["jdoe"].PasswordHash = ""

	if _, _, err := svc.Login(context.Background(), "jdoe", "Abcd1234!"); !errors.Is(err, domain.ErrInvalidUserData) {
		t.Fatalf("expected ErrInvalidUserData, got %v", err)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	if _, err := svc.Register(context.Background(), registerInput()); err != nil {
		t.Fatalf("register: %v", err)
	}

	// A wrong password on an existing account is InvalidCredentials, never
	// UserNotFound.
	_, _, err := svc.Login(context.Background(), "jdoe", "WrongPass1!")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_VerifyToken_Expired(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	if _, err := svc.Register(context.Background(), registerInput()); err != nil {
		t.Fatalf("register: %v", err)
	}
	stored, _ := repo.FindByUsername(context.Background(), "jdoe")

	// Valid signature, elapsed expiry.
	now := time.Now()
	claims := &token.Claims{
		Username: "jdoe",
		Rol:      domain.RoleCliente,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   stored.ID,
			IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := svc.VerifyToken(context.Background(), expired); !errors.Is(err, token.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestAuthService_VerifyToken_DeletedUser(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	if _, err := svc.Register(context.Background(), registerInput()); err != nil {
		t.Fatalf("register: %v", err)
	}
	tok, user, err := svc.Login(context.Background(), "jdoe", "Abcd1234!")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	delete(repo.byID, user.ID)
	delete(repo.byUser, "jdoe")

	if _, err := svc.VerifyToken(context.Background(), tok); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_Roles_Catalog(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	roles := svc.Roles()
	if len(roles) != 5 {
		t.Fatalf("expected 5 roles, got %d", len(roles))
	}
	if roles[0].ID != domain.RoleCliente || roles[0].Nombre != "Cliente" {
		t.Fatalf("unexpected first role: %+v", roles[0])
	}
	if roles[2].ID != domain.RoleAdministrador {
		t.Fatalf("expected Administrador at id 3, got %+v", roles[2])
	}
}
