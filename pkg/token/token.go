// Package token issues and verifies the signed session tokens that carry a
// user's identity and role between requests. Tokens are stateless: expiry
// is the only invalidation path, there is no revocation list.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/pizzeria-brothers/restaurant-system/internal/core/domain"
)

var (
	ErrTokenMissing = errors.New("token no proporcionado")
	ErrTokenInvalid = errors.New("token inválido")
	ErrTokenExpired = errors.New("token expirado")
)

// DefaultTTL is the fixed session lifetime.
const DefaultTTL = 24 * time.Hour

// Claims is the signed claim set: subject is the user id.
type Claims struct {
	Username string      `json:"username"`
	Rol      domain.Role `json:"id_rol"`
	jwt.RegisteredClaims
}

// Manager signs and validates session tokens with a process-wide HS256
// secret.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

// NewManager returns a Manager. A non-positive ttl falls back to DefaultTTL.
func NewManager(secret string, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token for the given user valid for the configured TTL.
func (m *Manager) Issue(userID, username string, rol domain.Role) (string, error) {
	now := time.Now()
	claims := &Claims{
		Username: username,
		Rol:      rol,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Verify parses and validates a token, returning its claims. Failures are
// classified as ErrTokenExpired when the expiry has elapsed and
// ErrTokenInvalid for every other signature or format problem.
func (m *Manager) Verify(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, ErrTokenMissing
	}

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	if !parsed.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
