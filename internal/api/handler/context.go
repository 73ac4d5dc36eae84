package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/pizzeria-brothers/restaurant-system/internal/core/domain"
)

// Context keys set by the Auth middleware.
const (
	CtxUser   = "user"
	CtxUserID = "user_id"
	CtxRole   = "role"
)

// ctxUser extracts the resolved account injected by the Auth middleware.
// Its presence proves the middleware ran; a handler reached without it is a
// routing mistake, answered with 401 rather than a panic.
func ctxUser(c echo.Context) (*domain.User, error) {
	user, _ := c.Get(CtxUser).(*domain.User)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "credenciales de autenticación ausentes")
	}
	return user, nil
}

// BearerToken extracts the token from an Authorization header value.
// Returns "" when the header is absent or not a bearer scheme.
func BearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
