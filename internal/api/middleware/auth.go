package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pizzeria-brothers/restaurant-system/internal/api/handler"
	"github.com/pizzeria-brothers/restaurant-system/internal/core/domain"
	"github.com/pizzeria-brothers/restaurant-system/internal/core/ports"
	"github.com/pizzeria-brothers/restaurant-system/pkg/token"
)

// Auth validates the session token and re-resolves the account by id, so
// tokens for deleted or deactivated accounts are rejected before expiry.
// The resolved user and role are injected into the request context.
func Auth(tokens *token.Manager, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tok := handler.BearerToken(c.Request().Header.Get("Authorization"))
			if tok == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, token.ErrTokenMissing.Error())
			}

			claims, err := tokens.Verify(tok)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
			}

			user, err := users.FindByID(c.Request().Context(), claims.Subject)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					return echo.NewHTTPError(http.StatusUnauthorized, domain.ErrUserNotFound.Error())
				}
				// A store failure is not a missing account: let the error
				// handler answer 500.
				return err
			}
			if !user.Activo {
				return echo.NewHTTPError(http.StatusUnauthorized, domain.ErrUserNotFound.Error())
			}

			c.Set(handler.CtxUser, user.Public())
			c.Set(handler.CtxUserID, user.ID)
			c.Set(handler.CtxRole, user.Rol)

			return next(c)
		}
	}
}
