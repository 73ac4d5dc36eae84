package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pizzeria-brothers/restaurant-system/internal/api/metrics"
	"github.com/pizzeria-brothers/restaurant-system/internal/core/domain"
	"github.com/pizzeria-brothers/restaurant-system/internal/core/ports"
	"github.com/pizzeria-brothers/restaurant-system/pkg/token"
)

// AuthHandler handles HTTP requests for registration, login and session
// verification.
type AuthHandler struct {
	service ports.AuthService
}

func NewAuthHandler(service ports.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3,max=30"`
	Password string `json:"password" validate:"required,min=8"`
	Nombre   string `json:"nombre"   validate:"required,min=2,max=50"`
	Apellido string `json:"apellido" validate:"required,min=2,max=50"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
	RolID    int    `json:"id_rol,omitempty" validate:"omitempty,min=1,max=5"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginData struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// Register creates a new account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  Response
// @Failure      400   {object}  Response
// @Failure      409   {object}  Response
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "cuerpo de solicitud inválido")
	}
	if err := c.Validate(&req); err != nil {
		metrics.RegistrationsTotal.WithLabelValues("invalid").Inc()
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.Register(c.Request().Context(), ports.RegisterInput{
		Username: req.Username,
		Password: req.Password,
		Nombre:   req.Nombre,
		Apellido: req.Apellido,
		Email:    req.Email,
		RolID:    domain.Role(req.RolID),
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserExists):
			metrics.RegistrationsTotal.WithLabelValues("duplicate").Inc()
		case errors.Is(err, domain.ErrInvalidInput):
			metrics.RegistrationsTotal.WithLabelValues("invalid").Inc()
		default:
			metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		}
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("success").Inc()
	return respond(c, http.StatusCreated, "Usuario registrado exitosamente", user)
}

// Login authenticates a user and returns a session token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  Response
// @Failure      401   {object}  Response
// @Failure      403   {object}  Response
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "cuerpo de solicitud inválido")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	tok, user, err := h.service.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			metrics.LoginsTotal.WithLabelValues("user_not_found").Inc()
			// An unknown username answers 401, not 404: login must not
			// reveal which accounts exist.
			return echo.NewHTTPError(http.StatusUnauthorized, domain.ErrInvalidCredentials.Error())
		case errors.Is(err, domain.ErrInvalidCredentials), errors.Is(err, domain.ErrInvalidUserData):
			metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		case errors.Is(err, domain.ErrUserInactive):
			metrics.LoginsTotal.WithLabelValues("user_inactive").Inc()
		default:
			metrics.LoginsTotal.WithLabelValues("error").Inc()
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return respond(c, http.StatusOK, "Login exitoso", loginData{Token: tok, User: user})
}

// Roles returns the role catalog. No auth required.
//
// @Summary      List roles
// @Tags         auth
// @Produce      json
// @Success      200  {object}  Response
// @Router       /api/auth/roles [get]
func (h *AuthHandler) Roles(c echo.Context) error {
	return respond(c, http.StatusOK, "", h.service.Roles())
}

// Verify validates the bearer token and returns the current account.
//
// @Summary      Verify session token
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  Response
// @Failure      401  {object}  Response
// @Router       /api/auth/verify [get]
func (h *AuthHandler) Verify(c echo.Context) error {
	tok := BearerToken(c.Request().Header.Get("Authorization"))
	if tok == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, token.ErrTokenMissing.Error())
	}

	user, err := h.service.VerifyToken(c.Request().Context(), tok)
	if err != nil {
		switch {
		case errors.Is(err, token.ErrTokenMissing),
			errors.Is(err, token.ErrTokenInvalid),
			errors.Is(err, token.ErrTokenExpired):
			return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
		case errors.Is(err, domain.ErrUserNotFound):
			// A token for a removed account answers 401, not 404.
			return echo.NewHTTPError(http.StatusUnauthorized, domain.ErrUserNotFound.Error())
		}
		// Store failures fall through to the error handler as 500.
		return err
	}

	return respond(c, http.StatusOK, "", map[string]*domain.User{"user": user})
}
