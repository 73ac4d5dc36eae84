package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pizzeria-brothers/restaurant-system/internal/core/ports"
)

// UserHandler handles HTTP requests for user profiles.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type updateProfileRequest struct {
	Nombre   string `json:"nombre"   validate:"required,min=2,max=50"`
	Apellido string `json:"apellido" validate:"required,min=2,max=50"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
}

// GetProfile returns the authenticated user's own profile.
//
// @Summary      Get own profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  Response
// @Failure      401  {object}  Response
// @Router       /api/users/profile [get]
func (h *UserHandler) GetProfile(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	profile, err := h.service.GetProfile(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "", profile)
}

// UpdateProfile changes the caller's display fields.
//
// @Summary      Update own profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  Response
// @Failure      400  {object}  Response
// @Router       /api/users/profile [put]
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "cuerpo de solicitud inválido")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.service.UpdateProfile(c.Request().Context(), user.ID, ports.UserUpdate{
		Nombre:   req.Nombre,
		Apellido: req.Apellido,
		Email:    req.Email,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Usuario actualizado correctamente", updated)
}

// ListAll returns every account. Administrators only.
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  Response
// @Failure      403  {object}  Response
// @Router       /api/users/all [get]
func (h *UserHandler) ListAll(c echo.Context) error {
	users, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "", users)
}
