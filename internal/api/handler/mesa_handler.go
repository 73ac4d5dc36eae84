package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/pizzeria-brothers/restaurant-system/internal/api/metrics"
	"github.com/pizzeria-brothers/restaurant-system/internal/core/domain"
	"github.com/pizzeria-brothers/restaurant-system/internal/core/ports"
)

// MesaHandler handles HTTP requests for table occupancy.
type MesaHandler struct {
	service ports.MesaService
}

func NewMesaHandler(service ports.MesaService) *MesaHandler {
	return &MesaHandler{service: service}
}

type changeStatusRequest struct {
	Estado    int `json:"id_estado_mesa" validate:"required,min=1,max=3"`
	UsuarioID int `json:"id_usuario"     validate:"required,gt=0"`
}

// List returns mesas matching the optional query filters activa,
// id_estado_mesa and ubicacion. Unspecified filters match everything.
//
// @Summary      List tables
// @Tags         mesas
// @Produce      json
// @Security     BearerAuth
// @Param        activa          query  bool    false  "Active flag"
// @Param        id_estado_mesa  query  int     false  "Status id (1..3)"
// @Param        ubicacion       query  string  false  "Location text"
// @Success      200  {object}  Response
// @Router       /api/mesas [get]
func (h *MesaHandler) List(c echo.Context) error {
	var filter ports.ListMesasFilter

	if raw := c.QueryParam("activa"); raw != "" {
		activa, err := strconv.ParseBool(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "activa debe ser booleano")
		}
		filter.Activa = &activa
	}
	if raw := c.QueryParam("id_estado_mesa"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || !domain.TableStatus(n).Valid() {
			return echo.NewHTTPError(http.StatusBadRequest, "id_estado_mesa inválido")
		}
		estado := domain.TableStatus(n)
		filter.Estado = &estado
	}
	filter.Ubicacion = c.QueryParam("ubicacion")

	mesas, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "", mesas)
}

// Statistics returns aggregate occupancy counts.
//
// @Summary      Table statistics
// @Tags         mesas
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  Response
// @Router       /api/mesas/estadisticas [get]
func (h *MesaHandler) Statistics(c echo.Context) error {
	stats, err := h.service.Statistics(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "", stats)
}

// Get returns a single mesa by id.
//
// @Summary      Get a table
// @Tags         mesas
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Table id"
// @Success      200  {object}  Response
// @Failure      404  {object}  Response
// @Router       /api/mesas/{id} [get]
func (h *MesaHandler) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "id de mesa inválido")
	}

	mesa, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "", mesa)
}

// ByUbicacion returns mesas in a location. Floor aliases ("1", "primer
// piso", "terraza", …) resolve through the floor bucketing helper; any
// other value filters by location text.
//
// @Summary      List tables by location
// @Tags         mesas
// @Produce      json
// @Security     BearerAuth
// @Param        ubicacion  path  string  true  "Location text or floor alias"
// @Success      200  {object}  Response
// @Router       /api/mesas/ubicacion/{ubicacion} [get]
func (h *MesaHandler) ByUbicacion(c echo.Context) error {
	ubicacion := c.Param("ubicacion")

	if floor, ok := floorAlias(ubicacion); ok {
		activa := true
		mesas, err := h.service.List(c.Request().Context(), ports.ListMesasFilter{Activa: &activa})
		if err != nil {
			return err
		}
		return respond(c, http.StatusOK, "", filterByFloor(mesas, floor))
	}

	mesas, err := h.service.ByUbicacion(c.Request().Context(), ubicacion)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "", mesas)
}

// ChangeStatus applies a table status transition.
//
// @Summary      Change table status
// @Tags         mesas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int                  true  "Table id"
// @Param        body  body  changeStatusRequest  true  "New status and acting user"
// @Success      200  {object}  Response
// @Failure      400  {object}  Response
// @Failure      404  {object}  Response
// @Router       /api/mesas/{id}/estado [put]
func (h *MesaHandler) ChangeStatus(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "id de mesa inválido")
	}

	var req changeStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "cuerpo de solicitud inválido")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	mesa, err := h.service.ChangeStatus(c.Request().Context(), ports.ChangeStatusInput{
		MesaID:       id,
		Estado:       domain.TableStatus(req.Estado),
		ActingUserID: req.UsuarioID,
	})
	if err != nil {
		return err
	}

	metrics.MesaStatusChangesTotal.WithLabelValues(mesa.Estado.Nombre()).Inc()
	return respond(c, http.StatusOK, "Estado actualizado correctamente", mesa)
}
