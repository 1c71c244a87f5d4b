package scheduling

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/clinic/clinic/internal/platform/apperr"
	"github.com/clinic/clinic/internal/platform/auth"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	g := api.Group("/appointments")
	g.POST("", h.CreateAppointment, auth.RequireRole(auth.RoleAdmin, auth.RolePatient))
	g.GET("", h.ListAppointments, auth.RequireRole(auth.RoleAdmin, auth.RoleDoctor, auth.RolePatient))
	g.PUT("/:id", h.UpdateAppointment, auth.RequireRole(auth.RoleAdmin, auth.RoleDoctor, auth.RolePatient))
	g.DELETE("/:id", h.DeleteAppointment, auth.RequireRole(auth.RoleAdmin))
}

func (h *Handler) CreateAppointment(c echo.Context) error {
	var in NewAppointment
	if err := c.Bind(&in); err != nil {
		return apperr.Validation("invalid request body")
	}
	a, err := h.svc.CreateAppointment(c.Request().Context(), principal(c), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, a)
}

func (h *Handler) ListAppointments(c echo.Context) error {
	list, err := h.svc.ListAppointments(c.Request().Context(), principal(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, list)
}

func (h *Handler) UpdateAppointment(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var upd AppointmentUpdate
	if err := c.Bind(&upd); err != nil {
		return apperr.Validation("invalid request body")
	}
	a, err := h.svc.UpdateAppointment(c.Request().Context(), principal(c), id, upd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, a)
}

func (h *Handler) DeleteAppointment(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.svc.DeleteAppointment(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func principal(c echo.Context) *auth.Principal {
	return auth.PrincipalFromContext(c.Request().Context())
}

func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, apperr.Validation("invalid appointment id")
	}
	return uint(id), nil
}
