package records

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

// RegisterRoutes mounts the record endpoints. :id is the patient's user id,
// not the record id.
func (h *Handler) RegisterRoutes(api *echo.Group) {
	g := api.Group("/patient-records")
	g.POST("", h.CreateRecord, auth.RequireRole(auth.RoleAdmin, auth.RoleDoctor))
	g.GET("", h.ListRecords, auth.RequireRole(auth.RoleAdmin, auth.RoleDoctor, auth.RolePatient))
	g.PUT("/:id", h.UpdateRecord, auth.RequireRole(auth.RoleAdmin, auth.RoleDoctor))
	g.DELETE("/:id", h.DeleteRecord, auth.RequireRole(auth.RoleAdmin))
}

func (h *Handler) CreateRecord(c echo.Context) error {
	var in NewPatientRecord
	if err := c.Bind(&in); err != nil {
		return apperr.Validation("invalid request body")
	}
	rec, err := h.svc.CreateRecord(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, rec)
}

func (h *Handler) ListRecords(c echo.Context) error {
	p := auth.PrincipalFromContext(c.Request().Context())
	list, err := h.svc.ListRecords(c.Request().Context(), p)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, list)
}

func (h *Handler) UpdateRecord(c echo.Context) error {
	patientID, err := parsePatientID(c)
	if err != nil {
		return err
	}
	var upd PatientRecordUpdate
	if err := c.Bind(&upd); err != nil {
		return apperr.Validation("invalid request body")
	}
	p := auth.PrincipalFromContext(c.Request().Context())
	rec, err := h.svc.UpdateRecord(c.Request().Context(), p, patientID, upd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rec)
}

func (h *Handler) DeleteRecord(c echo.Context) error {
	patientID, err := parsePatientID(c)
	if err != nil {
		return err
	}
	if err := h.svc.DeleteRecord(c.Request().Context(), patientID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func parsePatientID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, apperr.Validation("invalid patient id")
	}
	return uint(id), nil
}
