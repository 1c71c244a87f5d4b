package identity

import (
	"net/http"

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
	users := api.Group("/users")

	// Public; listed in auth.AuthSkipper.
	users.POST("/register", h.Register)
	users.POST("/login", h.Login)

	users.POST("", h.CreateUser, auth.RequireRole(auth.RoleAdmin))
	users.GET("/me", h.Me, auth.RequireRole(auth.RoleAdmin, auth.RoleDoctor, auth.RolePatient))
}

func (h *Handler) Register(c echo.Context) error {
	var in NewUser
	if err := c.Bind(&in); err != nil {
		return apperr.Validation("invalid request body")
	}
	u, err := h.svc.Register(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, u)
}

func (h *Handler) CreateUser(c echo.Context) error {
	var in NewUser
	if err := c.Bind(&in); err != nil {
		return apperr.Validation("invalid request body")
	}
	u, err := h.svc.CreateUser(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, u)
}

func (h *Handler) Login(c echo.Context) error {
	var in Credentials
	if err := c.Bind(&in); err != nil {
		return apperr.Validation("invalid request body")
	}
	token, err := h.svc.Login(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, TokenResponse{Token: token})
}

func (h *Handler) Me(c echo.Context) error {
	p := auth.PrincipalFromContext(c.Request().Context())
	if p == nil {
		return apperr.Unauthenticated("authentication required")
	}
	u, err := h.svc.GetUser(c.Request().Context(), p.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, u)
}
