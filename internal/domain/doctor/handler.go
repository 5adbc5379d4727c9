package doctor

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medidesk/medidesk/pkg/respond"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/doctors", h.List)
	api.GET("/doctors/:id", h.Get)
	api.POST("/doctors", h.Create)
}

func (h *Handler) List(c echo.Context) error {
	doctors, err := h.svc.List(c.Request().Context())
	if err != nil {
		return respond.Error(err)
	}
	return c.JSON(http.StatusOK, doctors)
}

func (h *Handler) Get(c echo.Context) error {
	d, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respond.Error(err)
	}
	return c.JSON(http.StatusOK, d)
}

func (h *Handler) Create(c echo.Context) error {
	var in CreateInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	d, err := h.svc.Create(c.Request().Context(), in)
	if err != nil {
		return respond.Error(err)
	}
	return c.JSON(http.StatusCreated, d)
}
