package patient

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
	api.GET("/patients", h.List)
	api.GET("/patients/:id", h.Get)
	api.GET("/patients/:id/history", h.History)
	api.GET("/patients/:id/labs", h.Labs)
	api.POST("/patients", h.Create)
}

func (h *Handler) List(c echo.Context) error {
	params := ListParams{
		PrimaryDoctorID: c.QueryParam("primary_doctor_id"),
		Search:          c.QueryParam("q"),
	}
	patients, err := h.svc.List(c.Request().Context(), params)
	if err != nil {
		return respond.Error(err)
	}
	return c.JSON(http.StatusOK, patients)
}

func (h *Handler) Get(c echo.Context) error {
	p, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respond.Error(err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) History(c echo.Context) error {
	events, err := h.svc.History(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respond.Error(err)
	}
	return c.JSON(http.StatusOK, events)
}

func (h *Handler) Labs(c echo.Context) error {
	labs, err := h.svc.Labs(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respond.Error(err)
	}
	return c.JSON(http.StatusOK, labs)
}

func (h *Handler) Create(c echo.Context) error {
	var in CreateInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	p, err := h.svc.Create(c.Request().Context(), in)
	if err != nil {
		return respond.Error(err)
	}
	return c.JSON(http.StatusCreated, p)
}
