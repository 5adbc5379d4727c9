package appointment

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
	api.GET("/appointments", h.List)
	api.GET("/appointments/:id", h.Get)
	api.POST("/appointments", h.Schedule)
}

func (h *Handler) List(c echo.Context) error {
	params := ListParams{
		DoctorID:  c.QueryParam("doctor_id"),
		PatientID: c.QueryParam("patient_id"),
		Status:    c.QueryParam("status"),
		Upcoming:  c.QueryParam("upcoming") == "true",
	}
	appointments, err := h.svc.List(c.Request().Context(), params)
	if err != nil {
		return respond.Error(err)
	}
	return c.JSON(http.StatusOK, appointments)
}

func (h *Handler) Get(c echo.Context) error {
	a, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respond.Error(err)
	}
	return c.JSON(http.StatusOK, a)
}

func (h *Handler) Schedule(c echo.Context) error {
	var in ScheduleInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	a, err := h.svc.Schedule(c.Request().Context(), in)
	if err != nil {
		return respond.Error(err)
	}
	return c.JSON(http.StatusCreated, a)
}
