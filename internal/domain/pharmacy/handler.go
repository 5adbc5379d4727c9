package pharmacy

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
	api.GET("/prescriptions", h.List)
}

func (h *Handler) List(c echo.Context) error {
	prescriptions, err := h.svc.ListByPatient(c.Request().Context(), c.QueryParam("patient_id"))
	if err != nil {
		return respond.Error(err)
	}
	return c.JSON(http.StatusOK, prescriptions)
}
