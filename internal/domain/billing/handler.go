package billing

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
	api.GET("/invoices", h.List)
}

func (h *Handler) List(c echo.Context) error {
	params := ListParams{
		PatientID: c.QueryParam("patient_id"),
		Status:    c.QueryParam("status"),
	}
	invoices, err := h.svc.List(c.Request().Context(), params)
	if err != nil {
		return respond.Error(err)
	}
	return c.JSON(http.StatusOK, invoices)
}
