// Package respond maps service errors onto HTTP responses consistently
// across the domain handlers.
package respond

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medidesk/medidesk/internal/platform/store"
)

// Error converts a service-layer error into an echo HTTPError: NotFound maps
// to 404, a store transport failure to 502, everything else (validation) to
// 400.
func Error(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, store.ErrUnavailable):
		return echo.NewHTTPError(http.StatusBadGateway, "store unavailable")
	default:
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
}
