package identity

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medidesk/medidesk/internal/platform/store"
)

type Handler struct {
	resolver *Resolver
	tokens   *Tokens
}

func NewHandler(resolver *Resolver, tokens *Tokens) *Handler {
	return &Handler{resolver: resolver, tokens: tokens}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/login", h.Login)
}

type loginRequest struct {
	Role Role   `json:"role"`
	ID   string `json:"id"`
}

type loginResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

func (h *Handler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if !req.Role.Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid role")
	}

	user, err := h.resolver.Resolve(c.Request().Context(), req.Role, req.ID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return echo.NewHTTPError(http.StatusUnauthorized, "unknown user")
		case errors.Is(err, store.ErrUnavailable):
			return echo.NewHTTPError(http.StatusBadGateway, "store unavailable")
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, err := h.tokens.Issue(user.Role, user.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not issue session token")
	}
	return c.JSON(http.StatusOK, loginResponse{Token: token, User: user})
}
