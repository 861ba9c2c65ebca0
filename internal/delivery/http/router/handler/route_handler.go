package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "parivartan/internal/delivery/context"
	"parivartan/internal/delivery/http/response"
	"parivartan/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RouteHandler exposes the routing decision for the current session.
type RouteHandler struct {
	gate   usecase.GateUsecase
	logger *slog.Logger
}

// NewRouteHandler is the constructor for RouteHandler, injected by Fx.
func NewRouteHandler(gate usecase.GateUsecase, logger *slog.Logger) *RouteHandler {
	return &RouteHandler{
		gate:   gate,
		logger: logger,
	}
}

// CurrentRoute re-derives the single allowed destination from the latest
// records. Nothing from previous navigations is trusted.
func (h *RouteHandler) CurrentRoute(c echo.Context) error {
	principalID, ok := deliverycontext.GetPrincipalID(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_PRINCIPAL", "Request is not authenticated")
	}

	route, err := h.gate.RouteForPrincipal(c.Request().Context(), principalID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"route": string(route)}, "")
}
