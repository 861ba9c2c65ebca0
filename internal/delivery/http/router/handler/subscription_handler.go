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

// SubscriptionHandler holds dependencies for the plan listing and checkout
// handlers.
type SubscriptionHandler struct {
	uc     usecase.SubscriptionUsecase
	logger *slog.Logger
}

// NewSubscriptionHandler is the constructor for SubscriptionHandler, injected by Fx.
func NewSubscriptionHandler(uc usecase.SubscriptionUsecase, logger *slog.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListPlans returns the purchasable plans.
func (h *SubscriptionHandler) ListPlans(c echo.Context) error {
	plans, err := h.uc.ListPlans(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, plans, "")
}

// Purchase runs the subscription checkout for the signed-in partner.
func (h *SubscriptionHandler) Purchase(c echo.Context) error {
	principalID, ok := deliverycontext.GetPrincipalID(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_PRINCIPAL", "Request is not authenticated")
	}

	var input *usecase.PurchaseInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid purchase input")
	}

	sub, err := h.uc.Purchase(c.Request().Context(), principalID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, sub, "Subscription activated")
}
