package handler

import (
	"log/slog"
	"net/http"

	"parivartan/internal/delivery/http/response"
	"parivartan/internal/domain/entity"
	"parivartan/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler holds dependencies for the admin review handlers.
type AdminHandler struct {
	uc     usecase.AdminUsecase
	logger *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.AdminUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListPartners returns the review queue. The "status" query parameter
// selects the verification state, defaulting to pending.
func (h *AdminHandler) ListPartners(c echo.Context) error {
	status := entity.VerificationStatus(c.QueryParam("status"))
	if status == "" {
		status = entity.VerificationPending
	}

	partners, err := h.uc.ListPartners(c.Request().Context(), status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, partners, "")
}

// GetPartner returns one partner record for review.
func (h *AdminHandler) GetPartner(c echo.Context) error {
	partnerID, err := uuid.Parse(c.Param("partnerID"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid partner id")
	}

	partner, err := h.uc.GetPartner(c.Request().Context(), partnerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, partner, "")
}

// ReviewDocument records one document review decision.
func (h *AdminHandler) ReviewDocument(c echo.Context) error {
	partnerID, err := uuid.Parse(c.Param("partnerID"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid partner id")
	}

	var input *usecase.ReviewDocumentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}

	if err := h.uc.ReviewDocument(c.Request().Context(), partnerID, input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Document reviewed")
}

// TransitionVerification moves the partner verification status.
func (h *AdminHandler) TransitionVerification(c echo.Context) error {
	partnerID, err := uuid.Parse(c.Param("partnerID"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid partner id")
	}

	var input struct {
		Status entity.VerificationStatus `json:"status"`
	}
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid transition input")
	}

	if err := h.uc.TransitionVerification(c.Request().Context(), partnerID, input.Status); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Verification status updated")
}
