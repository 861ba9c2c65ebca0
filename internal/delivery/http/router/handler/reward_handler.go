package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "parivartan/internal/delivery/context"
	"parivartan/internal/delivery/http/response"
	"parivartan/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RewardHandler holds dependencies for the reward ledger handlers.
type RewardHandler struct {
	rewardUc  usecase.RewardUsecase
	partnerUc usecase.PartnerUsecase
	logger    *slog.Logger
}

// NewRewardHandler is the constructor for RewardHandler, injected by Fx.
func NewRewardHandler(rewardUc usecase.RewardUsecase, partnerUc usecase.PartnerUsecase, logger *slog.Logger) *RewardHandler {
	return &RewardHandler{
		rewardUc:  rewardUc,
		partnerUc: partnerUc,
		logger:    logger,
	}
}

// GetBalance returns the partner's current point balance.
func (h *RewardHandler) GetBalance(c echo.Context) error {
	principalID, ok := deliverycontext.GetPrincipalID(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_PRINCIPAL", "Request is not authenticated")
	}

	partner, err := h.partnerUc.GetProfile(c.Request().Context(), principalID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int{"points": partner.RewardPoints}, "")
}

// ListVouchers returns the vouchers the partner can still redeem.
func (h *RewardHandler) ListVouchers(c echo.Context) error {
	principalID, ok := deliverycontext.GetPrincipalID(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_PRINCIPAL", "Request is not authenticated")
	}

	vouchers, err := h.rewardUc.ListAvailableVouchers(c.Request().Context(), principalID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, vouchers, "")
}

// ListRedemptions returns the partner's redemption history.
func (h *RewardHandler) ListRedemptions(c echo.Context) error {
	principalID, ok := deliverycontext.GetPrincipalID(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_PRINCIPAL", "Request is not authenticated")
	}

	redemptions, err := h.rewardUc.ListRedemptions(c.Request().Context(), principalID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, redemptions, "")
}

// Redeem exchanges points for the voucher in the path.
func (h *RewardHandler) Redeem(c echo.Context) error {
	principalID, ok := deliverycontext.GetPrincipalID(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_PRINCIPAL", "Request is not authenticated")
	}

	voucherID, err := uuid.Parse(c.Param("voucherID"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid voucher id")
	}

	redeemed, err := h.rewardUc.Redeem(c.Request().Context(), principalID, voucherID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, redeemed, "Voucher redeemed")
}

// RedemptionQR streams the redemption receipt as a PNG QR code.
func (h *RewardHandler) RedemptionQR(c echo.Context) error {
	principalID, ok := deliverycontext.GetPrincipalID(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_PRINCIPAL", "Request is not authenticated")
	}

	voucherID, err := uuid.Parse(c.Param("voucherID"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid voucher id")
	}

	qr, err := h.rewardUc.RedemptionQR(c.Request().Context(), principalID, voucherID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", qr)
}
