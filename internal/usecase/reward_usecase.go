package usecase

import (
	"context"

	"parivartan/internal/domain/entity"

	"github.com/google/uuid"
)

// RewardUsecase is the reward/voucher ledger: point balances and idempotent
// voucher redemptions.
type RewardUsecase interface {
	// ListAvailableVouchers returns vouchers the partner can redeem: public
	// or assigned to it, minus those already redeemed.
	ListAvailableVouchers(ctx context.Context, partnerID uuid.UUID) ([]*entity.Voucher, error)

	// ListRedemptions returns the partner's redemption history.
	ListRedemptions(ctx context.Context, partnerID uuid.UUID) ([]*entity.RedeemedVoucher, error)

	// Redeem exchanges points for a voucher. The deduction and the
	// redemption record are applied as a single logical unit; on
	// insufficient points or a duplicate redemption nothing changes.
	Redeem(ctx context.Context, partnerID, voucherID uuid.UUID) (*entity.RedeemedVoucher, error)

	// RedemptionQR renders the redemption receipt as a PNG QR code.
	RedemptionQR(ctx context.Context, partnerID, voucherID uuid.UUID) ([]byte, error)
}
