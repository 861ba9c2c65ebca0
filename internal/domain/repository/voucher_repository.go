package repository

import (
	"context"

	"parivartan/internal/domain/entity"
	"parivartan/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for voucher persistence.
var (
	// ErrVoucherNotFound is returned when a voucher is not found.
	ErrVoucherNotFound = errors.New("voucher not found")
	// ErrVoucherAlreadyRedeemed is returned when a redemption record already
	// exists for the (partner, voucher) pair.
	ErrVoucherAlreadyRedeemed = errors.New("voucher already redeemed")
	// ErrInsufficientPoints is returned when the transactional redemption
	// finds the partner balance below the voucher cost.
	ErrInsufficientPoints = errors.New("insufficient reward points")
	// ErrRedemptionNotFound is returned when a redemption record is not found.
	ErrRedemptionNotFound = errors.New("redemption not found")
)

// VoucherRepository defines the interface for voucher and redemption store
// operations.
type VoucherRepository interface {
	// ListVouchers retrieves all vouchers.
	ListVouchers(ctx context.Context) ([]*entity.Voucher, error)

	// FindVoucherByID retrieves a voucher by its unique ID.
	FindVoucherByID(ctx context.Context, id uuid.UUID) (*entity.Voucher, error)

	// ListRedemptionsByPartner retrieves all redemption records of a partner.
	ListRedemptionsByPartner(ctx context.Context, partnerID uuid.UUID) ([]*entity.RedeemedVoucher, error)

	// FindRedemption retrieves the redemption record for a (partner, voucher)
	// pair, or ErrRedemptionNotFound.
	FindRedemption(ctx context.Context, partnerID, voucherID uuid.UUID) (*entity.RedeemedVoucher, error)

	// RedeemVoucher deducts the voucher cost from the partner's balance and
	// appends the redemption record as a single transactional write. The
	// balance and the absence of a prior redemption are re-checked inside
	// the transaction; on ErrInsufficientPoints or ErrVoucherAlreadyRedeemed
	// nothing is written.
	RedeemVoucher(ctx context.Context, partnerID uuid.UUID, voucher *entity.Voucher) (*entity.RedeemedVoucher, error)
}
