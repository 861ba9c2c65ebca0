package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Voucher is a reward redeemable for accumulated points. Vouchers are
// read-only from this service's perspective except through redemption
// side effects.
type Voucher struct {
	ID             uuid.UUID
	Title          string
	Description    string
	PointsRequired int
	ImageURL       string
	// AssignedPartners restricts the voucher to specific partners.
	// Empty means the voucher is public.
	AssignedPartners []uuid.UUID
}

// IsAvailableTo reports whether the voucher can be offered to the partner:
// either the voucher is public or the partner is in its assignment list.
func (v *Voucher) IsAvailableTo(partnerID uuid.UUID) bool {
	if len(v.AssignedPartners) == 0 {
		return true
	}

	return slices.Contains(v.AssignedPartners, partnerID)
}

// RedeemedVoucher records one redemption. At most one exists per
// (partner, voucher) pair.
type RedeemedVoucher struct {
	ID             uuid.UUID
	VoucherID      uuid.UUID
	Title          string
	Description    string
	PointsRequired int
	RedeemedBy     uuid.UUID
	RedeemedAt     time.Time
}
