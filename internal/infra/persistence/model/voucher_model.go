package model

import (
	"time"

	"parivartan/internal/domain/entity"

	"github.com/google/uuid"
)

// VoucherModel mirrors the 'vouchers' collection. The document id is the
// voucher id. Vouchers are written by the catalog tooling, never here.
type VoucherModel struct {
	Title            string   `firestore:"title"`
	Description      string   `firestore:"description"`
	PointsRequired   int      `firestore:"pointsRequired"`
	ImageURL         string   `firestore:"imageUrl"`
	AssignedPartners []string `firestore:"assignedPartners"`
}

// ToEntity maps the document back to the domain voucher. Assignment
// entries that fail to parse are skipped rather than failing the read.
func (m *VoucherModel) ToEntity(id uuid.UUID) *entity.Voucher {
	v := &entity.Voucher{
		ID:             id,
		Title:          m.Title,
		Description:    m.Description,
		PointsRequired: m.PointsRequired,
		ImageURL:       m.ImageURL,
	}

	for _, raw := range m.AssignedPartners {
		if partnerID, err := uuid.Parse(raw); err == nil {
			v.AssignedPartners = append(v.AssignedPartners, partnerID)
		}
	}

	return v
}

// RedemptionModel mirrors the 'redemptions' collection. The document id is
// "<partnerID>_<voucherID>", which makes the duplicate check a plain
// existence check inside the redemption transaction.
type RedemptionModel struct {
	ID             string    `firestore:"id"`
	VoucherID      string    `firestore:"voucherId"`
	Title          string    `firestore:"title"`
	Description    string    `firestore:"description"`
	PointsRequired int       `firestore:"pointsRequired"`
	RedeemedBy     string    `firestore:"redeemedBy"`
	RedeemedAt     time.Time `firestore:"redeemedAt"`
}

// RedemptionFromEntity maps a redemption record onto its document shape.
func RedemptionFromEntity(r *entity.RedeemedVoucher) *RedemptionModel {
	return &RedemptionModel{
		ID:             r.ID.String(),
		VoucherID:      r.VoucherID.String(),
		Title:          r.Title,
		Description:    r.Description,
		PointsRequired: r.PointsRequired,
		RedeemedBy:     r.RedeemedBy.String(),
		RedeemedAt:     r.RedeemedAt,
	}
}

// ToEntity maps the document back to the domain redemption record.
func (m *RedemptionModel) ToEntity() *entity.RedeemedVoucher {
	id, _ := uuid.Parse(m.ID)
	voucherID, _ := uuid.Parse(m.VoucherID)
	redeemedBy, _ := uuid.Parse(m.RedeemedBy)

	return &entity.RedeemedVoucher{
		ID:             id,
		VoucherID:      voucherID,
		Title:          m.Title,
		Description:    m.Description,
		PointsRequired: m.PointsRequired,
		RedeemedBy:     redeemedBy,
		RedeemedAt:     m.RedeemedAt,
	}
}
