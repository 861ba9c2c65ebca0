package service

import (
	"github.com/google/uuid"
)

// QRCodeService generates and parses voucher redemption receipts encoded as
// QR codes, scanned by stores honoring a redemption.
type QRCodeService interface {
	// GenerateRedemptionQR generates a PNG QR code for a redemption record.
	GenerateRedemptionQR(redemptionID uuid.UUID) ([]byte, error)

	// ParseRedemptionQR parses QR code data and returns the redemption ID.
	ParseRedemptionQR(qrData string) (uuid.UUID, error)
}
