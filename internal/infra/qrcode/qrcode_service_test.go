package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQRCodeService_GenerateRedemptionQR(t *testing.T) {
	service := NewQRCodeService(256, "M")
	redemptionID := uuid.New()

	png, err := service.GenerateRedemptionQR(redemptionID)
	require.NoError(t, err)
	require.NotEmpty(t, png)

	// PNG magic bytes.
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, png[:4])
}

func TestQRCodeService_ParseRedemptionQR(t *testing.T) {
	service := NewQRCodeService(256, "M")
	redemptionID := uuid.New()

	payload, err := json.Marshal(QRCodeData{
		RedemptionID: redemptionID.String(),
		Type:         "redemption",
	})
	require.NoError(t, err)

	parsed, err := service.ParseRedemptionQR(string(payload))
	require.NoError(t, err)
	assert.Equal(t, redemptionID, parsed)
}

func TestQRCodeService_ParseRedemptionQR_WrongType(t *testing.T) {
	service := NewQRCodeService(256, "M")

	payload, err := json.Marshal(QRCodeData{
		RedemptionID: uuid.New().String(),
		Type:         "coupon",
	})
	require.NoError(t, err)

	_, err = service.ParseRedemptionQR(string(payload))
	assert.Error(t, err)
}

func TestQRCodeService_ParseRedemptionQR_InvalidPayload(t *testing.T) {
	service := NewQRCodeService(256, "M")

	_, err := service.ParseRedemptionQR("not json at all")
	assert.Error(t, err)
}

func TestQRCodeService_UnknownRecoveryLevelDefaultsToMedium(t *testing.T) {
	service := NewQRCodeService(128, "X")
	png, err := service.GenerateRedemptionQR(uuid.New())
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}
