package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestVoucher_IsAvailableTo(t *testing.T) {
	partnerID := uuid.New()
	otherID := uuid.New()

	public := &Voucher{ID: uuid.New()}
	assert.True(t, public.IsAvailableTo(partnerID))

	assigned := &Voucher{ID: uuid.New(), AssignedPartners: []uuid.UUID{partnerID}}
	assert.True(t, assigned.IsAvailableTo(partnerID))
	assert.False(t, assigned.IsAvailableTo(otherID))
}
