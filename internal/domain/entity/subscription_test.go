package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSubscription_IsActiveAt(t *testing.T) {
	expiry := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	sub := &Subscription{Status: SubscriptionActive, ExpiryDate: expiry}

	assert.True(t, sub.IsActiveAt(expiry.Add(-time.Second)))

	// Expiry is exclusive: the subscription is no longer active at the
	// expiry instant itself.
	assert.False(t, sub.IsActiveAt(expiry))
	assert.False(t, sub.IsActiveAt(expiry.Add(time.Second)))
}

func TestSubscription_IsActiveAt_NonActiveStatus(t *testing.T) {
	future := time.Now().Add(24 * time.Hour)

	expired := &Subscription{Status: SubscriptionExpired, ExpiryDate: future}
	assert.False(t, expired.IsActiveAt(time.Now()))

	cancelled := &Subscription{Status: SubscriptionCancelled, ExpiryDate: future}
	assert.False(t, cancelled.IsActiveAt(time.Now()))
}
