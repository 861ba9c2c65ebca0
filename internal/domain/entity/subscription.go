// Package entity contains the core business objects of the project.
package entity

import (
	"time"
)

// SubscriptionStatus represents the lifecycle state of a paid subscription.
type SubscriptionStatus string

const (
	// SubscriptionActive indicates a currently valid subscription.
	SubscriptionActive SubscriptionStatus = "active"
	// SubscriptionExpired indicates the subscription passed its expiry date.
	SubscriptionExpired SubscriptionStatus = "expired"
	// SubscriptionCancelled indicates the subscription was cancelled.
	SubscriptionCancelled SubscriptionStatus = "cancelled"
)

// Subscription is a paid, time-bounded entitlement required for dashboard
// access. It is created only by a successful payment.
type Subscription struct {
	PlanID        string
	Amount        float64
	Status        SubscriptionStatus
	StartDate     time.Time
	ExpiryDate    time.Time
	PaymentMethod string
	TransactionID string
}

// IsActiveAt reports whether the subscription grants access at the given
// instant. Expiry is re-checked here on every call; callers must not cache
// the outcome.
func (s *Subscription) IsActiveAt(now time.Time) bool {
	return s.Status == SubscriptionActive && now.Before(s.ExpiryDate)
}

// Plan describes a purchasable subscription plan. Pricing is configured
// externally; the service never computes it.
type Plan struct {
	ID           string
	Name         string
	Amount       float64
	DurationDays int
}
