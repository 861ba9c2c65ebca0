package service

import (
	"context"
	"time"
)

// Partner lifecycle event types published for downstream consumers
// (notification workers, audit).
const (
	EventPartnerRegistered      = "partner.registered"
	EventDocumentSubmitted      = "partner.document_submitted"
	EventSubmittedForReview     = "partner.submitted_for_review"
	EventVerificationTransition = "partner.verification_transition"
	EventSubscriptionActivated  = "partner.subscription_activated"
	EventVoucherRedeemed        = "partner.voucher_redeemed"
)

// PartnerEvent represents a partner lifecycle event.
type PartnerEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	Type       string    `json:"type"`
	PartnerID  string    `json:"partner_id"`
	Detail     string    `json:"detail,omitempty"` // e.g. document type, new status, voucher id
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishPartnerEvent publishes a partner lifecycle event for async processing
	PublishPartnerEvent(ctx context.Context, event *PartnerEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
