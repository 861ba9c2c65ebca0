package service

import (
	"context"

	"parivartan/internal/domain/entity"

	"github.com/google/uuid"
)

// ChargeRequest describes one payment attempt for a subscription plan.
type ChargeRequest struct {
	PartnerID     uuid.UUID
	Plan          *entity.Plan
	PaymentMethod string
}

// ChargeResult is the outcome of a successful charge.
type ChargeResult struct {
	TransactionID string
}

// PaymentProcessor abstracts the opaque external payment call. The service
// only consumes the success outcome and a transaction identifier; a failed
// charge is surfaced as an error and nothing is written.
type PaymentProcessor interface {
	Charge(ctx context.Context, req *ChargeRequest) (*ChargeResult, error)
}
