package usecase

import (
	"context"

	"parivartan/internal/domain/entity"

	"github.com/google/uuid"
)

// PurchaseInput describes one subscription checkout attempt.
type PurchaseInput struct {
	PlanID        string
	PaymentMethod string
}

// SubscriptionUsecase lists plans and runs the subscription checkout.
type SubscriptionUsecase interface {
	// ListPlans returns the purchasable plans.
	ListPlans(ctx context.Context) ([]*entity.Plan, error)

	// Purchase charges the plan through the payment processor. On success it
	// activates the subscription and applies the approve-on-activation
	// transition; on failure nothing is written.
	Purchase(ctx context.Context, partnerID uuid.UUID, input *PurchaseInput) (*entity.Subscription, error)
}
