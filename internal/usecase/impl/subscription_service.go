package impl

import (
	"context"
	"log/slog"
	"time"

	"parivartan/config"
	deliverycontext "parivartan/internal/delivery/context"
	"parivartan/internal/domain/entity"
	domainerrors "parivartan/internal/domain/errors"
	"parivartan/internal/domain/repository"
	"parivartan/internal/domain/service"
	"parivartan/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// subscriptionService implements the SubscriptionUsecase interface: plan
// listing and the payment-gated checkout.
type subscriptionService struct {
	partnerRepo repository.PartnerRepository
	payment     service.PaymentProcessor
	events      service.EventPublisher
	plans       []*entity.Plan
	logger      *slog.Logger
	now         func() time.Time
}

// SubscriptionServiceParams holds dependencies for SubscriptionService, injected by Fx.
type SubscriptionServiceParams struct {
	fx.In

	PartnerRepo repository.PartnerRepository
	Payment     service.PaymentProcessor
	Events      service.EventPublisher
	Config      *config.Config
	Logger      *slog.Logger
}

// NewSubscriptionService is the constructor for subscriptionService. Plans
// come from configuration; pricing is never computed here.
func NewSubscriptionService(params SubscriptionServiceParams) usecase.SubscriptionUsecase {
	var plans []*entity.Plan
	if params.Config != nil && params.Config.Payment != nil {
		for _, p := range params.Config.Payment.Plans {
			plans = append(plans, &entity.Plan{
				ID:           p.ID,
				Name:         p.Name,
				Amount:       p.Amount,
				DurationDays: p.DurationDays,
			})
		}
	}

	return &subscriptionService{
		partnerRepo: params.PartnerRepo,
		payment:     params.Payment,
		events:      params.Events,
		plans:       plans,
		logger:      params.Logger,
		now:         time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *subscriptionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListPlans returns the purchasable plans.
func (srv *subscriptionService) ListPlans(_ context.Context) ([]*entity.Plan, error) {
	return srv.plans, nil
}

func (srv *subscriptionService) planByID(id string) (*entity.Plan, bool) {
	for _, p := range srv.plans {
		if p.ID == id {
			return p, true
		}
	}

	return nil, false
}

// Purchase charges the plan and, only on a successful charge, writes the
// active subscription. The same write force-sets the verification status to
// approved; a partner who can pay is considered verified. A failed charge
// writes nothing.
func (srv *subscriptionService) Purchase(ctx context.Context, partnerID uuid.UUID, input *usecase.PurchaseInput) (*entity.Subscription, error) {
	plan, ok := srv.planByID(input.PlanID)
	if !ok {
		return nil, domainerrors.ErrPlanNotFound
	}

	if _, err := srv.partnerRepo.FindPartnerByID(ctx, partnerID); err != nil {
		if errors.Is(err, repository.ErrPartnerNotFound) {
			return nil, domainerrors.ErrPartnerNotFound
		}

		return nil, errors.Wrap(err, "failed to find partner")
	}

	result, err := srv.payment.Charge(ctx, &service.ChargeRequest{
		PartnerID:     partnerID,
		Plan:          plan,
		PaymentMethod: input.PaymentMethod,
	})
	if err != nil {
		srv.log(ctx).Warn("Subscription charge failed",
			slog.String("partner_id", partnerID.String()),
			slog.String("plan_id", plan.ID),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrPaymentFailed.WrapMessage(err.Error())
	}

	start := srv.now()
	sub := &entity.Subscription{
		PlanID:        plan.ID,
		Amount:        plan.Amount,
		Status:        entity.SubscriptionActive,
		StartDate:     start,
		ExpiryDate:    start.AddDate(0, 0, plan.DurationDays),
		PaymentMethod: input.PaymentMethod,
		TransactionID: result.TransactionID,
	}

	if err := srv.partnerRepo.ActivateSubscription(ctx, partnerID, sub); err != nil {
		// The charge succeeded but the record write did not. Surface the
		// failure with the transaction id so support can reconcile.
		srv.log(ctx).Error("Subscription activation failed after charge",
			slog.String("partner_id", partnerID.String()),
			slog.String("transaction_id", result.TransactionID),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to activate subscription")
	}

	srv.log(ctx).Info("Subscription activated",
		slog.String("partner_id", partnerID.String()),
		slog.String("plan_id", plan.ID),
		slog.String("transaction_id", result.TransactionID),
	)

	event := &service.PartnerEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       service.EventSubscriptionActivated,
		PartnerID:  partnerID.String(),
		Detail:     plan.ID,
		OccurredAt: time.Now(),
	}
	if err := srv.events.PublishPartnerEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish subscription event", slog.Any("error", err))
	}

	return sub, nil
}
