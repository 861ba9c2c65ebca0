package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "parivartan/internal/delivery/context"
	"parivartan/internal/domain/entity"
	"parivartan/internal/domain/repository"
	"parivartan/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// gateService implements the GateUsecase interface: the state machine
// mapping (identity kind, verification status, subscription status) to the
// single allowed destination.
type gateService struct {
	adminRepo   repository.AdminRepository
	partnerRepo repository.PartnerRepository
	logger      *slog.Logger
	now         func() time.Time
}

// GateServiceParams holds dependencies for GateService, injected by Fx.
type GateServiceParams struct {
	fx.In

	AdminRepo   repository.AdminRepository
	PartnerRepo repository.PartnerRepository
	Logger      *slog.Logger
}

// NewGateService is the constructor for gateService.
func NewGateService(params GateServiceParams) usecase.GateUsecase {
	return &gateService{
		adminRepo:   params.AdminRepo,
		partnerRepo: params.PartnerRepo,
		logger:      params.Logger,
		now:         time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *gateService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ResolveRoute derives the destination from the identity snapshot alone.
// Verification status is evaluated before subscription status; subscription
// is irrelevant unless the partner is approved.
func (srv *gateService) ResolveRoute(identity entity.Identity) entity.Route {
	switch identity.Kind {
	case entity.IdentityResolving:
		return entity.RouteLoading
	case entity.IdentityAdmin:
		return entity.RouteAdminArea
	case entity.IdentityPartner:
		return srv.routeForPartner(identity.Partner)
	default:
		return entity.RouteSignIn
	}
}

func (srv *gateService) routeForPartner(partner *entity.Partner) entity.Route {
	switch partner.VerificationStatus {
	case entity.VerificationRejected:
		// The only exit from the rejected view is re-upload, which keeps the
		// status rejected until an admin re-opens the review.
		return entity.RouteVerificationStatus

	case entity.VerificationApproved:
		if partner.HasActiveSubscription(srv.now()) {
			return entity.RouteDashboard
		}

		return entity.RouteSubscriptionPlans

	default: // pending
		if !partner.IsSubmissionComplete() {
			return entity.RouteDocumentUpload
		}

		return entity.RouteVerificationPending
	}
}

// RouteForPrincipal re-derives the route from the latest records. The gate
// is stateless per call: nothing from a previous navigation is trusted.
func (srv *gateService) RouteForPrincipal(ctx context.Context, principalID uuid.UUID) (entity.Route, error) {
	admin, err := srv.adminRepo.FindAdminByID(ctx, principalID)
	if err == nil {
		return srv.ResolveRoute(entity.AdminIdentity(admin)), nil
	}
	if !errors.Is(err, repository.ErrAdminNotFound) {
		return "", errors.Wrap(err, "failed to look up admin record")
	}

	partner, err := srv.partnerRepo.FindPartnerByID(ctx, principalID)
	if err != nil {
		// Authenticated non-admin principal whose partner record cannot be
		// loaded: fail open toward the least-privileged reachable state,
		// never toward the dashboard.
		srv.log(ctx).Warn("Partner record unavailable, routing to document upload",
			slog.String("principal_id", principalID.String()),
			slog.Any("error", err),
		)

		return entity.RouteDocumentUpload, nil
	}

	return srv.ResolveRoute(entity.PartnerIdentity(partner)), nil
}
