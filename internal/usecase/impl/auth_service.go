package impl

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

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

// authService implements the AuthUsecase interface. Every successful
// sign-in, sign-up and sign-out also feeds the session watcher, stamped
// with a monotonically increasing sequence number.
type authService struct {
	provider    service.IdentityProvider
	partnerRepo repository.PartnerRepository
	resolver    usecase.IdentityUsecase
	watcher     *SessionWatcher
	events      service.EventPublisher
	logger      *slog.Logger

	seq atomic.Uint64
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	Provider    service.IdentityProvider
	PartnerRepo repository.PartnerRepository
	Resolver    usecase.IdentityUsecase
	Watcher     *SessionWatcher
	Events      service.EventPublisher
	Logger      *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		provider:    params.Provider,
		partnerRepo: params.PartnerRepo,
		resolver:    params.Resolver,
		watcher:     params.Watcher,
		events:      params.Events,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignUp registers the principal with the identity provider, creates the
// partner record in its initial state (pending verification, no documents,
// zero points) and opens the session.
func (srv *authService) SignUp(ctx context.Context, input *usecase.SignUpInput) (*usecase.SessionOutput, error) {
	if !input.PartnerType.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown partner type: " + string(input.PartnerType))
	}

	now := time.Now()
	partner := &entity.Partner{
		Email:               input.Email,
		Name:                input.Name,
		Phone:               input.Phone,
		Organization:        input.Organization,
		PartnerType:         input.PartnerType,
		Address:             input.Address,
		SupportedWasteTypes: input.SupportedWasteTypes,
		VerificationStatus:  entity.VerificationPending,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	session, err := srv.provider.SignUp(ctx, &service.SignUpInput{
		Email:    input.Email,
		Password: input.Password,
		Profile:  partner,
	})
	if err != nil {
		return nil, errors.Wrap(err, "identity provider sign-up failed")
	}

	partner.ID = session.PrincipalID
	if err := srv.partnerRepo.CreatePartner(ctx, partner); err != nil {
		if errors.Is(err, repository.ErrDuplicatePartner) {
			return nil, domainerrors.ErrPartnerAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create partner record")
	}

	srv.log(ctx).Info("Partner registered",
		slog.String("partner_id", partner.ID.String()),
		slog.String("partner_type", string(partner.PartnerType)),
	)

	event := &service.PartnerEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       service.EventPartnerRegistered,
		PartnerID:  partner.ID.String(),
		OccurredAt: time.Now(),
	}
	if err := srv.events.PublishPartnerEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish registration event", slog.Any("error", err))
	}

	srv.notifySession(&session.PrincipalID)

	return &usecase.SessionOutput{
		Token:    session.Token,
		Identity: entity.PartnerIdentity(partner),
	}, nil
}

// SignIn authenticates a partner and resolves its identity.
func (srv *authService) SignIn(ctx context.Context, input *usecase.SignInInput) (*usecase.SessionOutput, error) {
	session, err := srv.provider.SignIn(ctx, input.Email, input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "sign-in failed")
	}

	identity, err := srv.resolver.Resolve(ctx, session.PrincipalID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve identity")
	}

	srv.notifySession(&session.PrincipalID)

	return &usecase.SessionOutput{Token: session.Token, Identity: identity}, nil
}

// AdminSignIn authenticates an admin. A principal that authenticates but
// does not resolve to the admin identity is refused.
func (srv *authService) AdminSignIn(ctx context.Context, input *usecase.SignInInput) (*usecase.SessionOutput, error) {
	session, err := srv.provider.AdminSignIn(ctx, input.Email, input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "admin sign-in failed")
	}

	identity, err := srv.resolver.Resolve(ctx, session.PrincipalID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve identity")
	}
	if identity.Kind != entity.IdentityAdmin {
		return nil, domainerrors.ErrForbidden
	}

	srv.notifySession(&session.PrincipalID)

	return &usecase.SessionOutput{Token: session.Token, Identity: identity}, nil
}

// SignOut invalidates the session and publishes the signed-out state.
func (srv *authService) SignOut(ctx context.Context, token string) error {
	if err := srv.provider.SignOut(ctx, token); err != nil {
		return errors.Wrap(err, "sign-out failed")
	}

	srv.notifySession(nil)

	return nil
}

// notifySession feeds the watcher one session change. The background
// resolution must outlive the request, so the watcher gets a detached
// context.
func (srv *authService) notifySession(principalID *uuid.UUID) {
	srv.watcher.OnSessionChange(context.Background(), service.SessionChange{
		Seq:         srv.seq.Add(1),
		PrincipalID: principalID,
	})
}
