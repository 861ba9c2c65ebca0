// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "parivartan/internal/delivery/context"
	"parivartan/internal/domain/entity"
	domainerrors "parivartan/internal/domain/errors"
	"parivartan/internal/domain/repository"
	"parivartan/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// identityService implements the IdentityUsecase interface.
type identityService struct {
	adminRepo   repository.AdminRepository
	partnerRepo repository.PartnerRepository
	logger      *slog.Logger
}

// IdentityServiceParams holds dependencies for IdentityService, injected by Fx.
type IdentityServiceParams struct {
	fx.In

	AdminRepo   repository.AdminRepository
	PartnerRepo repository.PartnerRepository
	Logger      *slog.Logger
}

// NewIdentityService is the constructor for identityService.
func NewIdentityService(params IdentityServiceParams) usecase.IdentityUsecase {
	return &identityService{
		adminRepo:   params.AdminRepo,
		partnerRepo: params.PartnerRepo,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *identityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Resolve classifies the principal into exactly one identity variant.
// Admin lookup runs first: a principal that happens to have both records is
// treated as an admin.
func (srv *identityService) Resolve(ctx context.Context, principalID uuid.UUID) (entity.Identity, error) {
	admin, err := srv.adminRepo.FindAdminByID(ctx, principalID)
	if err == nil {
		return entity.AdminIdentity(admin), nil
	}
	if !errors.Is(err, repository.ErrAdminNotFound) {
		return entity.NoIdentity(), errors.Wrap(err, "failed to look up admin record")
	}

	partner, err := srv.partnerRepo.FindPartnerByID(ctx, principalID)
	if err == nil {
		return entity.PartnerIdentity(partner), nil
	}
	if !errors.Is(err, repository.ErrPartnerNotFound) {
		return entity.NoIdentity(), errors.Wrap(err, "failed to look up partner record")
	}

	// The principal exists in the identity provider but has no application
	// record. A data-integrity condition, not a crash: resolve to the
	// least-privileged state and surface a recoverable error.
	srv.log(ctx).Warn("Principal has no application record",
		slog.String("principal_id", principalID.String()),
	)

	return entity.NoIdentity(), domainerrors.ErrPrincipalRecordMissing
}
