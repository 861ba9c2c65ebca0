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

// partnerService implements the PartnerUsecase interface.
type partnerService struct {
	partnerRepo repository.PartnerRepository
	logger      *slog.Logger
}

// PartnerServiceParams holds dependencies for PartnerService, injected by Fx.
type PartnerServiceParams struct {
	fx.In

	PartnerRepo repository.PartnerRepository
	Logger      *slog.Logger
}

// NewPartnerService is the constructor for partnerService.
func NewPartnerService(params PartnerServiceParams) usecase.PartnerUsecase {
	return &partnerService{
		partnerRepo: params.PartnerRepo,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *partnerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile returns the partner's current record.
func (srv *partnerService) GetProfile(ctx context.Context, partnerID uuid.UUID) (*entity.Partner, error) {
	partner, err := srv.partnerRepo.FindPartnerByID(ctx, partnerID)
	if err != nil {
		if errors.Is(err, repository.ErrPartnerNotFound) {
			return nil, domainerrors.ErrPartnerNotFound
		}

		return nil, errors.Wrap(err, "failed to find partner")
	}

	return partner, nil
}

// UpdateProfile merges the set fields into the record and returns the
// result. Unset fields survive concurrent writers untouched.
func (srv *partnerService) UpdateProfile(ctx context.Context, partnerID uuid.UUID, update *repository.ProfileUpdate) (*entity.Partner, error) {
	if update == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("profile update payload is empty")
	}
	if update.PartnerType != nil && !update.PartnerType.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown partner type: " + string(*update.PartnerType))
	}

	if err := srv.partnerRepo.UpdateProfile(ctx, partnerID, update); err != nil {
		if errors.Is(err, repository.ErrPartnerNotFound) {
			return nil, domainerrors.ErrPartnerNotFound
		}

		return nil, errors.Wrap(err, "failed to update profile")
	}

	partner, err := srv.partnerRepo.FindPartnerByID(ctx, partnerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload partner")
	}

	srv.log(ctx).Info("Partner profile updated", slog.String("partner_id", partnerID.String()))

	return partner, nil
}
