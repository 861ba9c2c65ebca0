package impl

import (
	"context"
	"log/slog"
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

// allowedTransitions is the admin-driven part of the verification state
// machine. Approval through payment takes a separate path and is not
// listed here.
var allowedTransitions = map[entity.VerificationStatus][]entity.VerificationStatus{
	entity.VerificationPending:  {entity.VerificationApproved, entity.VerificationRejected},
	entity.VerificationRejected: {entity.VerificationPending},
}

// adminService implements the AdminUsecase interface.
type adminService struct {
	partnerRepo repository.PartnerRepository
	events      service.EventPublisher
	logger      *slog.Logger
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	PartnerRepo repository.PartnerRepository
	Events      service.EventPublisher
	Logger      *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		partnerRepo: params.PartnerRepo,
		events:      params.Events,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListPartners returns the review queue for one verification state.
func (srv *adminService) ListPartners(ctx context.Context, status entity.VerificationStatus) ([]*entity.Partner, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown verification status: " + string(status))
	}

	partners, err := srv.partnerRepo.ListPartnersByVerificationStatus(ctx, status)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list partners")
	}

	return partners, nil
}

// GetPartner returns one partner record.
func (srv *adminService) GetPartner(ctx context.Context, partnerID uuid.UUID) (*entity.Partner, error) {
	partner, err := srv.partnerRepo.FindPartnerByID(ctx, partnerID)
	if err != nil {
		if errors.Is(err, repository.ErrPartnerNotFound) {
			return nil, domainerrors.ErrPartnerNotFound
		}

		return nil, errors.Wrap(err, "failed to find partner")
	}

	return partner, nil
}

// ReviewDocument records the review outcome of the live document of the
// given type. The partner's verification status is untouched; that moves
// only through TransitionVerification.
func (srv *adminService) ReviewDocument(ctx context.Context, partnerID uuid.UUID, input *usecase.ReviewDocumentInput) error {
	if !input.DocumentType.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("unknown document type: " + string(input.DocumentType))
	}
	if input.Status != entity.DocumentReviewApproved && input.Status != entity.DocumentReviewRejected {
		return domainerrors.ErrValidationFailed.WithDetails("review outcome must be approved or rejected")
	}

	err := srv.partnerRepo.UpdateDocumentReview(ctx, partnerID, input.DocumentType, input.Status, input.Remarks)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrPartnerNotFound):
			return domainerrors.ErrPartnerNotFound
		case errors.Is(err, repository.ErrDocumentNotFound):
			return domainerrors.ErrNotFound.WrapMessage("no document of this type has been uploaded")
		default:
			return errors.Wrap(err, "failed to update document review")
		}
	}

	srv.log(ctx).Info("Document reviewed",
		slog.String("partner_id", partnerID.String()),
		slog.String("document_type", string(input.DocumentType)),
		slog.String("status", string(input.Status)),
	)

	return nil
}

// TransitionVerification moves the partner verification status along the
// admin-driven edges: pending to approved or rejected, and rejected back to
// pending. Everything else is an invalid transition.
func (srv *adminService) TransitionVerification(ctx context.Context, partnerID uuid.UUID, to entity.VerificationStatus) error {
	if !to.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("unknown verification status: " + string(to))
	}

	partner, err := srv.partnerRepo.FindPartnerByID(ctx, partnerID)
	if err != nil {
		if errors.Is(err, repository.ErrPartnerNotFound) {
			return domainerrors.ErrPartnerNotFound
		}

		return errors.Wrap(err, "failed to find partner")
	}

	if !transitionAllowed(partner.VerificationStatus, to) {
		return domainerrors.ErrInvalidTransition.WithDetails(
			string(partner.VerificationStatus) + " -> " + string(to))
	}

	if err := srv.partnerRepo.UpdateVerificationStatus(ctx, partnerID, to); err != nil {
		return errors.Wrap(err, "failed to update verification status")
	}

	srv.log(ctx).Info("Verification status transitioned",
		slog.String("partner_id", partnerID.String()),
		slog.String("from", string(partner.VerificationStatus)),
		slog.String("to", string(to)),
	)

	event := &service.PartnerEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       service.EventVerificationTransition,
		PartnerID:  partnerID.String(),
		Detail:     string(to),
		OccurredAt: time.Now(),
	}
	if err := srv.events.PublishPartnerEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish verification event", slog.Any("error", err))
	}

	return nil
}

func transitionAllowed(from, to entity.VerificationStatus) bool {
	for _, allowed := range allowedTransitions[from] {
		if allowed == to {
			return true
		}
	}

	return false
}
