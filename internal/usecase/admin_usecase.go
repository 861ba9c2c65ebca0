package usecase

import (
	"context"

	"parivartan/internal/domain/entity"

	"github.com/google/uuid"
)

// ReviewDocumentInput carries one document review decision.
type ReviewDocumentInput struct {
	DocumentType entity.DocumentType
	Status       entity.DocumentReviewStatus
	Remarks      string
}

// AdminUsecase covers the admin review surface: the queue of partners, per
// document review decisions and verification status transitions.
type AdminUsecase interface {
	// ListPartners returns partners in the given verification state.
	ListPartners(ctx context.Context, status entity.VerificationStatus) ([]*entity.Partner, error)

	// GetPartner returns one partner record.
	GetPartner(ctx context.Context, partnerID uuid.UUID) (*entity.Partner, error)

	// ReviewDocument records the review outcome of a single live document.
	ReviewDocument(ctx context.Context, partnerID uuid.UUID, input *ReviewDocumentInput) error

	// TransitionVerification moves the partner verification status. Allowed:
	// pending to approved or rejected, and rejected back to pending
	// (re-open). All other transitions are rejected.
	TransitionVerification(ctx context.Context, partnerID uuid.UUID, to entity.VerificationStatus) error
}
