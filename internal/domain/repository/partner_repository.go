package repository

import (
	"context"

	"parivartan/internal/domain/entity"
	"parivartan/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for partner persistence.
var (
	// ErrPartnerNotFound is returned when a partner record is not found.
	ErrPartnerNotFound = errors.New("partner not found")
	// ErrDuplicatePartner is returned when creating a partner that already exists.
	ErrDuplicatePartner = errors.New("partner already exists")
	// ErrDocumentNotFound is returned when no live document of the requested
	// type exists on the partner.
	ErrDocumentNotFound = errors.New("partner document not found")
)

// ProfileUpdate carries the partner-editable profile fields. Nil fields are
// left untouched so that concurrent writers never clobber each other's
// unrelated fields.
type ProfileUpdate struct {
	Name                *string
	Phone               *string
	Organization        *string
	PartnerType         *entity.PartnerType
	Address             *entity.Address
	SupportedWasteTypes *[]entity.WasteType
}

// PartnerRepository defines the interface for partner-related store
// operations. All mutations are field-wise merges, never whole-record
// overwrites.
type PartnerRepository interface {
	// CreatePartner persists a new partner record.
	CreatePartner(ctx context.Context, partner *entity.Partner) error

	// FindPartnerByID retrieves a partner record by principal id.
	FindPartnerByID(ctx context.Context, id uuid.UUID) (*entity.Partner, error)

	// FindPartnerByEmail retrieves a partner record by email.
	FindPartnerByEmail(ctx context.Context, email string) (*entity.Partner, error)

	// ListPartnersByVerificationStatus retrieves partners in the given state,
	// for the admin review queue.
	ListPartnersByVerificationStatus(ctx context.Context, status entity.VerificationStatus) ([]*entity.Partner, error)

	// UpdateProfile applies a field-wise profile merge.
	UpdateProfile(ctx context.Context, id uuid.UUID, update *ProfileUpdate) error

	// UpsertDocument replaces the live document of the same type, or appends
	// a new one. Supersession, not accumulation.
	UpsertDocument(ctx context.Context, id uuid.UUID, doc *entity.PartnerDocument) error

	// UpdateDocumentReview sets the review status and remarks of the live
	// document of the given type.
	UpdateDocumentReview(ctx context.Context, id uuid.UUID, docType entity.DocumentType, status entity.DocumentReviewStatus, remarks string) error

	// UpdateVerificationStatus sets the partner verification status.
	UpdateVerificationStatus(ctx context.Context, id uuid.UUID, status entity.VerificationStatus) error

	// ActivateSubscription writes the subscription and force-sets the
	// verification status to approved in a single atomic update. This backs
	// the named approve-on-subscription-activation transition.
	ActivateSubscription(ctx context.Context, id uuid.UUID, sub *entity.Subscription) error

	// ListenPartner subscribes to the partner record. The channel delivers
	// the full current value on every change and closes when ctx is done.
	ListenPartner(ctx context.Context, id uuid.UUID) (<-chan *entity.Partner, error)
}
