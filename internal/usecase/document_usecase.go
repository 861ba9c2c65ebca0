package usecase

import (
	"context"
	"io"

	"parivartan/internal/domain/entity"

	"github.com/google/uuid"
)

// DocumentUpload describes one document submission. OnProgress, when set,
// receives a monotonically increasing percentage in [0,100]; 100 is reported
// only after the document record has been written.
type DocumentUpload struct {
	Type        entity.DocumentType
	FileName    string
	ContentType string
	Size        int64
	Content     io.Reader
	OnProgress  func(percent int)
}

// DocumentUsecase tracks the per-partner document lifecycle: submissions,
// supersession and the completeness signal gating submit-for-review.
type DocumentUsecase interface {
	// Submit validates the upload, stores the file and upserts the live
	// document of that type. Validation failures and upload failures leave
	// the partner record untouched.
	Submit(ctx context.Context, partnerID uuid.UUID, upload *DocumentUpload) (*entity.PartnerDocument, error)

	// IsSubmissionComplete reports whether every mandatory document type has
	// a live document, regardless of review outcome.
	IsSubmissionComplete(ctx context.Context, partnerID uuid.UUID) (bool, error)

	// SubmitForReview flags a submission-complete partner for admin review.
	// Incomplete submissions are rejected with a validation error.
	SubmitForReview(ctx context.Context, partnerID uuid.UUID) error
}
