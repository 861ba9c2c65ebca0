// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"parivartan/internal/domain/entity"

	"github.com/google/uuid"
)

// IdentityUsecase resolves an authenticated principal into exactly one
// identity variant. Admin lookup takes precedence over partner lookup; a
// principal with neither record resolves to none with a recoverable error.
type IdentityUsecase interface {
	// Resolve classifies the principal. Returns the none identity together
	// with a principal-record-missing error when the principal exists in the
	// identity provider but has no application record.
	Resolve(ctx context.Context, principalID uuid.UUID) (entity.Identity, error)
}
