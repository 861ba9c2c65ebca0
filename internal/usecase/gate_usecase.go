package usecase

import (
	"context"

	"parivartan/internal/domain/entity"

	"github.com/google/uuid"
)

// GateUsecase is the verification and subscription gate: it maps a resolved
// identity to the single application area the session may currently reach.
type GateUsecase interface {
	// ResolveRoute derives the destination from the identity snapshot. Pure:
	// two snapshots with identical verification and subscription fields
	// always yield the same route.
	ResolveRoute(identity entity.Identity) entity.Route

	// RouteForPrincipal re-reads the principal's records and derives the
	// route from the latest state. Decisions are never served from a cache;
	// a partner record that cannot be loaded for an authenticated non-admin
	// principal degrades to the document-upload route, never the dashboard.
	RouteForPrincipal(ctx context.Context, principalID uuid.UUID) (entity.Route, error)
}
