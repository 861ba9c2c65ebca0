package entity

// IdentityKind tags the resolved identity variant.
type IdentityKind string

const (
	// IdentityNone indicates no authenticated principal, or a principal
	// with no application record.
	IdentityNone IdentityKind = "none"
	// IdentityResolving indicates a resolution is still in flight.
	IdentityResolving IdentityKind = "resolving"
	// IdentityAdmin indicates the session belongs to an administrator.
	IdentityAdmin IdentityKind = "admin"
	// IdentityPartner indicates the session belongs to a partner.
	IdentityPartner IdentityKind = "partner"
)

// Identity is the closed tagged union published by the identity resolver.
// Exactly one variant holds for a given session: Admin and Partner are
// mutually exclusive, with admin taking precedence when a principal happens
// to have both records.
type Identity struct {
	Kind    IdentityKind
	Admin   *AdminUser // set only when Kind == IdentityAdmin
	Partner *Partner   // set only when Kind == IdentityPartner
}

// NoIdentity is the unauthenticated identity.
func NoIdentity() Identity {
	return Identity{Kind: IdentityNone}
}

// ResolvingIdentity is the placeholder while resolution is in flight.
func ResolvingIdentity() Identity {
	return Identity{Kind: IdentityResolving}
}

// AdminIdentity wraps an admin record as a resolved identity.
func AdminIdentity(admin *AdminUser) Identity {
	return Identity{Kind: IdentityAdmin, Admin: admin}
}

// PartnerIdentity wraps a partner record as a resolved identity.
func PartnerIdentity(partner *Partner) Identity {
	return Identity{Kind: IdentityPartner, Partner: partner}
}
