package service

import (
	"context"

	"parivartan/internal/domain/entity"

	"github.com/google/uuid"
)

// SignUpInput carries the data required to register a new partner principal.
type SignUpInput struct {
	Email    string
	Password string
	Profile  *entity.Partner
}

// Session is the authenticated session handed back by the provider.
type Session struct {
	PrincipalID uuid.UUID
	Token       string
}

// SessionChange is one session-change notification. PrincipalID is nil when
// the session signed out. Seq is monotonically increasing in delivery order;
// resolutions triggered by an older Seq must never overwrite newer state.
type SessionChange struct {
	Seq         uint64
	PrincipalID *uuid.UUID
}

// IdentityProvider abstracts the external identity provider. It owns
// credential storage and session persistence; this service only consumes
// the authenticated principal id.
type IdentityProvider interface {
	// SignUp registers a new partner principal and returns its session.
	SignUp(ctx context.Context, input *SignUpInput) (*Session, error)

	// SignIn authenticates a partner principal.
	SignIn(ctx context.Context, email, password string) (*Session, error)

	// AdminSignIn authenticates an admin principal.
	AdminSignIn(ctx context.Context, email, password string) (*Session, error)

	// SignOut invalidates the session behind the token.
	SignOut(ctx context.Context, token string) error

	// VerifySession validates a session token and returns the principal id.
	VerifySession(ctx context.Context, token string) (uuid.UUID, error)
}
