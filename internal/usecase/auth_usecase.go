package usecase

import (
	"context"

	"parivartan/internal/domain/entity"
)

// --- Input DTOs ---

// SignUpInput defines the data required to register a new partner.
type SignUpInput struct {
	Email               string
	Password            string
	Name                string
	Phone               string
	Organization        string
	PartnerType         entity.PartnerType
	Address             entity.Address
	SupportedWasteTypes []entity.WasteType
}

// SignInInput defines the data required to sign in.
type SignInInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// SessionOutput returns the session token after a successful sign-in.
type SessionOutput struct {
	Token    string
	Identity entity.Identity
}

// AuthUsecase defines the sign-up/sign-in surface over the external
// identity provider. This is the contract the delivery layer depends on.
type AuthUsecase interface {
	// SignUp registers the principal with the identity provider and creates
	// the partner record with pending verification and no documents.
	SignUp(ctx context.Context, input *SignUpInput) (*SessionOutput, error)

	// SignIn authenticates a partner.
	SignIn(ctx context.Context, input *SignInInput) (*SessionOutput, error)

	// AdminSignIn authenticates an admin.
	AdminSignIn(ctx context.Context, input *SignInInput) (*SessionOutput, error)

	// SignOut invalidates the session behind the token.
	SignOut(ctx context.Context, token string) error
}
