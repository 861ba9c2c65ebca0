package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionClaims defines the custom claims carried by session tokens issued
// by the local identity provider.
type SessionClaims struct {
	PrincipalID uuid.UUID
	IsAdmin     bool
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating session
// tokens. This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateSessionToken creates a new session token for a principal.
	GenerateSessionToken(principalID uuid.UUID, isAdmin bool) (string, error)

	// ValidateSessionToken checks the validity of a token string and returns
	// its claims.
	ValidateSessionToken(tokenString string) (*SessionClaims, error)
}
