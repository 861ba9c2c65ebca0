package repository

import (
	"context"

	"parivartan/internal/errors"

	"github.com/google/uuid"
)

// Credential persistence errors.
var (
	// ErrCredentialNotFound is returned when no credential exists for the email.
	ErrCredentialNotFound = errors.New("credential not found")
	// ErrDuplicateCredential is returned when the email is already registered.
	ErrDuplicateCredential = errors.New("credential already exists")
)

// Credential is a stored login credential used by the local identity
// provider. Production deployments delegate credentials to Firebase Auth
// and never touch this collection.
type Credential struct {
	PrincipalID  uuid.UUID
	Email        string
	PasswordHash string
	IsAdmin      bool
}

// CredentialRepository defines the interface for credential storage used by
// the local identity provider.
type CredentialRepository interface {
	// CreateCredential persists a new credential.
	CreateCredential(ctx context.Context, cred *Credential) error

	// FindCredentialByEmail retrieves a credential by login email.
	FindCredentialByEmail(ctx context.Context, email string) (*Credential, error)
}
