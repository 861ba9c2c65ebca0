package auth

import (
	"context"
	"log/slog"
	"sync"

	domainerrors "parivartan/internal/domain/errors"
	"parivartan/internal/domain/repository"
	"parivartan/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// localProvider is a self-contained IdentityProvider backed by the
// credential collection, bcrypt hashes and signed session tokens. Meant for
// development and single-node deployments; production uses Firebase.
type localProvider struct {
	creds  repository.CredentialRepository
	hasher service.PasswordHasher
	tokens service.TokenService
	logger *slog.Logger

	// revoked holds signed-out tokens until they expire. Sessions are
	// otherwise stateless.
	mu      sync.Mutex
	revoked map[string]struct{}
}

// NewLocalProvider constructs the local identity provider.
func NewLocalProvider(creds repository.CredentialRepository, hasher service.PasswordHasher, tokens service.TokenService, logger *slog.Logger) service.IdentityProvider {
	return &localProvider{
		creds:   creds,
		hasher:  hasher,
		tokens:  tokens,
		logger:  logger,
		revoked: make(map[string]struct{}),
	}
}

// SignUp registers a new partner principal and returns its session.
func (p *localProvider) SignUp(ctx context.Context, input *service.SignUpInput) (*service.Session, error) {
	hash, err := p.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	cred := &repository.Credential{
		PrincipalID:  uuid.New(),
		Email:        input.Email,
		PasswordHash: hash,
		IsAdmin:      false,
	}
	if err := p.creds.CreateCredential(ctx, cred); err != nil {
		if errors.Is(err, repository.ErrDuplicateCredential) {
			return nil, domainerrors.ErrPartnerAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create credential")
	}

	token, err := p.tokens.GenerateSessionToken(cred.PrincipalID, false)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate session token")
	}

	return &service.Session{PrincipalID: cred.PrincipalID, Token: token}, nil
}

// SignIn authenticates a partner principal.
func (p *localProvider) SignIn(ctx context.Context, email, password string) (*service.Session, error) {
	return p.signIn(ctx, email, password, false)
}

// AdminSignIn authenticates an admin principal.
func (p *localProvider) AdminSignIn(ctx context.Context, email, password string) (*service.Session, error) {
	return p.signIn(ctx, email, password, true)
}

func (p *localProvider) signIn(ctx context.Context, email, password string, wantAdmin bool) (*service.Session, error) {
	cred, err := p.creds.FindCredentialByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find credential")
	}

	// A mismatched credential class reads the same as a wrong password so
	// the response does not leak which accounts are admins.
	if cred.IsAdmin != wantAdmin || !p.hasher.Check(password, cred.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := p.tokens.GenerateSessionToken(cred.PrincipalID, cred.IsAdmin)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate session token")
	}

	return &service.Session{PrincipalID: cred.PrincipalID, Token: token}, nil
}

// SignOut revokes the session token until it expires.
func (p *localProvider) SignOut(_ context.Context, token string) error {
	if _, err := p.tokens.ValidateSessionToken(token); err != nil {
		return domainerrors.ErrSessionInvalid
	}

	p.mu.Lock()
	p.revoked[token] = struct{}{}
	p.mu.Unlock()

	return nil
}

// VerifySession validates a session token and returns the principal id.
func (p *localProvider) VerifySession(_ context.Context, token string) (uuid.UUID, error) {
	p.mu.Lock()
	_, isRevoked := p.revoked[token]
	p.mu.Unlock()
	if isRevoked {
		return uuid.Nil, domainerrors.ErrSessionInvalid
	}

	claims, err := p.tokens.ValidateSessionToken(token)
	if err != nil {
		return uuid.Nil, domainerrors.ErrSessionInvalid
	}

	return claims.PrincipalID, nil
}
