package auth

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"parivartan/config"
	domainerrors "parivartan/internal/domain/errors"
	"parivartan/internal/domain/repository"
	"parivartan/internal/domain/service"
	mockRepo "parivartan/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newLocalProviderForTest(t *testing.T) (*mockRepo.MockCredentialRepository, service.PasswordHasher, service.IdentityProvider) {
	t.Helper()

	creds := mockRepo.NewMockCredentialRepository(t)
	hasher := NewBcryptHasher(bcrypt.MinCost)
	tokens, err := NewJWTService(&config.Config{
		Identity: &config.IdentityConfig{
			SecretKey: "test_session_secret_key_very_long_for_testing",
		},
	})
	require.NoError(t, err)

	return creds, hasher, NewLocalProvider(creds, hasher, tokens, testLogger())
}

func partnerCredential(t *testing.T, hasher service.PasswordHasher, password string, isAdmin bool) *repository.Credential {
	t.Helper()

	hash, err := hasher.Hash(password)
	require.NoError(t, err)

	return &repository.Credential{
		PrincipalID:  uuid.New(),
		Email:        "ops@greenloop.example",
		PasswordHash: hash,
		IsAdmin:      isAdmin,
	}
}

func TestLocalProvider_SignUpAndVerify(t *testing.T) {
	creds, _, provider := newLocalProviderForTest(t)

	ctx := context.Background()

	creds.EXPECT().
		CreateCredential(ctx, mock.AnythingOfType("*repository.Credential")).
		Return(nil)

	session, err := provider.SignUp(ctx, &service.SignUpInput{
		Email:    "ops@greenloop.example",
		Password: "s3cret-enough",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.NotEqual(t, uuid.Nil, session.PrincipalID)

	principalID, err := provider.VerifySession(ctx, session.Token)
	require.NoError(t, err)
	assert.Equal(t, session.PrincipalID, principalID)
}

func TestLocalProvider_SignUp_DuplicateEmail(t *testing.T) {
	creds, _, provider := newLocalProviderForTest(t)

	ctx := context.Background()

	creds.EXPECT().
		CreateCredential(ctx, mock.AnythingOfType("*repository.Credential")).
		Return(repository.ErrDuplicateCredential)

	session, err := provider.SignUp(ctx, &service.SignUpInput{
		Email:    "ops@greenloop.example",
		Password: "s3cret-enough",
	})
	assert.Nil(t, session)
	assert.ErrorIs(t, err, domainerrors.ErrPartnerAlreadyExists)
}

func TestLocalProvider_SignIn_Success(t *testing.T) {
	creds, hasher, provider := newLocalProviderForTest(t)

	ctx := context.Background()
	cred := partnerCredential(t, hasher, "s3cret-enough", false)

	creds.EXPECT().
		FindCredentialByEmail(ctx, cred.Email).
		Return(cred, nil)

	session, err := provider.SignIn(ctx, cred.Email, "s3cret-enough")
	require.NoError(t, err)
	assert.Equal(t, cred.PrincipalID, session.PrincipalID)
}

func TestLocalProvider_SignIn_WrongPassword(t *testing.T) {
	creds, hasher, provider := newLocalProviderForTest(t)

	ctx := context.Background()
	cred := partnerCredential(t, hasher, "s3cret-enough", false)

	creds.EXPECT().
		FindCredentialByEmail(ctx, cred.Email).
		Return(cred, nil)

	session, err := provider.SignIn(ctx, cred.Email, "wrong")
	assert.Nil(t, session)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestLocalProvider_SignIn_UnknownEmail(t *testing.T) {
	creds, _, provider := newLocalProviderForTest(t)

	ctx := context.Background()

	creds.EXPECT().
		FindCredentialByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrCredentialNotFound)

	session, err := provider.SignIn(ctx, "nobody@example.com", "whatever")
	assert.Nil(t, session)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestLocalProvider_SignIn_AdminThroughPartnerFlowRefused(t *testing.T) {
	// A credential class mismatch reads exactly like a wrong password so
	// the response does not reveal which accounts are admins.
	creds, hasher, provider := newLocalProviderForTest(t)

	ctx := context.Background()
	cred := partnerCredential(t, hasher, "s3cret-enough", true)

	creds.EXPECT().
		FindCredentialByEmail(ctx, cred.Email).
		Return(cred, nil)

	session, err := provider.SignIn(ctx, cred.Email, "s3cret-enough")
	assert.Nil(t, session)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestLocalProvider_AdminSignIn_Success(t *testing.T) {
	creds, hasher, provider := newLocalProviderForTest(t)

	ctx := context.Background()
	cred := partnerCredential(t, hasher, "s3cret-enough", true)

	creds.EXPECT().
		FindCredentialByEmail(ctx, cred.Email).
		Return(cred, nil)

	session, err := provider.AdminSignIn(ctx, cred.Email, "s3cret-enough")
	require.NoError(t, err)
	assert.Equal(t, cred.PrincipalID, session.PrincipalID)
}

func TestLocalProvider_SignOut_RevokesSession(t *testing.T) {
	creds, _, provider := newLocalProviderForTest(t)

	ctx := context.Background()

	creds.EXPECT().
		CreateCredential(ctx, mock.AnythingOfType("*repository.Credential")).
		Return(nil)

	session, err := provider.SignUp(ctx, &service.SignUpInput{
		Email:    "ops@greenloop.example",
		Password: "s3cret-enough",
	})
	require.NoError(t, err)

	require.NoError(t, provider.SignOut(ctx, session.Token))

	_, err = provider.VerifySession(ctx, session.Token)
	assert.ErrorIs(t, err, domainerrors.ErrSessionInvalid)
}

func TestLocalProvider_SignOut_InvalidToken(t *testing.T) {
	_, _, provider := newLocalProviderForTest(t)

	err := provider.SignOut(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, domainerrors.ErrSessionInvalid)
}
