package auth

import (
	"testing"
	"time"

	"parivartan/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testIdentityConfig() *config.Config {
	return &config.Config{
		Identity: &config.IdentityConfig{
			SecretKey: "test_session_secret_key_very_long_for_testing",
		},
	}
}

func TestJWTService_GenerateAndValidateSessionToken(t *testing.T) {
	jwtService, err := NewJWTService(testIdentityConfig())
	require.NoError(t, err)

	principalID := uuid.New()

	token, err := jwtService.GenerateSessionToken(principalID, false)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.ValidateSessionToken(token)
	assert.NoError(t, err)
	require.NotNil(t, claims)
	assert.Equal(t, principalID, claims.PrincipalID)
	assert.False(t, claims.IsAdmin)
	assert.Equal(t, principalID.String(), claims.Subject)
}

func TestJWTService_AdminClaim(t *testing.T) {
	jwtService, err := NewJWTService(testIdentityConfig())
	require.NoError(t, err)

	principalID := uuid.New()

	token, err := jwtService.GenerateSessionToken(principalID, true)
	assert.NoError(t, err)

	claims, err := jwtService.ValidateSessionToken(token)
	assert.NoError(t, err)
	assert.True(t, claims.IsAdmin)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(testIdentityConfig())
	require.NoError(t, err)

	claims, err := jwtService.ValidateSessionToken("clearly-not-a-jwt-token")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_WrongSecretRejected(t *testing.T) {
	jwtService, err := NewJWTService(testIdentityConfig())
	require.NoError(t, err)

	other, err := NewJWTService(&config.Config{
		Identity: &config.IdentityConfig{SecretKey: "a_completely_different_secret_key"},
	})
	require.NoError(t, err)

	token, err := jwtService.GenerateSessionToken(uuid.New(), false)
	require.NoError(t, err)

	claims, err := other.ValidateSessionToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_ExpiredTokenRejected(t *testing.T) {
	// A non-positive configured TTL falls back to the default, so build the
	// expired service directly.
	svc := &jwtService{
		secret:     "test_session_secret_key_very_long_for_testing",
		sessionTTL: -time.Minute,
	}

	token, err := svc.GenerateSessionToken(uuid.New(), false)
	require.NoError(t, err)

	claims, err := svc.ValidateSessionToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_MissingSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}
