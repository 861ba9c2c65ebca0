package auth

import (
	"context"
	"log/slog"

	"parivartan/config"
	"parivartan/internal/domain/constants"
	"parivartan/internal/domain/repository"
	"parivartan/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ProviderParams holds dependencies for IdentityProvider, injected by Fx
type ProviderParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Creds  repository.CredentialRepository
	Hasher service.PasswordHasher
	Tokens service.TokenService
	Logger *slog.Logger
}

// NewIdentityProvider creates an IdentityProvider based on configuration
func NewIdentityProvider(params ProviderParams) (service.IdentityProvider, error) {
	cfg := params.Config.Identity
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" || cfg.Provider == constants.IdentityProviderLocal {
		logger.Info("Using local identity provider")

		return NewLocalProvider(params.Creds, params.Hasher, params.Tokens, logger), nil
	}

	switch cfg.Provider {
	case constants.IdentityProviderFirebase:
		logger.Info("Using Firebase identity provider")

		return NewFirebaseProvider(params.Ctx, params.Config, logger)

	default:
		return nil, errors.Errorf("unknown identity provider: %s", cfg.Provider)
	}
}
