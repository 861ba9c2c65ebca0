// Package payment provides PaymentProcessor implementations behind a
// config-selected provider.
package payment

import (
	"log/slog"

	"parivartan/config"
	"parivartan/internal/domain/constants"
	"parivartan/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ProcessorParams holds dependencies for PaymentProcessor, injected by Fx
type ProcessorParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewPaymentProcessor creates a PaymentProcessor based on configuration
func NewPaymentProcessor(params ProcessorParams) (service.PaymentProcessor, error) {
	cfg := params.Config.Payment
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" || cfg.Provider == constants.PaymentProviderSandbox {
		logger.Info("Using sandbox payment processor")

		return NewSandboxProcessor(logger), nil
	}

	switch cfg.Provider {
	case constants.PaymentProviderHTTP:
		if cfg.Endpoint == "" {
			return nil, errors.New("endpoint is required for http payment provider")
		}
		logger.Info("Using HTTP payment gateway", slog.String("endpoint", cfg.Endpoint))

		return NewHTTPProcessor(cfg.Endpoint, logger), nil

	default:
		return nil, errors.Errorf("unknown payment provider: %s", cfg.Provider)
	}
}
