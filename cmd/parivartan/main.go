package main

import (
	"context"
	"log/slog"
	"os"

	"parivartan/config"
	"parivartan/internal/delivery"
	"parivartan/internal/delivery/http"
	"parivartan/internal/delivery/http/middleware"
	"parivartan/internal/delivery/http/router/handler"
	"parivartan/internal/domain/service"
	"parivartan/internal/infra/auth"
	"parivartan/internal/infra/blob"
	logs "parivartan/internal/infra/log"
	"parivartan/internal/infra/payment"
	"parivartan/internal/infra/persistence/firestore"
	"parivartan/internal/infra/pubsub"
	"parivartan/internal/infra/qrcode"
	"parivartan/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		firestore.New,
		blob.NewBlobStore,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			firestore.NewAdminRepository,
			firestore.NewPartnerRepository,
			firestore.NewVoucherRepository,
			firestore.NewCredentialRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newPasswordHasher,
			auth.NewJWTService,
			auth.NewIdentityProvider,
			payment.NewPaymentProcessor,
			pubsub.NewEventPublisher,
			newQRCodeService,
		),
	)
}

// newPasswordHasher creates the bcrypt hasher with the configured cost
func newPasswordHasher(cfg *config.Config) service.PasswordHasher {
	cost := 0
	if cfg.Identity != nil {
		cost = cfg.Identity.BcryptCost
	}

	return auth.NewBcryptHasher(cost)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewIdentityService,
			impl.NewSessionWatcher,
			impl.NewGateService,
			impl.NewDocumentService,
			impl.NewRewardService,
			impl.NewSubscriptionService,
			impl.NewAdminService,
			impl.NewAuthService,
			impl.NewPartnerService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewRouteHandler,
			handler.NewPartnerHandler,
			handler.NewSubscriptionHandler,
			handler.NewRewardHandler,
			handler.NewAdminHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
