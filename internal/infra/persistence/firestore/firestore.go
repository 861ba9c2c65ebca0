// Package firestore contains the concrete implementation of the persistence
// layer on Cloud Firestore: document get/set, field-wise merges, listens
// and the redemption transaction.
package firestore

import (
	"context"
	"log/slog"

	"parivartan/config"
	"parivartan/internal/errors"

	"cloud.google.com/go/firestore"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// Collection names. Document ids are principal/voucher ids except for
// redemptions, which use the composite "<partnerID>_<voucherID>" id.
const (
	collectionPartners    = "partners"
	collectionAdmins      = "admins"
	collectionVouchers    = "vouchers"
	collectionRedemptions = "redemptions"
	collectionCredentials = "credentials"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New creates the Firestore client
func New(params Params) (*firestore.Client, error) {
	cfg := params.Config.Firestore
	if cfg == nil || cfg.ProjectID == "" {
		return nil, errors.New("firestore project ID is required")
	}

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	databaseID := cfg.DatabaseID
	if databaseID == "" {
		databaseID = firestore.DefaultDatabaseID
	}

	client, err := firestore.NewClientWithDatabase(params.Ctx, cfg.ProjectID, databaseID, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firestore client")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			params.Logger.Info("Closing Firestore client")

			return client.Close()
		},
	})

	return client, nil
}
