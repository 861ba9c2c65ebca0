package firestore

import (
	"context"
	"log/slog"
	"time"

	"parivartan/internal/domain/entity"
	"parivartan/internal/domain/repository"
	"parivartan/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// partnerRepository implements the repository.PartnerRepository interface
// on Firestore. All mutations are field-wise updates; the whole document is
// rewritten only on create.
type partnerRepository struct {
	client *firestore.Client
	logger *slog.Logger
}

// NewPartnerRepository is the constructor for partnerRepository.
func NewPartnerRepository(client *firestore.Client, logger *slog.Logger) repository.PartnerRepository {
	return &partnerRepository{client: client, logger: logger}
}

func (repo *partnerRepository) doc(id uuid.UUID) *firestore.DocumentRef {
	return repo.client.Collection(collectionPartners).Doc(id.String())
}

// CreatePartner persists a new partner record.
func (repo *partnerRepository) CreatePartner(ctx context.Context, partner *entity.Partner) error {
	_, err := repo.doc(partner.ID).Create(ctx, model.PartnerFromEntity(partner))
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return repository.ErrDuplicatePartner
		}

		return errors.Wrap(err, "failed to create partner document")
	}

	return nil
}

// FindPartnerByID retrieves a partner record by principal id.
func (repo *partnerRepository) FindPartnerByID(ctx context.Context, id uuid.UUID) (*entity.Partner, error) {
	snap, err := repo.doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrPartnerNotFound
		}

		return nil, errors.Wrap(err, "failed to get partner document")
	}

	return decodePartner(snap)
}

// FindPartnerByEmail retrieves a partner record by email.
func (repo *partnerRepository) FindPartnerByEmail(ctx context.Context, email string) (*entity.Partner, error) {
	iter := repo.client.Collection(collectionPartners).
		Where("email", "==", email).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	snap, err := iter.Next()
	if err != nil {
		if errors.Is(err, iterator.Done) {
			return nil, repository.ErrPartnerNotFound
		}

		return nil, errors.Wrap(err, "failed to query partner by email")
	}

	return decodePartner(snap)
}

// ListPartnersByVerificationStatus retrieves partners in the given state.
func (repo *partnerRepository) ListPartnersByVerificationStatus(ctx context.Context, vs entity.VerificationStatus) ([]*entity.Partner, error) {
	iter := repo.client.Collection(collectionPartners).
		Where("verificationStatus", "==", string(vs)).
		Documents(ctx)
	defer iter.Stop()

	var partners []*entity.Partner
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to list partners")
		}

		partner, err := decodePartner(snap)
		if err != nil {
			return nil, err
		}
		partners = append(partners, partner)
	}

	return partners, nil
}

// UpdateProfile applies a field-wise profile merge. Only the set fields are
// touched so concurrent writers never clobber each other.
func (repo *partnerRepository) UpdateProfile(ctx context.Context, id uuid.UUID, update *repository.ProfileUpdate) error {
	updates := []firestore.Update{
		{Path: "updatedAt", Value: time.Now()},
	}

	if update.Name != nil {
		updates = append(updates, firestore.Update{Path: "name", Value: *update.Name})
	}
	if update.Phone != nil {
		updates = append(updates, firestore.Update{Path: "phone", Value: *update.Phone})
	}
	if update.Organization != nil {
		updates = append(updates, firestore.Update{Path: "organization", Value: *update.Organization})
	}
	if update.PartnerType != nil {
		updates = append(updates, firestore.Update{Path: "partnerType", Value: string(*update.PartnerType)})
	}
	if update.Address != nil {
		updates = append(updates, firestore.Update{Path: "address", Value: model.AddressModel{
			Line1:     update.Address.Line1,
			Line2:     update.Address.Line2,
			City:      update.Address.City,
			State:     update.Address.State,
			PinCode:   update.Address.PinCode,
			Longitude: update.Address.Location.Lon(),
			Latitude:  update.Address.Location.Lat(),
		}})
	}
	if update.SupportedWasteTypes != nil {
		wasteTypes := make([]string, 0, len(*update.SupportedWasteTypes))
		for _, w := range *update.SupportedWasteTypes {
			wasteTypes = append(wasteTypes, string(w))
		}
		updates = append(updates, firestore.Update{Path: "supportedWasteTypes", Value: wasteTypes})
	}

	if _, err := repo.doc(id).Update(ctx, updates); err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrPartnerNotFound
		}

		return errors.Wrap(err, "failed to update partner profile")
	}

	return nil
}

// UpsertDocument replaces the live document of the same type, or appends a
// new one. Runs in a transaction so two concurrent uploads of different
// types both survive.
func (repo *partnerRepository) UpsertDocument(ctx context.Context, id uuid.UUID, doc *entity.PartnerDocument) error {
	ref := repo.doc(id)

	err := repo.client.RunTransaction(ctx, func(_ context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil {
			return err
		}

		var m model.PartnerModel
		if err := snap.DataTo(&m); err != nil {
			return errors.Wrap(err, "failed to decode partner document")
		}

		m.UpsertDocument(model.DocumentFromEntity(doc))

		return tx.Update(ref, []firestore.Update{
			{Path: "documents", Value: m.Documents},
			{Path: "updatedAt", Value: time.Now()},
		})
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrPartnerNotFound
		}

		return errors.Wrap(err, "failed to upsert partner document")
	}

	return nil
}

// UpdateDocumentReview sets the review status and remarks of the live
// document of the given type.
func (repo *partnerRepository) UpdateDocumentReview(ctx context.Context, id uuid.UUID, docType entity.DocumentType, reviewStatus entity.DocumentReviewStatus, remarks string) error {
	ref := repo.doc(id)

	err := repo.client.RunTransaction(ctx, func(_ context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil {
			return err
		}

		var m model.PartnerModel
		if err := snap.DataTo(&m); err != nil {
			return errors.Wrap(err, "failed to decode partner document")
		}

		found := false
		for i := range m.Documents {
			if m.Documents[i].Type == string(docType) {
				m.Documents[i].Status = string(reviewStatus)
				m.Documents[i].Remarks = remarks
				found = true

				break
			}
		}
		if !found {
			return repository.ErrDocumentNotFound
		}

		return tx.Update(ref, []firestore.Update{
			{Path: "documents", Value: m.Documents},
			{Path: "updatedAt", Value: time.Now()},
		})
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDocumentNotFound):
			return repository.ErrDocumentNotFound
		case status.Code(err) == codes.NotFound:
			return repository.ErrPartnerNotFound
		default:
			return errors.Wrap(err, "failed to update document review")
		}
	}

	return nil
}

// UpdateVerificationStatus sets the partner verification status.
func (repo *partnerRepository) UpdateVerificationStatus(ctx context.Context, id uuid.UUID, vs entity.VerificationStatus) error {
	_, err := repo.doc(id).Update(ctx, []firestore.Update{
		{Path: "verificationStatus", Value: string(vs)},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrPartnerNotFound
		}

		return errors.Wrap(err, "failed to update verification status")
	}

	return nil
}

// ActivateSubscription writes the subscription and force-sets the
// verification status to approved in a single atomic update.
func (repo *partnerRepository) ActivateSubscription(ctx context.Context, id uuid.UUID, sub *entity.Subscription) error {
	_, err := repo.doc(id).Update(ctx, []firestore.Update{
		{Path: "subscription", Value: model.SubscriptionFromEntity(sub)},
		{Path: "verificationStatus", Value: string(entity.VerificationApproved)},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrPartnerNotFound
		}

		return errors.Wrap(err, "failed to activate subscription")
	}

	return nil
}

// ListenPartner subscribes to the partner record. The channel delivers the
// full current value on every change and closes when ctx is done.
func (repo *partnerRepository) ListenPartner(ctx context.Context, id uuid.UUID) (<-chan *entity.Partner, error) {
	snapshots := repo.doc(id).Snapshots(ctx)
	updates := make(chan *entity.Partner, 1)

	go func() {
		defer close(updates)
		defer snapshots.Stop()

		for {
			snap, err := snapshots.Next()
			if err != nil {
				if status.Code(err) != codes.Canceled {
					repo.logger.Warn("Partner listen terminated",
						slog.String("partner_id", id.String()),
						slog.Any("error", err),
					)
				}

				return
			}
			if !snap.Exists() {
				continue
			}

			partner, err := decodePartner(snap)
			if err != nil {
				repo.logger.Warn("Skipping undecodable partner snapshot",
					slog.String("partner_id", id.String()),
					slog.Any("error", err),
				)

				continue
			}

			select {
			case updates <- partner:
			case <-ctx.Done():
				return
			}
		}
	}()

	return updates, nil
}

func decodePartner(snap *firestore.DocumentSnapshot) (*entity.Partner, error) {
	id, err := uuid.Parse(snap.Ref.ID)
	if err != nil {
		return nil, errors.Wrap(err, "partner document id is not a principal id")
	}

	var m model.PartnerModel
	if err := snap.DataTo(&m); err != nil {
		return nil, errors.Wrap(err, "failed to decode partner document")
	}

	return m.ToEntity(id), nil
}
