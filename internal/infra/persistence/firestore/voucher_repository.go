package firestore

import (
	"context"
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

// voucherRepository implements the repository.VoucherRepository interface
// on Firestore. Redemption runs as a transaction touching the partner
// balance and the redemption record together.
type voucherRepository struct {
	client *firestore.Client
}

// NewVoucherRepository is the constructor for voucherRepository.
func NewVoucherRepository(client *firestore.Client) repository.VoucherRepository {
	return &voucherRepository{client: client}
}

// redemptionDocID builds the composite redemption document id. One document
// per (partner, voucher) pair makes redemption idempotent by construction.
func redemptionDocID(partnerID, voucherID uuid.UUID) string {
	return partnerID.String() + "_" + voucherID.String()
}

// ListVouchers retrieves all vouchers.
func (repo *voucherRepository) ListVouchers(ctx context.Context) ([]*entity.Voucher, error) {
	iter := repo.client.Collection(collectionVouchers).Documents(ctx)
	defer iter.Stop()

	var vouchers []*entity.Voucher
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to list vouchers")
		}

		voucher, err := decodeVoucher(snap)
		if err != nil {
			return nil, err
		}
		vouchers = append(vouchers, voucher)
	}

	return vouchers, nil
}

// FindVoucherByID retrieves a voucher by its unique ID.
func (repo *voucherRepository) FindVoucherByID(ctx context.Context, id uuid.UUID) (*entity.Voucher, error) {
	snap, err := repo.client.Collection(collectionVouchers).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrVoucherNotFound
		}

		return nil, errors.Wrap(err, "failed to get voucher document")
	}

	return decodeVoucher(snap)
}

// ListRedemptionsByPartner retrieves all redemption records of a partner.
func (repo *voucherRepository) ListRedemptionsByPartner(ctx context.Context, partnerID uuid.UUID) ([]*entity.RedeemedVoucher, error) {
	iter := repo.client.Collection(collectionRedemptions).
		Where("redeemedBy", "==", partnerID.String()).
		Documents(ctx)
	defer iter.Stop()

	var redemptions []*entity.RedeemedVoucher
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to list redemptions")
		}

		var m model.RedemptionModel
		if err := snap.DataTo(&m); err != nil {
			return nil, errors.Wrap(err, "failed to decode redemption document")
		}
		redemptions = append(redemptions, m.ToEntity())
	}

	return redemptions, nil
}

// FindRedemption retrieves the redemption record for a (partner, voucher) pair.
func (repo *voucherRepository) FindRedemption(ctx context.Context, partnerID, voucherID uuid.UUID) (*entity.RedeemedVoucher, error) {
	snap, err := repo.client.Collection(collectionRedemptions).
		Doc(redemptionDocID(partnerID, voucherID)).
		Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrRedemptionNotFound
		}

		return nil, errors.Wrap(err, "failed to get redemption document")
	}

	var m model.RedemptionModel
	if err := snap.DataTo(&m); err != nil {
		return nil, errors.Wrap(err, "failed to decode redemption document")
	}

	return m.ToEntity(), nil
}

// RedeemVoucher deducts the voucher cost from the partner's balance and
// appends the redemption record as a single transactional write. The
// balance and the absence of a prior redemption are re-checked inside the
// transaction; on failure nothing is written.
func (repo *voucherRepository) RedeemVoucher(ctx context.Context, partnerID uuid.UUID, voucher *entity.Voucher) (*entity.RedeemedVoucher, error) {
	partnerRef := repo.client.Collection(collectionPartners).Doc(partnerID.String())
	redemptionRef := repo.client.Collection(collectionRedemptions).Doc(redemptionDocID(partnerID, voucher.ID))

	redeemed := &entity.RedeemedVoucher{
		ID:             uuid.New(),
		VoucherID:      voucher.ID,
		Title:          voucher.Title,
		Description:    voucher.Description,
		PointsRequired: voucher.PointsRequired,
		RedeemedBy:     partnerID,
		RedeemedAt:     time.Now(),
	}

	err := repo.client.RunTransaction(ctx, func(_ context.Context, tx *firestore.Transaction) error {
		if _, err := tx.Get(redemptionRef); err == nil {
			return repository.ErrVoucherAlreadyRedeemed
		} else if status.Code(err) != codes.NotFound {
			return errors.Wrap(err, "failed to check existing redemption")
		}

		partnerSnap, err := tx.Get(partnerRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return repository.ErrPartnerNotFound
			}

			return errors.Wrap(err, "failed to get partner document")
		}

		var partner model.PartnerModel
		if err := partnerSnap.DataTo(&partner); err != nil {
			return errors.Wrap(err, "failed to decode partner document")
		}

		if partner.RewardPoints < voucher.PointsRequired {
			return repository.ErrInsufficientPoints
		}

		if err := tx.Update(partnerRef, []firestore.Update{
			{Path: "rewardPoints", Value: partner.RewardPoints - voucher.PointsRequired},
			{Path: "updatedAt", Value: time.Now()},
		}); err != nil {
			return errors.Wrap(err, "failed to deduct reward points")
		}

		return tx.Create(redemptionRef, model.RedemptionFromEntity(redeemed))
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrVoucherAlreadyRedeemed),
			errors.Is(err, repository.ErrInsufficientPoints),
			errors.Is(err, repository.ErrPartnerNotFound):
			return nil, err
		default:
			return nil, errors.Wrap(err, "redemption transaction failed")
		}
	}

	return redeemed, nil
}

func decodeVoucher(snap *firestore.DocumentSnapshot) (*entity.Voucher, error) {
	id, err := uuid.Parse(snap.Ref.ID)
	if err != nil {
		return nil, errors.Wrap(err, "voucher document id is not a voucher id")
	}

	var m model.VoucherModel
	if err := snap.DataTo(&m); err != nil {
		return nil, errors.Wrap(err, "failed to decode voucher document")
	}

	return m.ToEntity(id), nil
}
