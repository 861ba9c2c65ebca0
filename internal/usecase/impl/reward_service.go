package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "parivartan/internal/delivery/context"
	"parivartan/internal/domain/entity"
	domainerrors "parivartan/internal/domain/errors"
	"parivartan/internal/domain/repository"
	"parivartan/internal/domain/service"
	"parivartan/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// rewardService implements the RewardUsecase interface: the point ledger
// and idempotent voucher redemptions.
type rewardService struct {
	partnerRepo repository.PartnerRepository
	voucherRepo repository.VoucherRepository
	qrcode      service.QRCodeService
	events      service.EventPublisher
	logger      *slog.Logger
}

// RewardServiceParams holds dependencies for RewardService, injected by Fx.
type RewardServiceParams struct {
	fx.In

	PartnerRepo repository.PartnerRepository
	VoucherRepo repository.VoucherRepository
	QRCode      service.QRCodeService
	Events      service.EventPublisher
	Logger      *slog.Logger
}

// NewRewardService is the constructor for rewardService.
func NewRewardService(params RewardServiceParams) usecase.RewardUsecase {
	return &rewardService{
		partnerRepo: params.PartnerRepo,
		voucherRepo: params.VoucherRepo,
		qrcode:      params.QRCode,
		events:      params.Events,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *rewardService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListAvailableVouchers returns public or assigned vouchers the partner has
// not redeemed yet.
func (srv *rewardService) ListAvailableVouchers(ctx context.Context, partnerID uuid.UUID) ([]*entity.Voucher, error) {
	vouchers, err := srv.voucherRepo.ListVouchers(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list vouchers")
	}

	redemptions, err := srv.voucherRepo.ListRedemptionsByPartner(ctx, partnerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list redemptions")
	}

	redeemed := make(map[uuid.UUID]struct{}, len(redemptions))
	for _, r := range redemptions {
		redeemed[r.VoucherID] = struct{}{}
	}

	available := make([]*entity.Voucher, 0, len(vouchers))
	for _, v := range vouchers {
		if _, done := redeemed[v.ID]; done {
			continue
		}
		if !v.IsAvailableTo(partnerID) {
			continue
		}
		available = append(available, v)
	}

	return available, nil
}

// ListRedemptions returns the partner's redemption history.
func (srv *rewardService) ListRedemptions(ctx context.Context, partnerID uuid.UUID) ([]*entity.RedeemedVoucher, error) {
	redemptions, err := srv.voucherRepo.ListRedemptionsByPartner(ctx, partnerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list redemptions")
	}

	return redemptions, nil
}

// Redeem exchanges points for a voucher. The balance check and the duplicate
// check run twice: here as a fast path with no mutation, and again inside
// the repository transaction that applies the deduction and the redemption
// record as a single logical unit.
func (srv *rewardService) Redeem(ctx context.Context, partnerID, voucherID uuid.UUID) (*entity.RedeemedVoucher, error) {
	partner, err := srv.partnerRepo.FindPartnerByID(ctx, partnerID)
	if err != nil {
		if errors.Is(err, repository.ErrPartnerNotFound) {
			return nil, domainerrors.ErrPartnerNotFound
		}

		return nil, errors.Wrap(err, "failed to find partner")
	}

	voucher, err := srv.voucherRepo.FindVoucherByID(ctx, voucherID)
	if err != nil {
		if errors.Is(err, repository.ErrVoucherNotFound) {
			return nil, domainerrors.ErrVoucherNotFound
		}

		return nil, errors.Wrap(err, "failed to find voucher")
	}

	// An assigned voucher is invisible to partners outside its assignment
	// list, so redeeming it reads as not-found rather than forbidden.
	if !voucher.IsAvailableTo(partnerID) {
		return nil, domainerrors.ErrVoucherNotFound
	}

	if partner.RewardPoints < voucher.PointsRequired {
		return nil, domainerrors.ErrInsufficientPoints
	}

	redeemed, err := srv.voucherRepo.RedeemVoucher(ctx, partnerID, voucher)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrVoucherAlreadyRedeemed):
			return nil, domainerrors.ErrAlreadyRedeemed
		case errors.Is(err, repository.ErrInsufficientPoints):
			return nil, domainerrors.ErrInsufficientPoints
		default:
			return nil, errors.Wrap(err, "failed to redeem voucher")
		}
	}

	srv.log(ctx).Info("Voucher redeemed",
		slog.String("partner_id", partnerID.String()),
		slog.String("voucher_id", voucherID.String()),
		slog.Int("points", voucher.PointsRequired),
	)

	event := &service.PartnerEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       service.EventVoucherRedeemed,
		PartnerID:  partnerID.String(),
		Detail:     voucherID.String(),
		OccurredAt: time.Now(),
	}
	if err := srv.events.PublishPartnerEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish redemption event", slog.Any("error", err))
	}

	return redeemed, nil
}

// RedemptionQR renders the redemption receipt as a PNG QR code.
func (srv *rewardService) RedemptionQR(ctx context.Context, partnerID, voucherID uuid.UUID) ([]byte, error) {
	redemption, err := srv.voucherRepo.FindRedemption(ctx, partnerID, voucherID)
	if err != nil {
		if errors.Is(err, repository.ErrRedemptionNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("no redemption exists for this voucher")
		}

		return nil, errors.Wrap(err, "failed to find redemption")
	}

	qr, err := srv.qrcode.GenerateRedemptionQR(redemption.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate redemption QR")
	}

	return qr, nil
}
