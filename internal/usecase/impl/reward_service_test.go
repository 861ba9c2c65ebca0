package impl

import (
	"context"
	"testing"
	"time"

	"parivartan/internal/domain/entity"
	domainerrors "parivartan/internal/domain/errors"
	"parivartan/internal/domain/repository"
	mockRepo "parivartan/internal/mocks/repository"
	mockSvc "parivartan/internal/mocks/service"
	"parivartan/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRewardServiceForTest(t *testing.T) (*mockRepo.MockPartnerRepository, *mockRepo.MockVoucherRepository, *mockSvc.MockQRCodeService, *mockSvc.MockEventPublisher, usecase.RewardUsecase) {
	t.Helper()

	mockPartnerRepo := mockRepo.NewMockPartnerRepository(t)
	mockVoucherRepo := mockRepo.NewMockVoucherRepository(t)
	mockQRService := mockSvc.NewMockQRCodeService(t)
	mockEvents := mockSvc.NewMockEventPublisher(t)
	service := NewRewardService(RewardServiceParams{
		PartnerRepo: mockPartnerRepo,
		VoucherRepo: mockVoucherRepo,
		QRCode:      mockQRService,
		Events:      mockEvents,
		Logger:      testLogger(),
	})

	return mockPartnerRepo, mockVoucherRepo, mockQRService, mockEvents, service
}

func TestRewardService_ListAvailableVouchers_FiltersRedeemedAndAssigned(t *testing.T) {
	_, mockVoucherRepo, _, _, service := newRewardServiceForTest(t)

	ctx := context.Background()
	partnerID := uuid.New()
	otherID := uuid.New()

	public := &entity.Voucher{ID: uuid.New(), Title: "public"}
	redeemed := &entity.Voucher{ID: uuid.New(), Title: "already redeemed"}
	assignedToPartner := &entity.Voucher{ID: uuid.New(), Title: "assigned", AssignedPartners: []uuid.UUID{partnerID}}
	assignedToOther := &entity.Voucher{ID: uuid.New(), Title: "someone else's", AssignedPartners: []uuid.UUID{otherID}}

	mockVoucherRepo.EXPECT().
		ListVouchers(ctx).
		Return([]*entity.Voucher{public, redeemed, assignedToPartner, assignedToOther}, nil)

	mockVoucherRepo.EXPECT().
		ListRedemptionsByPartner(ctx, partnerID).
		Return([]*entity.RedeemedVoucher{{VoucherID: redeemed.ID, RedeemedBy: partnerID}}, nil)

	available, err := service.ListAvailableVouchers(ctx, partnerID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []*entity.Voucher{public, assignedToPartner}, available)
}

func TestRewardService_ListAvailableVouchers_ListError(t *testing.T) {
	_, mockVoucherRepo, _, _, service := newRewardServiceForTest(t)

	ctx := context.Background()

	mockVoucherRepo.EXPECT().
		ListVouchers(ctx).
		Return(nil, errors.New("db error"))

	available, err := service.ListAvailableVouchers(ctx, uuid.New())
	assert.Error(t, err)
	assert.Nil(t, available)
}

func TestRewardService_Redeem_Success(t *testing.T) {
	mockPartnerRepo, mockVoucherRepo, _, mockEvents, service := newRewardServiceForTest(t)

	ctx := context.Background()
	partnerID := uuid.New()
	voucher := &entity.Voucher{ID: uuid.New(), Title: "coffee", PointsRequired: 50}
	partner := &entity.Partner{ID: partnerID, RewardPoints: 120}

	mockPartnerRepo.EXPECT().
		FindPartnerByID(ctx, partnerID).
		Return(partner, nil)

	mockVoucherRepo.EXPECT().
		FindVoucherByID(ctx, voucher.ID).
		Return(voucher, nil)

	mockVoucherRepo.EXPECT().
		RedeemVoucher(ctx, partnerID, voucher).
		Return(&entity.RedeemedVoucher{
			ID:         uuid.New(),
			VoucherID:  voucher.ID,
			RedeemedBy: partnerID,
			RedeemedAt: time.Now(),
		}, nil)

	mockEvents.EXPECT().
		PublishPartnerEvent(ctx, mock.AnythingOfType("*service.PartnerEvent")).
		Return(nil)

	redeemed, err := service.Redeem(ctx, partnerID, voucher.ID)
	require.NoError(t, err)
	assert.Equal(t, voucher.ID, redeemed.VoucherID)
	assert.Equal(t, partnerID, redeemed.RedeemedBy)
}

func TestRewardService_Redeem_InsufficientPoints(t *testing.T) {
	mockPartnerRepo, mockVoucherRepo, _, _, service := newRewardServiceForTest(t)

	ctx := context.Background()
	partnerID := uuid.New()
	voucher := &entity.Voucher{ID: uuid.New(), PointsRequired: 500}
	partner := &entity.Partner{ID: partnerID, RewardPoints: 10}

	mockPartnerRepo.EXPECT().
		FindPartnerByID(ctx, partnerID).
		Return(partner, nil)

	mockVoucherRepo.EXPECT().
		FindVoucherByID(ctx, voucher.ID).
		Return(voucher, nil)

	redeemed, err := service.Redeem(ctx, partnerID, voucher.ID)
	assert.Nil(t, redeemed)
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientPoints)
}

func TestRewardService_Redeem_AlreadyRedeemed(t *testing.T) {
	// The duplicate check inside the repository transaction wins even when
	// the fast path saw no prior redemption.
	mockPartnerRepo, mockVoucherRepo, _, _, service := newRewardServiceForTest(t)

	ctx := context.Background()
	partnerID := uuid.New()
	voucher := &entity.Voucher{ID: uuid.New(), PointsRequired: 50}
	partner := &entity.Partner{ID: partnerID, RewardPoints: 120}

	mockPartnerRepo.EXPECT().
		FindPartnerByID(ctx, partnerID).
		Return(partner, nil)

	mockVoucherRepo.EXPECT().
		FindVoucherByID(ctx, voucher.ID).
		Return(voucher, nil)

	mockVoucherRepo.EXPECT().
		RedeemVoucher(ctx, partnerID, voucher).
		Return(nil, repository.ErrVoucherAlreadyRedeemed)

	redeemed, err := service.Redeem(ctx, partnerID, voucher.ID)
	assert.Nil(t, redeemed)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyRedeemed)
}

func TestRewardService_Redeem_AssignedVoucherInvisible(t *testing.T) {
	// Redeeming a voucher assigned to someone else reads as not-found, the
	// same as a voucher that does not exist.
	mockPartnerRepo, mockVoucherRepo, _, _, service := newRewardServiceForTest(t)

	ctx := context.Background()
	partnerID := uuid.New()
	voucher := &entity.Voucher{ID: uuid.New(), PointsRequired: 10, AssignedPartners: []uuid.UUID{uuid.New()}}
	partner := &entity.Partner{ID: partnerID, RewardPoints: 120}

	mockPartnerRepo.EXPECT().
		FindPartnerByID(ctx, partnerID).
		Return(partner, nil)

	mockVoucherRepo.EXPECT().
		FindVoucherByID(ctx, voucher.ID).
		Return(voucher, nil)

	redeemed, err := service.Redeem(ctx, partnerID, voucher.ID)
	assert.Nil(t, redeemed)
	assert.ErrorIs(t, err, domainerrors.ErrVoucherNotFound)
}

func TestRewardService_Redeem_VoucherNotFound(t *testing.T) {
	mockPartnerRepo, mockVoucherRepo, _, _, service := newRewardServiceForTest(t)

	ctx := context.Background()
	partnerID := uuid.New()
	voucherID := uuid.New()

	mockPartnerRepo.EXPECT().
		FindPartnerByID(ctx, partnerID).
		Return(&entity.Partner{ID: partnerID}, nil)

	mockVoucherRepo.EXPECT().
		FindVoucherByID(ctx, voucherID).
		Return(nil, repository.ErrVoucherNotFound)

	redeemed, err := service.Redeem(ctx, partnerID, voucherID)
	assert.Nil(t, redeemed)
	assert.ErrorIs(t, err, domainerrors.ErrVoucherNotFound)
}

func TestRewardService_RedemptionQR_Success(t *testing.T) {
	_, mockVoucherRepo, mockQRService, _, service := newRewardServiceForTest(t)

	ctx := context.Background()
	partnerID := uuid.New()
	voucherID := uuid.New()
	redemptionID := uuid.New()

	mockVoucherRepo.EXPECT().
		FindRedemption(ctx, partnerID, voucherID).
		Return(&entity.RedeemedVoucher{ID: redemptionID, VoucherID: voucherID}, nil)

	mockQRService.EXPECT().
		GenerateRedemptionQR(redemptionID).
		Return([]byte("png bytes"), nil)

	qr, err := service.RedemptionQR(ctx, partnerID, voucherID)
	require.NoError(t, err)
	assert.Equal(t, []byte("png bytes"), qr)
}

func TestRewardService_RedemptionQR_NoRedemption(t *testing.T) {
	_, mockVoucherRepo, _, _, service := newRewardServiceForTest(t)

	ctx := context.Background()
	partnerID := uuid.New()
	voucherID := uuid.New()

	mockVoucherRepo.EXPECT().
		FindRedemption(ctx, partnerID, voucherID).
		Return(nil, repository.ErrRedemptionNotFound)

	qr, err := service.RedemptionQR(ctx, partnerID, voucherID)
	assert.Nil(t, qr)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
