package impl

import (
	"context"
	"testing"

	"parivartan/internal/domain/entity"
	domainerrors "parivartan/internal/domain/errors"
	"parivartan/internal/domain/repository"
	mockRepo "parivartan/internal/mocks/repository"
	mockSvc "parivartan/internal/mocks/service"
	"parivartan/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAdminServiceForTest(t *testing.T) (*mockRepo.MockPartnerRepository, *mockSvc.MockEventPublisher, usecase.AdminUsecase) {
	t.Helper()

	mockPartnerRepo := mockRepo.NewMockPartnerRepository(t)
	mockEvents := mockSvc.NewMockEventPublisher(t)
	service := NewAdminService(AdminServiceParams{
		PartnerRepo: mockPartnerRepo,
		Events:      mockEvents,
		Logger:      testLogger(),
	})

	return mockPartnerRepo, mockEvents, service
}

func TestAdminService_ListPartners(t *testing.T) {
	mockPartnerRepo, _, service := newAdminServiceForTest(t)

	ctx := context.Background()
	queue := []*entity.Partner{
		{ID: uuid.New(), VerificationStatus: entity.VerificationPending},
		{ID: uuid.New(), VerificationStatus: entity.VerificationPending},
	}

	mockPartnerRepo.EXPECT().
		ListPartnersByVerificationStatus(ctx, entity.VerificationPending).
		Return(queue, nil)

	partners, err := service.ListPartners(ctx, entity.VerificationPending)
	require.NoError(t, err)
	assert.Equal(t, queue, partners)
}

func TestAdminService_ListPartners_UnknownStatus(t *testing.T) {
	_, _, service := newAdminServiceForTest(t)

	partners, err := service.ListPartners(context.Background(), entity.VerificationStatus("archived"))
	assert.Nil(t, partners)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestAdminService_GetPartner_NotFound(t *testing.T) {
	mockPartnerRepo, _, service := newAdminServiceForTest(t)

	ctx := context.Background()
	partnerID := uuid.New()

	mockPartnerRepo.EXPECT().
		FindPartnerByID(ctx, partnerID).
		Return(nil, repository.ErrPartnerNotFound)

	partner, err := service.GetPartner(ctx, partnerID)
	assert.Nil(t, partner)
	assert.ErrorIs(t, err, domainerrors.ErrPartnerNotFound)
}

func TestAdminService_ReviewDocument_Approve(t *testing.T) {
	mockPartnerRepo, _, service := newAdminServiceForTest(t)

	ctx := context.Background()
	partnerID := uuid.New()

	mockPartnerRepo.EXPECT().
		UpdateDocumentReview(ctx, partnerID, entity.DocumentTypeIDProof, entity.DocumentReviewApproved, "").
		Return(nil)

	err := service.ReviewDocument(ctx, partnerID, &usecase.ReviewDocumentInput{
		DocumentType: entity.DocumentTypeIDProof,
		Status:       entity.DocumentReviewApproved,
	})
	require.NoError(t, err)
}

func TestAdminService_ReviewDocument_RejectWithRemarks(t *testing.T) {
	mockPartnerRepo, _, service := newAdminServiceForTest(t)

	ctx := context.Background()
	partnerID := uuid.New()

	mockPartnerRepo.EXPECT().
		UpdateDocumentReview(ctx, partnerID, entity.DocumentTypeAddressProof, entity.DocumentReviewRejected, "illegible scan").
		Return(nil)

	err := service.ReviewDocument(ctx, partnerID, &usecase.ReviewDocumentInput{
		DocumentType: entity.DocumentTypeAddressProof,
		Status:       entity.DocumentReviewRejected,
		Remarks:      "illegible scan",
	})
	require.NoError(t, err)
}

func TestAdminService_ReviewDocument_PendingOutcomeRejected(t *testing.T) {
	// A review decision must be approved or rejected; resetting a document
	// back to pending is not a reviewable outcome.
	_, _, service := newAdminServiceForTest(t)

	err := service.ReviewDocument(context.Background(), uuid.New(), &usecase.ReviewDocumentInput{
		DocumentType: entity.DocumentTypeIDProof,
		Status:       entity.DocumentReviewPending,
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestAdminService_ReviewDocument_NoDocumentOfType(t *testing.T) {
	mockPartnerRepo, _, service := newAdminServiceForTest(t)

	ctx := context.Background()
	partnerID := uuid.New()

	mockPartnerRepo.EXPECT().
		UpdateDocumentReview(ctx, partnerID, entity.DocumentTypeIDProof, entity.DocumentReviewApproved, "").
		Return(repository.ErrDocumentNotFound)

	err := service.ReviewDocument(ctx, partnerID, &usecase.ReviewDocumentInput{
		DocumentType: entity.DocumentTypeIDProof,
		Status:       entity.DocumentReviewApproved,
	})
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestAdminService_TransitionVerification_PendingToApproved(t *testing.T) {
	mockPartnerRepo, mockEvents, service := newAdminServiceForTest(t)

	ctx := context.Background()
	partnerID := uuid.New()

	mockPartnerRepo.EXPECT().
		FindPartnerByID(ctx, partnerID).
		Return(&entity.Partner{ID: partnerID, VerificationStatus: entity.VerificationPending}, nil)

	mockPartnerRepo.EXPECT().
		UpdateVerificationStatus(ctx, partnerID, entity.VerificationApproved).
		Return(nil)

	mockEvents.EXPECT().
		PublishPartnerEvent(ctx, mock.AnythingOfType("*service.PartnerEvent")).
		Return(nil)

	err := service.TransitionVerification(ctx, partnerID, entity.VerificationApproved)
	require.NoError(t, err)
}

func TestAdminService_TransitionVerification_RejectedReopened(t *testing.T) {
	// Re-upload after rejection re-opens the review: rejected -> pending.
	mockPartnerRepo, mockEvents, service := newAdminServiceForTest(t)

	ctx := context.Background()
	partnerID := uuid.New()

	mockPartnerRepo.EXPECT().
		FindPartnerByID(ctx, partnerID).
		Return(&entity.Partner{ID: partnerID, VerificationStatus: entity.VerificationRejected}, nil)

	mockPartnerRepo.EXPECT().
		UpdateVerificationStatus(ctx, partnerID, entity.VerificationPending).
		Return(nil)

	mockEvents.EXPECT().
		PublishPartnerEvent(ctx, mock.AnythingOfType("*service.PartnerEvent")).
		Return(nil)

	err := service.TransitionVerification(ctx, partnerID, entity.VerificationPending)
	require.NoError(t, err)
}

func TestAdminService_TransitionVerification_ApprovedIsTerminal(t *testing.T) {
	// No admin-driven edge leaves the approved state.
	mockPartnerRepo, _, service := newAdminServiceForTest(t)

	ctx := context.Background()
	partnerID := uuid.New()

	for _, to := range []entity.VerificationStatus{
		entity.VerificationPending,
		entity.VerificationRejected,
		entity.VerificationApproved,
	} {
		mockPartnerRepo.EXPECT().
			FindPartnerByID(ctx, partnerID).
			Return(&entity.Partner{ID: partnerID, VerificationStatus: entity.VerificationApproved}, nil).
			Once()

		err := service.TransitionVerification(ctx, partnerID, to)
		assert.Error(t, err, "approved -> %s must be rejected", to)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "INVALID_TRANSITION", appErr.ErrorCode())
	}
}

func TestAdminService_TransitionVerification_RejectedToApprovedBlocked(t *testing.T) {
	mockPartnerRepo, _, service := newAdminServiceForTest(t)

	ctx := context.Background()
	partnerID := uuid.New()

	mockPartnerRepo.EXPECT().
		FindPartnerByID(ctx, partnerID).
		Return(&entity.Partner{ID: partnerID, VerificationStatus: entity.VerificationRejected}, nil)

	err := service.TransitionVerification(ctx, partnerID, entity.VerificationApproved)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_TRANSITION", appErr.ErrorCode())
}

func TestAdminService_TransitionVerification_UnknownStatus(t *testing.T) {
	_, _, service := newAdminServiceForTest(t)

	err := service.TransitionVerification(context.Background(), uuid.New(), entity.VerificationStatus("archived"))
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}
