package impl

import (
	"context"
	"testing"

	"parivartan/internal/domain/entity"
	domainerrors "parivartan/internal/domain/errors"
	"parivartan/internal/domain/repository"
	mockRepo "parivartan/internal/mocks/repository"
	"parivartan/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPartnerServiceForTest(t *testing.T) (*mockRepo.MockPartnerRepository, usecase.PartnerUsecase) {
	t.Helper()

	mockPartnerRepo := mockRepo.NewMockPartnerRepository(t)
	service := NewPartnerService(PartnerServiceParams{
		PartnerRepo: mockPartnerRepo,
		Logger:      testLogger(),
	})

	return mockPartnerRepo, service
}

func TestPartnerService_GetProfile(t *testing.T) {
	mockPartnerRepo, service := newPartnerServiceForTest(t)

	ctx := context.Background()
	partnerID := uuid.New()
	partner := &entity.Partner{ID: partnerID, Name: "Priya"}

	mockPartnerRepo.EXPECT().
		FindPartnerByID(ctx, partnerID).
		Return(partner, nil)

	got, err := service.GetProfile(ctx, partnerID)
	require.NoError(t, err)
	assert.Equal(t, partner, got)
}

func TestPartnerService_GetProfile_NotFound(t *testing.T) {
	mockPartnerRepo, service := newPartnerServiceForTest(t)

	ctx := context.Background()
	partnerID := uuid.New()

	mockPartnerRepo.EXPECT().
		FindPartnerByID(ctx, partnerID).
		Return(nil, repository.ErrPartnerNotFound)

	got, err := service.GetProfile(ctx, partnerID)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrPartnerNotFound)
}

func TestPartnerService_UpdateProfile(t *testing.T) {
	mockPartnerRepo, service := newPartnerServiceForTest(t)

	ctx := context.Background()
	partnerID := uuid.New()
	name := "Priya S"
	update := &repository.ProfileUpdate{Name: &name}
	reloaded := &entity.Partner{ID: partnerID, Name: name}

	mockPartnerRepo.EXPECT().
		UpdateProfile(ctx, partnerID, update).
		Return(nil)

	mockPartnerRepo.EXPECT().
		FindPartnerByID(ctx, partnerID).
		Return(reloaded, nil)

	got, err := service.UpdateProfile(ctx, partnerID, update)
	require.NoError(t, err)
	assert.Equal(t, reloaded, got)
}

func TestPartnerService_UpdateProfile_NilUpdate(t *testing.T) {
	// An empty request body binds to a nil update; it must surface as a
	// validation failure, not a panic.
	_, service := newPartnerServiceForTest(t)

	got, err := service.UpdateProfile(context.Background(), uuid.New(), nil)
	assert.Nil(t, got)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestPartnerService_UpdateProfile_UnknownPartnerType(t *testing.T) {
	_, service := newPartnerServiceForTest(t)

	badType := entity.PartnerType("broker")
	update := &repository.ProfileUpdate{PartnerType: &badType}

	got, err := service.UpdateProfile(context.Background(), uuid.New(), update)
	assert.Nil(t, got)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}
