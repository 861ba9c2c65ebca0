package impl

import (
	"context"
	"testing"

	"parivartan/internal/domain/entity"
	domainerrors "parivartan/internal/domain/errors"
	"parivartan/internal/domain/repository"
	mockRepo "parivartan/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIdentityServiceForTest(t *testing.T) (*mockRepo.MockAdminRepository, *mockRepo.MockPartnerRepository, *identityService) {
	t.Helper()

	mockAdminRepo := mockRepo.NewMockAdminRepository(t)
	mockPartnerRepo := mockRepo.NewMockPartnerRepository(t)
	service := NewIdentityService(IdentityServiceParams{
		AdminRepo:   mockAdminRepo,
		PartnerRepo: mockPartnerRepo,
		Logger:      testLogger(),
	})

	return mockAdminRepo, mockPartnerRepo, service.(*identityService)
}

func TestIdentityService_Resolve_Admin(t *testing.T) {
	mockAdminRepo, _, service := newIdentityServiceForTest(t)

	ctx := context.Background()
	principalID := uuid.New()
	admin := &entity.AdminUser{ID: principalID, Email: "admin@example.com"}

	mockAdminRepo.EXPECT().
		FindAdminByID(ctx, principalID).
		Return(admin, nil)

	identity, err := service.Resolve(ctx, principalID)
	require.NoError(t, err)
	assert.Equal(t, entity.IdentityAdmin, identity.Kind)
	assert.Equal(t, admin, identity.Admin)
	assert.Nil(t, identity.Partner)
}

func TestIdentityService_Resolve_Partner(t *testing.T) {
	mockAdminRepo, mockPartnerRepo, service := newIdentityServiceForTest(t)

	ctx := context.Background()
	principalID := uuid.New()
	partner := &entity.Partner{ID: principalID, Email: "partner@example.com"}

	mockAdminRepo.EXPECT().
		FindAdminByID(ctx, principalID).
		Return(nil, repository.ErrAdminNotFound)

	mockPartnerRepo.EXPECT().
		FindPartnerByID(ctx, principalID).
		Return(partner, nil)

	identity, err := service.Resolve(ctx, principalID)
	require.NoError(t, err)
	assert.Equal(t, entity.IdentityPartner, identity.Kind)
	assert.Equal(t, partner, identity.Partner)
	assert.Nil(t, identity.Admin)
}

func TestIdentityService_Resolve_AdminPrecedence(t *testing.T) {
	// A principal holding both records resolves as admin: the partner
	// lookup must never run.
	mockAdminRepo, _, service := newIdentityServiceForTest(t)

	ctx := context.Background()
	principalID := uuid.New()
	admin := &entity.AdminUser{ID: principalID}

	mockAdminRepo.EXPECT().
		FindAdminByID(ctx, principalID).
		Return(admin, nil)

	identity, err := service.Resolve(ctx, principalID)
	require.NoError(t, err)
	assert.Equal(t, entity.IdentityAdmin, identity.Kind)
}

func TestIdentityService_Resolve_NoRecord(t *testing.T) {
	mockAdminRepo, mockPartnerRepo, service := newIdentityServiceForTest(t)

	ctx := context.Background()
	principalID := uuid.New()

	mockAdminRepo.EXPECT().
		FindAdminByID(ctx, principalID).
		Return(nil, repository.ErrAdminNotFound)

	mockPartnerRepo.EXPECT().
		FindPartnerByID(ctx, principalID).
		Return(nil, repository.ErrPartnerNotFound)

	identity, err := service.Resolve(ctx, principalID)
	assert.ErrorIs(t, err, domainerrors.ErrPrincipalRecordMissing)
	assert.Equal(t, entity.IdentityNone, identity.Kind)
}

func TestIdentityService_Resolve_AdminLookupError(t *testing.T) {
	mockAdminRepo, _, service := newIdentityServiceForTest(t)

	ctx := context.Background()
	principalID := uuid.New()

	mockAdminRepo.EXPECT().
		FindAdminByID(ctx, principalID).
		Return(nil, errors.New("db error"))

	identity, err := service.Resolve(ctx, principalID)
	assert.Error(t, err)
	assert.Equal(t, entity.IdentityNone, identity.Kind)
}

func TestIdentityService_Resolve_PartnerLookupError(t *testing.T) {
	mockAdminRepo, mockPartnerRepo, service := newIdentityServiceForTest(t)

	ctx := context.Background()
	principalID := uuid.New()

	mockAdminRepo.EXPECT().
		FindAdminByID(ctx, principalID).
		Return(nil, repository.ErrAdminNotFound)

	mockPartnerRepo.EXPECT().
		FindPartnerByID(ctx, principalID).
		Return(nil, errors.New("db error"))

	identity, err := service.Resolve(ctx, principalID)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrPrincipalRecordMissing)
	assert.Equal(t, entity.IdentityNone, identity.Kind)
}
