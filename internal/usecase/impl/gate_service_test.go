package impl

import (
	"context"
	"testing"
	"time"

	"parivartan/internal/domain/entity"
	"parivartan/internal/domain/repository"
	mockRepo "parivartan/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGateServiceForTest(t *testing.T) (*mockRepo.MockAdminRepository, *mockRepo.MockPartnerRepository, *gateService) {
	t.Helper()

	mockAdminRepo := mockRepo.NewMockAdminRepository(t)
	mockPartnerRepo := mockRepo.NewMockPartnerRepository(t)
	service := NewGateService(GateServiceParams{
		AdminRepo:   mockAdminRepo,
		PartnerRepo: mockPartnerRepo,
		Logger:      testLogger(),
	})

	return mockAdminRepo, mockPartnerRepo, service.(*gateService)
}

func pendingPartner() *entity.Partner {
	return &entity.Partner{
		ID:                 uuid.New(),
		VerificationStatus: entity.VerificationPending,
	}
}

func completeDocuments() []entity.PartnerDocument {
	docs := make([]entity.PartnerDocument, 0, len(entity.RequiredDocumentTypes))
	for _, docType := range entity.RequiredDocumentTypes {
		docs = append(docs, entity.PartnerDocument{
			Type:   docType,
			URL:    "https://blobs.example.com/" + string(docType),
			Status: entity.DocumentReviewPending,
		})
	}

	return docs
}

func TestGateService_ResolveRoute_None(t *testing.T) {
	_, _, service := newGateServiceForTest(t)

	route := service.ResolveRoute(entity.NoIdentity())
	assert.Equal(t, entity.RouteSignIn, route)
}

func TestGateService_ResolveRoute_Resolving(t *testing.T) {
	_, _, service := newGateServiceForTest(t)

	route := service.ResolveRoute(entity.ResolvingIdentity())
	assert.Equal(t, entity.RouteLoading, route)
}

func TestGateService_ResolveRoute_Admin(t *testing.T) {
	_, _, service := newGateServiceForTest(t)

	route := service.ResolveRoute(entity.AdminIdentity(&entity.AdminUser{ID: uuid.New()}))
	assert.Equal(t, entity.RouteAdminArea, route)
}

func TestGateService_ResolveRoute_PendingIncomplete(t *testing.T) {
	_, _, service := newGateServiceForTest(t)

	partner := pendingPartner()

	route := service.ResolveRoute(entity.PartnerIdentity(partner))
	assert.Equal(t, entity.RouteDocumentUpload, route)
}

func TestGateService_ResolveRoute_PendingComplete(t *testing.T) {
	_, _, service := newGateServiceForTest(t)

	partner := pendingPartner()
	partner.Documents = completeDocuments()

	route := service.ResolveRoute(entity.PartnerIdentity(partner))
	assert.Equal(t, entity.RouteVerificationPending, route)
}

func TestGateService_ResolveRoute_Rejected(t *testing.T) {
	// Rejection routes to the status view even with a full document set.
	_, _, service := newGateServiceForTest(t)

	partner := pendingPartner()
	partner.VerificationStatus = entity.VerificationRejected
	partner.Documents = completeDocuments()

	route := service.ResolveRoute(entity.PartnerIdentity(partner))
	assert.Equal(t, entity.RouteVerificationStatus, route)
}

func TestGateService_ResolveRoute_ApprovedWithoutSubscription(t *testing.T) {
	_, _, service := newGateServiceForTest(t)

	partner := pendingPartner()
	partner.VerificationStatus = entity.VerificationApproved

	route := service.ResolveRoute(entity.PartnerIdentity(partner))
	assert.Equal(t, entity.RouteSubscriptionPlans, route)
}

func TestGateService_ResolveRoute_ApprovedActiveSubscription(t *testing.T) {
	_, _, service := newGateServiceForTest(t)

	now := time.Now()
	service.now = func() time.Time { return now }

	partner := pendingPartner()
	partner.VerificationStatus = entity.VerificationApproved
	partner.Subscription = &entity.Subscription{
		Status:     entity.SubscriptionActive,
		ExpiryDate: now.Add(24 * time.Hour),
	}

	route := service.ResolveRoute(entity.PartnerIdentity(partner))
	assert.Equal(t, entity.RouteDashboard, route)
}

func TestGateService_ResolveRoute_ApprovedExpiredSubscription(t *testing.T) {
	// An expired subscription demotes the partner back to plan selection.
	_, _, service := newGateServiceForTest(t)

	now := time.Now()
	service.now = func() time.Time { return now }

	partner := pendingPartner()
	partner.VerificationStatus = entity.VerificationApproved
	partner.Subscription = &entity.Subscription{
		Status:     entity.SubscriptionActive,
		ExpiryDate: now.Add(-time.Minute),
	}

	route := service.ResolveRoute(entity.PartnerIdentity(partner))
	assert.Equal(t, entity.RouteSubscriptionPlans, route)
}

func TestGateService_ResolveRoute_CancelledSubscription(t *testing.T) {
	_, _, service := newGateServiceForTest(t)

	partner := pendingPartner()
	partner.VerificationStatus = entity.VerificationApproved
	partner.Subscription = &entity.Subscription{
		Status:     entity.SubscriptionCancelled,
		ExpiryDate: time.Now().Add(24 * time.Hour),
	}

	route := service.ResolveRoute(entity.PartnerIdentity(partner))
	assert.Equal(t, entity.RouteSubscriptionPlans, route)
}

func TestGateService_RouteForPrincipal_Admin(t *testing.T) {
	mockAdminRepo, _, service := newGateServiceForTest(t)

	ctx := context.Background()
	principalID := uuid.New()

	mockAdminRepo.EXPECT().
		FindAdminByID(ctx, principalID).
		Return(&entity.AdminUser{ID: principalID}, nil)

	route, err := service.RouteForPrincipal(ctx, principalID)
	require.NoError(t, err)
	assert.Equal(t, entity.RouteAdminArea, route)
}

func TestGateService_RouteForPrincipal_Partner(t *testing.T) {
	mockAdminRepo, mockPartnerRepo, service := newGateServiceForTest(t)

	ctx := context.Background()
	principalID := uuid.New()
	partner := pendingPartner()
	partner.ID = principalID
	partner.Documents = completeDocuments()

	mockAdminRepo.EXPECT().
		FindAdminByID(ctx, principalID).
		Return(nil, repository.ErrAdminNotFound)

	mockPartnerRepo.EXPECT().
		FindPartnerByID(ctx, principalID).
		Return(partner, nil)

	route, err := service.RouteForPrincipal(ctx, principalID)
	require.NoError(t, err)
	assert.Equal(t, entity.RouteVerificationPending, route)
}

func TestGateService_RouteForPrincipal_PartnerLoadFailure(t *testing.T) {
	// A non-admin principal whose partner record cannot be loaded must land
	// on document upload, never the dashboard.
	mockAdminRepo, mockPartnerRepo, service := newGateServiceForTest(t)

	ctx := context.Background()
	principalID := uuid.New()

	mockAdminRepo.EXPECT().
		FindAdminByID(ctx, principalID).
		Return(nil, repository.ErrAdminNotFound)

	mockPartnerRepo.EXPECT().
		FindPartnerByID(ctx, principalID).
		Return(nil, errors.New("db error"))

	route, err := service.RouteForPrincipal(ctx, principalID)
	require.NoError(t, err)
	assert.Equal(t, entity.RouteDocumentUpload, route)
}

func TestGateService_RouteForPrincipal_AdminLookupError(t *testing.T) {
	mockAdminRepo, _, service := newGateServiceForTest(t)

	ctx := context.Background()
	principalID := uuid.New()

	mockAdminRepo.EXPECT().
		FindAdminByID(ctx, principalID).
		Return(nil, errors.New("db error"))

	_, err := service.RouteForPrincipal(ctx, principalID)
	assert.Error(t, err)
}
