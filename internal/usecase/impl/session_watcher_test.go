package impl

import (
	"context"
	"testing"
	"time"

	"parivartan/internal/domain/entity"
	"parivartan/internal/domain/service"
	mockRepo "parivartan/internal/mocks/repository"
	mockUc "parivartan/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newSessionWatcherForTest(t *testing.T) (*mockUc.MockIdentityUsecase, *mockRepo.MockPartnerRepository, *SessionWatcher) {
	t.Helper()

	mockResolver := mockUc.NewMockIdentityUsecase(t)
	mockPartnerRepo := mockRepo.NewMockPartnerRepository(t)
	watcher := NewSessionWatcher(SessionWatcherParams{
		Resolver:    mockResolver,
		PartnerRepo: mockPartnerRepo,
		Logger:      testLogger(),
	})

	return mockResolver, mockPartnerRepo, watcher
}

// closedPartnerChan returns an already-closed update channel so the watcher's
// listen goroutine exits immediately.
func closedPartnerChan() <-chan *entity.Partner {
	ch := make(chan *entity.Partner)
	close(ch)

	return ch
}

func TestSessionWatcher_InitialState(t *testing.T) {
	_, _, watcher := newSessionWatcherForTest(t)

	assert.Equal(t, entity.IdentityNone, watcher.Current().Kind)
}

func TestSessionWatcher_SignOut(t *testing.T) {
	_, _, watcher := newSessionWatcherForTest(t)

	watcher.OnSessionChange(context.Background(), service.SessionChange{Seq: 1, PrincipalID: nil})

	assert.Equal(t, entity.IdentityNone, watcher.Current().Kind)
}

func TestSessionWatcher_ResolvesAdmin(t *testing.T) {
	mockResolver, _, watcher := newSessionWatcherForTest(t)

	principalID := uuid.New()
	admin := &entity.AdminUser{ID: principalID}

	mockResolver.EXPECT().
		Resolve(mock.Anything, principalID).
		Return(entity.AdminIdentity(admin), nil)

	watcher.OnSessionChange(context.Background(), service.SessionChange{Seq: 1, PrincipalID: &principalID})

	assert.Eventually(t, func() bool {
		return watcher.Current().Kind == entity.IdentityAdmin
	}, time.Second, 5*time.Millisecond)
}

func TestSessionWatcher_ResolvesPartnerAndListens(t *testing.T) {
	mockResolver, mockPartnerRepo, watcher := newSessionWatcherForTest(t)

	principalID := uuid.New()
	partner := &entity.Partner{ID: principalID, VerificationStatus: entity.VerificationPending}
	updated := &entity.Partner{ID: principalID, VerificationStatus: entity.VerificationApproved}

	updates := make(chan *entity.Partner, 1)
	updates <- updated
	close(updates)

	mockResolver.EXPECT().
		Resolve(mock.Anything, principalID).
		Return(entity.PartnerIdentity(partner), nil)

	mockPartnerRepo.EXPECT().
		ListenPartner(mock.Anything, principalID).
		Return((<-chan *entity.Partner)(updates), nil)

	watcher.OnSessionChange(context.Background(), service.SessionChange{Seq: 1, PrincipalID: &principalID})

	// The store update arriving through the listen channel refreshes the
	// published snapshot.
	assert.Eventually(t, func() bool {
		current := watcher.Current()

		return current.Kind == entity.IdentityPartner &&
			current.Partner.VerificationStatus == entity.VerificationApproved
	}, time.Second, 5*time.Millisecond)
}

func TestSessionWatcher_StaleResolutionDiscarded(t *testing.T) {
	mockResolver, _, watcher := newSessionWatcherForTest(t)

	principalID := uuid.New()
	release := make(chan struct{})

	mockResolver.EXPECT().
		Resolve(mock.Anything, principalID).
		RunAndReturn(func(context.Context, uuid.UUID) (entity.Identity, error) {
			<-release

			return entity.PartnerIdentity(&entity.Partner{ID: principalID}), nil
		})

	// Seq 1 starts a slow resolution; seq 2 signs out before it finishes.
	watcher.OnSessionChange(context.Background(), service.SessionChange{Seq: 1, PrincipalID: &principalID})
	watcher.OnSessionChange(context.Background(), service.SessionChange{Seq: 2, PrincipalID: nil})
	close(release)

	// The stale result must never overwrite the signed-out state.
	assert.Never(t, func() bool {
		return watcher.Current().Kind == entity.IdentityPartner
	}, 100*time.Millisecond, 5*time.Millisecond)
	assert.Equal(t, entity.IdentityNone, watcher.Current().Kind)
}

func TestSessionWatcher_OutOfOrderDeliveryIgnored(t *testing.T) {
	// A duplicate or late event with an older sequence number is dropped
	// without touching the resolver.
	_, _, watcher := newSessionWatcherForTest(t)

	principalID := uuid.New()

	watcher.OnSessionChange(context.Background(), service.SessionChange{Seq: 5, PrincipalID: nil})
	watcher.OnSessionChange(context.Background(), service.SessionChange{Seq: 3, PrincipalID: &principalID})

	assert.Equal(t, entity.IdentityNone, watcher.Current().Kind)
}

func TestSessionWatcher_ResolutionErrorPublishesResult(t *testing.T) {
	// A failed resolution still publishes what the resolver returned: the
	// least-privileged none identity.
	mockResolver, _, watcher := newSessionWatcherForTest(t)

	principalID := uuid.New()

	mockResolver.EXPECT().
		Resolve(mock.Anything, principalID).
		Return(entity.NoIdentity(), assert.AnError)

	watcher.OnSessionChange(context.Background(), service.SessionChange{Seq: 1, PrincipalID: &principalID})

	assert.Eventually(t, func() bool {
		return watcher.Current().Kind == entity.IdentityNone
	}, time.Second, 5*time.Millisecond)
}
