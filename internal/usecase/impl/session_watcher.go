package impl

import (
	"context"
	"log/slog"
	"sync"

	"parivartan/internal/domain/entity"
	"parivartan/internal/domain/repository"
	"parivartan/internal/domain/service"
	"parivartan/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// SessionWatcher tracks the most recent session observed on this node and
// publishes its resolved identity. Session-change events arrive in order;
// a resolution still in flight when a newer event arrives is discarded, so
// the published identity can never move backwards (last write wins, guarded
// by the event sequence number).
//
// While the published identity is a partner, the watcher listens to the
// partner record in the store and refreshes the snapshot on every change,
// cancelling the listen when the session changes again.
type SessionWatcher struct {
	resolver    usecase.IdentityUsecase
	partnerRepo repository.PartnerRepository
	logger      *slog.Logger

	mu        sync.Mutex
	lastSeq   uint64
	current   entity.Identity
	cancelSub context.CancelFunc // stops the active partner listen, if any
}

// SessionWatcherParams holds dependencies for SessionWatcher, injected by Fx.
type SessionWatcherParams struct {
	fx.In

	Resolver    usecase.IdentityUsecase
	PartnerRepo repository.PartnerRepository
	Logger      *slog.Logger
}

// NewSessionWatcher is the constructor for SessionWatcher.
func NewSessionWatcher(params SessionWatcherParams) *SessionWatcher {
	return &SessionWatcher{
		resolver:    params.Resolver,
		partnerRepo: params.PartnerRepo,
		logger:      params.Logger,
		current:     entity.NoIdentity(),
	}
}

// Current returns the identity snapshot of the most recent session change.
func (w *SessionWatcher) Current() entity.Identity {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.current
}

// OnSessionChange consumes one session-change notification. Resolution runs
// asynchronously; only the result belonging to the latest sequence number is
// published.
func (w *SessionWatcher) OnSessionChange(ctx context.Context, change service.SessionChange) {
	w.mu.Lock()
	if change.Seq <= w.lastSeq {
		// Out-of-order or duplicate delivery; the newer state already won.
		w.mu.Unlock()

		return
	}
	w.lastSeq = change.Seq
	w.stopListenLocked()

	if change.PrincipalID == nil {
		w.current = entity.NoIdentity()
		w.mu.Unlock()

		return
	}

	w.current = entity.ResolvingIdentity()
	principalID := *change.PrincipalID
	w.mu.Unlock()

	go func() {
		identity, err := w.resolver.Resolve(ctx, principalID)
		if err != nil {
			w.logger.Warn("Session resolution degraded",
				slog.String("principal_id", principalID.String()),
				slog.Any("error", err),
			)
		}

		w.mu.Lock()
		defer w.mu.Unlock()
		if change.Seq != w.lastSeq {
			// A newer session change arrived while we were resolving.
			return
		}

		w.current = identity
		if identity.Kind == entity.IdentityPartner {
			w.startListenLocked(ctx, change.Seq, identity.Partner.ID)
		}
	}()
}

// startListenLocked subscribes to the partner record so the published
// snapshot follows store updates. Caller holds w.mu.
func (w *SessionWatcher) startListenLocked(ctx context.Context, seq uint64, partnerID uuid.UUID) {
	listenCtx, cancel := context.WithCancel(ctx)
	w.cancelSub = cancel

	updates, err := w.partnerRepo.ListenPartner(listenCtx, partnerID)
	if err != nil {
		w.logger.Warn("Failed to listen to partner record", slog.Any("error", err))
		cancel()
		w.cancelSub = nil

		return
	}

	go func() {
		for partner := range updates {
			w.mu.Lock()
			if seq == w.lastSeq {
				w.current = entity.PartnerIdentity(partner)
			}
			w.mu.Unlock()
		}
	}()
}

// stopListenLocked cancels the active partner listen. Caller holds w.mu.
func (w *SessionWatcher) stopListenLocked() {
	if w.cancelSub != nil {
		w.cancelSub()
		w.cancelSub = nil
	}
}
