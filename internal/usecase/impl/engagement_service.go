package impl

import (
	"bytes"
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// EngagementServiceParams holds the dependencies of the engagement managers.
type EngagementServiceParams struct {
	fx.In

	Engagements repository.EngagementRepository
	Counters    repository.CounterRepository
	Auth        service.AuthProvider
	Logger      *slog.Logger
}

// engagementConfig describes one engagement kind.
type engagementConfig struct {
	kind          entity.EngagementKind
	types         []entity.EntityType
	addAction     entity.ToggleAction
	removeAction  entity.ToggleAction
	countsEnabled bool
}

// memberState is the local state of one (type, id) pair.
type memberState struct {
	member bool
	count  int
}

// engagementService mirrors one kind of engagement records of the current
// user and applies toggles optimistically.
type engagementService struct {
	cfg      engagementConfig
	repo     repository.EngagementRepository
	counters repository.CounterRepository
	auth     service.AuthProvider
	logger   *slog.Logger
	locks    *keyedMutex

	mu         sync.RWMutex
	userID     *uuid.UUID
	sets       map[entity.EntityType]map[uuid.UUID]struct{}
	counts     map[uuid.UUID]int
	generation uint64

	listeners   *broadcaster[usecase.EngagementSnapshot]
	unsubscribe func()
}

func newEngagementService(params EngagementServiceParams, cfg engagementConfig) *engagementService {
	srv := &engagementService{
		cfg:       cfg,
		repo:      params.Engagements,
		auth:      params.Auth,
		logger:    params.Logger.With(slog.String("engagement", string(cfg.kind))),
		locks:     newKeyedMutex(),
		sets:      make(map[entity.EntityType]map[uuid.UUID]struct{}, len(cfg.types)),
		counts:    make(map[uuid.UUID]int),
		listeners: newBroadcaster[usecase.EngagementSnapshot](),
	}
	if cfg.countsEnabled {
		srv.counters = params.Counters
	}
	for _, t := range cfg.types {
		srv.sets[t] = make(map[uuid.UUID]struct{})
	}

	return srv
}

func (srv *engagementService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *engagementService) supports(entityType entity.EntityType) bool {
	return slices.Contains(srv.cfg.types, entityType)
}

// Start loads the current user's records and follows auth transitions.
func (srv *engagementService) Start(ctx context.Context) error {
	srv.unsubscribe = srv.auth.OnAuthStateChange(func(change entity.AuthChange) {
		srv.logger.Debug("Auth state changed", slog.String("event", string(change.Event)))
		if err := srv.Refresh(context.Background()); err != nil {
			srv.logger.Error("Failed to refresh after auth change", slog.Any("error", err))
		}
	})

	if err := srv.Refresh(ctx); err != nil {
		srv.log(ctx).Error("Initial engagement load failed", slog.Any("error", err))
	}

	return nil
}

func (srv *engagementService) Stop() {
	if srv.unsubscribe != nil {
		srv.unsubscribe()
	}
}

// Refresh replaces the local sets with the server's. Sets are cleared right
// away when the user signs out or changes.
func (srv *engagementService) Refresh(ctx context.Context) error {
	user := srv.auth.CurrentUser()

	srv.mu.Lock()
	srv.generation++
	gen := srv.generation
	changed := user == nil || srv.userID == nil || *srv.userID != user.ID
	if changed {
		for t := range srv.sets {
			srv.sets[t] = make(map[uuid.UUID]struct{})
		}
	}
	if user == nil {
		srv.userID = nil
	} else {
		id := user.ID
		srv.userID = &id
	}
	snapshot := srv.snapshotLocked()
	srv.mu.Unlock()

	if changed {
		srv.listeners.Notify(snapshot)
	}
	if user == nil {
		return nil
	}

	fetched := make(map[entity.EntityType]map[uuid.UUID]struct{}, len(srv.cfg.types))
	for _, t := range srv.cfg.types {
		ids, err := srv.repo.ListEntityIDs(ctx, srv.cfg.kind, user.ID, t)
		if err != nil {
			return errors.Wrapf(err, "failed to list %s %ss", srv.cfg.kind, t)
		}

		set := make(map[uuid.UUID]struct{}, len(ids))
		for _, id := range ids {
			set[id] = struct{}{}
		}
		fetched[t] = set
	}

	srv.mu.Lock()
	if gen != srv.generation {
		srv.mu.Unlock()

		return nil
	}
	srv.sets = fetched
	snapshot = srv.snapshotLocked()
	srv.mu.Unlock()

	srv.listeners.Notify(snapshot)

	return nil
}

func (srv *engagementService) has(entityType entity.EntityType, id uuid.UUID) bool {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	_, ok := srv.sets[entityType][id]

	return ok
}

func (srv *engagementService) count(id uuid.UUID) int {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return srv.counts[id]
}

// toggle flips membership of (entityType, id). The local state changes before
// the remote calls and is restored if any of them fails. Toggles on the same
// pair run one at a time.
func (srv *engagementService) toggle(ctx context.Context, entityType entity.EntityType, id uuid.UUID) entity.ToggleResult {
	user := srv.auth.CurrentUser()
	if user == nil {
		return entity.ToggleResult{NeedsLogin: true}
	}
	if !srv.supports(entityType) {
		srv.log(ctx).Warn("Unsupported engagement target", slog.String("type", entityType.String()))

		return entity.ToggleResult{}
	}

	unlock := srv.locks.Lock(entityType.String() + ":" + id.String())
	defer unlock()

	srv.mu.RLock()
	gen := srv.generation
	_, member := srv.sets[entityType][id]
	prev := memberState{member: member, count: srv.counts[id]}
	srv.mu.RUnlock()

	next := memberState{member: !prev.member, count: prev.count}
	if srv.counters != nil {
		if next.member {
			next.count++
		} else {
			next.count = max(prev.count-1, 0)
		}
	}

	record := entity.EngagementRecord{
		UserID:     user.ID,
		EntityType: entityType,
		EntityID:   id,
		CreatedAt:  time.Now(),
	}

	apply := func(s memberState) {
		srv.applyState(gen, entityType, id, s)
	}
	changed := true
	err := mutateOptimistically(apply, prev, next, func() error {
		var commitErr error
		if next.member {
			changed, commitErr = srv.add(ctx, record)
		} else {
			changed, commitErr = srv.remove(ctx, record)
		}

		return commitErr
	})
	if err != nil {
		srv.log(ctx).Error("Engagement toggle failed, rolled back",
			slog.String("type", entityType.String()),
			slog.Any("id", id),
			slog.Any("error", err),
		)

		return entity.ToggleResult{}
	}
	if !changed && next.count != prev.count {
		// The server already matched; its counter was not touched.
		apply(memberState{member: next.member, count: prev.count})
	}

	action := srv.cfg.removeAction
	if next.member {
		action = srv.cfg.addAction
	}

	return entity.ToggleResult{Success: true, Action: action}
}

// applyState writes s unless the sets were replaced by a refresh since the
// toggle started.
func (srv *engagementService) applyState(gen uint64, entityType entity.EntityType, id uuid.UUID, s memberState) {
	srv.mu.Lock()
	if gen != srv.generation {
		srv.mu.Unlock()

		return
	}
	if s.member {
		srv.sets[entityType][id] = struct{}{}
	} else {
		delete(srv.sets[entityType], id)
	}
	if srv.counters != nil {
		srv.counts[id] = s.count
	}
	snapshot := srv.snapshotLocked()
	srv.mu.Unlock()

	srv.listeners.Notify(snapshot)
}

// add inserts the record and bumps the counter. A record that already exists
// counts as added without changing anything, so changed is false. If the
// counter call fails the insert is undone.
func (srv *engagementService) add(ctx context.Context, record entity.EngagementRecord) (changed bool, err error) {
	err = srv.repo.Insert(ctx, srv.cfg.kind, record)
	if errors.Is(err, repository.ErrDuplicateEngagement) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "failed to insert engagement")
	}
	if srv.counters == nil {
		return true, nil
	}

	if err := srv.counters.IncrementLikeCount(ctx, record.EntityType, record.EntityID); err != nil {
		if undoErr := srv.repo.Delete(ctx, srv.cfg.kind, record); undoErr != nil {
			srv.log(ctx).Error("Failed to undo engagement insert", slog.Any("error", undoErr))
		}

		return false, errors.Wrap(err, "failed to increment like count")
	}

	return true, nil
}

// remove deletes the record and decrements the counter. A record that is
// already gone counts as removed, with changed false.
func (srv *engagementService) remove(ctx context.Context, record entity.EngagementRecord) (changed bool, err error) {
	err = srv.repo.Delete(ctx, srv.cfg.kind, record)
	if errors.Is(err, repository.ErrEngagementNotFound) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "failed to delete engagement")
	}
	if srv.counters == nil {
		return true, nil
	}

	if err := srv.counters.DecrementLikeCount(ctx, record.EntityType, record.EntityID); err != nil {
		if undoErr := srv.repo.Insert(ctx, srv.cfg.kind, record); undoErr != nil {
			srv.log(ctx).Error("Failed to undo engagement delete", slog.Any("error", undoErr))
		}

		return false, errors.Wrap(err, "failed to decrement like count")
	}

	return true, nil
}

func (srv *engagementService) Snapshot() usecase.EngagementSnapshot {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return srv.snapshotLocked()
}

func (srv *engagementService) snapshotLocked() usecase.EngagementSnapshot {
	snapshot := usecase.EngagementSnapshot{
		Kind: srv.cfg.kind,
		IDs:  make(map[entity.EntityType][]uuid.UUID, len(srv.sets)),
	}
	if srv.userID != nil {
		id := *srv.userID
		snapshot.UserID = &id
	}
	for t, set := range srv.sets {
		ids := make([]uuid.UUID, 0, len(set))
		for id := range set {
			ids = append(ids, id)
		}
		slices.SortFunc(ids, func(a, b uuid.UUID) int {
			return bytes.Compare(a[:], b[:])
		})
		snapshot.IDs[t] = ids
	}
	if srv.counters != nil {
		snapshot.LikeCounts = make(map[uuid.UUID]int, len(srv.counts))
		for id, n := range srv.counts {
			snapshot.LikeCounts[id] = n
		}
	}

	return snapshot
}

func (srv *engagementService) Subscribe(listener func(usecase.EngagementSnapshot)) func() {
	return srv.listeners.Subscribe(listener)
}
