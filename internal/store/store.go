// Package store composes the slice reducers into a single state
// container with serialized dispatch, storage write-through and
// optional action telemetry.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/example/storefront/internal/slice/cart"
	"github.com/example/storefront/internal/slice/user"
	"github.com/example/storefront/internal/state"
	"github.com/example/storefront/internal/storage"
	"github.com/example/storefront/internal/telemetry"
)

// rehydrateAttempts bounds the clear-and-retry loop over corrupt keys;
// there are only three keys, so a fourth failure means storage itself
// is misbehaving.
const rehydrateAttempts = 4

// Subscriber observes every applied transition, in dispatch order. It
// runs on the dispatching goroutine and must not call Dispatch.
type Subscriber func(next RootState, action state.Action)

type Config struct {
	Storage   storage.Storage
	CartMerge cart.MergePolicy
	Telemetry telemetry.Publisher // nil disables publishing
	SessionID string
	Now       func() time.Time // nil means time.Now
}

// Store is the explicitly constructed state container. Consumers
// receive it by reference; there is no package-level instance.
type Store struct {
	mu          sync.RWMutex
	root        RootState
	subscribers []Subscriber

	cartReduce func(cart.State, state.Action) cart.State
	storage    storage.Storage
	telemetry  telemetry.Publisher
	sessionID  string
	now        func() time.Time
}

// New composes the store and seeds it from persisted storage. A
// corrupt entry is logged, cleared, and replaced by its default; no
// network or async work happens here, and composing twice from the
// same persisted input yields identical state.
func New(ctx context.Context, cfg Config) (*Store, error) {
	if cfg.Storage == nil {
		return nil, errors.New("store: Storage is required")
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	pub := cfg.Telemetry
	if pub == nil {
		pub = telemetry.Noop{}
	}

	persisted, err := rehydrate(ctx, cfg.Storage, now())
	if err != nil {
		return nil, err
	}

	s := &Store{
		cartReduce: cart.Reducer(cfg.CartMerge),
		storage:    cfg.Storage,
		telemetry:  pub,
		sessionID:  cfg.SessionID,
		now:        now,
	}
	s.root = RootState{
		Cart: cart.State{
			Items:           persisted.CartItems,
			ShippingAddress: persisted.ShippingAddress,
		},
	}
	if persisted.UserInfo != nil {
		s.root.UserLogin = state.Ready(*persisted.UserInfo)
	}
	return s, nil
}

// rehydrate loads persisted state, clearing corrupt entries and
// retrying so one bad key only costs its own data.
func rehydrate(ctx context.Context, st storage.Storage, now time.Time) (Persisted, error) {
	for attempt := 0; attempt < rehydrateAttempts; attempt++ {
		persisted, err := LoadPersisted(ctx, st, now)
		if err == nil {
			return persisted, nil
		}

		var corrupt *CorruptError
		if !errors.As(err, &corrupt) {
			return Persisted{}, err
		}

		log.Printf("[Store] Clearing corrupt persisted entry %q: %v", corrupt.Key, corrupt.Err)
		if delErr := st.Delete(ctx, corrupt.Key); delErr != nil {
			return Persisted{}, fmt.Errorf("clear corrupt entry %q: %w", corrupt.Key, delErr)
		}
	}
	return Persisted{}, errors.New("store: persisted storage still corrupt after clearing")
}

// State returns a snapshot of the root state.
func (s *Store) State() RootState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.root
}

// Subscribe registers fn for every subsequent transition.
func (s *Store) Subscribe(fn Subscriber) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// Dispatch applies the action. Transitions are serialized: actions are
// reduced in the order Dispatch is entered, and the persist
// write-through for cart, shipping and session mutations happens
// before the next action is applied. Persist and telemetry failures
// are logged, not fatal: the in-memory transition has already
// happened, and the storage contract is last-write-wins.
func (s *Store) Dispatch(ctx context.Context, action state.Action) {
	s.mu.Lock()
	next := s.reduce(s.root, action)
	s.root = next
	subscribers := s.subscribers
	s.mu.Unlock()

	s.persistAfter(ctx, next, action)

	if err := s.telemetry.Publish(ctx, telemetry.ActionRecord{
		SessionID:  s.sessionID,
		ActionType: action.ActionType(),
		At:         s.now(),
	}); err != nil {
		log.Printf("[Store] Telemetry publish failed for %s: %v", action.ActionType(), err)
	}

	for _, fn := range subscribers {
		fn(next, action)
	}
}

// persistAfter writes through the slices the action mutated.
func (s *Store) persistAfter(ctx context.Context, next RootState, action state.Action) {
	switch action.(type) {
	case cart.ItemAdded, cart.ItemRemoved:
		s.persistJSON(ctx, storage.KeyCartItems, next.Cart.Items)
	case cart.Cleared:
		s.clearKey(ctx, storage.KeyCartItems)
	case cart.ShippingAddressSaved:
		s.persistJSON(ctx, storage.KeyShippingAddress, next.Cart.ShippingAddress)
	case user.LoginSucceeded, user.RegisterSucceeded, user.UpdateProfileSucceeded:
		if info, ok := next.UserLogin.Get(); ok {
			s.persistJSON(ctx, storage.KeyUserInfo, info)
		}
	case user.LoggedOut:
		s.clearKey(ctx, storage.KeyUserInfo)
	}
}

func (s *Store) persistJSON(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		log.Printf("[Store] Marshal %q failed: %v", key, err)
		return
	}
	if err := s.storage.Set(ctx, key, data); err != nil {
		log.Printf("[Store] Persist %q failed: %v", key, err)
	}
}

func (s *Store) clearKey(ctx context.Context, key string) {
	if err := s.storage.Delete(ctx, key); err != nil {
		log.Printf("[Store] Clear %q failed: %v", key, err)
	}
}
