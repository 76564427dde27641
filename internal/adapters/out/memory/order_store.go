package memory

import (
	"context"
	"strconv"
	"sync"
	"time"

	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/ports"
)

// OrderStore is the in-process fallback implementation of ports.OrderStore.
// It holds orders in memory behind a mutex and mirrors the remote store's
// behavior exactly, so business invariants hold identically regardless of
// which backend serves a call. Data does not survive a process restart;
// losing updates on a crash is an accepted trade-off of fallback mode.
type OrderStore struct {
	mu     sync.RWMutex
	orders map[string]*order.Order

	// now is the clock used for id generation and merge side effects.
	now func() time.Time

	// lastID guards monotonic id assignment when two orders are created
	// within the same millisecond.
	lastID int64
}

// NewOrderStore creates an empty in-memory order store.
func NewOrderStore() *OrderStore {
	return &OrderStore{
		orders: make(map[string]*order.Order),
		now:    time.Now,
	}
}

// NewOrderStoreWithClock creates a store with a custom clock, for tests.
func NewOrderStoreWithClock(now func() time.Time) *OrderStore {
	return &OrderStore{
		orders: make(map[string]*order.Order),
		now:    now,
	}
}

// nextID assigns a time-based identifier, bumped past the previous one when
// two creations land on the same millisecond.
func (s *OrderStore) nextID() string {
	ms := s.now().UnixMilli()
	if ms <= s.lastID {
		ms = s.lastID + 1
	}
	s.lastID = ms
	return strconv.FormatInt(ms, 10)
}

// List returns anonymized copies of all orders matching the filter.
func (s *OrderStore) List(_ context.Context, filter ports.OrderFilter) ([]*order.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var since time.Time
	if filter.Since > 0 {
		since = s.now().Add(-filter.Since)
	}

	matches := make([]*order.Order, 0)
	for _, o := range s.orders {
		if filter.UserID != "" && o.UserID() != filter.UserID {
			continue
		}
		if len(filter.Statuses) > 0 && !statusIn(o.Status(), filter.Statuses) {
			continue
		}
		if filter.Since > 0 && o.CreatedAt().Before(since) {
			continue
		}
		matches = append(matches, o.Anonymized())
	}
	return matches, nil
}

// Get returns a copy of the order, or (nil, nil) when absent.
// The owner identifier is retained only when withOwner is set.
func (s *OrderStore) Get(_ context.Context, id string, withOwner bool) (*order.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.orders[id]
	if !ok {
		return nil, nil
	}
	if withOwner {
		clone := *o
		return &clone, nil
	}
	return o.Anonymized(), nil
}

// Create assigns a fresh identifier, stores the order, and returns an
// anonymized copy of the stored record.
func (s *OrderStore) Create(_ context.Context, o *order.Order) (*order.Order, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *o
	if err := stored.AssignID(s.nextID()); err != nil {
		return nil, err
	}

	s.orders[stored.ID()] = &stored
	return stored.Anonymized(), nil
}

// Cancel sets the order's status to Cancelled if and only if it is still
// Pending. Any other case, including an unknown id, is a no-op returning
// (nil, nil).
func (s *OrderStore) Cancel(_ context.Context, id string) (*order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[id]
	if !ok {
		return nil, nil
	}
	if o.Status() != order.Pending {
		return nil, nil
	}

	if err := o.Cancel(); err != nil {
		return nil, nil
	}
	return o.Anonymized(), nil
}

// Update blindly merges the patch into the stored record: the patch status
// replaces the current one without a transition check, and a completion
// without a timestamp gets the current time as a side effect of the merge.
// Returns (nil, nil) when the order does not exist.
func (s *OrderStore) Update(_ context.Context, id string, patch ports.OrderPatch) (*order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.orders[id]
	if !ok {
		return nil, nil
	}

	merged, err := mergePatch(existing, patch, s.now())
	if err != nil {
		return nil, err
	}

	s.orders[id] = merged
	return merged.Anonymized(), nil
}

// mergePatch rebuilds an order record with the patch applied.
func mergePatch(existing *order.Order, patch ports.OrderPatch, now time.Time) (*order.Order, error) {
	status := existing.Status()
	if patch.Status != order.Unknown {
		status = patch.Status
	}

	readyAt := existing.ReadyAt()
	if patch.ReadyAt != nil {
		readyAt = patch.ReadyAt
	}

	completedAt := existing.CompletedAt()
	if patch.CompletedAt != nil {
		completedAt = patch.CompletedAt
	}
	if status == order.Completed && completedAt == nil {
		completedAt = &now
	}

	return order.RestoreOrder(
		existing.ID(),
		existing.UserID(),
		existing.Nickname(),
		existing.Items(),
		status,
		existing.TotalPrice(),
		existing.CreatedAt(),
		existing.EstimatedCompletionAt(),
		readyAt,
		completedAt,
	)
}

func statusIn(status order.Status, statuses []order.Status) bool {
	for _, s := range statuses {
		if s == status {
			return true
		}
	}
	return false
}
