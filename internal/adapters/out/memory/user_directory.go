package memory

import (
	"context"
	"sync"

	"pizzeria/internal/core/ports"
)

// UserDirectory is the in-process fallback implementation of
// ports.UserDirectory. Registration works against a local map; the
// existence check is deliberately permissive so that order placement keeps
// working when the remote user database is unreachable or not configured.
type UserDirectory struct {
	mu    sync.RWMutex
	users map[string]ports.User
}

// NewUserDirectory creates an empty in-memory user directory.
func NewUserDirectory() *UserDirectory {
	return &UserDirectory{
		users: make(map[string]ports.User),
	}
}

// Exists always reports true. Rejecting every customer while the user
// database is down would turn a storage outage into an order outage.
func (d *UserDirectory) Exists(_ context.Context, _ string) (bool, error) {
	return true, nil
}

// FindByHash returns the locally registered user, or (nil, nil).
func (d *UserDirectory) FindByHash(_ context.Context, hash string) (*ports.User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	user, ok := d.users[hash]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

// Create registers a user in the local map.
func (d *UserDirectory) Create(_ context.Context, user ports.User) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.users[user.Hash] = user
	return nil
}
