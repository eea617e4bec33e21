package realtime

import (
	"sync"

	"github.com/rs/zerolog"
)

// Registry maps a user ID to the set of currently open connections for
// that user. A user with several tabs or devices has several entries in
// the same set. It is the only shared mutable structure in the messaging
// core; every method is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	conns map[uint]map[*Client]struct{}

	logger zerolog.Logger
}

func NewRegistry(logger zerolog.Logger) *Registry {
	return &Registry{
		conns:  make(map[uint]map[*Client]struct{}),
		logger: logger,
	}
}

// Register adds the connection to the user's set. Registering the same
// pair twice is a no-op.
func (r *Registry) Register(userID uint, client *Client) {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, ok := r.conns[userID]
	if !ok {
		set = make(map[*Client]struct{})
		r.conns[userID] = set
	}
	set[client] = struct{}{}

	r.logger.Debug().
		Uint("userId", userID).
		Str("clientId", client.ID).
		Int("connections", len(set)).
		Msg("Connection registered")
}

// Unregister removes the connection from the user's set, dropping the
// user key entirely when the set empties. A missing pair is not an
// error; a close may race with a registry miss.
func (r *Registry) Unregister(userID uint, client *Client) {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, ok := r.conns[userID]
	if !ok {
		return
	}
	delete(set, client)
	if len(set) == 0 {
		delete(r.conns, userID)
	}

	r.logger.Debug().
		Uint("userId", userID).
		Str("clientId", client.ID).
		Int("connections", len(set)).
		Msg("Connection unregistered")
}

// ConnectionsFor returns a snapshot of the user's open connections.
// Mutations after the call do not affect the returned slice.
func (r *Registry) ConnectionsFor(userID uint) []*Client {
	r.mu.RLock()
	defer r.mu.RUnlock()

	set, ok := r.conns[userID]
	if !ok {
		return nil
	}
	clients := make([]*Client, 0, len(set))
	for client := range set {
		clients = append(clients, client)
	}
	return clients
}

// UserCount returns the number of users with at least one open connection.
func (r *Registry) UserCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.conns)
}

// ConnectionCount returns the number of open connections for a user.
func (r *Registry) ConnectionCount(userID uint) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.conns[userID])
}
