package ws

import "sync"

// ConnectionRegistry maps user identities to their live sessions.
// One session per identity: a fresh identify for a user who already has
// a session overwrites the old binding, so notifications follow the
// most recent tab or device.
type ConnectionRegistry struct {
	mu       sync.RWMutex
	sessions map[string]*Client
}

// NewConnectionRegistry creates an empty registry.
func NewConnectionRegistry() *ConnectionRegistry {
	return &ConnectionRegistry{
		sessions: make(map[string]*Client),
	}
}

// Bind associates an identity with a session, replacing any previous
// binding for that identity.
func (r *ConnectionRegistry) Bind(identity string, client *Client) {
	if identity == "" || client == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[identity] = client
}

// UnbindClient removes whatever identities point at the given session.
// Keyed by the session handle, not the identity: if the user already
// reconnected and rebound elsewhere, the newer binding survives.
func (r *ConnectionRegistry) UnbindClient(client *Client) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for identity, bound := range r.sessions {
		if bound == client {
			delete(r.sessions, identity)
		}
	}
}

// Lookup returns the session bound to an identity, or nil when the
// user has no live session.
func (r *ConnectionRegistry) Lookup(identity string) *Client {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sessions[identity]
}

// Len returns the number of bound identities.
func (r *ConnectionRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
