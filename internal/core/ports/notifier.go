package ports

import (
	"canteen/internal/core/domain/model/order"
)

// Notifier pushes real-time events to connected sessions. Delivery is
// best-effort and advisory: a disconnected owner, a stale session, or
// a slow consumer all degrade to a silent drop, and clients re-derive
// truth from a subsequent read. None of these methods return an error.
type Notifier interface {
	// Dispatch routes an order event to its audience: broadcast events
	// go to every connected session, targeted events only to the
	// owner's session if one is currently bound.
	Dispatch(event order.Event)

	// Broadcast sends a named payload to every connected session.
	// Used for menu change announcements.
	Broadcast(event string, payload any)
}
