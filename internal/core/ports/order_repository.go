package ports

import (
	"context"
	"time"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Lookups may miss at any time: retained orders are purged after their
// retention window, so callers treat a not-found result as a normal
// outcome rather than a fault.
type OrderRepository interface {
	// Add persists a newly placed order aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its internal identity.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByPublicID retrieves an order by its 4-character public token.
	GetByPublicID(ctx context.Context, publicID string) (*order.Order, error)

	// ExistsWithPublicID reports whether a retained order already holds
	// the given public token. Used by the allocator.
	ExistsWithPublicID(ctx context.Context, publicID string) (bool, error)

	// DeleteOlderThan removes orders placed before the cutoff and
	// returns how many were removed. Used by the expiry job.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
