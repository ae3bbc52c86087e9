package ports

import (
	"context"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/menu"
)

// MenuItemRepository defines the persistence contract for menu items.
type MenuItemRepository interface {
	// Add persists a new menu item.
	Add(ctx context.Context, aggregate *menu.Item) error

	// Update persists changes to an existing menu item.
	Update(ctx context.Context, aggregate *menu.Item) error

	// Get retrieves a menu item by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*menu.Item, error)

	// Delete removes a menu item by its identifier.
	Delete(ctx context.Context, id kernel.UUID) error
}
