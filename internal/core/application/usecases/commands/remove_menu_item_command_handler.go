package commands

import (
	"context"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/menu"
	"canteen/internal/core/ports"
)

// RemoveMenuItemCommandHandler deletes a menu item and announces the
// removal to all connected sessions.
type RemoveMenuItemCommandHandler struct {
	uowFactory MenuUoWFactory
	notifier   ports.Notifier
}

// NewRemoveMenuItemCommandHandler creates a handler for menu item removals.
func NewRemoveMenuItemCommandHandler(uowFactory MenuUoWFactory, notifier ports.Notifier) RemoveMenuItemCommandHandler {
	return RemoveMenuItemCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// itemRemovedPayload is the broadcast payload for a removal.
type itemRemovedPayload struct {
	ItemID string `json:"itemId"`
}

// Handle processes the command. Staff only. Removing an unknown item
// is a NotFound; order history is untouched since order lines carry
// the item id, not a foreign key.
func (h *RemoveMenuItemCommandHandler) Handle(ctx context.Context, cmd RemoveMenuItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if cmd.ActorRole() != kernel.RoleStaff {
		return kernel.ErrForbidden
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.MenuItemRepository().Delete(ctx, cmd.ItemID()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Broadcast(menu.RemovedEventName, itemRemovedPayload{
		ItemID: cmd.ItemID().String(),
	})

	return nil
}
