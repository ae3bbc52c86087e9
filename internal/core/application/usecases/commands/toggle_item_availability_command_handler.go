package commands

import (
	"context"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/menu"
	"canteen/internal/core/ports"
)

// ToggleItemAvailabilityCommandHandler flips a menu item's availability
// and announces the change to all connected sessions.
type ToggleItemAvailabilityCommandHandler struct {
	uowFactory MenuUoWFactory
	notifier   ports.Notifier
}

// NewToggleItemAvailabilityCommandHandler creates a handler for availability toggles.
func NewToggleItemAvailabilityCommandHandler(uowFactory MenuUoWFactory, notifier ports.Notifier) ToggleItemAvailabilityCommandHandler {
	return ToggleItemAvailabilityCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// availabilityChangedPayload is the broadcast payload for a toggle.
type availabilityChangedPayload struct {
	ItemID    string `json:"itemId"`
	Available bool   `json:"available"`
}

// Handle processes the command. Staff only. The broadcast carries the
// item id and its new availability so clients can patch their menus
// without a refetch.
func (h *ToggleItemAvailabilityCommandHandler) Handle(ctx context.Context, cmd ToggleItemAvailabilityCommand) error {
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

	menuRepo := uow.MenuItemRepository()

	item, err := menuRepo.Get(ctx, cmd.ItemID())
	if err != nil {
		return err
	}

	available := item.ToggleAvailability()

	if err = menuRepo.Update(ctx, item); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Broadcast(menu.AvailabilityChangedEventName, availabilityChangedPayload{
		ItemID:    item.ID().String(),
		Available: available,
	})

	return nil
}
