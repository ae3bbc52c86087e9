package commands

import (
	"context"
	"errors"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/menu"
	"canteen/internal/core/ports"
)

// UpdateMenuItemCommandHandler applies an edit to a menu item and tells
// connected clients to refetch the menu.
type UpdateMenuItemCommandHandler struct {
	uowFactory MenuUoWFactory
	notifier   ports.Notifier
}

// NewUpdateMenuItemCommandHandler creates a handler for menu item edits.
func NewUpdateMenuItemCommandHandler(uowFactory MenuUoWFactory, notifier ports.Notifier) UpdateMenuItemCommandHandler {
	return UpdateMenuItemCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the command. Staff only. The edit replaces name,
// price, and category together; on success a menu-updated broadcast
// goes out with no payload, clients refetch over the read API.
func (h *UpdateMenuItemCommandHandler) Handle(ctx context.Context, cmd UpdateMenuItemCommand) (*menu.Item, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if cmd.ActorRole() != kernel.RoleStaff {
		return nil, kernel.ErrForbidden
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	menuRepo := uow.MenuItemRepository()

	item, err := menuRepo.Get(ctx, cmd.ItemID())
	if err != nil {
		return nil, err
	}

	if err = errors.Join(
		item.Rename(cmd.Name()),
		item.Reprice(cmd.Price()),
		item.Recategorize(cmd.Category()),
	); err != nil {
		return nil, err
	}

	if err = menuRepo.Update(ctx, item); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.Broadcast(menu.UpdatedEventName, nil)

	return item, nil
}
