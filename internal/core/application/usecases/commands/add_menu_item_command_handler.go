package commands

import (
	"context"
	"time"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/menu"
	"canteen/internal/core/ports"
)

// AddMenuItemCommandHandler handles adding dishes to the menu and
// announcing the change to connected clients.
type AddMenuItemCommandHandler struct {
	uowFactory MenuUoWFactory
	notifier   ports.Notifier
}

// NewAddMenuItemCommandHandler creates a handler for menu additions.
func NewAddMenuItemCommandHandler(uowFactory MenuUoWFactory, notifier ports.Notifier) AddMenuItemCommandHandler {
	return AddMenuItemCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the command. Staff only. After a successful commit
// a menuUpdated broadcast tells connected clients to refetch the menu.
func (h *AddMenuItemCommandHandler) Handle(ctx context.Context, cmd AddMenuItemCommand) (*menu.Item, error) {
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

	item, err := menu.NewItem(kernel.NewUUID(), cmd.Name(), cmd.Price(), cmd.Category(), time.Now())
	if err != nil {
		return nil, err
	}

	if err = uow.MenuItemRepository().Add(ctx, item); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.Broadcast(menu.UpdatedEventName, nil)

	return item, nil
}
