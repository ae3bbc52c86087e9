package commands

import (
	"context"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/core/ports"
)

// UpdateOrderStatusCommandHandler handles the business logic for moving
// an order along its workflow: staff gate, dual-mode order resolution,
// state machine transition, persistence, and targeted notification.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
}

// NewUpdateOrderStatusCommandHandler creates a handler for order transitions.
func NewUpdateOrderStatusCommandHandler(uowFactory OrderUoWFactory, notifier ports.Notifier) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the transition command.
//
// Only staff may transition orders. The transition is a single-entity
// read-modify-write inside one transaction. An illegal transition or a
// missing order propagates to the caller with no state change and no
// notification. On success the event produced by the state machine
// (rejected or status changed) is dispatched after commit.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
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

	orderRepo := uow.OrderRepository()

	target, err := resolveOrder(ctx, orderRepo, cmd.OrderRef())
	if err != nil {
		return err
	}

	event, err := target.TransitionTo(cmd.TargetStatus())
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, target); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Dispatch(event)

	return nil
}

// resolveOrder looks an order up by whichever reference shape the
// caller holds: internal identity when the reference parses as a UUID,
// public token otherwise. A UUID-shaped reference can never be a valid
// token, so a miss on the identity lookup is final; an expired order is
// a plain not-found, never a validation failure.
func resolveOrder(ctx context.Context, repo ports.OrderRepository, ref string) (*order.Order, error) {
	if id, err := kernel.UUIDFromString(ref); err == nil {
		return repo.Get(ctx, id)
	}

	return repo.GetByPublicID(ctx, ref)
}
