package commands

import (
	"context"
	"time"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/core/domain/services"
	"canteen/internal/core/ports"
)

// PlaceOrderCommandHandler handles the business logic for order placement.
// Allocates a unique public token, recomputes the hostel tag from the
// owner's canonical record, persists the order, and announces it to all
// connected sessions.
type PlaceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
// Requires an OrderUoWFactory for transactional persistence and a
// Notifier for the real-time announcement.
func NewPlaceOrderCommandHandler(uowFactory OrderUoWFactory, notifier ports.Notifier) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the placement command.
//
// Only students may place orders. The public token is allocated against
// the same transaction that inserts the order, so the uniqueness check
// and the insert cannot be split by a concurrent placement's commit.
// The created event is dispatched only after a successful commit;
// dispatch itself is best-effort and cannot fail the placement.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if cmd.ActorRole() != kernel.RoleStudent {
		return nil, kernel.ErrForbidden
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	owner, err := uow.StudentRepository().Get(ctx, cmd.StudentID())
	if err != nil {
		return nil, err
	}

	now := time.Now()
	hostelTag := owner.FirstYearHostelTag(cmd.ClaimedFirstYear(), cmd.HostelChoice(), now)

	orderRepo := uow.OrderRepository()

	allocator := services.NewPublicIDAllocator(orderRepo)
	publicID, err := allocator.Allocate(ctx)
	if err != nil {
		return nil, err
	}

	placed, err := order.NewOrder(kernel.NewUUID(), publicID, cmd.StudentID(), cmd.Items(), hostelTag, now)
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Add(ctx, placed); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.Dispatch(order.NewCreatedEvent(placed))

	return placed, nil
}
