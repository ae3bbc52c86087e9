package queries

import (
	"errors"
	"time"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/pkg/guard"
)

var (
	ErrGetAllOrdersQueryIsNotConstructed = errors.New(
		"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
	)
)

// GetAllOrdersQuery retrieves every retained order for the staff
// dashboard, newest first. Staff only.
//
// Example:
//
//	query, err := NewGetAllOrdersQuery(kernel.RoleStaff)
//	if err != nil {
//	    return err
//	}
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get orders: %w", err)
//	}
//
//	fmt.Printf("%d orders on the board\n", len(orders))
type GetAllOrdersQuery struct {
	actorRole kernel.Role

	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates a query for the full order board.
func NewGetAllOrdersQuery(actorRole kernel.Role) (GetAllOrdersQuery, error) {
	if err := actorRole.Validate(); err != nil {
		return GetAllOrdersQuery{}, err
	}

	return GetAllOrdersQuery{
		actorRole: actorRole,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// ActorRole returns the verified role of the requester.
func (q GetAllOrdersQuery) ActorRole() kernel.Role {
	return q.actorRole
}

// OrderResponse represents one order as shown on dashboards and
// order history views.
type OrderResponse struct {
	ID        kernel.UUID
	PublicID  string
	StudentID kernel.UUID
	Status    string
	HostelTag string
	CreatedAt time.Time
	Items     []OrderItemResponse
}

// OrderItemResponse represents one line of an order.
type OrderItemResponse struct {
	MenuItemID kernel.UUID
	Quantity   int
}
