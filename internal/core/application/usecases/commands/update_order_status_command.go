package commands

import (
	"errors"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/pkg/errs"
	"canteen/internal/pkg/guard"
)

var (
	ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
		"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
	)
)

// UpdateOrderStatusCommand represents a staff request to move an order
// along its workflow. The order reference may be either the internal
// identity or the 4-character public token; callers hold one or the
// other depending on where they picked it up. The target status is
// normalized from its wire name, accepting legacy aliases.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	actorRole    kernel.Role
	orderRef     string
	targetStatus order.Status

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a transition command.
// Validates the role, requires a non-empty order reference, and
// normalizes the target status name ("waiting" and "ready" map to
// their canonical statuses).
func NewUpdateOrderStatusCommand(
	actorRole kernel.Role,
	orderRef string,
	targetStatus string,
) (UpdateOrderStatusCommand, error) {
	cmd := UpdateOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActorRole(actorRole),
		cmd.setOrderRef(orderRef),
		cmd.setTargetStatus(targetStatus),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// ActorRole returns the verified role of the requester.
func (c UpdateOrderStatusCommand) ActorRole() kernel.Role {
	return c.actorRole
}

// OrderRef returns the order reference as supplied by the caller.
func (c UpdateOrderStatusCommand) OrderRef() string {
	return c.orderRef
}

// TargetStatus returns the normalized target status.
func (c UpdateOrderStatusCommand) TargetStatus() order.Status {
	return c.targetStatus
}

func (c *UpdateOrderStatusCommand) setActorRole(actorRole kernel.Role) error {
	if err := actorRole.Validate(); err != nil {
		return err
	}

	c.actorRole = actorRole
	return nil
}

func (c *UpdateOrderStatusCommand) setOrderRef(orderRef string) error {
	if orderRef == "" {
		return errs.NewValueIsRequiredError("orderRef")
	}

	c.orderRef = orderRef
	return nil
}

func (c *UpdateOrderStatusCommand) setTargetStatus(targetStatus string) error {
	status, err := order.StatusFromString(targetStatus)
	if err != nil {
		return err
	}

	c.targetStatus = status
	return nil
}
