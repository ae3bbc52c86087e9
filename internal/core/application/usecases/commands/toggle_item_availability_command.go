package commands

import (
	"errors"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/pkg/guard"
)

var (
	ErrToggleItemAvailabilityCommandIsNotConstructed = errors.New(
		"ToggleItemAvailabilityCommand must be created via NewToggleItemAvailabilityCommand constructor",
	)
)

// ToggleItemAvailabilityCommand represents a staff request to flip a
// menu item in or out of the orderable menu.
type ToggleItemAvailabilityCommand struct { //nolint:recvcheck //using for validation
	actorRole kernel.Role
	itemID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewToggleItemAvailabilityCommand creates a toggle command.
func NewToggleItemAvailabilityCommand(actorRole kernel.Role, itemID kernel.UUID) (ToggleItemAvailabilityCommand, error) {
	cmd := ToggleItemAvailabilityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActorRole(actorRole),
		cmd.setItemID(itemID),
	); err != nil {
		return ToggleItemAvailabilityCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ToggleItemAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrToggleItemAvailabilityCommandIsNotConstructed)
}

// ActorRole returns the verified role of the requester.
func (c ToggleItemAvailabilityCommand) ActorRole() kernel.Role {
	return c.actorRole
}

// ItemID returns the identifier of the item to toggle.
func (c ToggleItemAvailabilityCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c *ToggleItemAvailabilityCommand) setActorRole(actorRole kernel.Role) error {
	if err := actorRole.Validate(); err != nil {
		return err
	}

	c.actorRole = actorRole
	return nil
}

func (c *ToggleItemAvailabilityCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}
