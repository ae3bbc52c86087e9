package commands

import (
	"errors"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/pkg/guard"
)

var (
	ErrRemoveMenuItemCommandIsNotConstructed = errors.New(
		"RemoveMenuItemCommand must be created via NewRemoveMenuItemCommand constructor",
	)
)

// RemoveMenuItemCommand represents a staff request to take a dish off
// the menu entirely.
type RemoveMenuItemCommand struct { //nolint:recvcheck //using for validation
	actorRole kernel.Role
	itemID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveMenuItemCommand creates a removal command.
func NewRemoveMenuItemCommand(actorRole kernel.Role, itemID kernel.UUID) (RemoveMenuItemCommand, error) {
	cmd := RemoveMenuItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActorRole(actorRole),
		cmd.setItemID(itemID),
	); err != nil {
		return RemoveMenuItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveMenuItemCommandIsNotConstructed)
}

// ActorRole returns the verified role of the requester.
func (c RemoveMenuItemCommand) ActorRole() kernel.Role {
	return c.actorRole
}

// ItemID returns the identifier of the item to remove.
func (c RemoveMenuItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c *RemoveMenuItemCommand) setActorRole(actorRole kernel.Role) error {
	if err := actorRole.Validate(); err != nil {
		return err
	}

	c.actorRole = actorRole
	return nil
}

func (c *RemoveMenuItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}
