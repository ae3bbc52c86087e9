package commands

import (
	"errors"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/pkg/errs"
	"canteen/internal/pkg/guard"
)

var (
	ErrUpdateMenuItemCommandIsNotConstructed = errors.New(
		"UpdateMenuItemCommand must be created via NewUpdateMenuItemCommand constructor",
	)
)

// UpdateMenuItemCommand represents a staff request to edit an existing
// dish: name, price, and category are replaced as a whole.
type UpdateMenuItemCommand struct { //nolint:recvcheck //using for validation
	actorRole kernel.Role
	itemID    kernel.UUID
	name      string
	price     int
	category  string

	guard guard.ConstructorGuard
}

// NewUpdateMenuItemCommand creates a command to edit a menu item.
// Name and category are required; price is in paise and must be positive.
func NewUpdateMenuItemCommand(
	actorRole kernel.Role, itemID kernel.UUID, name string, price int, category string,
) (UpdateMenuItemCommand, error) {
	cmd := UpdateMenuItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActorRole(actorRole),
		cmd.setItemID(itemID),
		cmd.setName(name),
		cmd.setPrice(price),
		cmd.setCategory(category),
	); err != nil {
		return UpdateMenuItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateMenuItemCommandIsNotConstructed)
}

// ActorRole returns the verified role of the requester.
func (c UpdateMenuItemCommand) ActorRole() kernel.Role {
	return c.actorRole
}

// ItemID returns the identifier of the item to edit.
func (c UpdateMenuItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Name returns the new dish name.
func (c UpdateMenuItemCommand) Name() string {
	return c.name
}

// Price returns the new price in paise.
func (c UpdateMenuItemCommand) Price() int {
	return c.price
}

// Category returns the new menu section.
func (c UpdateMenuItemCommand) Category() string {
	return c.category
}

func (c *UpdateMenuItemCommand) setActorRole(actorRole kernel.Role) error {
	if err := actorRole.Validate(); err != nil {
		return err
	}

	c.actorRole = actorRole
	return nil
}

func (c *UpdateMenuItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *UpdateMenuItemCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *UpdateMenuItemCommand) setPrice(price int) error {
	if price <= 0 {
		return errs.NewValueIsInvalidError("price")
	}

	c.price = price
	return nil
}

func (c *UpdateMenuItemCommand) setCategory(category string) error {
	if category == "" {
		return errs.NewValueIsRequiredError("category")
	}

	c.category = category
	return nil
}
