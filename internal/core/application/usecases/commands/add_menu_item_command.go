package commands

import (
	"errors"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/pkg/errs"
	"canteen/internal/pkg/guard"
)

var (
	ErrAddMenuItemCommandIsNotConstructed = errors.New(
		"AddMenuItemCommand must be created via NewAddMenuItemCommand constructor",
	)
)

// AddMenuItemCommand represents a staff request to put a new dish on
// the menu.
type AddMenuItemCommand struct { //nolint:recvcheck //using for validation
	actorRole kernel.Role
	name      string
	price     int
	category  string

	guard guard.ConstructorGuard
}

// NewAddMenuItemCommand creates a command to add a menu item.
// Name and category are required; price is in paise and must be positive.
func NewAddMenuItemCommand(actorRole kernel.Role, name string, price int, category string) (AddMenuItemCommand, error) {
	cmd := AddMenuItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActorRole(actorRole),
		cmd.setName(name),
		cmd.setPrice(price),
		cmd.setCategory(category),
	); err != nil {
		return AddMenuItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrAddMenuItemCommandIsNotConstructed)
}

// ActorRole returns the verified role of the requester.
func (c AddMenuItemCommand) ActorRole() kernel.Role {
	return c.actorRole
}

// Name returns the dish name.
func (c AddMenuItemCommand) Name() string {
	return c.name
}

// Price returns the price in paise.
func (c AddMenuItemCommand) Price() int {
	return c.price
}

// Category returns the menu section.
func (c AddMenuItemCommand) Category() string {
	return c.category
}

func (c *AddMenuItemCommand) setActorRole(actorRole kernel.Role) error {
	if err := actorRole.Validate(); err != nil {
		return err
	}

	c.actorRole = actorRole
	return nil
}

func (c *AddMenuItemCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *AddMenuItemCommand) setPrice(price int) error {
	if price <= 0 {
		return errs.NewValueIsInvalidError("price")
	}

	c.price = price
	return nil
}

func (c *AddMenuItemCommand) setCategory(category string) error {
	if category == "" {
		return errs.NewValueIsRequiredError("category")
	}

	c.category = category
	return nil
}
