package commands

import (
	"errors"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/pkg/errs"
	"canteen/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
)

// PlaceOrderCommand represents a student's request to place a food order.
// It carries the verified actor identity, the selected line items, and
// the client's first-year hostel claim. The claim is advisory: the
// handler revalidates it against the student's canonical record before
// computing the hostel tag.
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	actorRole        kernel.Role
	studentID        kernel.UUID
	items            []order.LineItem
	claimedFirstYear bool
	hostelChoice     string

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new order.
// Validates the role, the student identity, and that at least one line
// item is present. Line items are validated value objects already.
func NewPlaceOrderCommand(
	actorRole kernel.Role,
	studentID kernel.UUID,
	items []order.LineItem,
	claimedFirstYear bool,
	hostelChoice string,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		claimedFirstYear: claimedFirstYear,
		hostelChoice:     hostelChoice,
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActorRole(actorRole),
		cmd.setStudentID(studentID),
		cmd.setItems(items),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// ActorRole returns the verified role of the requester.
func (c PlaceOrderCommand) ActorRole() kernel.Role {
	return c.actorRole
}

// StudentID returns the identity of the placing student.
func (c PlaceOrderCommand) StudentID() kernel.UUID {
	return c.studentID
}

// Items returns the selected line items.
func (c PlaceOrderCommand) Items() []order.LineItem {
	return c.items
}

// ClaimedFirstYear returns the client's first-year claim.
func (c PlaceOrderCommand) ClaimedFirstYear() bool {
	return c.claimedFirstYear
}

// HostelChoice returns the claimed hostel, empty when none was given.
func (c PlaceOrderCommand) HostelChoice() string {
	return c.hostelChoice
}

func (c *PlaceOrderCommand) setActorRole(actorRole kernel.Role) error {
	if err := actorRole.Validate(); err != nil {
		return err
	}

	c.actorRole = actorRole
	return nil
}

func (c *PlaceOrderCommand) setStudentID(studentID kernel.UUID) error {
	if err := studentID.Validate(); err != nil {
		return err
	}

	c.studentID = studentID
	return nil
}

func (c *PlaceOrderCommand) setItems(items []order.LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	c.items = make([]order.LineItem, len(items))
	copy(c.items, items)
	return nil
}
