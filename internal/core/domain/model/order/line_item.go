package order

import (
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/pkg/errs"
)

// maxLineItemQuantity bounds a single line so a typo in a client cannot
// queue an absurd amount of food.
const maxLineItemQuantity = 99

// LineItem is a value object pairing a menu item reference with a
// quantity. Line items are fixed at placement; quantities cannot be
// changed afterwards.
type LineItem struct {
	menuItemID kernel.UUID
	quantity   int
}

// NewLineItem creates a validated line item.
// The menu item reference must be a valid identifier and the quantity
// must be between 1 and 99.
func NewLineItem(menuItemID kernel.UUID, quantity int) (LineItem, error) {
	if err := menuItemID.Validate(); err != nil {
		return LineItem{}, err
	}

	if quantity < 1 || quantity > maxLineItemQuantity {
		return LineItem{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, maxLineItemQuantity)
	}

	return LineItem{
		menuItemID: menuItemID,
		quantity:   quantity,
	}, nil
}

// MenuItemID returns the referenced menu item's identifier.
func (li LineItem) MenuItemID() kernel.UUID {
	return li.menuItemID
}

// Quantity returns how many units of the item were ordered.
func (li LineItem) Quantity() int {
	return li.quantity
}
