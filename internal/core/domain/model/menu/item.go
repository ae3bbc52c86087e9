package menu

import (
	"errors"
	"time"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/pkg/errs"
)

// UpdatedEventName is broadcast whenever the menu changes so connected
// clients refetch it. The payload is empty; the menu itself is fetched
// over the regular read API.
const UpdatedEventName = "menuUpdated"

// AvailabilityChangedEventName is broadcast when a single item is
// toggled, carrying the item id and its new availability.
const AvailabilityChangedEventName = "itemAvailabilityChanged"

// RemovedEventName is broadcast when an item is taken off the menu,
// carrying the removed item's id.
const RemovedEventName = "itemRemoved"

// ErrItemIsNotConstructed is returned when an Item instance was not
// created through NewItem or RestoreItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem")

// Item represents a dish on the canteen menu. Staff can rename,
// reprice, and recategorize items, toggle them in and out of
// availability, or remove them outright. Order lines reference items
// by id only, so history survives a removal.
type Item struct {
	id        kernel.UUID
	name      string
	price     int
	category  string
	available bool
	createdAt time.Time

	isConstructed bool
}

// NewItem creates a new, immediately available menu item.
// Price is in paise and must be positive; name and category are required.
func NewItem(id kernel.UUID, name string, price int, category string, createdAt time.Time) (*Item, error) {
	item := &Item{
		available:     true,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setName(name),
		item.setPrice(price),
		item.setCategory(category),
		item.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem reconstructs an Item from persistence, including its
// availability. Used only by repository adapters.
func RestoreItem(id kernel.UUID, name string, price int, category string, available bool, createdAt time.Time) (*Item, error) {
	item, err := NewItem(id, name, price, category, createdAt)
	if err != nil {
		return nil, err
	}

	item.available = available
	return item, nil
}

// Validate ensures the Item instance was properly constructed.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}

	return nil
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// Name returns the dish name shown on the menu.
func (i *Item) Name() string {
	return i.name
}

// Price returns the price in paise.
func (i *Item) Price() int {
	return i.price
}

// Category returns the menu section the item belongs to.
func (i *Item) Category() string {
	return i.category
}

// Available reports whether the item can currently be ordered.
func (i *Item) Available() bool {
	return i.available
}

// CreatedAt returns when the item was added to the menu.
func (i *Item) CreatedAt() time.Time {
	return i.createdAt
}

// ToggleAvailability flips the item in or out of the orderable menu
// and returns the new availability.
func (i *Item) ToggleAvailability() bool {
	i.available = !i.available
	return i.available
}

// Reprice changes the item's price. The new price must be positive.
func (i *Item) Reprice(price int) error {
	return i.setPrice(price)
}

// Rename changes the dish name. The new name must not be empty.
func (i *Item) Rename(name string) error {
	return i.setName(name)
}

// Recategorize moves the item to another menu section.
func (i *Item) Recategorize(category string) error {
	return i.setCategory(category)
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	i.name = name
	return nil
}

func (i *Item) setPrice(price int) error {
	if price <= 0 {
		return errs.NewValueIsInvalidError("price")
	}
	i.price = price
	return nil
}

func (i *Item) setCategory(category string) error {
	if category == "" {
		return errs.NewValueIsRequiredError("category")
	}
	i.category = category
	return nil
}

func (i *Item) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	i.createdAt = createdAt
	return nil
}
