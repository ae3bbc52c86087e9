package order

import (
	"errors"
	"time"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// RetentionWindow is how long an order is kept after placement.
// Orders older than this are purged by the expiry job; a purged order
// looked up mid-lifecycle is a normal NotFound, never a fault.
const RetentionWindow = 12 * time.Hour

// Order represents a food order in the canteen system. It is the
// aggregate root that manages the order lifecycle from placement
// through confirmation, preparation, and delivery.
//
// Order maintains these invariants:
//   - Identity, public token, and owner are set at placement and immutable
//   - At least one line item; quantities are fixed after placement
//   - Status changes only along the edges of the Status state machine
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	// id is the internal identity, also used by the persistence layer
	id kernel.UUID

	// publicID is the 4-character human-facing token
	publicID string

	// studentID identifies the owner who placed the order
	studentID kernel.UUID

	// items holds the ordered line items
	items []LineItem

	// status is the current state in the order lifecycle
	status Status

	// hostelTag is an optional delivery label computed at placement
	hostelTag string

	// createdAt starts the retention window
	createdAt time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a freshly placed Order in Pending status.
//
// Parameters:
//   - id: internal identity (must be a valid UUID)
//   - publicID: allocated 4-character token
//   - studentID: identity of the placing student
//   - items: at least one validated line item
//   - hostelTag: optional label, empty when not applicable
//   - createdAt: placement time, must not be zero
//
// All invariants are checked; on any violation no order is returned.
func NewOrder(
	id kernel.UUID,
	publicID string,
	studentID kernel.UUID,
	items []LineItem,
	hostelTag string,
	createdAt time.Time,
) (*Order, error) {
	order := &Order{
		status:        Pending,
		hostelTag:     hostelTag,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setPublicID(publicID),
		order.setStudentID(studentID),
		order.setItems(items),
		order.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence, including its
// current status. Used only by repository adapters.
func RestoreOrder(
	id kernel.UUID,
	publicID string,
	studentID kernel.UUID,
	items []LineItem,
	status Status,
	hostelTag string,
	createdAt time.Time,
) (*Order, error) {
	order := &Order{
		hostelTag:     hostelTag,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setPublicID(publicID),
		order.setStudentID(studentID),
		order.setItems(items),
		order.setStatus(status),
		order.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their internal identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's internal identity.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// PublicID returns the 4-character human-facing token.
func (o *Order) PublicID() string {
	return o.publicID
}

// StudentID returns the identity of the student who placed the order.
func (o *Order) StudentID() kernel.UUID {
	return o.studentID
}

// Items returns a copy of the order's line items.
func (o *Order) Items() []LineItem {
	items := make([]LineItem, len(o.items))
	copy(items, o.items)
	return items
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// HostelTag returns the optional delivery label, empty when not set.
func (o *Order) HostelTag() string {
	return o.hostelTag
}

// CreatedAt returns the placement time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// IsExpired reports whether the order has outlived its retention window.
func (o *Order) IsExpired(now time.Time) bool {
	return now.Sub(o.createdAt) > RetentionWindow
}

// TransitionTo moves the order to the target status if current->target
// is a legal workflow edge, and returns the notification event the
// transition produces: a RejectedEvent when moving into Rejected, a
// StatusChangedEvent otherwise.
//
// On an illegal edge the order is left unchanged and the error wraps
// ErrInvalidTransition.
func (o *Order) TransitionTo(target Status) (Event, error) {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return nil, err
	}

	o.status = newStatus
	return eventForTransition(o), nil
}

// setID validates and sets the internal identity.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setPublicID validates and sets the public token.
func (o *Order) setPublicID(publicID string) error {
	if err := ValidatePublicID(publicID); err != nil {
		return err
	}
	o.publicID = publicID
	return nil
}

// setStudentID validates and sets the owner identity.
func (o *Order) setStudentID(studentID kernel.UUID) error {
	if err := studentID.Validate(); err != nil {
		return err
	}
	o.studentID = studentID
	return nil
}

// setItems validates and sets the line items. At least one is required.
func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("lineItems")
	}

	o.items = make([]LineItem, len(items))
	copy(o.items, items)
	return nil
}

// setStatus validates and sets the status during restoration.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// setCreatedAt validates and sets the placement time.
func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	return nil
}
