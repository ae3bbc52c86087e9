package order

// Event names as sent over the real-time channel. Clients key their
// handlers on these, so they are part of the wire contract.
const (
	CreatedEventName       = "newOrder"
	StatusChangedEventName = "orderStatusUpdated"
	RejectedEventName      = "orderRejected"
)

// RejectionMessage is the fixed explanation attached to every rejection
// notice. Staff reject for exactly one reason in this workflow: a fake
// or unreadable payment screenshot.
const RejectionMessage = "Your order has been rejected due to submission of a fake or unclear payment screenshot. " +
	"If this was not intentional or was submitted by mistake, please visit the night canteen and present the " +
	"actual payment proof. Kindly ensure this is not repeated in the future."

// Event is a real-time notification produced by placing an order or
// applying a status transition. The dispatcher decides the audience:
// CreatedEvent is broadcast to every connected session, the other two
// are targeted at the owner.
type Event interface {
	// Name returns the wire name of the event.
	Name() string
	// Audience returns Broadcast or Targeted.
	Audience() Audience
}

// Audience describes who receives an event.
type Audience int

const (
	// Broadcast delivers to all connected sessions.
	Broadcast Audience = iota
	// Targeted delivers only to the owner's session, if connected.
	Targeted
)

// CreatedEvent announces a newly placed order to every connected
// session so staff dashboards can pick it up without polling.
type CreatedEvent struct {
	Order *Order
}

func (CreatedEvent) Name() string       { return CreatedEventName }
func (CreatedEvent) Audience() Audience { return Broadcast }

// StatusChangedEvent informs the owner that their order moved to a new
// status. Sent for every successful transition except rejection.
type StatusChangedEvent struct {
	PublicID  string
	Status    Status
	StudentID string
}

func (StatusChangedEvent) Name() string       { return StatusChangedEventName }
func (StatusChangedEvent) Audience() Audience { return Targeted }
func (e StatusChangedEvent) TargetID() string { return e.StudentID }

// RejectedEvent informs the owner that their order was rejected,
// carrying the fixed human-readable explanation.
type RejectedEvent struct {
	PublicID  string
	Message   string
	StudentID string
}

func (RejectedEvent) Name() string       { return RejectedEventName }
func (RejectedEvent) Audience() Audience { return Targeted }
func (e RejectedEvent) TargetID() string { return e.StudentID }

// OwnedEvent is implemented by events that can be routed to a single
// owner session.
type OwnedEvent interface {
	Event
	TargetID() string
}

// NewCreatedEvent builds the broadcast event for a freshly placed order.
func NewCreatedEvent(o *Order) CreatedEvent {
	return CreatedEvent{Order: o}
}

// eventForTransition builds the event a successful transition produces.
// Transitioning into Rejected yields a RejectedEvent with the fixed
// message; every other transition yields a StatusChangedEvent.
func eventForTransition(o *Order) Event {
	if o.status == Rejected {
		return RejectedEvent{
			PublicID:  o.publicID,
			Message:   RejectionMessage,
			StudentID: o.studentID.String(),
		}
	}

	return StatusChangedEvent{
		PublicID:  o.publicID,
		Status:    o.status,
		StudentID: o.studentID.String(),
	}
}
