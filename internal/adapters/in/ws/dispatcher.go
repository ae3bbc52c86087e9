package ws

import (
	"encoding/json"
	"log/slog"
	"time"

	"canteen/internal/core/domain/model/order"
)

// broadcaster fans a marshaled envelope out to every connected session.
type broadcaster interface {
	Broadcast(msg []byte)
}

// NotificationDispatcher routes domain events onto the WebSocket
// transport. Broadcast events go to every session through the hub;
// targeted events go to the owner's session through the registry.
// Delivery is fire-and-forget: a disconnected or slow owner loses the
// message, and no caller ever fails because of it.
type NotificationDispatcher struct {
	hub      broadcaster
	registry *ConnectionRegistry
	logger   *slog.Logger
}

// NewNotificationDispatcher creates a dispatcher over the given hub
// and registry.
func NewNotificationDispatcher(hub broadcaster, registry *ConnectionRegistry, logger *slog.Logger) *NotificationDispatcher {
	return &NotificationDispatcher{
		hub:      hub,
		registry: registry,
		logger:   logger.With("component", "ws-dispatcher"),
	}
}

type orderPayload struct {
	ID        string             `json:"id"`
	OrderID   string             `json:"orderId"`
	StudentID string             `json:"studentId"`
	Status    string             `json:"status"`
	HostelTag string             `json:"hostelTag,omitempty"`
	CreatedAt time.Time          `json:"createdAt"`
	Items     []orderItemPayload `json:"items"`
}

type orderItemPayload struct {
	MenuItemID string `json:"menuItemId"`
	Quantity   int    `json:"quantity"`
}

type statusChangedPayload struct {
	OrderID string `json:"orderId"`
	Status  string `json:"status"`
}

type rejectedPayload struct {
	OrderID string `json:"orderId"`
	Message string `json:"message"`
}

// Dispatch routes one domain event to its audience.
func (d *NotificationDispatcher) Dispatch(event order.Event) {
	payload, err := payloadFor(event)
	if err != nil {
		d.logger.Error("failed to build event payload", "event", event.Name(), "error", err)
		return
	}

	msg, err := marshalEnvelope(event.Name(), payload)
	if err != nil {
		d.logger.Error("failed to marshal event", "event", event.Name(), "error", err)
		return
	}

	if event.Audience() == order.Broadcast {
		d.hub.Broadcast(msg)
		return
	}

	owned, ok := event.(order.OwnedEvent)
	if !ok {
		d.logger.Error("targeted event without an owner", "event", event.Name())
		return
	}

	client := d.registry.Lookup(owned.TargetID())
	if client == nil {
		d.logger.Debug("owner not connected, dropping event", "event", event.Name())
		return
	}

	if !client.trySend(msg) {
		d.logger.Warn("owner session backed up, dropping event", "event", event.Name())
	}
}

// Broadcast sends a named event with an arbitrary payload to every
// connected session. Used for menu announcements that do not originate
// from the order domain.
func (d *NotificationDispatcher) Broadcast(event string, payload any) {
	msg, err := marshalEnvelope(event, payload)
	if err != nil {
		d.logger.Error("failed to marshal broadcast", "event", event, "error", err)
		return
	}

	d.hub.Broadcast(msg)
}

func payloadFor(event order.Event) (any, error) {
	switch e := event.(type) {
	case order.CreatedEvent:
		items := make([]orderItemPayload, 0, len(e.Order.Items()))
		for _, item := range e.Order.Items() {
			items = append(items, orderItemPayload{
				MenuItemID: item.MenuItemID().String(),
				Quantity:   item.Quantity(),
			})
		}

		return orderPayload{
			ID:        e.Order.ID().String(),
			OrderID:   e.Order.PublicID(),
			StudentID: e.Order.StudentID().String(),
			Status:    e.Order.Status().String(),
			HostelTag: e.Order.HostelTag(),
			CreatedAt: e.Order.CreatedAt(),
			Items:     items,
		}, nil
	case order.StatusChangedEvent:
		return statusChangedPayload{OrderID: e.PublicID, Status: e.Status.String()}, nil
	case order.RejectedEvent:
		return rejectedPayload{OrderID: e.PublicID, Message: e.Message}, nil
	default:
		return nil, errUnknownEvent{name: event.Name()}
	}
}

func marshalEnvelope(event string, payload any) ([]byte, error) {
	var data json.RawMessage
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		data = raw
	}

	return json.Marshal(Envelope{Event: event, Data: data})
}

type errUnknownEvent struct {
	name string
}

func (e errUnknownEvent) Error() string {
	return "no payload mapping for event: " + e.name
}
