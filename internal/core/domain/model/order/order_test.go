package order_test

import (
	"testing"
	"time"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeLineItems(t *testing.T) []order.LineItem {
	t.Helper()

	item, err := order.NewLineItem(kernel.NewUUID(), 2)
	require.NoError(t, err)
	return []order.LineItem{item}
}

func makeOrder(t *testing.T) *order.Order {
	t.Helper()

	o, err := order.NewOrder(
		kernel.NewUUID(),
		"7QX2",
		kernel.NewUUID(),
		makeLineItems(t),
		"",
		time.Now(),
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should create pending order with all fields", func(t *testing.T) {
		id := kernel.NewUUID()
		studentID := kernel.NewUUID()
		items := makeLineItems(t)
		placedAt := time.Now()

		o, err := order.NewOrder(id, "AB12", studentID, items, "First Year – Boys Hostel", placedAt)

		require.NoError(t, err)
		assert.True(t, o.ID().IsEqual(id))
		assert.Equal(t, "AB12", o.PublicID())
		assert.True(t, o.StudentID().IsEqual(studentID))
		assert.Equal(t, items, o.Items())
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, "First Year – Boys Hostel", o.HostelTag())
		assert.Equal(t, placedAt, o.CreatedAt())
		require.NoError(t, o.Validate())
	})

	t.Run("should reject empty line items", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), "AB12", kernel.NewUUID(), nil, "", time.Now())

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject invalid public token", func(t *testing.T) {
		for _, token := range []string{"", "AB1", "AB123", "ab12", "A B1"} {
			_, err := order.NewOrder(kernel.NewUUID(), token, kernel.NewUUID(), makeLineItems(t), "", time.Now())
			require.Error(t, err, "expected token %q to be rejected", token)
		}
	})

	t.Run("should reject zero identities", func(t *testing.T) {
		var zero kernel.UUID

		_, err := order.NewOrder(zero, "AB12", kernel.NewUUID(), makeLineItems(t), "", time.Now())
		require.Error(t, err)

		_, err = order.NewOrder(kernel.NewUUID(), "AB12", zero, makeLineItems(t), "", time.Now())
		require.Error(t, err)
	})

	t.Run("should reject zero placement time", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), "AB12", kernel.NewUUID(), makeLineItems(t), "", time.Time{})

		require.Error(t, err)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore order in any valid status", func(t *testing.T) {
		o, err := order.RestoreOrder(
			kernel.NewUUID(),
			"7QX2",
			kernel.NewUUID(),
			makeLineItems(t),
			order.Prepared,
			"",
			time.Now().Add(-time.Hour),
		)

		require.NoError(t, err)
		assert.Equal(t, order.Prepared, o.Status())
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(),
			"7QX2",
			kernel.NewUUID(),
			makeLineItems(t),
			order.Unknown,
			"",
			time.Now(),
		)

		require.Error(t, err)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("constructed order is valid", func(t *testing.T) {
		require.NoError(t, makeOrder(t).Validate())
	})

	t.Run("zero value order is invalid", func(t *testing.T) {
		var o order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})

	t.Run("nil order is invalid", func(t *testing.T) {
		var o *order.Order

		require.Error(t, o.Validate())
	})
}

func TestOrder_Items_ReturnsCopy(t *testing.T) {
	o := makeOrder(t)

	items := o.Items()
	items[0] = order.LineItem{}

	assert.NotEqual(t, items[0], o.Items()[0])
}

func TestOrder_IsExpired(t *testing.T) {
	o, err := order.RestoreOrder(
		kernel.NewUUID(),
		"7QX2",
		kernel.NewUUID(),
		makeLineItems(t),
		order.Pending,
		"",
		time.Now().Add(-13*time.Hour),
	)
	require.NoError(t, err)

	assert.True(t, o.IsExpired(time.Now()))
	assert.False(t, makeOrder(t).IsExpired(time.Now()))
}

func TestOrder_TransitionTo(t *testing.T) {
	t.Run("confirm produces status changed event", func(t *testing.T) {
		o := makeOrder(t)

		event, err := o.TransitionTo(order.Confirmed)

		require.NoError(t, err)
		assert.Equal(t, order.Confirmed, o.Status())

		changed, ok := event.(order.StatusChangedEvent)
		require.True(t, ok)
		assert.Equal(t, o.PublicID(), changed.PublicID)
		assert.Equal(t, order.Confirmed, changed.Status)
		assert.Equal(t, o.StudentID().String(), changed.StudentID)
		assert.Equal(t, order.StatusChangedEventName, event.Name())
		assert.Equal(t, order.Targeted, event.Audience())
	})

	t.Run("reject produces rejected event with fixed message", func(t *testing.T) {
		o := makeOrder(t)

		event, err := o.TransitionTo(order.Rejected)

		require.NoError(t, err)
		assert.Equal(t, order.Rejected, o.Status())

		rejected, ok := event.(order.RejectedEvent)
		require.True(t, ok)
		assert.Equal(t, o.PublicID(), rejected.PublicID)
		assert.Equal(t, order.RejectionMessage, rejected.Message)
		assert.Equal(t, order.RejectedEventName, event.Name())
		assert.Equal(t, order.Targeted, event.Audience())
	})

	t.Run("illegal edge leaves order unchanged", func(t *testing.T) {
		o := makeOrder(t)

		event, err := o.TransitionTo(order.Prepared)

		require.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Nil(t, event)
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("full lifecycle path", func(t *testing.T) {
		o := makeOrder(t)

		for _, target := range []order.Status{order.Confirmed, order.Prepared, order.Delivered} {
			event, err := o.TransitionTo(target)
			require.NoError(t, err)
			require.NotNil(t, event)
		}

		assert.Equal(t, order.Delivered, o.Status())
		assert.True(t, o.Status().IsTerminal())

		_, err := o.TransitionTo(order.Rejected)
		require.ErrorIs(t, err, order.ErrInvalidTransition)
	})
}

func TestNewCreatedEvent(t *testing.T) {
	o := makeOrder(t)

	event := order.NewCreatedEvent(o)

	assert.Equal(t, order.CreatedEventName, event.Name())
	assert.Equal(t, order.Broadcast, event.Audience())
	assert.True(t, event.Order.IsEqual(o))
}

func TestNewLineItem(t *testing.T) {
	t.Run("should create valid line item", func(t *testing.T) {
		itemID := kernel.NewUUID()

		li, err := order.NewLineItem(itemID, 3)

		require.NoError(t, err)
		assert.True(t, li.MenuItemID().IsEqual(itemID))
		assert.Equal(t, 3, li.Quantity())
	})

	t.Run("should reject quantity below 1", func(t *testing.T) {
		for _, qty := range []int{0, -1, -99} {
			_, err := order.NewLineItem(kernel.NewUUID(), qty)
			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		}
	})

	t.Run("should reject quantity above 99", func(t *testing.T) {
		_, err := order.NewLineItem(kernel.NewUUID(), 100)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject zero menu item reference", func(t *testing.T) {
		var zero kernel.UUID

		_, err := order.NewLineItem(zero, 1)

		require.Error(t, err)
	})
}

func TestValidatePublicID(t *testing.T) {
	t.Run("accepts tokens from the alphabet", func(t *testing.T) {
		for _, token := range []string{"AAAA", "Z9Z9", "0000", "7QX2"} {
			require.NoError(t, order.ValidatePublicID(token))
		}
	})

	t.Run("rejects malformed tokens", func(t *testing.T) {
		for _, token := range []string{"", "ABC", "ABCDE", "ab12", "A-12", "A 12"} {
			require.Error(t, order.ValidatePublicID(token), "expected %q to be rejected", token)
		}
	})
}
