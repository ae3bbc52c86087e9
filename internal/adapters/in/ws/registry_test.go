package ws

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newFakeClient() *Client {
	return &Client{send: make(chan []byte, 4)}
}

func TestConnectionRegistry_BindAndLookup(t *testing.T) {
	registry := NewConnectionRegistry()
	client := newFakeClient()

	registry.Bind("student-1", client)

	assert.Same(t, client, registry.Lookup("student-1"))
	assert.Nil(t, registry.Lookup("student-2"))
	assert.Equal(t, 1, registry.Len())
}

func TestConnectionRegistry_BindIgnoresEmptyIdentity(t *testing.T) {
	registry := NewConnectionRegistry()

	registry.Bind("", newFakeClient())
	registry.Bind("student-1", nil)

	assert.Equal(t, 0, registry.Len())
}

func TestConnectionRegistry_RebindOverwritesPreviousSession(t *testing.T) {
	registry := NewConnectionRegistry()
	oldSession := newFakeClient()
	newSession := newFakeClient()

	registry.Bind("student-1", oldSession)
	registry.Bind("student-1", newSession)

	assert.Same(t, newSession, registry.Lookup("student-1"))
	assert.Equal(t, 1, registry.Len())
}

func TestConnectionRegistry_UnbindClient(t *testing.T) {
	registry := NewConnectionRegistry()
	client := newFakeClient()
	registry.Bind("student-1", client)

	registry.UnbindClient(client)

	assert.Nil(t, registry.Lookup("student-1"))
	assert.Equal(t, 0, registry.Len())
}

func TestConnectionRegistry_StaleDisconnectKeepsNewBinding(t *testing.T) {
	registry := NewConnectionRegistry()
	oldSession := newFakeClient()
	newSession := newFakeClient()

	registry.Bind("student-1", oldSession)
	registry.Bind("student-1", newSession)

	// The old tab's disconnect arrives after the user reconnected.
	registry.UnbindClient(oldSession)

	assert.Same(t, newSession, registry.Lookup("student-1"))
}

func TestConnectionRegistry_UnbindUnknownClientIsNoop(t *testing.T) {
	registry := NewConnectionRegistry()
	registry.Bind("student-1", newFakeClient())

	registry.UnbindClient(newFakeClient())

	assert.Equal(t, 1, registry.Len())
}
