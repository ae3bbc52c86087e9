package ws

import (
	"io"
	"log/slog"
	"testing"
	"time"
)

func newTestHub() *Hub {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewHub(NewConnectionRegistry(), logger)
}

func TestHub_UnregisterAfterStopDoesNotBlock(t *testing.T) {
	hub := newTestHub()
	hub.Start()
	hub.Stop()

	// Sessions closing after shutdown outnumber the channel buffer;
	// each send must still return promptly.
	done := make(chan struct{})
	go func() {
		for i := 0; i < cap(hub.unregister)+8; i++ {
			hub.enqueueUnregister(&Client{send: make(chan []byte, 1)})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("unregister send blocked after hub shutdown")
	}
}

func TestHub_BroadcastAfterStopDoesNotBlock(t *testing.T) {
	hub := newTestHub()
	hub.Start()
	hub.Stop()

	done := make(chan struct{})
	go func() {
		for i := 0; i < cap(hub.broadcast)+8; i++ {
			hub.Broadcast([]byte(`{"event":"menuUpdated"}`))
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("broadcast blocked after hub shutdown")
	}
}

func TestHub_RegisterAndUnregisterUpdateClientSet(t *testing.T) {
	hub := newTestHub()
	hub.Start()

	client := &Client{send: make(chan []byte, 1)}
	hub.register <- client

	// Keep broadcasting until the loop has picked up the registration
	// and fanned a frame out to the session.
	deadline := time.After(time.Second)
	received := false
	for !received {
		hub.Broadcast([]byte(`{"event":"menuUpdated"}`))
		select {
		case msg := <-client.send:
			if len(msg) == 0 {
				t.Fatal("empty broadcast frame")
			}
			received = true
		case <-deadline:
			t.Fatal("registered session did not receive broadcast")
		case <-time.After(10 * time.Millisecond):
		}
	}

	hub.enqueueUnregister(client)

	// The loop closes the send channel once it processes the
	// unregister; frames queued before that may still drain first.
	closed := false
	for !closed {
		select {
		case _, open := <-client.send:
			closed = !open
		case <-time.After(time.Second):
			t.Fatal("unregister was not processed")
		}
	}

	hub.Stop()
}
