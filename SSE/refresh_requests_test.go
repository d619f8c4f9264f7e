package SSE

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroadcastReachesRegisteredClients(t *testing.T) {
	b := NewRefreshBroadcaster()
	client := make(chan string, 1)
	b.Register(client)

	b.Broadcast("refresh")

	select {
	case msg := <-client:
		assert.Equal(t, "refresh", msg)
	case <-time.After(2 * time.Second):
		t.Fatal("no message received")
	}
}

func TestUnregisterClosesChannel(t *testing.T) {
	b := NewRefreshBroadcaster()
	client := make(chan string, 1)
	b.Register(client)
	b.Unregister(client)

	_, ok := <-client
	require.False(t, ok, "channel should be closed")

	// Unregister twice must not panic.
	b.Unregister(client)

	// Broadcasting after unregister reaches nobody and does not block.
	b.Broadcast("refresh")
}

func TestBroadcastDropsStalledClients(t *testing.T) {
	b := NewRefreshBroadcaster()
	stalled := make(chan string) // unbuffered, nobody reading
	b.Register(stalled)

	done := make(chan struct{})
	go func() {
		b.Broadcast("refresh")
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("broadcast blocked on a stalled client")
	}

	_, ok := <-stalled
	assert.False(t, ok, "stalled client channel should be closed")
}
