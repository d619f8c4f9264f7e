package SSE

import (
	"fmt"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// Broadcaster pushes refresh events to every open patient dashboard. The
// create and attendance handlers broadcast after each successful write so
// pages re-fetch from the sheet.
var Broadcaster = NewRefreshBroadcaster()

// RefreshBroadcaster manages SSE connections and fans a message out to all
// connected clients.
type RefreshBroadcaster struct {
	clients map[chan string]bool
	mu      sync.Mutex
}

func NewRefreshBroadcaster() *RefreshBroadcaster {
	return &RefreshBroadcaster{
		clients: make(map[chan string]bool),
	}
}

// Register adds a new client to the broadcaster.
func (b *RefreshBroadcaster) Register(client chan string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.clients[client] = true
}

// Unregister removes a client and closes its channel.
func (b *RefreshBroadcaster) Unregister(client chan string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.clients[client] {
		delete(b.clients, client)
		close(client)
	}
}

// Broadcast sends a message to all registered clients. Clients that do not
// drain within a second are dropped.
func (b *RefreshBroadcaster) Broadcast(message string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for client := range b.clients {
		select {
		case client <- message:
		case <-time.After(1 * time.Second):
			delete(b.clients, client)
			close(client)
		}
	}
}

func RequestSSE(c *gin.Context) {
	// Set headers for SSE
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("Access-Control-Allow-Origin", "*")

	clientChan := make(chan string)
	Broadcaster.Register(clientChan)
	defer Broadcaster.Unregister(clientChan)

	fmt.Fprintf(c.Writer, "data: %s\n\n", "connected")
	c.Writer.Flush()

	for {
		select {
		case message, ok := <-clientChan:
			if !ok {
				return
			}
			fmt.Fprintf(c.Writer, "data: %s\n\n", message)
			c.Writer.Flush()
		case <-c.Request.Context().Done():
			// Client disconnected
			return
		}
	}
}
