package api

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/voicedesk/booking-api/internal/api/dto"
	"github.com/voicedesk/booking-api/internal/service/pubsub"
	"github.com/voicedesk/booking-api/pkg/logger"
)

func newTestWebSocketHandler() *WebSocketHandler {
	nop := logger.NewNop()
	return NewWebSocketHandler(nop, pubsub.NewRedisPubSub(nil, nop))
}

// slowClient simulates a dashboard connection whose write pump never drains.
func slowClient(tenantID string) *Client {
	return &Client{
		tenantID: tenantID,
		send:     make(chan []byte),
	}
}

// Fan-out callbacks for different tenants arrive on independent Redis
// subscription goroutines; dropping slow consumers from both at once must
// not corrupt the client maps.
func TestWebSocketHandlerConcurrentFanOut(t *testing.T) {
	h := newTestWebSocketHandler()

	tenants := []string{"tenant-a", "tenant-b"}
	const clientsPerTenant = 8

	for _, tenantID := range tenants {
		for i := 0; i < clientsPerTenant; i++ {
			client := slowClient(tenantID)
			h.clients[client] = true
			h.tenantClients[tenantID]++
		}
	}

	var wg sync.WaitGroup
	for _, tenantID := range tenants {
		wg.Add(1)
		go func(tenantID string) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				h.handlePubSubMessage(&dto.AppointmentResponse{TenantID: tenantID})
			}
		}(tenantID)
	}
	wg.Wait()

	// Every client was a slow consumer, so all of them get dropped and
	// both tenant subscriptions get torn down.
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	assert.Empty(t, h.clients)
	assert.Empty(t, h.tenantClients)
}

// A healthy client with buffer headroom receives the message and stays
// registered while a slow sibling on the same tenant is dropped.
func TestWebSocketHandlerDropsOnlySlowConsumers(t *testing.T) {
	h := newTestWebSocketHandler()

	healthy := &Client{
		tenantID: "tenant-a",
		send:     make(chan []byte, websocketSendChannelBufferSize),
	}
	stalled := slowClient("tenant-a")
	h.clients[healthy] = true
	h.clients[stalled] = true
	h.tenantClients["tenant-a"] = 2

	h.handlePubSubMessage(&dto.AppointmentResponse{TenantID: "tenant-a"})

	assert.True(t, h.clients[healthy])
	assert.NotContains(t, h.clients, stalled)
	assert.Equal(t, 1, h.tenantClients["tenant-a"])
	assert.Len(t, healthy.send, 1)
}
