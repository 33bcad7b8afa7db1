package sse

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SwordForge_Go/internal/domain"
	"github.com/osse101/SwordForge_Go/internal/event"
)

func startHub(t *testing.T) *Hub {
	t.Helper()
	h := NewHub()
	h.Start()
	t.Cleanup(h.Stop)
	return h
}

func register(t *testing.T, h *Hub, types ...string) *Client {
	t.Helper()
	before := h.ClientCount()
	c, ok := h.Register(types)
	require.True(t, ok)
	require.Eventually(t, func() bool { return h.ClientCount() == before+1 }, time.Second, 5*time.Millisecond)
	return c
}

func receive(t *testing.T, c *Client) Event {
	t.Helper()
	select {
	case e := <-c.EventChannel:
		return e
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func TestHub_BroadcastRespectsFilters(t *testing.T) {
	h := startHub(t)
	all := register(t, h)
	soldOnly := register(t, h, domain.EventTypeItemSold, " ")

	h.Broadcast(domain.EventTypeItemCrafted, "", domain.ItemCraftedPayload{ItemID: "a"})
	h.Broadcast(domain.EventTypeItemSold, event.SourceCountdown, domain.ItemSoldPayload{ItemID: "a", Auto: true})

	assert.Equal(t, domain.EventTypeItemCrafted, receive(t, all).Type)
	assert.Equal(t, domain.EventTypeItemSold, receive(t, all).Type)

	got := receive(t, soldOnly)
	assert.Equal(t, domain.EventTypeItemSold, got.Type)
	assert.Equal(t, event.SourceCountdown, got.Source)
	assert.NotEmpty(t, got.ID)
}

func TestHub_UnregisterClosesChannel(t *testing.T) {
	h := startHub(t)
	c := register(t, h)

	h.Unregister(c.ID)

	assert.Eventually(t, func() bool { return h.ClientCount() == 0 }, time.Second, 5*time.Millisecond)
	_, open := <-c.EventChannel
	assert.False(t, open)
}

func TestHub_StopEndsClientsAndRejectsNewOnes(t *testing.T) {
	h := NewHub()
	h.Start()
	c := register(t, h)

	h.Stop()
	h.Stop()

	_, open := <-c.EventChannel
	assert.False(t, open)

	_, ok := h.Register(nil)
	assert.False(t, ok)
}

func TestFormatSSEMessage(t *testing.T) {
	msg, err := FormatSSEMessage(Event{ID: "1", Type: "item.sold", Timestamp: 10, Payload: map[string]int{"v": 2}})
	require.NoError(t, err)
	assert.Equal(t, "id: 1\nevent: item.sold\ndata: {\"id\":\"1\",\"type\":\"item.sold\",\"timestamp\":10,\"payload\":{\"v\":2}}\n\n", string(msg))

	keepalive, err := FormatSSEMessage(Event{Type: EventTypeKeepalive})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(keepalive), "event: keepalive\n"))
}

func TestSubscriber_ForwardsBusEvents(t *testing.T) {
	h := startHub(t)
	c := register(t, h)

	bus := event.NewMemoryBus()
	NewSubscriber(h).Subscribe(bus)

	require.NoError(t, bus.Publish(context.Background(), event.NewItemSoldEvent("item-1", 12.5, true)))

	got := receive(t, c)
	assert.Equal(t, domain.EventTypeItemSold, got.Type)
	assert.Equal(t, event.SourceCountdown, got.Source)
	assert.Equal(t, domain.ItemSoldPayload{ItemID: "item-1", Value: 12.5, Auto: true}, got.Payload)
}

func TestHandler_StreamsEvents(t *testing.T) {
	h := startHub(t)
	srv := httptest.NewServer(Handler(h))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"?types="+domain.EventTypeOptionRetired, nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))
	reader := bufio.NewReader(resp.Body)

	readEventName := func() string {
		for {
			line, err := reader.ReadString('\n')
			require.NoError(t, err)
			if name, ok := strings.CutPrefix(strings.TrimSpace(line), "event: "); ok {
				return name
			}
		}
	}

	require.Equal(t, EventTypeConnected, readEventName())
	require.Eventually(t, func() bool { return h.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	h.Broadcast(domain.EventTypeItemCrafted, "", nil)
	h.Broadcast(domain.EventTypeOptionRetired, "", domain.OptionRetiredPayload{Category: "mold", Option: "Normal", Level: 3})

	assert.Equal(t, domain.EventTypeOptionRetired, readEventName())
}
