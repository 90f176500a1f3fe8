package ws

import (
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishEncodesEvent(t *testing.T) {
	hub := NewHub()
	defer hub.Stop()

	hub.Publish(Event{
		Type:      EventProductUpdate,
		Action:    ActionProductDeleted,
		ProductID: "7",
		Message:   "Product '7' deleted",
	})

	select {
	case msg := <-hub.Broadcast:
		var got map[string]interface{}
		require.NoError(t, jsoniter.Unmarshal(msg, &got))
		assert.Equal(t, "product_update", got["type"])
		assert.Equal(t, "product_deleted", got["action"])
		assert.Equal(t, "7", got["product_id"])
		assert.NotContains(t, got, "product")
	case <-time.After(time.Second):
		t.Fatal("event was not broadcast")
	}
}

func TestRunStopsOnStop(t *testing.T) {
	hub := NewHub()
	done := make(chan struct{})
	go func() {
		hub.Run()
		close(done)
	}()

	hub.Publish(Event{Type: EventProductUpdate, Action: ActionProductCreated, ProductID: "1"})
	hub.Stop()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after Stop")
	}
	assert.Equal(t, 0, hub.ClientCount())
}

func TestPublishKeepsOrder(t *testing.T) {
	hub := NewHub()
	defer hub.Stop()

	actions := []string{ActionProductCreated, ActionProductUpdated, ActionProductDeleted}
	for _, action := range actions {
		hub.Publish(Event{Type: EventProductUpdate, Action: action, ProductID: "1"})
	}

	for _, want := range actions {
		msg := <-hub.Broadcast
		var got Event
		require.NoError(t, jsoniter.Unmarshal(msg, &got))
		assert.Equal(t, want, got.Action)
	}
}

func TestPublishNeverBlocks(t *testing.T) {
	hub := NewHub()
	defer hub.Stop()

	done := make(chan struct{})
	go func() {
		for i := 0; i < broadcastBuffer+10; i++ {
			hub.Publish(Event{Type: EventProductUpdate, Action: ActionProductUpdated, ProductID: "1"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked on a full queue")
	}
	assert.Len(t, hub.Broadcast, broadcastBuffer)
}

func TestStopTwice(t *testing.T) {
	hub := NewHub()

	assert.NotPanics(t, func() {
		hub.Stop()
		hub.Stop()
	})
	hub.Publish(Event{Type: EventProductUpdate, Action: ActionProductCreated})
	assert.Len(t, hub.Broadcast, 0)
}
