package ws

import (
	"sync"

	"github.com/gofiber/contrib/websocket"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
)

const (
	EventProductUpdate = "product_update"

	ActionProductCreated = "product_created"
	ActionProductUpdated = "product_updated"
	ActionProductDeleted = "product_deleted"

	broadcastBuffer = 256
)

// Event is the message pushed to every connected client after a catalog write.
type Event struct {
	Type      string      `json:"type"`
	Action    string      `json:"action"`
	ProductID string      `json:"product_id"`
	Product   interface{} `json:"product,omitempty"`
	Message   string      `json:"message"`
}

type Hub struct {
	Clients    map[*websocket.Conn]bool
	Register   chan *websocket.Conn
	Unregister chan *websocket.Conn
	Broadcast  chan []byte
	quit       chan struct{}
	stopOnce   sync.Once
	mutex      sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		Clients:    make(map[*websocket.Conn]bool),
		Register:   make(chan *websocket.Conn),
		Unregister: make(chan *websocket.Conn),
		Broadcast:  make(chan []byte, broadcastBuffer),
		quit:       make(chan struct{}),
	}
}

// Publish encodes evt and queues it for the Run loop. Events keep publish
// order; when the queue is full the event is dropped rather than blocking
// the caller.
func (h *Hub) Publish(evt Event) {
	msg, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(evt)
	if err != nil {
		zap.S().Errorw("failed to encode ws event", "action", evt.Action, "error", err)
		return
	}
	select {
	case <-h.quit:
		return
	default:
	}
	select {
	case h.Broadcast <- msg:
	default:
		zap.S().Warnw("ws broadcast queue full, dropping event", "action", evt.Action, "product_id", evt.ProductID)
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return len(h.Clients)
}

// Stop ends Run and closes every client. Calling it again is a no-op.
func (h *Hub) Stop() {
	h.stopOnce.Do(func() { close(h.quit) })
}

func (h *Hub) Run() {
	for {
		select {
		case conn := <-h.Register:
			h.mutex.Lock()
			h.Clients[conn] = true
			h.mutex.Unlock()
			zap.S().Debug("New WS client connected")

		case conn := <-h.Unregister:
			h.mutex.Lock()
			if _, ok := h.Clients[conn]; ok {
				delete(h.Clients, conn)
				conn.Close()
			}
			h.mutex.Unlock()

		case message := <-h.Broadcast:
			h.mutex.Lock()
			for conn := range h.Clients {
				if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
					conn.Close()
					delete(h.Clients, conn)
				}
			}
			h.mutex.Unlock()

		case <-h.quit:
			h.mutex.Lock()
			for conn := range h.Clients {
				conn.Close()
				delete(h.Clients, conn)
			}
			h.mutex.Unlock()
			return
		}
	}
}
