package notifier

import (
	"auction-house/utils"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait = 10 * time.Second
	// sendBuffer is how many pending events a slow subscriber may lag
	// behind before it is dropped.
	sendBuffer = 16
)

// subscriber is one websocket connection in a room. All writes to the
// connection go through send and are performed by a single pump goroutine,
// since the connection supports at most one concurrent writer.
type subscriber struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub is a websocket Sink with one room per good. Subscribers to a
// good receive its bid and settlement events as they happen. Event
// methods never block the caller: each subscriber has a buffered queue,
// and one that falls too far behind is dropped.
type Hub struct {
	mu    sync.Mutex
	rooms map[string]map[*subscriber]bool

	upgrader websocket.Upgrader
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		rooms: make(map[string]map[*subscriber]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

// Subscribe upgrades the HTTP request to a websocket and joins the
// connection to the good's room until the peer disconnects.
func (h *Hub) Subscribe(w http.ResponseWriter, r *http.Request, goodID string) error {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}
	sub := &subscriber{conn: conn, send: make(chan []byte, sendBuffer)}

	h.mu.Lock()
	room, ok := h.rooms[goodID]
	if !ok {
		room = make(map[*subscriber]bool)
		h.rooms[goodID] = room
	}
	room[sub] = true
	h.mu.Unlock()

	go sub.writePump()

	// Drain reads so close frames are processed; we never expect data.
	go func() {
		defer h.leave(goodID, sub)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	return nil
}

// writePump is the sole writer for the connection. It exits when the send
// channel is closed (the subscriber left or was dropped) or a write fails.
func (s *subscriber) writePump() {
	defer s.conn.Close()
	for msg := range s.send {
		s.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := s.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
	s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	s.conn.WriteMessage(websocket.CloseMessage, nil)
}

// leave removes the subscriber from the room and closes its send channel,
// which stops the write pump. Safe to call more than once: the channel is
// closed only while the subscriber is still in the room.
func (h *Hub) leave(goodID string, sub *subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	room, ok := h.rooms[goodID]
	if !ok || !room[sub] {
		return
	}
	delete(room, sub)
	if len(room) == 0 {
		delete(h.rooms, goodID)
	}
	close(sub.send)
}

// envelope wraps every pushed event with its type.
type envelope struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

func (h *Hub) broadcast(goodID, eventType string, data any) {
	msg, err := json.Marshal(envelope{Type: eventType, Data: data})
	if err != nil {
		utils.Error("notifier: marshal event", map[string]any{
			"good_id": goodID,
			"type":    eventType,
			"error":   err.Error(),
		})
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for sub := range h.rooms[goodID] {
		select {
		case sub.send <- msg:
		default:
			// Subscriber queue full: it stopped reading, drop it.
			utils.Warn("notifier: dropping slow subscriber", map[string]any{
				"good_id": goodID,
			})
			delete(h.rooms[goodID], sub)
			close(sub.send)
		}
	}
	if len(h.rooms[goodID]) == 0 {
		delete(h.rooms, goodID)
	}
}

func (h *Hub) BidAccepted(event BidAcceptedEvent) {
	h.broadcast(event.GoodID, EventBid, event)
}

func (h *Hub) AuctionSettled(event AuctionSettledEvent) {
	h.broadcast(event.GoodID, EventSettled, event)
}

func (h *Hub) AuctionUnsold(event AuctionUnsoldEvent) {
	h.broadcast(event.GoodID, EventUnsold, event)
}
