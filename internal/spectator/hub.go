// internal/spectator/hub.go
package spectator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"battle-of-bastions/internal/app"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"
)

// Format: кодировка кадров для клиента.
type Format int

const (
	FormatMsgpack Format = iota
	FormatJSON
)

func (f Format) String() string {
	if f == FormatJSON {
		return "json"
	}
	return "msgpack"
}

// MessageType is the websocket frame type used for the format.
func (f Format) MessageType() websocket.MessageType {
	if f == FormatJSON {
		return websocket.MessageText
	}
	return websocket.MessageBinary
}

// ParseFormat maps the ?format= query value; anything but "json" means msgpack.
func ParseFormat(s string) Format {
	if s == "json" {
		return FormatJSON
	}
	return FormatMsgpack
}

// Encode serializes a snapshot in the given format.
func Encode(s *app.Snapshot, f Format) ([]byte, error) {
	if f == FormatJSON {
		return json.Marshal(s)
	}
	return msgpack.Marshal(s)
}

const sendBuffer = 8

var ErrHubClosed = errors.New("spectator hub is closed")

// Client: один зритель. Кадры копятся в send, пишет их Run.
type Client struct {
	ID        string
	format    Format
	transport Transport
	send      chan []byte
	dropped   atomic.Int64
}

// Dropped returns how many frames were skipped because the client was slow.
func (c *Client) Dropped() int64 { return c.dropped.Load() }

// Run writes queued frames until ctx is done, the hub drops the client or a write fails.
func (c *Client) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case data, ok := <-c.send:
			if !ok {
				return nil
			}
			if err := c.transport.Write(ctx, data); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("client %s: %w", c.ID, err)
			}
		}
	}
}

// Hub раздаёт снимки всем подключённым зрителям.
type Hub struct {
	mu      sync.Mutex
	clients map[string]*Client
	closed  bool
	log     *slog.Logger
}

func NewHub(log *slog.Logger) *Hub {
	if log == nil {
		log = slog.Default()
	}
	return &Hub{clients: make(map[string]*Client), log: log}
}

// Register adds a client and returns it. The caller runs Client.Run.
func (h *Hub) Register(t Transport, f Format) (*Client, error) {
	c := &Client{
		ID:        uuid.NewString(),
		format:    f,
		transport: t,
		send:      make(chan []byte, sendBuffer),
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil, ErrHubClosed
	}
	h.clients[c.ID] = c
	h.log.Info("spectator connected", "client", c.ID, "format", f, "clients", len(h.clients))
	return c, nil
}

// Unregister removes the client and stops its Run loop.
func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c.ID]; !ok {
		return
	}
	delete(h.clients, c.ID)
	close(c.send)
	h.log.Info("spectator disconnected", "client", c.ID, "dropped", c.Dropped(), "clients", len(h.clients))
}

// Len returns the number of connected clients.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Broadcast encodes the snapshot once per format in use and queues it for every client.
// A client whose queue is full misses this frame.
func (h *Hub) Broadcast(s *app.Snapshot) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	var frames [2][]byte
	for _, c := range h.clients {
		data := frames[c.format]
		if data == nil {
			var err error
			if data, err = Encode(s, c.format); err != nil {
				return fmt.Errorf("encode %s snapshot: %w", c.format, err)
			}
			frames[c.format] = data
		}
		select {
		case c.send <- data:
		default:
			c.dropped.Add(1)
		}
	}
	return nil
}

// Close disconnects every client. Later Register calls fail.
// Транспорты закрываются вне h.mu: Close может блокироваться на сети.
func (h *Hub) Close() {
	h.mu.Lock()
	h.closed = true
	clients := make([]*Client, 0, len(h.clients))
	for id, c := range h.clients {
		delete(h.clients, id)
		close(c.send)
		clients = append(clients, c)
	}
	h.mu.Unlock()

	for _, c := range clients {
		if err := c.transport.Close(websocket.StatusGoingAway, "server shutting down"); err != nil {
			h.log.Debug("close spectator", "client", c.ID, "err", err)
		}
	}
}
