// internal/spectator/transport.go
package spectator

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -destination=./mocks/transport_mock.go -package=mocks . Transport

import (
	"context"

	"github.com/coder/websocket"
)

// Transport: сторона записи зрительского соединения.
type Transport interface {
	Write(ctx context.Context, data []byte) error
	Close(code websocket.StatusCode, reason string) error
}

type wsTransport struct {
	conn    *websocket.Conn
	msgType websocket.MessageType
}

// NewTransport wraps a websocket connection; every frame goes out as msgType.
func NewTransport(conn *websocket.Conn, msgType websocket.MessageType) Transport {
	return &wsTransport{conn: conn, msgType: msgType}
}

func (t *wsTransport) Write(ctx context.Context, data []byte) error {
	return t.conn.Write(ctx, t.msgType, data)
}

func (t *wsTransport) Close(code websocket.StatusCode, reason string) error {
	return t.conn.Close(code, reason)
}
