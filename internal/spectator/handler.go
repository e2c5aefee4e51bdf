// internal/spectator/handler.go
package spectator

import (
	"log/slog"
	"net/http"

	"github.com/coder/websocket"
)

// Handler принимает websocket-подключения зрителей.
type Handler struct {
	hub *Hub
	log *slog.Logger
}

func NewHandler(hub *Hub, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{hub: hub, log: log}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true, // зрители с любого origin
	})
	if err != nil {
		h.log.ErrorContext(ctx, "failed to accept", "err", err)
		return
	}
	defer conn.CloseNow()

	format := ParseFormat(r.URL.Query().Get("format"))
	client, err := h.hub.Register(NewTransport(conn, format.MessageType()), format)
	if err != nil {
		conn.Close(websocket.StatusTryAgainLater, err.Error())
		return
	}
	defer h.hub.Unregister(client)

	// Зрители только слушают: входящие кадры выбрасываются, закрытие отменяет ctx.
	ctx = conn.CloseRead(ctx)
	if err := client.Run(ctx); err != nil {
		h.log.WarnContext(ctx, "spectator write failed", "client", client.ID, "err", err)
		return
	}
	conn.Close(websocket.StatusNormalClosure, "")
}

// NewMux routes the stream and a health check.
func NewMux(hub *Hub, log *slog.Logger) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("GET /ws", NewHandler(hub, log))
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return mux
}
