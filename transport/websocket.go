package transport

import (
	"errors"
	"io"

	"github.com/gorilla/websocket"
)

// ErrTextFrame names an unexpected text frame from the peer. Read does
// not return it: text frames (and any other non-binary message) are
// skipped silently and Read waits for the next binary message.
var ErrTextFrame = errors.New("transport: ignoring unexpected text frame")

// WebSocket wraps a *websocket.Conn so each binary message is exactly
// one frame, matching the TCP/UDP transports' "one frame per logical
// unit" contract. Every Write call must be given one complete frame —
// unlike TCP there is no partial-write resumption to support, since
// gorilla/websocket always writes a full message.
type WebSocket struct {
	conn    *websocket.Conn
	pending []byte
}

// DialWebSocket opens a WebSocket connection to url.
func DialWebSocket(url string) (*WebSocket, error) {
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return nil, err
	}
	return &WebSocket{conn: conn}, nil
}

// NewWebSocket adapts an already-established *websocket.Conn, e.g. one
// accepted by an http.Handler for a host-side integration.
func NewWebSocket(conn *websocket.Conn) *WebSocket {
	return &WebSocket{conn: conn}
}

func (w *WebSocket) Read(p []byte) (int, error) {
	for len(w.pending) == 0 {
		kind, data, err := w.conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return 0, io.EOF
			}
			return 0, err
		}
		switch kind {
		case websocket.BinaryMessage:
			w.pending = data
		case websocket.TextMessage:
			continue
		default:
			continue
		}
	}
	n := copy(p, w.pending)
	w.pending = w.pending[n:]
	return n, nil
}

func (w *WebSocket) Write(p []byte) (int, error) {
	if err := w.conn.WriteMessage(websocket.BinaryMessage, p); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (w *WebSocket) Close() error {
	return w.conn.Close()
}
