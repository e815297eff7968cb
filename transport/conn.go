// Package transport provides the byte-level connections the frame
// layer reads and writes frames over: TCP, UDP, WebSocket, and an
// in-memory pipe for tests.
package transport

import "io"

// Conn is the uniform byte-stream interface every concrete transport
// implements. Read/Write may transfer any count ≥ 1; the frame layer
// above accumulates partial results.
type Conn interface {
	io.Reader
	io.Writer
	io.Closer
}
