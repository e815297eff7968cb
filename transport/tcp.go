package transport

import (
	"net"
	"time"
)

// TCP wraps a net.Conn. Deadlines are refreshed per call so a stalled
// peer surfaces as a read/write error rather than hanging the actor's
// select loop forever.
type TCP struct {
	conn    net.Conn
	timeout time.Duration
}

// DialTCP opens a TCP connection to addr. timeout bounds both the
// connect attempt and every subsequent read/write.
func DialTCP(addr string, timeout time.Duration) (*TCP, error) {
	conn, err := net.DialTimeout("tcp", addr, timeout)
	if err != nil {
		return nil, err
	}
	return &TCP{conn: conn, timeout: timeout}, nil
}

// NewTCP adapts an already-connected net.Conn, e.g. one accepted by a
// listener for a host-side InSim integration.
func NewTCP(conn net.Conn, timeout time.Duration) *TCP {
	return &TCP{conn: conn, timeout: timeout}
}

func (t *TCP) Read(p []byte) (int, error) {
	if t.timeout > 0 {
		t.conn.SetReadDeadline(time.Now().Add(t.timeout))
	}
	return t.conn.Read(p)
}

func (t *TCP) Write(p []byte) (int, error) {
	if t.timeout > 0 {
		t.conn.SetWriteDeadline(time.Now().Add(t.timeout))
	}
	return t.conn.Write(p)
}

func (t *TCP) Close() error {
	return t.conn.Close()
}
