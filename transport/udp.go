package transport

import "net"

// UDP wraps a connected *net.UDPConn. One datagram carries exactly one
// frame; no length prefix is required on receipt, but this module
// still emits one for consistency with the TCP/WebSocket transports —
// the peer accepts either.
type UDP struct {
	conn *net.UDPConn
}

// DialUDP opens a UDP socket addressed at remote.
func DialUDP(remote string) (*UDP, error) {
	addr, err := net.ResolveUDPAddr("udp", remote)
	if err != nil {
		return nil, err
	}
	conn, err := net.DialUDP("udp", nil, addr)
	if err != nil {
		return nil, err
	}
	return &UDP{conn: conn}, nil
}

// ListenUDP binds a local UDP socket, used for the side-channel MCI
// and NodeLap streams a host may be configured to push there instead
// of over the main TCP/WS connection.
func ListenUDP(local string) (*UDP, error) {
	addr, err := net.ResolveUDPAddr("udp", local)
	if err != nil {
		return nil, err
	}
	conn, err := net.ListenUDP("udp", addr)
	if err != nil {
		return nil, err
	}
	return &UDP{conn: conn}, nil
}

// LocalPort reports the bound local port, the value to advertise as
// Init.UDPPort.
func (u *UDP) LocalPort() int {
	return u.conn.LocalAddr().(*net.UDPAddr).Port
}

func (u *UDP) Read(p []byte) (int, error)  { return u.conn.Read(p) }
func (u *UDP) Write(p []byte) (int, error) { return u.conn.Write(p) }
func (u *UDP) Close() error                { return u.conn.Close() }
