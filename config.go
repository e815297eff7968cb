package insim

import (
	"time"

	"github.com/lfsinsim/insim/packet"
	"github.com/lfsinsim/insim/transport"
)

// TransportKind selects which concrete transport.Conn a Config dials.
type TransportKind int

const (
	TransportTCP TransportKind = iota
	TransportUDP
	TransportWebSocket
	TransportRelay // TCP to the LFS World Relay; enables the relay overlay
)

// Config is a value-type-with-check()-defaults configuration, read
// only once Client.Connect spawns the actor. The zero Config dials
// nothing; at minimum Transport and Addr must be set.
type Config struct {
	Transport TransportKind
	Addr      string // host:port for TCP/relay, url for WebSocket
	LocalAddr string // local bind address for UDP

	IName      string // up to 16 bytes, sent in Init
	Password   string // up to 16 bytes, admin password for a game host
	Prefix     byte   // chat-command prefix byte, 0 disables
	IntervalMS uint16 // 0 or 50..8000

	Flags            packet.InitFlags
	MinInSimVersion  uint8

	Reconnect        bool
	MaxAttempts      int
	BaseBackoff      time.Duration
	MaxBackoff       time.Duration

	IdleTimeout      time.Duration
	HandshakeTimeout time.Duration
	FlushDeadline    time.Duration

	// Relay-only: selected automatically once the handshake
	// completes, and replayed after every reconnect.
	AutoSelectHost string
	AdminPassword  string
	SpecPassword   string

	// SubscriberBuffer bounds each subscriber's event channel; once a
	// slow subscriber falls this far behind, further events are
	// dropped for it rather than stalling the actor. The subscriber
	// stays registered.
	SubscriberBuffer int

	// Dialer, when set, overrides Transport/Addr and is called for
	// every (re)connect attempt instead. Mirrors session.TCP taking
	// an already-established net.Conn rather than dialing itself;
	// exists so tests can hand the actor a transport.Pipe end.
	Dialer func() (transport.Conn, error)
}

// check applies defaults for each unspecified value, mirroring
// session.TCPConf.check(). Panics on out-of-range values, the same
// contract the teacher's config layer uses: a misconfigured Config is
// a programmer error caught at Connect time, not a runtime condition
// to recover from.
func (c *Config) check() {
	if c.Dialer == nil && c.Addr == "" && c.Transport != TransportUDP {
		panic("insim: Config.Addr is required")
	}
	if c.IntervalMS != 0 && (c.IntervalMS < 50 || c.IntervalMS > 8000) {
		panic("insim: Config.IntervalMS must be 0 or in [50, 8000]")
	}
	if c.MaxAttempts == 0 {
		c.MaxAttempts = 8
	}
	if c.BaseBackoff == 0 {
		c.BaseBackoff = 100 * time.Millisecond
	}
	if c.MaxBackoff == 0 {
		c.MaxBackoff = 30 * time.Second
	}
	if c.IdleTimeout == 0 {
		c.IdleTimeout = 90 * time.Second
	}
	if c.HandshakeTimeout == 0 {
		c.HandshakeTimeout = 10 * time.Second
	}
	if c.FlushDeadline == 0 {
		c.FlushDeadline = 500 * time.Millisecond
	}
	if c.SubscriberBuffer == 0 {
		c.SubscriberBuffer = 64
	}
}
