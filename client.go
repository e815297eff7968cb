// Package insim is a client library for Live For Speed's InSim
// protocol and its companion relay: a length-prefixed binary control
// protocol carried over TCP, UDP, or WebSocket. Package insim owns
// the connection state machine (component F in SPEC_FULL.md); the wire
// codec lives in packet and frame, the byte-level transports in
// transport, and the relay-specific overlay in relay.
package insim

import (
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lfsinsim/insim/frame"
	"github.com/lfsinsim/insim/metrics"
	"github.com/lfsinsim/insim/packet"
	"github.com/lfsinsim/insim/relay"
	"github.com/lfsinsim/insim/transport"
)

// Level is the connection actor's current state, also exported as
// the insim_connection_level gauge.
type Level int32

const (
	LevelDisconnected Level = iota
	LevelConnecting
	LevelHandshaking
	LevelConnected
	LevelDisconnecting
	LevelBackoffDelay
	LevelShutdown
)

func (l Level) String() string {
	names := [...]string{
		"Disconnected", "Connecting", "Handshaking", "Connected",
		"Disconnecting", "BackoffDelay", "Shutdown",
	}
	if int(l) < len(names) {
		return names[l]
	}
	return "Level?"
}

// Client dials Configs. It holds no state of its own; every Connect
// call spawns an independent actor goroutine, the way session.TCP
// spawns a fresh recvLoop/sendLoop/run triple per connection.
type Client struct{}

// NewClient returns a ready-to-use Client.
func NewClient() *Client { return &Client{} }

// Handle is the user-facing side of one connection actor: an
// outbound send queue producer plus a broadcast event subscriber,
// mirroring session.Station's Transport embedding generalised to
// InSim's single send queue (no class 1/2 priority split).
type Handle struct {
	cfg     Config
	send    chan packet.Packet
	quit    chan struct{}
	quitErr sync.Once
	bc      *broadcast
	metrics *metrics.Collector
	overlay *relay.Overlay
	level   int32 // atomic Level
	done    chan struct{}
}

// Connect starts the actor goroutine and returns its Handle at once;
// the actor then opens cfg's transport and runs the handshake, and
// reports the outcome as events to subscribers. The actor continues
// running — reconnecting per cfg if enabled — until Shutdown is
// called or reconnect attempts are exhausted.
func (c *Client) Connect(cfg Config) *Handle {
	cfg.check()

	h := &Handle{
		cfg:     cfg,
		send:    make(chan packet.Packet, 32),
		quit:    make(chan struct{}),
		bc:      newBroadcast(cfg.SubscriberBuffer),
		metrics: metrics.New(),
		overlay: &relay.Overlay{},
		done:    make(chan struct{}),
	}

	go h.run()
	return h
}

// Subscribe registers a new event consumer. unsubscribe releases it;
// callers must call it to avoid leaking the channel once they stop
// reading.
func (h *Handle) Subscribe() (events <-chan Event, unsubscribe func()) {
	ch := h.bc.subscribe()
	return ch, func() { h.bc.unsubscribe(ch) }
}

// Send enqueues p for the writer goroutine. It fails only once the
// actor has shut down: ErrShutdown after Shutdown, ErrNoConn once the
// actor has stopped on its own.
func (h *Handle) Send(p packet.Packet) error {
	select {
	case <-h.quit:
		return ErrShutdown
	default:
	}
	select {
	case <-h.done:
		return ErrNoConn
	default:
	}
	select {
	case h.send <- p:
		return nil
	case <-h.quit:
		return ErrShutdown
	case <-h.done:
		return ErrNoConn
	}
}

// Shutdown stops the actor at its next yield point. It is idempotent.
func (h *Handle) Shutdown() {
	h.quitErr.Do(func() { close(h.quit) })
	<-h.done
}

// Level reports the actor's current connection state.
func (h *Handle) Level() Level {
	return Level(atomic.LoadInt32(&h.level))
}

// Metrics exposes the Prometheus collector bound to this connection.
func (h *Handle) Metrics() *metrics.Collector {
	return h.metrics
}

func (h *Handle) setLevel(l Level) {
	atomic.StoreInt32(&h.level, int32(l))
	h.metrics.SetLevel(float64(l))
}

func (h *Handle) run() {
	defer close(h.done)
	defer h.bc.closeAll()

	attempt := 0
	for {
		conn, err := h.dial()
		if err != nil {
			if !h.shouldReconnect(attempt) {
				h.setLevel(LevelShutdown)
				return
			}
			attempt++
			if !h.backoffWait(attempt) {
				h.setLevel(LevelShutdown)
				return
			}
			continue
		}

		clean, fatal := h.serve(conn)
		conn.Close()
		if fatal {
			h.setLevel(LevelShutdown)
			return
		}
		if clean {
			h.setLevel(LevelShutdown)
			return
		}

		attempt++
		if !h.shouldReconnect(attempt) {
			h.setLevel(LevelShutdown)
			return
		}
		if !h.backoffWait(attempt) {
			h.setLevel(LevelShutdown)
			return
		}
	}
}

func (h *Handle) dial() (transport.Conn, error) {
	h.setLevel(LevelConnecting)
	if h.cfg.Dialer != nil {
		return h.cfg.Dialer()
	}
	switch h.cfg.Transport {
	case TransportUDP:
		if h.cfg.Addr == "" {
			return transport.ListenUDP(h.cfg.LocalAddr)
		}
		return transport.DialUDP(h.cfg.Addr)
	case TransportWebSocket:
		return transport.DialWebSocket(h.cfg.Addr)
	default: // TransportTCP, TransportRelay
		return transport.DialTCP(h.cfg.Addr, h.cfg.HandshakeTimeout)
	}
}

// serve drives one connection attempt end to end: handshake, then the
// steady-state read/write/timeout loop. clean reports a user-requested
// shutdown; fatal reports a condition (e.g. incompatible version) that
// must not be retried.
func (h *Handle) serve(conn transport.Conn) (clean, fatal bool) {
	h.setLevel(LevelHandshaking)
	started := time.Now()

	if err := h.sendInit(conn); err != nil {
		h.publishError(err)
		return false, false
	}

	version, err := h.awaitVersion(conn)
	if err != nil {
		h.publishError(err)
		return false, false
	}
	if version.InSimVersion < h.cfg.MinInSimVersion {
		h.bc.publish(connectedEvent())
		h.publishError(IncompatibleVersion{Got: version.InSimVersion, Want: h.cfg.MinInSimVersion})
		h.bc.publish(disconnectedEvent())
		return false, true
	}

	h.metrics.ConnectLatency(time.Since(started).Seconds())
	h.setLevel(LevelConnected)
	h.bc.publish(connectedEvent())

	if h.cfg.Transport == TransportRelay && h.cfg.AutoSelectHost != "" {
		sel := h.overlay.Select(h.cfg.AutoSelectHost, h.cfg.AdminPassword, h.cfg.SpecPassword)
		h.writePacket(conn, sel)
	} else if sel, ok := h.overlay.Replay(); ok {
		h.writePacket(conn, sel)
	}

	clean, fatal = h.steadyState(conn)
	h.setLevel(LevelDisconnecting)
	h.bc.publish(disconnectedEvent())
	return clean, fatal
}

func (h *Handle) sendInit(conn transport.Conn) error {
	init := &packet.Init{
		UDPPort:    0,
		Flags:      h.cfg.Flags,
		Version:    h.cfg.MinInSimVersion,
		Prefix:     h.cfg.Prefix,
		IntervalMS: h.cfg.IntervalMS,
		IName:      h.cfg.IName,
	}
	copy(init.Password[:], packet.FixedString{Width: 16}.Encode(h.cfg.Password))
	return h.writePacket(conn, init)
}

func (h *Handle) awaitVersion(conn transport.Conn) (*packet.Version, error) {
	deadline := time.Now().Add(h.cfg.HandshakeTimeout)
	var f frame.Frame
	for {
		if time.Now().After(deadline) {
			return nil, Timeout{Phase: PhaseHandshake}
		}
		if err := readFrame(conn, &f); err != nil {
			return nil, err
		}
		p, err := packet.Decode(f.Bytes())
		if err != nil {
			continue // skip undecodable frames during handshake
		}
		if v, ok := p.(*packet.Version); ok {
			return v, nil
		}
		// any other packet during handshake is buffered by the
		// caller's perspective as simply ignored; InSim does not
		// promise ordering of async packets before Version.
	}
}

func readFrame(conn transport.Conn, f *frame.Frame) error {
	_, err := f.Unmarshal(conn, 0)
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}

func (h *Handle) writePacket(conn transport.Conn, p packet.Packet) error {
	raw, err := p.MarshalInsim(nil)
	if err != nil {
		return err
	}
	var f frame.Frame
	if err := f.Set(raw); err != nil {
		return err
	}
	skip := 0
	for skip < len(f.Bytes()) {
		n, err := f.Marshal(conn, skip)
		if err != nil {
			return err
		}
		skip += n
	}
	h.metrics.FrameSent(packetTypeName(p))
	return nil
}

func (h *Handle) publishError(err error) {
	h.metrics.Error(errorKind(err))
	h.bc.publish(errorEvent(err))
}
