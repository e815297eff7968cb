package insim

import (
	"fmt"
	"io"
	"time"

	"github.com/lfsinsim/insim/frame"
	"github.com/lfsinsim/insim/packet"
	"github.com/lfsinsim/insim/relay"
	"github.com/lfsinsim/insim/transport"
)

// shouldReconnect reports whether another connection attempt should
// be made after the given number of prior attempts.
func (h *Handle) shouldReconnect(attempt int) bool {
	select {
	case <-h.quit:
		return false
	default:
	}
	if !h.cfg.Reconnect {
		return false
	}
	if attempt >= h.cfg.MaxAttempts {
		h.publishError(ErrReconnectExhausted)
		return false
	}
	return true
}

// backoffWait sleeps for backoff(attempt), returning false if
// Shutdown was called while waiting.
func (h *Handle) backoffWait(attempt int) bool {
	h.setLevel(LevelBackoffDelay)
	h.metrics.Reconnect()

	d := backoffDuration(attempt, h.cfg.BaseBackoff, h.cfg.MaxBackoff)
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-h.quit:
		return false
	}
}

// backoffDuration is exponential with jitter, capped at max: base *
// 2^(attempt-1), half-jittered, never exceeding max.
func backoffDuration(attempt int, base, max time.Duration) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	d := base
	for i := 1; i < attempt && d < max; i++ {
		d *= 2
	}
	if d > max {
		d = max
	}
	jitter := d / 2
	if jitter <= 0 {
		return d
	}
	r := d - jitter/2 + time.Duration(int64(jitter)*int64(attempt)%int64(jitter+1))
	if r > max {
		r = max
	}
	return r
}

// inboundMsg is what readLoop hands to steadyState. Exactly one of
// pkt, decodeErr, or fatalErr is set: a decode failure skips the
// frame but keeps the connection, per the error taxonomy's
// Decode{kind,at} policy; a fatalErr ends the connection.
type inboundMsg struct {
	pkt       packet.Packet
	decodeErr error
	fatalErr  error
}

// steadyState runs the connected-state read/write/timeout loop. It
// returns once the transport fails, the idle timeout fires, or
// Shutdown is requested. clean reports a requested shutdown; fatal
// reports an auth-flavoured relay error that must not be retried.
func (h *Handle) steadyState(conn transport.Conn) (clean, fatal bool) {
	inbound := make(chan inboundMsg, 8)
	readerDone := make(chan struct{})
	go h.readLoop(conn, inbound, readerDone)

	idle := time.NewTimer(h.cfg.IdleTimeout)
	defer idle.Stop()

	abort := func() {
		conn.Close()
		<-readerDone
	}

	for {
		select {
		case <-h.quit:
			h.flush(conn)
			abort()
			return true, false

		case msg, ok := <-inbound:
			if !ok {
				return false, false
			}
			if msg.fatalErr != nil {
				h.publishError(msg.fatalErr)
				return false, false
			}
			if msg.decodeErr != nil {
				h.publishError(DecodeFailed{Err: msg.decodeErr})
				continue
			}

			idle.Reset(h.cfg.IdleTimeout)
			h.metrics.FrameReceived(packetTypeName(msg.pkt))

			if tiny, ok := msg.pkt.(*packet.Tiny); ok && tiny.SubT == packet.TinyNone {
				h.writePacket(conn, packet.Tiny{SubT: packet.TinyNone})
				continue
			}

			if relayErr, ok := msg.pkt.(*packet.RelayError); ok {
				h.publishError(RelayFailed{Kind: relayErr.Kind})
				if relay.AbortsReconnect(relayErr.Kind) {
					abort()
					return false, true
				}
				continue
			}

			if dropped := h.bc.publish(packetEvent(msg.pkt)); dropped > 0 {
				h.metrics.FrameDropped("slow_subscriber")
			}

		case p := <-h.send:
			if err := h.writePacket(conn, p); err != nil {
				h.publishError(err)
				abort()
				return false, false
			}

		case <-idle.C:
			h.publishError(Timeout{Phase: PhaseIdle})
			abort()
			return false, false
		}
	}
}

// flush drains queued outbound packets for up to FlushDeadline before
// the transport is closed, the bounded best-effort write the spec's
// shutdown contract asks for.
func (h *Handle) flush(conn transport.Conn) {
	deadline := time.NewTimer(h.cfg.FlushDeadline)
	defer deadline.Stop()
	for {
		select {
		case p := <-h.send:
			h.writePacket(conn, p)
		case <-deadline.C:
			return
		default:
			return
		}
	}
}

func (h *Handle) readLoop(conn transport.Conn, out chan<- inboundMsg, done chan<- struct{}) {
	defer close(done)
	defer close(out)

	var f frame.Frame
	for {
		if _, err := f.Unmarshal(conn, 0); err != nil {
			if err == io.EOF {
				return // clean close between frames; serve reports Disconnected
			}
			out <- inboundMsg{fatalErr: BadFrameLength{Err: err}}
			return
		}
		raw := append([]byte(nil), f.Bytes()...)
		p, err := packet.Decode(raw)
		if err != nil {
			out <- inboundMsg{decodeErr: err}
			continue
		}
		out <- inboundMsg{pkt: p}
	}
}

func packetTypeName(p packet.Packet) string {
	return fmt.Sprintf("%T", p)
}

func errorKind(err error) string {
	switch err.(type) {
	case Timeout:
		return "timeout"
	case IncompatibleVersion:
		return "incompatible_version"
	case BadFrameLength:
		return "bad_frame_length"
	case DecodeFailed:
		return "decode"
	case RelayFailed:
		return "relay"
	default:
		return "other"
	}
}
