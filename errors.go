package insim

import (
	"errors"
	"fmt"

	"github.com/lfsinsim/insim/packet"
)

// ErrShutdown is returned from Send once Shutdown has been called.
var ErrShutdown = errors.New("insim: connection shut down")

// ErrNoConn is returned from Send once the actor has stopped without
// Shutdown being called: the connection was lost with reconnect
// disabled, reconnect attempts are exhausted, or a non-retryable
// error ended it. While the actor waits between connections
// (BackoffDelay), Send still queues the packet.
var ErrNoConn = errors.New("insim: no connection")

// ErrReconnectExhausted is published as the final Error event when
// the actor stops after MaxAttempts reconnect attempts.
var ErrReconnectExhausted = errors.New("insim: reconnect attempts exhausted")

// Phase names a point in the connection lifecycle, used by Timeout.
type Phase int

const (
	PhaseHandshake Phase = iota
	PhaseIdle
)

func (p Phase) String() string {
	switch p {
	case PhaseHandshake:
		return "handshake"
	case PhaseIdle:
		return "idle"
	default:
		return "phase?"
	}
}

// Timeout signals a handshake or idle-read deadline expiry.
type Timeout struct {
	Phase Phase
}

func (e Timeout) Error() string {
	return fmt.Sprintf("insim: %s timeout", e.Phase)
}

// IncompatibleVersion signals a server InSim version below the
// client's configured minimum.
type IncompatibleVersion struct {
	Got, Want uint8
}

func (e IncompatibleVersion) Error() string {
	return fmt.Sprintf("insim: server insim version %d below minimum %d", e.Got, e.Want)
}

// BadFrameLength signals a zero-length or otherwise malformed frame
// header byte.
type BadFrameLength struct {
	Err error
}

func (e BadFrameLength) Error() string {
	return fmt.Sprintf("insim: bad frame length: %s", e.Err)
}

// DecodeFailed signals that one inbound frame could not be parsed
// into a packet. The connection survives; the frame is skipped.
type DecodeFailed struct {
	Err error
}

func (e DecodeFailed) Error() string {
	return fmt.Sprintf("insim: decode failed, frame skipped: %s", e.Err)
}

// RelayFailed wraps a packet.RelayError surfaced to subscribers.
type RelayFailed struct {
	Kind packet.RelayErrorKind
}

func (e RelayFailed) Error() string {
	return fmt.Sprintf("insim: relay error: %s", e.Kind)
}
