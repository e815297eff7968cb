// Package relay implements the overlay behaviour needed to speak to
// the LFS World Relay instead of a game host directly: remembering
// the host selection across reconnects and classifying relay errors
// for the connection actor's reconnect decision.
package relay

import (
	"sync"

	"github.com/lfsinsim/insim/packet"
)

// Overlay remembers the most recent host selection and replays it
// after every (re)connect. It is stateless apart from that one piece
// of memory, mirroring track.Head's "store latest, replay on
// request" shape generalised from accumulated measurements to a
// single remembered command.
type Overlay struct {
	mu       sync.Mutex
	selected *packet.RelayHostSelect
}

// Select records hname/admin/spec as the selection to replay and
// returns the packet to send immediately.
func (o *Overlay) Select(hname, admin, spec string) packet.RelayHostSelect {
	sel := packet.RelayHostSelect{HName: hname, Admin: admin, Spec: spec}

	o.mu.Lock()
	o.selected = &sel
	o.mu.Unlock()
	return sel
}

// Replay returns the packet to resend after a reconnect and whether
// one was ever selected.
func (o *Overlay) Replay() (packet.RelayHostSelect, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.selected == nil {
		return packet.RelayHostSelect{}, false
	}
	return *o.selected, true
}

// Reset clears the remembered selection, e.g. after an explicit
// disconnect that should not be followed by a replay.
func (o *Overlay) Reset() {
	o.mu.Lock()
	o.selected = nil
	o.mu.Unlock()
}

// AbortsReconnect reports whether kind is an authentication-flavoured
// relay error for which retrying with the same credentials can never
// succeed.
func AbortsReconnect(kind packet.RelayErrorKind) bool {
	switch kind {
	case packet.RelayErrorBadAdminPassword, packet.RelayErrorBadSpectatorPassword, packet.RelayErrorInvalidHostname:
		return true
	default:
		return false
	}
}
