package insim

import "github.com/lfsinsim/insim/packet"

// Event is the tagged union broadcast to every subscriber: exactly
// one of Connected, Disconnected, Packet, or Error describes each
// value, the Go equivalent of the language-neutral spec's sum type.
type Event struct {
	Connected    bool
	Disconnected bool
	Packet       packet.Packet
	Err          error
}

func connectedEvent() Event              { return Event{Connected: true} }
func disconnectedEvent() Event           { return Event{Disconnected: true} }
func packetEvent(p packet.Packet) Event  { return Event{Packet: p} }
func errorEvent(err error) Event         { return Event{Err: err} }
