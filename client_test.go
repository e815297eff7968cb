package insim

import (
	"testing"
	"time"

	"github.com/lfsinsim/insim/frame"
	"github.com/lfsinsim/insim/packet"
	"github.com/lfsinsim/insim/transport"
)

func pipeDialer(t *testing.T) (dialer func() (transport.Conn, error), server transport.Conn) {
	t.Helper()
	client, srv := transport.Pipe()
	return func() (transport.Conn, error) { return client, nil }, srv
}

func readServerPacket(t *testing.T, server transport.Conn) packet.Packet {
	t.Helper()
	var f frame.Frame
	if _, err := f.Unmarshal(server, 0); err != nil {
		t.Fatalf("server read: %v", err)
	}
	p, err := packet.Decode(f.Bytes())
	if err != nil {
		t.Fatalf("server decode: %v", err)
	}
	return p
}

func writeServerPacket(t *testing.T, server transport.Conn, p packet.Packet) {
	t.Helper()
	raw, err := p.MarshalInsim(nil)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var f frame.Frame
	if err := f.Set(raw); err != nil {
		t.Fatalf("frame set: %v", err)
	}
	if _, err := f.Marshal(server, 0); err != nil {
		t.Fatalf("server write: %v", err)
	}
}

func waitEvent(t *testing.T, events <-chan Event, timeout time.Duration) Event {
	t.Helper()
	select {
	case ev, ok := <-events:
		if !ok {
			t.Fatal("event stream closed unexpectedly")
		}
		return ev
	case <-time.After(timeout):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func TestHandshakeSuccess(t *testing.T) {
	dialer, server := pipeDialer(t)
	defer server.Close()

	go func() {
		readServerPacket(t, server) // Init
		writeServerPacket(t, server, &packet.Version{Product: "LFS", Version: "0.7E", InSimVersion: 9})
	}()

	c := NewClient()
	h := c.Connect(Config{Dialer: dialer, MinInSimVersion: 9, IName: "bot"})
	events, unsubscribe := h.Subscribe()
	defer unsubscribe()

	ev := waitEvent(t, events, time.Second)
	if !ev.Connected {
		t.Fatalf("first event = %+v, want Connected", ev)
	}

	h.Shutdown()
}

// TestIncompatibleVersion exercises scenario S5: the server reports an
// InSim version below the client's minimum.
func TestIncompatibleVersion(t *testing.T) {
	dialer, server := pipeDialer(t)
	defer server.Close()

	go func() {
		readServerPacket(t, server)
		writeServerPacket(t, server, &packet.Version{Product: "LFS", Version: "0.7E", InSimVersion: 7})
	}()

	c := NewClient()
	h := c.Connect(Config{Dialer: dialer, MinInSimVersion: 9, Reconnect: false})
	events, unsubscribe := h.Subscribe()
	defer unsubscribe()

	ev := waitEvent(t, events, time.Second)
	if !ev.Connected {
		t.Fatalf("event 1 = %+v, want Connected", ev)
	}

	ev = waitEvent(t, events, time.Second)
	iv, ok := ev.Err.(IncompatibleVersion)
	if !ok {
		t.Fatalf("event 2 = %+v, want IncompatibleVersion error", ev)
	}
	if iv.Got != 7 || iv.Want != 9 {
		t.Fatalf("IncompatibleVersion = %+v", iv)
	}

	ev = waitEvent(t, events, time.Second)
	if !ev.Disconnected {
		t.Fatalf("event 3 = %+v, want Disconnected", ev)
	}

	h.Shutdown()
	if got := h.Level(); got != LevelShutdown {
		t.Fatalf("Level() = %v, want Shutdown", got)
	}
}

// TestPingPongKeepAlive exercises scenario S1: a Tiny{None} ping gets
// an immediate Tiny{None} pong and never reaches subscribers.
func TestPingPongKeepAlive(t *testing.T) {
	dialer, server := pipeDialer(t)
	defer server.Close()

	serverDone := make(chan struct{})
	go func() {
		defer close(serverDone)
		readServerPacket(t, server)
		writeServerPacket(t, server, &packet.Version{Product: "LFS", Version: "0.7E", InSimVersion: 9})
		writeServerPacket(t, server, packet.Tiny{SubT: packet.TinyNone})

		pong := readServerPacket(t, server)
		tiny, ok := pong.(*packet.Tiny)
		if !ok || tiny.SubT != packet.TinyNone {
			t.Errorf("pong = %+v, want Tiny{SubT: TinyNone}", pong)
		}
	}()

	c := NewClient()
	h := c.Connect(Config{Dialer: dialer, MinInSimVersion: 9})
	events, unsubscribe := h.Subscribe()
	defer unsubscribe()

	if ev := waitEvent(t, events, time.Second); !ev.Connected {
		t.Fatalf("first event = %+v, want Connected", ev)
	}

	select {
	case ev := <-events:
		t.Fatalf("unexpected event reached subscriber: %+v", ev)
	case <-time.After(200 * time.Millisecond):
	}

	<-serverDone
	h.Shutdown()
}

func TestSendAfterShutdownFails(t *testing.T) {
	dialer, server := pipeDialer(t)
	defer server.Close()

	go func() {
		readServerPacket(t, server)
		writeServerPacket(t, server, &packet.Version{Product: "LFS", Version: "0.7E", InSimVersion: 9})
	}()

	c := NewClient()
	h := c.Connect(Config{Dialer: dialer, MinInSimVersion: 9})
	events, unsubscribe := h.Subscribe()
	defer unsubscribe()
	waitEvent(t, events, time.Second)

	h.Shutdown()
	if err := h.Send(packet.Tiny{SubT: packet.TinyPing}); err != ErrShutdown {
		t.Fatalf("Send after Shutdown = %v, want ErrShutdown", err)
	}
}

// TestAutoSelectHostReplayedOnReconnect exercises scenario S6: a relay
// host selection is sent once after the first handshake, and resent
// unchanged after every reconnect.
func TestAutoSelectHostReplayedOnReconnect(t *testing.T) {
	servers := make(chan transport.Conn, 2)
	dialer := func() (transport.Conn, error) {
		client, server := transport.Pipe()
		servers <- server
		return client, nil
	}

	c := NewClient()
	h := c.Connect(Config{
		Dialer:          dialer,
		Transport:       TransportRelay,
		MinInSimVersion: 9,
		AutoSelectHost:  "Demo Host",
		Reconnect:       true,
		MaxAttempts:     4,
		BaseBackoff:     time.Millisecond,
		MaxBackoff:      time.Millisecond,
	})
	events, unsubscribe := h.Subscribe()
	defer unsubscribe()

	server1 := <-servers
	readServerPacket(t, server1) // Init
	writeServerPacket(t, server1, &packet.Version{Product: "LFS", Version: "0.7E", InSimVersion: 9})

	sel1, ok := readServerPacket(t, server1).(*packet.RelayHostSelect)
	if !ok || sel1.HName != "Demo Host" {
		t.Fatalf("first HostSelect = %+v", sel1)
	}

	if ev := waitEvent(t, events, time.Second); !ev.Connected {
		t.Fatalf("event 1 = %+v, want Connected", ev)
	}

	// Force a reconnect by dropping the first connection.
	server1.Close()

	if ev := waitEvent(t, events, time.Second); !ev.Disconnected {
		t.Fatalf("event after drop = %+v, want Disconnected", ev)
	}

	server2 := <-servers
	readServerPacket(t, server2) // Init
	writeServerPacket(t, server2, &packet.Version{Product: "LFS", Version: "0.7E", InSimVersion: 9})

	sel2, ok := readServerPacket(t, server2).(*packet.RelayHostSelect)
	if !ok || sel2.HName != "Demo Host" {
		t.Fatalf("replayed HostSelect = %+v", sel2)
	}

	h.Shutdown()
}
