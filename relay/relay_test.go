package relay

import (
	"testing"

	"github.com/lfsinsim/insim/packet"
)

func TestReplayBeforeSelect(t *testing.T) {
	var o Overlay
	if _, ok := o.Replay(); ok {
		t.Fatal("expected no replay before any Select")
	}
}

func TestSelectThenReplay(t *testing.T) {
	var o Overlay
	sent := o.Select("Demo Host", "", "")

	replayed, ok := o.Replay()
	if !ok {
		t.Fatal("expected a remembered selection")
	}
	if replayed != sent {
		t.Fatalf("Replay() = %+v, want %+v", replayed, sent)
	}
}

func TestResetClearsSelection(t *testing.T) {
	var o Overlay
	o.Select("Demo Host", "", "")
	o.Reset()
	if _, ok := o.Replay(); ok {
		t.Fatal("expected no replay after Reset")
	}
}

func TestAbortsReconnect(t *testing.T) {
	cases := map[packet.RelayErrorKind]bool{
		packet.RelayErrorBadAdminPassword:     true,
		packet.RelayErrorBadSpectatorPassword: true,
		packet.RelayErrorInvalidHostname:      true,
		packet.RelayErrorNoSpectatorHosting:   false,
		packet.RelayErrorUnknown:              false,
	}
	for kind, want := range cases {
		if got := AbortsReconnect(kind); got != want {
			t.Errorf("AbortsReconnect(%v) = %v, want %v", kind, got, want)
		}
	}
}
