package packet

import (
	"testing"

	"github.com/go-test/deep"
)

func TestTinyPingPong(t *testing.T) {
	wire := []byte{1, 3, 0, 0}

	p, err := Decode(wire)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	tiny, ok := p.(*Tiny)
	if !ok {
		t.Fatalf("Decode returned %T, want *Tiny", p)
	}
	if tiny.SubT != TinyNone || tiny.ReqI != 0 {
		t.Fatalf("got %+v, want SubT=TinyNone ReqI=0", tiny)
	}

	encoded, err := tiny.MarshalInsim(nil)
	if err != nil {
		t.Fatalf("MarshalInsim: %v", err)
	}
	if diff := deep.Equal(encoded, wire); diff != nil {
		t.Errorf("round trip mismatch: %v", diff)
	}
}

func TestVehicleIdentifier(t *testing.T) {
	builtin := Vehicle{0x58, 0x46, 0x47, 0x00}
	if !builtin.IsBuiltin() || builtin.IsMod() {
		t.Fatalf("XFG bytes not recognised as builtin: %+v", builtin)
	}
	if got := builtin.String(); got != "XFG" {
		t.Fatalf("builtin.String() = %q, want XFG", got)
	}

	mod := Vehicle{0xEF, 0xBE, 0xAD, 0xDE}
	if mod.IsBuiltin() || !mod.IsMod() {
		t.Fatalf("mod bytes misclassified as builtin: %+v", mod)
	}
	if got := mod.String(); got != "DEADBEEF" {
		t.Fatalf("mod.String() = %q, want DEADBEEF", got)
	}
}

func TestInitRoundTrip(t *testing.T) {
	in := &Init{
		ReqI:       1,
		UDPPort:    29999,
		Flags:      InitFlagMCI | InitFlagCon,
		Version:    9,
		Prefix:     '!',
		IntervalMS: 100,
		IName:      "go-insim",
	}
	copy(in.Password[:], []byte("secret"))

	wire, err := in.MarshalInsim(nil)
	if err != nil {
		t.Fatalf("MarshalInsim: %v", err)
	}

	p, err := Decode(wire)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	out, ok := p.(*Init)
	if !ok {
		t.Fatalf("Decode returned %T, want *Init", p)
	}
	if diff := deep.Equal(out, in); diff != nil {
		t.Errorf("round trip mismatch: %v", diff)
	}
}

func TestMessageOutVariableLength(t *testing.T) {
	in := MessageOut{ReqI: 0, UCID: 3, UserType: MessageUserUser, Text: "hello"}
	wire, err := in.MarshalInsim(nil)
	if err != nil {
		t.Fatalf("MarshalInsim: %v", err)
	}
	if len(wire)%4 != 0 {
		t.Fatalf("wire length %d not 4-byte aligned", len(wire))
	}

	p, err := Decode(wire)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	out := p.(*MessageOut)
	if out.Text != in.Text || out.UCID != in.UCID || out.UserType != in.UserType {
		t.Fatalf("got %+v, want %+v", out, in)
	}
}

func TestMultiCarInfoRoundTrip(t *testing.T) {
	in := &MultiCarInfo{ReqI: 0, Cars: []CompCar{
		{Node: 10, Lap: 1, PLID: 1, Position: 1, Speed: 4200},
		{Node: 11, Lap: 1, PLID: 2, Position: 2, Speed: 3900},
	}}
	wire, err := in.MarshalInsim(nil)
	if err != nil {
		t.Fatalf("MarshalInsim: %v", err)
	}
	p, err := Decode(wire)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	out := p.(*MultiCarInfo)
	if diff := deep.Equal(out, in); diff != nil {
		t.Errorf("round trip mismatch: %v", diff)
	}
}

func TestUnknownPacketFallback(t *testing.T) {
	wire := []byte{2, 200, 5, 0xAA, 0xBB, 0xCC, 0xDD}
	p, err := Decode(wire)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	u, ok := p.(Unknown)
	if !ok {
		t.Fatalf("Decode returned %T, want Unknown", p)
	}
	if u.Type != TypeID(200) || u.ReqI != 5 {
		t.Fatalf("got %+v, want Type=200 ReqI=5", u)
	}

	back, err := u.MarshalInsim(nil)
	if err != nil {
		t.Fatalf("MarshalInsim: %v", err)
	}
	if diff := deep.Equal(back, wire); diff != nil {
		t.Errorf("unknown round trip mismatch: %v", diff)
	}
}

func TestTruncatedFrameRejected(t *testing.T) {
	_, err := Decode([]byte{2, 3, 0})
	if _, ok := err.(Truncated); !ok {
		t.Fatalf("Decode on short Tiny body: got %v, want Truncated", err)
	}
}
