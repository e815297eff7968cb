package outsim

import (
	"math"
	"testing"

	"github.com/go-test/deep"
)

func TestRoundTrip(t *testing.T) {
	p := Packet{
		TimeMS:  98765,
		AngVel:  Vec3{0.1, -0.2, 0.3},
		Heading: 1.57,
		Pitch:   -0.02,
		Roll:    0.01,
		Accel:   Vec3{0, -9.8, 0},
		Vel:     Vec3{30, 0, 0},
		Pos:     [3]int32{1 << 20, -(1 << 19), 0},
	}
	raw := p.Encode()
	got, err := Decode(raw)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if diff := deep.Equal(got, p); diff != nil {
		t.Error(diff)
	}
}

func TestRoundTripWithID(t *testing.T) {
	p := Packet{TimeMS: 5, ID: 9, HasID: true}
	raw := p.Encode()
	got, err := Decode(raw)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if diff := deep.Equal(got, p); diff != nil {
		t.Error(diff)
	}
}

func TestPosMetres(t *testing.T) {
	p := Packet{Pos: [3]int32{65536, -65536, 0}}
	x, y, z := p.PosMetres()
	if math.Abs(x-1) > 1e-9 || math.Abs(y+1) > 1e-9 || z != 0 {
		t.Fatalf("PosMetres = %v,%v,%v", x, y, z)
	}
}

func TestDecodeTruncated(t *testing.T) {
	_, err := Decode(make([]byte, 8))
	if err == nil {
		t.Fatal("expected Truncated error")
	}
}
