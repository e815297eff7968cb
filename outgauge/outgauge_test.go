package outgauge

import (
	"testing"

	"github.com/go-test/deep"
)

func TestRoundTrip(t *testing.T) {
	p := Packet{
		TimeMS:     123456,
		Flags:      7,
		Gear:       3,
		PLID:       1,
		Speed:      27.5,
		RPM:        6200,
		Fuel:       0.75,
		DashLights: DLShiftLight | DLHeadlights,
		ShowLights: DLShiftLight | DLHeadlights | DLFuelWarning,
		Throttle:   1.0,
		Display1:   "FUEL",
		Display2:   "",
	}
	copy(p.Car[:], []byte{0x58, 0x46, 0x47, 0})

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
	p := Packet{TimeMS: 1, ID: 42, HasID: true}
	raw := p.Encode()
	got, err := Decode(raw)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if diff := deep.Equal(got, p); diff != nil {
		t.Error(diff)
	}
}

func TestDecodeTruncated(t *testing.T) {
	_, err := Decode(make([]byte, 10))
	if err == nil {
		t.Fatal("expected Truncated error")
	}
}
