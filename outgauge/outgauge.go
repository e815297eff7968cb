// Package outgauge decodes the OutGauge UDP telemetry packet LFS
// broadcasts independently of any InSim session. It shares the
// primitive codecs and codepage engine with package packet but has no
// connection-actor integration: OutGauge is a fire-and-forget
// broadcast, not part of the InSim handshake.
package outgauge

import (
	"math"

	"github.com/lfsinsim/insim/codepage"
	"github.com/lfsinsim/insim/packet"
)

// DashLights are the dashboard indicator bits LFS reports in both
// DashLights (lit) and ShowLights (available) fields.
type DashLights uint32

const (
	DLShiftLight DashLights = 1 << iota
	DLFullBeam
	DLHandbrake
	DLPitSpeed
	DLTC
	DLSignalLeft
	DLSignalRight
	DLFlash
	DLHeadlights
	DLFogRear
	DLFogFront
	DLEngine
	DLStarter
	DLBattery
	DLABS
	DLSpare
	DLOilPressure
	DLFuelWarning
)

// Packet is one OutGauge datagram: a single car's dashboard state at
// the moment of capture, sampled once per physics update. Scalar
// fields are raw OutGauge units as LFS emits them; no conversion is
// applied. The packet package's SpeedToKMH and similar helpers take
// InSim's integer units and do not accept these float32 fields.
type Packet struct {
	TimeMS     uint32
	Car        packet.Vehicle
	Flags      uint16
	Gear       byte
	PLID       byte
	Speed      float32
	RPM        float32
	Turbo      float32
	EngTemp    float32
	Fuel       float32
	OilPress   float32
	DashLights DashLights
	ShowLights DashLights
	Throttle   float32
	Brake      float32
	Clutch     float32
	Display1   string
	Display2   string

	// ID is present only when the broadcasting host tags its
	// datagrams (optional trailing u32, LFS 0.6X and later).
	ID    uint32
	HasID bool
}

const fixedSize = 4 + 4 + 2 + 1 + 1 + 4*9 + 4 + 4 + 16 + 16

func getFloat32(b []byte) float32 {
	return math.Float32frombits(uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24)
}

func putFloat32(b []byte, v float32) {
	u := math.Float32bits(v)
	b[0] = byte(u)
	b[1] = byte(u >> 8)
	b[2] = byte(u >> 16)
	b[3] = byte(u >> 24)
}

func trimNUL(b []byte) []byte {
	for i, c := range b {
		if c == 0 {
			return b[:i]
		}
	}
	return b
}

// Decode parses one OutGauge datagram. The trailing ID field is
// optional; raw must be at least the fixed-size prefix.
func Decode(raw []byte) (Packet, error) {
	var p Packet
	if len(raw) < fixedSize {
		return p, packet.Truncated{Type: "outgauge.Packet", Need: fixedSize, Got: len(raw)}
	}

	p.TimeMS = uint32(raw[0]) | uint32(raw[1])<<8 | uint32(raw[2])<<16 | uint32(raw[3])<<24
	copy(p.Car[:], raw[4:8])
	p.Flags = uint16(raw[8]) | uint16(raw[9])<<8
	p.Gear = raw[10]
	p.PLID = raw[11]

	off := 12
	getFloats := func(n int) []float32 {
		out := make([]float32, n)
		for i := range out {
			out[i] = getFloat32(raw[off : off+4])
			off += 4
		}
		return out
	}

	head := getFloats(6)
	p.Speed, p.RPM, p.Turbo, p.EngTemp, p.Fuel, p.OilPress = head[0], head[1], head[2], head[3], head[4], head[5]

	p.DashLights = DashLights(uint32(raw[off]) | uint32(raw[off+1])<<8 | uint32(raw[off+2])<<16 | uint32(raw[off+3])<<24)
	off += 4
	p.ShowLights = DashLights(uint32(raw[off]) | uint32(raw[off+1])<<8 | uint32(raw[off+2])<<16 | uint32(raw[off+3])<<24)
	off += 4

	pedals := getFloats(3)
	p.Throttle, p.Brake, p.Clutch = pedals[0], pedals[1], pedals[2]

	p.Display1 = codepage.ToLossyString(trimNUL(raw[off : off+16]))
	off += 16
	p.Display2 = codepage.ToLossyString(trimNUL(raw[off : off+16]))
	off += 16

	if len(raw) >= off+4 {
		p.ID = uint32(raw[off]) | uint32(raw[off+1])<<8 | uint32(raw[off+2])<<16 | uint32(raw[off+3])<<24
		p.HasID = true
	}
	return p, nil
}

// Encode renders p as an OutGauge datagram, omitting the trailing ID
// field unless HasID is set.
func (p Packet) Encode() []byte {
	size := fixedSize
	if p.HasID {
		size += 4
	}
	buf := make([]byte, size)

	buf[0], buf[1], buf[2], buf[3] = byte(p.TimeMS), byte(p.TimeMS>>8), byte(p.TimeMS>>16), byte(p.TimeMS>>24)
	copy(buf[4:8], p.Car[:])
	buf[8], buf[9] = byte(p.Flags), byte(p.Flags>>8)
	buf[10] = p.Gear
	buf[11] = p.PLID

	off := 12
	put := func(v float32) {
		putFloat32(buf[off:off+4], v)
		off += 4
	}
	put(p.Speed)
	put(p.RPM)
	put(p.Turbo)
	put(p.EngTemp)
	put(p.Fuel)
	put(p.OilPress)

	dl := uint32(p.DashLights)
	buf[off], buf[off+1], buf[off+2], buf[off+3] = byte(dl), byte(dl>>8), byte(dl>>16), byte(dl>>24)
	off += 4
	sl := uint32(p.ShowLights)
	buf[off], buf[off+1], buf[off+2], buf[off+3] = byte(sl), byte(sl>>8), byte(sl>>16), byte(sl>>24)
	off += 4

	put(p.Throttle)
	put(p.Brake)
	put(p.Clutch)

	copy(buf[off:off+16], (packet.FixedString{Width: 16}).Encode(p.Display1))
	off += 16
	copy(buf[off:off+16], (packet.FixedString{Width: 16}).Encode(p.Display2))
	off += 16

	if p.HasID {
		buf[off], buf[off+1], buf[off+2], buf[off+3] = byte(p.ID), byte(p.ID>>8), byte(p.ID>>16), byte(p.ID>>24)
	}
	return buf
}
