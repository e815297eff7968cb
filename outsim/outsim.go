// Package outsim decodes the OutSim UDP telemetry packet LFS
// broadcasts independently of any InSim session: raw physics state
// (angular velocity, orientation, acceleration, velocity, position)
// sampled once per physics update. Like outgauge, it shares the
// primitive codecs with package packet but carries no connection-actor
// integration.
package outsim

import (
	"math"

	"github.com/lfsinsim/insim/packet"
)

// Vec3 is a little-endian float32 triple, used for the angular
// velocity, acceleration and velocity fields. The fixed-point
// position field is a separate [3]int32 (Packet.Pos).
type Vec3 struct {
	X, Y, Z float32
}

// Packet is one OutSim datagram. Pos is reported in 65536ths of a
// metre as three little-endian i32 values; use PosMetres to convert.
type Packet struct {
	TimeMS  uint32
	AngVel  Vec3
	Heading float32
	Pitch   float32
	Roll    float32
	Accel   Vec3
	Vel     Vec3
	Pos     [3]int32

	// ID is present only when the broadcasting host tags its
	// datagrams (optional trailing u32, LFS 0.6X and later).
	ID    uint32
	HasID bool
}

const fixedSize = 4 + 3*4 + 3*4 + 3*4 + 3*4 + 3*4

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

func getInt32(b []byte) int32 {
	return int32(uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24)
}

func putInt32(b []byte, v int32) {
	u := uint32(v)
	b[0] = byte(u)
	b[1] = byte(u >> 8)
	b[2] = byte(u >> 16)
	b[3] = byte(u >> 24)
}

func getVec3(b []byte) Vec3 {
	return Vec3{getFloat32(b[0:4]), getFloat32(b[4:8]), getFloat32(b[8:12])}
}

func putVec3(b []byte, v Vec3) {
	putFloat32(b[0:4], v.X)
	putFloat32(b[4:8], v.Y)
	putFloat32(b[8:12], v.Z)
}

// Decode parses one OutSim datagram. The trailing ID field is
// optional; raw must be at least the fixed-size prefix.
func Decode(raw []byte) (Packet, error) {
	var p Packet
	if len(raw) < fixedSize {
		return p, packet.Truncated{Type: "outsim.Packet", Need: fixedSize, Got: len(raw)}
	}

	p.TimeMS = uint32(raw[0]) | uint32(raw[1])<<8 | uint32(raw[2])<<16 | uint32(raw[3])<<24
	off := 4
	p.AngVel = getVec3(raw[off:])
	off += 12
	p.Heading = getFloat32(raw[off:])
	off += 4
	p.Pitch = getFloat32(raw[off:])
	off += 4
	p.Roll = getFloat32(raw[off:])
	off += 4
	p.Accel = getVec3(raw[off:])
	off += 12
	p.Vel = getVec3(raw[off:])
	off += 12
	p.Pos[0] = getInt32(raw[off:])
	p.Pos[1] = getInt32(raw[off+4:])
	p.Pos[2] = getInt32(raw[off+8:])
	off += 12

	if len(raw) >= off+4 {
		p.ID = uint32(raw[off]) | uint32(raw[off+1])<<8 | uint32(raw[off+2])<<16 | uint32(raw[off+3])<<24
		p.HasID = true
	}
	return p, nil
}

// Encode renders p as an OutSim datagram, omitting the trailing ID
// field unless HasID is set.
func (p Packet) Encode() []byte {
	size := fixedSize
	if p.HasID {
		size += 4
	}
	buf := make([]byte, size)

	buf[0], buf[1], buf[2], buf[3] = byte(p.TimeMS), byte(p.TimeMS>>8), byte(p.TimeMS>>16), byte(p.TimeMS>>24)
	off := 4
	putVec3(buf[off:], p.AngVel)
	off += 12
	putFloat32(buf[off:], p.Heading)
	off += 4
	putFloat32(buf[off:], p.Pitch)
	off += 4
	putFloat32(buf[off:], p.Roll)
	off += 4
	putVec3(buf[off:], p.Accel)
	off += 12
	putVec3(buf[off:], p.Vel)
	off += 12
	putInt32(buf[off:], p.Pos[0])
	putInt32(buf[off+4:], p.Pos[1])
	putInt32(buf[off+8:], p.Pos[2])
	off += 12

	if p.HasID {
		buf[off], buf[off+1], buf[off+2], buf[off+3] = byte(p.ID), byte(p.ID>>8), byte(p.ID>>16), byte(p.ID>>24)
	}
	return buf
}

// PosMetres converts the fixed-point Pos field to metres.
func (p Packet) PosMetres() (x, y, z float64) {
	const scale = 1.0 / 65536.0
	return float64(p.Pos[0]) * scale, float64(p.Pos[1]) * scale, float64(p.Pos[2]) * scale
}
