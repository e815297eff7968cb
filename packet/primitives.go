package packet

import (
	"time"

	"github.com/lfsinsim/insim/codepage"
)

// Little-endian fixed-width integer helpers, following the manual
// shift-and-mask style used throughout the wire codec instead of
// encoding/binary, so every multi-byte field reads the same way next
// to the fixed-string and bitflag helpers around it.

func getUint16(b []byte) uint16 {
	return uint16(b[0]) | uint16(b[1])<<8
}

func putUint16(buf []byte, v uint16) {
	buf[0] = byte(v)
	buf[1] = byte(v >> 8)
}

func getUint32(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

func putUint32(buf []byte, v uint32) {
	buf[0] = byte(v)
	buf[1] = byte(v >> 8)
	buf[2] = byte(v >> 16)
	buf[3] = byte(v >> 24)
}

// FixedString encodes and decodes a fixed-width, NUL-padded, codepage
// string field such as the ones carried by NCN, NPL, or MTC bodies.
type FixedString struct {
	Width int
}

// Encode runs text through the codepage engine, truncates it to
// Width-1 bytes, and NUL-pads the result to exactly Width bytes.
func (f FixedString) Encode(text string) []byte {
	b := codepage.ToLossyBytes(text)
	if len(b) > f.Width-1 {
		b = b[:f.Width-1]
	}
	out := make([]byte, f.Width)
	copy(out, b)
	return out
}

// Decode reads up to the first NUL byte (or Width bytes, whichever
// comes first) and converts the result via the codepage engine.
func (f FixedString) Decode(raw []byte) string {
	if len(raw) > f.Width {
		raw = raw[:f.Width]
	}
	n := 0
	for n < len(raw) && raw[n] != 0 {
		n++
	}
	return codepage.ToLossyString(raw[:n])
}

// align4 rounds n up to the next multiple of 4, the packing rule some
// variable-width string fields use instead of a fixed declared width.
func align4(n int) int {
	if n%4 == 0 {
		return n
	}
	return n + (4 - n%4)
}

// DurationMS16 converts a 16-bit millisecond field to a time.Duration.
func DurationMS16(ms uint16) time.Duration { return time.Duration(ms) * time.Millisecond }

// DurationMS32 converts a 32-bit millisecond field to a time.Duration.
func DurationMS32(ms uint32) time.Duration { return time.Duration(ms) * time.Millisecond }

// ms16 converts a time.Duration back to a 16-bit millisecond count for
// outbound encoding, saturating at the field's capacity.
func ms16(d time.Duration) uint16 {
	ms := d.Milliseconds()
	if ms < 0 {
		return 0
	}
	if ms > 0xFFFF {
		return 0xFFFF
	}
	return uint16(ms)
}

func ms32(d time.Duration) uint32 {
	ms := d.Milliseconds()
	if ms < 0 {
		return 0
	}
	if ms > 0xFFFFFFFF {
		return 0xFFFFFFFF
	}
	return uint32(ms)
}
