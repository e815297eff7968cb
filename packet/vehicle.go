package packet

import "fmt"

// Vehicle identifies a car either by its three-letter built-in short
// name or by a little-endian mod ID, per the overload rule in §3: if
// the first three bytes are ASCII alphanumeric and the fourth is 0,
// it's a built-in; otherwise the four bytes are a little-endian u32
// mod ID rendered as six uppercase hex digits.
type Vehicle [4]byte

// IsBuiltin reports whether v names a built-in car.
func (v Vehicle) IsBuiltin() bool {
	if v[3] != 0 || v[0] == 0 {
		return false
	}
	for _, c := range v[:3] {
		if c != 0 && !isAlphaNum(c) {
			return false
		}
	}
	return true
}

// IsMod reports whether v names a mod car. Always the complement of
// IsBuiltin.
func (v Vehicle) IsMod() bool {
	return !v.IsBuiltin()
}

func isAlphaNum(c byte) bool {
	switch {
	case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		return true
	}
	return false
}

// ModID returns the little-endian mod identifier. Only meaningful when
// IsMod reports true.
func (v Vehicle) ModID() uint32 {
	return getUint32(v[:])
}

// String renders the built-in short name, or the six-hex-digit mod ID.
func (v Vehicle) String() string {
	if v.IsBuiltin() {
		n := 3
		for n > 0 && v[n-1] == 0 {
			n--
		}
		return string(v[:n])
	}
	return fmt.Sprintf("%06X", v.ModID())
}
