package packet

// Track identifies a circuit by its codepage-encoded short name. A
// trailing "R" marks the reversed layout, a trailing "X" marks the
// open-world configuration.
type Track [6]byte

func (t Track) String() string {
	return FixedString{Width: 6}.Decode(t[:])
}

func (t Track) Reversed() bool {
	s := t.String()
	return len(s) > 0 && s[len(s)-1] == 'R'
}

func (t Track) Open() bool {
	s := t.String()
	return len(s) > 0 && s[len(s)-1] == 'X'
}

// NewTrack encodes name (without trailing NULs) into a Track.
func NewTrack(name string) Track {
	var t Track
	copy(t[:], FixedString{Width: 6}.Encode(name))
	return t
}
