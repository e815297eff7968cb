package packet

// SmallType discriminates the Small family's u32 payload.
type SmallType uint8

const (
	SmallNone SmallType = iota
	SmallVoteAnswer
	SmallVoteResult
	SmallTimeStop
	SmallTimeRestart
	SmallResetToPits
	SmallNodeLapInterval
	SmallAllowedCarsMask
	SmallLightsControl
	SmallCustomQuery
)

func (t SmallType) String() string {
	names := [...]string{
		"None", "VoteAnswer", "VoteResult", "TimeStop", "TimeRestart",
		"ResetToPits", "NodeLapInterval", "AllowedCarsMask",
		"LightsControl", "CustomQuery",
	}
	if int(t) < len(names) {
		return names[t]
	}
	return "SmallType(" + itoa(uint8(t)) + ")"
}

// Small carries one u32 value, subtype-discriminated: Size, Type,
// ReqI, SubT, Value.
type Small struct {
	ReqI  byte
	SubT  SmallType
	Value uint32
}

const smallSize = 8

func (p Small) MarshalInsim(buf []byte) ([]byte, error) {
	buf = encodeHeader(buf, TypeSmall, p.ReqI, smallSize)
	buf = append(buf, byte(p.SubT), 0, 0, 0, 0)
	putUint32(buf[len(buf)-4:], p.Value)
	return buf, nil
}

func (p *Small) unmarshalInsim(body []byte) error {
	h, rest, err := decodeHeader(body, TypeSmall)
	if err != nil {
		return err
	}
	if len(rest) < 5 {
		return Truncated{Type: "Small", Need: 5, Got: len(rest)}
	}
	p.ReqI = h.ReqI
	p.SubT = SmallType(rest[0])
	p.Value = getUint32(rest[1:5])
	return nil
}
