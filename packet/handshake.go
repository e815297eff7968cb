package packet

// InitFlags controls which asynchronous packet streams the host turns
// on for this connection, set on the outbound Init.
type InitFlags uint16

const (
	InitFlagMCI      InitFlags = 1 << iota // stream MultiCarInfo
	InitFlagCon                            // stream NewConnection/ConnectionLeave
	InitFlagOBH                            // stream ObjectHit
	InitFlagNLP                            // stream NodeLap
	InitFlagLocal                          // receive packets for the local player too
)

func (f InitFlags) MCI() bool   { return f&InitFlagMCI != 0 }
func (f InitFlags) Con() bool   { return f&InitFlagCon != 0 }
func (f InitFlags) OBH() bool   { return f&InitFlagOBH != 0 }
func (f InitFlags) NLP() bool   { return f&InitFlagNLP != 0 }
func (f InitFlags) Local() bool { return f&InitFlagLocal != 0 }

// Init is the client-to-server handshake packet. Version is the
// highest InSim version the client speaks; IntervalMS must be 0 or in
// [50, 8000]; Prefix of 0 disables chat-command flagging.
type Init struct {
	ReqI       byte
	UDPPort    uint16
	Flags      InitFlags
	Version    byte
	Prefix     byte
	IntervalMS uint16
	Password   [16]byte
	IName      string
}

const initSize = 44

func (p *Init) MarshalInsim(buf []byte) ([]byte, error) {
	if p.IntervalMS != 0 && (p.IntervalMS < 50 || p.IntervalMS > 8000) {
		return nil, FieldTooLarge{Field: "Init.IntervalMS", Max: 8000, Got: int(p.IntervalMS)}
	}
	buf = encodeHeader(buf, TypeInit, p.ReqI, initSize)
	buf = append(buf, 0) // alignment pad
	var tmp [2]byte
	putUint16(tmp[:], p.UDPPort)
	buf = append(buf, tmp[:]...)
	putUint16(tmp[:], uint16(p.Flags))
	buf = append(buf, tmp[:]...)
	buf = append(buf, p.Version, p.Prefix)
	putUint16(tmp[:], p.IntervalMS)
	buf = append(buf, tmp[:]...)
	buf = append(buf, p.Password[:]...)
	buf = append(buf, FixedString{Width: 16}.Encode(p.IName)...)
	return buf, nil
}

func (p *Init) unmarshalInsim(body []byte) error {
	h, rest, err := decodeHeader(body, TypeInit)
	if err != nil {
		return err
	}
	if len(rest) < initSize-3 {
		return Truncated{Type: "Init", Need: initSize - 3, Got: len(rest)}
	}
	p.ReqI = h.ReqI
	rest = rest[1:] // skip alignment pad
	p.UDPPort = getUint16(rest)
	p.Flags = InitFlags(getUint16(rest[2:]))
	p.Version = rest[4]
	p.Prefix = rest[5]
	p.IntervalMS = getUint16(rest[6:])
	copy(p.Password[:], rest[8:24])
	p.IName = FixedString{Width: 16}.Decode(rest[24:40])
	return nil
}

// Version is the server's handshake reply. InSimVersion is the
// protocol revision the server actually implements.
type Version struct {
	ReqI         byte
	Product      string
	Version      string
	InSimVersion uint8
}

const versionSize = 20

func (p *Version) MarshalInsim(buf []byte) ([]byte, error) {
	buf = encodeHeader(buf, TypeVersion, p.ReqI, versionSize)
	buf = append(buf, 0)
	buf = append(buf, FixedString{Width: 6}.Encode(p.Product)...)
	buf = append(buf, FixedString{Width: 8}.Encode(p.Version)...)
	buf = append(buf, p.InSimVersion, 0)
	return buf, nil
}

func (p *Version) unmarshalInsim(body []byte) error {
	h, rest, err := decodeHeader(body, TypeVersion)
	if err != nil {
		return err
	}
	if len(rest) < versionSize-3 {
		return Truncated{Type: "Version", Need: versionSize - 3, Got: len(rest)}
	}
	p.ReqI = h.ReqI
	rest = rest[1:]
	p.Product = FixedString{Width: 6}.Decode(rest[:6])
	p.Version = FixedString{Width: 8}.Decode(rest[6:14])
	p.InSimVersion = rest[14]
	return nil
}
