package packet

// ObjectInfo describes one placed layout object: position, height,
// flags, a type index into the object palette, and a heading.
type ObjectInfo struct {
	X, Y    int16
	Z       byte
	Flags   byte
	Index   byte
	Heading byte
}

const objectInfoSize = 8

func (o ObjectInfo) marshal(buf []byte) []byte {
	var u16 [2]byte
	putUint16(u16[:], uint16(o.X))
	buf = append(buf, u16[:]...)
	putUint16(u16[:], uint16(o.Y))
	buf = append(buf, u16[:]...)
	return append(buf, o.Z, o.Flags, o.Index, o.Heading)
}

func (o *ObjectInfo) unmarshal(raw []byte) {
	o.X = int16(getUint16(raw[0:2]))
	o.Y = int16(getUint16(raw[2:4]))
	o.Z, o.Flags, o.Index, o.Heading = raw[4], raw[5], raw[6], raw[7]
}

// AutocrossInfo reports the currently loaded layout's checkpoint and
// object counts alongside its filename.
type AutocrossInfo struct {
	ReqI    byte
	NumCP   byte
	NumObj  uint16
	LName   string
}

const autocrossInfoSize = 40

func (p AutocrossInfo) MarshalInsim(buf []byte) ([]byte, error) {
	buf = encodeHeader(buf, TypeAutocrossInfo, p.ReqI, autocrossInfoSize)
	buf = append(buf, p.NumCP, 0)
	var u16 [2]byte
	putUint16(u16[:], p.NumObj)
	buf = append(buf, u16[:]...)
	buf = append(buf, FixedString{Width: 32}.Encode(p.LName)...)
	buf = append(buf, 0)
	return buf, nil
}

func (p *AutocrossInfo) unmarshalInsim(body []byte) error {
	h, rest, err := decodeHeader(body, TypeAutocrossInfo)
	if err != nil {
		return err
	}
	if len(rest) < autocrossInfoSize-3 {
		return Truncated{Type: "AutocrossInfo", Need: autocrossInfoSize - 3, Got: len(rest)}
	}
	p.ReqI = h.ReqI
	p.NumCP = rest[0]
	p.NumObj = getUint16(rest[2:4])
	p.LName = FixedString{Width: 32}.Decode(rest[4:36])
	return nil
}

// AutocrossObjectAction distinguishes single-object edits from a bulk
// replace, the same discriminant value feeding both AXO and AXM.
type AutocrossObjectAction byte

const (
	AutocrossAdd AutocrossObjectAction = iota
	AutocrossRemove
	AutocrossClear
)

// AutocrossObject edits one or more layout objects in a single
// operation: Add/Remove for AXO, Clear (with Objects empty) or a bulk
// Add for AXM.
type AutocrossObject struct {
	ReqI    byte
	Action  AutocrossObjectAction
	Objects []ObjectInfo
}

const autocrossObjectPrefix = 8

func (p AutocrossObject) marshalAs(t TypeID, buf []byte) ([]byte, error) {
	total := autocrossObjectPrefix + len(p.Objects)*objectInfoSize
	if total > 1020 {
		return nil, FieldTooLarge{Field: "AutocrossObject.Objects", Max: (1020 - autocrossObjectPrefix) / objectInfoSize, Got: len(p.Objects)}
	}
	buf = encodeHeader(buf, t, p.ReqI, total)
	buf = append(buf, byte(len(p.Objects)), byte(p.Action), 0, 0, 0)
	for _, o := range p.Objects {
		buf = o.marshal(buf)
	}
	return buf, nil
}

func (p *AutocrossObject) unmarshalAs(t TypeID, body []byte) error {
	h, rest, err := decodeHeader(body, t)
	if err != nil {
		return err
	}
	if len(rest) < 5 {
		return Truncated{Type: t.String(), Need: 5, Got: len(rest)}
	}
	p.ReqI = h.ReqI
	numO := int(rest[0])
	p.Action = AutocrossObjectAction(rest[1])
	entries := rest[5:]
	if len(entries) < numO*objectInfoSize {
		return Truncated{Type: t.String(), Need: numO * objectInfoSize, Got: len(entries)}
	}
	p.Objects = make([]ObjectInfo, numO)
	for i := 0; i < numO; i++ {
		p.Objects[i].unmarshal(entries[i*objectInfoSize : (i+1)*objectInfoSize])
	}
	return nil
}

// AXO is the single-object-edit wire variant of AutocrossObject.
type AXO AutocrossObject

func (p AXO) MarshalInsim(buf []byte) ([]byte, error) {
	return AutocrossObject(p).marshalAs(TypeAutocrossObject, buf)
}
func (p *AXO) unmarshalInsim(body []byte) error {
	return (*AutocrossObject)(p).unmarshalAs(TypeAutocrossObject, body)
}

// AXM is the bulk-edit wire variant of AutocrossObject.
type AXM AutocrossObject

func (p AXM) MarshalInsim(buf []byte) ([]byte, error) {
	return AutocrossObject(p).marshalAs(TypeAutocrossMultiple, buf)
}
func (p *AXM) unmarshalInsim(body []byte) error {
	return (*AutocrossObject)(p).unmarshalAs(TypeAutocrossMultiple, body)
}

// ObjectHit reports a car striking a layout object.
type ObjectHit struct {
	ReqI   byte
	PLID   byte
	Info   ObjectInfo
	Flags  byte
}

const objectHitSize = 16

func (p ObjectHit) MarshalInsim(buf []byte) ([]byte, error) {
	buf = encodeHeader(buf, TypeObjectHit, p.ReqI, objectHitSize)
	buf = append(buf, p.PLID, 0)
	buf = p.Info.marshal(buf)
	buf = append(buf, p.Flags, 0, 0)
	return buf, nil
}

func (p *ObjectHit) unmarshalInsim(body []byte) error {
	h, rest, err := decodeHeader(body, TypeObjectHit)
	if err != nil {
		return err
	}
	if len(rest) < objectHitSize-3 {
		return Truncated{Type: "ObjectHit", Need: objectHitSize - 3, Got: len(rest)}
	}
	p.ReqI = h.ReqI
	p.PLID = rest[0]
	p.Info.unmarshal(rest[2:10])
	p.Flags = rest[10]
	return nil
}

// TTCType discriminates the layout-editor selection-control family.
type TTCType byte

const (
	TTCNone TTCType = iota
	TTCSel
	TTCSelStart
	TTCSelStop
)

// TargetToConnection drives the layout editor's object-selection
// cursor for one connection: Size, Type, ReqI, SubT, UCID, B1, B2, B3.
type TargetToConnection struct {
	ReqI     byte
	SubT     TTCType
	UCID     byte
	B1       byte
	B2       byte
	B3       byte
}

const targetToConnectionSize = 8

func (p TargetToConnection) MarshalInsim(buf []byte) ([]byte, error) {
	buf = encodeHeader(buf, TypeTargetToConnection, p.ReqI, targetToConnectionSize)
	return append(buf, byte(p.SubT), p.UCID, p.B1, p.B2, p.B3), nil
}

func (p *TargetToConnection) unmarshalInsim(body []byte) error {
	h, rest, err := decodeHeader(body, TypeTargetToConnection)
	if err != nil {
		return err
	}
	if len(rest) < 5 {
		return Truncated{Type: "TargetToConnection", Need: 5, Got: len(rest)}
	}
	p.ReqI = h.ReqI
	p.SubT = TTCType(rest[0])
	p.UCID, p.B1, p.B2, p.B3 = rest[1], rest[2], rest[3], rest[4]
	return nil
}
