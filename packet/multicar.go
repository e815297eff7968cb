package packet

// CompCar is one car's position report inside a MultiCarInfo packet.
// X, Y, Z are raw LFS distance units (see DistanceToM); Speed is a raw
// LFS speed unit (see SpeedToKMH).
type CompCar struct {
	Node      uint16
	Lap       uint16
	PLID      byte
	Position  byte
	Flags     byte
	X, Y, Z   int32
	Speed     uint16
	Direction uint16
	Heading   uint16
	AngVel    int16
}

const compCarSize = 28

func (c CompCar) marshal(buf []byte) []byte {
	var u16 [2]byte
	putUint16(u16[:], c.Node)
	buf = append(buf, u16[:]...)
	putUint16(u16[:], c.Lap)
	buf = append(buf, u16[:]...)
	buf = append(buf, c.PLID, c.Position, c.Flags, 0)
	var u32 [4]byte
	putUint32(u32[:], uint32(c.X))
	buf = append(buf, u32[:]...)
	putUint32(u32[:], uint32(c.Y))
	buf = append(buf, u32[:]...)
	putUint32(u32[:], uint32(c.Z))
	buf = append(buf, u32[:]...)
	putUint16(u16[:], c.Speed)
	buf = append(buf, u16[:]...)
	putUint16(u16[:], c.Direction)
	buf = append(buf, u16[:]...)
	putUint16(u16[:], c.Heading)
	buf = append(buf, u16[:]...)
	putUint16(u16[:], uint16(c.AngVel))
	buf = append(buf, u16[:]...)
	return buf
}

func (c *CompCar) unmarshal(raw []byte) {
	c.Node = getUint16(raw[0:2])
	c.Lap = getUint16(raw[2:4])
	c.PLID, c.Position, c.Flags = raw[4], raw[5], raw[6]
	c.X = int32(getUint32(raw[8:12]))
	c.Y = int32(getUint32(raw[12:16]))
	c.Z = int32(getUint32(raw[16:20]))
	c.Speed = getUint16(raw[20:22])
	c.Direction = getUint16(raw[22:24])
	c.Heading = getUint16(raw[24:26])
	c.AngVel = int16(getUint16(raw[26:28]))
}

// MultiCarInfo streams every car's position at Config.IntervalMS,
// optionally over the UDP side-channel advertised in Init.UDPPort.
type MultiCarInfo struct {
	ReqI byte
	Cars []CompCar
}

const multiCarInfoPrefix = 8

func (p MultiCarInfo) MarshalInsim(buf []byte) ([]byte, error) {
	total := multiCarInfoPrefix + len(p.Cars)*compCarSize
	if total > 1020 {
		return nil, FieldTooLarge{Field: "MultiCarInfo.Cars", Max: (1020 - multiCarInfoPrefix) / compCarSize, Got: len(p.Cars)}
	}
	buf = encodeHeader(buf, TypeMultiCarInfo, p.ReqI, total)
	buf = append(buf, byte(len(p.Cars)), 0, 0, 0, 0)
	for _, c := range p.Cars {
		buf = c.marshal(buf)
	}
	return buf, nil
}

func (p *MultiCarInfo) unmarshalInsim(body []byte) error {
	h, rest, err := decodeHeader(body, TypeMultiCarInfo)
	if err != nil {
		return err
	}
	if len(rest) < 5 {
		return Truncated{Type: "MultiCarInfo", Need: 5, Got: len(rest)}
	}
	p.ReqI = h.ReqI
	numC := int(rest[0])
	entries := rest[5:]
	if len(entries) < numC*compCarSize {
		return Truncated{Type: "MultiCarInfo", Need: numC * compCarSize, Got: len(entries)}
	}
	p.Cars = make([]CompCar, numC)
	for i := 0; i < numC; i++ {
		p.Cars[i].unmarshal(entries[i*compCarSize : (i+1)*compCarSize])
	}
	return nil
}

// NodeLapInfo is one car's track-position report inside a NodeLap
// packet, coarser than CompCar but cheaper to stream at high rate.
type NodeLapInfo struct {
	Node     uint16
	Lap      uint16
	PLID     byte
	Position byte
}

const nodeLapInfoSize = 8

func (n NodeLapInfo) marshal(buf []byte) []byte {
	var u16 [2]byte
	putUint16(u16[:], n.Node)
	buf = append(buf, u16[:]...)
	putUint16(u16[:], n.Lap)
	buf = append(buf, u16[:]...)
	buf = append(buf, n.PLID, n.Position, 0, 0)
	return buf
}

func (n *NodeLapInfo) unmarshal(raw []byte) {
	n.Node = getUint16(raw[0:2])
	n.Lap = getUint16(raw[2:4])
	n.PLID, n.Position = raw[4], raw[5]
}

// NodeLap streams every car's node/lap position, the lighter-weight
// companion to MultiCarInfo.
type NodeLap struct {
	ReqI  byte
	Infos []NodeLapInfo
}

const nodeLapPrefix = 8

func (p NodeLap) MarshalInsim(buf []byte) ([]byte, error) {
	total := nodeLapPrefix + len(p.Infos)*nodeLapInfoSize
	if total > 1020 {
		return nil, FieldTooLarge{Field: "NodeLap.Infos", Max: (1020 - nodeLapPrefix) / nodeLapInfoSize, Got: len(p.Infos)}
	}
	buf = encodeHeader(buf, TypeNodeLap, p.ReqI, total)
	buf = append(buf, byte(len(p.Infos)), 0, 0, 0, 0)
	for _, n := range p.Infos {
		buf = n.marshal(buf)
	}
	return buf, nil
}

func (p *NodeLap) unmarshalInsim(body []byte) error {
	h, rest, err := decodeHeader(body, TypeNodeLap)
	if err != nil {
		return err
	}
	if len(rest) < 5 {
		return Truncated{Type: "NodeLap", Need: 5, Got: len(rest)}
	}
	p.ReqI = h.ReqI
	numP := int(rest[0])
	entries := rest[5:]
	if len(entries) < numP*nodeLapInfoSize {
		return Truncated{Type: "NodeLap", Need: numP * nodeLapInfoSize, Got: len(entries)}
	}
	p.Infos = make([]NodeLapInfo, numP)
	for i := 0; i < numP; i++ {
		p.Infos[i].unmarshal(entries[i*nodeLapInfoSize : (i+1)*nodeLapInfoSize])
	}
	return nil
}
