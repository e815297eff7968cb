package packet

// NewConnection announces a new guest connection to the host. UCID 0
// never appears here — host connections do not generate NCN.
type NewConnection struct {
	ReqI  byte
	UCID  byte
	UName string
	PName string
	Admin byte
	Total byte
	Flags byte
}

const newConnectionSize = 56

func (p NewConnection) MarshalInsim(buf []byte) ([]byte, error) {
	buf = encodeHeader(buf, TypeNewConnection, p.ReqI, newConnectionSize)
	buf = append(buf, p.UCID)
	buf = append(buf, FixedString{Width: 24}.Encode(p.UName)...)
	buf = append(buf, FixedString{Width: 24}.Encode(p.PName)...)
	buf = append(buf, p.Admin, p.Total, p.Flags, 0)
	return buf, nil
}

func (p *NewConnection) unmarshalInsim(body []byte) error {
	h, rest, err := decodeHeader(body, TypeNewConnection)
	if err != nil {
		return err
	}
	if len(rest) < newConnectionSize-3 {
		return Truncated{Type: "NewConnection", Need: newConnectionSize - 3, Got: len(rest)}
	}
	p.ReqI = h.ReqI
	p.UCID = rest[0]
	p.UName = FixedString{Width: 24}.Decode(rest[1:25])
	p.PName = FixedString{Width: 24}.Decode(rest[25:49])
	p.Admin, p.Total, p.Flags = rest[49], rest[50], rest[51]
	return nil
}

// ConnectionLeave announces a guest connection dropping.
type ConnectionLeave struct {
	ReqI   byte
	UCID   byte
	Reason byte
	Total  byte
}

const connectionLeaveSize = 8

func (p ConnectionLeave) MarshalInsim(buf []byte) ([]byte, error) {
	buf = encodeHeader(buf, TypeConnectionLeave, p.ReqI, connectionLeaveSize)
	return append(buf, p.UCID, p.Reason, p.Total, 0, 0), nil
}

func (p *ConnectionLeave) unmarshalInsim(body []byte) error {
	h, rest, err := decodeHeader(body, TypeConnectionLeave)
	if err != nil {
		return err
	}
	if len(rest) < connectionLeaveSize-3 {
		return Truncated{Type: "ConnectionLeave", Need: connectionLeaveSize - 3, Got: len(rest)}
	}
	p.ReqI = h.ReqI
	p.UCID, p.Reason, p.Total = rest[0], rest[1], rest[2]
	return nil
}

// NewPlayer announces a car joining the track.
type NewPlayer struct {
	ReqI    byte
	PLID    byte
	UCID    byte
	PType   byte
	Flags   uint16
	PName   string
	Plate   string
	Vehicle Vehicle
	Tyres   [4]byte
	HMass   byte
	HTRes   byte
	Model   byte
	Pass    byte
	NumP    byte
}

const newPlayerSize = 56

func (p NewPlayer) MarshalInsim(buf []byte) ([]byte, error) {
	buf = encodeHeader(buf, TypeNewPlayer, p.ReqI, newPlayerSize)
	buf = append(buf, p.PLID, p.UCID, p.PType, 0)
	var tmp [2]byte
	putUint16(tmp[:], p.Flags)
	buf = append(buf, tmp[:]...)
	buf = append(buf, FixedString{Width: 24}.Encode(p.PName)...)
	buf = append(buf, FixedString{Width: 8}.Encode(p.Plate)...)
	buf = append(buf, p.Vehicle[:]...)
	buf = append(buf, p.Tyres[:]...)
	buf = append(buf, p.HMass, p.HTRes, p.Model, p.Pass, p.NumP, 0, 0)
	return buf, nil
}

func (p *NewPlayer) unmarshalInsim(body []byte) error {
	h, rest, err := decodeHeader(body, TypeNewPlayer)
	if err != nil {
		return err
	}
	if len(rest) < newPlayerSize-3 {
		return Truncated{Type: "NewPlayer", Need: newPlayerSize - 3, Got: len(rest)}
	}
	p.ReqI = h.ReqI
	p.PLID, p.UCID, p.PType = rest[0], rest[1], rest[2]
	p.Flags = getUint16(rest[4:6])
	p.PName = FixedString{Width: 24}.Decode(rest[6:30])
	p.Plate = FixedString{Width: 8}.Decode(rest[30:38])
	copy(p.Vehicle[:], rest[38:42])
	copy(p.Tyres[:], rest[42:46])
	p.HMass, p.HTRes, p.Model, p.Pass, p.NumP = rest[46], rest[47], rest[48], rest[49], rest[50]
	return nil
}

// PlayerLeave announces a car leaving the track (without necessarily
// disconnecting).
type PlayerLeave struct {
	ReqI byte
	PLID byte
}

const playerLeaveSize = 4

func (p PlayerLeave) MarshalInsim(buf []byte) ([]byte, error) {
	buf = encodeHeader(buf, TypePlayerLeave, p.ReqI, playerLeaveSize)
	return append(buf, p.PLID), nil
}

func (p *PlayerLeave) unmarshalInsim(body []byte) error {
	h, rest, err := decodeHeader(body, TypePlayerLeave)
	if err != nil {
		return err
	}
	if len(rest) < 1 {
		return Truncated{Type: "PlayerLeave", Need: 1, Got: len(rest)}
	}
	p.ReqI = h.ReqI
	p.PLID = rest[0]
	return nil
}

// PlayerPits announces a car entering the pit garage (not the pit
// lane; see PitStopStart for that).
type PlayerPits struct {
	ReqI byte
	PLID byte
}

const playerPitsSize = 4

func (p PlayerPits) MarshalInsim(buf []byte) ([]byte, error) {
	buf = encodeHeader(buf, TypePlayerPits, p.ReqI, playerPitsSize)
	return append(buf, p.PLID), nil
}

func (p *PlayerPits) unmarshalInsim(body []byte) error {
	h, rest, err := decodeHeader(body, TypePlayerPits)
	if err != nil {
		return err
	}
	if len(rest) < 1 {
		return Truncated{Type: "PlayerPits", Need: 1, Got: len(rest)}
	}
	p.ReqI = h.ReqI
	p.PLID = rest[0]
	return nil
}

// PlayerFlags reports a change in a car's help-flag set (e.g.
// auto-gears, stability control).
type PlayerFlags struct {
	ReqI  byte
	PLID  byte
	Flags uint16
}

const playerFlagsSize = 8

func (p PlayerFlags) MarshalInsim(buf []byte) ([]byte, error) {
	buf = encodeHeader(buf, TypePlayerFlags, p.ReqI, playerFlagsSize)
	buf = append(buf, p.PLID, 0)
	var tmp [2]byte
	putUint16(tmp[:], p.Flags)
	buf = append(buf, tmp[:]...)
	buf = append(buf, 0)
	return buf, nil
}

func (p *PlayerFlags) unmarshalInsim(body []byte) error {
	h, rest, err := decodeHeader(body, TypePlayerFlags)
	if err != nil {
		return err
	}
	if len(rest) < playerFlagsSize-3 {
		return Truncated{Type: "PlayerFlags", Need: playerFlagsSize - 3, Got: len(rest)}
	}
	p.ReqI = h.ReqI
	p.PLID = rest[0]
	p.Flags = getUint16(rest[2:4])
	return nil
}

// Reorder reports the current running order as an ordered list of
// PLIDs. Only the first NumP entries of PLID are meaningful.
type Reorder struct {
	ReqI byte
	NumP byte
	PLID [40]byte
}

const reorderSize = 44

func (p Reorder) MarshalInsim(buf []byte) ([]byte, error) {
	buf = encodeHeader(buf, TypeReorder, p.ReqI, reorderSize)
	buf = append(buf, p.NumP)
	buf = append(buf, p.PLID[:]...)
	return buf, nil
}

func (p *Reorder) unmarshalInsim(body []byte) error {
	h, rest, err := decodeHeader(body, TypeReorder)
	if err != nil {
		return err
	}
	if len(rest) < reorderSize-3 {
		return Truncated{Type: "Reorder", Need: reorderSize - 3, Got: len(rest)}
	}
	p.ReqI = h.ReqI
	p.NumP = rest[0]
	copy(p.PLID[:], rest[1:41])
	return nil
}
