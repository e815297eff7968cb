package packet

import "time"

// Lap reports one completed lap for a car.
type Lap struct {
	ReqI        byte
	PLID        byte
	LapsDone    uint16
	LapTime     time.Duration
	TotalTime   time.Duration
	PenaltyTime time.Duration
	NumStops    byte
}

const lapSize = 20

func (p Lap) MarshalInsim(buf []byte) ([]byte, error) {
	buf = encodeHeader(buf, TypeLap, p.ReqI, lapSize)
	buf = append(buf, p.PLID, 0)
	var u16 [2]byte
	putUint16(u16[:], p.LapsDone)
	buf = append(buf, u16[:]...)
	var u32 [4]byte
	putUint32(u32[:], ms32(p.LapTime))
	buf = append(buf, u32[:]...)
	putUint32(u32[:], ms32(p.TotalTime))
	buf = append(buf, u32[:]...)
	putUint16(u16[:], ms16(p.PenaltyTime))
	buf = append(buf, u16[:]...)
	buf = append(buf, p.NumStops, 0, 0)
	return buf, nil
}

func (p *Lap) unmarshalInsim(body []byte) error {
	h, rest, err := decodeHeader(body, TypeLap)
	if err != nil {
		return err
	}
	if len(rest) < lapSize-3 {
		return Truncated{Type: "Lap", Need: lapSize - 3, Got: len(rest)}
	}
	p.ReqI = h.ReqI
	p.PLID = rest[0]
	p.LapsDone = getUint16(rest[2:4])
	p.LapTime = DurationMS32(getUint32(rest[4:8]))
	p.TotalTime = DurationMS32(getUint32(rest[8:12]))
	p.PenaltyTime = DurationMS16(getUint16(rest[12:14]))
	p.NumStops = rest[14]
	return nil
}

// SplitX reports an intermediate split time. Split is a 1-based split
// index.
type SplitX struct {
	ReqI      byte
	PLID      byte
	Split     byte
	SplitTime time.Duration
	TotalTime time.Duration
}

const splitXSize = 16

func (p SplitX) MarshalInsim(buf []byte) ([]byte, error) {
	buf = encodeHeader(buf, TypeSplitX, p.ReqI, splitXSize)
	buf = append(buf, p.PLID, p.Split, 0, 0)
	var u32 [4]byte
	putUint32(u32[:], ms32(p.SplitTime))
	buf = append(buf, u32[:]...)
	putUint32(u32[:], ms32(p.TotalTime))
	buf = append(buf, u32[:]...)
	buf = append(buf, 0)
	return buf, nil
}

func (p *SplitX) unmarshalInsim(body []byte) error {
	h, rest, err := decodeHeader(body, TypeSplitX)
	if err != nil {
		return err
	}
	if len(rest) < splitXSize-3 {
		return Truncated{Type: "SplitX", Need: splitXSize - 3, Got: len(rest)}
	}
	p.ReqI = h.ReqI
	p.PLID, p.Split = rest[0], rest[1]
	p.SplitTime = DurationMS32(getUint32(rest[4:8]))
	p.TotalTime = DurationMS32(getUint32(rest[8:12]))
	return nil
}

// PitStopStart announces a car entering the pit lane.
type PitStopStart struct {
	ReqI     byte
	PLID     byte
	LapsDone uint16
	Flags    uint16
	FuelAdd  byte
	Penalty  byte
	NumStops byte
}

const pitStopStartSize = 12

func (p PitStopStart) MarshalInsim(buf []byte) ([]byte, error) {
	buf = encodeHeader(buf, TypePitStopStart, p.ReqI, pitStopStartSize)
	buf = append(buf, p.PLID, 0)
	var u16 [2]byte
	putUint16(u16[:], p.LapsDone)
	buf = append(buf, u16[:]...)
	putUint16(u16[:], p.Flags)
	buf = append(buf, u16[:]...)
	buf = append(buf, p.FuelAdd, p.Penalty, p.NumStops)
	return buf, nil
}

func (p *PitStopStart) unmarshalInsim(body []byte) error {
	h, rest, err := decodeHeader(body, TypePitStopStart)
	if err != nil {
		return err
	}
	if len(rest) < pitStopStartSize-3 {
		return Truncated{Type: "PitStopStart", Need: pitStopStartSize - 3, Got: len(rest)}
	}
	p.ReqI = h.ReqI
	p.PLID = rest[0]
	p.LapsDone = getUint16(rest[2:4])
	p.Flags = getUint16(rest[4:6])
	p.FuelAdd, p.Penalty, p.NumStops = rest[6], rest[7], rest[8]
	return nil
}

// PitStopFinish reports how long a car spent in its pit stop.
type PitStopFinish struct {
	ReqI     byte
	PLID     byte
	StopTime time.Duration
}

const pitStopFinishSize = 12

func (p PitStopFinish) MarshalInsim(buf []byte) ([]byte, error) {
	buf = encodeHeader(buf, TypePitStopFinish, p.ReqI, pitStopFinishSize)
	buf = append(buf, p.PLID, 0, 0, 0, 0)
	var u32 [4]byte
	putUint32(u32[:], ms32(p.StopTime))
	buf = append(buf, u32[:]...)
	return buf, nil
}

func (p *PitStopFinish) unmarshalInsim(body []byte) error {
	h, rest, err := decodeHeader(body, TypePitStopFinish)
	if err != nil {
		return err
	}
	if len(rest) < pitStopFinishSize-3 {
		return Truncated{Type: "PitStopFinish", Need: pitStopFinishSize - 3, Got: len(rest)}
	}
	p.ReqI = h.ReqI
	p.PLID = rest[0]
	p.StopTime = DurationMS32(getUint32(rest[5:9]))
	return nil
}

// Penalty reports a time or position penalty change for one car.
type Penalty struct {
	ReqI    byte
	PLID    byte
	OldPen  byte
	NewPen  byte
	Reason  byte
}

const penaltySize = 8

func (p Penalty) MarshalInsim(buf []byte) ([]byte, error) {
	buf = encodeHeader(buf, TypePenalty, p.ReqI, penaltySize)
	buf = append(buf, p.PLID, p.OldPen, p.NewPen, p.Reason, 0)
	return buf, nil
}

func (p *Penalty) unmarshalInsim(body []byte) error {
	h, rest, err := decodeHeader(body, TypePenalty)
	if err != nil {
		return err
	}
	if len(rest) < penaltySize-3 {
		return Truncated{Type: "Penalty", Need: penaltySize - 3, Got: len(rest)}
	}
	p.ReqI = h.ReqI
	p.PLID, p.OldPen, p.NewPen, p.Reason = rest[0], rest[1], rest[2], rest[3]
	return nil
}

// Finish reports a car crossing the finish line.
type Finish struct {
	ReqI      byte
	PLID      byte
	TotalTime time.Duration
	NumStops  byte
	Confirm   byte
	LapsDone  uint16
}

const finishSize = 12

func (p Finish) MarshalInsim(buf []byte) ([]byte, error) {
	buf = encodeHeader(buf, TypeFinish, p.ReqI, finishSize)
	buf = append(buf, p.PLID)
	var u32 [4]byte
	putUint32(u32[:], ms32(p.TotalTime))
	buf = append(buf, u32[:]...)
	buf = append(buf, p.NumStops, p.Confirm)
	var u16 [2]byte
	putUint16(u16[:], p.LapsDone)
	buf = append(buf, u16[:]...)
	return buf, nil
}

func (p *Finish) unmarshalInsim(body []byte) error {
	h, rest, err := decodeHeader(body, TypeFinish)
	if err != nil {
		return err
	}
	if len(rest) < finishSize-3 {
		return Truncated{Type: "Finish", Need: finishSize - 3, Got: len(rest)}
	}
	p.ReqI = h.ReqI
	p.PLID = rest[0]
	p.TotalTime = DurationMS32(getUint32(rest[1:5]))
	p.NumStops, p.Confirm = rest[5], rest[6]
	p.LapsDone = getUint16(rest[7:9])
	return nil
}

// ResultEntry is one row of a final classification.
type ResultEntry struct {
	PLID      byte
	UName     string
	PName     string
	Plate     string
	Vehicle   Vehicle
	TotalTime time.Duration
	BestLap   time.Duration
}

const resultEntrySize = 72

func (e ResultEntry) marshal(buf []byte) []byte {
	buf = append(buf, e.PLID, 0, 0, 0)
	buf = append(buf, FixedString{Width: 24}.Encode(e.UName)...)
	buf = append(buf, FixedString{Width: 24}.Encode(e.PName)...)
	buf = append(buf, FixedString{Width: 8}.Encode(e.Plate)...)
	buf = append(buf, e.Vehicle[:]...)
	var u32 [4]byte
	putUint32(u32[:], ms32(e.TotalTime))
	buf = append(buf, u32[:]...)
	putUint32(u32[:], ms32(e.BestLap))
	buf = append(buf, u32[:]...)
	return buf
}

func (e *ResultEntry) unmarshal(raw []byte) {
	e.PLID = raw[0]
	e.UName = FixedString{Width: 24}.Decode(raw[4:28])
	e.PName = FixedString{Width: 24}.Decode(raw[28:52])
	e.Plate = FixedString{Width: 8}.Decode(raw[52:60])
	copy(e.Vehicle[:], raw[60:64])
	e.TotalTime = DurationMS32(getUint32(raw[64:68]))
	e.BestLap = DurationMS32(getUint32(raw[68:72]))
}

// Result carries the final classification as a variable-length vector
// of ResultEntry that runs to the end of the packet: the packet length,
// not NumP, sets how many entries are read. NumP is carried as-is and
// is not checked against len(Entries).
type Result struct {
	ReqI    byte
	NumP    byte
	Entries []ResultEntry
}

func (p Result) MarshalInsim(buf []byte) ([]byte, error) {
	total := 8 + len(p.Entries)*resultEntrySize
	if total > 1020 {
		return nil, FieldTooLarge{Field: "Result.Entries", Max: (1020 - 8) / resultEntrySize, Got: len(p.Entries)}
	}
	buf = encodeHeader(buf, TypeResult, p.ReqI, total)
	buf = append(buf, p.NumP, 0, 0, 0, 0)
	for _, e := range p.Entries {
		buf = e.marshal(buf)
	}
	return buf, nil
}

func (p *Result) unmarshalInsim(body []byte) error {
	h, rest, err := decodeHeader(body, TypeResult)
	if err != nil {
		return err
	}
	if len(rest) < 5 {
		return Truncated{Type: "Result", Need: 5, Got: len(rest)}
	}
	p.ReqI = h.ReqI
	p.NumP = rest[0]
	entries := rest[5:]
	count := len(entries) / resultEntrySize
	p.Entries = make([]ResultEntry, count)
	for i := 0; i < count; i++ {
		p.Entries[i].unmarshal(entries[i*resultEntrySize : (i+1)*resultEntrySize])
	}
	return nil
}
