package packet

import "time"

// ReplayInformationPacket reports the state of a single-player replay
// in progress, exposed per the module's explicit mention; parsing
// recorded replay files themselves stays out of scope.
type ReplayInformationPacket struct {
	ReqI        byte
	Error       byte
	Multiplayer byte
	Paused      byte
	Options     byte
	CurrentTime time.Duration
	TotalTime   time.Duration
	RName       string
}

const replayInformationSize = 80

func (p ReplayInformationPacket) MarshalInsim(buf []byte) ([]byte, error) {
	buf = encodeHeader(buf, TypeReplayInformation, p.ReqI, replayInformationSize)
	buf = append(buf, p.Error, p.Multiplayer, p.Paused, p.Options)
	var u32 [4]byte
	putUint32(u32[:], ms32(p.CurrentTime))
	buf = append(buf, u32[:]...)
	putUint32(u32[:], ms32(p.TotalTime))
	buf = append(buf, u32[:]...)
	buf = append(buf, FixedString{Width: 64}.Encode(p.RName)...)
	buf = append(buf, 0)
	return buf, nil
}

func (p *ReplayInformationPacket) unmarshalInsim(body []byte) error {
	h, rest, err := decodeHeader(body, TypeReplayInformation)
	if err != nil {
		return err
	}
	if len(rest) < replayInformationSize-3 {
		return Truncated{Type: "ReplayInformationPacket", Need: replayInformationSize - 3, Got: len(rest)}
	}
	p.ReqI = h.ReqI
	p.Error, p.Multiplayer, p.Paused, p.Options = rest[0], rest[1], rest[2], rest[3]
	p.CurrentTime = DurationMS32(getUint32(rest[4:8]))
	p.TotalTime = DurationMS32(getUint32(rest[8:12]))
	p.RName = FixedString{Width: 64}.Decode(rest[12:76])
	return nil
}
