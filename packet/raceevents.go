package packet

// RaceStart announces a new race: lap/qualifying length, track, and
// weather/wind for the session that just began.
type RaceStart struct {
	ReqI        byte
	RaceLaps    byte
	QualMinutes byte
	NumPlayers  byte
	Track       Track
	Weather     byte
	Wind        byte
}

const raceStartSize = 16

func (p RaceStart) MarshalInsim(buf []byte) ([]byte, error) {
	buf = encodeHeader(buf, TypeRaceStart, p.ReqI, raceStartSize)
	buf = append(buf, p.RaceLaps, p.QualMinutes, p.NumPlayers, 0)
	buf = append(buf, p.Track[:]...)
	buf = append(buf, p.Weather, p.Wind, 0)
	return buf, nil
}

func (p *RaceStart) unmarshalInsim(body []byte) error {
	h, rest, err := decodeHeader(body, TypeRaceStart)
	if err != nil {
		return err
	}
	if len(rest) < raceStartSize-3 {
		return Truncated{Type: "RaceStart", Need: raceStartSize - 3, Got: len(rest)}
	}
	p.ReqI = h.ReqI
	p.RaceLaps, p.QualMinutes, p.NumPlayers = rest[0], rest[1], rest[2]
	copy(p.Track[:], rest[4:10])
	p.Weather, p.Wind = rest[10], rest[11]
	return nil
}

// RaceFlag announces a flag state change for one car (or the whole
// race when PLID is 0), mirroring the MessageOut companion text the
// host usually sends alongside it.
type RaceFlag struct {
	ReqI  byte
	PLID  byte
	OffOn byte
	Flag  RaceFlags
}

const raceFlagSize = 8

func (p RaceFlag) MarshalInsim(buf []byte) ([]byte, error) {
	buf = encodeHeader(buf, TypeRaceFlag, p.ReqI, raceFlagSize)
	buf = append(buf, p.PLID, p.OffOn, 0)
	var tmp [2]byte
	putUint16(tmp[:], uint16(p.Flag))
	buf = append(buf, tmp[:]...)
	return buf, nil
}

func (p *RaceFlag) unmarshalInsim(body []byte) error {
	h, rest, err := decodeHeader(body, TypeRaceFlag)
	if err != nil {
		return err
	}
	if len(rest) < raceFlagSize-3 {
		return Truncated{Type: "RaceFlag", Need: raceFlagSize - 3, Got: len(rest)}
	}
	p.ReqI = h.ReqI
	p.PLID, p.OffOn = rest[0], rest[1]
	p.Flag = RaceFlags(getUint16(rest[3:5]))
	return nil
}

// CarReset asks the host to reset one player's car to the pits.
type CarReset struct {
	ReqI byte
	PLID byte
}

const carResetSize = 4

func (p CarReset) MarshalInsim(buf []byte) ([]byte, error) {
	buf = encodeHeader(buf, TypeCarReset, p.ReqI, carResetSize)
	return append(buf, p.PLID), nil
}

func (p *CarReset) unmarshalInsim(body []byte) error {
	h, rest, err := decodeHeader(body, TypeCarReset)
	if err != nil {
		return err
	}
	if len(rest) < 1 {
		return Truncated{Type: "CarReset", Need: 1, Got: len(rest)}
	}
	p.ReqI = h.ReqI
	p.PLID = rest[0]
	return nil
}
