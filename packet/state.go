package packet

// RaceFlags reports the active race conditions carried by State and
// RaceFlag packets.
type RaceFlags uint16

const (
	RaceFlagCaution RaceFlags = 1 << iota
	RaceFlagYellow
	RaceFlagSafetyCar
	RaceFlagCanLeavePits
	RaceFlagQualifying
	RaceFlagRestarted
)

func (f RaceFlags) Caution() bool      { return f&RaceFlagCaution != 0 }
func (f RaceFlags) Yellow() bool       { return f&RaceFlagYellow != 0 }
func (f RaceFlags) SafetyCar() bool    { return f&RaceFlagSafetyCar != 0 }
func (f RaceFlags) CanLeavePits() bool { return f&RaceFlagCanLeavePits != 0 }
func (f RaceFlags) Qualifying() bool   { return f&RaceFlagQualifying != 0 }
func (f RaceFlags) Restarted() bool    { return f&RaceFlagRestarted != 0 }

// State is the periodic server snapshot: race flags, current view,
// player/connection counts, track, and weather/wind.
type State struct {
	ReqI           byte
	Flags          RaceFlags
	InGameCam      byte
	ViewPLID       byte
	NumPlayers     byte
	NumConns       byte
	NumFinished    byte
	RaceInProgress byte
	QualMinutes    byte
	RaceLaps       byte
	Track          Track
	Weather        byte
	Wind           byte
}

const stateSize = 28

func (p State) MarshalInsim(buf []byte) ([]byte, error) {
	buf = encodeHeader(buf, TypeState, p.ReqI, stateSize)
	buf = append(buf, 0, 0)
	var tmp [2]byte
	putUint16(tmp[:], uint16(p.Flags))
	buf = append(buf, tmp[:]...)
	buf = append(buf, p.InGameCam, p.ViewPLID, p.NumPlayers, p.NumConns,
		p.NumFinished, p.RaceInProgress, p.QualMinutes, p.RaceLaps)
	buf = append(buf, p.Track[:]...)
	buf = append(buf, p.Weather, p.Wind, 0, 0, 0, 0, 0)
	return buf, nil
}

func (p *State) unmarshalInsim(body []byte) error {
	h, rest, err := decodeHeader(body, TypeState)
	if err != nil {
		return err
	}
	if len(rest) < stateSize-3 {
		return Truncated{Type: "State", Need: stateSize - 3, Got: len(rest)}
	}
	p.ReqI = h.ReqI
	rest = rest[2:]
	p.Flags = RaceFlags(getUint16(rest))
	rest = rest[2:]
	p.InGameCam, p.ViewPLID, p.NumPlayers, p.NumConns = rest[0], rest[1], rest[2], rest[3]
	p.NumFinished, p.RaceInProgress, p.QualMinutes, p.RaceLaps = rest[4], rest[5], rest[6], rest[7]
	copy(p.Track[:], rest[8:14])
	p.Weather, p.Wind = rest[14], rest[15]
	return nil
}
