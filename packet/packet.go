// Package packet implements the primitive wire codecs and the closed
// catalogue of InSim packet variants this module understands, plus an
// open fallback for everything else.
package packet

// Packet is implemented by every catalogued wire variant and by
// Unknown.
type Packet interface {
	// MarshalInsim appends the packet's full wire encoding — Size,
	// Type, ReqI, and body — to buf and returns the result.
	MarshalInsim(buf []byte) ([]byte, error)
}

// Unknown carries any packet type this catalogue has no variant for,
// Raw holding the untouched body (Size, Type, ReqI, and payload) so a
// caller can still forward or log it.
type Unknown struct {
	Type TypeID
	ReqI byte
	Raw  []byte
}

func (u Unknown) MarshalInsim(buf []byte) ([]byte, error) {
	return append(buf, u.Raw...), nil
}

// Decode dispatches on body's type byte (body[1], after the Size
// byte) and returns the matching catalogued variant, or an Unknown
// for any type this module does not implement. body is the full
// packet as delivered by the frame layer, including its own Size
// byte.
func Decode(body []byte) (Packet, error) {
	if len(body) < 3 {
		return nil, Truncated{Type: "packet", Need: 3, Got: len(body)}
	}
	t := TypeID(body[1])
	switch t {
	case TypeInit:
		p := new(Init)
		return p, p.unmarshalInsim(body)
	case TypeVersion:
		p := new(Version)
		return p, p.unmarshalInsim(body)
	case TypeTiny:
		p := new(Tiny)
		return p, p.unmarshalInsim(body)
	case TypeSmall:
		p := new(Small)
		return p, p.unmarshalInsim(body)
	case TypeState:
		p := new(State)
		return p, p.unmarshalInsim(body)
	case TypeRaceStart:
		p := new(RaceStart)
		return p, p.unmarshalInsim(body)
	case TypeRaceFlag:
		p := new(RaceFlag)
		return p, p.unmarshalInsim(body)
	case TypeCarReset:
		p := new(CarReset)
		return p, p.unmarshalInsim(body)
	case TypeNewConnection:
		p := new(NewConnection)
		return p, p.unmarshalInsim(body)
	case TypeConnectionLeave:
		p := new(ConnectionLeave)
		return p, p.unmarshalInsim(body)
	case TypeNewPlayer:
		p := new(NewPlayer)
		return p, p.unmarshalInsim(body)
	case TypePlayerLeave:
		p := new(PlayerLeave)
		return p, p.unmarshalInsim(body)
	case TypePlayerPits:
		p := new(PlayerPits)
		return p, p.unmarshalInsim(body)
	case TypePlayerFlags:
		p := new(PlayerFlags)
		return p, p.unmarshalInsim(body)
	case TypeReorder:
		p := new(Reorder)
		return p, p.unmarshalInsim(body)
	case TypeMessageOut:
		p := new(MessageOut)
		return p, p.unmarshalInsim(body)
	case TypeMessageType:
		p := new(MessageType)
		return p, p.unmarshalInsim(body)
	case TypeMessageToConnection:
		p := new(MessageToConnection)
		return p, p.unmarshalInsim(body)
	case TypeLap:
		p := new(Lap)
		return p, p.unmarshalInsim(body)
	case TypeSplitX:
		p := new(SplitX)
		return p, p.unmarshalInsim(body)
	case TypePitStopStart:
		p := new(PitStopStart)
		return p, p.unmarshalInsim(body)
	case TypePitStopFinish:
		p := new(PitStopFinish)
		return p, p.unmarshalInsim(body)
	case TypePenalty:
		p := new(Penalty)
		return p, p.unmarshalInsim(body)
	case TypeFinish:
		p := new(Finish)
		return p, p.unmarshalInsim(body)
	case TypeResult:
		p := new(Result)
		return p, p.unmarshalInsim(body)
	case TypeMultiCarInfo:
		p := new(MultiCarInfo)
		return p, p.unmarshalInsim(body)
	case TypeNodeLap:
		p := new(NodeLap)
		return p, p.unmarshalInsim(body)
	case TypeObjectHit:
		p := new(ObjectHit)
		return p, p.unmarshalInsim(body)
	case TypeAutocrossInfo:
		p := new(AutocrossInfo)
		return p, p.unmarshalInsim(body)
	case TypeAutocrossObject:
		p := new(AXO)
		return p, p.unmarshalInsim(body)
	case TypeAutocrossMultiple:
		p := new(AXM)
		return p, p.unmarshalInsim(body)
	case TypeTargetToConnection:
		p := new(TargetToConnection)
		return p, p.unmarshalInsim(body)
	case TypeReplayInformation:
		p := new(ReplayInformationPacket)
		return p, p.unmarshalInsim(body)
	case TypeRelayAdminRequest:
		p := new(RelayAdminRequest)
		return p, p.unmarshalInsim(body)
	case TypeRelayAdminResponse:
		p := new(RelayAdminResponse)
		return p, p.unmarshalInsim(body)
	case TypeRelayHostListRequest:
		p := new(RelayHostListRequest)
		return p, p.unmarshalInsim(body)
	case TypeRelayHostList:
		p := new(RelayHostList)
		return p, p.unmarshalInsim(body)
	case TypeRelayHostSelect:
		p := new(RelayHostSelect)
		return p, p.unmarshalInsim(body)
	case TypeRelayError:
		p := new(RelayError)
		return p, p.unmarshalInsim(body)
	default:
		return Unknown{Type: t, ReqI: body[2], Raw: append([]byte(nil), body...)}, nil
	}
}
