package packet

//go:generate stringer -type TypeID -trimprefix Type

// TypeID is the outer wire type byte shared by every packet in the
// catalogue. Game-event codes occupy 1..64; relay codes occupy 250..255.
type TypeID uint8

const (
	TypeInit                  TypeID = 1
	TypeVersion               TypeID = 2
	TypeTiny                  TypeID = 3
	TypeSmall                 TypeID = 4
	TypeState                 TypeID = 5
	TypeRaceStart             TypeID = 6
	TypeRaceFlag              TypeID = 7
	TypeCarReset              TypeID = 8
	TypeNewConnection         TypeID = 9
	TypeConnectionLeave       TypeID = 10
	TypeNewPlayer             TypeID = 11
	TypePlayerLeave           TypeID = 12
	TypePlayerPits            TypeID = 13
	TypePlayerFlags           TypeID = 14
	TypeReorder               TypeID = 15
	TypeMessageOut            TypeID = 16
	TypeMessageType           TypeID = 17
	TypeMessageToConnection   TypeID = 18
	TypeLap                   TypeID = 19
	TypeSplitX                TypeID = 20
	TypePitStopStart          TypeID = 21
	TypePitStopFinish         TypeID = 22
	TypePenalty               TypeID = 23
	TypeFinish                TypeID = 24
	TypeResult                TypeID = 25
	TypeMultiCarInfo          TypeID = 26
	TypeNodeLap               TypeID = 27
	TypeObjectHit             TypeID = 28
	TypeAutocrossInfo         TypeID = 29
	TypeAutocrossObject       TypeID = 30
	TypeAutocrossMultiple     TypeID = 31
	TypeTargetToConnection    TypeID = 32
	TypeReplayInformation     TypeID = 33

	TypeRelayAdminRequest    TypeID = 250
	TypeRelayAdminResponse   TypeID = 251
	TypeRelayHostListRequest TypeID = 252
	TypeRelayHostList        TypeID = 253
	TypeRelayHostSelect      TypeID = 254
	TypeRelayError           TypeID = 255
)

func (t TypeID) String() string {
	switch t {
	case TypeInit:
		return "Init"
	case TypeVersion:
		return "Version"
	case TypeTiny:
		return "Tiny"
	case TypeSmall:
		return "Small"
	case TypeState:
		return "State"
	case TypeRaceStart:
		return "RaceStart"
	case TypeRaceFlag:
		return "RaceFlag"
	case TypeCarReset:
		return "CarReset"
	case TypeNewConnection:
		return "NewConnection"
	case TypeConnectionLeave:
		return "ConnectionLeave"
	case TypeNewPlayer:
		return "NewPlayer"
	case TypePlayerLeave:
		return "PlayerLeave"
	case TypePlayerPits:
		return "PlayerPits"
	case TypePlayerFlags:
		return "PlayerFlags"
	case TypeReorder:
		return "Reorder"
	case TypeMessageOut:
		return "MessageOut"
	case TypeMessageType:
		return "MessageType"
	case TypeMessageToConnection:
		return "MessageToConnection"
	case TypeLap:
		return "Lap"
	case TypeSplitX:
		return "SplitX"
	case TypePitStopStart:
		return "PitStopStart"
	case TypePitStopFinish:
		return "PitStopFinish"
	case TypePenalty:
		return "Penalty"
	case TypeFinish:
		return "Finish"
	case TypeResult:
		return "Result"
	case TypeMultiCarInfo:
		return "MultiCarInfo"
	case TypeNodeLap:
		return "NodeLap"
	case TypeObjectHit:
		return "ObjectHit"
	case TypeAutocrossInfo:
		return "AutocrossInfo"
	case TypeAutocrossObject:
		return "AutocrossObject"
	case TypeAutocrossMultiple:
		return "AutocrossMultiple"
	case TypeTargetToConnection:
		return "TargetToConnection"
	case TypeReplayInformation:
		return "ReplayInformation"
	case TypeRelayAdminRequest:
		return "RelayAdminRequest"
	case TypeRelayAdminResponse:
		return "RelayAdminResponse"
	case TypeRelayHostListRequest:
		return "RelayHostListRequest"
	case TypeRelayHostList:
		return "RelayHostList"
	case TypeRelayHostSelect:
		return "RelayHostSelect"
	case TypeRelayError:
		return "RelayError"
	default:
		return "TypeID(" + itoa(uint8(t)) + ")"
	}
}

func itoa(b uint8) string {
	if b == 0 {
		return "0"
	}
	var buf [3]byte
	i := len(buf)
	for b > 0 {
		i--
		buf[i] = byte('0' + b%10)
		b /= 10
	}
	return string(buf[i:])
}
