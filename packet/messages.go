package packet

import "github.com/lfsinsim/insim/codepage"

// MessageUserType classifies who generated a MessageOut line.
type MessageUserType byte

const (
	MessageUserSystem MessageUserType = iota
	MessageUserUser
	MessageUserPrefix
	MessageUserOther
)

// MessageOut is a chat line, variable in size: the frame's own length
// (not a count field) terminates the text.
type MessageOut struct {
	ReqI     byte
	UCID     byte
	PLID     byte
	UserType MessageUserType
	Text     string
}

func (p MessageOut) MarshalInsim(buf []byte) ([]byte, error) {
	text := codepage.ToLossyBytes(p.Text)
	fieldLen := align4(len(text) + 1)
	total := 8 + fieldLen
	if total > 1020 {
		return nil, FieldTooLarge{Field: "MessageOut.Text", Max: 1020 - 8, Got: len(text)}
	}
	buf = encodeHeader(buf, TypeMessageOut, p.ReqI, total)
	buf = append(buf, p.UCID, p.PLID, byte(p.UserType), 0, 0)
	field := make([]byte, fieldLen)
	copy(field, text)
	buf = append(buf, field...)
	return buf, nil
}

func (p *MessageOut) unmarshalInsim(body []byte) error {
	h, rest, err := decodeHeader(body, TypeMessageOut)
	if err != nil {
		return err
	}
	if len(rest) < 5 {
		return Truncated{Type: "MessageOut", Need: 5, Got: len(rest)}
	}
	p.ReqI = h.ReqI
	p.UCID, p.PLID, p.UserType = rest[0], rest[1], MessageUserType(rest[2])
	text := rest[5:]
	n := 0
	for n < len(text) && text[n] != 0 {
		n++
	}
	p.Text = codepage.ToLossyString(text[:n])
	return nil
}

// MessageType carries the prompt shown by a "type here" overlay.
type MessageType struct {
	ReqI byte
	UCID byte
	Text string
}

const messageTypeSize = 132

func (p MessageType) MarshalInsim(buf []byte) ([]byte, error) {
	buf = encodeHeader(buf, TypeMessageType, p.ReqI, messageTypeSize)
	buf = append(buf, p.UCID)
	buf = append(buf, FixedString{Width: 128}.Encode(p.Text)...)
	return buf, nil
}

func (p *MessageType) unmarshalInsim(body []byte) error {
	h, rest, err := decodeHeader(body, TypeMessageType)
	if err != nil {
		return err
	}
	if len(rest) < messageTypeSize-3 {
		return Truncated{Type: "MessageType", Need: messageTypeSize - 3, Got: len(rest)}
	}
	p.ReqI = h.ReqI
	p.UCID = rest[0]
	p.Text = FixedString{Width: 128}.Decode(rest[1:129])
	return nil
}

// MessageToConnection sends a private line to one connection. The text
// field is 64 bytes wide, or 96 when Wide is set; Sound does not affect
// the width. On decode Wide is set when the packet carries more than 64
// text bytes — both widths round-trip through the same struct.
type MessageToConnection struct {
	ReqI  byte
	UCID  byte
	PLID  byte
	Sound byte
	Text  string
	Wide  bool // true selects the 96-byte text field instead of 64
}

func (p MessageToConnection) MarshalInsim(buf []byte) ([]byte, error) {
	width := 64
	if p.Wide {
		width = 96
	}
	total := 8 + width
	buf = encodeHeader(buf, TypeMessageToConnection, p.ReqI, total)
	buf = append(buf, p.UCID, p.PLID, p.Sound, 0, 0)
	buf = append(buf, FixedString{Width: width}.Encode(p.Text)...)
	return buf, nil
}

func (p *MessageToConnection) unmarshalInsim(body []byte) error {
	h, rest, err := decodeHeader(body, TypeMessageToConnection)
	if err != nil {
		return err
	}
	if len(rest) < 5 {
		return Truncated{Type: "MessageToConnection", Need: 5, Got: len(rest)}
	}
	p.ReqI = h.ReqI
	p.UCID, p.PLID, p.Sound = rest[0], rest[1], rest[2]
	text := rest[5:]
	p.Wide = len(text) > 64
	width := 64
	if p.Wide {
		width = 96
	}
	if len(text) < width {
		return Truncated{Type: "MessageToConnection", Need: width, Got: len(text)}
	}
	p.Text = FixedString{Width: width}.Decode(text[:width])
	return nil
}
