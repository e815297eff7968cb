package packet

// TinyType discriminates the body-less Tiny family. TinyNone, used as
// both the keep-alive ping and its pong reply, is handled specially by
// the connection actor and never reaches subscribers.
type TinyType uint8

const (
	TinyNone TinyType = iota
	TinyVer
	TinyClose
	TinyPing
	TinyReply
	TinyVtc
	TinyScp
	TinySst
	TinyGth
	TinyMpe
	TinyIsm
	TinyRen
	TinyClr
	TinyNcn
	TinyNpl
	TinyRes
	TinyNlp
	TinyAlc
	TinyAxi
	TinyAxc
	TinyRip
	TinyNci
	TinySlc
	TinyMci
	TinyReo
	TinyRst
	TinyAxm
	TinyAch
)

func (t TinyType) String() string {
	names := [...]string{
		"None", "Ver", "Close", "Ping", "Reply", "Vtc", "Scp", "Sst", "Gth",
		"Mpe", "Ism", "Ren", "Clr", "Ncn", "Npl", "Res", "Nlp", "Alc", "Axi",
		"Axc", "Rip", "Nci", "Slc", "Mci", "Reo", "Rst", "Axm", "Ach",
	}
	if int(t) < len(names) {
		return names[t]
	}
	return "TinyType(" + itoa(uint8(t)) + ")"
}

// Tiny is the four-byte ping/pong and request family: Size, Type,
// ReqI, SubT.
type Tiny struct {
	ReqI byte
	SubT TinyType
}

const tinySize = 4

func (p Tiny) MarshalInsim(buf []byte) ([]byte, error) {
	buf = encodeHeader(buf, TypeTiny, p.ReqI, tinySize)
	return append(buf, byte(p.SubT)), nil
}

func (p *Tiny) unmarshalInsim(body []byte) error {
	h, rest, err := decodeHeader(body, TypeTiny)
	if err != nil {
		return err
	}
	if len(rest) < 1 {
		return Truncated{Type: "Tiny", Need: 1, Got: len(rest)}
	}
	p.ReqI = h.ReqI
	p.SubT = TinyType(rest[0])
	return nil
}
