package packet

// HostInfo is one entry of a RelayHostList.
type HostInfo struct {
	HName    string
	Track    Track
	NumConns byte
	Flags    byte
}

const hostInfoSize = 40

func (h HostInfo) marshal(buf []byte) []byte {
	buf = append(buf, FixedString{Width: 32}.Encode(h.HName)...)
	buf = append(buf, h.Track[:]...)
	return append(buf, h.NumConns, h.Flags)
}

func (h *HostInfo) unmarshal(raw []byte) {
	h.HName = FixedString{Width: 32}.Decode(raw[0:32])
	copy(h.Track[:], raw[32:38])
	h.NumConns, h.Flags = raw[38], raw[39]
}

// RelayAdminRequest authenticates as the admin of the currently
// selected relay host.
type RelayAdminRequest struct {
	ReqI          byte
	AdminPassword string
}

const relayAdminRequestSize = 20

func (p RelayAdminRequest) MarshalInsim(buf []byte) ([]byte, error) {
	buf = encodeHeader(buf, TypeRelayAdminRequest, p.ReqI, relayAdminRequestSize)
	buf = append(buf, FixedString{Width: 16}.Encode(p.AdminPassword)...)
	buf = append(buf, 0)
	return buf, nil
}

func (p *RelayAdminRequest) unmarshalInsim(body []byte) error {
	h, rest, err := decodeHeader(body, TypeRelayAdminRequest)
	if err != nil {
		return err
	}
	if len(rest) < relayAdminRequestSize-3 {
		return Truncated{Type: "RelayAdminRequest", Need: relayAdminRequestSize - 3, Got: len(rest)}
	}
	p.ReqI = h.ReqI
	p.AdminPassword = FixedString{Width: 16}.Decode(rest[:16])
	return nil
}

// RelayAdminResponse reports whether a RelayAdminRequest succeeded.
type RelayAdminResponse struct {
	ReqI  byte
	Admin byte
}

const relayAdminResponseSize = 4

func (p RelayAdminResponse) MarshalInsim(buf []byte) ([]byte, error) {
	buf = encodeHeader(buf, TypeRelayAdminResponse, p.ReqI, relayAdminResponseSize)
	return append(buf, p.Admin), nil
}

func (p *RelayAdminResponse) unmarshalInsim(body []byte) error {
	h, rest, err := decodeHeader(body, TypeRelayAdminResponse)
	if err != nil {
		return err
	}
	if len(rest) < 1 {
		return Truncated{Type: "RelayAdminResponse", Need: 1, Got: len(rest)}
	}
	p.ReqI = h.ReqI
	p.Admin = rest[0]
	return nil
}

// RelayHostListRequest asks the relay for its current host list.
type RelayHostListRequest struct {
	ReqI byte
}

const relayHostListRequestSize = 4

func (p RelayHostListRequest) MarshalInsim(buf []byte) ([]byte, error) {
	buf = encodeHeader(buf, TypeRelayHostListRequest, p.ReqI, relayHostListRequestSize)
	return append(buf, 0), nil
}

func (p *RelayHostListRequest) unmarshalInsim(body []byte) error {
	h, _, err := decodeHeader(body, TypeRelayHostListRequest)
	if err != nil {
		return err
	}
	p.ReqI = h.ReqI
	return nil
}

// RelayHostList is the relay's reply to RelayHostListRequest, a
// variable-length vector of HostInfo.
type RelayHostList struct {
	ReqI  byte
	Hosts []HostInfo
}

const relayHostListPrefix = 4

func (p RelayHostList) MarshalInsim(buf []byte) ([]byte, error) {
	total := relayHostListPrefix + len(p.Hosts)*hostInfoSize
	if total > 1020 {
		return nil, FieldTooLarge{Field: "RelayHostList.Hosts", Max: (1020 - relayHostListPrefix) / hostInfoSize, Got: len(p.Hosts)}
	}
	buf = encodeHeader(buf, TypeRelayHostList, p.ReqI, total)
	buf = append(buf, byte(len(p.Hosts)))
	for _, h := range p.Hosts {
		buf = h.marshal(buf)
	}
	return buf, nil
}

func (p *RelayHostList) unmarshalInsim(body []byte) error {
	h, rest, err := decodeHeader(body, TypeRelayHostList)
	if err != nil {
		return err
	}
	if len(rest) < 1 {
		return Truncated{Type: "RelayHostList", Need: 1, Got: len(rest)}
	}
	p.ReqI = h.ReqI
	numH := int(rest[0])
	entries := rest[1:]
	if len(entries) < numH*hostInfoSize {
		return Truncated{Type: "RelayHostList", Need: numH * hostInfoSize, Got: len(entries)}
	}
	p.Hosts = make([]HostInfo, numH)
	for i := 0; i < numH; i++ {
		p.Hosts[i].unmarshal(entries[i*hostInfoSize : (i+1)*hostInfoSize])
	}
	return nil
}

// RelayHostSelect subscribes the relay connection to one game host,
// optionally presenting admin/spectator passwords for it.
type RelayHostSelect struct {
	ReqI  byte
	HName string
	Admin string
	Spec  string
}

const relayHostSelectSize = 68

func (p RelayHostSelect) MarshalInsim(buf []byte) ([]byte, error) {
	buf = encodeHeader(buf, TypeRelayHostSelect, p.ReqI, relayHostSelectSize)
	buf = append(buf, FixedString{Width: 32}.Encode(p.HName)...)
	buf = append(buf, FixedString{Width: 16}.Encode(p.Admin)...)
	buf = append(buf, FixedString{Width: 16}.Encode(p.Spec)...)
	buf = append(buf, 0)
	return buf, nil
}

func (p *RelayHostSelect) unmarshalInsim(body []byte) error {
	h, rest, err := decodeHeader(body, TypeRelayHostSelect)
	if err != nil {
		return err
	}
	if len(rest) < relayHostSelectSize-3 {
		return Truncated{Type: "RelayHostSelect", Need: relayHostSelectSize - 3, Got: len(rest)}
	}
	p.ReqI = h.ReqI
	p.HName = FixedString{Width: 32}.Decode(rest[:32])
	p.Admin = FixedString{Width: 16}.Decode(rest[32:48])
	p.Spec = FixedString{Width: 16}.Decode(rest[48:64])
	return nil
}

// RelayErrorKind enumerates the relay's own error conditions, distinct
// from transport-level errors.
type RelayErrorKind byte

const (
	RelayErrorUnknown RelayErrorKind = iota
	RelayErrorBadAdminPassword
	RelayErrorBadSpectatorPassword
	RelayErrorInvalidHostname
	RelayErrorNoSpectatorHosting
)

func (k RelayErrorKind) String() string {
	names := [...]string{
		"Unknown", "BadAdminPassword", "BadSpectatorPassword",
		"InvalidHostname", "NoSpectatorHosting",
	}
	if int(k) < len(names) {
		return names[k]
	}
	return "RelayErrorKind(" + itoa(uint8(k)) + ")"
}

// RelayError reports a relay-specific failure, e.g. a bad admin
// password or an unknown host name passed to RelayHostSelect.
type RelayError struct {
	ReqI byte
	Kind RelayErrorKind
}

const relayErrorSize = 4

func (p RelayError) MarshalInsim(buf []byte) ([]byte, error) {
	buf = encodeHeader(buf, TypeRelayError, p.ReqI, relayErrorSize)
	return append(buf, byte(p.Kind)), nil
}

func (p *RelayError) unmarshalInsim(body []byte) error {
	h, rest, err := decodeHeader(body, TypeRelayError)
	if err != nil {
		return err
	}
	if len(rest) < 1 {
		return Truncated{Type: "RelayError", Need: 1, Got: len(rest)}
	}
	p.ReqI = h.ReqI
	p.Kind = RelayErrorKind(rest[0])
	return nil
}
