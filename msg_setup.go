package moqt

// ClientSetup (0x20) is the first message sent by a MoQT client, offering
// the protocol versions it supports and any setup parameters.
type ClientSetup struct {
	Versions   []uint64
	Parameters []SetupParameter
}

func (ClientSetup) Type() uint64 { return MsgClientSetup }

func (m ClientSetup) encodePayload() ([]byte, error) {
	var buf []byte
	buf, err := AppendVarInt(buf, uint64(len(m.Versions)))
	if err != nil {
		return nil, err
	}
	for _, v := range m.Versions {
		if v > (1<<32)-1 {
			return nil, protocolViolation("client setup version exceeds 2^32-1")
		}
		buf, err = AppendVarInt(buf, v)
		if err != nil {
			return nil, err
		}
	}
	return encodeParameters(buf, m.Parameters)
}

func decodeClientSetup(data []byte) (ClientSetup, error) {
	r := newReader(data)
	var m ClientSetup

	n, err := r.readVarInt()
	if err != nil {
		return m, &ParseError{Message: "CLIENT_SETUP", Field: "num_versions", Err: err}
	}
	m.Versions = make([]uint64, n)
	for i := range m.Versions {
		v, err := r.readVarInt()
		if err != nil {
			return m, &ParseError{Message: "CLIENT_SETUP", Field: "version", Err: err}
		}
		if v > (1<<32)-1 {
			return m, protocolViolation("client setup version exceeds 2^32-1")
		}
		m.Versions[i] = v
	}

	m.Parameters, err = decodeParameters(r)
	if err != nil {
		return m, err
	}
	if r.remaining() != 0 {
		return m, ErrExcessPayload
	}
	return m, nil
}

// ServerSetup (0x21) is the server's response to a ClientSetup, naming
// the single negotiated version.
type ServerSetup struct {
	SelectedVersion uint64
	Parameters      []SetupParameter
}

func (ServerSetup) Type() uint64 { return MsgServerSetup }

func (m ServerSetup) encodePayload() ([]byte, error) {
	if m.SelectedVersion > (1<<32)-1 {
		return nil, protocolViolation("server setup version exceeds 2^32-1")
	}
	buf, err := AppendVarInt(nil, m.SelectedVersion)
	if err != nil {
		return nil, err
	}
	return encodeParameters(buf, m.Parameters)
}

func decodeServerSetup(data []byte) (ServerSetup, error) {
	r := newReader(data)
	var m ServerSetup

	v, err := r.readVarInt()
	if err != nil {
		return m, &ParseError{Message: "SERVER_SETUP", Field: "selected_version", Err: err}
	}
	if v > (1<<32)-1 {
		return m, protocolViolation("server setup version exceeds 2^32-1")
	}
	m.SelectedVersion = v

	m.Parameters, err = decodeParameters(r)
	if err != nil {
		return m, err
	}
	if r.remaining() != 0 {
		return m, ErrExcessPayload
	}
	return m, nil
}
