package moqt

// maxGoAwayURILen and maxSubscribeDoneReasonLen bound the two UTF-8
// fields spec.md §6 calls out as reserved limits.
const (
	maxGoAwayURILen           = 8192
	maxSubscribeDoneReasonLen = 8192
)

// GoAway (0x10) signals that an endpoint intends to close the session.
// A server may advertise a migration URI; a client may not (enforced by
// the session layer, not here — see [github.com/moqt-go/moqt/session]).
type GoAway struct {
	NewSessionURI string // empty means "no URI"
}

func (GoAway) Type() uint64 { return MsgGoAway }

func (m GoAway) encodePayload() ([]byte, error) {
	if len(m.NewSessionURI) > maxGoAwayURILen {
		return nil, protocolViolation("GOAWAY uri exceeds 8192 bytes")
	}
	return appendString(nil, m.NewSessionURI)
}

func decodeGoAway(data []byte) (GoAway, error) {
	r := newReader(data)
	var m GoAway

	uriLen, err := r.readVarInt()
	if err != nil {
		return m, &ParseError{Message: "GOAWAY", Field: "uri_len", Err: err}
	}
	if uriLen > maxGoAwayURILen {
		return m, protocolViolation("GOAWAY uri exceeds 8192 bytes")
	}
	uri, err := r.readBytes(int(uriLen))
	if err != nil {
		return m, &ParseError{Message: "GOAWAY", Field: "uri", Err: err}
	}
	m.NewSessionURI = string(uri)
	if r.remaining() != 0 {
		return m, ErrExcessPayload
	}
	return m, nil
}

// MaxRequestID (0x15) raises the peer's request-ID budget.
type MaxRequestID struct {
	RequestID uint64
}

func (MaxRequestID) Type() uint64 { return MsgMaxRequestID }

func (m MaxRequestID) encodePayload() ([]byte, error) {
	return AppendVarInt(nil, m.RequestID)
}

func decodeMaxRequestID(data []byte) (MaxRequestID, error) {
	r := newReader(data)
	v, err := r.readVarInt()
	if err != nil {
		return MaxRequestID{}, &ParseError{Message: "MAX_REQUEST_ID", Field: "request_id", Err: err}
	}
	if r.remaining() != 0 {
		return MaxRequestID{}, ErrExcessPayload
	}
	return MaxRequestID{RequestID: v}, nil
}

// RequestsBlocked (0x1A) notifies the peer that the sender wanted to
// issue a request but was blocked by its current MAX_REQUEST_ID budget.
type RequestsBlocked struct {
	MaximumRequestID uint64
}

func (RequestsBlocked) Type() uint64 { return MsgRequestsBlocked }

func (m RequestsBlocked) encodePayload() ([]byte, error) {
	return AppendVarInt(nil, m.MaximumRequestID)
}

func decodeRequestsBlocked(data []byte) (RequestsBlocked, error) {
	r := newReader(data)
	v, err := r.readVarInt()
	if err != nil {
		return RequestsBlocked{}, &ParseError{Message: "REQUESTS_BLOCKED", Field: "maximum_request_id", Err: err}
	}
	if r.remaining() != 0 {
		return RequestsBlocked{}, ErrExcessPayload
	}
	return RequestsBlocked{MaximumRequestID: v}, nil
}
