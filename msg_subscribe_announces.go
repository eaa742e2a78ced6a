package moqt

// SubscribeAnnounces (0x11) asks the peer to report every Announce whose
// namespace begins with the given prefix.
type SubscribeAnnounces struct {
	RequestID      uint64
	NamespacePrefix []string // 1..32 components
	Parameters     []Parameter
}

func (SubscribeAnnounces) Type() uint64 { return MsgSubscribeAnnounces }

func (m SubscribeAnnounces) encodePayload() ([]byte, error) {
	if len(m.NamespacePrefix) < 1 || len(m.NamespacePrefix) > 32 {
		return nil, protocolViolation("subscribe_announces prefix_count out of range")
	}
	buf, err := AppendVarInt(nil, m.RequestID)
	if err != nil {
		return nil, err
	}
	buf, err = encodeNamespaceTuple(buf, m.NamespacePrefix)
	if err != nil {
		return nil, err
	}
	return encodeParameters(buf, m.Parameters)
}

func decodeSubscribeAnnounces(data []byte) (SubscribeAnnounces, error) {
	r := newReader(data)
	var m SubscribeAnnounces
	var err error

	if m.RequestID, err = r.readVarInt(); err != nil {
		return m, &ParseError{Message: "SUBSCRIBE_ANNOUNCES", Field: "request_id", Err: err}
	}
	if m.NamespacePrefix, err = decodeNamespaceTuple(r, "prefix", 1, 32); err != nil {
		return m, err
	}
	if m.Parameters, err = decodeParameters(r); err != nil {
		return m, err
	}
	if r.remaining() != 0 {
		return m, ErrExcessPayload
	}
	return m, nil
}

// SubscribeAnnouncesOK (0x12) accepts a SubscribeAnnounces.
type SubscribeAnnouncesOK struct {
	RequestID uint64
}

func (SubscribeAnnouncesOK) Type() uint64 { return MsgSubscribeAnnouncesOK }

func (m SubscribeAnnouncesOK) encodePayload() ([]byte, error) {
	return AppendVarInt(nil, m.RequestID)
}

func decodeSubscribeAnnouncesOK(data []byte) (SubscribeAnnouncesOK, error) {
	r := newReader(data)
	v, err := r.readVarInt()
	if err != nil {
		return SubscribeAnnouncesOK{}, &ParseError{Message: "SUBSCRIBE_ANNOUNCES_OK", Field: "request_id", Err: err}
	}
	if r.remaining() != 0 {
		return SubscribeAnnouncesOK{}, ErrExcessPayload
	}
	return SubscribeAnnouncesOK{RequestID: v}, nil
}

// SubscribeAnnouncesError (0x13) rejects a SubscribeAnnounces.
type SubscribeAnnouncesError struct {
	RequestID uint64
	ErrorCode uint64
	Reason    string
}

func (SubscribeAnnouncesError) Type() uint64 { return MsgSubscribeAnnouncesError }

func (m SubscribeAnnouncesError) encodePayload() ([]byte, error) {
	buf, err := AppendVarInt(nil, m.RequestID)
	if err != nil {
		return nil, err
	}
	buf, err = AppendVarInt(buf, m.ErrorCode)
	if err != nil {
		return nil, err
	}
	return appendString(buf, m.Reason)
}

func decodeSubscribeAnnouncesError(data []byte) (SubscribeAnnouncesError, error) {
	r := newReader(data)
	var m SubscribeAnnouncesError
	var err error
	if m.RequestID, err = r.readVarInt(); err != nil {
		return m, &ParseError{Message: "SUBSCRIBE_ANNOUNCES_ERROR", Field: "request_id", Err: err}
	}
	if m.ErrorCode, err = r.readVarInt(); err != nil {
		return m, &ParseError{Message: "SUBSCRIBE_ANNOUNCES_ERROR", Field: "error_code", Err: err}
	}
	if m.Reason, err = r.readString(); err != nil {
		return m, &ParseError{Message: "SUBSCRIBE_ANNOUNCES_ERROR", Field: "reason", Err: err}
	}
	if r.remaining() != 0 {
		return m, ErrExcessPayload
	}
	return m, nil
}

// UnsubscribeAnnounces (0x14) withdraws an earlier SubscribeAnnounces. Its
// grammar mixes representations: the namespace is an interned VarInt
// handle while the prefix that was originally subscribed to is repeated
// as a plain string, matching the source's asymmetric encoding.
type UnsubscribeAnnounces struct {
	TrackNamespace       uint64
	TrackNamePrefix      string
}

func (UnsubscribeAnnounces) Type() uint64 { return MsgUnsubscribeAnnounces }

func (m UnsubscribeAnnounces) encodePayload() ([]byte, error) {
	buf, err := AppendVarInt(nil, m.TrackNamespace)
	if err != nil {
		return nil, err
	}
	return appendString(buf, m.TrackNamePrefix)
}

func decodeUnsubscribeAnnounces(data []byte) (UnsubscribeAnnounces, error) {
	r := newReader(data)
	var m UnsubscribeAnnounces
	var err error
	if m.TrackNamespace, err = r.readVarInt(); err != nil {
		return m, &ParseError{Message: "UNSUBSCRIBE_ANNOUNCES", Field: "track_namespace", Err: err}
	}
	if m.TrackNamePrefix, err = r.readString(); err != nil {
		return m, &ParseError{Message: "UNSUBSCRIBE_ANNOUNCES", Field: "track_name_prefix", Err: err}
	}
	if r.remaining() != 0 {
		return m, ErrExcessPayload
	}
	return m, nil
}
