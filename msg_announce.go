package moqt

// Announce (0x06) advertises that the sender can serve tracks under a
// namespace. Its wire grammar is absent from the reference message set;
// this module grounds it on SubscribeAnnounces, the closest structural
// analog (request_id + namespace tuple + parameters).
type Announce struct {
	RequestID      uint64
	TrackNamespace []string
	Parameters     []Parameter
}

func (Announce) Type() uint64 { return MsgAnnounce }

func (m Announce) encodePayload() ([]byte, error) {
	if len(m.TrackNamespace) < 1 || len(m.TrackNamespace) > 32 {
		return nil, protocolViolation("track_namespace count out of range")
	}
	buf, err := AppendVarInt(nil, m.RequestID)
	if err != nil {
		return nil, err
	}
	buf, err = encodeNamespaceTuple(buf, m.TrackNamespace)
	if err != nil {
		return nil, err
	}
	return encodeParameters(buf, m.Parameters)
}

func decodeAnnounce(data []byte) (Announce, error) {
	r := newReader(data)
	var m Announce
	var err error

	if m.RequestID, err = r.readVarInt(); err != nil {
		return m, &ParseError{Message: "ANNOUNCE", Field: "request_id", Err: err}
	}
	if m.TrackNamespace, err = decodeNamespaceTuple(r, "track_namespace", 1, 32); err != nil {
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

// AnnounceOK (0x07) accepts an Announce.
type AnnounceOK struct {
	RequestID uint64
}

func (AnnounceOK) Type() uint64 { return MsgAnnounceOK }

func (m AnnounceOK) encodePayload() ([]byte, error) {
	return AppendVarInt(nil, m.RequestID)
}

func decodeAnnounceOK(data []byte) (AnnounceOK, error) {
	r := newReader(data)
	v, err := r.readVarInt()
	if err != nil {
		return AnnounceOK{}, &ParseError{Message: "ANNOUNCE_OK", Field: "request_id", Err: err}
	}
	if r.remaining() != 0 {
		return AnnounceOK{}, ErrExcessPayload
	}
	return AnnounceOK{RequestID: v}, nil
}

// AnnounceError (0x08) rejects an Announce.
type AnnounceError struct {
	RequestID uint64
	ErrorCode uint64
	Reason    string
}

func (AnnounceError) Type() uint64 { return MsgAnnounceError }

func (m AnnounceError) encodePayload() ([]byte, error) {
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

func decodeAnnounceError(data []byte) (AnnounceError, error) {
	r := newReader(data)
	var m AnnounceError
	var err error
	if m.RequestID, err = r.readVarInt(); err != nil {
		return m, &ParseError{Message: "ANNOUNCE_ERROR", Field: "request_id", Err: err}
	}
	if m.ErrorCode, err = r.readVarInt(); err != nil {
		return m, &ParseError{Message: "ANNOUNCE_ERROR", Field: "error_code", Err: err}
	}
	if m.Reason, err = r.readString(); err != nil {
		return m, &ParseError{Message: "ANNOUNCE_ERROR", Field: "reason", Err: err}
	}
	if r.remaining() != 0 {
		return m, ErrExcessPayload
	}
	return m, nil
}

// Unannounce (0x09) withdraws a previously announced namespace, identified
// by the interned handle assigned when it was announced.
type Unannounce struct {
	TrackNamespace uint64
}

func (Unannounce) Type() uint64 { return MsgUnannounce }

func (m Unannounce) encodePayload() ([]byte, error) {
	return AppendVarInt(nil, m.TrackNamespace)
}

func decodeUnannounce(data []byte) (Unannounce, error) {
	r := newReader(data)
	v, err := r.readVarInt()
	if err != nil {
		return Unannounce{}, &ParseError{Message: "UNANNOUNCE", Field: "track_namespace", Err: err}
	}
	if r.remaining() != 0 {
		return Unannounce{}, ErrExcessPayload
	}
	return Unannounce{TrackNamespace: v}, nil
}

// AnnounceCancel (0x0C) tells a subscriber that an announcement has been
// withdrawn involuntarily, with a reason.
type AnnounceCancel struct {
	TrackNamespace uint64
	ErrorCode      uint64
	ErrorReason    string
}

func (AnnounceCancel) Type() uint64 { return MsgAnnounceCancel }

func (m AnnounceCancel) encodePayload() ([]byte, error) {
	buf, err := AppendVarInt(nil, m.TrackNamespace)
	if err != nil {
		return nil, err
	}
	buf, err = AppendVarInt(buf, m.ErrorCode)
	if err != nil {
		return nil, err
	}
	return appendString(buf, m.ErrorReason)
}

func decodeAnnounceCancel(data []byte) (AnnounceCancel, error) {
	r := newReader(data)
	var m AnnounceCancel
	var err error
	if m.TrackNamespace, err = r.readVarInt(); err != nil {
		return m, &ParseError{Message: "ANNOUNCE_CANCEL", Field: "track_namespace", Err: err}
	}
	if m.ErrorCode, err = r.readVarInt(); err != nil {
		return m, &ParseError{Message: "ANNOUNCE_CANCEL", Field: "error_code", Err: err}
	}
	if m.ErrorReason, err = r.readString(); err != nil {
		return m, &ParseError{Message: "ANNOUNCE_CANCEL", Field: "error_reason", Err: err}
	}
	if r.remaining() != 0 {
		return m, ErrExcessPayload
	}
	return m, nil
}
