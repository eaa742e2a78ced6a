package moqt

// Fetch type discriminants (spec.md §4.3).
const (
	FetchTypeStandalone  = 1
	FetchTypeJoiningAbs  = 2
	FetchTypeJoiningRel  = 3
)

func validFetchType(t uint64) bool {
	return t == FetchTypeStandalone || t == FetchTypeJoiningAbs || t == FetchTypeJoiningRel
}

// Fetch (0x16) requests a range of Objects from a track, either directly
// (standalone) or relative to an existing subscription (joining).
type Fetch struct {
	RequestID  uint64
	Priority   byte
	GroupOrder byte // 0 (unspecified), 1, or 2
	FetchType  uint64

	// Populated when FetchType == FetchTypeStandalone.
	TrackNamespace uint64
	TrackName      string
	Start          Location
	End            Location

	// Populated when FetchType ∈ {FetchTypeJoiningAbs, FetchTypeJoiningRel}.
	JoiningRequestID uint64
	JoiningStart     uint64

	Parameters []Parameter
}

func (Fetch) Type() uint64 { return MsgFetch }

func (m Fetch) encodePayload() ([]byte, error) {
	if !validGroupOrder(m.GroupOrder, true) {
		return nil, protocolViolation("fetch group_order out of range")
	}
	if !validFetchType(m.FetchType) {
		return nil, protocolViolation("fetch fetch_type out of range")
	}

	buf, err := AppendVarInt(nil, m.RequestID)
	if err != nil {
		return nil, err
	}
	buf = append(buf, m.Priority, m.GroupOrder)
	buf, err = AppendVarInt(buf, m.FetchType)
	if err != nil {
		return nil, err
	}

	switch m.FetchType {
	case FetchTypeStandalone:
		buf, err = AppendVarInt(buf, m.TrackNamespace)
		if err != nil {
			return nil, err
		}
		buf, err = appendString(buf, m.TrackName)
		if err != nil {
			return nil, err
		}
		buf, err = m.Start.encode(buf)
		if err != nil {
			return nil, err
		}
		buf, err = m.End.encode(buf)
		if err != nil {
			return nil, err
		}
	case FetchTypeJoiningAbs, FetchTypeJoiningRel:
		buf, err = AppendVarInt(buf, m.JoiningRequestID)
		if err != nil {
			return nil, err
		}
		buf, err = AppendVarInt(buf, m.JoiningStart)
		if err != nil {
			return nil, err
		}
	}

	return encodeParameters(buf, m.Parameters)
}

func decodeFetch(data []byte) (Fetch, error) {
	r := newReader(data)
	var m Fetch
	var err error

	if m.RequestID, err = r.readVarInt(); err != nil {
		return m, &ParseError{Message: "FETCH", Field: "request_id", Err: err}
	}
	if m.Priority, err = r.readByte(); err != nil {
		return m, &ParseError{Message: "FETCH", Field: "priority", Err: err}
	}
	if m.GroupOrder, err = r.readByte(); err != nil {
		return m, &ParseError{Message: "FETCH", Field: "group_order", Err: err}
	}
	if !validGroupOrder(m.GroupOrder, true) {
		return m, protocolViolation("fetch group_order out of range")
	}
	if m.FetchType, err = r.readVarInt(); err != nil {
		return m, &ParseError{Message: "FETCH", Field: "fetch_type", Err: err}
	}
	if !validFetchType(m.FetchType) {
		return m, protocolViolation("fetch fetch_type out of range")
	}

	switch m.FetchType {
	case FetchTypeStandalone:
		if m.TrackNamespace, err = r.readVarInt(); err != nil {
			return m, &ParseError{Message: "FETCH", Field: "track_namespace", Err: err}
		}
		if m.TrackName, err = r.readString(); err != nil {
			return m, &ParseError{Message: "FETCH", Field: "track_name", Err: err}
		}
		if m.Start, err = r.readLocation(); err != nil {
			return m, &ParseError{Message: "FETCH", Field: "start", Err: err}
		}
		if m.End, err = r.readLocation(); err != nil {
			return m, &ParseError{Message: "FETCH", Field: "end", Err: err}
		}
	case FetchTypeJoiningAbs, FetchTypeJoiningRel:
		if m.JoiningRequestID, err = r.readVarInt(); err != nil {
			return m, &ParseError{Message: "FETCH", Field: "joining_request_id", Err: err}
		}
		if m.JoiningStart, err = r.readVarInt(); err != nil {
			return m, &ParseError{Message: "FETCH", Field: "joining_start", Err: err}
		}
	}

	if m.Parameters, err = decodeParameters(r); err != nil {
		return m, err
	}
	if r.remaining() != 0 {
		return m, ErrExcessPayload
	}
	return m, nil
}

// FetchOK (0x18) responds to a Fetch with the location it will end at.
type FetchOK struct {
	RequestID   uint64
	GroupOrder  byte // 1 or 2
	EndOfTrack  bool
	EndLocation Location
	Parameters  []Parameter
}

func (FetchOK) Type() uint64 { return MsgFetchOK }

func (m FetchOK) encodePayload() ([]byte, error) {
	if !validGroupOrder(m.GroupOrder, false) {
		return nil, protocolViolation("fetch_ok group_order out of range")
	}
	buf, err := AppendVarInt(nil, m.RequestID)
	if err != nil {
		return nil, err
	}
	buf = append(buf, m.GroupOrder)
	if m.EndOfTrack {
		buf = append(buf, 1)
	} else {
		buf = append(buf, 0)
	}
	buf, err = m.EndLocation.encode(buf)
	if err != nil {
		return nil, err
	}
	return encodeParameters(buf, m.Parameters)
}

func decodeFetchOK(data []byte) (FetchOK, error) {
	r := newReader(data)
	var m FetchOK
	var err error

	if m.RequestID, err = r.readVarInt(); err != nil {
		return m, &ParseError{Message: "FETCH_OK", Field: "request_id", Err: err}
	}
	if m.GroupOrder, err = r.readByte(); err != nil {
		return m, &ParseError{Message: "FETCH_OK", Field: "group_order", Err: err}
	}
	if !validGroupOrder(m.GroupOrder, false) {
		return m, protocolViolation("fetch_ok group_order out of range")
	}
	endOfTrack, err := r.readByte()
	if err != nil {
		return m, &ParseError{Message: "FETCH_OK", Field: "end_of_track", Err: err}
	}
	if endOfTrack != 0 && endOfTrack != 1 {
		return m, protocolViolation("fetch_ok end_of_track out of range")
	}
	m.EndOfTrack = endOfTrack == 1
	if m.EndLocation, err = r.readLocation(); err != nil {
		return m, &ParseError{Message: "FETCH_OK", Field: "end_location", Err: err}
	}
	if m.Parameters, err = decodeParameters(r); err != nil {
		return m, err
	}
	if r.remaining() != 0 {
		return m, ErrExcessPayload
	}
	return m, nil
}

// FetchError (0x19) rejects a Fetch.
type FetchError struct {
	RequestID uint64
	ErrorCode uint64
	Reason    string
}

func (FetchError) Type() uint64 { return MsgFetchError }

func (m FetchError) encodePayload() ([]byte, error) {
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

func decodeFetchError(data []byte) (FetchError, error) {
	r := newReader(data)
	var m FetchError
	var err error
	if m.RequestID, err = r.readVarInt(); err != nil {
		return m, &ParseError{Message: "FETCH_ERROR", Field: "request_id", Err: err}
	}
	if m.ErrorCode, err = r.readVarInt(); err != nil {
		return m, &ParseError{Message: "FETCH_ERROR", Field: "error_code", Err: err}
	}
	if m.Reason, err = r.readString(); err != nil {
		return m, &ParseError{Message: "FETCH_ERROR", Field: "reason", Err: err}
	}
	if r.remaining() != 0 {
		return m, ErrExcessPayload
	}
	return m, nil
}

// FetchCancel (0x17) aborts an outstanding Fetch.
type FetchCancel struct {
	RequestID uint64
}

func (FetchCancel) Type() uint64 { return MsgFetchCancel }

func (m FetchCancel) encodePayload() ([]byte, error) {
	return AppendVarInt(nil, m.RequestID)
}

func decodeFetchCancel(data []byte) (FetchCancel, error) {
	r := newReader(data)
	v, err := r.readVarInt()
	if err != nil {
		return FetchCancel{}, &ParseError{Message: "FETCH_CANCEL", Field: "request_id", Err: err}
	}
	if r.remaining() != 0 {
		return FetchCancel{}, ErrExcessPayload
	}
	return FetchCancel{RequestID: v}, nil
}
