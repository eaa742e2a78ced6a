package moqt

// Subscribe filter types (draft-ietf-moq-transport-12 §6.6).
const (
	FilterNextGroupStart uint64 = 0x1
	FilterLatestObject   uint64 = 0x2
	FilterAbsoluteStart  uint64 = 0x3
	FilterAbsoluteRange  uint64 = 0x4
)

func validFilterType(f uint64) bool {
	switch f {
	case FilterNextGroupStart, FilterLatestObject, FilterAbsoluteStart, FilterAbsoluteRange:
		return true
	default:
		return false
	}
}

func validGroupOrder(g byte, allowUnspecified bool) bool {
	if allowUnspecified && g == 0 {
		return true
	}
	return g == 1 || g == 2
}

func validForward(f byte) bool {
	return f == 0 || f == 1
}

// Subscribe (0x03) requests delivery of a track, optionally restricted to
// a filtered range of its object space.
type Subscribe struct {
	RequestID         uint64
	TrackNamespace    uint64
	TrackName         string
	SubscriberPriority byte
	GroupOrder        byte // 0 (unspecified), 1, or 2
	Forward           byte // 0 or 1
	FilterType        uint64
	StartLocation     Location // present iff FilterType ∈ {AbsoluteStart, AbsoluteRange}
	EndGroup          uint64   // present iff FilterType == AbsoluteRange
	Parameters        []Parameter
}

func (Subscribe) Type() uint64 { return MsgSubscribe }

func (m Subscribe) encodePayload() ([]byte, error) {
	if !validGroupOrder(m.GroupOrder, true) {
		return nil, protocolViolation("subscribe group_order out of range")
	}
	if !validForward(m.Forward) {
		return nil, protocolViolation("subscribe forward out of range")
	}
	if !validFilterType(m.FilterType) {
		return nil, protocolViolation("subscribe filter_type out of range")
	}

	buf, err := AppendVarInt(nil, m.RequestID)
	if err != nil {
		return nil, err
	}
	buf, err = AppendVarInt(buf, m.TrackNamespace)
	if err != nil {
		return nil, err
	}
	buf, err = appendString(buf, m.TrackName)
	if err != nil {
		return nil, err
	}
	buf = append(buf, m.SubscriberPriority, m.GroupOrder, m.Forward)
	buf, err = AppendVarInt(buf, m.FilterType)
	if err != nil {
		return nil, err
	}

	if m.FilterType == FilterAbsoluteStart || m.FilterType == FilterAbsoluteRange {
		buf, err = m.StartLocation.encode(buf)
		if err != nil {
			return nil, err
		}
	}
	if m.FilterType == FilterAbsoluteRange {
		buf, err = AppendVarInt(buf, m.EndGroup)
		if err != nil {
			return nil, err
		}
	}

	return encodeParameters(buf, m.Parameters)
}

func decodeSubscribe(data []byte) (Subscribe, error) {
	r := newReader(data)
	var m Subscribe
	var err error

	if m.RequestID, err = r.readVarInt(); err != nil {
		return m, &ParseError{Message: "SUBSCRIBE", Field: "request_id", Err: err}
	}
	if m.TrackNamespace, err = r.readVarInt(); err != nil {
		return m, &ParseError{Message: "SUBSCRIBE", Field: "track_namespace", Err: err}
	}
	if m.TrackName, err = r.readString(); err != nil {
		return m, &ParseError{Message: "SUBSCRIBE", Field: "track_name", Err: err}
	}
	if m.SubscriberPriority, err = r.readByte(); err != nil {
		return m, &ParseError{Message: "SUBSCRIBE", Field: "subscriber_priority", Err: err}
	}
	if m.GroupOrder, err = r.readByte(); err != nil {
		return m, &ParseError{Message: "SUBSCRIBE", Field: "group_order", Err: err}
	}
	if !validGroupOrder(m.GroupOrder, true) {
		return m, protocolViolation("subscribe group_order out of range")
	}
	if m.Forward, err = r.readByte(); err != nil {
		return m, &ParseError{Message: "SUBSCRIBE", Field: "forward", Err: err}
	}
	if !validForward(m.Forward) {
		return m, protocolViolation("subscribe forward out of range")
	}
	if m.FilterType, err = r.readVarInt(); err != nil {
		return m, &ParseError{Message: "SUBSCRIBE", Field: "filter_type", Err: err}
	}
	if !validFilterType(m.FilterType) {
		return m, protocolViolation("subscribe filter_type out of range")
	}

	if m.FilterType == FilterAbsoluteStart || m.FilterType == FilterAbsoluteRange {
		if m.StartLocation, err = r.readLocation(); err != nil {
			return m, &ParseError{Message: "SUBSCRIBE", Field: "start_location", Err: err}
		}
	}
	if m.FilterType == FilterAbsoluteRange {
		if m.EndGroup, err = r.readVarInt(); err != nil {
			return m, &ParseError{Message: "SUBSCRIBE", Field: "end_group", Err: err}
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

// SubscribeOK (0x04) confirms a subscription and binds a track alias.
type SubscribeOK struct {
	RequestID     uint64
	TrackAlias    uint64
	Expires       uint64
	GroupOrder    byte // 1 or 2
	ContentExists bool
	LargestLoc    Location // present iff ContentExists
	Parameters    []Parameter
}

func (SubscribeOK) Type() uint64 { return MsgSubscribeOK }

func (m SubscribeOK) encodePayload() ([]byte, error) {
	if !validGroupOrder(m.GroupOrder, false) {
		return nil, protocolViolation("subscribe_ok group_order out of range")
	}
	buf, err := AppendVarInt(nil, m.RequestID)
	if err != nil {
		return nil, err
	}
	buf, err = AppendVarInt(buf, m.TrackAlias)
	if err != nil {
		return nil, err
	}
	buf, err = AppendVarInt(buf, m.Expires)
	if err != nil {
		return nil, err
	}
	buf = append(buf, m.GroupOrder)

	if m.ContentExists {
		buf = append(buf, 1)
		buf, err = m.LargestLoc.encode(buf)
		if err != nil {
			return nil, err
		}
	} else {
		buf = append(buf, 0)
	}

	return encodeParameters(buf, m.Parameters)
}

func decodeSubscribeOK(data []byte) (SubscribeOK, error) {
	r := newReader(data)
	var m SubscribeOK
	var err error

	if m.RequestID, err = r.readVarInt(); err != nil {
		return m, &ParseError{Message: "SUBSCRIBE_OK", Field: "request_id", Err: err}
	}
	if m.TrackAlias, err = r.readVarInt(); err != nil {
		return m, &ParseError{Message: "SUBSCRIBE_OK", Field: "track_alias", Err: err}
	}
	if m.Expires, err = r.readVarInt(); err != nil {
		return m, &ParseError{Message: "SUBSCRIBE_OK", Field: "expires", Err: err}
	}
	if m.GroupOrder, err = r.readByte(); err != nil {
		return m, &ParseError{Message: "SUBSCRIBE_OK", Field: "group_order", Err: err}
	}
	if !validGroupOrder(m.GroupOrder, false) {
		return m, protocolViolation("subscribe_ok group_order out of range")
	}
	contentExists, err := r.readByte()
	if err != nil {
		return m, &ParseError{Message: "SUBSCRIBE_OK", Field: "content_exists", Err: err}
	}
	if contentExists != 0 && contentExists != 1 {
		return m, protocolViolation("subscribe_ok content_exists out of range")
	}
	m.ContentExists = contentExists == 1
	if m.ContentExists {
		if m.LargestLoc, err = r.readLocation(); err != nil {
			return m, &ParseError{Message: "SUBSCRIBE_OK", Field: "largest_location", Err: err}
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

// SubscribeError (0x05) rejects a subscription.
type SubscribeError struct {
	RequestID uint64
	ErrorCode uint64
	Reason    string
}

func (SubscribeError) Type() uint64 { return MsgSubscribeError }

func (m SubscribeError) encodePayload() ([]byte, error) {
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

func decodeSubscribeError(data []byte) (SubscribeError, error) {
	r := newReader(data)
	var m SubscribeError
	var err error
	if m.RequestID, err = r.readVarInt(); err != nil {
		return m, &ParseError{Message: "SUBSCRIBE_ERROR", Field: "request_id", Err: err}
	}
	if m.ErrorCode, err = r.readVarInt(); err != nil {
		return m, &ParseError{Message: "SUBSCRIBE_ERROR", Field: "error_code", Err: err}
	}
	if m.Reason, err = r.readString(); err != nil {
		return m, &ParseError{Message: "SUBSCRIBE_ERROR", Field: "reason", Err: err}
	}
	if r.remaining() != 0 {
		return m, ErrExcessPayload
	}
	return m, nil
}

// SubscribeUpdate (0x02) narrows an existing subscription's range or
// priority without reallocating a request ID.
type SubscribeUpdate struct {
	RequestID          uint64
	StartLocation      Location
	EndGroup           uint64
	SubscriberPriority byte
	Forward            byte
	Parameters         []Parameter
}

func (SubscribeUpdate) Type() uint64 { return MsgSubscribeUpdate }

func (m SubscribeUpdate) encodePayload() ([]byte, error) {
	if !validForward(m.Forward) {
		return nil, protocolViolation("subscribe_update forward out of range")
	}
	buf, err := AppendVarInt(nil, m.RequestID)
	if err != nil {
		return nil, err
	}
	buf, err = m.StartLocation.encode(buf)
	if err != nil {
		return nil, err
	}
	buf, err = AppendVarInt(buf, m.EndGroup)
	if err != nil {
		return nil, err
	}
	buf = append(buf, m.SubscriberPriority, m.Forward)
	return encodeParameters(buf, m.Parameters)
}

func decodeSubscribeUpdate(data []byte) (SubscribeUpdate, error) {
	r := newReader(data)
	var m SubscribeUpdate
	var err error
	if m.RequestID, err = r.readVarInt(); err != nil {
		return m, &ParseError{Message: "SUBSCRIBE_UPDATE", Field: "request_id", Err: err}
	}
	if m.StartLocation, err = r.readLocation(); err != nil {
		return m, &ParseError{Message: "SUBSCRIBE_UPDATE", Field: "start_location", Err: err}
	}
	if m.EndGroup, err = r.readVarInt(); err != nil {
		return m, &ParseError{Message: "SUBSCRIBE_UPDATE", Field: "end_group", Err: err}
	}
	if m.SubscriberPriority, err = r.readByte(); err != nil {
		return m, &ParseError{Message: "SUBSCRIBE_UPDATE", Field: "subscriber_priority", Err: err}
	}
	if m.Forward, err = r.readByte(); err != nil {
		return m, &ParseError{Message: "SUBSCRIBE_UPDATE", Field: "forward", Err: err}
	}
	if !validForward(m.Forward) {
		return m, protocolViolation("subscribe_update forward out of range")
	}
	if m.Parameters, err = decodeParameters(r); err != nil {
		return m, err
	}
	if r.remaining() != 0 {
		return m, ErrExcessPayload
	}
	return m, nil
}

// Unsubscribe (0x0A) cancels a subscription.
type Unsubscribe struct {
	RequestID uint64
}

func (Unsubscribe) Type() uint64 { return MsgUnsubscribe }

func (m Unsubscribe) encodePayload() ([]byte, error) {
	return AppendVarInt(nil, m.RequestID)
}

func decodeUnsubscribe(data []byte) (Unsubscribe, error) {
	r := newReader(data)
	v, err := r.readVarInt()
	if err != nil {
		return Unsubscribe{}, &ParseError{Message: "UNSUBSCRIBE", Field: "request_id", Err: err}
	}
	if r.remaining() != 0 {
		return Unsubscribe{}, ErrExcessPayload
	}
	return Unsubscribe{RequestID: v}, nil
}

// SubscribeDone (0x0B) reports that a subscription has concluded.
type SubscribeDone struct {
	RequestID   uint64
	StatusCode  uint64
	StreamCount uint64
	Reason      string
}

func (SubscribeDone) Type() uint64 { return MsgSubscribeDone }

func (m SubscribeDone) encodePayload() ([]byte, error) {
	if len(m.Reason) > maxSubscribeDoneReasonLen {
		return nil, protocolViolation("subscribe_done reason exceeds 8192 bytes")
	}
	buf, err := AppendVarInt(nil, m.RequestID)
	if err != nil {
		return nil, err
	}
	buf, err = AppendVarInt(buf, m.StatusCode)
	if err != nil {
		return nil, err
	}
	buf, err = AppendVarInt(buf, m.StreamCount)
	if err != nil {
		return nil, err
	}
	return appendString(buf, m.Reason)
}

func decodeSubscribeDone(data []byte) (SubscribeDone, error) {
	r := newReader(data)
	var m SubscribeDone
	var err error
	if m.RequestID, err = r.readVarInt(); err != nil {
		return m, &ParseError{Message: "SUBSCRIBE_DONE", Field: "request_id", Err: err}
	}
	if m.StatusCode, err = r.readVarInt(); err != nil {
		return m, &ParseError{Message: "SUBSCRIBE_DONE", Field: "status_code", Err: err}
	}
	if m.StreamCount, err = r.readVarInt(); err != nil {
		return m, &ParseError{Message: "SUBSCRIBE_DONE", Field: "stream_count", Err: err}
	}
	reasonLen, err := r.readVarInt()
	if err != nil {
		return m, &ParseError{Message: "SUBSCRIBE_DONE", Field: "reason_len", Err: err}
	}
	if reasonLen > maxSubscribeDoneReasonLen {
		return m, protocolViolation("subscribe_done reason exceeds 8192 bytes")
	}
	reason, err := r.readBytes(int(reasonLen))
	if err != nil {
		return m, &ParseError{Message: "SUBSCRIBE_DONE", Field: "reason", Err: err}
	}
	m.Reason = string(reason)
	if r.remaining() != 0 {
		return m, ErrExcessPayload
	}
	return m, nil
}
