package moqt

// Publish (0x1D) offers to push a track to the peer without a prior
// SUBSCRIBE, mirroring the subscribe/publish symmetry added in
// draft-ietf-moq-transport-12.
type Publish struct {
	RequestID      uint64
	TrackNamespace uint64
	TrackName      string
	TrackAlias     uint64
	GroupOrder     byte // 1 or 2
	ContentExists  bool
	Largest        Location // present iff ContentExists
	Forward        byte     // 0 or 1
	Parameters     []Parameter
}

func (Publish) Type() uint64 { return MsgPublish }

func (m Publish) encodePayload() ([]byte, error) {
	if !validGroupOrder(m.GroupOrder, false) {
		return nil, protocolViolation("publish group_order out of range")
	}
	if !validForward(m.Forward) {
		return nil, protocolViolation("publish forward out of range")
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
	buf, err = AppendVarInt(buf, m.TrackAlias)
	if err != nil {
		return nil, err
	}
	buf = append(buf, m.GroupOrder)

	if m.ContentExists {
		buf = append(buf, 1)
		buf, err = m.Largest.encode(buf)
		if err != nil {
			return nil, err
		}
	} else {
		buf = append(buf, 0)
	}
	buf = append(buf, m.Forward)

	return encodeParameters(buf, m.Parameters)
}

func decodePublish(data []byte) (Publish, error) {
	r := newReader(data)
	var m Publish
	var err error

	if m.RequestID, err = r.readVarInt(); err != nil {
		return m, &ParseError{Message: "PUBLISH", Field: "request_id", Err: err}
	}
	if m.TrackNamespace, err = r.readVarInt(); err != nil {
		return m, &ParseError{Message: "PUBLISH", Field: "track_namespace", Err: err}
	}
	if m.TrackName, err = r.readString(); err != nil {
		return m, &ParseError{Message: "PUBLISH", Field: "track_name", Err: err}
	}
	if m.TrackAlias, err = r.readVarInt(); err != nil {
		return m, &ParseError{Message: "PUBLISH", Field: "track_alias", Err: err}
	}
	if m.GroupOrder, err = r.readByte(); err != nil {
		return m, &ParseError{Message: "PUBLISH", Field: "group_order", Err: err}
	}
	if !validGroupOrder(m.GroupOrder, false) {
		return m, protocolViolation("publish group_order out of range")
	}
	contentExists, err := r.readByte()
	if err != nil {
		return m, &ParseError{Message: "PUBLISH", Field: "content_exists", Err: err}
	}
	if contentExists != 0 && contentExists != 1 {
		return m, protocolViolation("publish content_exists out of range")
	}
	m.ContentExists = contentExists == 1
	if m.ContentExists {
		if m.Largest, err = r.readLocation(); err != nil {
			return m, &ParseError{Message: "PUBLISH", Field: "largest", Err: err}
		}
	}
	if m.Forward, err = r.readByte(); err != nil {
		return m, &ParseError{Message: "PUBLISH", Field: "forward", Err: err}
	}
	if !validForward(m.Forward) {
		return m, protocolViolation("publish forward out of range")
	}

	if m.Parameters, err = decodeParameters(r); err != nil {
		return m, err
	}
	if r.remaining() != 0 {
		return m, ErrExcessPayload
	}
	return m, nil
}

// PublishOK (0x1E) accepts a Publish offer, optionally narrowing it to a
// filtered range exactly like Subscribe does.
type PublishOK struct {
	RequestID          uint64
	Forward            byte // 0 or 1
	SubscriberPriority byte
	GroupOrder         byte // 1 or 2
	FilterType         uint64
	StartLocation      Location // present iff FilterType ∈ {AbsoluteStart, AbsoluteRange}
	EndGroup           uint64   // present iff FilterType == AbsoluteRange
	Parameters         []Parameter
}

func (PublishOK) Type() uint64 { return MsgPublishOK }

func (m PublishOK) encodePayload() ([]byte, error) {
	if !validForward(m.Forward) {
		return nil, protocolViolation("publish_ok forward out of range")
	}
	if !validGroupOrder(m.GroupOrder, false) {
		return nil, protocolViolation("publish_ok group_order out of range")
	}
	if !validFilterType(m.FilterType) {
		return nil, protocolViolation("publish_ok filter_type out of range")
	}

	buf, err := AppendVarInt(nil, m.RequestID)
	if err != nil {
		return nil, err
	}
	buf = append(buf, m.Forward, m.SubscriberPriority, m.GroupOrder)
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

func decodePublishOK(data []byte) (PublishOK, error) {
	r := newReader(data)
	var m PublishOK
	var err error

	if m.RequestID, err = r.readVarInt(); err != nil {
		return m, &ParseError{Message: "PUBLISH_OK", Field: "request_id", Err: err}
	}
	if m.Forward, err = r.readByte(); err != nil {
		return m, &ParseError{Message: "PUBLISH_OK", Field: "forward", Err: err}
	}
	if !validForward(m.Forward) {
		return m, protocolViolation("publish_ok forward out of range")
	}
	if m.SubscriberPriority, err = r.readByte(); err != nil {
		return m, &ParseError{Message: "PUBLISH_OK", Field: "subscriber_priority", Err: err}
	}
	if m.GroupOrder, err = r.readByte(); err != nil {
		return m, &ParseError{Message: "PUBLISH_OK", Field: "group_order", Err: err}
	}
	if !validGroupOrder(m.GroupOrder, false) {
		return m, protocolViolation("publish_ok group_order out of range")
	}
	if m.FilterType, err = r.readVarInt(); err != nil {
		return m, &ParseError{Message: "PUBLISH_OK", Field: "filter_type", Err: err}
	}
	if !validFilterType(m.FilterType) {
		return m, protocolViolation("publish_ok filter_type out of range")
	}

	if m.FilterType == FilterAbsoluteStart || m.FilterType == FilterAbsoluteRange {
		if m.StartLocation, err = r.readLocation(); err != nil {
			return m, &ParseError{Message: "PUBLISH_OK", Field: "start_location", Err: err}
		}
	}
	if m.FilterType == FilterAbsoluteRange {
		if m.EndGroup, err = r.readVarInt(); err != nil {
			return m, &ParseError{Message: "PUBLISH_OK", Field: "end_group", Err: err}
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

// PublishError (0x1F) rejects a Publish offer.
type PublishError struct {
	RequestID uint64
	ErrorCode uint64
	Reason    string
}

func (PublishError) Type() uint64 { return MsgPublishError }

func (m PublishError) encodePayload() ([]byte, error) {
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

func decodePublishError(data []byte) (PublishError, error) {
	r := newReader(data)
	var m PublishError
	var err error
	if m.RequestID, err = r.readVarInt(); err != nil {
		return m, &ParseError{Message: "PUBLISH_ERROR", Field: "request_id", Err: err}
	}
	if m.ErrorCode, err = r.readVarInt(); err != nil {
		return m, &ParseError{Message: "PUBLISH_ERROR", Field: "error_code", Err: err}
	}
	if m.Reason, err = r.readString(); err != nil {
		return m, &ParseError{Message: "PUBLISH_ERROR", Field: "reason", Err: err}
	}
	if r.remaining() != 0 {
		return m, ErrExcessPayload
	}
	return m, nil
}
