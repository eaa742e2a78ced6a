package moqt

// Track status codes (spec.md §4.3).
const (
	TrackStatusInProgress  = 0
	TrackStatusNotExist    = 1
	TrackStatusNotStarted  = 2
	TrackStatusFinished    = 3
	TrackStatusUnknown     = 4
)

func validTrackStatusCode(c uint64) bool {
	return c <= TrackStatusUnknown
}

// TrackStatusRequest (0x0D) asks whether a track exists and, if so, its
// current status.
type TrackStatusRequest struct {
	RequestID      uint64
	TrackNamespace uint64
	TrackName      string
	Parameters     []Parameter
}

func (TrackStatusRequest) Type() uint64 { return MsgTrackStatusRequest }

func (m TrackStatusRequest) encodePayload() ([]byte, error) {
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
	return encodeParameters(buf, m.Parameters)
}

func decodeTrackStatusRequest(data []byte) (TrackStatusRequest, error) {
	r := newReader(data)
	var m TrackStatusRequest
	var err error

	if m.RequestID, err = r.readVarInt(); err != nil {
		return m, &ParseError{Message: "TRACK_STATUS_REQUEST", Field: "request_id", Err: err}
	}
	if m.TrackNamespace, err = r.readVarInt(); err != nil {
		return m, &ParseError{Message: "TRACK_STATUS_REQUEST", Field: "track_namespace", Err: err}
	}
	if m.TrackName, err = r.readString(); err != nil {
		return m, &ParseError{Message: "TRACK_STATUS_REQUEST", Field: "track_name", Err: err}
	}
	if m.Parameters, err = decodeParameters(r); err != nil {
		return m, err
	}
	if r.remaining() != 0 {
		return m, ErrExcessPayload
	}
	return m, nil
}

// TrackStatus (0x0E) answers a TrackStatusRequest (or is sent
// unsolicited). When StatusCode is NotExist or NotStarted the track has
// no meaningful largest location, so both LargestLocation and
// Parameters MUST be zero/empty on the wire.
type TrackStatus struct {
	RequestID       uint64
	StatusCode      uint64
	LargestLocation Location
	Parameters      []Parameter
}

func (TrackStatus) Type() uint64 { return MsgTrackStatus }

func (m TrackStatus) encodePayload() ([]byte, error) {
	if !validTrackStatusCode(m.StatusCode) {
		return nil, protocolViolation("track_status status_code out of range")
	}
	if m.StatusCode == TrackStatusNotExist || m.StatusCode == TrackStatusNotStarted {
		if m.LargestLocation != (Location{}) || len(m.Parameters) != 0 {
			return nil, protocolViolation("track_status with status_code 1 or 2 must carry zero location and no parameters")
		}
	}

	buf, err := AppendVarInt(nil, m.RequestID)
	if err != nil {
		return nil, err
	}
	buf, err = AppendVarInt(buf, m.StatusCode)
	if err != nil {
		return nil, err
	}
	buf, err = m.LargestLocation.encode(buf)
	if err != nil {
		return nil, err
	}
	return encodeParameters(buf, m.Parameters)
}

func decodeTrackStatus(data []byte) (TrackStatus, error) {
	r := newReader(data)
	var m TrackStatus
	var err error

	if m.RequestID, err = r.readVarInt(); err != nil {
		return m, &ParseError{Message: "TRACK_STATUS", Field: "request_id", Err: err}
	}
	if m.StatusCode, err = r.readVarInt(); err != nil {
		return m, &ParseError{Message: "TRACK_STATUS", Field: "status_code", Err: err}
	}
	if !validTrackStatusCode(m.StatusCode) {
		return m, protocolViolation("track_status status_code out of range")
	}
	if m.LargestLocation, err = r.readLocation(); err != nil {
		return m, &ParseError{Message: "TRACK_STATUS", Field: "largest_location", Err: err}
	}
	if m.Parameters, err = decodeParameters(r); err != nil {
		return m, err
	}
	if m.StatusCode == TrackStatusNotExist || m.StatusCode == TrackStatusNotStarted {
		if m.LargestLocation != (Location{}) || len(m.Parameters) != 0 {
			return m, protocolViolation("track_status with status_code 1 or 2 must carry zero location and no parameters")
		}
	}
	if r.remaining() != 0 {
		return m, ErrExcessPayload
	}
	return m, nil
}
