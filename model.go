package moqt

// Parameter is a generic key/value pair carried inside many control
// message payloads (draft-ietf-moq-transport-12 §8). Even parameter_type
// values carry a raw VarInt on the wire; odd values carry a
// length-prefixed opaque byte sequence (length ≤ 65535). Value always
// stores the wire bytes: for an even type, Value must already be a valid
// 1-8 byte VarInt encoding.
type Parameter struct {
	Type  uint64
	Value []byte
}

// SetupParameter is identical in layout to Parameter; it is distinguished
// only by context (CLIENT_SETUP/SERVER_SETUP vs. other payloads).
type SetupParameter = Parameter

// IsEven reports whether p's value is wire-encoded as a raw VarInt
// (even type) rather than length-prefixed opaque bytes (odd type).
func (p Parameter) IsEven() bool {
	return p.Type%2 == 0
}

// NewVarIntParameter builds an even-type Parameter whose Value is the
// canonical VarInt encoding of v.
func NewVarIntParameter(typ, v uint64) (Parameter, error) {
	if typ%2 != 0 {
		return Parameter{}, protocolViolation("varint parameter must have an even type")
	}
	enc, err := AppendVarInt(nil, v)
	if err != nil {
		return Parameter{}, err
	}
	return Parameter{Type: typ, Value: enc}, nil
}

// NewBytesParameter builds an odd-type Parameter carrying opaque bytes.
func NewBytesParameter(typ uint64, value []byte) (Parameter, error) {
	if typ%2 != 1 {
		return Parameter{}, protocolViolation("bytes parameter must have an odd type")
	}
	if len(value) > 65535 {
		return Parameter{}, protocolViolation("parameter value exceeds 65535 bytes")
	}
	return Parameter{Type: typ, Value: value}, nil
}

// VarIntValue decodes Value as a VarInt. Only meaningful for even types.
func (p Parameter) VarIntValue() (uint64, error) {
	v, n, err := ReadVarInt(p.Value)
	if err != nil || n != len(p.Value) {
		return 0, protocolViolation("even-type parameter value is not a canonical varint")
	}
	return v, nil
}

func (p Parameter) encode(buf []byte) ([]byte, error) {
	buf, err := AppendVarInt(buf, p.Type)
	if err != nil {
		return nil, err
	}
	if p.IsEven() {
		if len(p.Value) == 0 || len(p.Value) > 8 {
			return nil, protocolViolation("even-type parameter value must be 1-8 bytes")
		}
		return append(buf, p.Value...), nil
	}
	if len(p.Value) > 65535 {
		return nil, protocolViolation("odd-type parameter value exceeds 65535 bytes")
	}
	return appendVarIntBytes(buf, p.Value)
}

func decodeParameter(r *reader) (Parameter, error) {
	typ, err := r.readVarInt()
	if err != nil {
		return Parameter{}, &ParseError{Field: "parameter_type", Err: err}
	}
	if typ%2 == 0 {
		v, err := r.readVarInt()
		if err != nil {
			return Parameter{}, &ParseError{Field: "parameter_value", Err: err}
		}
		enc, err := AppendVarInt(nil, v)
		if err != nil {
			return Parameter{}, &ParseError{Field: "parameter_value", Err: err}
		}
		return Parameter{Type: typ, Value: enc}, nil
	}
	val, err := r.readVarIntBytes()
	if err != nil {
		return Parameter{}, &ParseError{Field: "parameter_value", Err: err}
	}
	if len(val) > 65535 {
		return Parameter{}, protocolViolation("odd-type parameter value exceeds 65535 bytes")
	}
	return Parameter{Type: typ, Value: append([]byte(nil), val...)}, nil
}

func encodeParameters(buf []byte, params []Parameter) ([]byte, error) {
	buf, err := AppendVarInt(buf, uint64(len(params)))
	if err != nil {
		return nil, err
	}
	for _, p := range params {
		buf, err = p.encode(buf)
		if err != nil {
			return nil, err
		}
	}
	return buf, nil
}

func decodeParameters(r *reader) ([]Parameter, error) {
	n, err := r.readVarInt()
	if err != nil {
		return nil, &ParseError{Field: "num_params", Err: err}
	}
	params := make([]Parameter, 0, n)
	for i := uint64(0); i < n; i++ {
		p, err := decodeParameter(r)
		if err != nil {
			return nil, err
		}
		params = append(params, p)
	}
	return params, nil
}

// Location is a (group, object) coordinate within a track. Locations
// within a single track are totally ordered lexicographically.
type Location struct {
	Group  uint64
	Object uint64
}

// Less reports whether l sorts strictly before other by (group, object).
func (l Location) Less(other Location) bool {
	if l.Group != other.Group {
		return l.Group < other.Group
	}
	return l.Object < other.Object
}

func (l Location) encode(buf []byte) ([]byte, error) {
	buf, err := AppendVarInt(buf, l.Group)
	if err != nil {
		return nil, err
	}
	return AppendVarInt(buf, l.Object)
}

// namespace tuple helpers, used by ANNOUNCE and SUBSCRIBE_ANNOUNCES whose
// grammar carries a namespace as a tuple of string components rather than
// a single interned VarInt handle.

func encodeNamespaceTuple(buf []byte, parts []string) ([]byte, error) {
	buf, err := AppendVarInt(buf, uint64(len(parts)))
	if err != nil {
		return nil, err
	}
	for _, p := range parts {
		buf, err = appendString(buf, p)
		if err != nil {
			return nil, err
		}
	}
	return buf, nil
}

func decodeNamespaceTuple(r *reader, field string, min, max int) ([]string, error) {
	count, err := r.readVarInt()
	if err != nil {
		return nil, &ParseError{Field: field + "_count", Err: err}
	}
	if int(count) < min || int(count) > max {
		return nil, protocolViolation(field + " count out of range")
	}
	parts := make([]string, count)
	for i := range parts {
		s, err := r.readString()
		if err != nil {
			return nil, &ParseError{Field: field, Err: err}
		}
		parts[i] = s
	}
	return parts, nil
}
