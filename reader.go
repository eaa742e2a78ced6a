package moqt

import "io"

// reader wraps a byte slice for sequential VarInt/byte/string reading
// while decoding a control message payload.
type reader struct {
	data []byte
	pos  int
}

func newReader(data []byte) *reader {
	return &reader{data: data}
}

// remaining reports how many bytes are left unread. A fully-consumed
// reader (remaining() == 0) after a message's decode is the "no excess
// payload" invariant every decodeXxx function checks before returning.
func (r *reader) remaining() int {
	return len(r.data) - r.pos
}

func (r *reader) readVarInt() (uint64, error) {
	v, n, err := ReadVarInt(r.data[r.pos:])
	if err != nil {
		return 0, io.ErrUnexpectedEOF
	}
	r.pos += n
	return v, nil
}

func (r *reader) readByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, io.ErrUnexpectedEOF
	}
	v := r.data[r.pos]
	r.pos++
	return v, nil
}

func (r *reader) readBytes(n int) ([]byte, error) {
	if n < 0 || r.pos+n > len(r.data) {
		return nil, io.ErrUnexpectedEOF
	}
	v := r.data[r.pos : r.pos+n]
	r.pos += n
	return v, nil
}

// readVarIntBytes reads a VarInt length prefix followed by that many
// bytes, the universal "B" / "S" wire representation.
func (r *reader) readVarIntBytes() ([]byte, error) {
	n, err := r.readVarInt()
	if err != nil {
		return nil, err
	}
	return r.readBytes(int(n))
}

func (r *reader) readString() (string, error) {
	b, err := r.readVarIntBytes()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (r *reader) readLocation() (Location, error) {
	group, err := r.readVarInt()
	if err != nil {
		return Location{}, err
	}
	object, err := r.readVarInt()
	if err != nil {
		return Location{}, err
	}
	return Location{Group: group, Object: object}, nil
}

// appendVarIntBytes appends a VarInt length prefix followed by data.
func appendVarIntBytes(buf []byte, data []byte) ([]byte, error) {
	buf, err := AppendVarInt(buf, uint64(len(data)))
	if err != nil {
		return nil, err
	}
	return append(buf, data...), nil
}

func appendString(buf []byte, s string) ([]byte, error) {
	return appendVarIntBytes(buf, []byte(s))
}
