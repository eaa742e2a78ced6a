package moqt

import (
	"github.com/quic-go/quic-go/quicvarint"
)

// MaxVarInt is the largest value representable by a MoQT VarInt (RFC 9000
// §16): 2^62 - 1.
const MaxVarInt = (1 << 62) - 1

// VarIntLen returns the number of bytes the canonical (shortest) encoding
// of v occupies: 1, 2, 4, or 8.
func VarIntLen(v uint64) int {
	switch {
	case v <= 63:
		return 1
	case v <= 16383:
		return 2
	case v <= 1073741823:
		return 4
	default:
		return 8
	}
}

// AppendVarInt appends the canonical RFC 9000 encoding of v to buf. It
// fails with ErrVarIntRange if v is outside [0, 2^62).
func AppendVarInt(buf []byte, v uint64) ([]byte, error) {
	if v > MaxVarInt {
		return nil, ErrVarIntRange
	}
	return quicvarint.Append(buf, v), nil
}

// ReadVarInt decodes a VarInt from the head of data. The 2-bit length
// class in the first byte dictates how many bytes are consumed;
// non-canonical (non-shortest) encodings are accepted on decode, per RFC
// 9000. If data does not yet hold a full encoding, ReadVarInt returns
// ErrIncomplete and leaves data untouched (the caller must not advance its
// cursor).
func ReadVarInt(data []byte) (value uint64, n int, err error) {
	if len(data) == 0 {
		return 0, 0, ErrIncomplete
	}
	length := 1 << (data[0] >> 6)
	if len(data) < length {
		return 0, 0, ErrIncomplete
	}
	value, n, err = quicvarint.Parse(data[:length])
	if err != nil {
		return 0, 0, err
	}
	return value, n, nil
}
