package moqt

import (
	"bytes"
	"errors"
	"testing"
)

func TestVarIntCanonicalEncode(t *testing.T) {
	t.Parallel()
	cases := []struct {
		value uint64
		want  []byte
	}{
		{0, []byte{0x00}},
		{63, []byte{0x3f}},
		{64, []byte{0x40, 0x40}},
		{16383, []byte{0x7f, 0xff}},
		{16384, []byte{0x80, 0x00, 0x40, 0x00}},
		{1073741823, []byte{0xbf, 0xff, 0xff, 0xff}},
		{1073741824, []byte{0xc0, 0x00, 0x00, 0x00, 0x40, 0x00, 0x00, 0x00}},
	}

	for _, c := range cases {
		got, err := AppendVarInt(nil, c.value)
		if err != nil {
			t.Fatalf("AppendVarInt(%d): %v", c.value, err)
		}
		if !bytes.Equal(got, c.want) {
			t.Fatalf("AppendVarInt(%d) = % x, want % x", c.value, got, c.want)
		}
		if len(got) != VarIntLen(c.value) {
			t.Fatalf("VarIntLen(%d) = %d, want %d", c.value, VarIntLen(c.value), len(got))
		}
	}
}

func TestVarIntCanonicalDecode(t *testing.T) {
	t.Parallel()
	cases := []struct {
		want uint64
		data []byte
	}{
		{0, []byte{0x00}},
		{63, []byte{0x3f}},
		{64, []byte{0x40, 0x40}},
		{16383, []byte{0x7f, 0xff}},
		{16384, []byte{0x80, 0x00, 0x40, 0x00}},
		{1073741823, []byte{0xbf, 0xff, 0xff, 0xff}},
		{1073741824, []byte{0xc0, 0x00, 0x00, 0x00, 0x40, 0x00, 0x00, 0x00}},
	}

	for _, c := range cases {
		got, n, err := ReadVarInt(c.data)
		if err != nil {
			t.Fatalf("ReadVarInt(% x): %v", c.data, err)
		}
		if got != c.want || n != len(c.data) {
			t.Fatalf("ReadVarInt(% x) = (%d, %d), want (%d, %d)", c.data, got, n, c.want, len(c.data))
		}
	}
}

func TestVarIntRange(t *testing.T) {
	t.Parallel()
	_, err := AppendVarInt(nil, 1<<62)
	if !errors.Is(err, ErrVarIntRange) {
		t.Fatalf("AppendVarInt(2^62) error = %v, want ErrVarIntRange", err)
	}
}

func TestVarIntStreamingIncomplete(t *testing.T) {
	t.Parallel()
	data := []byte{0x40}
	_, _, err := ReadVarInt(data)
	if !errors.Is(err, ErrIncomplete) {
		t.Fatalf("ReadVarInt([0x40]) error = %v, want ErrIncomplete", err)
	}
	if len(data) != 1 {
		t.Fatalf("input buffer was mutated: %v", data)
	}
}

func TestVarIntEmptyIncomplete(t *testing.T) {
	t.Parallel()
	_, _, err := ReadVarInt(nil)
	if !errors.Is(err, ErrIncomplete) {
		t.Fatalf("ReadVarInt(nil) error = %v, want ErrIncomplete", err)
	}
}

func TestVarIntNonCanonicalAccepted(t *testing.T) {
	t.Parallel()
	// 2-byte encoding of 0, a non-canonical (non-shortest) form.
	data := []byte{0x40, 0x00}
	got, n, err := ReadVarInt(data)
	if err != nil {
		t.Fatalf("ReadVarInt(non-canonical): %v", err)
	}
	if got != 0 || n != 2 {
		t.Fatalf("ReadVarInt(non-canonical) = (%d, %d), want (0, 2)", got, n)
	}
}
