package moqt

import (
	"bytes"
	"testing"
)

func TestParameterEvenRoundTrip(t *testing.T) {
	t.Parallel()
	p, err := NewVarIntParameter(2, 5)
	if err != nil {
		t.Fatal(err)
	}
	buf, err := p.encode(nil)
	if err != nil {
		t.Fatal(err)
	}
	got, err := decodeParameter(newReader(buf))
	if err != nil {
		t.Fatal(err)
	}
	if got.Type != p.Type || !bytes.Equal(got.Value, p.Value) {
		t.Fatalf("got %+v, want %+v", got, p)
	}
	v, err := got.VarIntValue()
	if err != nil || v != 5 {
		t.Fatalf("VarIntValue() = (%d, %v), want (5, nil)", v, err)
	}
}

func TestParameterOddRoundTrip(t *testing.T) {
	t.Parallel()
	p, err := NewBytesParameter(1, []byte("/moq"))
	if err != nil {
		t.Fatal(err)
	}
	buf, err := p.encode(nil)
	if err != nil {
		t.Fatal(err)
	}
	got, err := decodeParameter(newReader(buf))
	if err != nil {
		t.Fatal(err)
	}
	if got.Type != p.Type || !bytes.Equal(got.Value, p.Value) {
		t.Fatalf("got %+v, want %+v", got, p)
	}
}

func TestParameterOddValueTooLong(t *testing.T) {
	t.Parallel()
	_, err := NewBytesParameter(1, make([]byte, 65536))
	if err == nil {
		t.Fatal("expected error for oversized odd-type parameter value")
	}
}

func TestParameterEvenWrongType(t *testing.T) {
	t.Parallel()
	if _, err := NewVarIntParameter(1, 5); err == nil {
		t.Fatal("expected error constructing varint parameter with odd type")
	}
}

func TestLocationRoundTrip(t *testing.T) {
	t.Parallel()
	loc := Location{Group: 10, Object: 5}
	buf, err := loc.encode(nil)
	if err != nil {
		t.Fatal(err)
	}
	r := newReader(buf)
	got, err := r.readLocation()
	if err != nil {
		t.Fatal(err)
	}
	if got != loc {
		t.Fatalf("got %+v, want %+v", got, loc)
	}
	if r.remaining() != 0 {
		t.Fatalf("remaining = %d, want 0", r.remaining())
	}
}

func TestLocationOrdering(t *testing.T) {
	t.Parallel()
	a := Location{Group: 1, Object: 9}
	b := Location{Group: 2, Object: 0}
	if !a.Less(b) {
		t.Fatalf("%+v should sort before %+v", a, b)
	}
	c := Location{Group: 1, Object: 2}
	if !c.Less(a) {
		t.Fatalf("%+v should sort before %+v", c, a)
	}
}
