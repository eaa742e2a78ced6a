package moqt

import (
	"bytes"
	"errors"
	"testing"
)

func TestFrameRoundTripRequestsBlocked(t *testing.T) {
	t.Parallel()
	buf, err := EncodeFrame(RequestsBlocked{MaximumRequestID: 42})
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{0x1A, 0x01, 0x2A}
	if !bytes.Equal(buf, want) {
		t.Fatalf("EncodeFrame = %x, want %x", buf, want)
	}

	msg, n, err := DecodeFrame(buf)
	if err != nil {
		t.Fatal(err)
	}
	if n != len(buf) {
		t.Fatalf("consumed %d bytes, want %d", n, len(buf))
	}
	got, ok := msg.(RequestsBlocked)
	if !ok || got.MaximumRequestID != 42 {
		t.Fatalf("got %+v, want RequestsBlocked{42}", msg)
	}
}

func TestFrameRoundTripMaxRequestID(t *testing.T) {
	t.Parallel()
	buf, err := EncodeFrame(MaxRequestID{RequestID: 5})
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{0x15, 0x01, 0x05}
	if !bytes.Equal(buf, want) {
		t.Fatalf("EncodeFrame = %x, want %x", buf, want)
	}
}

func TestFrameIncompletePayload(t *testing.T) {
	t.Parallel()
	full, err := EncodeFrame(RequestsBlocked{MaximumRequestID: 42})
	if err != nil {
		t.Fatal(err)
	}
	_, _, err = DecodeFrame(full[:len(full)-1])
	if !errors.Is(err, ErrIncomplete) {
		t.Fatalf("got err=%v, want ErrIncomplete", err)
	}
}

func TestFrameIncompleteHeader(t *testing.T) {
	t.Parallel()
	_, _, err := DecodeFrame([]byte{0x1A})
	if !errors.Is(err, ErrIncomplete) {
		t.Fatalf("got err=%v, want ErrIncomplete", err)
	}
}

func TestFrameUnknownType(t *testing.T) {
	t.Parallel()
	buf, err := AppendVarInt(nil, 0x7E) // unassigned type code
	if err != nil {
		t.Fatal(err)
	}
	buf, err = AppendVarInt(buf, 0)
	if err != nil {
		t.Fatal(err)
	}
	_, _, err = DecodeFrame(buf)
	if !errors.Is(err, ErrUnknownMessageType) {
		t.Fatalf("got err=%v, want ErrUnknownMessageType", err)
	}
}

func TestFrameExcessPayload(t *testing.T) {
	t.Parallel()
	buf, err := AppendVarInt(nil, MsgMaxRequestID)
	if err != nil {
		t.Fatal(err)
	}
	// Payload carries one varint too many for MAX_REQUEST_ID.
	var payload []byte
	payload, err = AppendVarInt(payload, 5)
	if err != nil {
		t.Fatal(err)
	}
	payload, err = AppendVarInt(payload, 6)
	if err != nil {
		t.Fatal(err)
	}
	buf, err = AppendVarInt(buf, uint64(len(payload)))
	if err != nil {
		t.Fatal(err)
	}
	buf = append(buf, payload...)

	if _, _, err := DecodeFrame(buf); !errors.Is(err, ErrExcessPayload) {
		t.Fatalf("got err=%v, want ErrExcessPayload", err)
	}
}
