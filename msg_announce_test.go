package moqt

import "testing"

func TestAnnounceRoundTrip(t *testing.T) {
	t.Parallel()
	m := Announce{RequestID: 1, TrackNamespace: []string{"live", "cam1"}}
	buf, err := m.encodePayload()
	if err != nil {
		t.Fatal(err)
	}
	got, err := decodeAnnounce(buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.TrackNamespace) != 2 || got.TrackNamespace[1] != "cam1" {
		t.Fatalf("got %+v, want %+v", got, m)
	}
}

func TestAnnounceEmptyNamespaceRejected(t *testing.T) {
	t.Parallel()
	m := Announce{RequestID: 1, TrackNamespace: []string{}}
	if _, err := m.encodePayload(); err == nil {
		t.Fatal("expected error for empty namespace tuple")
	}
}

func TestAnnounceOKRoundTrip(t *testing.T) {
	t.Parallel()
	buf, err := AnnounceOK{RequestID: 7}.encodePayload()
	if err != nil {
		t.Fatal(err)
	}
	got, err := decodeAnnounceOK(buf)
	if err != nil {
		t.Fatal(err)
	}
	if got.RequestID != 7 {
		t.Fatalf("got %+v, want RequestID=7", got)
	}
}

func TestAnnounceErrorRoundTrip(t *testing.T) {
	t.Parallel()
	m := AnnounceError{RequestID: 1, ErrorCode: 3, Reason: "duplicate"}
	buf, err := m.encodePayload()
	if err != nil {
		t.Fatal(err)
	}
	got, err := decodeAnnounceError(buf)
	if err != nil {
		t.Fatal(err)
	}
	if got != m {
		t.Fatalf("got %+v, want %+v", got, m)
	}
}

func TestUnannounceRoundTrip(t *testing.T) {
	t.Parallel()
	buf, err := Unannounce{TrackNamespace: 42}.encodePayload()
	if err != nil {
		t.Fatal(err)
	}
	got, err := decodeUnannounce(buf)
	if err != nil {
		t.Fatal(err)
	}
	if got.TrackNamespace != 42 {
		t.Fatalf("got %+v, want TrackNamespace=42", got)
	}
}

func TestAnnounceCancelRoundTrip(t *testing.T) {
	t.Parallel()
	m := AnnounceCancel{TrackNamespace: 1, ErrorCode: 2, ErrorReason: "withdrawn"}
	buf, err := m.encodePayload()
	if err != nil {
		t.Fatal(err)
	}
	got, err := decodeAnnounceCancel(buf)
	if err != nil {
		t.Fatal(err)
	}
	if got != m {
		t.Fatalf("got %+v, want %+v", got, m)
	}
}
