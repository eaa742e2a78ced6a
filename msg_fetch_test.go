package moqt

import "testing"

func TestFetchStandaloneRoundTrip(t *testing.T) {
	t.Parallel()
	m := Fetch{
		RequestID:      1,
		Priority:       10,
		GroupOrder:     0,
		FetchType:      FetchTypeStandalone,
		TrackNamespace: 7,
		TrackName:      "audio",
		Start:          Location{Group: 0, Object: 0},
		End:            Location{Group: 5, Object: 0},
	}
	buf, err := m.encodePayload()
	if err != nil {
		t.Fatal(err)
	}
	got, err := decodeFetch(buf)
	if err != nil {
		t.Fatal(err)
	}
	if got.TrackName != m.TrackName || got.End != m.End {
		t.Fatalf("got %+v, want %+v", got, m)
	}
}

func TestFetchJoiningRoundTrip(t *testing.T) {
	t.Parallel()
	m := Fetch{
		RequestID:        2,
		Priority:         1,
		GroupOrder:       1,
		FetchType:        FetchTypeJoiningRel,
		JoiningRequestID: 9,
		JoiningStart:     3,
	}
	buf, err := m.encodePayload()
	if err != nil {
		t.Fatal(err)
	}
	got, err := decodeFetch(buf)
	if err != nil {
		t.Fatal(err)
	}
	if got.JoiningRequestID != m.JoiningRequestID || got.JoiningStart != m.JoiningStart {
		t.Fatalf("got %+v, want %+v", got, m)
	}
	if got.TrackName != "" {
		t.Fatalf("expected empty track_name for joining fetch, got %q", got.TrackName)
	}
}

func TestFetchInvalidFetchType(t *testing.T) {
	t.Parallel()
	m := Fetch{RequestID: 1, FetchType: 4}
	if _, err := m.encodePayload(); err == nil {
		t.Fatal("expected error for fetch_type out of range")
	}
}

func TestFetchOKRoundTrip(t *testing.T) {
	t.Parallel()
	m := FetchOK{RequestID: 3, GroupOrder: 2, EndOfTrack: true, EndLocation: Location{Group: 9, Object: 1}}
	buf, err := m.encodePayload()
	if err != nil {
		t.Fatal(err)
	}
	got, err := decodeFetchOK(buf)
	if err != nil {
		t.Fatal(err)
	}
	if got != m {
		t.Fatalf("got %+v, want %+v", got, m)
	}
}

func TestFetchErrorRoundTrip(t *testing.T) {
	t.Parallel()
	m := FetchError{RequestID: 4, ErrorCode: 2, Reason: "not found"}
	buf, err := m.encodePayload()
	if err != nil {
		t.Fatal(err)
	}
	got, err := decodeFetchError(buf)
	if err != nil {
		t.Fatal(err)
	}
	if got != m {
		t.Fatalf("got %+v, want %+v", got, m)
	}
}

func TestFetchCancelRoundTrip(t *testing.T) {
	t.Parallel()
	buf, err := FetchCancel{RequestID: 11}.encodePayload()
	if err != nil {
		t.Fatal(err)
	}
	got, err := decodeFetchCancel(buf)
	if err != nil {
		t.Fatal(err)
	}
	if got.RequestID != 11 {
		t.Fatalf("got %+v, want RequestID=11", got)
	}
}
