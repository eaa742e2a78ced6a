package moqt

import "testing"

func TestClientSetupRoundTrip(t *testing.T) {
	t.Parallel()
	p, err := NewVarIntParameter(2, 1)
	if err != nil {
		t.Fatal(err)
	}
	m := ClientSetup{Versions: []uint64{0xff000011, 0xff00000c}, Parameters: []SetupParameter{p}}
	buf, err := m.encodePayload()
	if err != nil {
		t.Fatal(err)
	}
	got, err := decodeClientSetup(buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Versions) != 2 || got.Versions[0] != m.Versions[0] {
		t.Fatalf("got %+v, want %+v", got, m)
	}
}

func TestClientSetupVersionOutOfRange(t *testing.T) {
	t.Parallel()
	m := ClientSetup{Versions: []uint64{1 << 32}}
	if _, err := m.encodePayload(); err == nil {
		t.Fatal("expected error for version exceeding 2^32-1")
	}
}

func TestServerSetupRoundTrip(t *testing.T) {
	t.Parallel()
	m := ServerSetup{SelectedVersion: 0xff00000c}
	buf, err := m.encodePayload()
	if err != nil {
		t.Fatal(err)
	}
	got, err := decodeServerSetup(buf)
	if err != nil {
		t.Fatal(err)
	}
	if got.SelectedVersion != m.SelectedVersion {
		t.Fatalf("got %+v, want %+v", got, m)
	}
}

func TestServerSetupVersionOutOfRange(t *testing.T) {
	t.Parallel()
	m := ServerSetup{SelectedVersion: 1 << 33}
	if _, err := m.encodePayload(); err == nil {
		t.Fatal("expected error for selected_version exceeding 2^32-1")
	}
}
